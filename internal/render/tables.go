package render

import (
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"codeanalyzer/internal/inspect"
)

// dependencyTable lists runtime then dev dependencies, each sorted by name.
func dependencyTable(p inspect.PackageFacts) string {
	if len(p.Dependencies) == 0 && len(p.DevDependencies) == 0 {
		return "_No dependencies declared._"
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Package", "Version", "Scope", "AWS"})
	for _, name := range sortedKeys(p.Dependencies) {
		t.AppendRow(table.Row{name, p.Dependencies[name], "runtime", awsMark(name)})
	}
	for _, name := range sortedKeys(p.DevDependencies) {
		t.AppendRow(table.Row{name, p.DevDependencies[name], "dev", awsMark(name)})
	}
	return t.RenderMarkdown()
}

func scriptTable(scripts map[string]string) string {
	if len(scripts) == 0 {
		return "_No scripts declared._"
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Script", "Command"})
	for _, name := range sortedKeys(scripts) {
		t.AppendRow(table.Row{name, scripts[name]})
	}
	return t.RenderMarkdown()
}

func awsMark(name string) string {
	if inspect.IsAWSRelated(name) {
		return "yes"
	}
	return ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
