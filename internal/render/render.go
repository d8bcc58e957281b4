// Package render fills the embedded analysis report and research prompt
// templates from inspected project facts.
//
// Rendering is a pure function of its inputs. The report's generation
// timestamp is the only field that changes between otherwise identical runs.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
	"time"

	"codeanalyzer/internal/inspect"
)

// TimestampLayout formats the "Generated on" field: local ISO-8601 with
// microseconds.
const TimestampLayout = "2006-01-02T15:04:05.000000"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"join":    func(items []string) string { return strings.Join(items, ", ") },
		"bullets": bullets,
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// view is the flattened template input.
type view struct {
	GeneratedAt     string
	Name            string
	Version         string
	FileTree        string
	AWSDependencies string
	DependencyTable string
	ScriptTable     string
	Services        []string
	Stacks          []string
	LambdaFiles     []string
	Agents          []string
	Research        string
}

func newView(f inspect.ProjectFacts) (view, error) {
	deps, err := indentJSON(f.Package.AWSDependencies)
	if err != nil {
		return view{}, err
	}
	return view{
		Name:            f.Package.DisplayName(),
		Version:         f.Package.DisplayVersion(),
		FileTree:        f.FileTree,
		AWSDependencies: deps,
		DependencyTable: dependencyTable(f.Package),
		ScriptTable:     scriptTable(f.Package.Scripts),
		Services:        f.Infra.Services,
		Stacks:          f.Infra.Stacks,
		LambdaFiles:     f.Infra.LambdaFiles,
		Agents:          f.Framework.Agents,
	}, nil
}

// Render returns the full markdown document: the analysis report followed by
// the research prompt.
func Render(f inspect.ProjectFacts, generatedAt time.Time) (string, error) {
	v, err := newView(f)
	if err != nil {
		return "", err
	}
	v.GeneratedAt = generatedAt.Format(TimestampLayout)
	if v.Research, err = execute("research.md.tmpl", v); err != nil {
		return "", err
	}
	return execute("report.md.tmpl", v)
}

// ResearchPrompt returns only the research-question prompt.
func ResearchPrompt(f inspect.ProjectFacts) (string, error) {
	v, err := newView(f)
	if err != nil {
		return "", err
	}
	return execute("research.md.tmpl", v)
}

func execute(name string, v view) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, v); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// indentJSON encodes m with two-space indentation and sorted keys. Version
// ranges like ">=1.0" are kept readable, so HTML escaping is off.
func indentJSON(m map[string]string) (string, error) {
	if m == nil {
		m = map[string]string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encode dependencies: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
