// Command analyzer-settings asks a few questions and writes
// .analyzer/settings.yaml for the directory being analyzed.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"codeanalyzer/internal/inspect"
	"codeanalyzer/internal/prompt"
	"codeanalyzer/internal/settings"
)

var questions = []prompt.Question{
	{Key: "tree_label", Prompt: "Tree label", Default: inspect.DefaultTreeLabel},
	{Key: "tree_depth", Prompt: "Tree depth", Default: strconv.Itoa(inspect.DefaultTreeDepth)},
	{Key: "deny", Prompt: "Deny globs (comma separated)", Default: ""},
	{Key: "frontmatter", Prompt: "Emit YAML frontmatter? (y/n)", Default: "n"},
}

// buildSettings converts wizard answers into Settings.
func buildSettings(answers map[string]string) (*settings.Settings, error) {
	s := &settings.Settings{TreeLabel: strings.TrimSpace(answers["tree_label"])}

	if d := strings.TrimSpace(answers["tree_depth"]); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("tree depth must be a positive integer, got %q", d)
		}
		s.TreeDepth = n
	}

	for _, g := range strings.Split(answers["deny"], ",") {
		if g = strings.TrimSpace(g); g != "" {
			s.Permissions.Deny = append(s.Permissions.Deny, g)
		}
	}

	switch strings.ToLower(strings.TrimSpace(answers["frontmatter"])) {
	case "y", "yes", "true":
		s.Frontmatter = true
	case "", "n", "no", "false":
	default:
		return nil, fmt.Errorf("frontmatter answer must be y or n, got %q", answers["frontmatter"])
	}
	return s, nil
}

func run(root string) error {
	if _, err := os.Stat(settings.Path(root)); err == nil {
		return fmt.Errorf("settings already exist at %s", settings.Path(root))
	}
	answers, err := prompt.Run(questions)
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	s, err := buildSettings(answers)
	if err != nil {
		return err
	}
	if err := settings.Save(root, s); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", settings.Path(root))
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("analyzer-settings: ")
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	if err := run(root); err != nil {
		log.Fatal(err)
	}
}
