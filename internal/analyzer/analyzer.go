// Package analyzer ties settings, inspection and rendering together and
// writes the resulting report.
package analyzer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"codeanalyzer/internal/frontmatter"
	"codeanalyzer/internal/inspect"
	"codeanalyzer/internal/render"
	"codeanalyzer/internal/settings"
)

// DefaultOutput is the file written by the no-argument entry point.
const DefaultOutput = "agents4energy_deployment_research.md"

// Clock abstracts time so tests can pin the report timestamp.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Report is a rendered analysis ready to be written.
type Report struct {
	Text  string
	Facts inspect.ProjectFacts

	// RootAbs is the absolute path of the analyzed directory.
	RootAbs string
}

// reportMeta is the optional frontmatter block.
type reportMeta struct {
	Generator   string   `yaml:"generator"`
	GeneratedAt string   `yaml:"generated_at"`
	Project     string   `yaml:"project"`
	Version     string   `yaml:"version"`
	Services    []string `yaml:"services,omitempty"`
	Agents      []string `yaml:"agents,omitempty"`
}

// Generate inspects root and renders the report. An unreadable settings file
// is logged and ignored; an unreadable root is an error.
func Generate(root string, clock Clock) (*Report, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	cfg, err := settings.Load(root)
	if err != nil {
		log.Printf("ignoring settings: %v", err)
		cfg = nil
	}

	in := inspect.New(root)
	in.TreeLabel = cfg.Label(inspect.DefaultTreeLabel)
	in.TreeDepth = cfg.Depth(inspect.DefaultTreeDepth)
	if cfg != nil {
		in.Deny = cfg
	}

	facts, err := in.Inspect()
	if err != nil {
		return nil, err
	}

	now := clock.Now()
	text, err := render.Render(facts, now)
	if err != nil {
		return nil, err
	}

	if cfg.WantsFrontmatter() {
		meta := reportMeta{
			Generator:   "codebase-analyzer",
			GeneratedAt: now.Format(render.TimestampLayout),
			Project:     facts.Package.DisplayName(),
			Version:     facts.Package.DisplayVersion(),
			Services:    facts.Infra.Services,
			Agents:      facts.Framework.Agents,
		}
		if text, err = frontmatter.Prepend(meta, text); err != nil {
			return nil, err
		}
	}

	return &Report{Text: text, Facts: facts, RootAbs: rootAbs}, nil
}

// Write stores the report at path, replacing any existing file, and returns
// the absolute path written.
func (r *Report) Write(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if err := os.WriteFile(abs, []byte(r.Text), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return abs, nil
}

// CharCount is the report length in Unicode code points.
func (r *Report) CharCount() int {
	return utf8.RuneCountInString(r.Text)
}
