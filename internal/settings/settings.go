// Package settings loads analyzer configuration from .analyzer/settings.yaml.
//
// The settings file is optional. It carries the tree label and depth, a
// frontmatter switch, and a deny list of glob patterns that controls which
// files the analyzer reads. Patterns may be written as bare globs
// ("amplify/generated/**") or wrapped in a Read() verb
// ("Read(./amplify/generated/**)").
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dir and File locate the settings file relative to the analyzed root.
const (
	Dir  = ".analyzer"
	File = "settings.yaml"
)

// Settings holds analyzer configuration from .analyzer/settings.yaml.
type Settings struct {
	// TreeLabel is the name shown on the first line of the file tree.
	TreeLabel string `yaml:"tree_label,omitempty"`

	// TreeDepth limits the file tree. Zero means the default.
	TreeDepth int `yaml:"tree_depth,omitempty"`

	// Frontmatter prepends YAML frontmatter to the generated report.
	Frontmatter bool `yaml:"frontmatter,omitempty"`

	Permissions Permissions `yaml:"permissions,omitempty"`
}

// Permissions controls which files the analyzer reads.
type Permissions struct {
	// Deny is a list of glob patterns for files the analyzer should not read.
	// Patterns may be bare globs or wrapped in Read(...).
	// Example: ["Read(./amplify/generated/**)"]
	Deny []string `yaml:"deny,omitempty"`
}

// Path returns the settings file path for root.
func Path(root string) string {
	return filepath.Join(root, Dir, File)
}

// Load reads .analyzer/settings.yaml relative to root.
// Returns nil (not an error) if the file does not exist.
func Load(root string) (*Settings, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// Save writes s to .analyzer/settings.yaml under root. Errors if the file
// already exists.
func Save(root string, s *Settings) error {
	path := Path(root)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings already exist at %s", path)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Label returns the configured tree label, or def when unset.
// Safe to call on a nil *Settings receiver.
func (s *Settings) Label(def string) string {
	if s == nil || strings.TrimSpace(s.TreeLabel) == "" {
		return def
	}
	return strings.TrimSpace(s.TreeLabel)
}

// Depth returns the configured tree depth, or def when unset or invalid.
// Safe to call on a nil *Settings receiver.
func (s *Settings) Depth(def int) int {
	if s == nil || s.TreeDepth <= 0 {
		return def
	}
	return s.TreeDepth
}

// WantsFrontmatter reports whether frontmatter output is enabled.
func (s *Settings) WantsFrontmatter() bool {
	return s != nil && s.Frontmatter
}

// IsDenied reports whether relPath (forward-slash, relative to root) matches
// any deny rule. Safe to call on a nil *Settings receiver.
func (s *Settings) IsDenied(relPath string) bool {
	if s == nil {
		return false
	}
	for _, rule := range s.Permissions.Deny {
		if matchDenyPattern(parseDenyRule(rule), relPath) {
			return true
		}
	}
	return false
}

// parseDenyRule extracts the path glob from a deny rule.
//
//	"Read(./amplify/generated/**)" → "amplify/generated/**"
//	"amplify/generated/**"         → "amplify/generated/**"
func parseDenyRule(rule string) string {
	rule = strings.TrimSpace(rule)
	if strings.HasPrefix(rule, "Read(") && strings.HasSuffix(rule, ")") {
		rule = rule[5 : len(rule)-1]
	}
	return strings.TrimPrefix(rule, "./")
}

// matchDenyPattern reports whether path matches a deny glob pattern.
//
// "prefix/**" matches the prefix directory itself and every path beneath it.
// All other patterns use filepath.Match semantics (single * does not cross /).
func matchDenyPattern(pattern, path string) bool {
	if pattern == "" {
		return false
	}
	if strings.HasSuffix(pattern, "/**") {
		prefix := strings.TrimSuffix(pattern, "/**")
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	matched, _ := filepath.Match(pattern, path)
	return matched
}
