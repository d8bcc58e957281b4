package settings

// Tests for settings loading, saving and deny-pattern matching.

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// parseDenyRule
// ---------------------------------------------------------------------------

func TestParseDenyRule(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// Read() wrapper stripped, leading ./ stripped.
		{"Read(./amplify/generated/**)", "amplify/generated/**"},
		// Leading ./ stripped without Read wrapper.
		{"./amplify/generated/**", "amplify/generated/**"},
		// Bare pattern unchanged.
		{"amplify/generated/**", "amplify/generated/**"},
		// Read() with no leading ./.
		{"Read(scripts/**)", "scripts/**"},
		// Surrounding whitespace is ignored.
		{"  docs/*.md ", "docs/*.md"},
	}
	for _, tc := range tests {
		got := parseDenyRule(tc.input)
		if got != tc.want {
			t.Errorf("parseDenyRule(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// matchDenyPattern
// ---------------------------------------------------------------------------

func TestMatchDenyPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"amplify/generated/**", "amplify/generated", true},
		{"amplify/generated/**", "amplify/generated/schema.ts", true},
		{"amplify/generated/**", "amplify/generated/deep/a.ts", true},
		{"amplify/generated/**", "src/amplify/generated/a.ts", false},
		{"amplify/generated/**", "amplify/backend.ts", false},
		// Single * matches within one path segment.
		{"*.md", "README.md", true},
		{"*.md", "docs/README.md", false},
		{"scripts", "scripts", true},
		{"scripts", "scripts/run.sh", false},
		{"", "anything", false},
	}
	for _, tc := range tests {
		got := matchDenyPattern(tc.pattern, tc.path)
		if got != tc.want {
			t.Errorf("matchDenyPattern(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

// ---------------------------------------------------------------------------
// IsDenied and accessors
// ---------------------------------------------------------------------------

func TestSettings_IsDenied(t *testing.T) {
	s := &Settings{
		Permissions: Permissions{
			Deny: []string{
				"Read(./amplify/generated/**)",
				"scripts/**",
			},
		},
	}

	denied := []string{
		"amplify/generated",
		"amplify/generated/graphql.ts",
		"scripts",
		"scripts/deploy.sh",
	}
	allowed := []string{
		"package.json",
		"amplify/backend.ts",
		"src/scripts/x.ts",
	}

	for _, p := range denied {
		if !s.IsDenied(p) {
			t.Errorf("IsDenied(%q) = false, want true", p)
		}
	}
	for _, p := range allowed {
		if s.IsDenied(p) {
			t.Errorf("IsDenied(%q) = true, want false", p)
		}
	}
}

func TestSettings_NilReceiver(t *testing.T) {
	var s *Settings
	if s.IsDenied("anything") {
		t.Error("nil Settings.IsDenied should always return false")
	}
	if got := s.Label("agents4energy"); got != "agents4energy" {
		t.Errorf("Label = %q, want default", got)
	}
	if got := s.Depth(3); got != 3 {
		t.Errorf("Depth = %d, want 3", got)
	}
	if s.WantsFrontmatter() {
		t.Error("nil Settings should not want frontmatter")
	}
}

func TestSettings_Accessors(t *testing.T) {
	s := &Settings{TreeLabel: " myproj ", TreeDepth: 5, Frontmatter: true}
	if got := s.Label("agents4energy"); got != "myproj" {
		t.Errorf("Label = %q, want %q", got, "myproj")
	}
	if got := s.Depth(3); got != 5 {
		t.Errorf("Depth = %d, want 5", got)
	}
	if !s.WantsFrontmatter() {
		t.Error("WantsFrontmatter = false, want true")
	}

	neg := &Settings{TreeDepth: -1}
	if got := neg.Depth(3); got != 3 {
		t.Errorf("Depth with negative value = %d, want default 3", got)
	}
}

// ---------------------------------------------------------------------------
// Load / Save
// ---------------------------------------------------------------------------

func TestLoad_FileNotExist(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir)
	if err != nil {
		t.Fatalf("expected nil error for missing file, got: %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil settings for missing file, got: %+v", s)
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, Dir), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `
tree_label: energy
tree_depth: 2
frontmatter: true
permissions:
  deny:
    - "Read(./amplify/generated/**)"
    - "scripts/**"
`
	if err := os.WriteFile(Path(dir), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Settings{
		TreeLabel:   "energy",
		TreeDepth:   2,
		Frontmatter: true,
		Permissions: Permissions{Deny: []string{"Read(./amplify/generated/**)", "scripts/**"}},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, Dir), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir), []byte(":\tbad yaml:"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	in := &Settings{
		TreeLabel:   "energy",
		TreeDepth:   4,
		Permissions: Permissions{Deny: []string{"dist-extra/**"}},
	}
	if err := Save(dir, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Save must not overwrite an existing file.
	if err := Save(dir, in); err == nil {
		t.Fatal("expected error on second Save")
	}
}
