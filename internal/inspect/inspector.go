// Package inspect walks a project directory and extracts the superficial
// facts the report is built from: package manifest metadata, a file tree,
// Amplify backend agent markers, and AWS service keyword hits.
//
// Detection is plain substring matching. Missing optional files and
// per-file I/O errors never fail a run; they degrade to empty or
// placeholder values. Only an unreadable root directory is an error.
package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxFileSize is the byte ceiling above which Filter rejects a file.
const MaxFileSize int64 = 1024 * 1024

// DefaultTreeDepth is the file tree depth used when none is configured.
const DefaultTreeDepth = 3

// DefaultTreeLabel names the root line of the file tree.
const DefaultTreeLabel = "agents4energy"

// Extensions is the allow-list of file suffixes eligible for inspection.
var Extensions = map[string]bool{
	".ts": true, ".tsx": true, ".js": true, ".jsx": true,
	".json": true, ".md": true, ".yml": true, ".yaml": true,
	".mjs": true, ".scss": true, ".css": true, ".py": true, ".sh": true,
}

// ExcludeDirs is the deny-list of directory names skipped everywhere.
var ExcludeDirs = map[string]bool{
	".git": true, ".next": true, "node_modules": true, ".amplify": true,
	"dist": true, "build": true, ".nyc_output": true, "coverage": true,
	".pytest_cache": true, "__pycache__": true,
}

// Denier reports whether a root-relative, forward-slash path is excluded by
// user configuration. *settings.Settings implements it.
type Denier interface {
	IsDenied(relPath string) bool
}

// Inspector extracts ProjectFacts from a filesystem root.
type Inspector struct {
	Root      string
	TreeDepth int
	TreeLabel string

	// Deny, when non-nil, excludes additional paths from Filter and the tree.
	Deny Denier
}

// New returns an Inspector for root with default tree settings.
func New(root string) *Inspector {
	return &Inspector{
		Root:      root,
		TreeDepth: DefaultTreeDepth,
		TreeLabel: DefaultTreeLabel,
	}
}

// ProjectFacts is everything the renderer needs. It is built once per run.
type ProjectFacts struct {
	Package   PackageFacts
	Framework FrameworkFacts
	Infra     InfraFacts
	FileTree  string
}

// Inspect runs every extraction pass over the root directory.
func (in *Inspector) Inspect() (ProjectFacts, error) {
	info, err := os.Stat(in.Root)
	if err != nil {
		return ProjectFacts{}, fmt.Errorf("inspect root: %w", err)
	}
	if !info.IsDir() {
		return ProjectFacts{}, fmt.Errorf("inspect root: %s is not a directory", in.Root)
	}

	tree, err := in.BuildFileTree(in.TreeDepth)
	if err != nil {
		return ProjectFacts{}, err
	}

	return ProjectFacts{
		Package:   ExtractPackageFacts(in.Root),
		Framework: ExtractFrameworkFacts(in.Root),
		Infra:     in.ExtractInfraFacts(),
		FileTree:  tree,
	}, nil
}

// relPath returns path relative to the inspector root in forward-slash form.
// ok is false when path does not lie beneath the root.
func (in *Inspector) relPath(path string) (rel string, ok bool) {
	rootAbs, err := filepath.Abs(in.Root)
	if err != nil {
		return "", false
	}
	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err = filepath.Rel(rootAbs, pathAbs)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return rel, true
}

func (in *Inspector) denied(rel string) bool {
	return in.Deny != nil && in.Deny.IsDenied(rel)
}
