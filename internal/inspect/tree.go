package inspect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// BuildFileTree renders the root as an indented box-drawing tree, at most
// maxDepth levels deep. Dot-files, deny-listed names and user-denied paths
// are omitted; entries are sorted by name. A sub-directory that cannot be
// read for lack of permission becomes a single "[Permission Denied]" leaf.
// Only failing to read the root itself is an error.
func (in *Inspector) BuildFileTree(maxDepth int) (string, error) {
	label := in.TreeLabel
	if label == "" {
		label = DefaultTreeLabel
	}
	lines := []string{"📁 " + label + "/"}

	entries, err := os.ReadDir(in.Root)
	if err != nil {
		return "", fmt.Errorf("read root directory: %w", err)
	}
	lines = in.appendTree(lines, in.Root, "", entries, "", 0, maxDepth)
	return strings.Join(lines, "\n"), nil
}

func (in *Inspector) appendTree(lines []string, dir, rel string, entries []fs.DirEntry, prefix string, depth, maxDepth int) []string {
	if depth >= maxDepth {
		return lines
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || ExcludeDirs[name] {
			continue
		}
		if in.denied(path.Join(rel, name)) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	kinds := make(map[string]fs.DirEntry, len(entries))
	for _, e := range entries {
		kinds[e.Name()] = e
	}

	for i, name := range names {
		isLast := i == len(names)-1
		branch, nextPrefix := "├── ", prefix+"│   "
		if isLast {
			branch, nextPrefix = "└── ", prefix+"    "
		}
		lines = append(lines, prefix+branch+name)

		childPath := filepath.Join(dir, name)
		if depth >= maxDepth-1 || !isDir(childPath, kinds[name]) {
			continue
		}
		children, err := os.ReadDir(childPath)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				lines = append(lines, nextPrefix+"└── [Permission Denied]")
			}
			continue
		}
		lines = in.appendTree(lines, childPath, path.Join(rel, name), children, nextPrefix, depth+1, maxDepth)
	}
	return lines
}

// isDir follows symlinks so linked directories are expanded like real ones;
// the depth limit bounds any cycle.
func isDir(p string, e fs.DirEntry) bool {
	if e == nil {
		return false
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
