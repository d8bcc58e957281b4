package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// writeTree materialises a txtar archive under a fresh temp directory and
// returns that directory. A file whose name ends in "/" creates an empty
// directory.
func writeTree(t *testing.T, archive string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range txtar.Parse([]byte(archive)).Files {
		p := filepath.Join(root, filepath.FromSlash(f.Name))
		if len(f.Name) > 0 && f.Name[len(f.Name)-1] == '/' {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, f.Data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// denyList is a Denier over exact relative paths.
type denyList map[string]bool

func (d denyList) IsDenied(rel string) bool { return d[rel] }
