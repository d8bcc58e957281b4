package inspect

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Filter reports whether path qualifies for content inspection: its suffix
// is allow-listed, no ancestor directory is deny-listed, user deny rules do
// not match, and it is at most MaxFileSize bytes. A stat error excludes the
// file.
func (in *Inspector) Filter(path string) bool {
	if !Extensions[strings.ToLower(suffix(filepath.Base(path)))] {
		return false
	}

	// Ancestors are taken relative to the root so that a deny-listed name
	// above the project (e.g. /home/me/build/project) does not hide it.
	dirs := filepath.ToSlash(filepath.Dir(path))
	if rel, ok := in.relPath(path); ok {
		if in.denied(rel) {
			return false
		}
		dirs = pathDir(rel)
	}
	for _, name := range strings.Split(dirs, "/") {
		if ExcludeDirs[name] {
			return false
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Size() <= MaxFileSize
}

// ReadText returns the file content with invalid UTF-8 dropped. On any I/O
// error the error text takes the place of the content so scanning can go on.
func ReadText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "Error reading file: " + err.Error()
	}
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}

// suffix returns the final extension of name. A name whose only dot is the
// leading one (".bashrc") has no suffix, nor does a name ending in a dot.
func suffix(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// pathDir is path.Dir for a relative forward-slash path, returning "" for
// top-level entries.
func pathDir(rel string) string {
	i := strings.LastIndex(rel, "/")
	if i < 0 {
		return ""
	}
	return rel[:i]
}
