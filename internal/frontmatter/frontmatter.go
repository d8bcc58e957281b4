// Package frontmatter prepends and splits the YAML header block that an
// analysis report may carry between --- delimiters.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delim = "---\n"

// Prepend marshals meta as YAML and places it above body between ---
// delimiters.
func Prepend(meta any, body string) (string, error) {
	fm, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("frontmatter: marshal: %w", err)
	}
	var b strings.Builder
	b.WriteString(delim)
	b.Write(fm)
	b.WriteString(delim)
	b.WriteString(body)
	return b.String(), nil
}

// Split separates a document into its raw frontmatter YAML and body. The
// document must begin with "---\n" and contain a closing "---" line.
func Split(doc string) (fm string, body string, err error) {
	if !strings.HasPrefix(doc, delim) {
		return "", "", fmt.Errorf("frontmatter: missing opening --- delimiter")
	}
	rest := doc[len(delim):]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", "", fmt.Errorf("frontmatter: missing closing --- delimiter")
	}
	tail := strings.TrimPrefix(rest[idx+len("\n---"):], "\n")
	return rest[:idx+1], tail, nil
}

// Decode splits doc and unmarshals its frontmatter into v, returning the body.
func Decode(doc string, v any) (body string, err error) {
	fm, body, err := Split(doc)
	if err != nil {
		return "", err
	}
	if err := yaml.Unmarshal([]byte(fm), v); err != nil {
		return "", fmt.Errorf("frontmatter: unmarshal: %w", err)
	}
	return body, nil
}
