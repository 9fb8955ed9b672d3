// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package templates loads the per-category note templates from disk and
// provides starter templates for new vaults.
package templates

import (
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

// templateExt is the extension of template files (Resource/Book.md).
const templateExt = ".md"

//go:embed defaults/*.md
var defaults embed.FS

// Set holds the loaded template text per category. Categories without a
// template file are absent.
type Set map[types.Category]string

// Lookup returns the template for c.
func (s Set) Lookup(c types.Category) (string, bool) {
	t, ok := s[c]
	return t, ok
}

// Load reads <dir>/<TemplateName>.md for every category. A missing file is
// not an error here; the writer fails only when a category that has
// resources has no template.
func Load(dir string) (Set, error) {
	set := make(Set)
	for _, c := range types.Categories {
		path := Path(dir, c)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading template %s: %w", path, err)
		}
		set[c] = string(data)
	}
	return set, nil
}

// Path returns the template file path for c under dir.
func Path(dir string, c types.Category) string {
	return filepath.Join(dir, c.TemplateName()+templateExt)
}

// Default returns the built-in starter template for c.
func Default(c types.Category) (string, error) {
	data, err := defaults.ReadFile("defaults/" + c.TemplateName() + templateExt)
	if err != nil {
		return "", fmt.Errorf("no default template for %s: %w", c, err)
	}
	return string(data), nil
}

// WriteDefaults writes the starter templates into dir. Existing files are
// left untouched. It returns the number of files written.
func WriteDefaults(dir string, w io.Writer) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("creating templates dir: %w", err)
	}

	written := 0
	for _, c := range types.Categories {
		path := Path(dir, c)
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", path)
			continue
		}
		text, err := Default(c)
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(w, "created: %s\n", path)
		written++
	}
	return written, nil
}
