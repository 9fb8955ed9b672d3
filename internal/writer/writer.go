// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package writer renders registered resources and writes one note file per
// resource into its category folder.
package writer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/zotero-notes/internal/logger"
	"github.com/pdiddy/zotero-notes/internal/registry"
	"github.com/pdiddy/zotero-notes/internal/render"
	"github.com/pdiddy/zotero-notes/internal/templates"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

// Note is a resource that was written to disk.
type Note struct {
	Resource types.Resource
	// Path is relative to the output root.
	Path string
}

// Result holds the outcome of a write pass.
type Result struct {
	Written  int
	Failed   int
	Notes    []Note
	Failures []types.RecordFailure
}

// Total returns the number of resources processed.
func (r Result) Total() int {
	return r.Written + r.Failed
}

// HasFailures reports whether any resource could not be written.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// Writer emits notes under an output root.
type Writer struct {
	root      string
	ext       string
	templates templates.Set
}

// New returns a Writer for the given output root, file extension, and
// templates.
func New(root, ext string, set templates.Set) *Writer {
	return &Writer{root: root, ext: ext, templates: set}
}

// NotePath returns the path of res's note relative to the output root.
func (wr *Writer) NotePath(res types.Resource) string {
	return filepath.Join(res.Category().Folder(), res.Common().ID+wr.ext)
}

// Prepare deletes and recreates every category folder. It first checks
// that each category holding resources has a template so that a missing
// template does not leave the output tree emptied.
func (wr *Writer) Prepare(reg *registry.Registry) error {
	for _, c := range types.Categories {
		if reg.Len(c) == 0 {
			continue
		}
		if _, ok := wr.templates.Lookup(c); !ok {
			return fmt.Errorf("no template for %s (%d resources); expected %s",
				c, reg.Len(c), c.TemplateName()+".md")
		}
	}

	for _, c := range types.Categories {
		dir := filepath.Join(wr.root, c.Folder())
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("clearing %s: %w", dir, err)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		logger.Debug("prepared %s", dir)
	}
	return nil
}

// WriteAll renders and writes every registered resource, category by
// category in registry order. A resource that fails to render or write is
// recorded in the result and the rest are still written. Prepare must have
// succeeded first.
func (wr *Writer) WriteAll(reg *registry.Registry, w io.Writer) Result {
	var result Result
	for _, c := range types.Categories {
		tmpl, _ := wr.templates.Lookup(c)
		for _, res := range reg.All(c) {
			note, failure := wr.write(res, tmpl)
			if failure != nil {
				fmt.Fprintf(w, "failed:  %s (%s)\n", failure.ID, failure.Reason)
				result.Failed++
				result.Failures = append(result.Failures, *failure)
				continue
			}
			fmt.Fprintf(w, "wrote:   %s\n", note.Path)
			result.Written++
			result.Notes = append(result.Notes, note)
		}
	}
	return result
}

func (wr *Writer) write(res types.Resource, tmpl string) (Note, *types.RecordFailure) {
	id := res.Common().ID
	text, err := render.Render(res, tmpl)
	if err != nil {
		return Note{}, &types.RecordFailure{
			ID: id, Category: res.Category(), Stage: types.StageRender, Reason: err.Error(),
		}
	}

	rel := wr.NotePath(res)
	if filepath.Dir(rel) != res.Category().Folder() {
		return Note{}, &types.RecordFailure{
			ID: id, Category: res.Category(), Stage: types.StageWrite,
			Reason: fmt.Sprintf("id %q is not a valid file name", id),
		}
	}
	if err := os.WriteFile(filepath.Join(wr.root, rel), []byte(text), 0o644); err != nil {
		return Note{}, &types.RecordFailure{
			ID: id, Category: res.Category(), Stage: types.StageWrite, Reason: err.Error(),
		}
	}
	return Note{Resource: res, Path: rel}, nil
}
