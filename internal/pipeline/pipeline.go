// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs a full note generation pass: load the library,
// classify every item, recreate the category folders, render and write the
// notes, and rebuild the catalog.
//
// Problems with a single record never stop the run. They are collected in
// the Report and printed at the end.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/zotero-notes/internal/catalog"
	"github.com/pdiddy/zotero-notes/internal/classify"
	"github.com/pdiddy/zotero-notes/internal/library"
	"github.com/pdiddy/zotero-notes/internal/logger"
	"github.com/pdiddy/zotero-notes/internal/registry"
	"github.com/pdiddy/zotero-notes/internal/templates"
	"github.com/pdiddy/zotero-notes/internal/writer"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

// Dropped is a record that matched no category.
type Dropped struct {
	ID     string `yaml:"id"`
	Reason string `yaml:"reason"`
}

// Classification is the outcome of classifying a whole library.
type Classification struct {
	Registry *registry.Registry
	Dropped  []Dropped
	Failures []types.RecordFailure
}

// Report summarizes a run.
type Report struct {
	RunID      string                 `yaml:"run_id"`
	StartedAt  time.Time              `yaml:"started_at"`
	Records    int                    `yaml:"records"`
	Classified map[types.Category]int `yaml:"classified"`
	Written    int                    `yaml:"written"`
	Dropped    []Dropped              `yaml:"dropped,omitempty"`
	Failures   []types.RecordFailure  `yaml:"failures,omitempty"`
}

// HasFailures reports whether any record failed classification, rendering,
// or writing.
func (r Report) HasFailures() bool {
	return len(r.Failures) > 0
}

// ClassifyAll classifies every item in input order.
func ClassifyAll(ctx context.Context, lib *types.Library) (Classification, error) {
	out := Classification{Registry: registry.New()}
	for i := range lib.Items {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}

		item := &lib.Items[i]
		res, err := classify.Classify(item)
		switch {
		case err != nil:
			cat, _ := classify.Match(item)
			out.Failures = append(out.Failures, types.RecordFailure{
				ID: item.ID, Category: cat, Stage: types.StageClassify, Reason: err.Error(),
			})
		case res == nil:
			reason := classify.DropReason(item)
			logger.WithField("id", item.ID).Debugf("dropped: %s", reason)
			out.Dropped = append(out.Dropped, Dropped{ID: item.ID, Reason: reason})
		default:
			logger.WithField("id", item.ID).Debugf("classified as %s", res.Category())
			out.Registry.Add(res)
		}
	}
	return out, nil
}

// Run performs a full generation pass with cfg, printing progress to w. The
// returned error is non-nil only for failures that abort the whole run.
func Run(ctx context.Context, cfg types.NotesConfig, w io.Writer) (Report, error) {
	report := Report{
		RunID:      uuid.New().String(),
		StartedAt:  time.Now().UTC(),
		Classified: make(map[types.Category]int),
	}

	if err := cfg.Validate(); err != nil {
		return report, fmt.Errorf("invalid config: %w", err)
	}

	lib, err := library.Load(cfg.LibraryPath)
	if err != nil {
		return report, err
	}
	report.Records = len(lib.Items)
	logger.Info("loaded %d items, %d collections from %s", len(lib.Items), len(lib.Collections), cfg.LibraryPath)

	set, err := templates.Load(cfg.TemplatesDir)
	if err != nil {
		return report, err
	}

	cls, err := ClassifyAll(ctx, lib)
	if err != nil {
		return report, err
	}
	report.Dropped = cls.Dropped
	report.Failures = append(report.Failures, cls.Failures...)
	for _, c := range types.Categories {
		report.Classified[c] = cls.Registry.Len(c)
	}
	for _, f := range cls.Failures {
		fmt.Fprintf(w, "failed:  %s (%s)\n", f.ID, f.Reason)
	}

	wr := writer.New(cfg.OutputDir, cfg.Extension, set)
	if err := wr.Prepare(cls.Registry); err != nil {
		return report, err
	}
	result := wr.WriteAll(cls.Registry, w)
	report.Written = result.Written
	report.Failures = append(report.Failures, result.Failures...)

	if cfg.CatalogPath != "" {
		if err := updateCatalog(ctx, cfg, report, lib, result.Notes); err != nil {
			fmt.Fprintf(w, "warning: catalog update failed: %v\n", err)
		}
	}

	PrintSummary(report, w)

	if cfg.ReportPath != "" {
		if err := WriteReport(report, cfg.ReportPath); err != nil {
			return report, err
		}
	}
	return report, nil
}

// PrintSummary writes the end-of-run summary and the list of failed records.
func PrintSummary(r Report, w io.Writer) {
	fmt.Fprintf(w, "\nSummary: %d records, %d written, %d dropped, %d failed\n",
		r.Records, r.Written, len(r.Dropped), len(r.Failures))
	for _, c := range types.Categories {
		fmt.Fprintf(w, "  %-16s %d\n", c.Folder()+":", r.Classified[c])
	}
	if len(r.Failures) > 0 {
		fmt.Fprintln(w, "\nFailed records:")
		for _, f := range r.Failures {
			fmt.Fprintf(w, "  %s [%s/%s]: %s\n", f.ID, f.Stage, f.Category, f.Reason)
		}
	}
}

// WriteReport saves the report as YAML at path.
func WriteReport(r Report, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

func updateCatalog(ctx context.Context, cfg types.NotesConfig, report Report, lib *types.Library, notes []writer.Note) error {
	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	members := library.Memberships(lib)
	itemIDs := make(map[string]int, len(lib.Items))
	for _, it := range lib.Items {
		if it.ItemID != 0 {
			itemIDs[it.ID] = it.ItemID
		}
	}

	entries := make([]catalog.Entry, len(notes))
	for i, n := range notes {
		entries[i] = entryFor(n, members[itemIDs[n.Resource.Common().ID]])
	}

	run := catalog.Run{
		ID:          report.RunID,
		StartedAt:   report.StartedAt,
		LibraryPath: cfg.LibraryPath,
		Written:     report.Written,
		Failed:      len(report.Failures),
	}
	if err := store.Rebuild(ctx, run, entries); err != nil {
		return err
	}
	logger.Info("catalog %s rebuilt with %d notes", cfg.CatalogPath, len(entries))
	return nil
}

func entryFor(n writer.Note, collections []string) catalog.Entry {
	base := n.Resource.Common()
	tags := make([]string, len(base.Tags))
	for i, t := range base.Tags {
		tags[i] = t.Tag
	}
	return catalog.Entry{
		ID:          base.ID,
		Category:    n.Resource.Category(),
		Title:       base.FullTitle,
		Path:        n.Path,
		Tags:        tags,
		Collections: collections,
		Notes:       strings.Join(base.Notes, "\n"),
	}
}
