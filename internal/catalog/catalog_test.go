// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "index", "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntries() []Entry {
	return []Entry{
		{ID: "smith2020", Category: types.CategoryBook, Title: "On Systems", Path: "Books/smith2020.md",
			Tags: []string{"software"}, Collections: []string{"Systems"}, Notes: "Loved the chapter on feedback"},
		{ID: "vid1", Category: types.CategoryYoutubeVideo, Title: "Go Concurrency", Path: "Youtube Videos/vid1.md",
			Tags: []string{"golang"}},
		{ID: "doe2019", Category: types.CategoryAcademicPaper, Title: "Distributed Systems Survey", Path: "Academic Papers/doe2019.md",
			Collections: []string{"Systems", "Reading"}},
	}
}

func TestRebuildAndSearch(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	run := Run{ID: "run-1", StartedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), LibraryPath: "lib.json", Written: 3}
	require.NoError(t, s.Rebuild(ctx, run, sampleEntries()))

	tests := []struct {
		name    string
		query   Query
		wantIDs []string
	}{
		{"all", Query{}, []string{"doe2019", "smith2020", "vid1"}},
		{"title text case insensitive", Query{Text: "SYSTEMS"}, []string{"doe2019", "smith2020"}},
		{"tag text", Query{Text: "golang"}, []string{"vid1"}},
		{"note text", Query{Text: "feedback"}, []string{"smith2020"}},
		{"category", Query{Category: types.CategoryBook}, []string{"smith2020"}},
		{"collection", Query{Collection: "Reading"}, []string{"doe2019"}},
		{"collection and text", Query{Collection: "Systems", Text: "survey"}, []string{"doe2019"}},
		{"limit", Query{Limit: 1}, []string{"doe2019"}},
		{"no match", Query{Text: "quantum"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Search(ctx, tt.query)
			require.NoError(t, err)
			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchDecodesLists(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.Rebuild(ctx, Run{ID: "r", StartedAt: time.Now()}, sampleEntries()))

	got, err := s.Search(ctx, Query{Category: types.CategoryBook})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"software"}, got[0].Tags)
	assert.Equal(t, []string{"Systems"}, got[0].Collections)
	assert.Equal(t, "Books/smith2020.md", got[0].Path)
}

func TestRebuildReplacesPreviousRun(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Rebuild(ctx, Run{ID: "r1", StartedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}, sampleEntries()))
	require.NoError(t, s.Rebuild(ctx, Run{ID: "r2", StartedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), Written: 1}, sampleEntries()[:1]))

	got, err := s.Search(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "smith2020", got[0].ID)

	run, ok, err := s.LastRun(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "r2", run.ID)
	assert.Equal(t, 1, run.Written)
}

func TestRebuildDuplicatePathKeepsLast(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	entries := []Entry{
		{ID: "dup", Category: types.CategoryBook, Title: "First", Path: "Books/dup.md"},
		{ID: "dup", Category: types.CategoryBook, Title: "Second", Path: "Books/dup.md"},
	}
	require.NoError(t, s.Rebuild(ctx, Run{ID: "r", StartedAt: time.Now()}, entries))

	got, err := s.Search(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Second", got[0].Title)
}

func TestLastRunEmpty(t *testing.T) {
	s := openTestStore(t)
	_, ok, err := s.LastRun(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
