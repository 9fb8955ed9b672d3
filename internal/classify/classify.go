// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps raw library items onto resource categories.
//
// Matching is decided only by the item type and the presence of the
// category-defining field. An item that matches no category is dropped.
// An item that matches but lacks a title or either Zotero link cannot be
// turned into a resource and is reported as an error instead.
package classify

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pdiddy/zotero-notes/internal/textutil"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

// Catalog names Zotero records in libraryCatalog for video sources.
const (
	CatalogYouTube = "YouTube"
	CatalogTED     = "www.ted.com"
)

// ErrMissingField reports an item that matched a category but lacks a
// field every resource needs.
var ErrMissingField = errors.New("missing required field")

// rule is one row of the classification table. Rules are evaluated in
// order and the first match wins.
type rule struct {
	category  types.Category
	itemTypes []string
	match     func(item *types.Item) bool
}

var rules = []rule{
	{types.CategoryBook, []string{"book"}, func(it *types.Item) bool {
		return it.ISBN != nil
	}},
	{types.CategoryAcademicPaper, []string{"journalArticle"}, func(it *types.Item) bool {
		return it.DOI != nil
	}},
	{types.CategoryArticle, []string{"webpage", "blogPost"}, func(it *types.Item) bool {
		return it.URL != nil
	}},
	{types.CategoryYoutubeVideo, []string{"videoRecording"}, func(it *types.Item) bool {
		return catalogIs(it, CatalogYouTube) && it.URL != nil
	}},
	{types.CategoryTEDTalk, []string{"videoRecording"}, func(it *types.Item) bool {
		return catalogIs(it, CatalogTED) && it.URL != nil
	}},
}

// Match returns the category the item belongs to. ok is false when no
// category predicate holds.
func Match(item *types.Item) (types.Category, bool) {
	for _, r := range rules {
		if !slices.Contains(r.itemTypes, item.ItemType) {
			continue
		}
		if r.match(item) {
			return r.category, true
		}
	}
	return "", false
}

// Classify builds the resource for item. It returns (nil, nil) when the
// item matches no category, and an error wrapping ErrMissingField when the
// item matches but lacks its title or a Zotero link.
func Classify(item *types.Item) (types.Resource, error) {
	cat, ok := Match(item)
	if !ok {
		return nil, nil
	}

	base, err := newBase(item)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", cat, item.ID, err)
	}

	switch cat {
	case types.CategoryBook:
		return &types.Book{
			Base:        base,
			ISBN:        *item.ISBN,
			ShortTitle:  item.ShortTitle,
			PublishDate: item.Date,
		}, nil
	case types.CategoryAcademicPaper:
		return &types.AcademicPaper{
			Base:        base,
			DOI:         *item.DOI,
			Journal:     item.Journal,
			PublishDate: item.Date,
		}, nil
	case types.CategoryArticle:
		return &types.Article{Base: base, URL: *item.URL}, nil
	case types.CategoryYoutubeVideo:
		return &types.YoutubeVideo{Base: base, URL: *item.URL}, nil
	case types.CategoryTEDTalk:
		return &types.TEDTalk{Base: base, URL: *item.URL}, nil
	}
	return nil, nil
}

// DropReason explains why Match found no category for item. It is used for
// verbose logging and the dry-run listing.
func DropReason(item *types.Item) string {
	switch item.ItemType {
	case "book":
		return "book without ISBN"
	case "journalArticle":
		return "journal article without DOI"
	case "webpage", "blogPost":
		return item.ItemType + " without URL"
	case "videoRecording":
		if item.URL == nil {
			return "video without URL"
		}
		if item.LibraryCatalog == nil {
			return "video without library catalog"
		}
		return fmt.Sprintf("video from unsupported catalog %q", *item.LibraryCatalog)
	default:
		return fmt.Sprintf("unsupported item type %q", item.ItemType)
	}
}

func newBase(item *types.Item) (types.Base, error) {
	var missing []string
	if item.Title == nil {
		missing = append(missing, "title")
	}
	if item.Select == nil {
		missing = append(missing, "select (local link)")
	}
	if item.URI == nil {
		missing = append(missing, "uri (cloud link)")
	}
	if len(missing) > 0 {
		return types.Base{}, fmt.Errorf("%w: %v", ErrMissingField, missing)
	}

	notes := make([]string, len(item.Notes))
	for i, n := range item.Notes {
		notes[i] = textutil.StripMarkup(n.Content)
	}

	return types.Base{
		ID:        item.ID,
		FullTitle: *item.Title,
		Tags:      item.Tags,
		Notes:     notes,
		LocalLink: *item.Select,
		CloudLink: *item.URI,
		Creators:  item.Creators,
	}, nil
}

func catalogIs(item *types.Item, name string) bool {
	return item.LibraryCatalog != nil && *item.LibraryCatalog == name
}
