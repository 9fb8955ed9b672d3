// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render fills category templates with resource fields.
//
// Templates are plain text with {{name}} placeholders. Every occurrence of a
// recognized placeholder is replaced in a single pass; replacement text is
// never rescanned, and placeholders a category does not define are left as
// they are.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/zotero-notes/internal/textutil"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

// YouTubeWatchPrefix is the only YouTube URL form a query string is taken from.
const YouTubeWatchPrefix = "https://www.youtube.com/watch?v="

var (
	// ErrMissingField reports a placeholder whose source field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrUnexpectedURL reports a URL that does not have the expected form.
	ErrUnexpectedURL = errors.New("unexpected URL")

	// ErrUnnamedCreator reports a creator with no usable name.
	ErrUnnamedCreator = textutil.ErrUnnamedCreator
)

// Placeholders lists the placeholder names each category recognizes.
var Placeholders = map[types.Category][]string{
	types.CategoryBook: {
		"id", "full_title", "short_title", "publish_date", "isbn_13",
		"zotero_local_link", "zotero_cloud_link", "authors", "tags", "notes",
	},
	types.CategoryArticle: {
		"id", "full_title", "zotero_local_link", "zotero_cloud_link",
		"authors", "tags", "notes", "url",
	},
	types.CategoryAcademicPaper: {
		"id", "full_title", "zotero_local_link", "zotero_cloud_link",
		"authors", "tags", "notes", "doi", "publish_date", "journal",
	},
	types.CategoryYoutubeVideo: {
		"id", "full_title", "zotero_local_link", "zotero_cloud_link",
		"channel", "tags", "notes", "url_query_string",
	},
	types.CategoryTEDTalk: {
		"id", "full_title", "zotero_local_link", "zotero_cloud_link",
		"speaker", "tags", "notes", "url",
	},
}

// Render substitutes the resource's fields into tmpl.
func Render(r types.Resource, tmpl string) (string, error) {
	fields, err := Fields(r)
	if err != nil {
		return "", err
	}
	pairs := make([]string, 0, 2*len(fields))
	for _, name := range Placeholders[r.Category()] {
		pairs = append(pairs, "{{"+name+"}}", fields[name])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

// Fields returns the rendered text for every placeholder of the resource's
// category. All problems found are joined into one error.
func Fields(r types.Resource) (map[string]string, error) {
	f := &fieldSet{values: make(map[string]string)}
	base := r.Common()
	f.set("id", base.ID)
	f.set("full_title", base.FullTitle)
	f.set("zotero_local_link", base.LocalLink)
	f.set("zotero_cloud_link", base.CloudLink)
	f.set("tags", textutil.TagList(base.Tags))
	f.set("notes", textutil.NoteList(base.Notes))

	switch v := r.(type) {
	case *types.Book:
		f.authors(base.Creators)
		f.optional("short_title", v.ShortTitle)
		f.optional("publish_date", v.PublishDate)
		f.set("isbn_13", v.ISBN)
	case *types.Article:
		f.authors(base.Creators)
		f.set("url", v.URL)
	case *types.AcademicPaper:
		f.authors(base.Creators)
		f.set("doi", v.DOI)
		f.optional("publish_date", v.PublishDate)
		f.optional("journal", v.Journal)
	case *types.YoutubeVideo:
		q, err := QueryString(v.URL)
		f.check("url_query_string", q, err)
		ch, err := firstCreatorName(base.Creators)
		f.check("channel", ch, err)
	case *types.TEDTalk:
		sp, err := firstCreatorName(base.Creators)
		f.check("speaker", sp, err)
		f.set("url", v.URL)
	default:
		return nil, fmt.Errorf("unsupported resource type %T", r)
	}

	if err := errors.Join(f.errs...); err != nil {
		return nil, err
	}
	return f.values, nil
}

// QueryString returns the video id part of a YouTube watch URL.
func QueryString(url string) (string, error) {
	q, ok := strings.CutPrefix(url, YouTubeWatchPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %q does not start with %s", ErrUnexpectedURL, url, YouTubeWatchPrefix)
	}
	if strings.TrimSpace(q) == "" {
		return "", fmt.Errorf("%w: %q has no video id", ErrUnexpectedURL, url)
	}
	return q, nil
}

func firstCreatorName(creators []types.Creator) (string, error) {
	if len(creators) == 0 {
		return "", fmt.Errorf("%w: no creators", ErrMissingField)
	}
	name, ok := creators[0].DisplayName()
	if !ok {
		return "", fmt.Errorf("first creator: %w", ErrUnnamedCreator)
	}
	return name, nil
}

// fieldSet accumulates placeholder values and the errors met building them.
type fieldSet struct {
	values map[string]string
	errs   []error
}

func (f *fieldSet) set(name, value string) {
	f.values[name] = value
}

func (f *fieldSet) optional(name string, value *string) {
	if value == nil {
		f.errs = append(f.errs, fmt.Errorf("{{%s}}: %w", name, ErrMissingField))
		return
	}
	f.values[name] = *value
}

func (f *fieldSet) check(name, value string, err error) {
	if err != nil {
		f.errs = append(f.errs, fmt.Errorf("{{%s}}: %w", name, err))
		return
	}
	f.values[name] = value
}

func (f *fieldSet) authors(creators []types.Creator) {
	s, err := textutil.AuthorList(creators)
	f.check("authors", s, err)
}
