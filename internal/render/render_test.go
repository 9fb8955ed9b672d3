// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

func base(id string) types.Base {
	return types.Base{
		ID:        id,
		FullTitle: "Full " + id,
		LocalLink: "local://" + id,
		CloudLink: "cloud://" + id,
	}
}

func smithBook() *types.Book {
	b := base("smith2020")
	b.FullTitle = "On Systems"
	b.Creators = []types.Creator{{FirstName: types.Str("Jane"), LastName: types.Str("Smith")}}
	b.Tags = []types.Tag{{Tag: "software"}}
	return &types.Book{
		Base:        b,
		ISBN:        "978-0-1",
		ShortTitle:  types.Str("Systems"),
		PublishDate: types.Str("2020"),
	}
}

func TestRenderBook(t *testing.T) {
	got, err := Render(smithBook(), "{{id}} | {{full_title}} ({{publish_date}}) ISBN {{isbn_13}} by{{authors}}")
	require.NoError(t, err)
	assert.Equal(t, "smith2020 | On Systems (2020) ISBN 978-0-1 by\n- [[Jane Smith]]", got)
}

func TestRenderRepeatedAndUnknownPlaceholders(t *testing.T) {
	got, err := Render(smithBook(), "{{tags}}|{{tags}}|{{unknown}}|{{url}}")
	require.NoError(t, err)
	assert.Equal(t, "\n- #software|\n- #software|{{unknown}}|{{url}}", got)
}

func TestRenderSinglePass(t *testing.T) {
	b := smithBook()
	b.FullTitle = "About {{id}}"
	got, err := Render(b, "{{full_title}}")
	require.NoError(t, err)
	assert.Equal(t, "About {{id}}", got)
}

func TestRenderAllCategories(t *testing.T) {
	tests := []struct {
		name string
		res  types.Resource
		tmpl string
		want string
	}{
		{
			name: "article",
			res: &types.Article{
				Base: func() types.Base {
					b := base("a1")
					b.Creators = []types.Creator{{Name: types.Str("Blog Author")}}
					b.Notes = []string{"old", "new"}
					return b
				}(),
				URL: "https://example.com/post",
			},
			tmpl: "{{url}}{{authors}}{{notes}}|{{zotero_local_link}}|{{zotero_cloud_link}}",
			want: "https://example.com/post\n- [[Blog Author]]\nnew\n---\nold|local://a1|cloud://a1",
		},
		{
			name: "academic paper",
			res: &types.AcademicPaper{
				Base:        base("p1"),
				DOI:         "10.1/x",
				Journal:     types.Str("Nature"),
				PublishDate: types.Str("2019-05"),
			},
			tmpl: "{{doi}} {{journal}} {{publish_date}} [{{authors}}]",
			want: "10.1/x Nature 2019-05 []",
		},
		{
			name: "youtube video",
			res: &types.YoutubeVideo{
				Base: func() types.Base {
					b := base("vid1")
					b.Creators = []types.Creator{{Name: types.Str("SomeChannel")}}
					return b
				}(),
				URL: "https://www.youtube.com/watch?v=abc123",
			},
			tmpl: "{{channel}} {{url_query_string}} {{authors}}",
			want: "SomeChannel abc123 {{authors}}",
		},
		{
			name: "ted talk",
			res: &types.TEDTalk{
				Base: func() types.Base {
					b := base("ted1")
					b.Creators = []types.Creator{{FirstName: types.Str("Ken"), LastName: types.Str("Robinson")}}
					return b
				}(),
				URL: "https://www.ted.com/talks/x",
			},
			tmpl: "{{speaker}} {{url}} {{full_title}}",
			want: "Ken Robinson https://www.ted.com/talks/x Full ted1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.res, tt.tmpl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name    string
		res     types.Resource
		wantErr error
		wantMsg string
	}{
		{
			name:    "youtube wrong prefix",
			res:     &types.YoutubeVideo{Base: func() types.Base { b := base("v"); b.Creators = []types.Creator{{Name: types.Str("c")}}; return b }(), URL: "https://vimeo.com/123"},
			wantErr: ErrUnexpectedURL,
			wantMsg: "url_query_string",
		},
		{
			name:    "youtube empty video id",
			res:     &types.YoutubeVideo{Base: func() types.Base { b := base("v"); b.Creators = []types.Creator{{Name: types.Str("c")}}; return b }(), URL: YouTubeWatchPrefix},
			wantErr: ErrUnexpectedURL,
			wantMsg: "url_query_string",
		},
		{
			name:    "ted talk blank speaker name",
			res:     &types.TEDTalk{Base: func() types.Base { b := base("t"); b.Creators = []types.Creator{{Name: types.Str(" ")}}; return b }(), URL: "u"},
			wantErr: ErrUnnamedCreator,
			wantMsg: "speaker",
		},
		{
			name:    "youtube without creators",
			res:     &types.YoutubeVideo{Base: base("v"), URL: YouTubeWatchPrefix + "x"},
			wantErr: ErrMissingField,
			wantMsg: "channel",
		},
		{
			name:    "ted talk unnamed speaker",
			res:     &types.TEDTalk{Base: func() types.Base { b := base("t"); b.Creators = []types.Creator{{LastName: types.Str("Solo")}}; return b }(), URL: "u"},
			wantErr: ErrUnnamedCreator,
			wantMsg: "speaker",
		},
		{
			name:    "book without short title",
			res:     &types.Book{Base: base("b"), ISBN: "978", PublishDate: types.Str("2020")},
			wantErr: ErrMissingField,
			wantMsg: "short_title",
		},
		{
			name:    "paper without journal",
			res:     &types.AcademicPaper{Base: base("p"), DOI: "10.1/x", PublishDate: types.Str("2020")},
			wantErr: ErrMissingField,
			wantMsg: "journal",
		},
		{
			name:    "article with unnamed author",
			res:     &types.Article{Base: func() types.Base { b := base("a"); b.Creators = []types.Creator{{}}; return b }(), URL: "u"},
			wantErr: ErrUnnamedCreator,
			wantMsg: "authors",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.res, "{{id}}")
			require.Error(t, err)
			assert.Empty(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "error %v is not %v", err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFieldsJoinsErrors(t *testing.T) {
	_, err := Fields(&types.Book{Base: base("b"), ISBN: "978"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short_title")
	assert.Contains(t, err.Error(), "publish_date")
}

func TestFieldsCoverPlaceholders(t *testing.T) {
	resources := []types.Resource{
		smithBook(),
		&types.Article{Base: base("a"), URL: "u"},
		&types.AcademicPaper{Base: base("p"), DOI: "d", Journal: types.Str("j"), PublishDate: types.Str("2020")},
		&types.YoutubeVideo{Base: func() types.Base { b := base("v"); b.Creators = []types.Creator{{Name: types.Str("c")}}; return b }(), URL: YouTubeWatchPrefix + "q"},
		&types.TEDTalk{Base: func() types.Base { b := base("t"); b.Creators = []types.Creator{{Name: types.Str("s")}}; return b }(), URL: "u"},
	}
	for _, r := range resources {
		fields, err := Fields(r)
		require.NoError(t, err, "category %s", r.Category())
		for _, name := range Placeholders[r.Category()] {
			_, ok := fields[name]
			assert.True(t, ok, "category %s missing field %s", r.Category(), name)
		}
	}
	assert.Len(t, Placeholders, len(types.Categories))
}

func TestQueryString(t *testing.T) {
	q, err := QueryString("https://www.youtube.com/watch?v=abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", q)

	for _, u := range []string{"https://vimeo.com/123", "https://youtu.be/abc123", "http://www.youtube.com/watch?v=abc", "https://www.youtube.com/watch?v=", "https://www.youtube.com/watch?v=  "} {
		_, err := QueryString(u)
		assert.ErrorIs(t, err, ErrUnexpectedURL, u)
	}
}
