// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "just text", "just text"},
		{"paragraph", "<p>Hello <b>world</b></p>", "Hello world"},
		{"zotero note wrapper", `<div data-schema-version="8"><p>Key idea</p></div>`, "Key idea"},
		{"entities", "<p>Fish &amp; chips &lt;3</p>", "Fish & chips <3"},
		{"unclosed tag", "<p>dangling <i>italic", "dangling italic"},
		{"broken tag", "text <a href=", "text"},
		{"comment dropped", "a<!-- hidden -->b", "ab"},
		{"paragraphs on separate lines", "<p>First.</p><p>Second</p>", "First.\nSecond"},
		{"line break", "one<br>two<br/>three", "one\ntwo\nthree"},
		{"nested blocks collapse", `<div><p>Key</p></div><div><ul><li>a</li><li>b</li></ul></div>`, "Key\na\nb"},
		{"leading break dropped", "<br><p>text</p>", "text"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkup(tt.input))
		})
	}
}

func TestAuthorList(t *testing.T) {
	got, err := AuthorList([]types.Creator{
		{FirstName: types.Str("Jane"), LastName: types.Str("Smith")},
		{Name: types.Str("Acme Labs")},
	})
	require.NoError(t, err)
	assert.Equal(t, "\n- [[Jane Smith]]\n- [[Acme Labs]]", got)

	got, err = AuthorList(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAuthorListUnnamed(t *testing.T) {
	tests := []struct {
		name    string
		creator types.Creator
	}{
		{"no shape", types.Creator{CreatorType: types.Str("translator")}},
		{"blank pair", types.Creator{FirstName: types.Str(""), LastName: types.Str("")}},
		{"blank name", types.Creator{Name: types.Str("   ")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AuthorList([]types.Creator{{Name: types.Str("Ok")}, tt.creator})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnnamedCreator))
			assert.Contains(t, err.Error(), "creator 2")
			assert.NotContains(t, got, "[[]]")
		})
	}
}

func TestTagList(t *testing.T) {
	got := TagList([]types.Tag{{Tag: "go"}, {Tag: "cli"}, {Tag: "go"}})
	assert.Equal(t, "\n- #go\n- #cli\n- #go", got)
	assert.Empty(t, TagList(nil))
}

func TestNoteList(t *testing.T) {
	got := NoteList([]string{"N1", "N2", "N3"})
	assert.Equal(t, "\nN3\n---\nN2\n---\nN1", got)
	assert.Less(t, strings.Index(got, "N3"), strings.Index(got, "N1"))

	assert.Equal(t, "\nonly", NoteList([]string{"only"}))
	assert.Empty(t, NoteList(nil))
}
