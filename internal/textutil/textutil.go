// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil renders resource lists into Markdown fragments for
// template substitution.
package textutil

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

// noteSeparator follows each note in a rendered note list.
const noteSeparator = "\n---"

// ErrUnnamedCreator is returned when a creator has neither a single name nor
// a first/last pair.
var ErrUnnamedCreator = errors.New("creator has no name")

// blockEnds are the elements whose end tag starts a new line in stripped
// text.
var blockEnds = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Blockquote: true,
	atom.Pre: true, atom.Tr: true, atom.H1: true, atom.H2: true,
	atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
}

// StripMarkup returns the text nodes of an HTML fragment with entities
// decoded. Block elements and <br> end a line. Malformed markup yields
// whatever text the tokenizer recovers.
func StripMarkup(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF at the end of input, or a tokenizer error on broken
			// markup; either way keep what was collected.
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if (a == atom.Br && tt != html.EndTagToken) || (blockEnds[a] && tt == html.EndTagToken) {
				lineBreak(&b)
			}
		}
	}
}

// lineBreak ends the current line unless the text is empty or already ends
// with one.
func lineBreak(b *strings.Builder) {
	if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
}

// AuthorList renders creators as wiki-link bullets, one per line, each
// preceded by a newline: "\n- [[Jane Smith]]".
func AuthorList(creators []types.Creator) (string, error) {
	var b strings.Builder
	for i, c := range creators {
		name, ok := c.DisplayName()
		if !ok {
			return "", fmt.Errorf("creator %d: %w", i+1, ErrUnnamedCreator)
		}
		b.WriteString("\n- [[")
		b.WriteString(name)
		b.WriteString("]]")
	}
	return b.String(), nil
}

// TagList renders tags as hashtag bullets in input order: "\n- #software".
func TagList(tags []types.Tag) string {
	var b strings.Builder
	for _, t := range tags {
		b.WriteString("\n- #")
		b.WriteString(t.Tag)
	}
	return b.String()
}

// NoteList renders notes newest first. Zotero lists notes oldest first, so
// the input is walked in reverse. Each note is followed by a horizontal rule
// except the last.
func NoteList(notes []string) string {
	var b strings.Builder
	for i := len(notes) - 1; i >= 0; i-- {
		b.WriteString("\n")
		b.WriteString(notes[i])
		b.WriteString(noteSeparator)
	}
	return strings.TrimSuffix(b.String(), noteSeparator)
}
