// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Library is the parsed Zotero library export. Only Items drive note
// generation; Collections are carried through to the catalog and Config is
// opaque exporter settings.
type Library struct {
	Collections map[string]Collection `json:"collections" yaml:"collections"`
	Config      map[string]any        `json:"config,omitempty" yaml:"config,omitempty"`
	Items       []Item                `json:"items" yaml:"items"`
}

// Collection is a named group of items in the library export.
type Collection struct {
	Key         string   `json:"key" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	Parent      *string  `json:"parent,omitempty" yaml:"parent,omitempty"`
	Collections []string `json:"collections,omitempty" yaml:"collections,omitempty"`
	Items       []int    `json:"items" yaml:"items"`
}

// Item is one raw reference record from the export. Optional scalars are
// pointers so that an absent field can be told apart from an empty one.
type Item struct {
	// ID is the citation key; it names the output file.
	ID       string `json:"citationKey" yaml:"citationKey"`
	ItemID   int    `json:"itemID,omitempty" yaml:"itemID,omitempty"`
	ItemType string `json:"itemType" yaml:"itemType"`

	DOI            *string `json:"DOI,omitempty" yaml:"DOI,omitempty"`
	URL            *string `json:"url,omitempty" yaml:"url,omitempty"`
	Title          *string `json:"title,omitempty" yaml:"title,omitempty"`
	ShortTitle     *string `json:"shortTitle,omitempty" yaml:"shortTitle,omitempty"`
	Date           *string `json:"date,omitempty" yaml:"date,omitempty"`
	Journal        *string `json:"publicationTitle,omitempty" yaml:"publicationTitle,omitempty"`
	LibraryCatalog *string `json:"libraryCatalog,omitempty" yaml:"libraryCatalog,omitempty"`
	ISBN           *string `json:"ISBN,omitempty" yaml:"ISBN,omitempty"`

	Creators []Creator `json:"creators" yaml:"creators"`
	Tags     []Tag     `json:"tags" yaml:"tags"`
	Notes    []Note    `json:"notes" yaml:"notes"`

	// Select is the zotero://select link into the desktop library.
	Select *string `json:"select,omitempty" yaml:"select,omitempty"`
	// URI is the zotero.org web library link.
	URI *string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// Creator is a contributor. Zotero stores either a single Name (channels,
// institutions) or a FirstName/LastName pair.
type Creator struct {
	CreatorType *string `json:"creatorType,omitempty" yaml:"creatorType,omitempty"`
	FirstName   *string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Name        *string `json:"name,omitempty" yaml:"name,omitempty"`
}

// DisplayName returns "First Last" when both halves are non-blank, otherwise
// the single name. ok is false when neither shape is populated.
func (c Creator) DisplayName() (name string, ok bool) {
	first, last := trimmed(c.FirstName), trimmed(c.LastName)
	if first != "" && last != "" {
		return first + " " + last, true
	}
	if n := trimmed(c.Name); n != "" {
		return n, true
	}
	return "", false
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// Tag is a single label attached to an item.
type Tag struct {
	Tag string `json:"tag" yaml:"tag"`
}

// Note is a child note. Content is HTML as stored by Zotero.
type Note struct {
	Content      string `json:"note" yaml:"note"`
	DateAdded    string `json:"dateAdded,omitempty" yaml:"dateAdded,omitempty"`
	DateModified string `json:"dateModified,omitempty" yaml:"dateModified,omitempty"`
	URI          string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// Str returns a pointer to s. It keeps fixtures and tests short.
func Str(s string) *string {
	return &s
}
