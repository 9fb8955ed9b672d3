// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes classified resources as CSL-YAML so the same
// reference set can be fed to Pandoc or another reference manager.
package export

import (
	"io"
	"regexp"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. Field names follow the CSL-YAML schema.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	TitleShort     string    `yaml:"title-short,omitempty"`
	Author         []CSLName `yaml:"author,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	ISBN           string    `yaml:"ISBN,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Keyword        string    `yaml:"keyword,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date using date-parts, or the raw string when it
// cannot be split into year/month/day.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts,omitempty"`
	Raw       string  `yaml:"raw,omitempty"`
}

// FormatCSL writes resources as a CSL-YAML list to w, in the given order.
func FormatCSL(resources []types.Resource, w io.Writer) error {
	items := make([]CSLItem, len(resources))
	for i, r := range resources {
		items[i] = ToCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// ToCSLItem converts a classified resource to a CSLItem.
func ToCSLItem(r types.Resource) CSLItem {
	base := r.Common()
	item := CSLItem{
		ID:     base.ID,
		Title:  base.FullTitle,
		Author: cslNames(base.Creators),
	}
	if len(base.Tags) > 0 {
		for i, t := range base.Tags {
			if i > 0 {
				item.Keyword += ", "
			}
			item.Keyword += t.Tag
		}
	}

	switch v := r.(type) {
	case *types.Book:
		item.Type = "book"
		item.ISBN = v.ISBN
		item.TitleShort = deref(v.ShortTitle)
		item.Issued = parseDate(deref(v.PublishDate))
	case *types.AcademicPaper:
		item.Type = "article-journal"
		item.DOI = v.DOI
		item.ContainerTitle = deref(v.Journal)
		item.Issued = parseDate(deref(v.PublishDate))
	case *types.Article:
		item.Type = "webpage"
		item.URL = v.URL
	case *types.YoutubeVideo:
		item.Type = "motion_picture"
		item.URL = v.URL
		item.ContainerTitle = "YouTube"
	case *types.TEDTalk:
		item.Type = "speech"
		item.URL = v.URL
		item.ContainerTitle = "TED"
	}
	return item
}

// cslNames converts creators, skipping any without a usable name.
func cslNames(creators []types.Creator) []CSLName {
	var out []CSLName
	for _, c := range creators {
		switch {
		case c.FirstName != nil && c.LastName != nil:
			out = append(out, CSLName{Given: *c.FirstName, Family: *c.LastName})
		case c.Name != nil:
			out = append(out, CSLName{Literal: *c.Name})
		}
	}
	return out
}

// datePattern matches the leading YYYY, YYYY-MM, or YYYY-MM-DD of a Zotero
// date string.
var datePattern = regexp.MustCompile(`^(\d{4})(?:-(\d{1,2}))?(?:-(\d{1,2}))?`)

// parseDate returns nil for an empty date.
func parseDate(s string) *CSLDate {
	if s == "" {
		return nil
	}
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return &CSLDate{Raw: s}
	}
	var parts []int
	for _, p := range m[1:] {
		if p == "" {
			break
		}
		n, _ := strconv.Atoi(p)
		parts = append(parts, n)
	}
	return &CSLDate{DateParts: [][]int{parts}}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
