// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Category is the resource kind a record classifies into. Each category has
// its own template and output folder.
type Category string

const (
	CategoryArticle       Category = "article"
	CategoryAcademicPaper Category = "academic_paper"
	CategoryBook          Category = "book"
	CategoryTEDTalk       Category = "ted_talk"
	CategoryYoutubeVideo  Category = "youtube_video"
)

// Categories lists every category in output order.
var Categories = []Category{
	CategoryArticle,
	CategoryAcademicPaper,
	CategoryBook,
	CategoryTEDTalk,
	CategoryYoutubeVideo,
}

// Folder returns the output directory name for the category.
func (c Category) Folder() string {
	switch c {
	case CategoryArticle:
		return "Articles"
	case CategoryAcademicPaper:
		return "Academic Papers"
	case CategoryBook:
		return "Books"
	case CategoryTEDTalk:
		return "TED Talks"
	case CategoryYoutubeVideo:
		return "Youtube Videos"
	default:
		return ""
	}
}

// TemplateName returns the template file stem for the category
// (e.g. "Book" for Resource/Book.md).
func (c Category) TemplateName() string {
	switch c {
	case CategoryArticle:
		return "Article"
	case CategoryAcademicPaper:
		return "AcademicPaper"
	case CategoryBook:
		return "Book"
	case CategoryTEDTalk:
		return "TEDTalk"
	case CategoryYoutubeVideo:
		return "YoutubeVideo"
	default:
		return ""
	}
}

// ParseCategory maps a category name back to its value.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Base holds the fields every classified resource shares. Notes are
// markup-stripped plain text.
type Base struct {
	ID        string
	FullTitle string
	Tags      []Tag
	Notes     []string
	LocalLink string
	CloudLink string
	Creators  []Creator
}

// Resource is a classified, render-ready record. The concrete types are
// Book, Article, AcademicPaper, YoutubeVideo and TEDTalk.
type Resource interface {
	Category() Category
	Common() *Base
}

// Book is a "book" record with an ISBN.
type Book struct {
	Base
	ISBN        string
	ShortTitle  *string
	PublishDate *string
}

// AcademicPaper is a "journalArticle" record with a DOI.
type AcademicPaper struct {
	Base
	DOI         string
	Journal     *string
	PublishDate *string
}

// Article is a "webpage" or "blogPost" record with a URL.
type Article struct {
	Base
	URL string
}

// YoutubeVideo is a "videoRecording" catalogued from YouTube.
type YoutubeVideo struct {
	Base
	URL string
}

// TEDTalk is a "videoRecording" catalogued from www.ted.com.
type TEDTalk struct {
	Base
	URL string
}

func (*Book) Category() Category          { return CategoryBook }
func (*AcademicPaper) Category() Category { return CategoryAcademicPaper }
func (*Article) Category() Category       { return CategoryArticle }
func (*YoutubeVideo) Category() Category  { return CategoryYoutubeVideo }
func (*TEDTalk) Category() Category       { return CategoryTEDTalk }

func (b *Book) Common() *Base          { return &b.Base }
func (p *AcademicPaper) Common() *Base { return &p.Base }
func (a *Article) Common() *Base       { return &a.Base }
func (v *YoutubeVideo) Common() *Base  { return &v.Base }
func (t *TEDTalk) Common() *Base       { return &t.Base }
