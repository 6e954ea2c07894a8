package models

type Article struct {
	Title      string           `json:"title"`
	Slug       string           `json:"slug"`
	Content    string           `json:"content"`
	Tags       []string         `json:"tags"`
	Author     Optional[string] `json:"author"`
	CoverImage Optional[string] `json:"cover_image"`
}

func DecodeArticle(doc Document) (Article, error) {
	r := newFieldReader(doc)
	a := Article{
		Title:      r.RequiredString("title"),
		Slug:       r.RequiredString("slug"),
		Content:    r.RequiredString("content"),
		Tags:       r.StringList("tags"),
		Author:     r.OptionalString("author"),
		CoverImage: r.OptionalURL("cover_image"),
	}
	return a, r.Err()
}

func (a Article) Kind() Kind { return KindArticle }

func (a Article) Document() Document {
	return Document{
		"title":       a.Title,
		"slug":        a.Slug,
		"content":     a.Content,
		"tags":        nonNil(a.Tags),
		"author":      a.Author.Any(),
		"cover_image": a.CoverImage.Any(),
	}
}
