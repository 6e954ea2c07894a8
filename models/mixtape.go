package models

type Mixtape struct {
	Title       string           `json:"title"`
	DJ          string           `json:"dj"`
	EmbedURL    Optional[string] `json:"embed_url"`
	CoverImage  Optional[string] `json:"cover_image"`
	Description Optional[string] `json:"description"`
	ExternalURL Optional[string] `json:"external_url"`
	Plays       int              `json:"plays"`
}

func DecodeMixtape(doc Document) (Mixtape, error) {
	r := newFieldReader(doc)
	m := Mixtape{
		Title:       r.RequiredString("title"),
		DJ:          r.RequiredString("dj"),
		EmbedURL:    r.OptionalURL("embed_url"),
		CoverImage:  r.OptionalURL("cover_image"),
		Description: r.OptionalString("description"),
		ExternalURL: r.OptionalURL("external_url"),
		Plays:       r.Int("plays", 0),
	}
	return m, r.Err()
}

func (m Mixtape) Kind() Kind { return KindMixtape }

func (m Mixtape) Document() Document {
	return Document{
		"title":        m.Title,
		"dj":           m.DJ,
		"embed_url":    m.EmbedURL.Any(),
		"cover_image":  m.CoverImage.Any(),
		"description":  m.Description.Any(),
		"external_url": m.ExternalURL.Any(),
		"plays":        m.Plays,
	}
}
