package models

// Partner is a sponsor or brand shown on the partners page.
type Partner struct {
	Name       string           `json:"name"`
	LogoURL    Optional[string] `json:"logo_url"`
	Instagram  Optional[string] `json:"instagram"`
	GalleryURL Optional[string] `json:"gallery_url"`
	Featured   bool             `json:"featured"`
}

func DecodePartner(doc Document) (Partner, error) {
	r := newFieldReader(doc)
	p := Partner{
		Name:       r.RequiredString("name"),
		LogoURL:    r.OptionalURL("logo_url"),
		Instagram:  r.OptionalString("instagram"),
		GalleryURL: r.OptionalURL("gallery_url"),
		Featured:   r.Bool("featured", false),
	}
	return p, r.Err()
}

func (p Partner) Kind() Kind { return KindPartner }

func (p Partner) Document() Document {
	return Document{
		"name":        p.Name,
		"logo_url":    p.LogoURL.Any(),
		"instagram":   p.Instagram.Any(),
		"gallery_url": p.GalleryURL.Any(),
		"featured":    p.Featured,
	}
}
