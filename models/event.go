package models

import "time"

// Event is a party night listed on the site.
type Event struct {
	Title        string           `json:"title"`
	Slug         Optional[string] `json:"slug"`
	Date         time.Time        `json:"date"`
	Theme        Optional[string] `json:"theme"`
	Description  Optional[string] `json:"description"`
	FlyerURL     Optional[string] `json:"flyer_url"`
	Sponsors     []string         `json:"sponsors"`
	DJs          []string         `json:"djs"`
	Tags         []string         `json:"tags"`
	IsFeatured   bool             `json:"is_featured"`
	VenueName    Optional[string] `json:"venue_name"`
	VenueAddress Optional[string] `json:"venue_address"`
}

func DecodeEvent(doc Document) (Event, error) {
	r := newFieldReader(doc)
	e := Event{
		Title:        r.RequiredString("title"),
		Slug:         r.OptionalString("slug"),
		Date:         r.RequiredTime("date"),
		Theme:        r.OptionalString("theme"),
		Description:  r.OptionalString("description"),
		FlyerURL:     r.OptionalString("flyer_url"),
		Sponsors:     r.StringList("sponsors"),
		DJs:          r.StringList("djs"),
		Tags:         r.StringList("tags"),
		IsFeatured:   r.Bool("is_featured", false),
		VenueName:    r.OptionalString("venue_name"),
		VenueAddress: r.OptionalString("venue_address"),
	}
	return e, r.Err()
}

func (e Event) Kind() Kind { return KindEvent }

func (e Event) Document() Document {
	return Document{
		"title":         e.Title,
		"slug":          e.Slug.Any(),
		"date":          e.Date.UTC(),
		"theme":         e.Theme.Any(),
		"description":   e.Description.Any(),
		"flyer_url":     e.FlyerURL.Any(),
		"sponsors":      nonNil(e.Sponsors),
		"djs":           nonNil(e.DJs),
		"tags":          nonNil(e.Tags),
		"is_featured":   e.IsFeatured,
		"venue_name":    e.VenueName.Any(),
		"venue_address": e.VenueAddress.Any(),
	}
}
