package models

import "time"

const (
	DefaultSpecialTitle   = "2-4-1 Specials"
	DefaultSpecialDetails = "Members get 2-for-1 drinks this week"
)

// Special is the drinks offer for one week.
type Special struct {
	Title   string    `json:"title"`
	Details string    `json:"details"`
	WeekOf  time.Time `json:"week_of"`
}

func DecodeSpecial(doc Document) (Special, error) {
	r := newFieldReader(doc)
	s := Special{
		Title:   r.StringDefault("title", DefaultSpecialTitle),
		Details: r.StringDefault("details", DefaultSpecialDetails),
		WeekOf:  r.RequiredTime("week_of"),
	}
	return s, r.Err()
}

func (s Special) Kind() Kind { return KindSpecial }

func (s Special) Document() Document {
	return Document{
		"title":   s.Title,
		"details": s.Details,
		"week_of": s.WeekOf.UTC(),
	}
}
