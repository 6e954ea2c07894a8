package models

import "time"

const DefaultCouponTitle = "Happy Hour 8:00–10:30 PM"

// Coupon is a time-boxed offer. StartsAt <= EndsAt is expected but only the
// active-only listing relies on it.
type Coupon struct {
	Code       string    `json:"code"`
	Title      string    `json:"title"`
	MemberOnly bool      `json:"member_only"`
	StartsAt   time.Time `json:"starts_at"`
	EndsAt     time.Time `json:"ends_at"`
}

func DecodeCoupon(doc Document) (Coupon, error) {
	r := newFieldReader(doc)
	c := Coupon{
		Code:       r.RequiredString("code"),
		Title:      r.StringDefault("title", DefaultCouponTitle),
		MemberOnly: r.Bool("member_only", false),
		StartsAt:   r.RequiredTime("starts_at"),
		EndsAt:     r.RequiredTime("ends_at"),
	}
	return c, r.Err()
}

// ActiveAt reports whether now falls inside the coupon window, bounds included.
func (c Coupon) ActiveAt(now time.Time) bool {
	return !now.Before(c.StartsAt) && !now.After(c.EndsAt)
}

func (c Coupon) Kind() Kind { return KindCoupon }

func (c Coupon) Document() Document {
	return Document{
		"code":        c.Code,
		"title":       c.Title,
		"member_only": c.MemberOnly,
		"starts_at":   c.StartsAt.UTC(),
		"ends_at":     c.EndsAt.UTC(),
	}
}
