package models

import "fmt"

// Document is a schema-free record as it travels to and from the document store.
type Document map[string]any

// Kind names a record kind; it doubles as the collection name.
type Kind string

const (
	KindMember  Kind = "member"
	KindRSVP    Kind = "rsvp"
	KindEvent   Kind = "event"
	KindArticle Kind = "article"
	KindMixtape Kind = "mixtape"
	KindPartner Kind = "partner"
	KindCoupon  Kind = "coupon"
	KindSpecial Kind = "special"
)

var kinds = []Kind{KindMember, KindRSVP, KindEvent, KindArticle, KindMixtape, KindPartner, KindCoupon, KindSpecial}

// Collections lists every collection name in a stable order.
func Collections() []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

// ParseKind resolves a collection name to its kind.
func ParseKind(name string) (Kind, bool) {
	for _, k := range kinds {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// Record is any validated record that can be written back to the store.
type Record interface {
	Kind() Kind
	Document() Document
}

// Validate decodes raw fields into the canonical record of the given kind.
func Validate(kind Kind, raw Document) (Record, error) {
	switch kind {
	case KindMember:
		return DecodeMember(raw)
	case KindRSVP:
		return DecodeRSVP(raw)
	case KindEvent:
		return DecodeEvent(raw)
	case KindArticle:
		return DecodeArticle(raw)
	case KindMixtape:
		return DecodeMixtape(raw)
	case KindPartner:
		return DecodePartner(raw)
	case KindCoupon:
		return DecodeCoupon(raw)
	case KindSpecial:
		return DecodeSpecial(raw)
	}
	return nil, fmt.Errorf("unknown record kind %q", kind)
}
