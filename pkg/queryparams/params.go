package queryparams

import (
	"strconv"
	"strings"

	"ilovehiphop.ja/models"
)

const (
	DefaultSpecialsLimit = 3
	MinSpecialsLimit     = 1
	MaxSpecialsLimit     = 12
)

// QueryReader is satisfied by *fiber.Ctx.
type QueryReader interface {
	Query(key string, defaultValue ...string) string
}

type EventParams struct {
	Tag      models.Optional[string]
	Featured models.Optional[bool]
}

type ArticleParams struct {
	Tag models.Optional[string]
}

type MixtapeParams struct {
	DJ models.Optional[string]
}

type PartnerParams struct {
	Featured models.Optional[bool]
}

type SpecialParams struct {
	Limit int
}

type CouponParams struct {
	ActiveOnly bool
}

// Validate keeps the limit inside [MinSpecialsLimit, MaxSpecialsLimit].
func (p SpecialParams) Validate() error {
	if p.Limit < MinSpecialsLimit || p.Limit > MaxSpecialsLimit {
		return models.NewValidationError("limit", "must be between 1 and 12")
	}
	return nil
}

func ParseEventParams(q QueryReader) (EventParams, error) {
	featured, err := optionalBool(q, "featured")
	if err != nil {
		return EventParams{}, err
	}
	return EventParams{Tag: optionalString(q, "tag"), Featured: featured}, nil
}

func ParseArticleParams(q QueryReader) (ArticleParams, error) {
	return ArticleParams{Tag: optionalString(q, "tag")}, nil
}

func ParseMixtapeParams(q QueryReader) (MixtapeParams, error) {
	return MixtapeParams{DJ: optionalString(q, "dj")}, nil
}

func ParsePartnerParams(q QueryReader) (PartnerParams, error) {
	featured, err := optionalBool(q, "featured")
	if err != nil {
		return PartnerParams{}, err
	}
	return PartnerParams{Featured: featured}, nil
}

// ParseSpecialParams rejects a limit outside the allowed range.
func ParseSpecialParams(q QueryReader) (SpecialParams, error) {
	p := SpecialParams{Limit: DefaultSpecialsLimit}
	if raw := strings.TrimSpace(q.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return SpecialParams{}, models.NewValidationError("limit", "value is not a valid integer")
		}
		p.Limit = n
	}
	return p, p.Validate()
}

func ParseCouponParams(q QueryReader) (CouponParams, error) {
	p := CouponParams{ActiveOnly: true}
	if raw := strings.TrimSpace(q.Query("active_only")); raw != "" {
		v, err := models.ParseBool(raw)
		if err != nil {
			return CouponParams{}, models.NewValidationError("active_only", err.Error())
		}
		p.ActiveOnly = v
	}
	return p, nil
}

// optionalString treats an empty value like a missing one.
func optionalString(q QueryReader, key string) models.Optional[string] {
	if v := q.Query(key); v != "" {
		return models.Some(v)
	}
	return models.None[string]()
}

func optionalBool(q QueryReader, key string) (models.Optional[bool], error) {
	raw := strings.TrimSpace(q.Query(key))
	if raw == "" {
		return models.None[bool](), nil
	}
	v, err := models.ParseBool(raw)
	if err != nil {
		return models.None[bool](), models.NewValidationError(key, err.Error())
	}
	return models.Some(v), nil
}
