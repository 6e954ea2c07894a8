package queryfilter

import (
	"fmt"
	"regexp"
	"time"

	"ilovehiphop.ja/pkg/queryparams"
)

// Op is a comparison understood by every document store backend.
type Op string

const (
	OpEq       Op = "eq"       // field equals value
	OpContains Op = "contains" // list field contains value
	OpLte      Op = "lte"      // field <= value
	OpGte      Op = "gte"      // field >= value
)

var fieldPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Condition constrains a single document field.
type Condition struct {
	Field string
	Op    Op
	Value any
}

// Filter is a conjunction of conditions. The zero value matches everything.
type Filter struct {
	Conditions []Condition
}

// Where returns a copy of f with one more condition.
func (f Filter) Where(field string, op Op, value any) Filter {
	conds := make([]Condition, len(f.Conditions), len(f.Conditions)+1)
	copy(conds, f.Conditions)
	return Filter{Conditions: append(conds, Condition{Field: field, Op: op, Value: value})}
}

func (f Filter) IsEmpty() bool {
	return len(f.Conditions) == 0
}

// Validate guards backends that splice field names into query text.
func (f Filter) Validate() error {
	for _, c := range f.Conditions {
		if !fieldPattern.MatchString(c.Field) {
			return fmt.Errorf("invalid filter field %q", c.Field)
		}
		switch c.Op {
		case OpEq, OpContains:
		case OpLte, OpGte:
			if _, ok := c.Value.(time.Time); !ok {
				return fmt.Errorf("filter field %q: ordered comparison needs a time value", c.Field)
			}
		default:
			return fmt.Errorf("filter field %q: unknown operator %q", c.Field, c.Op)
		}
	}
	return nil
}

func Events(p queryparams.EventParams) Filter {
	var f Filter
	if tag, ok := p.Tag.Get(); ok {
		f = f.Where("tags", OpContains, tag)
	}
	if featured, ok := p.Featured.Get(); ok {
		f = f.Where("is_featured", OpEq, featured)
	}
	return f
}

func Articles(p queryparams.ArticleParams) Filter {
	var f Filter
	if tag, ok := p.Tag.Get(); ok {
		f = f.Where("tags", OpContains, tag)
	}
	return f
}

func Mixtapes(p queryparams.MixtapeParams) Filter {
	var f Filter
	if dj, ok := p.DJ.Get(); ok {
		f = f.Where("dj", OpEq, dj)
	}
	return f
}

func Partners(p queryparams.PartnerParams) Filter {
	var f Filter
	if featured, ok := p.Featured.Get(); ok {
		f = f.Where("featured", OpEq, featured)
	}
	return f
}

// Specials never filters; the limit travels separately.
func Specials() Filter {
	return Filter{}
}

// Coupons keeps coupons whose window contains now when ActiveOnly is set.
func Coupons(p queryparams.CouponParams, now time.Time) Filter {
	var f Filter
	if p.ActiveOnly {
		now = now.UTC()
		f = f.Where("starts_at", OpLte, now).Where("ends_at", OpGte, now)
	}
	return f
}
