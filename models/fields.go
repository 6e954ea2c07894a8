package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var validate = validator.New()

// Accepted timestamp layouts, most specific first.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// fieldReader pulls typed fields out of a raw document and collects every failure.
type fieldReader struct {
	doc Document
	err error
}

func newFieldReader(doc Document) *fieldReader {
	return &fieldReader{doc: doc}
}

func (r *fieldReader) fail(field, message string) {
	r.err = multierr.Append(r.err, &ValidationError{Field: field, Message: message})
}

// Err returns every failure seen so far, or nil.
func (r *fieldReader) Err() error {
	return r.err
}

// lookup treats a missing key and an explicit null the same way.
func (r *fieldReader) lookup(field string) (any, bool) {
	v, ok := r.doc[field]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *fieldReader) RequiredString(field string) string {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, "field required")
		return ""
	}
	s, isString := v.(string)
	if !isString {
		r.fail(field, "must be a string")
		return ""
	}
	if s == "" {
		r.fail(field, "must not be empty")
	}
	return s
}

func (r *fieldReader) OptionalString(field string) Optional[string] {
	v, ok := r.lookup(field)
	if !ok {
		return None[string]()
	}
	s, isString := v.(string)
	if !isString {
		r.fail(field, "must be a string")
		return None[string]()
	}
	return Some(s)
}

func (r *fieldReader) StringDefault(field, def string) string {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	s, isString := v.(string)
	if !isString {
		r.fail(field, "must be a string")
		return def
	}
	return s
}

// OptionalURL is an optional string that must be an absolute http(s) URL when present.
func (r *fieldReader) OptionalURL(field string) Optional[string] {
	s := r.OptionalString(field)
	if raw, ok := s.Get(); ok {
		if err := validate.Var(raw, "http_url"); err != nil {
			r.fail(field, "must be a valid http or https URL")
			return None[string]()
		}
	}
	return s
}

func (r *fieldReader) RequiredTime(field string) time.Time {
	v, ok := r.lookup(field)
	if !ok {
		r.fail(field, "field required")
		return time.Time{}
	}
	t, err := ParseTime(v)
	if err != nil {
		r.fail(field, err.Error())
		return time.Time{}
	}
	return t
}

func (r *fieldReader) Bool(field string, def bool) bool {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := ParseBool(b)
		if err != nil {
			r.fail(field, err.Error())
			return def
		}
		return parsed
	default:
		r.fail(field, "value could not be parsed to a boolean")
		return def
	}
}

func (r *fieldReader) Int(field string, def int) int {
	v, ok := r.lookup(field)
	if !ok {
		return def
	}
	n, err := toInt(v)
	if err != nil {
		r.fail(field, err.Error())
		return def
	}
	return n
}

// StringList defaults to an empty, non-nil slice.
func (r *fieldReader) StringList(field string) []string {
	out := []string{}
	v, ok := r.lookup(field)
	if !ok {
		return out
	}
	switch list := v.(type) {
	case []string:
		return append(out, list...)
	case []any:
		for i, item := range list {
			s, isString := item.(string)
			if !isString {
				r.fail(fmt.Sprintf("%s.%d", field, i), "must be a string")
				continue
			}
			out = append(out, s)
		}
		return out
	default:
		r.fail(field, "must be a list of strings")
		return out
	}
}

// ParseBool accepts the usual spellings of true and false.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n":
		return false, nil
	}
	return false, fmt.Errorf("value could not be parsed to a boolean")
}

// ParseTime converts driver time values, ISO 8601 strings and unix seconds to UTC.
func ParseTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case *time.Time:
		if t != nil {
			return t.UTC(), nil
		}
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), nil
			}
		}
		if secs, err := strconv.ParseFloat(s, 64); err == nil {
			return unixTime(secs), nil
		}
	case float64:
		return unixTime(t), nil
	case int64:
		return time.Unix(t, 0).UTC(), nil
	case int:
		return time.Unix(int64(t), 0).UTC(), nil
	case json.Number:
		if secs, err := t.Float64(); err == nil {
			return unixTime(secs), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime format")
}

func unixTime(secs float64) time.Time {
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)).UTC()
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("value is not a valid integer")
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("value is not a valid integer")
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("value is not a valid integer")
		}
		return i, nil
	}
	return 0, fmt.Errorf("value is not a valid integer")
}

// checkRange validates n against a validator tag such as "min=1,max=20".
func checkRange(r *fieldReader, field string, n int, tag, message string) {
	if err := validate.Var(n, tag); err != nil {
		r.fail(field, message)
	}
}
