package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"ilovehiphop.ja/pkg/queryfilter"
)

const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

type sqlCondition struct {
	query string
	args  []any
}

// sqlConditions renders filter conditions for the JSON functions of the given dialect.
// Field names are spliced into the SQL, so the filter is validated first.
func sqlConditions(dialect string, f queryfilter.Filter) ([]sqlCondition, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	out := make([]sqlCondition, 0, len(f.Conditions))
	for _, c := range f.Conditions {
		var (
			cond sqlCondition
			err  error
		)
		switch dialect {
		case "postgres":
			cond, err = postgresCondition(c)
		case "sqlite":
			cond = sqliteCondition(c)
		default:
			return nil, fmt.Errorf("unsupported SQL dialect %q", dialect)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, cond)
	}
	return out, nil
}

// postgresCondition uses JSONB containment for equality and membership.
func postgresCondition(c queryfilter.Condition) (sqlCondition, error) {
	switch c.Op {
	case queryfilter.OpEq, queryfilter.OpContains:
		value := c.Value
		if c.Op == queryfilter.OpContains {
			value = []any{c.Value}
		}
		fragment, err := json.Marshal(map[string]any{c.Field: value})
		if err != nil {
			return sqlCondition{}, err
		}
		return sqlCondition{query: "data @> ?::jsonb", args: []any{string(fragment)}}, nil
	case queryfilter.OpLte:
		return sqlCondition{query: fmt.Sprintf("(data->>'%s')::timestamptz <= ?", c.Field), args: []any{c.Value}}, nil
	default:
		return sqlCondition{query: fmt.Sprintf("(data->>'%s')::timestamptz >= ?", c.Field), args: []any{c.Value}}, nil
	}
}

func sqliteCondition(c queryfilter.Condition) sqlCondition {
	path := fmt.Sprintf("'$.%s'", c.Field)
	switch c.Op {
	case queryfilter.OpContains:
		return sqlCondition{
			query: fmt.Sprintf("EXISTS (SELECT 1 FROM json_each(data, %s) WHERE json_each.value = ?)", path),
			args:  []any{sqliteValue(c.Value)},
		}
	case queryfilter.OpLte:
		return sqlCondition{
			query: fmt.Sprintf("julianday(json_extract(data, %s)) <= julianday(?)", path),
			args:  []any{sqliteValue(c.Value)},
		}
	case queryfilter.OpGte:
		return sqlCondition{
			query: fmt.Sprintf("julianday(json_extract(data, %s)) >= julianday(?)", path),
			args:  []any{sqliteValue(c.Value)},
		}
	default:
		switch c.Value.(type) {
		case time.Time:
			return sqlCondition{
				query: fmt.Sprintf("julianday(json_extract(data, %s)) = julianday(?)", path),
				args:  []any{sqliteValue(c.Value)},
			}
		case bool:
			// json_extract yields 1/0 for JSON booleans; json_type keeps stored numbers out
			return sqlCondition{
				query: fmt.Sprintf("json_type(data, %s) IN ('true', 'false') AND json_extract(data, %s) = ?", path, path),
				args:  []any{sqliteValue(c.Value)},
			}
		}
		return sqlCondition{
			query: fmt.Sprintf("json_extract(data, %s) = ?", path),
			args:  []any{sqliteValue(c.Value)},
		}
	}
}

// sqliteValue matches what json_extract yields: 1/0 for booleans, text for times.
func sqliteValue(v any) any {
	switch t := v.(type) {
	case bool:
		if t {
			return 1
		}
		return 0
	case time.Time:
		return t.UTC().Format(sqliteTimeLayout)
	}
	return v
}
