package sqlite

import (
	"time"
)

// Raw row values arrive as driver primitives (int64, string, nil). These
// helpers coerce them into field types, defaulting absent or null values
// instead of failing: partial rows are expected, e.g. a pre-save instance.

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asNullString(v any) *string {
	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}
	return &s
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, ok := parseTime(t); ok {
			return parsed
		}
	}
	return time.Time{}
}

func asNullTime(v any) *time.Time {
	t := asTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

// parseTime accepts the datetime layouts that can appear in a sqlite
// column: CURRENT_TIMESTAMP writes "2006-01-02 15:04:05" while imported
// data may carry RFC3339 variants.
func parseTime(value string) (time.Time, bool) {
	formats := []string{
		"2006-01-02 15:04:05",
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
