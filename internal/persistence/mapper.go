package persistence

import (
	"strings"
	"unicode"
)

// Kind classifies a bind value into the parameter type the driver receives.
type Kind int

const (
	KindInteger Kind = iota
	KindDecimal
	KindText
)

// ColumnName translates a camelCase attribute name to its snake_case column
// name. Reference attributes store a foreign key, so they get an Id suffix
// before translation (user -> user_id, reply -> reply_id). Single-word
// attributes pass through unchanged.
func ColumnName(attr string, ref bool) string {
	if ref {
		attr += "Id"
	}

	words := splitWords(attr)
	if len(words) == 1 {
		return attr
	}

	for i, w := range words {
		words[i] = strings.ToLower(w[:1]) + w[1:]
	}

	return strings.Join(words, "_")
}

// AttributeName translates a snake_case column name back to camelCase.
// Single-word columns pass through unchanged.
func AttributeName(column string) string {
	parts := strings.Split(column, "_")
	if len(parts) == 1 {
		return column
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}

	return b.String()
}

// KindOf classifies a value into the bind kind used for parameter binding.
// Integers bind as integers, floating point values as decimals, everything
// else (strings, times, nil) as text. Pure: never consults storage.
func KindOf(v any) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindDecimal
	default:
		return KindText
	}
}

// splitWords breaks a mixed-case identifier at upper-case boundaries.
func splitWords(s string) []string {
	var words []string
	start := 0

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])

	return words
}
