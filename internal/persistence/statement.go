package persistence

import (
	"strings"
	"time"
)

// TimeFormat is the layout used for every timestamp written by the gateway.
// It matches sqlite's CURRENT_TIMESTAMP so stored values compare uniformly.
const TimeFormat = "2006-01-02 15:04:05"

// selectStatement synthesizes a select of every descriptor column, filtered
// by one equality predicate.
func selectStatement(desc *Descriptor, column string) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(desc.Columns(), ", "))
	b.WriteString(" FROM ")
	b.WriteString(desc.Table)
	b.WriteString(" WHERE ")
	b.WriteString(column)
	b.WriteString(" = ?")

	return b.String()
}

// insertStatement synthesizes an insert for an explicit field-set. Columns
// are emitted in descriptor declaration order, restricted to the fields
// provided; the secret column, when present in the field-set, is appended
// last. Returns the statement and the bind values in matching order.
func insertStatement(desc *Descriptor, fields Row) (string, []any) {
	var cols []string
	var args []any

	for _, f := range desc.Fields {
		if v, ok := fields[f.Column]; ok {
			cols = append(cols, f.Column)
			args = append(args, bindValue(v))
		}
	}

	if desc.Secret != "" {
		if v, ok := fields[desc.Secret]; ok {
			cols = append(cols, desc.Secret)
			args = append(args, bindValue(v))
		}
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(desc.Table)
	b.WriteString(" (")
	b.WriteString(strings.Join(cols, ", "))
	b.WriteString(") VALUES (")
	b.WriteString(placeholders(len(cols)))
	b.WriteString(")")

	return b.String(), args
}

// updateStatement synthesizes a diff update: only columns whose current value
// differs from the record's baseline are written, in declaration order. The
// secret, when pending, is hashed and written unconditionally. edited_at is
// always stamped and never diffed; the row is matched by identity.
func updateStatement(rec Record, now time.Time, hash HashFunc) (string, []any, error) {
	desc := rec.Descriptor()

	var sets []string
	var args []any

	for _, f := range desc.Fields {
		if f.Column == "id" || f.Column == "edited_at" {
			continue
		}
		if !rec.Changed(f.Column) {
			continue
		}
		v, ok := rec.FieldValue(f.Column)
		if !ok {
			continue
		}
		sets = append(sets, f.Column+" = ?")
		args = append(args, bindValue(v))
	}

	if secret := rec.Secret(); secret != "" && desc.Secret != "" {
		hashed, err := hash(secret)
		if err != nil {
			return "", nil, err
		}
		sets = append(sets, desc.Secret+" = ?")
		args = append(args, hashed)
	}

	sets = append(sets, "edited_at = ?")
	args = append(args, now.UTC().Format(TimeFormat))

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(desc.Table)
	b.WriteString(" SET ")
	b.WriteString(strings.Join(sets, ", "))
	b.WriteString(" WHERE id = ?")
	args = append(args, rec.PrimaryKey())

	return b.String(), args, nil
}

// selectAllStatement synthesizes an unfiltered select of every descriptor
// column.
func selectAllStatement(desc *Descriptor) string {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(desc.Columns(), ", "))
	b.WriteString(" FROM ")
	b.WriteString(desc.Table)

	return b.String()
}

// removeStatement synthesizes the soft delete: deleted_at is stamped, the
// row is never removed.
func removeStatement(desc *Descriptor, column string) string {
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(desc.Table)
	b.WriteString(" SET deleted_at = ? WHERE ")
	b.WriteString(column)
	b.WriteString(" = ?")

	return b.String()
}

func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// bindValue normalizes a value for positional binding according to its kind.
func bindValue(v any) any {
	if v == nil {
		return nil
	}

	switch KindOf(v) {
	case KindInteger:
		return toInt64(v)
	case KindDecimal:
		return toFloat64(v)
	default:
		if t, ok := v.(time.Time); ok {
			return t.UTC().Format(TimeFormat)
		}
		return v
	}
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	}
	return 0
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
