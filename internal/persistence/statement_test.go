package persistence

import (
	"reflect"
	"testing"
	"time"
)

// stubRecord is a minimal Record for statement synthesis tests.
type stubRecord struct {
	desc    *Descriptor
	id      int64
	values  map[string]any
	changed map[string]bool
	secret  string
}

func (r *stubRecord) Descriptor() *Descriptor { return r.desc }
func (r *stubRecord) PrimaryKey() int64       { return r.id }
func (r *stubRecord) Secret() string          { return r.secret }
func (r *stubRecord) Changed(column string) bool {
	return r.changed[column]
}
func (r *stubRecord) FieldValue(column string) (any, bool) {
	v, ok := r.values[column]
	return v, ok
}

func testDescriptor() *Descriptor {
	return NewDescriptor("account", "password",
		Field{Attr: "username", Kind: KindText},
		Field{Attr: "email", Kind: KindText},
		Field{Attr: "postScore", Kind: KindInteger},
		Field{Attr: "id", Kind: KindInteger},
		Field{Attr: "createdAt", Kind: KindText},
		Field{Attr: "editedAt", Kind: KindText},
		Field{Attr: "deletedAt", Kind: KindText},
	)
}

func TestSelectStatement(t *testing.T) {
	desc := testDescriptor()
	got := selectStatement(desc, "id")
	want := "SELECT username, email, post_score, id, created_at, edited_at, deleted_at FROM account WHERE id = ?"
	if got != want {
		t.Errorf("selectStatement = %q, want %q", got, want)
	}
}

func TestInsertStatementOrdering(t *testing.T) {
	desc := testDescriptor()

	// Provided out of declaration order; the statement must follow the
	// descriptor, with the secret appended last.
	fields := Row{
		"email":    "ash@poke.mon",
		"password": "hashed",
		"username": "Ash",
	}

	query, args := insertStatement(desc, fields)

	wantQuery := "INSERT INTO account (username, email, password) VALUES (?, ?, ?)"
	if query != wantQuery {
		t.Errorf("insertStatement query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{"Ash", "ash@poke.mon", "hashed"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("insertStatement args = %v, want %v", args, wantArgs)
	}
}

func TestUpdateStatementDiff(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec := &stubRecord{
		desc: testDescriptor(),
		id:   7,
		values: map[string]any{
			"username":   "Ash",
			"email":      "new@poke.mon",
			"post_score": 3,
		},
		changed: map[string]bool{"email": true},
	}

	query, args, err := updateStatement(rec, now, nil)
	if err != nil {
		t.Fatalf("updateStatement: %v", err)
	}

	wantQuery := "UPDATE account SET email = ?, edited_at = ? WHERE id = ?"
	if query != wantQuery {
		t.Errorf("updateStatement query = %q, want %q", query, wantQuery)
	}

	wantArgs := []any{"new@poke.mon", "2025-06-01 12:00:00", int64(7)}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("updateStatement args = %v, want %v", args, wantArgs)
	}
}

func TestUpdateStatementNoChanges(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec := &stubRecord{
		desc:    testDescriptor(),
		id:      7,
		values:  map[string]any{"username": "Ash"},
		changed: map[string]bool{},
	}

	query, _, err := updateStatement(rec, now, nil)
	if err != nil {
		t.Fatalf("updateStatement: %v", err)
	}

	// Even an empty diff stamps edited_at.
	wantQuery := "UPDATE account SET edited_at = ? WHERE id = ?"
	if query != wantQuery {
		t.Errorf("updateStatement query = %q, want %q", query, wantQuery)
	}
}

func TestUpdateStatementPendingSecret(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	hash := func(plain string) (string, error) { return "hashed:" + plain, nil }

	rec := &stubRecord{
		desc:    testDescriptor(),
		id:      7,
		values:  map[string]any{"username": "Ash"},
		changed: map[string]bool{},
		secret:  "Pikachu1",
	}

	query, args, err := updateStatement(rec, now, hash)
	if err != nil {
		t.Fatalf("updateStatement: %v", err)
	}

	// The pending credential is written unconditionally, no diff involved.
	wantQuery := "UPDATE account SET password = ?, edited_at = ? WHERE id = ?"
	if query != wantQuery {
		t.Errorf("updateStatement query = %q, want %q", query, wantQuery)
	}
	if args[0] != "hashed:Pikachu1" {
		t.Errorf("secret arg = %v, want hashed:Pikachu1", args[0])
	}
}

func TestRemoveStatement(t *testing.T) {
	desc := testDescriptor()
	got := removeStatement(desc, "id")
	want := "UPDATE account SET deleted_at = ? WHERE id = ?"
	if got != want {
		t.Errorf("removeStatement = %q, want %q", got, want)
	}
}

func TestBindValue(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		value any
		want  any
	}{
		{nil, nil},
		{42, int64(42)},
		{uint32(9), int64(9)},
		{float32(1.5), float64(1.5)},
		{"text", "text"},
		{ts, "2025-06-01 12:30:45"},
	}

	for _, tt := range tests {
		if got := bindValue(tt.value); got != tt.want {
			t.Errorf("bindValue(%#v) = %#v, want %#v", tt.value, got, tt.want)
		}
	}
}
