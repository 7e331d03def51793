package persistence

import (
	"testing"
	"time"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		attr string
		ref  bool
		want string
	}{
		{"username", false, "username"},
		{"title", false, "title"},
		{"postScore", false, "post_score"},
		{"commentScore", false, "comment_score"},
		{"createdAt", false, "created_at"},
		{"user", true, "user_id"},
		{"post", true, "post_id"},
		{"reply", true, "reply_id"},
		{"category", true, "category_id"},
	}

	for _, tt := range tests {
		if got := ColumnName(tt.attr, tt.ref); got != tt.want {
			t.Errorf("ColumnName(%q, %v) = %q, want %q", tt.attr, tt.ref, got, tt.want)
		}
	}
}

func TestAttributeName(t *testing.T) {
	tests := []struct {
		column string
		want   string
	}{
		{"username", "username"},
		{"post_score", "postScore"},
		{"comment_score", "commentScore"},
		{"created_at", "createdAt"},
		{"user_id", "userId"},
	}

	for _, tt := range tests {
		if got := AttributeName(tt.column); got != tt.want {
			t.Errorf("AttributeName(%q) = %q, want %q", tt.column, got, tt.want)
		}
	}
}

func TestColumnNameRoundTrip(t *testing.T) {
	// Non-ref attributes survive a full column -> attribute -> column cycle.
	for _, attr := range []string{"username", "postScore", "createdAt", "deletedAt", "description"} {
		column := ColumnName(attr, false)
		if back := AttributeName(column); back != attr {
			t.Errorf("round trip %q -> %q -> %q", attr, column, back)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		value any
		want  Kind
	}{
		{42, KindInteger},
		{int64(42), KindInteger},
		{uint8(1), KindInteger},
		{3.14, KindDecimal},
		{float32(1.5), KindDecimal},
		{"text", KindText},
		{nil, KindText},
		{time.Now(), KindText},
	}

	for _, tt := range tests {
		if got := KindOf(tt.value); got != tt.want {
			t.Errorf("KindOf(%#v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
