package domain

import "time"

// Meta is the identity and lifecycle state shared by every entity: a
// storage-assigned id, a creation timestamp set once, an edit timestamp
// stamped on every successful save and a deletion timestamp stamped on
// soft delete. A non-nil DeletedAt means dead-but-findable.
type Meta struct {
	ID        int64
	CreatedAt time.Time
	EditedAt  *time.Time
	DeletedAt *time.Time
}

func (m *Meta) PrimaryKey() int64 { return m.ID }

func (m *Meta) Deleted() bool { return m.DeletedAt != nil }

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
