package persistence

// Field describes one persistable attribute of an entity: its declared
// attribute name, the column it maps to, the bind kind of its values and
// whether it is a reference to another entity (stored as a foreign key).
type Field struct {
	Attr   string
	Column string
	Kind   Kind
	Ref    bool
}

// Descriptor is the static column mapping for one entity type. It replaces
// runtime introspection: the ordered field list is declared once per type and
// drives every synthesized statement. Bookkeeping state (baseline snapshot,
// pending credentials) never appears in Fields; a write-only credential
// column is carried separately in Secret.
type Descriptor struct {
	Table  string
	Fields []Field
	Secret string
}

// NewDescriptor builds a descriptor from (attribute, kind, ref) declarations,
// deriving column names through the mapper.
func NewDescriptor(table string, secret string, fields ...Field) *Descriptor {
	for i := range fields {
		if fields[i].Column == "" {
			fields[i].Column = ColumnName(fields[i].Attr, fields[i].Ref)
		}
	}

	return &Descriptor{Table: table, Fields: fields, Secret: secret}
}

// Columns returns the column names in declaration order.
func (d *Descriptor) Columns() []string {
	cols := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		cols[i] = f.Column
	}
	return cols
}

// HasColumn reports whether the descriptor maps the given column.
func (d *Descriptor) HasColumn(column string) bool {
	for _, f := range d.Fields {
		if f.Column == column {
			return true
		}
	}
	return false
}

// Row is a raw field-set keyed by column name, as read from or written to
// storage. It is the currency between the gateway and the per-entity
// hydrators.
type Row map[string]any

// Record is implemented by entity types that can be diff-updated. Changed
// compares the current value of a column against the baseline snapshot taken
// at hydration; FieldValue returns the current value with reference fields
// dereferenced to their identity scalar. Secret returns a pending write-only
// credential, or "" when none is set.
type Record interface {
	Descriptor() *Descriptor
	PrimaryKey() int64
	FieldValue(column string) (any, bool)
	Changed(column string) bool
	Secret() string
}
