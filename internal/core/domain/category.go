package domain

import (
	"github.com/pvanham/quorum/internal/persistence"
)

var categoryDescriptor = persistence.NewDescriptor("category", "",
	// createdBy keeps its plain translation: the column is created_by, not
	// created_by_id.
	persistence.Field{Attr: "createdBy", Column: "created_by", Kind: persistence.KindInteger, Ref: true},
	persistence.Field{Attr: "title", Kind: persistence.KindText},
	persistence.Field{Attr: "description", Kind: persistence.KindText},
	persistence.Field{Attr: "id", Kind: persistence.KindInteger},
	persistence.Field{Attr: "createdAt", Kind: persistence.KindText},
	persistence.Field{Attr: "editedAt", Kind: persistence.KindText},
	persistence.Field{Attr: "deletedAt", Kind: persistence.KindText},
)

func CategoryDescriptor() *persistence.Descriptor { return categoryDescriptor }

// Category groups posts under a unique title. CreatedBy is the owning user,
// stored as a foreign key and rehydrated on load.
type Category struct {
	Meta
	CreatedBy   *User
	Title       string
	Description string

	baseline categoryBaseline
}

type categoryBaseline struct {
	createdByID int64
	title       string
	description string
}

func (c *Category) Descriptor() *persistence.Descriptor { return categoryDescriptor }

func (c *Category) Secret() string { return "" }

func (c *Category) SetCreatedBy(user *User)           { c.CreatedBy = user }
func (c *Category) SetTitle(title string)             { c.Title = title }
func (c *Category) SetDescription(description string) { c.Description = description }

func (c *Category) Snapshot() {
	c.baseline = categoryBaseline{
		title:       c.Title,
		description: c.Description,
	}
	if c.CreatedBy != nil {
		c.baseline.createdByID = c.CreatedBy.ID
	}
}

func (c *Category) Changed(column string) bool {
	switch column {
	case "created_by":
		// Reference fields diff on identity only; a changed row behind the
		// same id is not detected.
		return c.CreatedBy != nil && c.CreatedBy.ID != c.baseline.createdByID
	case "title":
		return c.Title != c.baseline.title
	case "description":
		return c.Description != c.baseline.description
	default:
		return false
	}
}

func (c *Category) FieldValue(column string) (any, bool) {
	switch column {
	case "created_by":
		if c.CreatedBy == nil {
			return nil, false
		}
		return c.CreatedBy.ID, true
	case "title":
		return c.Title, true
	case "description":
		return c.Description, true
	case "id":
		return c.ID, true
	default:
		return nil, false
	}
}
