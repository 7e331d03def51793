package domain

import (
	"github.com/pvanham/quorum/internal/persistence"
)

// PostType distinguishes editable text posts from immutable link posts.
type PostType string

const (
	PostTypeText PostType = "Text"
	PostTypeURL  PostType = "URL"
)

func (t PostType) Valid() bool {
	return t == PostTypeText || t == PostTypeURL
}

var postDescriptor = persistence.NewDescriptor("post", "",
	persistence.Field{Attr: "user", Kind: persistence.KindInteger, Ref: true},
	persistence.Field{Attr: "category", Kind: persistence.KindInteger, Ref: true},
	persistence.Field{Attr: "title", Kind: persistence.KindText},
	persistence.Field{Attr: "type", Kind: persistence.KindText},
	persistence.Field{Attr: "content", Kind: persistence.KindText},
	persistence.Field{Attr: "id", Kind: persistence.KindInteger},
	persistence.Field{Attr: "createdAt", Kind: persistence.KindText},
	persistence.Field{Attr: "editedAt", Kind: persistence.KindText},
	persistence.Field{Attr: "deletedAt", Kind: persistence.KindText},
)

func PostDescriptor() *persistence.Descriptor { return postDescriptor }

// Post is a text or URL submission in a category. URL posts are immutable
// once created; only text posts may be content-edited.
type Post struct {
	Meta
	User     *User
	Category *Category
	Title    string
	Type     PostType
	Content  string

	baseline postBaseline
}

type postBaseline struct {
	userID     int64
	categoryID int64
	title      string
	ptype      PostType
	content    string
}

func (p *Post) Descriptor() *persistence.Descriptor { return postDescriptor }

func (p *Post) Secret() string { return "" }

func (p *Post) SetUser(user *User)             { p.User = user }
func (p *Post) SetCategory(category *Category) { p.Category = category }
func (p *Post) SetTitle(title string)          { p.Title = title }
func (p *Post) SetType(t PostType)             { p.Type = t }
func (p *Post) SetContent(content string)      { p.Content = content }

func (p *Post) Snapshot() {
	p.baseline = postBaseline{
		title:   p.Title,
		ptype:   p.Type,
		content: p.Content,
	}
	if p.User != nil {
		p.baseline.userID = p.User.ID
	}
	if p.Category != nil {
		p.baseline.categoryID = p.Category.ID
	}
}

func (p *Post) Changed(column string) bool {
	switch column {
	case "user_id":
		return p.User != nil && p.User.ID != p.baseline.userID
	case "category_id":
		return p.Category != nil && p.Category.ID != p.baseline.categoryID
	case "title":
		return p.Title != p.baseline.title
	case "type":
		return p.Type != p.baseline.ptype
	case "content":
		return p.Content != p.baseline.content
	default:
		return false
	}
}

func (p *Post) FieldValue(column string) (any, bool) {
	switch column {
	case "user_id":
		if p.User == nil {
			return nil, false
		}
		return p.User.ID, true
	case "category_id":
		if p.Category == nil {
			return nil, false
		}
		return p.Category.ID, true
	case "title":
		return p.Title, true
	case "type":
		return string(p.Type), true
	case "content":
		return p.Content, true
	case "id":
		return p.ID, true
	default:
		return nil, false
	}
}
