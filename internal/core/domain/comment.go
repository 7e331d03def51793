package domain

import (
	"github.com/pvanham/quorum/internal/persistence"
)

var commentDescriptor = persistence.NewDescriptor("comment", "",
	persistence.Field{Attr: "user", Kind: persistence.KindInteger, Ref: true},
	persistence.Field{Attr: "post", Kind: persistence.KindInteger, Ref: true},
	persistence.Field{Attr: "reply", Kind: persistence.KindInteger, Ref: true},
	persistence.Field{Attr: "content", Kind: persistence.KindText},
	persistence.Field{Attr: "id", Kind: persistence.KindInteger},
	persistence.Field{Attr: "createdAt", Kind: persistence.KindText},
	persistence.Field{Attr: "editedAt", Kind: persistence.KindText},
	persistence.Field{Attr: "deletedAt", Kind: persistence.KindText},
)

func CommentDescriptor() *persistence.Descriptor { return commentDescriptor }

// Comment is a reply to a post or to another comment. Reply points at the
// parent comment; nil means the comment is a tree root. Replies are the
// resolved child comments, populated by the reply tree resolver only.
type Comment struct {
	Meta
	User    *User
	Post    *Post
	Reply   *Comment
	Content string
	Replies []*Comment

	baseline commentBaseline
}

type commentBaseline struct {
	userID  int64
	postID  int64
	replyID int64
	content string
}

func (c *Comment) Descriptor() *persistence.Descriptor { return commentDescriptor }

func (c *Comment) Secret() string { return "" }

func (c *Comment) SetUser(user *User)          { c.User = user }
func (c *Comment) SetPost(post *Post)          { c.Post = post }
func (c *Comment) SetReply(reply *Comment)     { c.Reply = reply }
func (c *Comment) SetContent(content string)   { c.Content = content }
func (c *Comment) SetReplies(rs []*Comment)    { c.Replies = rs }

func (c *Comment) Snapshot() {
	c.baseline = commentBaseline{content: c.Content}
	if c.User != nil {
		c.baseline.userID = c.User.ID
	}
	if c.Post != nil {
		c.baseline.postID = c.Post.ID
	}
	if c.Reply != nil {
		c.baseline.replyID = c.Reply.ID
	}
}

func (c *Comment) Changed(column string) bool {
	switch column {
	case "user_id":
		return c.User != nil && c.User.ID != c.baseline.userID
	case "post_id":
		return c.Post != nil && c.Post.ID != c.baseline.postID
	case "reply_id":
		return c.Reply != nil && c.Reply.ID != c.baseline.replyID
	case "content":
		return c.Content != c.baseline.content
	default:
		return false
	}
}

func (c *Comment) FieldValue(column string) (any, bool) {
	switch column {
	case "user_id":
		if c.User == nil {
			return nil, false
		}
		return c.User.ID, true
	case "post_id":
		if c.Post == nil {
			return nil, false
		}
		return c.Post.ID, true
	case "reply_id":
		if c.Reply == nil {
			return nil, false
		}
		return c.Reply.ID, true
	case "content":
		return c.Content, true
	case "id":
		return c.ID, true
	default:
		return nil, false
	}
}
