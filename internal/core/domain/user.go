package domain

import (
	"github.com/pvanham/quorum/internal/persistence"
)

var userDescriptor = persistence.NewDescriptor("user", "password",
	persistence.Field{Attr: "username", Kind: persistence.KindText},
	persistence.Field{Attr: "email", Kind: persistence.KindText},
	persistence.Field{Attr: "postScore", Kind: persistence.KindInteger},
	persistence.Field{Attr: "commentScore", Kind: persistence.KindInteger},
	persistence.Field{Attr: "avatar", Kind: persistence.KindText},
	persistence.Field{Attr: "id", Kind: persistence.KindInteger},
	persistence.Field{Attr: "createdAt", Kind: persistence.KindText},
	persistence.Field{Attr: "editedAt", Kind: persistence.KindText},
	persistence.Field{Attr: "deletedAt", Kind: persistence.KindText},
)

func UserDescriptor() *persistence.Descriptor { return userDescriptor }

// User is a registered account. The password is write-only: it is hashed
// before storage, never enumerated by the descriptor and never read back.
type User struct {
	Meta
	Username     string
	Email        string
	PostScore    int
	CommentScore int
	Avatar       *string

	// password holds a pending plaintext credential until the next save
	// writes its hash. Empty means no credential change is pending.
	password string

	baseline userBaseline
}

// userBaseline is the typed load-time snapshot the diff update compares
// against. It mirrors the persistable fields only.
type userBaseline struct {
	username     string
	email        string
	postScore    int
	commentScore int
	avatar       *string
}

func (u *User) Descriptor() *persistence.Descriptor { return userDescriptor }

func (u *User) Secret() string { return u.password }

func (u *User) SetPassword(plain string) { u.password = plain }

// ClearSecret drops the pending credential once its hash has been written.
func (u *User) ClearSecret() { u.password = "" }

func (u *User) SetUsername(username string) { u.Username = username }
func (u *User) SetEmail(email string)       { u.Email = email }
func (u *User) SetPostScore(score int)      { u.PostScore = score }
func (u *User) SetCommentScore(score int)   { u.CommentScore = score }
func (u *User) SetAvatar(avatar *string)    { u.Avatar = avatar }

// Snapshot records the current field values as the diff baseline. Called
// once at hydration.
func (u *User) Snapshot() {
	u.baseline = userBaseline{
		username:     u.Username,
		email:        u.Email,
		postScore:    u.PostScore,
		commentScore: u.CommentScore,
		avatar:       u.Avatar,
	}
}

func (u *User) Changed(column string) bool {
	switch column {
	case "username":
		return u.Username != u.baseline.username
	case "email":
		return u.Email != u.baseline.email
	case "post_score":
		return u.PostScore != u.baseline.postScore
	case "comment_score":
		return u.CommentScore != u.baseline.commentScore
	case "avatar":
		return !strPtrEqual(u.Avatar, u.baseline.avatar)
	default:
		return false
	}
}

func (u *User) FieldValue(column string) (any, bool) {
	switch column {
	case "username":
		return u.Username, true
	case "email":
		return u.Email, true
	case "post_score":
		return u.PostScore, true
	case "comment_score":
		return u.CommentScore, true
	case "avatar":
		if u.Avatar == nil {
			return nil, true
		}
		return *u.Avatar, true
	case "id":
		return u.ID, true
	default:
		return nil, false
	}
}
