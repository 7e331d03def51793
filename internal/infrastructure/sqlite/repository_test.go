package sqlite

import (
	"context"
	"testing"

	"github.com/pvanham/quorum/internal/core/domain"
	"github.com/pvanham/quorum/internal/core/repository"
	"github.com/pvanham/quorum/internal/persistence"
	"golang.org/x/crypto/bcrypt"
)

// testRepos wires every repository against one in-memory database.
type testRepos struct {
	users      repository.UserRepository
	categories repository.CategoryRepository
	posts      repository.PostRepository
	comments   repository.CommentRepository
}

func setupTestRepos(t *testing.T) *testRepos {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	hash := func(plain string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
		return string(h), err
	}
	gateway := persistence.NewGateway(db.DB, hash)

	return &testRepos{
		users:      NewUserRepository(db, gateway),
		categories: NewCategoryRepository(gateway),
		posts:      NewPostRepository(gateway),
		comments:   NewCommentRepository(gateway),
	}
}

func (r *testRepos) seedUser(t *testing.T, username, email string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Pikachu1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user, err := r.users.Create(context.Background(), username, email, string(hash))
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserCreateAndFind(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	created := repos.seedUser(t, "Ash", "ash@poke.mon")

	if created.ID == 0 {
		t.Fatal("created user has no id")
	}
	if created.Username != "Ash" || created.Email != "ash@poke.mon" {
		t.Errorf("created user = %q/%q", created.Username, created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at not set by storage")
	}
	if created.PostScore != 0 || created.CommentScore != 0 {
		t.Errorf("scores should default to 0, got %d/%d", created.PostScore, created.CommentScore)
	}
	if created.Avatar != nil {
		t.Errorf("avatar should default to nil, got %v", *created.Avatar)
	}

	byID, err := repos.users.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID == nil || byID.Username != created.Username || !byID.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("FindByID returned different user: %+v", byID)
	}

	byName, err := repos.users.FindByUsername(ctx, "Ash")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Error("FindByUsername did not return the created user")
	}
}

func TestUserFindAbsent(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user, err := repos.users.FindByID(ctx, 12345)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil for absent user, got %+v", user)
	}
}

func TestUserPasswordHash(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	repos.seedUser(t, "Ash", "ash@poke.mon")

	hash, err := repos.users.PasswordHash(ctx, "Ash")
	if err != nil {
		t.Fatalf("PasswordHash: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("Pikachu1")); err != nil {
		t.Error("stored hash does not verify the password")
	}

	if _, err := repos.users.PasswordHash(ctx, "Misty"); err == nil {
		t.Error("expected error for unknown username")
	}
}

func TestUserSaveDiff(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")
	user.SetEmail("ash@kanto.jp")

	ok, err := repos.users.Save(ctx, user)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !ok {
		t.Fatal("Save reported no row affected")
	}

	reloaded, err := repos.users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reloaded.Email != "ash@kanto.jp" {
		t.Errorf("email = %q after save", reloaded.Email)
	}
	if reloaded.Username != "Ash" {
		t.Errorf("unchanged username was rewritten: %q", reloaded.Username)
	}
	if reloaded.EditedAt == nil {
		t.Error("edited_at not stamped by save")
	}
}

func TestUserSaveNoPendingChanges(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")

	// A save without mutations still succeeds: only edited_at is written.
	ok, err := repos.users.Save(ctx, user)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !ok {
		t.Error("empty-diff save should still affect the row")
	}
}

func TestUserSaveMissingRow(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	ghost := &domain.User{Meta: domain.Meta{ID: 999}, Username: "Ghost", Email: "g@host"}
	ghost.Snapshot()
	ghost.SetEmail("other@host")

	ok, err := repos.users.Save(ctx, ghost)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ok {
		t.Error("save of a missing row must report false")
	}
}

func TestUserPasswordUpdate(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")
	oldHash, _ := repos.users.PasswordHash(ctx, "Ash")

	user.SetPassword("Raichu22")
	ok, err := repos.users.Save(ctx, user)
	if err != nil || !ok {
		t.Fatalf("Save: ok=%v err=%v", ok, err)
	}

	if user.Secret() != "" {
		t.Error("pending credential not cleared after save")
	}

	newHash, err := repos.users.PasswordHash(ctx, "Ash")
	if err != nil {
		t.Fatalf("PasswordHash: %v", err)
	}
	if newHash == oldHash {
		t.Error("password hash unchanged after credential update")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(newHash), []byte("Raichu22")); err != nil {
		t.Error("new hash does not verify the new password")
	}
}

func TestUserRemoveSoftDelete(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")

	ok, err := repos.users.Remove(ctx, user.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !ok {
		t.Fatal("Remove reported no row affected")
	}

	// The row stays findable with deleted_at stamped.
	reloaded, err := repos.users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reloaded == nil {
		t.Fatal("soft-deleted user no longer findable")
	}
	if reloaded.DeletedAt == nil {
		t.Error("deleted_at not stamped")
	}

	ok, err = repos.users.Remove(ctx, 999)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ok {
		t.Error("remove of a missing row must report false")
	}
}

func TestCategoryCreateResolvesCreator(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")

	category, err := repos.categories.Create(ctx, user.ID, "Kanto", "First region")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if category.CreatedBy == nil || category.CreatedBy.Username != "Ash" {
		t.Errorf("created_by not resolved: %+v", category.CreatedBy)
	}

	byTitle, err := repos.categories.FindByTitle(ctx, "Kanto")
	if err != nil {
		t.Fatalf("FindByTitle: %v", err)
	}
	if byTitle == nil || byTitle.ID != category.ID {
		t.Error("FindByTitle did not return the created category")
	}
}

func TestCategoryFindAll(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")
	if _, err := repos.categories.Create(ctx, user.ID, "Kanto", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repos.categories.Create(ctx, user.ID, "Johto", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := repos.categories.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("FindAll returned %d categories, want 2", len(all))
	}
}

func TestPostCreateAndFindByCategory(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")
	category, err := repos.categories.Create(ctx, user.ID, "Kanto", "")
	if err != nil {
		t.Fatalf("Create category: %v", err)
	}

	post, err := repos.posts.Create(ctx, user.ID, category.ID, "Gym guide", domain.PostTypeText, "Start at Pewter.")
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}
	if post.User == nil || post.User.ID != user.ID {
		t.Error("post author not resolved")
	}
	if post.Category == nil || post.Category.Title != "Kanto" {
		t.Error("post category not resolved")
	}
	if post.Type != domain.PostTypeText {
		t.Errorf("post type = %q", post.Type)
	}

	inCategory, err := repos.posts.FindByCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("FindByCategory: %v", err)
	}
	if len(inCategory) != 1 || inCategory[0].ID != post.ID {
		t.Errorf("FindByCategory returned %d posts", len(inCategory))
	}
}

func TestCommentReplyChain(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	user := repos.seedUser(t, "Ash", "ash@poke.mon")
	category, _ := repos.categories.Create(ctx, user.ID, "Kanto", "")
	post, err := repos.posts.Create(ctx, user.ID, category.ID, "Gym guide", domain.PostTypeText, "Start at Pewter.")
	if err != nil {
		t.Fatalf("Create post: %v", err)
	}

	root, err := repos.comments.Create(ctx, post.ID, user.ID, "Brock is easy.", nil)
	if err != nil {
		t.Fatalf("Create comment: %v", err)
	}
	if root.Reply != nil {
		t.Error("root comment must have no parent")
	}

	child, err := repos.comments.Create(ctx, post.ID, user.ID, "Not with Charmander.", &root.ID)
	if err != nil {
		t.Fatalf("Create reply: %v", err)
	}
	if child.Reply == nil || child.Reply.ID != root.ID {
		t.Error("reply parent not resolved")
	}
	if child.Post == nil || child.Post.ID != post.ID {
		t.Error("reply post not resolved")
	}

	replies, err := repos.comments.FindReplies(ctx, root.ID)
	if err != nil {
		t.Fatalf("FindReplies: %v", err)
	}
	if len(replies) != 1 || replies[0].ID != child.ID {
		t.Errorf("FindReplies returned %d comments", len(replies))
	}

	byPost, err := repos.comments.FindByPost(ctx, post.ID)
	if err != nil {
		t.Fatalf("FindByPost: %v", err)
	}
	if len(byPost) != 2 {
		t.Errorf("FindByPost returned %d comments, want 2", len(byPost))
	}
}
