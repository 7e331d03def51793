package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pvanham/quorum/internal/api/dto"
	"github.com/pvanham/quorum/internal/core/service"
	"github.com/pvanham/quorum/internal/infrastructure/sqlite"
	"github.com/pvanham/quorum/internal/persistence"
)

// testEnv holds all test dependencies
type testEnv struct {
	db       *sqlite.DB
	router   *gin.Engine
	users    *service.UserService
	posts    *service.PostService
	comments *service.CommentService
}

// setupTestEnv creates a test environment with in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Create repositories and services
	gateway := persistence.NewGateway(db.DB, service.HashPassword)
	userRepo := sqlite.NewUserRepository(db, gateway)
	categoryRepo := sqlite.NewCategoryRepository(gateway)
	postRepo := sqlite.NewPostRepository(gateway)
	commentRepo := sqlite.NewCommentRepository(gateway)

	authService := service.NewAuthService(userRepo, "test-secret", "HS256")
	userService := service.NewUserService(userRepo, authService)
	categoryService := service.NewCategoryService(categoryRepo, userRepo, postRepo)
	postService := service.NewPostService(postRepo, userRepo, categoryRepo)
	commentService := service.NewCommentService(commentRepo, userRepo, postRepo)

	// Create handlers
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService, postService, commentService)
	categoryHandler := NewCategoryHandler(categoryService)
	postHandler := NewPostHandler(postService, commentService)
	commentHandler := NewCommentHandler(commentService)

	// Setup gin router in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Register routes without auth middleware
	router.POST("/auth/login", authHandler.Login)
	router.POST("/users", userHandler.CreateUser)
	router.GET("/users/:id", userHandler.GetUser)
	router.PUT("/users/:id", userHandler.UpdateUser)
	router.DELETE("/users/:id", userHandler.DeleteUser)
	router.POST("/categories", categoryHandler.CreateCategory)
	router.GET("/categories", categoryHandler.ListCategories)
	router.GET("/categories/:id/posts", categoryHandler.ListCategoryPosts)
	router.DELETE("/categories/:id", categoryHandler.DeleteCategory)
	router.POST("/posts", postHandler.CreatePost)
	router.GET("/posts/:id", postHandler.GetPost)
	router.PUT("/posts/:id", postHandler.UpdatePost)
	router.POST("/comments", commentHandler.CreateComment)
	router.GET("/comments/:id/replies", commentHandler.ListReplies)

	return &testEnv{
		db:       db,
		router:   router,
		users:    userService,
		posts:    postService,
		comments: commentService,
	}
}

// makeRequest performs a request with an optional JSON body
func (env *testEnv) makeRequest(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// parseEnvelope parses a response into the message/payload envelope, decoding
// the payload into out when non-nil.
func parseEnvelope(t *testing.T, w *httptest.ResponseRecorder, out any) string {
	t.Helper()

	var envelope struct {
		Message string          `json:"message"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to parse response: %v\nBody: %s", err, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Payload, out); err != nil {
			t.Fatalf("failed to parse payload: %v\nBody: %s", err, w.Body.String())
		}
	}
	return envelope.Message
}

// parseErrorResponse parses the response body into ErrorResponse
func parseErrorResponse(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, w.Body.String())
	}
	return resp
}

// seedForum creates a user, a category and a post for endpoint tests.
func (env *testEnv) seedForum(t *testing.T) (userID, categoryID, postID int64) {
	t.Helper()
	ctx := context.Background()

	user, err := env.users.Create(ctx, "Ash", "ash@poke.mon", "Pikachu1")
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	w := env.makeRequest(t, http.MethodPost, "/categories", dto.CreateCategoryRequest{
		CreatedBy: user.ID,
		Title:     "Kanto",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to seed category: %d %s", w.Code, w.Body.String())
	}
	var category dto.CategoryResponse
	parseEnvelope(t, w, &category)

	w = env.makeRequest(t, http.MethodPost, "/posts", dto.CreatePostRequest{
		UserID:     user.ID,
		CategoryID: category.ID,
		Title:      "Gym guide",
		Type:       "Text",
		Content:    "Start at Pewter.",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to seed post: %d %s", w.Code, w.Body.String())
	}
	var post dto.PostResponse
	parseEnvelope(t, w, &post)

	return user.ID, category.ID, post.ID
}
