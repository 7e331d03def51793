package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pvanham/quorum/internal/api/handler"
	"github.com/pvanham/quorum/internal/api/middleware"
	"github.com/pvanham/quorum/internal/core/service"
	"github.com/pvanham/quorum/pkg/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates a new API server
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	userService *service.UserService,
	categoryService *service.CategoryService,
	postService *service.PostService,
	commentService *service.CommentService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, postService, commentService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	postHandler := handler.NewPostHandler(postService, commentService)
	commentHandler := handler.NewCommentHandler(commentService)

	// Public routes (no auth required)
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	// Reads are public; every write except registration needs a token
	authMiddleware := middleware.AuthMiddleware(authService)

	// Users
	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
		users.GET("/:id/posts", userHandler.ListUserPosts)
		users.GET("/:id/comments", userHandler.ListUserComments)
		users.PUT("/:id", authMiddleware, userHandler.UpdateUser)
		users.DELETE("/:id", authMiddleware, userHandler.DeleteUser)
	}

	// Categories
	categories := router.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
		categories.GET("/:id/posts", categoryHandler.ListCategoryPosts)
		categories.POST("", authMiddleware, categoryHandler.CreateCategory)
		categories.PUT("/:id", authMiddleware, categoryHandler.UpdateCategory)
		categories.DELETE("/:id", authMiddleware, categoryHandler.DeleteCategory)
	}

	// Posts
	posts := router.Group("/posts")
	{
		posts.GET("/:id", postHandler.GetPost)
		posts.GET("/:id/comments", postHandler.ListPostComments)
		posts.POST("", authMiddleware, postHandler.CreatePost)
		posts.PUT("/:id", authMiddleware, postHandler.UpdatePost)
		posts.DELETE("/:id", authMiddleware, postHandler.DeletePost)
	}

	// Comments
	comments := router.Group("/comments")
	{
		comments.GET("/:id", commentHandler.GetComment)
		comments.GET("/:id/replies", commentHandler.ListReplies)
		comments.POST("", authMiddleware, commentHandler.CreateComment)
		comments.PUT("/:id", authMiddleware, commentHandler.UpdateComment)
		comments.DELETE("/:id", authMiddleware, commentHandler.DeleteComment)
	}

	// API documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	server := &Server{
		router: router,
		config: cfg,
	}

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.APIHost, s.config.APIPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start with or without SSL
	if s.config.SSLCert != "" && s.config.SSLKey != "" {
		fmt.Printf("Starting HTTPS server on %s\n", addr)
		return s.srv.ListenAndServeTLS(s.config.SSLCert, s.config.SSLKey)
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
