package cli

import (
	"context"
	"fmt"

	"github.com/pvanham/quorum/internal/core/repository"
	"github.com/pvanham/quorum/internal/core/service"
	"github.com/pvanham/quorum/internal/infrastructure/sqlite"
	"github.com/pvanham/quorum/internal/persistence"
	"github.com/pvanham/quorum/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quorum",
	Short: "Quorum - Community forum platform",
	Long: `Quorum is a forum platform with threaded discussions.

It provides:
- User accounts with bcrypt credentials and JWT sessions
- Categories, posts and threaded comment trees
- Soft deletion with full history retention
- REST API for clients`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/quorum/config.yml)")
}

// initServices initializes all services
func initServices(ctx context.Context) (*Services, error) {
	// Initialize database
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize the persistence gateway and repositories
	gateway := persistence.NewGateway(db.DB, service.HashPassword)
	userRepo := sqlite.NewUserRepository(db, gateway)
	categoryRepo := sqlite.NewCategoryRepository(gateway)
	postRepo := sqlite.NewPostRepository(gateway)
	commentRepo := sqlite.NewCommentRepository(gateway)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm)
	userService := service.NewUserService(userRepo, authService)
	categoryService := service.NewCategoryService(categoryRepo, userRepo, postRepo)
	postService := service.NewPostService(postRepo, userRepo, categoryRepo)
	commentService := service.NewCommentService(commentRepo, userRepo, postRepo)

	return &Services{
		DB:              db,
		UserRepo:        userRepo,
		CategoryRepo:    categoryRepo,
		PostRepo:        postRepo,
		CommentRepo:     commentRepo,
		AuthService:     authService,
		UserService:     userService,
		CategoryService: categoryService,
		PostService:     postService,
		CommentService:  commentService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB              *sqlite.DB
	UserRepo        repository.UserRepository
	CategoryRepo    repository.CategoryRepository
	PostRepo        repository.PostRepository
	CommentRepo     repository.CommentRepository
	AuthService     *service.AuthService
	UserService     *service.UserService
	CategoryService *service.CategoryService
	PostService     *service.PostService
	CommentService  *service.CommentService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
