package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	_ "github.com/lib/pq"
	"github.com/realworld-apps/conduit/internal/auth"
	"github.com/realworld-apps/conduit/internal/config"
	"github.com/realworld-apps/conduit/internal/core"
	"github.com/realworld-apps/conduit/internal/filter"
	"github.com/realworld-apps/conduit/internal/utils/databaseutils"
	"github.com/realworld-apps/conduit/internal/views"
	"github.com/realworld-apps/conduit/models"
)

// coreService is the slice of core.Core the handlers call.
type coreService interface {
	CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetRecentArticles(ctx context.Context, filters filter.Filter) ([]*models.Article, error)
	CountArticles(ctx context.Context) (int64, error)
	UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error)
	DeleteArticleBySlug(ctx context.Context, slug string) error
	ResolveAuthors(ctx context.Context, articles []*models.Article) (map[int64]views.Profile, error)
	CreateUser(ctx context.Context, user *auth.User) error
	GetUserByEmail(ctx context.Context, email string) (*auth.User, error)
	GetUserByPID(ctx context.Context, pid string) (*auth.User, error)
	GetUserByID(ctx context.Context, id int64) (*auth.User, error)
}

type application struct {
	config *config.Config
	logger *slog.Logger
	core   coreService
	auth   *auth.Auth
}

func main() {
	logger := configLogger()
	logger.Info("Starting application...")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}

	db, err := openDBConnection(cfg)
	if err != nil {
		logger.Error("Error opening database connection", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing database connection", "error", err)
			os.Exit(1)
		}
	}()

	logger.Info("Database connection established successfully")

	sqlTemplate := databaseutils.NewSQLTemplate(db, cfg.QueryTimeout)
	session := databaseutils.NewSession(db)

	app := application{
		config: cfg,
		logger: logger,
		core:   core.NewCore(logger, sqlTemplate, session),
		auth:   auth.New(cfg.JWTSecret),
	}

	if err := app.serve(); err != nil {
		logger.Error("Error starting server", "error", err)
		os.Exit(1)
	}
}

func configLogger() *slog.Logger {
	handler := devslog.NewHandler(
		os.Stdout, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     slog.LevelDebug,
			},
			NewLineAfterLog: false,
		})

	return slog.New(handler)
}

func openDBConnection(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
