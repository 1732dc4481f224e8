// Package main implements the entry point for the news API server,
// which exposes topics, articles, users and comments from a PostgreSQL
// database over a JSON REST surface.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ncnews/news-api/internal/config"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/platform/postgres"
	"github.com/ncnews/news-api/internal/store"
)

// application holds the shared dependencies handlers are built from.
// The store handle is injected here once at startup rather than living
// in ambient global state, so tests can swap in doubles.
type application struct {
	config *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool

	topicStore   store.TopicStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
	userStore    store.UserStore
}

func main() {
	app, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, connects to the
// database, runs migrations and wires the stores.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	pool, err := setupDatabase(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(cfg, appLogger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       appLogger,
		pool:         pool,
		topicStore:   postgres.NewPostgresTopicStore(pool, appLogger),
		articleStore: postgres.NewPostgresArticleStore(pool, appLogger),
		commentStore: postgres.NewPostgresCommentStore(pool, appLogger),
		userStore:    postgres.NewPostgresUserStore(pool, appLogger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.pool != nil {
		app.pool.Close()
		app.logger.Info("Database pool closed")
	}
}
