package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface. The connection pool is initialized and managed
// by the caller. If logger is nil, the default logger is used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// List implements store.ArticleStore.List
// The comment count is aggregated over the comments table at query time;
// the LEFT JOIN guarantees articles with no comments appear with a count
// of zero rather than being dropped.
func (s *PostgresArticleStore) List(ctx context.Context) ([]domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.article_id, a.title, a.topic, a.author, a.body,
		       a.created_at, a.votes,
		       COUNT(c.comment_id) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		GROUP BY a.article_id
		ORDER BY a.created_at DESC
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		log.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ArticleID,
			&article.Title,
			&article.Topic,
			&article.Author,
			&article.Body,
			&article.CreatedAt,
			&article.Votes,
			&article.CommentCount,
		); err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed articles", slog.Int("count", len(articles)))
	return articles, nil
}

// GetByID implements store.ArticleStore.GetByID
// Returns store.ErrArticleNotFound if no article matches.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT a.article_id, a.title, a.topic, a.author, a.body,
		       a.created_at, a.votes,
		       COUNT(c.comment_id) AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id
	`

	var article domain.Article
	err := s.db.QueryRow(ctx, query, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug("article not found", slog.Int64("article_id", id))
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article",
			slog.Int64("article_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &article, nil
}

// ExistsByID implements store.ArticleStore.ExistsByID
func (s *PostgresArticleStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`

	var exists bool
	if err := s.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, MapError(err)
	}

	return exists, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The delta is applied by the database in a single UPDATE ... RETURNING,
// so concurrent increments on the same article are serialized by row-level
// locking and never lost. Returns store.ErrArticleNotFound if no article
// matches.
func (s *PostgresArticleStore) IncrementVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes,
		          (SELECT COUNT(*) FROM comments c
		           WHERE c.article_id = articles.article_id) AS comment_count
	`

	var article domain.Article
	err := s.db.QueryRow(ctx, query, delta, id).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.CommentCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug("article not found for vote update", slog.Int64("article_id", id))
			return nil, fmt.Errorf("%w: vote update matched no rows", store.ErrArticleNotFound)
		}
		log.Error("failed to update article votes",
			slog.Int64("article_id", id),
			slog.Int("delta", delta),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("article votes updated",
		slog.Int64("article_id", id),
		slog.Int("delta", delta),
		slog.Int("votes", article.Votes))
	return &article, nil
}
