package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. The connection pool is initialized and managed
// by the caller. If logger is nil, the default logger is used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle
// An article with no comments yields an empty slice; the caller decides
// whether that means "no comments yet" or "no such article".
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int64,
) ([]domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
	`

	rows, err := s.db.Query(ctx, query, articleID)
	if err != nil {
		log.Error("failed to list comments",
			slog.Int64("article_id", articleID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.CommentID,
			&comment.ArticleID,
			&comment.Author,
			&comment.Body,
			&comment.Votes,
			&comment.CreatedAt,
		); err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed comments",
		slog.Int64("article_id", articleID),
		slog.Int("count", len(comments)))
	return comments, nil
}

// Create implements store.CommentStore.Create
// comment_id, votes and created_at are assigned by the database. A
// foreign key violation on article_id or author surfaces as
// store.ErrInvalidEntity.
func (s *PostgresCommentStore) Create(
	ctx context.Context,
	comment *domain.Comment,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("article_id", comment.ArticleID))
		return nil, err
	}

	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var created domain.Comment
	err := s.db.QueryRow(ctx, query, comment.ArticleID, comment.Author, comment.Body).Scan(
		&created.CommentID,
		&created.ArticleID,
		&created.Author,
		&created.Body,
		&created.Votes,
		&created.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int64("article_id", comment.ArticleID),
				slog.String("author", comment.Author),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: referenced article or author not found",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create comment",
			slog.Int64("article_id", comment.ArticleID),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	log.Info("comment created",
		slog.Int64("comment_id", created.CommentID),
		slog.Int64("article_id", created.ArticleID))
	return &created, nil
}

// Delete implements store.CommentStore.Delete
// A zero-row delete is deliberately not an error: the database does not
// object to deleting an absent row, and this API preserves that silent
// success.
func (s *PostgresCommentStore) Delete(ctx context.Context, commentID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM comments WHERE comment_id = $1`

	tag, err := s.db.Exec(ctx, query, commentID)
	if err != nil {
		log.Error("failed to delete comment",
			slog.Int64("comment_id", commentID),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	if tag.RowsAffected() == 0 {
		log.Debug("delete matched no rows", slog.Int64("comment_id", commentID))
		return nil
	}

	log.Info("comment deleted", slog.Int64("comment_id", commentID))
	return nil
}
