package store

import (
	"context"

	"github.com/ncnews/news-api/internal/domain"
)

// CommentStore defines the interface for comment data access.
type CommentStore interface {
	// ListByArticle returns all comments on the given article. An
	// article with no comments yields an empty slice, not an error;
	// callers that need to 404 on a missing article must check
	// ArticleStore.ExistsByID themselves.
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)

	// Create inserts a new comment and returns it with the
	// server-assigned comment_id, votes and created_at.
	// Returns ErrInvalidEntity if the article or author does not exist
	// (foreign key violation) or a required field is null.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// Delete removes the comment with the given ID. Deleting an ID that
	// does not exist is not an error: the store reports zero rows
	// affected and the delete succeeds silently.
	Delete(ctx context.Context, commentID int64) error
}
