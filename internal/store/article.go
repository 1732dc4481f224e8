package store

import (
	"context"

	"github.com/ncnews/news-api/internal/domain"
)

// ArticleStore defines the interface for article data access.
// CommentCount on returned articles is always computed by aggregation at
// query time, never read from a persisted column.
type ArticleStore interface {
	// List returns all articles decorated with their comment count,
	// ordered by created_at descending (newest first). Articles with no
	// comments report a count of zero.
	List(ctx context.Context) ([]domain.Article, error)

	// GetByID retrieves a single article by its ID.
	// Returns ErrArticleNotFound if no article matches.
	GetByID(ctx context.Context, id int64) (*domain.Article, error)

	// ExistsByID reports whether an article with the given ID exists.
	// Used to distinguish "article has no comments" from "article does
	// not exist".
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// IncrementVotes applies votes = votes + delta in a single statement
	// and returns the updated article. The increment is evaluated by the
	// store, so concurrent updates to the same article are serialized by
	// row-level locking rather than read-modify-write in the application.
	// Returns ErrArticleNotFound if no article matches.
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)
}
