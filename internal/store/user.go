package store

import (
	"context"

	"github.com/ncnews/news-api/internal/domain"
)

// UserStore defines the interface for user data access.
type UserStore interface {
	// List returns every user. Users are created by seeding, not through
	// this API, so this is the only operation.
	List(ctx context.Context) ([]domain.User, error)
}
