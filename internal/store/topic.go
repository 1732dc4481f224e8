package store

import (
	"context"

	"github.com/ncnews/news-api/internal/domain"
)

// TopicStore defines the interface for topic data access.
type TopicStore interface {
	// List returns every topic in insertion order. Topics have no write
	// surface in this API, so this is the only operation.
	List(ctx context.Context) ([]domain.Topic, error)
}
