package postgres

import (
	"context"
	"log/slog"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface. The connection pool is initialized and managed by
// the caller. If logger is nil, the default logger is used.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT slug, description FROM topics`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		log.Error("failed to list topics", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer rows.Close()

	topics := []domain.Topic{}
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			log.Error("failed to scan topic row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	log.Debug("listed topics", slog.Int("count", len(topics)))
	return topics, nil
}
