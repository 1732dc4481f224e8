// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topicStore store.TopicStore
	logger     *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topicStore store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TopicHandler")
	}

	return &TopicHandler{
		topicStore: topicStore,
		logger:     logger.With(slog.String("component", "topic_handler")),
	}
}

// GetTopics handles GET /topics requests.
// Responds 200 with { "topics": [...] }.
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	topics, err := h.topicStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("listed topics", slog.Int("count", len(topics)))
	shared.RespondWithJSON(w, r, http.StatusOK, TopicsResponse{Topics: topics})
}
