package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ncnews/news-api/internal/api/shared"
	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/platform/logger"
	"github.com/ncnews/news-api/internal/store"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleStore store.ArticleStore
	logger       *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleStore store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ArticleHandler")
	}

	return &ArticleHandler{
		articleStore: articleStore,
		logger:       logger.With(slog.String("component", "article_handler")),
	}
}

// GetArticles handles GET /articles requests.
// Responds 200 with { "articles": [...] } sorted by created_at descending,
// each article decorated with its comment count.
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articles, err := h.articleStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("listed articles", slog.Int("count", len(articles)))
	shared.RespondWithJSON(w, r, http.StatusOK, ArticlesResponse{Articles: articles})
}

// GetArticleByID handles GET /articles/{article_id} requests.
// Responds 200 with { "article": {...} }, 400 on a non-integer id, 404
// when no article matches.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, "article_id")
	if err != nil {
		log.Warn("invalid article id in path")
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articleStore.GetByID(r.Context(), articleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("retrieved article", slog.Int64("article_id", articleID))
	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: *article})
}

// UpdateArticleVotes handles PATCH /articles/{article_id} requests.
// The body { "votes": n } carries a signed delta applied to the article's
// vote count. Responds 200 with the updated article, 400 on a malformed
// id or non-integer delta, 404 when no article matches.
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, "article_id")
	if err != nil {
		log.Warn("invalid article id in path")
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateArticleVotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		// A non-integer delta ("two", 1.5) fails JSON decoding into *int.
		log.Warn("malformed vote delta in request body",
			slog.Int64("article_id", articleID),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", domain.ErrInvalidVoteDelta, err))
		return
	}

	if req.Votes == nil {
		log.Warn("missing vote delta in request body",
			slog.Int64("article_id", articleID))
		HandleAPIError(w, r, fmt.Errorf("%w: votes field is required", domain.ErrInvalidVoteDelta))
		return
	}

	article, err := h.articleStore.IncrementVotes(r.Context(), articleID, *req.Votes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("updated article votes",
		slog.Int64("article_id", articleID),
		slog.Int("delta", *req.Votes),
		slog.Int("votes", article.Votes))
	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: *article})
}
