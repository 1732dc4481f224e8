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

// CommentHandler handles comment-related HTTP requests.
type CommentHandler struct {
	commentStore store.CommentStore
	articleStore store.ArticleStore
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler. The article store is
// needed to distinguish an article with no comments from a missing
// article.
func NewCommentHandler(
	commentStore store.CommentStore,
	articleStore store.ArticleStore,
	logger *slog.Logger,
) *CommentHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CommentHandler")
	}

	return &CommentHandler{
		commentStore: commentStore,
		articleStore: articleStore,
		logger:       logger.With(slog.String("component", "comment_handler")),
	}
}

// GetCommentsForArticle handles GET /articles/{article_id}/comments requests.
// Responds 200 with a bare array of comments. An article with no comments
// yields an empty array; only a missing article yields 404, so the
// existence check runs before concluding anything from an empty result.
func (h *CommentHandler) GetCommentsForArticle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, "article_id")
	if err != nil {
		log.Warn("invalid article id in path")
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.commentStore.ListByArticle(r.Context(), articleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if len(comments) == 0 {
		exists, err := h.articleStore.ExistsByID(r.Context(), articleID)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		if !exists {
			log.Debug("article not found for comment listing",
				slog.Int64("article_id", articleID))
			HandleAPIError(w, r, store.ErrArticleNotFound)
			return
		}
	}

	log.Debug("listed comments",
		slog.Int64("article_id", articleID),
		slog.Int("count", len(comments)))
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// CreateComment handles POST /articles/{article_id}/comments requests.
// The body is { "author": ..., "body": ... }. Responds 201 with
// { "comment": {...} } carrying the server-assigned comment_id and
// created_at. A missing field or a reference to a nonexistent article is
// a 400; the article check is left to the store's foreign key constraint.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	articleID, err := getPathID(r, "article_id")
	if err != nil {
		log.Warn("invalid article id in path")
		HandleAPIError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("malformed comment body",
			slog.Int64("article_id", articleID),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("comment body failed validation",
			slog.Int64("article_id", articleID),
			slog.String("error", err.Error()))
		HandleAPIError(w, r, fmt.Errorf("%w: %v", domain.ErrValidation, err))
		return
	}

	comment, err := domain.NewComment(articleID, req.Author, req.Body)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	created, err := h.commentStore.Create(r.Context(), comment)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("comment created",
		slog.Int64("comment_id", created.CommentID),
		slog.Int64("article_id", created.ArticleID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: *created})
}

// DeleteComment handles DELETE /comments/{comment_id} requests.
// Responds 204 with no body. Deleting a well-formed id that matches no
// row still succeeds silently; only a malformed id is rejected.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	commentID, err := getPathID(r, "comment_id")
	if err != nil {
		log.Warn("invalid comment id in path")
		HandleAPIError(w, r, err)
		return
	}

	if err := h.commentStore.Delete(r.Context(), commentID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("deleted comment", slog.Int64("comment_id", commentID))
	w.WriteHeader(http.StatusNoContent)
}
