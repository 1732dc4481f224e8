package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ncnews/news-api/internal/api"
	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/mocks"
	"github.com/ncnews/news-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentRouter(
	comments *mocks.MockCommentStore,
	articles *mocks.MockArticleStore,
) http.Handler {
	h := api.NewCommentHandler(comments, articles, slog.Default())
	r := chi.NewRouter()
	r.Get("/articles/{article_id}/comments", h.GetCommentsForArticle)
	r.Post("/articles/{article_id}/comments", h.CreateComment)
	r.Delete("/comments/{comment_id}", h.DeleteComment)
	return r
}

func TestGetCommentsForArticle(t *testing.T) {
	articles := &mocks.MockArticleStore{Articles: seedArticles()}

	t.Run("returns bare array of comments", func(t *testing.T) {
		comments := &mocks.MockCommentStore{
			Comments: []domain.Comment{
				{
					CommentID: 1,
					ArticleID: 1,
					Author:    "butter_bridge",
					Body:      "Oh, I've got compassion running out of my nose, pal!",
					Votes:     16,
					CreatedAt: time.Date(2020, 4, 6, 12, 17, 0, 0, time.UTC),
				},
				{CommentID: 2, ArticleID: 1, Author: "icellusedkars", Body: "meep"},
			},
		}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodGet, "/articles/1/comments", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body []domain.Comment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, int64(1), body[0].ArticleID)
		assert.Equal(t, "butter_bridge", body[0].Author)
	})

	t.Run("article with no comments yields empty array, not 404", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodGet, "/articles/2/comments", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("nonexistent article yields 404 Article does not exist", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodGet, "/articles/9999/comments", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorMsg(t, rec, "Article does not exist")
	})

	t.Run("non-numeric article id yields 400", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodGet, "/articles/nope/comments", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorMsg(t, rec, "Invalid input")
	})
}

func TestCreateComment(t *testing.T) {
	articles := &mocks.MockArticleStore{Articles: seedArticles()}

	t.Run("creates comment with server-assigned id", func(t *testing.T) {
		comments := &mocks.MockCommentStore{NextID: 18}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodPost, "/articles/1/comments",
			strings.NewReader(`{"author": "icellusedkars", "body": "meep-morp."}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body api.CommentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(19), body.Comment.CommentID)
		assert.Equal(t, int64(1), body.Comment.ArticleID)
		assert.Equal(t, "icellusedkars", body.Comment.Author)
		assert.Equal(t, "meep-morp.", body.Comment.Body)
	})

	t.Run("missing body yields 400", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodPost, "/articles/1/comments",
			strings.NewReader(`{"author": "icellusedkars"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorMsg(t, rec, "Invalid input")
	})

	t.Run("missing author yields 400", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodPost, "/articles/1/comments",
			strings.NewReader(`{"body": "meep-morp."}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorMsg(t, rec, "Invalid input")
	})

	t.Run("foreign key violation from store yields 400", func(t *testing.T) {
		comments := &mocks.MockCommentStore{
			CreateFn: func(_ context.Context, _ *domain.Comment) (*domain.Comment, error) {
				return nil, store.ErrInvalidEntity
			},
		}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodPost, "/articles/9999/comments",
			strings.NewReader(`{"author": "icellusedkars", "body": "meep-morp."}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorMsg(t, rec, "Invalid input")
	})

	t.Run("non-numeric article id yields 400", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodPost, "/articles/nope/comments",
			strings.NewReader(`{"author": "icellusedkars", "body": "meep-morp."}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorMsg(t, rec, "Invalid input")
	})
}

func TestDeleteComment(t *testing.T) {
	articles := &mocks.MockArticleStore{Articles: seedArticles()}

	t.Run("deletes existing comment with 204 and no body", func(t *testing.T) {
		comments := &mocks.MockCommentStore{
			Comments: []domain.Comment{{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "gone soon"}},
		}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodDelete, "/comments/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		// The comment no longer appears when listing.
		listReq := httptest.NewRequest(http.MethodGet, "/articles/1/comments", nil)
		listRec := httptest.NewRecorder()
		router.ServeHTTP(listRec, listReq)
		require.Equal(t, http.StatusOK, listRec.Code)
		assert.JSONEq(t, `[]`, listRec.Body.String())
	})

	t.Run("well-formed absent id still succeeds with 204", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodDelete, "/comments/9999", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed id yields 400", func(t *testing.T) {
		comments := &mocks.MockCommentStore{}
		router := newCommentRouter(comments, articles)

		req := httptest.NewRequest(http.MethodDelete, "/comments/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorMsg(t, rec, "Invalid input")
	})
}
