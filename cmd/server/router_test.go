package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication() *application {
	return &application{
		logger: slog.Default(),
		topicStore: &mocks.MockTopicStore{
			Topics: []domain.Topic{{Slug: "mitch", Description: "The man"}},
		},
		articleStore: &mocks.MockArticleStore{
			Articles: []domain.Article{{ArticleID: 1, Title: "First", Author: "butter_bridge"}},
		},
		commentStore: &mocks.MockCommentStore{},
		userStore: &mocks.MockUserStore{
			Users: []domain.User{{Username: "lurker"}},
		},
	}
}

func TestRouterServesDeclaredEndpoints(t *testing.T) {
	router := newTestApplication().setupRouter()

	tests := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{http.MethodGet, "/topics", http.StatusOK},
		{http.MethodGet, "/articles", http.StatusOK},
		{http.MethodGet, "/articles/1", http.StatusOK},
		{http.MethodGet, "/articles/1/comments", http.StatusOK},
		{http.MethodGet, "/users", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodDelete, "/comments/1", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRouterPathNotFound(t *testing.T) {
	router := newTestApplication().setupRouter()

	t.Run("unmapped path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/not-a-path", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Path not found", body["msg"])
	})

	t.Run("unmapped method on a mapped path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/topics", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Path not found", body["msg"])
	})
}
