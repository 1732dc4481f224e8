package api

import "github.com/ncnews/news-api/internal/domain"

// Response envelopes. List endpoints for comments and users return bare
// arrays; everything else is wrapped in a named object.

// TopicsResponse wraps the topic list: { "topics": [...] }.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// ArticlesResponse wraps the article list: { "articles": [...] }.
type ArticlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

// ArticleResponse wraps a single article: { "article": {...} }.
type ArticleResponse struct {
	Article domain.Article `json:"article"`
}

// CommentResponse wraps a single created comment: { "comment": {...} }.
type CommentResponse struct {
	Comment domain.Comment `json:"comment"`
}

// CreateCommentRequest is the body for POST /articles/{article_id}/comments.
type CreateCommentRequest struct {
	Author string `json:"author" validate:"required"`
	Body   string `json:"body"   validate:"required"`
}

// UpdateArticleVotesRequest is the body for PATCH /articles/{article_id}.
// Votes is a signed delta applied additively to the article's vote count.
// A pointer distinguishes a missing field from an explicit zero.
type UpdateArticleVotesRequest struct {
	Votes *int `json:"votes"`
}
