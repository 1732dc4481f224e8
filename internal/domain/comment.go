package domain

import (
	"errors"
	"fmt"
	"time"
)

// Common validation errors for Comment.
var (
	ErrEmptyCommentAuthor = fmt.Errorf("%w: comment author cannot be empty", ErrValidation)
	ErrEmptyCommentBody   = fmt.Errorf("%w: comment body cannot be empty", ErrValidation)
)

// Comment is a reply to an article. CommentID and CreatedAt are
// assigned by the store on insert.
type Comment struct {
	CommentID int64     `json:"comment_id"`
	ArticleID int64     `json:"article_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment builds a comment ready for insertion. The store fills in
// CommentID, Votes and CreatedAt.
func NewComment(articleID int64, author, body string) (*Comment, error) {
	comment := &Comment{
		ArticleID: articleID,
		Author:    author,
		Body:      body,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks that the fields required for insertion are present.
// Referential checks (the article and author existing) are left to the
// store's constraints.
func (c *Comment) Validate() error {
	if c.Author == "" {
		return ErrEmptyCommentAuthor
	}

	if c.Body == "" {
		return ErrEmptyCommentBody
	}

	return nil
}

// IsValidationError reports whether err is any domain validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidVoteDelta)
}
