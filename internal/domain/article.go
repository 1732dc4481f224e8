package domain

import "time"

// Article is a posted item authored by a user under a topic. Votes is
// only ever adjusted by applying a signed delta, never overwritten.
// CommentCount is derived at query time from the comments table; it is
// never persisted, so it can't go stale.
type Article struct {
	ArticleID    int64     `json:"article_id"`
	Title        string    `json:"title"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int64     `json:"comment_count"`
}
