package mocks

import (
	"context"

	"github.com/ncnews/news-api/internal/domain"
	"github.com/ncnews/news-api/internal/store"
)

// MockTopicStore implements store.TopicStore for testing.
type MockTopicStore struct {
	// Function fields for customizable behavior
	ListFn func(ctx context.Context) ([]domain.Topic, error)

	// Data for default implementation
	Topics []domain.Topic
}

// List implements the TopicStore interface.
func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Topics, nil
}

// MockArticleStore implements store.ArticleStore for testing.
type MockArticleStore struct {
	ListFn           func(ctx context.Context) ([]domain.Article, error)
	GetByIDFn        func(ctx context.Context, id int64) (*domain.Article, error)
	ExistsByIDFn     func(ctx context.Context, id int64) (bool, error)
	IncrementVotesFn func(ctx context.Context, id int64, delta int) (*domain.Article, error)

	Articles []domain.Article
}

// List implements the ArticleStore interface.
func (m *MockArticleStore) List(ctx context.Context) ([]domain.Article, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Articles, nil
}

// GetByID implements the ArticleStore interface.
func (m *MockArticleStore) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for i := range m.Articles {
		if m.Articles[i].ArticleID == id {
			return &m.Articles[i], nil
		}
	}
	return nil, store.ErrArticleNotFound
}

// ExistsByID implements the ArticleStore interface.
func (m *MockArticleStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	if m.ExistsByIDFn != nil {
		return m.ExistsByIDFn(ctx, id)
	}

	for i := range m.Articles {
		if m.Articles[i].ArticleID == id {
			return true, nil
		}
	}
	return false, nil
}

// IncrementVotes implements the ArticleStore interface.
func (m *MockArticleStore) IncrementVotes(
	ctx context.Context,
	id int64,
	delta int,
) (*domain.Article, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}

	for i := range m.Articles {
		if m.Articles[i].ArticleID == id {
			m.Articles[i].Votes += delta
			return &m.Articles[i], nil
		}
	}
	return nil, store.ErrArticleNotFound
}

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	ListByArticleFn func(ctx context.Context, articleID int64) ([]domain.Comment, error)
	CreateFn        func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	DeleteFn        func(ctx context.Context, commentID int64) error

	Comments []domain.Comment
	NextID   int64
}

// ListByArticle implements the CommentStore interface.
func (m *MockCommentStore) ListByArticle(
	ctx context.Context,
	articleID int64,
) ([]domain.Comment, error) {
	if m.ListByArticleFn != nil {
		return m.ListByArticleFn(ctx, articleID)
	}

	comments := []domain.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

// Create implements the CommentStore interface.
func (m *MockCommentStore) Create(
	ctx context.Context,
	comment *domain.Comment,
) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	m.NextID++
	created := *comment
	created.CommentID = m.NextID
	m.Comments = append(m.Comments, created)
	return &created, nil
}

// Delete implements the CommentStore interface.
func (m *MockCommentStore) Delete(ctx context.Context, commentID int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, commentID)
	}

	for i, c := range m.Comments {
		if c.CommentID == commentID {
			m.Comments = append(m.Comments[:i], m.Comments[i+1:]...)
			return nil
		}
	}
	// Zero-row deletes succeed silently, matching the real store.
	return nil
}

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	ListFn func(ctx context.Context) ([]domain.User, error)

	Users []domain.User
}

// List implements the UserStore interface.
func (m *MockUserStore) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Users, nil
}

// Interface conformance checks
var (
	_ store.TopicStore   = (*MockTopicStore)(nil)
	_ store.ArticleStore = (*MockArticleStore)(nil)
	_ store.CommentStore = (*MockCommentStore)(nil)
	_ store.UserStore    = (*MockUserStore)(nil)
)
