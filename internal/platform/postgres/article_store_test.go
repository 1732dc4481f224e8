package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ncnews/news-api/internal/store"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleColumns() []string {
	return []string{
		"article_id", "title", "topic", "author", "body",
		"created_at", "votes", "comment_count",
	}
}

func TestArticleStoreList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewPostgresArticleStore(mock, nil)

	newer := time.Date(2020, 10, 16, 5, 3, 0, 0, time.UTC)
	older := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

	rows := pgxmock.NewRows(articleColumns()).
		AddRow(int64(2), "Sony Vaio; or, The Laptop", "mitch", "icellusedkars",
			"Call me Mitchell.", newer, 0, int64(0)).
		AddRow(int64(1), "Living in the shadow of a great man", "mitch", "butter_bridge",
			"I find this existence challenging", older, 100, int64(2))

	mock.ExpectQuery(`SELECT (.+) FROM articles a\s+LEFT JOIN comments c`).
		WillReturnRows(rows)

	articles, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, int64(2), articles[0].ArticleID)
	assert.Equal(t, int64(0), articles[0].CommentCount)
	assert.Equal(t, int64(2), articles[1].CommentCount)
	assert.True(t, articles[0].CreatedAt.After(articles[1].CreatedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleStoreGetByID(t *testing.T) {
	t.Run("returns matching article", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		s := NewPostgresArticleStore(mock, nil)

		created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
		rows := pgxmock.NewRows(articleColumns()).
			AddRow(int64(1), "Living in the shadow of a great man", "mitch",
				"butter_bridge", "I find this existence challenging", created, 100, int64(2))

		mock.ExpectQuery(`SELECT (.+) FROM articles a`).
			WithArgs(int64(1)).
			WillReturnRows(rows)

		article, err := s.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), article.ArticleID)
		assert.Equal(t, 100, article.Votes)
		assert.Equal(t, int64(2), article.CommentCount)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row maps to ErrArticleNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		s := NewPostgresArticleStore(mock, nil)

		mock.ExpectQuery(`SELECT (.+) FROM articles a`).
			WithArgs(int64(9999)).
			WillReturnError(pgx.ErrNoRows)

		_, err = s.GetByID(context.Background(), 9999)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})
}

func TestArticleStoreExistsByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := NewPostgresArticleStore(mock, nil)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.ExistsByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestArticleStoreIncrementVotes(t *testing.T) {
	t.Run("applies delta and returns updated article", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		s := NewPostgresArticleStore(mock, nil)

		created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)
		rows := pgxmock.NewRows(articleColumns()).
			AddRow(int64(1), "Living in the shadow of a great man", "mitch",
				"butter_bridge", "I find this existence challenging", created, 102, int64(2))

		mock.ExpectQuery(`UPDATE articles\s+SET votes = votes \+ \$1`).
			WithArgs(2, int64(1)).
			WillReturnRows(rows)

		article, err := s.IncrementVotes(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 102, article.Votes)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row maps to ErrArticleNotFound", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		s := NewPostgresArticleStore(mock, nil)

		mock.ExpectQuery(`UPDATE articles\s+SET votes = votes \+ \$1`).
			WithArgs(1, int64(9999)).
			WillReturnError(pgx.ErrNoRows)

		_, err = s.IncrementVotes(context.Background(), 9999, 1)
		assert.ErrorIs(t, err, store.ErrArticleNotFound)
	})
}
