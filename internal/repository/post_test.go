package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_ListByKeyword(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "keyword_id", "title", "content", "score", "comment_count", "published_at"}).
		AddRow(2, 1, "newer post", "body", 50, 5, now).
		AddRow(1, 1, "older post", "body", 10, 1, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE keyword_id = $1 AND "posts"."deleted_at" IS NULL ORDER BY published_at DESC`)).
		WithArgs(1).
		WillReturnRows(rows)

	posts, err := repo.ListByKeyword(ctx, 1)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer post", posts[0].Title)
	assert.Equal(t, 50, posts[0].Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_ListByKeyword_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts" WHERE keyword_id = $1 AND "posts"."deleted_at" IS NULL ORDER BY published_at DESC`)).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id", "keyword_id", "title"}))

	posts, err := repo.ListByKeyword(context.Background(), 42)
	require.NoError(t, err, "an empty corpus is not an error")
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "posts"`)).
		WillReturnError(errors.New("connection refused"))

	posts, err := repo.ListByKeyword(context.Background(), 1)
	assert.Error(t, err)
	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
