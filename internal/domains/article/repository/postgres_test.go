package repository

import (
	"context"
	"testing"

	"blog-backend/internal/domains/article"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, article.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewPostgresRepository(mock)
}

func TestURLExistsNormalizesCandidate(t *testing.T) {
	mock, repo := newMockRepo(t)

	// The caller-supplied candidate goes through slug generation before
	// it hits the store.
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("my-post-", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.URLExists(context.Background(), "My Post!", nil)
	require.NoError(t, err)

	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestURLExistsPassesExcludeID(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("my-post", &id).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.URLExists(context.Background(), "my-post", &id)
	require.NoError(t, err)

	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindMissReturnsNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM articles WHERE id =`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Find(context.Background(), id)

	assert.ErrorIs(t, err, article.ErrArticleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViews(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE articles SET views_cnt = views_cnt \+ 1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementViews(context.Background(), id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViewsMissingArticle(t *testing.T) {
	mock, repo := newMockRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE articles SET views_cnt = views_cnt \+ 1`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.IncrementViews(context.Background(), id)

	assert.ErrorIs(t, err, article.ErrArticleNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
