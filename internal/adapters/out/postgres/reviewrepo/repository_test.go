package reviewrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/reviewrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/review"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepository(t *testing.T) (*reviewrepo.GormReviewRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return reviewrepo.NewGormReviewRepository(db, time.Second), sqlMock
}

func TestAdd_DuplicateIsAlreadyReviewed(t *testing.T) {
	repo, sqlMock := newRepository(t)
	r, err := review.RestoreReview(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, "", time.Now())
	require.NoError(t, err)
	sqlMock.ExpectExec(`INSERT INTO "reviews"`).WillReturnError(&pgconn.PgError{Code: "23505"})

	err = repo.Add(context.Background(), r)

	assert.ErrorIs(t, err, review.ErrAlreadyReviewed)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestExists(t *testing.T) {
	repo, sqlMock := newRepository(t)
	sqlMock.ExpectQuery(`SELECT count\(\*\) FROM "reviews" WHERE customer_id = \$1 AND order_id = \$2 AND menu_item_id = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
