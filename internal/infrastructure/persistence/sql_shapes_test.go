package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires GORM's postgres dialect onto a sqlmock connection so the
// generated SQL can be asserted without a server.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestProductFindByIDForUpdate_LocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormProductRepository(db)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "name", "description", "price", "stock", "active", "image",
	}).AddRow(id.String(), time.Now(), time.Now(), "Matera", "", "30000", 4, true, "")

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = .+ FOR UPDATE`).
		WithArgs(id, 1).
		WillReturnRows(rows)

	product, err := repo.FindByIDForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Matera", product.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserExistsByEmail_CountQuery(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE email = .+`).
		WithArgs("maria@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "maria@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
