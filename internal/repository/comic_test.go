package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestComicRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewComicRepository(db, nil)
	ctx := context.Background()

	t.Run("Success with Seller preload", func(t *testing.T) {
		comicRows := sqlmock.NewRows([]string{"id", "title", "seller_id", "is_sold"}).
			AddRow(1, "Amazing Fantasy", 7, false)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comics" WHERE "comics"."id" = $1 ORDER BY "comics"."id" LIMIT $2`)).
			WithArgs(1, 1).
			WillReturnRows(comicRows)

		sellerRows := sqlmock.NewRows([]string{"id", "username"}).AddRow(7, "seller7")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
			WithArgs(7).
			WillReturnRows(sellerRows)

		comic, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		if assert.NotNil(t, comic) {
			assert.Equal(t, "Amazing Fantasy", comic.Title)
			assert.Equal(t, "seller7", comic.Seller.Username)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comics" WHERE "comics"."id" = $1`)).
			WithArgs(42, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		comic, err := repo.GetByID(ctx, 42)
		assert.Error(t, err)
		assert.Nil(t, comic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestComicRepository_ListAvailable(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewComicRepository(db, nil)
	ctx := context.Background()

	comicRows := sqlmock.NewRows([]string{"id", "title", "seller_id", "is_sold"}).
		AddRow(1, "Saga", 2, false).
		AddRow(2, "Monstress", 3, false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comics" WHERE is_sold = $1 ORDER BY created_at DESC LIMIT $2`)).
		WithArgs(false, 20).
		WillReturnRows(comicRows)

	sellerRows := sqlmock.NewRows([]string{"id", "username"}).
		AddRow(2, "seller2").
		AddRow(3, "seller3")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" IN ($1,$2)`)).
		WithArgs(2, 3).
		WillReturnRows(sellerRows)

	comics, err := repo.ListAvailable(ctx, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, comics, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComicRepository_ListBySeller(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewComicRepository(db, nil)
	ctx := context.Background()

	comicRows := sqlmock.NewRows([]string{"id", "title", "seller_id", "is_sold"}).
		AddRow(1, "Saga", 2, false).
		AddRow(2, "Paper Girls", 2, true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comics" WHERE seller_id = $1 ORDER BY created_at DESC`)).
		WithArgs(2).
		WillReturnRows(comicRows)

	sellerRows := sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "seller2")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(2).
		WillReturnRows(sellerRows)

	comics, err := repo.ListBySeller(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, comics, 2)
	// sold listings stay visible to their owner
	assert.True(t, comics[1].IsSold)
	assert.NoError(t, mock.ExpectationsWereMet())
}
