package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/db/mocks"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/model"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository"
	"github.com/AanyaGarg1/ssr-ecommerce-dashboard/internal/repository/postgresql"
)

func TestProductRepo_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		product := &model.Product{
			ID:          "p-123",
			Name:        "Test",
			Description: "d",
			Price:       10,
			Stock:       2,
			Category:    "c",
			Images:      []string{"https://example.com/a.jpg"},
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(product.ID),
			gomock.Eq(product.Name),
			gomock.Eq(product.Description),
			gomock.Eq(product.Price),
			gomock.Eq(product.Stock),
			gomock.Eq(product.Category),
			gomock.Eq(product.Images),
			gomock.Eq(product.Sales),
			gomock.Eq(product.CreatedAt),
			gomock.Eq(product.UpdatedAt),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.Create(ctx, product)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(nil, expectedErr)

		err := repo.Create(ctx, &model.Product{ID: "p-123"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestProductRepo_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("p-123")).DoAndReturn(
			func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				row := dest.(*repository.ProductRow)
				*row = repository.ProductRow{
					ID:        "p-123",
					Name:      "Test",
					Price:     10,
					CreatedAt: now,
					UpdatedAt: now,
				}
				return nil
			})

		product, err := repo.GetByID(ctx, "p-123")
		require.NoError(t, err)
		assert.Equal(t, "p-123", product.ID)
		assert.Equal(t, "Test", product.Name)
	})

	t.Run("not found maps pgx.ErrNoRows to the sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("connection error passes through untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		connErr := errors.New("connection refused")
		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(connErr)

		_, err := repo.GetByID(ctx, "p-123")
		assert.Equal(t, connErr, err)
		assert.NotErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestProductRepo_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("zero rows affected means not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockDB.EXPECT().Exec(
			gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
		).Return(pgconn.CommandTag("UPDATE 0"), nil)

		err := repo.Update(ctx, &model.Product{ID: "ghost"})
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestProductRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("p-123")).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		assert.NoError(t, repo.Delete(ctx, "p-123"))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewProductRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("DELETE 0"), nil)

		assert.ErrorIs(t, repo.Delete(ctx, "ghost"), repository.ErrObjectNotFound)
	})
}
