package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commupay/rewards-wallet/internal/domain/entity"
	errs "github.com/commupay/rewards-wallet/internal/domain/error"
	"github.com/commupay/rewards-wallet/internal/infrastructure/adapter/logger"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("should find user by exact email", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		created := &entity.User{
			Name:       "Sophia Carter",
			Email:      "sophia.carter@email.com",
			Balance:    1250.00,
			BTCBalance: 0.034,
		}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByEmail(context.Background(), "sophia.carter@email.com")

		assert.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Sophia Carter", found.Name)
		assert.Equal(t, 1250.00, found.Balance)
		assert.Equal(t, 0.034, found.BTCBalance)
	})

	t.Run("should return ErrUserNotFound for unknown email", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		found, err := repo.FindByEmail(context.Background(), "nobody@email.com")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should match email bytewise, not case-insensitively", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		created := &entity.User{Name: "Sophia Carter", Email: "sophia.carter@email.com"}
		require.NoError(t, repo.Create(context.Background(), created))

		found, err := repo.FindByEmail(context.Background(), "Sophia.Carter@email.com")

		assert.Nil(t, found)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("should assign an ID on insert", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		user := &entity.User{Name: "Sophia Carter", Email: "sophia.carter@email.com"}
		err := repo.Create(context.Background(), user)

		assert.NoError(t, err)
		assert.NotZero(t, user.ID)
	})

	t.Run("should reject duplicate email", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db, logger.NewNoopLogger())

		first := &entity.User{Name: "Sophia Carter", Email: "sophia.carter@email.com"}
		require.NoError(t, repo.Create(context.Background(), first))

		second := &entity.User{Name: "Someone Else", Email: "sophia.carter@email.com"}
		err := repo.Create(context.Background(), second)

		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}
