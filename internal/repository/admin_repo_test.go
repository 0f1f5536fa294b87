package repository

import (
	"context"
	"testing"

	"zenrio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAdminRepository_CreateAndLookup(t *testing.T) {
	repo := NewAdminRepository(setupDB(t))
	ctx := context.Background()

	admin := domain.AdminUser{Username: "mestre", PasswordHash: "hash", IsMaster: true}
	require.NoError(t, repo.Create(ctx, &admin))
	require.NotZero(t, admin.ID)
	assert.Nil(t, admin.LastLogin)

	got, err := repo.GetByUsername(ctx, "mestre")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, got.ID)
	assert.True(t, got.IsMaster)

	_, err = repo.GetByUsername(ctx, "ninguem")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAdminRepository_DuplicateUsername(t *testing.T) {
	repo := NewAdminRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.AdminUser{Username: "mestre", PasswordHash: "a"}))

	err := repo.Create(ctx, &domain.AdminUser{Username: "mestre", PasswordHash: "b"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestAdminRepository_TouchLastLogin(t *testing.T) {
	repo := NewAdminRepository(setupDB(t))
	ctx := context.Background()

	admin := domain.AdminUser{Username: "mestre", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, &admin))

	require.NoError(t, repo.TouchLastLogin(ctx, admin.ID))

	got, err := repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
}

func TestAdminRepository_CountAndListOrder(t *testing.T) {
	repo := NewAdminRepository(setupDB(t))
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, &domain.AdminUser{Username: "zelador", PasswordHash: "x"}))
	require.NoError(t, repo.Create(ctx, &domain.AdminUser{Username: "mestre", PasswordHash: "x", IsMaster: true}))
	require.NoError(t, repo.Create(ctx, &domain.AdminUser{Username: "ajudante", PasswordHash: "x"}))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// Masters first, then alphabetical.
	assert.Equal(t, "mestre", list[0].Username)
	assert.Equal(t, "ajudante", list[1].Username)
	assert.Equal(t, "zelador", list[2].Username)
}
