package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzt-server/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepositoryCreateAndGet(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{
		ID:           "u-1",
		Name:         "Ada",
		Email:        "ada@x.com",
		PasswordHash: "$2a$12$fakehash",
		Role:         domain.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	got, err := repo.GetByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "$2a$12$fakehash", got.PasswordHash)
	assert.Equal(t, domain.RoleUser, got.Role)

	byID, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", byID.Email)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, repo.Create(ctx, &domain.User{
		ID: "u-1", Name: "Ada", Email: "ada@x.com", Role: domain.RoleUser,
	}))

	err := repo.Create(ctx, &domain.User{
		ID: "u-2", Name: "Other", Email: "ada@x.com", Role: domain.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserRepositoryNotFound(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.GetByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepositoryNullPasswordHash(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, repo.Create(ctx, &domain.User{
		ID: "ext-1", Name: "External", Email: "ext@x.com", Role: domain.RoleUser,
	}))

	got, err := repo.GetByEmail(ctx, "ext@x.com")
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash)
}

func TestUserRepositoryList(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, repo.Create(ctx, &domain.User{
		ID: "u-1", Name: "Ada", Email: "ada@x.com", Role: domain.RoleUser,
	}))
	require.NoError(t, repo.Create(ctx, &domain.User{
		ID: "u-2", Name: "Grace", Email: "grace@x.com", Role: domain.RoleAdmin,
	}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}
