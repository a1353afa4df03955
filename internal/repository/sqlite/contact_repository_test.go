package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzt-server/internal/domain"
)

func TestContactRepositoryCreateAndList(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	repo := NewContactMessageRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	msg := &domain.ContactMessage{
		ID:      "m-1",
		Name:    "Ada",
		Email:   "ada@x.com",
		Message: "hello from the mesh",
	}
	require.NoError(t, repo.Create(ctx, msg))
	assert.False(t, msg.CreatedAt.IsZero())

	messages, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "m-1", messages[0].ID)
	assert.Equal(t, "hello from the mesh", messages[0].Message)
}
