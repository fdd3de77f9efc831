package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/stashkeep/internal/domain"
)

func TestUserStoreCreateAndAuthenticate(t *testing.T) {
	d := openTestDB(t)
	store := NewUserStore(d)
	ctx := context.Background()

	user, err := store.Create(ctx, "alice", "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct horse", string(user.PasswordHash))

	authed, err := store.Authenticate(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestUserStoreAuthenticateRejects(t *testing.T) {
	d := openTestDB(t)
	store := NewUserStore(d)
	ctx := context.Background()

	_, err := store.Create(ctx, "alice", "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, err = store.Authenticate(ctx, "alice", "wrong horse")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Authenticate(ctx, "nobody", "correct horse")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserStoreUsernameUnique(t *testing.T) {
	d := openTestDB(t)
	store := NewUserStore(d)
	ctx := context.Background()

	_, err := store.Create(ctx, "alice", "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, err = store.Create(ctx, "alice", "other@example.com", "correct horse")
	assert.Error(t, err)
}
