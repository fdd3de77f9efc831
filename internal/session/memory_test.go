package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) *MemoryStore {
	t.Helper()
	s := NewMemoryStore(ttl)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, Data{UserID: 7, ProfileID: "p1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := s.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.EqualValues(t, 7, data.UserID)
	assert.Equal(t, "p1", data.ProfileID)
}

func TestMemoryStoreSetRebinds(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, Data{UserID: 7})
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, token, Data{UserID: 7, ProfileID: "p2"}))

	data, err := s.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "p2", data.ProfileID)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	data, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Set on an unknown token must not resurrect it.
	require.NoError(t, s.Set(ctx, "missing", Data{UserID: 1}))
	data, err = s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := newTestStore(t, -time.Second)
	ctx := context.Background()

	token, err := s.Create(ctx, Data{UserID: 7})
	require.NoError(t, err)

	data, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := newTestStore(t, time.Hour)
	ctx := context.Background()

	token, err := s.Create(ctx, Data{UserID: 7})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, token))

	data, err := s.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, data)
}
