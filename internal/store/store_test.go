package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/stashkeep/internal/db"
	"github.com/vbonduro/stashkeep/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// seedProfile creates a user and a profile to own test fixtures.
func seedProfile(t *testing.T, d *sql.DB, username string) *domain.Profile {
	t.Helper()
	ctx := context.Background()

	user, err := NewUserStore(d).Create(ctx, username, username+"@example.com", "hunter2hunter2")
	require.NoError(t, err)

	profile, err := NewProfileStore(d).Create(ctx, uuid.NewString(), user.ID, username)
	require.NoError(t, err)
	return profile
}
