package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/stashkeep/internal/domain"
)

// seedContainer builds a place/area/container chain for item fixtures.
func seedContainer(t *testing.T, d *sql.DB, profile *domain.Profile) *domain.Container {
	t.Helper()
	ctx := context.Background()

	place, err := NewPlaceStore(d).Create(ctx, profile.ProfileID, "Garage")
	require.NoError(t, err)
	area, err := NewAreaStore(d).Create(ctx, profile.ProfileID, place.ID, "Shelf1")
	require.NoError(t, err)
	container, err := NewContainerStore(d).Create(ctx, profile.ProfileID, area.ID, "BoxA")
	require.NoError(t, err)
	return container
}

func TestItemStoreCreate(t *testing.T) {
	d := openTestDB(t)
	profile := seedProfile(t, d, "carol")
	container := seedContainer(t, d, profile)

	store := NewItemStore(d)
	ctx := context.Background()

	item, err := store.Create(ctx, uuid.NewString(), profile.ProfileID, container.ID, "Drill", 50, "tools", "18V cordless")
	require.NoError(t, err)
	assert.Equal(t, "Drill", item.Name)
	assert.EqualValues(t, 50, item.Value)
	assert.Equal(t, "tools", item.Category)
	assert.Equal(t, "18V cordless", item.ExtraDetails)
	assert.Nil(t, item.LentTo)
	assert.False(t, item.Lent())
}

func TestItemStoreSearchCaseInsensitiveAndScoped(t *testing.T) {
	d := openTestDB(t)
	mine := seedProfile(t, d, "carol")
	other := seedProfile(t, d, "mallory")
	myBox := seedContainer(t, d, mine)
	otherBox := seedContainer(t, d, other)

	store := NewItemStore(d)
	ctx := context.Background()

	for _, name := range []string{"Hammer", "HAMMER drill", "claw hammer", "Screwdriver"} {
		_, err := store.Create(ctx, uuid.NewString(), mine.ProfileID, myBox.ID, name, 10, "tools", "")
		require.NoError(t, err)
	}
	_, err := store.Create(ctx, uuid.NewString(), other.ProfileID, otherBox.ID, "hammer", 10, "tools", "")
	require.NoError(t, err)

	results, err := store.Search(ctx, mine.ProfileID, "hammer")
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, item := range results {
		assert.Equal(t, mine.ProfileID, item.ProfileID)
	}
}

func TestItemStoreUpdateKeepsBindings(t *testing.T) {
	d := openTestDB(t)
	profile := seedProfile(t, d, "carol")
	container := seedContainer(t, d, profile)

	store := NewItemStore(d)
	ctx := context.Background()

	item, err := store.Create(ctx, uuid.NewString(), profile.ProfileID, container.ID, "Drill", 50, "tools", "")
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, item.ItemID, "Impact Drill", 80, "power tools", "new bits"))

	updated, err := store.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Impact Drill", updated.Name)
	assert.EqualValues(t, 80, updated.Value)
	assert.Equal(t, container.ID, updated.ContainerID)
	assert.Equal(t, profile.ProfileID, updated.ProfileID)
}

func TestItemStoreLendAndReturn(t *testing.T) {
	d := openTestDB(t)
	profile := seedProfile(t, d, "carol")
	container := seedContainer(t, d, profile)

	store := NewItemStore(d)
	ctx := context.Background()

	item, err := store.Create(ctx, uuid.NewString(), profile.ProfileID, container.ID, "Ladder", 120, "tools", "")
	require.NoError(t, err)

	borrower := "bob"
	require.NoError(t, store.SetLent(ctx, item.ItemID, &borrower, true))

	lent, err := store.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	require.NotNil(t, lent.LentTo)
	assert.Equal(t, "bob", *lent.LentTo)
	assert.True(t, lent.LentToFriend)

	require.NoError(t, store.SetLent(ctx, item.ItemID, nil, true))

	returned, err := store.GetByID(ctx, item.ItemID)
	require.NoError(t, err)
	assert.Nil(t, returned.LentTo)
	assert.False(t, returned.LentToFriend)
}

func TestItemStoreSumValueByProfileID(t *testing.T) {
	d := openTestDB(t)
	profile := seedProfile(t, d, "carol")
	container := seedContainer(t, d, profile)

	store := NewItemStore(d)
	ctx := context.Background()

	total, err := store.SumValueByProfileID(ctx, profile.ProfileID)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = store.Create(ctx, uuid.NewString(), profile.ProfileID, container.ID, "Drill", 50, "tools", "")
	require.NoError(t, err)
	_, err = store.Create(ctx, uuid.NewString(), profile.ProfileID, container.ID, "Saw", 30, "tools", "")
	require.NoError(t, err)

	total, err = store.SumValueByProfileID(ctx, profile.ProfileID)
	require.NoError(t, err)
	assert.EqualValues(t, 80, total)
}

func TestItemStoreMissingRows(t *testing.T) {
	d := openTestDB(t)
	store := NewItemStore(d)
	ctx := context.Background()

	_, err := store.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Update(ctx, "nope", "x", 1, "c", ""), domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "nope"), domain.ErrNotFound)
	assert.ErrorIs(t, store.SetLent(ctx, "nope", nil, false), domain.ErrNotFound)
}
