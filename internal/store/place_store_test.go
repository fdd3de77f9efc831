package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/stashkeep/internal/domain"
)

func TestPlaceStoreCreate(t *testing.T) {
	d := openTestDB(t)
	profile := seedProfile(t, d, "carol")

	store := NewPlaceStore(d)
	ctx := context.Background()

	place, err := store.Create(ctx, profile.ProfileID, "Garage")
	require.NoError(t, err)
	assert.NotZero(t, place.ID)
	assert.Equal(t, "Garage", place.Name)
	assert.Equal(t, profile.ProfileID, place.ProfileID)
}

func TestPlaceStoreGetByIDMissing(t *testing.T) {
	d := openTestDB(t)

	_, err := NewPlaceStore(d).GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceStoreListByProfileID(t *testing.T) {
	d := openTestDB(t)
	mine := seedProfile(t, d, "carol")
	other := seedProfile(t, d, "mallory")

	store := NewPlaceStore(d)
	ctx := context.Background()

	_, err := store.Create(ctx, mine.ProfileID, "Garage")
	require.NoError(t, err)
	_, err = store.Create(ctx, mine.ProfileID, "Attic")
	require.NoError(t, err)
	_, err = store.Create(ctx, other.ProfileID, "Shed")
	require.NoError(t, err)

	places, err := store.ListByProfileID(ctx, mine.ProfileID)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Attic", places[0].Name)
	assert.Equal(t, "Garage", places[1].Name)
}

func TestPlaceStoreDeleteCascades(t *testing.T) {
	d := openTestDB(t)
	profile := seedProfile(t, d, "carol")
	ctx := context.Background()

	places := NewPlaceStore(d)
	areas := NewAreaStore(d)
	containers := NewContainerStore(d)
	items := NewItemStore(d)

	place, err := places.Create(ctx, profile.ProfileID, "Garage")
	require.NoError(t, err)
	area, err := areas.Create(ctx, profile.ProfileID, place.ID, "Shelf1")
	require.NoError(t, err)
	container, err := containers.Create(ctx, profile.ProfileID, area.ID, "BoxA")
	require.NoError(t, err)
	item, err := items.Create(ctx, uuid.NewString(), profile.ProfileID, container.ID, "Drill", 50, "tools", "")
	require.NoError(t, err)

	require.NoError(t, places.Delete(ctx, place.ID))

	_, err = places.GetByID(ctx, place.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = areas.GetByID(ctx, area.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = containers.GetByID(ctx, container.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = items.GetByID(ctx, item.ItemID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceStoreDeleteMissing(t *testing.T) {
	d := openTestDB(t)

	err := NewPlaceStore(d).Delete(context.Background(), 4242)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
