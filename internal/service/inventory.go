package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vbonduro/stashkeep/internal/domain"
)

// profileRepository is the subset of store.ProfileStore the services require.
type profileRepository interface {
	Create(ctx context.Context, profileID string, userID int64, name string) (*domain.Profile, error)
	GetByID(ctx context.Context, profileID string) (*domain.Profile, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Profile, error)
}

// placeRepository is the subset of store.PlaceStore that InventoryService requires.
type placeRepository interface {
	Create(ctx context.Context, profileID, name string) (*domain.Place, error)
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	ListByProfileID(ctx context.Context, profileID string) ([]*domain.Place, error)
	Delete(ctx context.Context, id int64) error
}

// areaRepository is the subset of store.AreaStore that InventoryService requires.
type areaRepository interface {
	Create(ctx context.Context, profileID string, placeID int64, name string) (*domain.Area, error)
	GetByID(ctx context.Context, id int64) (*domain.Area, error)
	ListByPlaceID(ctx context.Context, placeID int64) ([]*domain.Area, error)
	ListByProfileID(ctx context.Context, profileID string) ([]*domain.Area, error)
	Delete(ctx context.Context, id int64) error
}

// containerRepository is the subset of store.ContainerStore that InventoryService requires.
type containerRepository interface {
	Create(ctx context.Context, profileID string, areaID int64, name string) (*domain.Container, error)
	GetByID(ctx context.Context, id int64) (*domain.Container, error)
	ListByAreaID(ctx context.Context, areaID int64) ([]*domain.Container, error)
	Delete(ctx context.Context, id int64) error
}

// itemRepository is the subset of store.ItemStore that InventoryService requires.
type itemRepository interface {
	Create(ctx context.Context, itemID, profileID string, containerID int64, name string, value int64, category, extraDetails string) (*domain.Item, error)
	GetByID(ctx context.Context, itemID string) (*domain.Item, error)
	ListByProfileID(ctx context.Context, profileID string) ([]*domain.Item, error)
	ListByContainerID(ctx context.Context, containerID int64) ([]*domain.Item, error)
	Search(ctx context.Context, profileID, query string) ([]*domain.Item, error)
	Update(ctx context.Context, itemID, name string, value int64, category, extraDetails string) error
	SetLent(ctx context.Context, itemID string, lentTo *string, lentToFriend bool) error
	Delete(ctx context.Context, itemID string) error
	SumValueByProfileID(ctx context.Context, profileID string) (int64, error)
}

// InventoryService owns profile resolution and every profile-scoped
// operation. All entity loads pass through the ownership guard; handlers
// never compare profile ids themselves.
type InventoryService struct {
	profiles   profileRepository
	places     placeRepository
	areas      areaRepository
	containers containerRepository
	items      itemRepository
	logger     *slog.Logger
}

func NewInventoryService(
	profiles profileRepository,
	places placeRepository,
	areas areaRepository,
	containers containerRepository,
	items itemRepository,
	logger *slog.Logger,
) *InventoryService {
	return &InventoryService{
		profiles:   profiles,
		places:     places,
		areas:      areas,
		containers: containers,
		items:      items,
		logger:     logger,
	}
}

// authorize is the ownership guard: an entity may only be touched when its
// owning profile is the active one.
func authorize(ownerProfileID, activeProfileID string) error {
	if ownerProfileID != activeProfileID {
		return domain.ErrNotAuthorized
	}
	return nil
}

// ResolveProfile determines the active profile for a session. A selection
// that exists and belongs to the user wins; otherwise a sole profile is
// auto-bound (rebound=true tells the caller to persist it in the session);
// otherwise ErrNoActiveProfile.
func (s *InventoryService) ResolveProfile(ctx context.Context, userID int64, selectedProfileID string) (profile *domain.Profile, rebound bool, err error) {
	if selectedProfileID != "" {
		p, err := s.profiles.GetByID(ctx, selectedProfileID)
		switch {
		case err == nil && p.UserID == userID:
			return p, false, nil
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, false, fmt.Errorf("failed to load selected profile: %w", err)
		}
		// Stale or foreign selection: fall through to auto-bind.
	}

	profiles, err := s.profiles.ListByUserID(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(profiles) == 1 {
		return profiles[0], true, nil
	}

	return nil, false, domain.ErrNoActiveProfile
}

// SelectProfile validates that the profile belongs to the user before the
// caller binds it into the session.
func (s *InventoryService) SelectProfile(ctx context.Context, userID int64, profileID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, domain.ErrNotAuthorized
	}
	return profile, nil
}

func (s *InventoryService) CreateProfile(ctx context.Context, userID int64, name string) (*domain.Profile, error) {
	return s.profiles.Create(ctx, uuid.NewString(), userID, name)
}

func (s *InventoryService) ListProfiles(ctx context.Context, userID int64) ([]*domain.Profile, error) {
	return s.profiles.ListByUserID(ctx, userID)
}

// DashboardSummary bundles everything the dashboard renders.
type DashboardSummary struct {
	Places     []*domain.Place
	Areas      []*domain.Area
	Items      []*domain.Item
	TotalValue int64
}

func (s *InventoryService) Dashboard(ctx context.Context, profileID string) (*DashboardSummary, error) {
	places, err := s.places.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	areas, err := s.areas.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	total, err := s.items.SumValueByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{Places: places, Areas: areas, Items: items, TotalValue: total}, nil
}

// --- Places ---

func (s *InventoryService) CreatePlace(ctx context.Context, profileID, name string) (*domain.Place, error) {
	return s.places.Create(ctx, profileID, name)
}

func (s *InventoryService) GetPlace(ctx context.Context, id int64, profileID string) (*domain.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(place.ProfileID, profileID); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *InventoryService) GetPlaceWithAreas(ctx context.Context, id int64, profileID string) (*domain.Place, []*domain.Area, error) {
	place, err := s.GetPlace(ctx, id, profileID)
	if err != nil {
		return nil, nil, err
	}

	areas, err := s.areas.ListByPlaceID(ctx, place.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return place, areas, nil
}

func (s *InventoryService) DeletePlace(ctx context.Context, id int64, profileID string) error {
	if _, err := s.GetPlace(ctx, id, profileID); err != nil {
		return err
	}

	if err := s.places.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("place deleted", "place_id", id, "profile_id", profileID)
	return nil
}

// --- Areas ---

// CreateArea loads and guards the parent place, then binds the new area to
// the place's profile. The profile id never comes from the request.
func (s *InventoryService) CreateArea(ctx context.Context, placeID int64, profileID, name string) (*domain.Area, error) {
	place, err := s.GetPlace(ctx, placeID, profileID)
	if err != nil {
		return nil, err
	}
	return s.areas.Create(ctx, place.ProfileID, place.ID, name)
}

func (s *InventoryService) GetArea(ctx context.Context, id int64, profileID string) (*domain.Area, error) {
	area, err := s.areas.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(area.ProfileID, profileID); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *InventoryService) GetAreaWithContainers(ctx context.Context, id int64, profileID string) (*domain.Area, []*domain.Container, error) {
	area, err := s.GetArea(ctx, id, profileID)
	if err != nil {
		return nil, nil, err
	}

	containers, err := s.containers.ListByAreaID(ctx, area.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list containers: %w", err)
	}
	return area, containers, nil
}

func (s *InventoryService) DeleteArea(ctx context.Context, id int64, profileID string) error {
	if _, err := s.GetArea(ctx, id, profileID); err != nil {
		return err
	}

	if err := s.areas.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("area deleted", "area_id", id, "profile_id", profileID)
	return nil
}

// --- Containers ---

func (s *InventoryService) CreateContainer(ctx context.Context, areaID int64, profileID, name string) (*domain.Container, error) {
	area, err := s.GetArea(ctx, areaID, profileID)
	if err != nil {
		return nil, err
	}
	return s.containers.Create(ctx, area.ProfileID, area.ID, name)
}

func (s *InventoryService) GetContainer(ctx context.Context, id int64, profileID string) (*domain.Container, error) {
	container, err := s.containers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorize(container.ProfileID, profileID); err != nil {
		return nil, err
	}
	return container, nil
}

func (s *InventoryService) GetContainerWithItems(ctx context.Context, id int64, profileID string) (*domain.Container, []*domain.Item, error) {
	container, err := s.GetContainer(ctx, id, profileID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.items.ListByContainerID(ctx, container.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list items: %w", err)
	}
	return container, items, nil
}

func (s *InventoryService) DeleteContainer(ctx context.Context, id int64, profileID string) error {
	if _, err := s.GetContainer(ctx, id, profileID); err != nil {
		return err
	}

	if err := s.containers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("container deleted", "container_id", id, "profile_id", profileID)
	return nil
}

// --- Items ---

func (s *InventoryService) CreateItem(ctx context.Context, containerID int64, profileID, name string, value int64, category, extraDetails string) (*domain.Item, error) {
	container, err := s.GetContainer(ctx, containerID, profileID)
	if err != nil {
		return nil, err
	}
	return s.items.Create(ctx, uuid.NewString(), container.ProfileID, container.ID, name, value, category, extraDetails)
}

func (s *InventoryService) GetItem(ctx context.Context, itemID, profileID string) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if err := authorize(item.ProfileID, profileID); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem replaces an item's mutable fields. Identity, owning profile
// and owning container are immutable through edit.
func (s *InventoryService) UpdateItem(ctx context.Context, itemID, profileID, name string, value int64, category, extraDetails string) (*domain.Item, error) {
	if _, err := s.GetItem(ctx, itemID, profileID); err != nil {
		return nil, err
	}

	if err := s.items.Update(ctx, itemID, name, value, category, extraDetails); err != nil {
		return nil, err
	}
	return s.items.GetByID(ctx, itemID)
}

func (s *InventoryService) LendItem(ctx context.Context, itemID, profileID, borrower string, toFriend bool) error {
	if _, err := s.GetItem(ctx, itemID, profileID); err != nil {
		return err
	}
	return s.items.SetLent(ctx, itemID, &borrower, toFriend)
}

// ReturnItem clears the lending state unconditionally; returning an item
// that is not lent out is a harmless no-op.
func (s *InventoryService) ReturnItem(ctx context.Context, itemID, profileID string) error {
	if _, err := s.GetItem(ctx, itemID, profileID); err != nil {
		return err
	}
	return s.items.SetLent(ctx, itemID, nil, false)
}

func (s *InventoryService) DeleteItem(ctx context.Context, itemID, profileID string) error {
	if _, err := s.GetItem(ctx, itemID, profileID); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}
	s.logger.Info("item deleted", "item_id", itemID, "profile_id", profileID)
	return nil
}

func (s *InventoryService) SearchItems(ctx context.Context, profileID, query string) ([]*domain.Item, error) {
	return s.items.Search(ctx, profileID, query)
}
