package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vbonduro/stashkeep/internal/domain"
)

type ItemStore struct {
	db *sql.DB
}

func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

const itemColumns = "item_id, profile_id, container_id, name, value, category, lent_to, lent_to_friend, extra_details, created_at"

func (s *ItemStore) Create(ctx context.Context, itemID, profileID string, containerID int64, name string, value int64, category, extraDetails string) (*domain.Item, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (item_id, profile_id, container_id, name, value, category, extra_details)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, itemID, profileID, containerID, name, value, category, extraDetails)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return s.GetByID(ctx, itemID)
}

func (s *ItemStore) GetByID(ctx context.Context, itemID string) (*domain.Item, error) {
	item := &domain.Item{}
	err := s.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE item_id = ?", itemID,
	).Scan(&item.ItemID, &item.ProfileID, &item.ContainerID, &item.Name, &item.Value,
		&item.Category, &item.LentTo, &item.LentToFriend, &item.ExtraDetails, &item.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func (s *ItemStore) ListByProfileID(ctx context.Context, profileID string) ([]*domain.Item, error) {
	return s.list(ctx,
		"SELECT "+itemColumns+" FROM items WHERE profile_id = ? ORDER BY name ASC", profileID)
}

func (s *ItemStore) ListByContainerID(ctx context.Context, containerID int64) ([]*domain.Item, error) {
	return s.list(ctx,
		"SELECT "+itemColumns+" FROM items WHERE container_id = ? ORDER BY name ASC", containerID)
}

// Search returns the profile's items whose name contains query,
// case-insensitively.
func (s *ItemStore) Search(ctx context.Context, profileID, query string) ([]*domain.Item, error) {
	pattern := "%" + strings.ToLower(query) + "%"
	return s.list(ctx,
		"SELECT "+itemColumns+" FROM items WHERE profile_id = ? AND LOWER(name) LIKE ? ORDER BY name ASC",
		profileID, pattern)
}

func (s *ItemStore) list(ctx context.Context, query string, args ...any) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ItemID, &item.ProfileID, &item.ContainerID, &item.Name, &item.Value,
			&item.Category, &item.LentTo, &item.LentToFriend, &item.ExtraDetails, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// Update replaces the mutable fields. The owning profile and container are
// deliberately not part of the statement; edits can never move an item.
func (s *ItemStore) Update(ctx context.Context, itemID, name string, value int64, category, extraDetails string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE items SET name = ?, value = ?, category = ?, extra_details = ? WHERE item_id = ?
	`, name, value, category, extraDetails, itemID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	return requireRow(result)
}

// SetLent records the lending state. A nil lentTo marks the item returned;
// lentToFriend is forced false in that case.
func (s *ItemStore) SetLent(ctx context.Context, itemID string, lentTo *string, lentToFriend bool) error {
	if lentTo == nil {
		lentToFriend = false
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE items SET lent_to = ?, lent_to_friend = ? WHERE item_id = ?
	`, lentTo, lentToFriend, itemID)
	if err != nil {
		return fmt.Errorf("failed to update lending state: %w", err)
	}

	return requireRow(result)
}

func (s *ItemStore) Delete(ctx context.Context, itemID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM items WHERE item_id = ?
	`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return requireRow(result)
}

// SumValueByProfileID returns the combined value of all the profile's items.
func (s *ItemStore) SumValueByProfileID(ctx context.Context, profileID string) (int64, error) {
	var total int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(value), 0) FROM items WHERE profile_id = ?
	`, profileID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum item values: %w", err)
	}

	return total, nil
}

func requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
