package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/stashkeep/internal/domain"
)

type AreaStore struct {
	db *sql.DB
}

func NewAreaStore(db *sql.DB) *AreaStore {
	return &AreaStore{db: db}
}

func (s *AreaStore) Create(ctx context.Context, profileID string, placeID int64, name string) (*domain.Area, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO areas (name, profile_id, place_id) VALUES (?, ?, ?)
	`, name, profileID, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create area: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *AreaStore) GetByID(ctx context.Context, id int64) (*domain.Area, error) {
	area := &domain.Area{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, profile_id, place_id FROM areas WHERE id = ?
	`, id).Scan(&area.ID, &area.Name, &area.ProfileID, &area.PlaceID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get area: %w", err)
	}

	return area, nil
}

func (s *AreaStore) ListByPlaceID(ctx context.Context, placeID int64) ([]*domain.Area, error) {
	return s.list(ctx, `
		SELECT id, name, profile_id, place_id FROM areas WHERE place_id = ? ORDER BY name ASC
	`, placeID)
}

func (s *AreaStore) ListByProfileID(ctx context.Context, profileID string) ([]*domain.Area, error) {
	return s.list(ctx, `
		SELECT id, name, profile_id, place_id FROM areas WHERE profile_id = ? ORDER BY name ASC
	`, profileID)
}

func (s *AreaStore) list(ctx context.Context, query string, arg any) ([]*domain.Area, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	defer rows.Close()

	var areas []*domain.Area
	for rows.Next() {
		area := &domain.Area{}
		if err := rows.Scan(&area.ID, &area.Name, &area.ProfileID, &area.PlaceID); err != nil {
			return nil, fmt.Errorf("failed to scan area: %w", err)
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating areas: %w", err)
	}

	return areas, nil
}

// Delete removes the area and its containers and items in one transaction.
func (s *AreaStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM items WHERE container_id IN (SELECT id FROM containers WHERE area_id = ?)
	`, id); err != nil {
		return fmt.Errorf("failed to delete items under area: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM containers WHERE area_id = ?
	`, id); err != nil {
		return fmt.Errorf("failed to delete containers under area: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM areas WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete area: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}

	return nil
}
