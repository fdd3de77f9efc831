package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/stashkeep/internal/domain"
)

type PlaceStore struct {
	db *sql.DB
}

func NewPlaceStore(db *sql.DB) *PlaceStore {
	return &PlaceStore{db: db}
}

func (s *PlaceStore) Create(ctx context.Context, profileID, name string) (*domain.Place, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO places (name, profile_id) VALUES (?, ?)
	`, name, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *PlaceStore) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	place := &domain.Place{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, profile_id FROM places WHERE id = ?
	`, id).Scan(&place.ID, &place.Name, &place.ProfileID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get place: %w", err)
	}

	return place, nil
}

func (s *PlaceStore) ListByProfileID(ctx context.Context, profileID string) ([]*domain.Place, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, profile_id FROM places WHERE profile_id = ? ORDER BY name ASC
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	var places []*domain.Place
	for rows.Next() {
		place := &domain.Place{}
		if err := rows.Scan(&place.ID, &place.Name, &place.ProfileID); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating places: %w", err)
	}

	return places, nil
}

// Delete removes the place and its whole subtree (areas, containers,
// items) in one transaction.
func (s *PlaceStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM items WHERE container_id IN (
			SELECT c.id FROM containers c
			JOIN areas a ON c.area_id = a.id
			WHERE a.place_id = ?
		)
	`, id); err != nil {
		return fmt.Errorf("failed to delete items under place: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM containers WHERE area_id IN (SELECT id FROM areas WHERE place_id = ?)
	`, id); err != nil {
		return fmt.Errorf("failed to delete containers under place: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM areas WHERE place_id = ?
	`, id); err != nil {
		return fmt.Errorf("failed to delete areas under place: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM places WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
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
