package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/stashkeep/internal/domain"
)

type ContainerStore struct {
	db *sql.DB
}

func NewContainerStore(db *sql.DB) *ContainerStore {
	return &ContainerStore{db: db}
}

func (s *ContainerStore) Create(ctx context.Context, profileID string, areaID int64, name string) (*domain.Container, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO containers (name, profile_id, area_id) VALUES (?, ?, ?)
	`, name, profileID, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *ContainerStore) GetByID(ctx context.Context, id int64) (*domain.Container, error) {
	container := &domain.Container{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, profile_id, area_id FROM containers WHERE id = ?
	`, id).Scan(&container.ID, &container.Name, &container.ProfileID, &container.AreaID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get container: %w", err)
	}

	return container, nil
}

func (s *ContainerStore) ListByAreaID(ctx context.Context, areaID int64) ([]*domain.Container, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, profile_id, area_id FROM containers WHERE area_id = ? ORDER BY name ASC
	`, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}
	defer rows.Close()

	var containers []*domain.Container
	for rows.Next() {
		container := &domain.Container{}
		if err := rows.Scan(&container.ID, &container.Name, &container.ProfileID, &container.AreaID); err != nil {
			return nil, fmt.Errorf("failed to scan container: %w", err)
		}
		containers = append(containers, container)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating containers: %w", err)
	}

	return containers, nil
}

// Delete removes the container and its items in one transaction.
func (s *ContainerStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM items WHERE container_id = ?
	`, id); err != nil {
		return fmt.Errorf("failed to delete items under container: %w", err)
	}

	result, err := tx.ExecContext(ctx, `
		DELETE FROM containers WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete container: %w", err)
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
