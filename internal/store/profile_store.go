package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/stashkeep/internal/domain"
)

type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Create(ctx context.Context, profileID string, userID int64, name string) (*domain.Profile, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (profile_id, name, user_id) VALUES (?, ?, ?)
	`, profileID, name, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &domain.Profile{ProfileID: profileID, Name: name, UserID: userID}, nil
}

func (s *ProfileStore) GetByID(ctx context.Context, profileID string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	err := s.db.QueryRowContext(ctx, `
		SELECT profile_id, name, user_id FROM profiles WHERE profile_id = ?
	`, profileID).Scan(&profile.ProfileID, &profile.Name, &profile.UserID)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT profile_id, name, user_id FROM profiles WHERE user_id = ? ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile := &domain.Profile{}
		if err := rows.Scan(&profile.ProfileID, &profile.Name, &profile.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}
