package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/stashkeep/internal/domain"
)

type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Create(ctx context.Context, userID int64, accountName string) (*domain.Account, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (user_id, account_name) VALUES (?, ?)
	`, userID, accountName)
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return &domain.Account{ID: id, UserID: userID, AccountName: accountName}, nil
}

func (s *AccountStore) GetByUserID(ctx context.Context, userID int64) (*domain.Account, error) {
	account := &domain.Account{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, account_name FROM accounts WHERE user_id = ?
	`, userID).Scan(&account.ID, &account.UserID, &account.AccountName)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return account, nil
}
