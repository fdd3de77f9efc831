// Package session stores per-browser session state keyed by an opaque
// token. The web layer keeps the token in a cookie; everything else lives
// server-side in one of the Store backends.
package session

import "context"

// Data is the state bound to a session: the authenticated user and the
// profile currently selected as the active scope. ProfileID may be empty
// until the profile resolver binds one.
type Data struct {
	UserID    int64  `json:"user_id"`
	ProfileID string `json:"profile_id"`
}

// Store persists session data under opaque tokens. Get returns (nil, nil)
// for unknown or expired tokens.
type Store interface {
	Create(ctx context.Context, data Data) (string, error)
	Get(ctx context.Context, token string) (*Data, error)
	Set(ctx context.Context, token string, data Data) error
	Delete(ctx context.Context, token string) error
}
