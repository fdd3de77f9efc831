package domain

import "errors"

var (
	// ErrNotFound is returned by every entity load when the identifier does
	// not exist. All lookups are normalized to this single error.
	ErrNotFound = errors.New("entity not found")

	// ErrNotAuthorized is returned when an entity exists but belongs to a
	// profile other than the active one.
	ErrNotAuthorized = errors.New("entity not owned by active profile")

	// ErrNoActiveProfile is returned when no profile can be resolved for
	// the session and the user must pick one explicitly.
	ErrNoActiveProfile = errors.New("no active profile selected")
)
