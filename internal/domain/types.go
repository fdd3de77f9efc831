package domain

import "time"

// User is a registered login identity. All profiles and therefore all
// inventory data hang off a user.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Account wraps a user for display purposes. Exactly one is created at
// signup with the username as its name.
type Account struct {
	ID          int64
	UserID      int64
	AccountName string
}

// Profile is the isolation scope for inventory data. A user may own several
// profiles (household members); every place, area, container and item
// belongs to exactly one profile.
type Profile struct {
	ProfileID string
	Name      string
	UserID    int64
}

// Place is a top-level physical location (a house, a storage unit).
type Place struct {
	ID        int64
	Name      string
	ProfileID string
}

// Area is a sub-location within a place (a room, a shelf wall).
type Area struct {
	ID        int64
	Name      string
	ProfileID string
	PlaceID   int64
}

// Container is a storage unit within an area (a box, a drawer).
type Container struct {
	ID        int64
	Name      string
	ProfileID string
	AreaID    int64
}

// Item is a tracked inventory item inside a container. LentTo is set iff
// the item is currently lent out; LentToFriend is only meaningful then.
type Item struct {
	ItemID       string
	ProfileID    string
	ContainerID  int64
	Name         string
	Value        int64
	Category     string
	LentTo       *string
	LentToFriend bool
	ExtraDetails string
	CreatedAt    time.Time
}

// Lent reports whether the item is currently lent out.
func (i *Item) Lent() bool {
	return i.LentTo != nil
}
