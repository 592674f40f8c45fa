package user

import (
	"fmt"
	"time"
)

// User is a player or administrator identified by their SteamID.
type User struct {
	id          uint
	steamID     SteamID
	displayName string
	avatarURL   string
	isAdmin     bool
	createdAt   time.Time
	lastLoginAt time.Time
}

// NewUser creates a user seen for the first time at now. An empty display
// name falls back to DefaultDisplayName.
func NewUser(steamID SteamID, displayName, avatarURL string, now time.Time) (*User, error) {
	if err := steamID.Validate(); err != nil {
		return nil, err
	}
	if displayName == "" {
		displayName = steamID.DefaultDisplayName()
	}
	return &User{
		steamID:     steamID,
		displayName: displayName,
		avatarURL:   avatarURL,
		createdAt:   now,
		lastLoginAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence
func ReconstructUser(
	id uint,
	steamID SteamID,
	displayName, avatarURL string,
	isAdmin bool,
	createdAt, lastLoginAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if err := steamID.Validate(); err != nil {
		return nil, err
	}
	return &User{
		id:          id,
		steamID:     steamID,
		displayName: displayName,
		avatarURL:   avatarURL,
		isAdmin:     isAdmin,
		createdAt:   createdAt,
		lastLoginAt: lastLoginAt,
	}, nil
}

func (u *User) ID() uint               { return u.id }
func (u *User) SteamID() SteamID       { return u.steamID }
func (u *User) DisplayName() string    { return u.displayName }
func (u *User) AvatarURL() string      { return u.avatarURL }
func (u *User) IsAdmin() bool          { return u.isAdmin }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) LastLoginAt() time.Time { return u.lastLoginAt }

// Role is the authorization role derived from the admin flag.
func (u *User) Role() string {
	if u.isAdmin {
		return RoleAdmin
	}
	return RolePlayer
}

// Authorization roles
const (
	RoleAdmin  = "admin"
	RolePlayer = "player"
)
