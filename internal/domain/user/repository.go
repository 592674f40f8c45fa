package user

import (
	"context"
	"time"
)

// Repository defines the interface for user persistence operations
type Repository interface {
	// GetByID returns ErrUserNotFound when the id is unknown
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetBySteamID returns ErrUserNotFound when the SteamID is unknown
	GetBySteamID(ctx context.Context, steamID SteamID) (*User, error)

	// Upsert inserts u, or on a SteamID conflict refreshes display name,
	// avatar and last login of the stored row while keeping its id, admin
	// flag and creation time. It returns the stored row.
	Upsert(ctx context.Context, u *User) (*User, error)

	// ListNonAdminSummaries returns non-admin users newest first, each with
	// the number of privileges active at now.
	ListNonAdminSummaries(ctx context.Context, limit int, now time.Time) ([]*Summary, error)
}

// Summary is the admin listing view of a user.
type Summary struct {
	User             *User
	ActivePrivileges int
}
