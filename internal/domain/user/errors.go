package user

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup key
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidSteamID is returned for a malformed Steam identifier
	ErrInvalidSteamID = errors.New("invalid steam id")
)
