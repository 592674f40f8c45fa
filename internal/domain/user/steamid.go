package user

import (
	"fmt"
	"regexp"
	"strings"
)

// SteamID is the 64-bit Steam account id in decimal form, the external
// identity of every user.
type SteamID string

var steamIDPattern = regexp.MustCompile(`^\d{1,20}$`)

// claimedIDPattern matches the claimed identity Steam returns from OpenID login.
var claimedIDPattern = regexp.MustCompile(`^https?://steamcommunity\.com/openid/id/(\d+)/?$`)

func (s SteamID) String() string {
	return string(s)
}

// Validate checks that s is a non-empty decimal id.
func (s SteamID) Validate() error {
	if !steamIDPattern.MatchString(string(s)) {
		return fmt.Errorf("%w: %q", ErrInvalidSteamID, string(s))
	}
	return nil
}

// DefaultDisplayName is used when Steam does not provide a persona name.
func (s SteamID) DefaultDisplayName() string {
	id := string(s)
	if len(id) > 4 {
		id = id[len(id)-4:]
	}
	return "Player_" + id
}

// ParseClaimedID extracts the SteamID from an OpenID claimed identifier such
// as https://steamcommunity.com/openid/id/76561197960287930.
func ParseClaimedID(claimedID string) (SteamID, error) {
	m := claimedIDPattern.FindStringSubmatch(strings.TrimSpace(claimedID))
	if m == nil {
		return "", fmt.Errorf("%w: unexpected claimed id %q", ErrInvalidSteamID, claimedID)
	}
	return SteamID(m[1]), nil
}
