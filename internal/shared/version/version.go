// Package version reports the build version stamped in at link time.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set with -ldflags "-X privstore/internal/shared/version.Version=1.2.0".
var (
	Version = "dev"
	Commit  = "unknown"
)

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical form of Version ("1.2" becomes "v1.2.0")
// followed by the commit. Versions that are not semver, such as "dev", are
// reported as given.
func String() string {
	v := Version
	if normalized := Normalize(Version); semver.IsValid(normalized) {
		v = semver.Canonical(normalized)
	}
	return v + " (" + Commit + ")"
}
