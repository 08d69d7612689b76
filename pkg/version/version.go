// Package version exposes the build version of the pagenav tool.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// DevVersion is reported when no version was set at link time.
const DevVersion = "0.0.0-dev"

// Set at build time with
//
//	-ldflags "-X github.com/rshade/pagenav/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // linker-populated build metadata
var version = DevVersion

// GetVersion returns the build version. A linker-set value that is not a
// valid semantic version is replaced by DevVersion.
func GetVersion() string {
	if _, err := Parse(version); err != nil {
		return DevVersion
	}
	return version
}

// Parse validates v as a semantic version. A leading "v" is accepted.
func Parse(v string) (*semver.Version, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return parsed, nil
}

// IsRelease reports whether v is a valid version without a prerelease part.
func IsRelease(v string) bool {
	parsed, err := Parse(v)
	if err != nil {
		return false
	}
	return parsed.Prerelease() == ""
}
