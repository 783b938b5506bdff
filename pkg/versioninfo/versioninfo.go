package versioninfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Info describes a build of the tool.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// String renders the line shown by the --version flag. A Version that
// does not parse as semver (nightly or ad-hoc builds) is printed as
// given.
func (vi Info) String() string {
	parts := []string{"dev"}

	if vi.Version != "" {
		version, err := semver.NewVersion(strings.TrimPrefix(vi.Version, "v"))
		if err != nil {
			return vi.Version
		}
		parts[0] = "v" + version.String()
	}

	if vi.Commit != "" {
		parts = append(parts, "commit "+vi.Commit)
	}
	if vi.Date != "" {
		parts = append(parts, "built at "+vi.Date)
	}
	if vi.BuiltBy != "" {
		parts = append(parts, "built by "+vi.BuiltBy)
	}

	return strings.Join(parts, ", ")
}
