package reup

// Release is one published version of a dependency, as reported by a
// registry listing. Identity is the Version string; uniqueness within a
// candidate slice is assumed but not enforced.
type Release struct {
	// Version is the opaque version string, interpreted by the active scheme.
	Version string

	// Deprecated marks releases the registry has flagged as deprecated.
	Deprecated bool
}

// Versions projects a release slice to its version strings, in order.
func Versions(in []Release) []string {
	out := make([]string, 0, len(in))
	for _, r := range in {
		out = append(out, r.Version)
	}

	return out
}

// findRelease returns the release whose version equals v, searching the
// full slice in input order.
func findRelease(in []Release, v string) (Release, bool) {
	for _, r := range in {
		if r.Version == v {
			return r, true
		}
	}

	return Release{}, false
}
