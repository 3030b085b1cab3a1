// Package semver implements the generic semantic-versioning scheme on top of
// Masterminds/semver. It is the default scheme and also the fallback target
// for range expressions written in npm-style semver syntax while another
// scheme is active (see ValidRange / Coerce / Satisfies).
package semver

import (
	"regexp"
	"strings"

	mmsemver "github.com/Masterminds/semver/v3"

	"github.com/woozymasta/reup/scheme"
)

// ID is the registry id of the generic semantic-versioning scheme.
const ID = "semver"

// Scheme is the generic semantic-versioning scheme.
type Scheme struct{}

// New returns the generic semantic-versioning scheme.
func New() *Scheme { return &Scheme{} }

// ID returns "semver".
func (*Scheme) ID() string { return ID }

// Family returns scheme.FamilySemver.
func (*Scheme) Family() scheme.Family { return scheme.FamilySemver }

// IsGreaterThan reports whether a sorts strictly after b by semver
// precedence. Either side failing to parse yields false.
func (*Scheme) IsGreaterThan(a, b string) bool {
	va, ok := parse(a)
	if !ok {
		return false
	}

	vb, ok := parse(b)
	if !ok {
		return false
	}

	return va.GreaterThan(vb)
}

// IsStable reports whether v is a final release (no pre-release identifiers).
func (*Scheme) IsStable(v string) bool {
	pv, ok := parse(v)
	return ok && pv.Prerelease() == ""
}

// IsValid reports whether spec parses as a semver constraint
// (e.g. "<2.0.0", "^1.2", ">=1.0.0, <3").
func (*Scheme) IsValid(spec string) bool { return ValidRange(spec) }

// Matches reports whether v satisfies the constraint spec.
func (*Scheme) Matches(v, spec string) bool {
	c, err := mmsemver.NewConstraint(spec)
	if err != nil {
		return false
	}

	pv, ok := parse(v)

	return ok && c.Check(pv)
}

// Major returns the major number of v, or -1 when unparsable.
func (*Scheme) Major(v string) int {
	pv, ok := parse(v)
	if !ok {
		return -1
	}

	return int(pv.Major())
}

// Minor returns the minor number of v, or -1 when unparsable.
func (*Scheme) Minor(v string) int {
	pv, ok := parse(v)
	if !ok {
		return -1
	}

	return int(pv.Minor())
}

// Patch returns the patch number of v, or -1 when unparsable.
func (*Scheme) Patch(v string) int {
	pv, ok := parse(v)
	if !ok {
		return -1
	}

	return int(pv.Patch())
}

// parse accepts full SemVer plus the lenient forms Masterminds allows
// (leading "v", shorthand X / X.Y).
func parse(v string) (*mmsemver.Version, bool) {
	pv, err := mmsemver.NewVersion(strings.TrimSpace(v))
	if err != nil {
		return nil, false
	}

	return pv, true
}

// ValidRange reports whether spec parses as a semver constraint.
func ValidRange(spec string) bool {
	_, err := mmsemver.NewConstraint(spec)
	return err == nil
}

// numericCore extracts a leading X[.Y[.Z]] from arbitrary tag text,
// e.g. "1.2.3.4" -> "1.2.3", "release-2.1" -> "2.1".
var numericCore = regexp.MustCompile(`\d+(?:\.\d+){0,2}`)

// Coerce parses v leniently: full or shorthand SemVer first, otherwise the
// first numeric X[.Y[.Z]] core found in the string. Used when matching
// versions from other ecosystems against semver ranges.
func Coerce(v string) (*mmsemver.Version, bool) {
	if pv, ok := parse(v); ok {
		return pv, true
	}

	core := numericCore.FindString(v)
	if core == "" {
		return nil, false
	}

	pv, err := mmsemver.NewVersion(core)
	if err != nil {
		return nil, false
	}

	return pv, true
}

// Satisfies reports whether the coerced form of v satisfies the constraint
// spec. Uncoercible versions never satisfy.
func Satisfies(v, spec string) bool {
	c, err := mmsemver.NewConstraint(spec)
	if err != nil {
		return false
	}

	pv, ok := Coerce(v)

	return ok && c.Check(pv)
}
