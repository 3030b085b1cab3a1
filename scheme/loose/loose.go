// Package loose implements a permissive scheme for ecosystems whose tags are
// not strict SemVer (container image tags, four-segment vendor versions,
// and similar). It is built on hashicorp/go-version, which accepts any
// number of numeric segments plus an optional pre-release suffix.
package loose

import (
	goversion "github.com/hashicorp/go-version"

	"github.com/woozymasta/reup/scheme"
)

// ID is the registry id of the loose scheme. The default registry also
// exposes it under the "docker" alias.
const ID = "loose"

// Scheme is the permissive versioning scheme.
type Scheme struct{}

// New returns the loose scheme.
func New() *Scheme { return &Scheme{} }

// ID returns "loose".
func (*Scheme) ID() string { return ID }

// Family returns scheme.FamilyLoose.
func (*Scheme) Family() scheme.Family { return scheme.FamilyLoose }

// IsGreaterThan reports whether a sorts strictly after b.
// Either side failing to parse yields false.
func (*Scheme) IsGreaterThan(a, b string) bool {
	va, err := goversion.NewVersion(a)
	if err != nil {
		return false
	}

	vb, err := goversion.NewVersion(b)
	if err != nil {
		return false
	}

	return va.GreaterThan(vb)
}

// IsStable reports whether v carries no pre-release suffix.
func (*Scheme) IsStable(v string) bool {
	pv, err := goversion.NewVersion(v)
	return err == nil && pv.Prerelease() == ""
}

// IsValid reports whether spec parses as a go-version constraint set
// (e.g. ">= 1.0, < 2.0", "~> 1.2").
func (*Scheme) IsValid(spec string) bool {
	_, err := goversion.NewConstraint(spec)
	return err == nil
}

// Matches reports whether v satisfies the constraint set spec.
func (*Scheme) Matches(v, spec string) bool {
	c, err := goversion.NewConstraint(spec)
	if err != nil {
		return false
	}

	pv, err := goversion.NewVersion(v)

	return err == nil && c.Check(pv)
}

// Major returns segment 0 of v, or -1 when unparsable.
func (*Scheme) Major(v string) int { return segment(v, 0) }

// Minor returns segment 1 of v (0 when omitted), or -1 when unparsable.
func (*Scheme) Minor(v string) int { return segment(v, 1) }

// Patch returns segment 2 of v (0 when omitted), or -1 when unparsable.
func (*Scheme) Patch(v string) int { return segment(v, 2) }

func segment(v string, i int) int {
	pv, err := goversion.NewVersion(v)
	if err != nil {
		return -1
	}

	segs := pv.Segments()
	if i >= len(segs) {
		return 0
	}

	return segs[i]
}
