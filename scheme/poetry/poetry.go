// Package poetry implements the Poetry flavor of the Python scheme:
// versions follow PEP 440, while range expressions use npm-style caret and
// tilde syntax. Plain PEP 440 specifier sets (">=1.0,<2.0", "~=1.4") are
// not valid ranges here; the filter's secondary fallback handles those.
package poetry

import (
	"fmt"

	"github.com/woozymasta/reup/scheme"
	"github.com/woozymasta/reup/scheme/pep440"
	"github.com/woozymasta/reup/scheme/semver"
)

// ID is the registry id of the Poetry scheme.
const ID = "poetry"

// Scheme is the Poetry scheme. Version semantics delegate to pep440;
// range syntax delegates to the semver constraint grammar.
type Scheme struct {
	py *pep440.Scheme
}

// New returns the Poetry scheme.
func New() *Scheme { return &Scheme{py: pep440.New()} }

// ID returns "poetry".
func (*Scheme) ID() string { return ID }

// Family returns scheme.FamilyPep440: Poetry versions are PEP 440 versions.
func (*Scheme) Family() scheme.Family { return scheme.FamilyPep440 }

// IsGreaterThan reports whether a sorts strictly after b by PEP 440
// precedence.
func (s *Scheme) IsGreaterThan(a, b string) bool { return s.py.IsGreaterThan(a, b) }

// IsStable reports whether v is a final or post release.
func (s *Scheme) IsStable(v string) bool { return s.py.IsStable(v) }

// IsValid reports whether spec parses as a caret/tilde style constraint
// (e.g. "^1.2", "~2.0", ">=1.0, <3").
func (*Scheme) IsValid(spec string) bool { return semver.ValidRange(spec) }

// Matches reports whether v satisfies the constraint spec. The PEP 440
// release triple of v is checked against the constraint; pre/post/dev
// segments do not participate in range matching.
func (s *Scheme) Matches(v, spec string) bool {
	maj := s.py.Major(v)
	if maj < 0 {
		return false
	}

	core := fmt.Sprintf("%d.%d.%d", maj, s.py.Minor(v), s.py.Patch(v))

	return semver.Satisfies(core, spec)
}

// Major returns the first release segment of v, or -1 when unparsable.
func (s *Scheme) Major(v string) int { return s.py.Major(v) }

// Minor returns the second release segment of v, or -1 when unparsable.
func (s *Scheme) Minor(v string) int { return s.py.Minor(v) }

// Patch returns the third release segment of v, or -1 when unparsable.
func (s *Scheme) Patch(v string) int { return s.py.Patch(v) }
