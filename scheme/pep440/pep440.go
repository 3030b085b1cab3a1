// Package pep440 implements the Python packaging (PEP 440) scheme.
//
// Comparison and specifier matching are delegated to
// aquasecurity/go-pep440-version. Release-segment extraction and stability
// use the permissive PEP 440 grammar directly, so epoch, pre/post/dev
// segments, and local version labels are all recognized in their
// non-normalized spellings (e.g. "1.2-preview1", "1.0.0.RC2").
package pep440

import (
	"regexp"
	"strconv"
	"strings"

	pep440ver "github.com/aquasecurity/go-pep440-version"

	"github.com/woozymasta/reup/scheme"
)

// ID is the registry id of the PEP 440 scheme.
const ID = "pep440"

// Permissive PEP 440 grammar (epoch, release, pre, post, dev, local).
var versionRe = regexp.MustCompile(`(?i)^\s*v?` +
	`(?:(\d+)!)?` + // epoch
	`(\d+(?:\.\d+)*)` + // release
	`(?:[-_.]?(?:a|b|c|rc|alpha|beta|pre|preview)[-_.]?\d*)?` + // pre
	`(?:-\d+|[-_.]?(?:post|rev|r)[-_.]?\d*)?` + // post
	`([-_.]?dev[-_.]?\d*)?` + // dev
	`(?:\+[a-z0-9]+(?:[-_.][a-z0-9]+)*)?` + // local
	`\s*$`)

// Pre-release marker inside an otherwise valid version: either a pre
// segment or a dev segment.
var unstableRe = regexp.MustCompile(`(?i)^\s*v?(?:\d+!)?\d+(?:\.\d+)*` +
	`(?:[-_.]?(?:a|b|c|rc|alpha|beta|pre|preview)[-_.]?\d*|` +
	`(?:-\d+|[-_.]?(?:post|rev|r)[-_.]?\d*)?[-_.]?dev[-_.]?\d*)`)

// Scheme is the PEP 440 scheme.
type Scheme struct{}

// New returns the PEP 440 scheme.
func New() *Scheme { return &Scheme{} }

// ID returns "pep440".
func (*Scheme) ID() string { return ID }

// Family returns scheme.FamilyPep440.
func (*Scheme) Family() scheme.Family { return scheme.FamilyPep440 }

// IsGreaterThan reports whether a sorts strictly after b by PEP 440
// precedence. Either side failing to parse yields false.
func (*Scheme) IsGreaterThan(a, b string) bool {
	va, err := pep440ver.Parse(a)
	if err != nil {
		return false
	}

	vb, err := pep440ver.Parse(b)
	if err != nil {
		return false
	}

	return va.GreaterThan(vb)
}

// IsStable reports whether v is a final or post release. Pre and dev
// releases are unstable; post releases are not.
func (*Scheme) IsStable(v string) bool {
	if _, err := pep440ver.Parse(v); err != nil {
		return false
	}

	return !unstableRe.MatchString(v)
}

// IsValid reports whether spec parses as a PEP 440 specifier set
// (e.g. ">=1.0,<2.0", "~=1.4.2", "==1.2.*").
func (*Scheme) IsValid(spec string) bool { return ValidSpecifier(spec) }

// Matches reports whether v satisfies the specifier set spec.
func (*Scheme) Matches(v, spec string) bool { return MatchesSpecifier(v, spec) }

// Major returns the first release segment of v, or -1 when unparsable.
func (*Scheme) Major(v string) int { return releaseSegment(v, 0) }

// Minor returns the second release segment of v (0 when omitted),
// or -1 when unparsable.
func (*Scheme) Minor(v string) int { return releaseSegment(v, 1) }

// Patch returns the third release segment of v (0 when omitted),
// or -1 when unparsable.
func (*Scheme) Patch(v string) int { return releaseSegment(v, 2) }

func releaseSegment(v string, i int) int {
	m := versionRe.FindStringSubmatch(v)
	if m == nil {
		return -1
	}

	segs := strings.Split(m[2], ".")
	if i >= len(segs) {
		return 0
	}

	n, err := strconv.Atoi(segs[i])
	if err != nil {
		return -1
	}

	return n
}

// ValidSpecifier reports whether spec parses as a PEP 440 specifier set.
func ValidSpecifier(spec string) bool {
	_, err := pep440ver.NewSpecifiers(spec)
	return err == nil
}

// MatchesSpecifier reports whether version v satisfies the PEP 440
// specifier set spec. Unparsable versions never match.
func MatchesSpecifier(v, spec string) bool {
	ss, err := pep440ver.NewSpecifiers(spec)
	if err != nil {
		return false
	}

	pv, err := pep440ver.Parse(v)
	if err != nil {
		return false
	}

	return ss.Check(pv)
}
