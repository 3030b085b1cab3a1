// Package scheme defines the versioning-scheme capability used by the filter
// and a registry that resolves schemes by id.
//
// A Scheme encapsulates one ecosystem's rules for comparing, validating, and
// range-matching version strings. Implementations are stateless and safe for
// concurrent use; the filter treats them as opaque read-only services.
package scheme

import "fmt"

// Family groups schemes that share version semantics. Derived schemes (for
// example Poetry, which uses PEP 440 versions with its own range syntax)
// report the family of their base ecosystem.
type Family string

const (
	// FamilySemver covers semantic-versioning ecosystems.
	FamilySemver Family = "semver"
	// FamilyPep440 covers Python packaging (PEP 440) ecosystems.
	FamilyPep440 Family = "pep440"
	// FamilyLoose covers permissive, non-semver tag ecosystems.
	FamilyLoose Family = "loose"
)

// Scheme is the comparison/validation/matching capability for one
// versioning ecosystem.
type Scheme interface {
	// ID returns the canonical registry id of the scheme.
	ID() string

	// Family returns the semantic family the scheme belongs to.
	Family() Family

	// IsGreaterThan reports whether a sorts strictly after b.
	// Unparsable input on either side yields false.
	IsGreaterThan(a, b string) bool

	// IsStable reports whether v is a final release rather than a
	// pre-release build.
	IsStable(v string) bool

	// IsValid reports whether spec parses as a range/specifier expression
	// in this scheme.
	IsValid(spec string) bool

	// Matches reports whether version v satisfies the range expression spec.
	Matches(v, spec string) bool

	// Major returns the major release number of v, or -1 when v is
	// unparsable.
	Major(v string) int
	// Minor returns the minor release number of v, or -1 when v is
	// unparsable. Missing segments count as 0.
	Minor(v string) int
	// Patch returns the patch release number of v, or -1 when v is
	// unparsable. Missing segments count as 0.
	Patch(v string) int
}

// Registry resolves Schemes by id. Ids are exact strings; aliases map extra
// ids onto an already registered scheme.
type Registry struct {
	byID map[string]Scheme
}

// NewRegistry returns a Registry holding the given schemes, keyed by their
// canonical ids.
func NewRegistry(schemes ...Scheme) *Registry {
	r := &Registry{byID: make(map[string]Scheme, len(schemes))}
	for _, s := range schemes {
		r.byID[s.ID()] = s
	}

	return r
}

// Register adds or replaces a scheme under its canonical id.
func (r *Registry) Register(s Scheme) {
	r.byID[s.ID()] = s
}

// Alias registers an extra id resolving to an already registered scheme.
// Looking up the alias returns the target scheme itself, so Scheme.ID
// reports the canonical id, not the alias.
func (r *Registry) Alias(alias, id string) error {
	s, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("alias %q: unknown versioning scheme %q", alias, id)
	}

	r.byID[alias] = s

	return nil
}

// Lookup returns the scheme registered under id. An unknown id is a
// configuration defect upstream and yields an error.
func (r *Registry) Lookup(id string) (Scheme, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("unknown versioning scheme %q", id)
	}

	return s, nil
}
