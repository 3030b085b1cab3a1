package reup

// Policy configures one Filter invocation. The zero value of every field is
// its "not set" state; a zero Policy (plus a SchemeID) yields the default
// behavior: stable upgrades only, capped at the published latest tag.
type Policy struct {
	// SchemeID names the versioning scheme governing comparison, validation,
	// and range matching for this dependency ("semver", "pep440", ...).
	// Used by Filter; FilterWith takes the scheme directly.
	SchemeID string

	// AllowedVersions is an optional constraint expression. Recognized
	// syntaxes, in priority order: "/regex/", "!/regex/", a range in the
	// active scheme, a semver range (fallback), or a PEP 440 specifier set
	// (fallback for pep440-family schemes). An expression matching none of
	// these fails the call with *ConfigValidationError.
	AllowedVersions string

	// FollowTag tracks a named release tag (e.g. "next"). When non-empty,
	// stability and ceiling filtering are disabled entirely.
	FollowTag string

	// IgnoreDeprecated drops deprecated candidates, unless the currently
	// used release is itself deprecated.
	IgnoreDeprecated bool

	// IgnoreUnstable controls the stability cut. Unset defaults to true;
	// explicitly false keeps pre-release candidates.
	IgnoreUnstable *bool

	// RespectLatest controls the ceiling cut. Unset defaults to true;
	// explicitly false keeps candidates above the published latest tag.
	RespectLatest *bool

	// DepName labels diagnostic messages; it never affects filtering.
	DepName string
}

// Bool returns a pointer to b, for the tri-state Policy fields.
func Bool(b bool) *bool { return &b }

func (p Policy) ignoreUnstable() bool {
	return p.IgnoreUnstable == nil || *p.IgnoreUnstable
}

func (p Policy) respectLatest() bool {
	return p.RespectLatest == nil || *p.RespectLatest
}
