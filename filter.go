package reup

import "github.com/woozymasta/reup/scheme"

// Filter narrows candidates to eligible upgrade targets using the scheme
// named by p.SchemeID, resolved from the built-in registry (see Schemes).
// An unknown scheme id is an upstream misconfiguration and fails the call.
func Filter(p Policy, current, latest string, candidates []Release) ([]Release, error) {
	sch, err := Schemes().Lookup(p.SchemeID)
	if err != nil {
		return nil, err
	}

	return FilterWith(sch, p, current, latest, candidates)
}

// FilterWith is Filter with an explicitly injected scheme, keeping the
// computation a pure function of its arguments.
//
// Linear pipeline with early-return exits:
//  1. no current version -> nothing to compare against, empty result
//  2. baseline: strictly greater than current
//  3. deprecation guard (IgnoreDeprecated)
//  4. allowed-set constraint (AllowedVersions) -- the only failing stage
//  5. stability cut and latest-tag ceiling
//
// The result preserves the input order and is a subsequence of candidates.
func FilterWith(sch scheme.Scheme, p Policy, current, latest string, candidates []Release) ([]Release, error) {
	if current == "" {
		return nil, nil
	}

	// baseline cut: equal versions are not upgrades
	out := make([]Release, 0, len(candidates))
	for _, r := range candidates {
		if sch.IsGreaterThan(r.Version, current) {
			out = append(out, r)
		}
	}

	out = dropDeprecated(p, current, candidates, out)

	if p.AllowedVersions != "" {
		var err error
		out, err = filterAllowed(sch, p, out)
		if err != nil {
			return nil, err
		}
	}

	return filterStability(sch, p, current, latest, out), nil
}

// dropDeprecated removes deprecated candidates, but only when the currently
// used release appears in the original candidate list and is not itself
// deprecated. A user already on a deprecated release keeps seeing further
// deprecated releases in the same line.
func dropDeprecated(p Policy, current string, all, in []Release) []Release {
	if !p.IgnoreDeprecated {
		return in
	}

	ref, ok := findRelease(all, current)
	if !ok || ref.Deprecated {
		return in
	}

	out := in[:0]
	for _, r := range in {
		if r.Deprecated {
			diag().Debug("skipping deprecated version",
				"dependency", p.DepName,
				"version", r.Version,
			)
			continue
		}

		out = append(out, r)
	}

	return out
}

// filterStability applies the stability cut and the latest-tag ceiling.
//
// FollowTag and an explicit IgnoreUnstable=false both opt out of the whole
// stage. An unstable current version keeps stable candidates plus
// pre-releases of its exact (major, minor, patch) release, and never
// reaches the ceiling. A stable current version keeps stable candidates
// only, then drops everything strictly above latest -- unless there is no
// latest, RespectLatest is explicitly false, or current is already past
// latest.
func filterStability(sch scheme.Scheme, p Policy, current, latest string, in []Release) []Release {
	if p.FollowTag != "" || !p.ignoreUnstable() {
		return in
	}

	if !sch.IsStable(current) {
		out := in[:0]
		for _, r := range in {
			if sch.IsStable(r.Version) || sameRelease(sch, r.Version, current) {
				out = append(out, r)
			}
		}

		return out
	}

	out := in[:0]
	for _, r := range in {
		if sch.IsStable(r.Version) {
			out = append(out, r)
		}
	}

	if latest == "" || !p.respectLatest() || sch.IsGreaterThan(current, latest) {
		return out
	}

	kept := out[:0]
	for _, r := range out {
		if !sch.IsGreaterThan(r.Version, latest) {
			kept = append(kept, r)
		}
	}

	return kept
}

// sameRelease reports whether a and b share the exact (major, minor, patch)
// triple. Unparsable versions (-1 segments) never match a parsable one.
func sameRelease(sch scheme.Scheme, a, b string) bool {
	return sch.Major(a) == sch.Major(b) &&
		sch.Minor(a) == sch.Minor(b) &&
		sch.Patch(a) == sch.Patch(b)
}
