package reup

import (
	"regexp"
	"strings"

	"github.com/woozymasta/reup/scheme"
	"github.com/woozymasta/reup/scheme/pep440"
	"github.com/woozymasta/reup/scheme/semver"
)

// allowedCtx carries the state one Filter call needs to interpret its
// AllowedVersions expression.
type allowedCtx struct {
	sch  scheme.Scheme
	expr string

	// set by the regex rules during applies()
	re    *regexp.Regexp
	reErr error
}

// allowedRule is one strategy for interpreting an AllowedVersions
// expression. Rules are evaluated in declaration order; the first one whose
// applies() holds decides the outcome and no later rule is consulted.
type allowedRule struct {
	name    string
	note    string // non-empty => debug-log that a fallback syntax was used
	applies func(a *allowedCtx) bool
	keep    func(a *allowedCtx, version string) bool
}

var allowedRules = []allowedRule{
	{
		name: "regex-include",
		applies: func(a *allowedCtx) bool {
			if !isRegexInclude(a.expr) {
				return false
			}
			a.re, a.reErr = compileCached(a.expr[1 : len(a.expr)-1])
			return true
		},
		keep: func(a *allowedCtx, v string) bool { return a.re.MatchString(v) },
	},
	{
		name: "regex-exclude",
		applies: func(a *allowedCtx) bool {
			if !isRegexExclude(a.expr) {
				return false
			}
			a.re, a.reErr = compileCached(a.expr[2 : len(a.expr)-1])
			return true
		},
		keep: func(a *allowedCtx, v string) bool { return !a.re.MatchString(v) },
	},
	{
		name: "scheme-range",
		applies: func(a *allowedCtx) bool {
			return a.sch.IsValid(a.expr)
		},
		keep: func(a *allowedCtx, v string) bool { return a.sch.Matches(v, a.expr) },
	},
	{
		name: "semver-range",
		note: "falling back to semver range syntax for allowedVersions",
		applies: func(a *allowedCtx) bool {
			return a.sch.ID() != semver.ID && semver.ValidRange(a.expr)
		},
		keep: func(a *allowedCtx, v string) bool { return semver.Satisfies(v, a.expr) },
	},
	{
		name: "pep440-specifier",
		note: "falling back to PEP 440 specifier syntax for allowedVersions",
		applies: func(a *allowedCtx) bool {
			return a.sch.Family() == scheme.FamilyPep440 && pep440.ValidSpecifier(a.expr)
		},
		keep: func(a *allowedCtx, v string) bool { return pep440.MatchesSpecifier(v, a.expr) },
	},
}

// filterAllowed applies the AllowedVersions constraint to in, resolved by
// the first applicable rule. An expression no rule recognizes (including a
// regex wrapper with an uncompilable body) is a configuration error.
func filterAllowed(sch scheme.Scheme, p Policy, in []Release) ([]Release, error) {
	a := &allowedCtx{sch: sch, expr: p.AllowedVersions}

	for _, rule := range allowedRules {
		if !rule.applies(a) {
			continue
		}

		if a.reErr != nil {
			return nil, errInvalidAllowedVersions(a.expr)
		}

		if rule.note != "" {
			diag().Debug(rule.note,
				"dependency", p.DepName,
				"allowedVersions", a.expr,
			)
		}

		out := in[:0]
		for _, r := range in {
			if rule.keep(a, r.Version) {
				out = append(out, r)
			}
		}

		return out, nil
	}

	return nil, errInvalidAllowedVersions(p.AllowedVersions)
}

// isRegexInclude reports the "/.../" wrapper form.
func isRegexInclude(s string) bool {
	return len(s) > 1 && strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/")
}

// isRegexExclude reports the "!/.../" wrapper form.
func isRegexExclude(s string) bool {
	return len(s) > 2 && strings.HasPrefix(s, "!/") && strings.HasSuffix(s, "/")
}
