/*
Package reup (Release Upgrade Filter) computes which published releases are
eligible upgrade targets for a dependency, given the version currently in
use, the registry's "latest" tag, and a per-dependency policy.

The package is network-agnostic: it operates purely on a slice of Release
values. Typical flow:

 1. Fetch the release list elsewhere (registry client, lockfile, crane...).
 2. Call Filter (or FilterWith for an injected scheme) with a Policy.
 3. Hand the surviving candidates to your ranking/selection step.

Filtering runs four narrowing stages in strict order:

  - baseline: keep only versions strictly greater than the current one;
  - deprecation: when the current release is not itself deprecated, drop
    deprecated candidates (IgnoreDeprecated);
  - allowed set: apply the AllowedVersions expression, interpreted as
    /regex/, !/regex/, a native scheme range, or a fallback range syntax;
  - stability and ceiling: drop pre-releases (with a carve-out for
    pre-releases of the exact same release as an unstable current version)
    and candidates above the published latest tag.

The output is always an order-preserving subsequence of the input; the
filter never synthesizes or reorders versions.

Version semantics are pluggable through the scheme package. Built-in
schemes: "semver" (alias "npm"), "pep440", "poetry", "loose" (alias
"docker").

Usage example:

	releases := []reup.Release{
		{Version: "1.0.0"},
		{Version: "1.1.0"},
		{Version: "1.2.0", Deprecated: true},
		{Version: "2.0.0"},
		{Version: "2.1.0-rc.1"},
	}

	out, err := reup.Filter(reup.Policy{
		SchemeID:         "semver",
		IgnoreDeprecated: true,
		DepName:          "example/lib",
	}, "1.0.0", "2.0.0", releases)
	if err != nil {
		// *reup.ConfigValidationError means the allowedVersions expression
		// is malformed; skip or flag the dependency, do not retry.
	}

	fmt.Println(reup.Versions(out)) // [1.1.0 2.0.0]

Diagnostics are debug-level log/slog messages; see SetLogger.
*/
package reup
