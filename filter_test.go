// filter_test.go
package reup

import (
	"testing"

	"github.com/woozymasta/reup/scheme"
	semverscheme "github.com/woozymasta/reup/scheme/semver"
)

// * helpers

func rels(versions ...string) []Release {
	out := make([]Release, 0, len(versions))
	for _, v := range versions {
		out = append(out, Release{Version: v})
	}

	return out
}

func eqVersions(t *testing.T, got []Release, want []string) {
	t.Helper()

	gv := Versions(got)
	if len(gv) != len(want) {
		t.Fatalf("len mismatch: got %d, want %d\n got=%v\nwant=%v", len(gv), len(want), gv, want)
	}
	for i := range gv {
		if gv[i] != want[i] {
			t.Fatalf("mismatch at %d: got %q, want %q\n got=%v\nwant=%v", i, gv[i], want[i], gv, want)
		}
	}
}

func mustFilter(t *testing.T, p Policy, current, latest string, in []Release) []Release {
	t.Helper()

	out, err := FilterWith(semverscheme.New(), p, current, latest, in)
	if err != nil {
		t.Fatalf("FilterWith: %v", err)
	}

	return out
}

// * precondition

func TestFilterEmptyCurrent(t *testing.T) {
	out := mustFilter(t, Policy{}, "", "2.0.0", rels("1.0.0", "1.1.0", "2.0.0"))
	if len(out) != 0 {
		t.Fatalf("empty current must yield no candidates, got %v", Versions(out))
	}
}

// * baseline cut

func TestFilterBaselineCut(t *testing.T) {
	in := rels("0.9.0", "1.0.0", "1.0.1", "not-a-version", "1.2.0", "2.0.0")

	out := mustFilter(t, Policy{}, "1.0.0", "", in)

	// strictly greater only, original order, unparsable dropped
	eqVersions(t, out, []string{"1.0.1", "1.2.0", "2.0.0"})
}

// * default policy end to end

func TestFilterDefaultScenario(t *testing.T) {
	in := rels("1.0.0", "1.1.0", "2.0.0", "2.1.0-rc.1")

	out := mustFilter(t, Policy{}, "1.0.0", "2.0.0", in)

	// rc dropped by stability, latest itself is kept, nothing above it
	eqVersions(t, out, []string{"1.1.0", "2.0.0"})
}

// * stability carve-out for an unstable current version

func TestFilterUnstableCurrentCarveOut(t *testing.T) {
	in := rels("1.2.0-beta.2", "1.2.0", "1.3.0-beta.1")

	out := mustFilter(t, Policy{}, "1.2.0-beta.1", "", in)

	// same-release pre-release progression allowed, later pre-releases not
	eqVersions(t, out, []string{"1.2.0-beta.2", "1.2.0"})
}

func TestFilterUnstableCurrentSkipsCeiling(t *testing.T) {
	in := rels("1.2.0-beta.2", "1.2.0", "1.3.0")

	// current unstable: the ceiling sub-stage is never reached
	out := mustFilter(t, Policy{}, "1.2.0-beta.1", "1.2.0", in)

	eqVersions(t, out, []string{"1.2.0-beta.2", "1.2.0", "1.3.0"})
}

// * ceiling

func TestFilterCeiling(t *testing.T) {
	in := rels("1.1.0", "2.0.0", "2.1.0", "3.0.0")

	cases := []struct {
		name    string
		policy  Policy
		current string
		latest  string
		want    []string
	}{
		{
			name:    "drops strictly above latest",
			current: "1.0.0", latest: "2.0.0",
			want: []string{"1.1.0", "2.0.0"},
		},
		{
			name:    "no latest means no ceiling",
			current: "1.0.0", latest: "",
			want: []string{"1.1.0", "2.0.0", "2.1.0", "3.0.0"},
		},
		{
			name:    "respectLatest false disables the ceiling",
			policy:  Policy{RespectLatest: Bool(false)},
			current: "1.0.0", latest: "2.0.0",
			want: []string{"1.1.0", "2.0.0", "2.1.0", "3.0.0"},
		},
		{
			name:    "current ahead of latest bypasses the ceiling",
			current: "2.0.5", latest: "2.0.0",
			want: []string{"2.1.0", "3.0.0"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := mustFilter(t, c.policy, c.current, c.latest, in)
			eqVersions(t, out, c.want)
		})
	}
}

// * stage D opt-outs

func TestFilterStabilityOptOuts(t *testing.T) {
	in := rels("1.1.0", "2.0.0-rc.1", "2.5.0")

	cases := []struct {
		name   string
		policy Policy
	}{
		{"followTag", Policy{FollowTag: "next"}},
		{"ignoreUnstable false", Policy{IgnoreUnstable: Bool(false)}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := mustFilter(t, c.policy, "1.0.0", "1.1.0", in)
			// neither stability nor ceiling applied
			eqVersions(t, out, []string{"1.1.0", "2.0.0-rc.1", "2.5.0"})
		})
	}
}

// * deprecation guard

func TestFilterDeprecation(t *testing.T) {
	in := []Release{
		{Version: "1.0.0"},
		{Version: "1.1.0", Deprecated: true},
		{Version: "1.2.0"},
	}

	t.Run("guard drops deprecated candidates", func(t *testing.T) {
		out := mustFilter(t, Policy{IgnoreDeprecated: true, DepName: "some/dep"}, "1.0.0", "", in)
		eqVersions(t, out, []string{"1.2.0"})
	})

	t.Run("disabled guard keeps them", func(t *testing.T) {
		out := mustFilter(t, Policy{}, "1.0.0", "", in)
		eqVersions(t, out, []string{"1.1.0", "1.2.0"})
	})

	t.Run("deprecated current disables the guard", func(t *testing.T) {
		depIn := []Release{
			{Version: "1.0.0", Deprecated: true},
			{Version: "1.1.0", Deprecated: true},
			{Version: "1.2.0"},
		}

		out := mustFilter(t, Policy{IgnoreDeprecated: true}, "1.0.0", "", depIn)
		eqVersions(t, out, []string{"1.1.0", "1.2.0"})
	})

	t.Run("current missing from the list disables the guard", func(t *testing.T) {
		out := mustFilter(t, Policy{IgnoreDeprecated: true}, "0.9.0", "", in)
		eqVersions(t, out, []string{"1.0.0", "1.1.0", "1.2.0"})
	})
}

// * subset property

func TestFilterPreservesRecords(t *testing.T) {
	in := []Release{
		{Version: "1.1.0", Deprecated: true},
		{Version: "1.2.0"},
	}

	out := mustFilter(t, Policy{}, "1.0.0", "", in)

	if len(out) != 2 {
		t.Fatalf("want both survivors, got %v", Versions(out))
	}
	if !out[0].Deprecated || out[1].Deprecated {
		t.Fatalf("deprecation flags must survive filtering: %+v", out)
	}
}

// * registry-backed entry point

func TestFilterSchemeLookup(t *testing.T) {
	out, err := Filter(Policy{SchemeID: "npm"}, "1.0.0", "", rels("1.1.0"))
	if err != nil {
		t.Fatalf("npm alias must resolve: %v", err)
	}
	eqVersions(t, out, []string{"1.1.0"})

	if _, err := Filter(Policy{SchemeID: "cargo"}, "1.0.0", "", rels("1.1.0")); err == nil {
		t.Fatal("unknown scheme id must fail")
	}
}

// * injection with a fake scheme

type fakeScheme struct{ scheme.Scheme }

func (fakeScheme) ID() string               { return "fake" }
func (fakeScheme) IsValid(string) bool      { return true }
func (fakeScheme) Matches(_, _ string) bool { return false }

func TestFilterWithInjectedScheme(t *testing.T) {
	sch := fakeScheme{Scheme: semverscheme.New()}

	out, err := FilterWith(sch, Policy{}, "1.0.0", "", rels("1.1.0", "0.1.0"))
	if err != nil {
		t.Fatalf("FilterWith: %v", err)
	}

	eqVersions(t, out, []string{"1.1.0"})
}
