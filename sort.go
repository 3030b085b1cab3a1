package reup

import (
	"sort"
	"strings"

	"github.com/woozymasta/reup/scheme"
)

// SortMode controls the ordering applied by SortReleases.
type SortMode uint8

const (
	// SortNone preserves the existing order.
	SortNone SortMode = iota
	// SortAsc sorts ascending by scheme precedence.
	SortAsc
	// SortDesc sorts descending by scheme precedence.
	SortDesc
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortAsc:
		return "ascending"
	case SortDesc:
		return "descending"
	default:
		return "none"
	}
}

// ParseSort maps free-form strings to SortMode.
// Supported aliases (case-insensitive):
//
//	asc:  "asc","ascending","inc","increase","up"
//	desc: "desc","descending","dec","decrease","down"
//	none: "none","default","asis"
func ParseSort(s string) SortMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "inc", "increase", "up":
		return SortAsc

	case "desc", "descending", "dec", "decrease", "down":
		return SortDesc

	default:
		return SortNone
	}
}

// SortReleases returns a copy of in ordered by the scheme's precedence.
// The sort is stable: versions the scheme cannot order (equal or
// unparsable) keep their input order. Presentation helper only --
// Filter itself never reorders its input.
func SortReleases(sch scheme.Scheme, in []Release, mode SortMode) []Release {
	if mode == SortNone || len(in) < 2 {
		return in
	}

	out := append([]Release(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		if mode == SortAsc {
			return sch.IsGreaterThan(out[j].Version, out[i].Version)
		}

		return sch.IsGreaterThan(out[i].Version, out[j].Version)
	})

	return out
}
