package reup

import (
	"regexp"
	"sync"
)

// Compiled allowedVersions patterns, keyed by their literal source text.
// Compilation is deterministic and idempotent, so a populate race between
// concurrent Filter calls is harmless.
var reCache sync.Map // string -> *regexp.Regexp

func compileCached(pattern string) (*regexp.Regexp, error) {
	if re, ok := reCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := reCache.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil
}
