package reup

import (
	"github.com/woozymasta/reup/scheme"
	"github.com/woozymasta/reup/scheme/loose"
	"github.com/woozymasta/reup/scheme/pep440"
	"github.com/woozymasta/reup/scheme/poetry"
	"github.com/woozymasta/reup/scheme/semver"
)

// Built-in schemes: semver (alias npm), pep440, poetry, loose (alias docker).
var defaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *scheme.Registry {
	r := scheme.NewRegistry(
		semver.New(),
		pep440.New(),
		poetry.New(),
		loose.New(),
	)

	// alias targets are registered above, errors are impossible here
	_ = r.Alias("npm", semver.ID)
	_ = r.Alias("docker", loose.ID)

	return r
}

// Schemes returns the registry of built-in versioning schemes used by
// Filter. Callers with custom ecosystems can Register additional schemes
// or pass their own implementation to FilterWith.
func Schemes() *scheme.Registry {
	return defaultRegistry
}
