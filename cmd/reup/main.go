/*
Package main is the reup CLI (Release Upgrade Filter): reads candidate
versions from stdin (one per line, "version" or "version,deprecated"),
filters them against the current version and policy flags, and prints the
eligible upgrade targets.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/reup"
)

type Options struct {
	// Reference versions
	OptionsRefs OptionsRefs `group:"Reference versions"`
	// Filtering policy
	OptionsPolicy OptionsPolicy `group:"Policy"`
	// Output format
	OptionsOutput OptionsOutput `group:"Output"`
}

type OptionsRefs struct {
	Current string `short:"c" long:"current" description:"Currently used version (empty yields no candidates)"`
	Latest  string `short:"l" long:"latest"  description:"Registry 'latest' tag acting as the upgrade ceiling"`
}

type OptionsPolicy struct {
	Scheme           string `short:"s" long:"scheme"            description:"Versioning scheme id" choice:"semver" choice:"npm" choice:"pep440" choice:"poetry" choice:"loose" choice:"docker" default:"semver"`
	Allowed          string `short:"a" long:"allowed"           description:"Allowed-versions expression (/re/, !/re/ or a range)"`
	FollowTag        string `short:"t" long:"follow-tag"        description:"Track a named tag; disables stability and ceiling policy"`
	IgnoreDeprecated bool   `short:"D" long:"ignore-deprecated" description:"Drop deprecated candidates (unless current is deprecated)"`
	Unstable         bool   `short:"u" long:"unstable"          description:"Keep pre-release candidates"`
	NoRespectLatest  bool   `short:"L" long:"no-respect-latest" description:"Allow candidates above the latest tag"`
	DepName          string `short:"d" long:"dependency"        description:"Dependency name used in diagnostics"`
}

type OptionsOutput struct {
	SortMode string `short:"S" long:"sort"    description:"Sort output versions" choice:"none" choice:"asc" choice:"desc" default:"none"`
	Limit    int    `short:"n" long:"limit"   description:"Max number of output versions (<=0 = unlimited)" default:"0"`
	Verbose  bool   `short:"v" long:"verbose" description:"Debug diagnostics on stderr"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `reup — Release Upgrade Filter.
Filters a list of candidate versions down to eligible upgrade targets:
strictly newer than the current version, not deprecated, inside the
allowed-versions constraint, stable, and at or below the latest tag.`
	if _, err := parser.Parse(); err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opt.OptionsOutput.Verbose {
		reup.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	candidates, err := readCandidates(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(2)
	}

	sch, err := reup.Schemes().Lookup(opt.OptionsPolicy.Scheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	pol := reup.Policy{
		SchemeID:         opt.OptionsPolicy.Scheme,
		AllowedVersions:  strings.TrimSpace(opt.OptionsPolicy.Allowed),
		FollowTag:        strings.TrimSpace(opt.OptionsPolicy.FollowTag),
		IgnoreDeprecated: opt.OptionsPolicy.IgnoreDeprecated,
		DepName:          opt.OptionsPolicy.DepName,
	}
	if opt.OptionsPolicy.Unstable {
		pol.IgnoreUnstable = reup.Bool(false)
	}
	if opt.OptionsPolicy.NoRespectLatest {
		pol.RespectLatest = reup.Bool(false)
	}

	out, err := reup.FilterWith(sch, pol,
		strings.TrimSpace(opt.OptionsRefs.Current),
		strings.TrimSpace(opt.OptionsRefs.Latest),
		candidates,
	)
	if err != nil {
		var cfgErr *reup.ConfigValidationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "invalid %s: %s\n", cfgErr.Field, cfgErr.Message)
			os.Exit(2)
		}

		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	out = reup.SortReleases(sch, out, reup.ParseSort(opt.OptionsOutput.SortMode))

	if n := opt.OptionsOutput.Limit; n > 0 && n < len(out) {
		out = out[:n]
	}

	for _, r := range out {
		fmt.Println(r.Version)
	}
}

// readCandidates parses "version" or "version,deprecated" lines, skipping
// blanks.
func readCandidates(f *os.File) ([]reup.Release, error) {
	in := make([]reup.Release, 0, 1024)

	sc := bufio.NewScanner(f)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		version, attr, _ := strings.Cut(line, ",")
		in = append(in, reup.Release{
			Version:    strings.TrimSpace(version),
			Deprecated: strings.EqualFold(strings.TrimSpace(attr), "deprecated"),
		})
	}

	return in, sc.Err()
}
