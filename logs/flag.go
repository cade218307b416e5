// Copyright © 2026 The Gomon Project.

package logs

import (
	"strings"

	"github.com/zosmac/gocore"
	"github.com/zosmac/logsift/filter"
)

var (
	// flags defines the command line flags.
	flags = defaultFlags()
)

type (
	// flagValues holds the values of the command line flags.
	flagValues struct {
		severities
		length    int
		whitelist string
		blacklist string
	}

	// severities is a command line flag type for a list of severity tokens.
	severities struct {
		list []string
		set  bool
	}
)

// init initializes the command line flags.
func init() {
	for _, name := range []string{"s", "severities"} {
		gocore.Flags.Var(
			&flags.severities,
			name,
			"[-"+name+" <severity>...]",
			"A comma-separated list of `severities` to extract, e.g. CRITICAL,ERROR,WARNING (default CRITICAL,ERROR)",
		)
	}
	for _, name := range []string{"l", "length"} {
		gocore.Flags.Var(
			&flags.length,
			name,
			"[-"+name+" n]",
			"Maximum number of characters matched in a log message",
		)
	}
	for _, name := range []string{"w", "whitelist"} {
		gocore.Flags.Var(
			&flags.whitelist,
			name,
			"[-"+name+" <path>]",
			"The `path` to a file of substrings, one per line, at least one of which a message must contain",
		)
	}
	for _, name := range []string{"b", "blacklist"} {
		gocore.Flags.Var(
			&flags.blacklist,
			name,
			"[-"+name+" <path>]",
			"The `path` to a file of substrings, one per line, none of which a message may contain",
		)
	}
}

// defaultFlags returns the default values of the command line flags.
func defaultFlags() flagValues {
	return flagValues{
		severities: severities{list: DefaultSeverities()},
		length:     DefaultLength,
	}
}

// ResetFlags restores the command line flags to their defaults so that the
// command line may be parsed again.
func ResetFlags() {
	flags = defaultFlags()
}

// Configure builds the Config from the command line flags, loading the filter files.
func Configure() (Config, error) {
	wl, err := filter.Load(flags.whitelist)
	if err != nil {
		return Config{}, err
	}
	bl, err := filter.Load(flags.blacklist)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Severities: flags.severities.list,
		Length:     flags.length,
		Whitelist:  wl,
		Blacklist:  bl,
	}, nil
}

// Set is a flag.Value interface method to enable severities as a command line flag.
// The first use replaces the default severities, subsequent uses append.
func (s *severities) Set(list string) error {
	if !s.set {
		s.list = nil
		s.set = true
	}
	for _, token := range strings.Split(list, ",") {
		if token = strings.TrimSpace(token); token != "" {
			s.list = append(s.list, token)
		}
	}
	return nil
}

// String is a flag.Value interface method to enable severities as a command line flag.
func (s *severities) String() string {
	return strings.Join(s.list, ",")
}

// Greedy marks severities as absorbing the bare words that follow it on the command line.
func (*severities) Greedy() bool {
	return true
}
