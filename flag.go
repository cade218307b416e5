// Copyright © 2026 The Gomon Project.

package main

import (
	"github.com/zosmac/gocore"
)

var (
	// flags defines the command line flags.
	flags = struct {
		metrics string
	}{}
)

// init initializes the command line flags.
func init() {
	gocore.Flags.Var(
		&flags.metrics,
		"metrics",
		"[-metrics <path>]",
		"Write scan statistics to `path` in Prometheus text format",
	)

	gocore.Flags.CommandDescription = `Extracts severity tagged messages from a log file,
	filters them by whitelist and blacklist,
	and reports the unique messages grouped by severity.`
}
