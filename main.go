// Copyright © 2026 The Gomon Project.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zosmac/gocore"
	"github.com/zosmac/logsift/logs"
	"github.com/zosmac/logsift/report"
)

const (
	// exit codes.
	exitSuccess = 0
	exitError   = 1
	exitUsage   = 2
)

// main
func main() {
	os.Exit(Main(os.Args[1:], os.Stdout))
}

// Main parses the command line, filters the log file, and writes the report
// to stdout, returning the exit code.
func Main(args []string, stdout io.Writer) int {
	fs := &gocore.Flags.FlagSet
	positional, err := parse(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return exitSuccess
	}
	if err != nil {
		return exitUsage
	}

	if f := fs.Lookup("version"); f != nil && f.Value.String() == "true" { // defined by gocore
		fmt.Fprintln(stdout, "logsift", gocore.Version)
		return exitSuccess
	}

	path, err := logFile(fs, positional)
	if err != nil {
		return exitUsage
	}

	cfg, err := logs.Configure()
	if err != nil {
		gocore.Error("configure", err).Err()
		return exitError
	}

	if err := sift(path, cfg, report.Configure(), flags.metrics, stdout); err != nil {
		gocore.Error("logsift", err).Err()
		return exitError
	}
	return exitSuccess
}

// sift groups the messages of the log file at path, writes the report, and
// records the scan statistics to the metrics file if one is named.
func sift(path string, cfg logs.Config, opts report.Options, metrics string, w io.Writer) error {
	g, stats, err := logs.GroupFile(path, cfg)
	if err != nil {
		return err
	}

	if err := report.Write(w, g, opts); err != nil {
		return err
	}

	if metrics != "" {
		return writeMetrics(metrics, stats, g)
	}
	return nil
}
