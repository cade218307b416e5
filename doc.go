// Copyright © 2026 The Gomon Project.

/*
Package main implements the "logsift" command, which reports the unique
messages of a log file grouped by severity. A log record is recognized by a
label ending in a severity, e.g.

	2024-05-01 10:00:00 app.db.ERROR: connection refused

Usage:

	logsift [flags] <logfile> [flags]

The main package defines the following command line flag:
  - -metrics: write scan statistics to a file in Prometheus text format

Flags that select severities, length and filters are defined by the logs
package; flags that select the report format by the report package.

Of the flags inherited from gocore, -version prints the version and exits
without reading a log file. The -cpuprofile and -memprofile flags are
accepted but ignored, as logsift does not run under gocore.Main.
*/
package main
