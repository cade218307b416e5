// Copyright © 2026 The Gomon Project.

/*
Package logs extracts severity tagged messages from a log file. A record is
recognized by a label ending in a severity, followed by a colon and the
message, e.g.

	app.db.ERROR: connection refused

Matched messages are filtered against the whitelist and blacklist and grouped
by severity, with duplicates collapsed.

The logs package defines the following command line flags:
  - -s, -severities: the severities to extract (default CRITICAL,ERROR)
  - -l, -length:     the maximum message length (default 999)
  - -w, -whitelist:  a file of substrings a message must contain one of
  - -b, -blacklist:  a file of substrings a message must not contain

Severities may be listed as separate words or separated by commas, so
"-s WARNING ERROR" and "-s WARNING,ERROR" are equivalent. A severity that
itself contains a comma therefore cannot be given.
*/
package logs
