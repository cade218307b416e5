// Copyright © 2026 The Gomon Project.

/*
Package report renders the grouped messages produced by the logs package. The
default text form lists each severity under a "--- SEVERITY ---" header with
its messages in sorted order; JSON and YAML forms carry the same sequence.

The report package defines the following command line flags:
  - -format: the report format, text, json or yaml (default text)
  - -pretty: indent JSON output
  - -color:  colorize text headers by severity
*/
package report
