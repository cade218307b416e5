// Copyright © 2026 The Gomon Project.

/*
Package filter loads the whitelist and blacklist substring sets applied to
extracted log messages. A filter file holds one entry per line; entries are
trimmed and blank lines are ignored.
*/
package filter
