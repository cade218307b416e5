// Copyright © 2026 The Gomon Project.

package logs

import (
	"bufio"
	"io"
	"os"

	"github.com/zosmac/gocore"
	"github.com/zosmac/logsift/filter"
)

type (
	// Stats counts the outcome of a scan.
	Stats struct {
		Lines       int            // lines read
		Matched     map[string]int // lines matching each severity
		Whitelisted int            // messages dropped for containing no whitelist entry
		Blacklisted int            // messages dropped for containing a blacklist entry
		Duplicates  map[string]int // repeated messages for each severity
	}
)

// GroupFile opens the log file at path and groups its messages.
func GroupFile(path string, cfg Config) (Grouped, Stats, error) {
	p, err := NewPattern(cfg.Severities, cfg.Length)
	if err != nil {
		return nil, Stats{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, gocore.Error("open log file "+path, err)
	}
	defer f.Close()

	g, stats, err := group(f, p, cfg)
	if err != nil {
		return nil, stats, gocore.Error("read log file "+path, err)
	}
	return g, stats, nil
}

// Group scans the log records read from r, collecting the unique messages of
// each configured severity that pass the whitelist and blacklist.
func Group(r io.Reader, cfg Config) (Grouped, Stats, error) {
	p, err := NewPattern(cfg.Severities, cfg.Length)
	if err != nil {
		return nil, Stats{}, err
	}
	return group(r, p, cfg)
}

// group applies the pattern and filters to each line read from r.
func group(r io.Reader, p *Pattern, cfg Config) (Grouped, Stats, error) {
	g := Grouped{}
	stats := Stats{
		Matched:    map[string]int{},
		Duplicates: map[string]int{},
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(nil, filter.MaxLine)
	sc.Split(filter.ScanLines)
	for sc.Scan() {
		stats.Lines++
		severity, message, ok := p.Match(sc.Text())
		if !ok {
			continue
		}
		stats.Matched[severity]++

		if cfg.Whitelist.Len() > 0 && !cfg.Whitelist.AnyIn(message) {
			stats.Whitelisted++
			continue
		}
		if cfg.Blacklist.Len() > 0 && cfg.Blacklist.AnyIn(message) {
			stats.Blacklisted++
			continue
		}

		if !g.add(severity, message) {
			stats.Duplicates[severity]++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, stats, err
	}

	return g, stats, nil
}
