// Copyright © 2026 The Gomon Project.

package logs

import (
	"sort"

	"github.com/zosmac/logsift/filter"
)

const (
	// DefaultLength is the default message length bound.
	DefaultLength = 999
)

type (
	// Config defines the severities to extract and the filters applied to messages.
	Config struct {
		Severities []string
		Length     int
		Whitelist  filter.Set
		Blacklist  filter.Set
	}

	// Grouped maps severities to their set of unique messages.
	Grouped map[string]map[string]struct{}
)

// DefaultSeverities returns the severities extracted by default.
func DefaultSeverities() []string {
	return []string{"CRITICAL", "ERROR"}
}

// DefaultConfig returns a Config with default severities and length, and no filters.
func DefaultConfig() Config {
	return Config{
		Severities: DefaultSeverities(),
		Length:     DefaultLength,
	}
}

// add inserts a message for a severity, reporting whether it is new.
func (g Grouped) add(severity, message string) bool {
	msgs, ok := g[severity]
	if !ok {
		msgs = map[string]struct{}{}
		g[severity] = msgs
	}
	if _, ok := msgs[message]; ok {
		return false
	}
	msgs[message] = struct{}{}
	return true
}

// Severities returns the severities with messages in ascending order.
func (g Grouped) Severities() []string {
	ss := make([]string, 0, len(g))
	for s, msgs := range g {
		if len(msgs) > 0 {
			ss = append(ss, s)
		}
	}
	sort.Strings(ss)
	return ss
}

// Messages returns the messages of a severity in ascending order.
func (g Grouped) Messages(severity string) []string {
	ms := make([]string, 0, len(g[severity]))
	for m := range g[severity] {
		ms = append(ms, m)
	}
	sort.Strings(ms)
	return ms
}
