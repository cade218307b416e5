// Copyright © 2026 The Gomon Project.

package logs

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/zosmac/logsift/filter"
)

const sample = `2024-05-01 10:00:00 app.ERROR: disk full on /dev/sda1
2024-05-01 10:00:01 app.INFO: started worker
2024-05-01 10:00:02 db.pool.CRITICAL: connection refused
not a log record at all
2024-05-01 10:00:03 app.error: disk full on /dev/sda1
2024-05-01 10:00:04 api.ERROR: timeout talking to upstream
2024-05-01 10:00:05 api.WARNING: timeout
2024-05-01 10:00:06 api.warning:   timeout  
`

func mustGroup(t *testing.T, input string, cfg Config) (Grouped, Stats) {
	t.Helper()
	g, stats, err := Group(strings.NewReader(input), cfg)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	return g, stats
}

func TestGroupDefaults(t *testing.T) {
	g, stats := mustGroup(t, sample, DefaultConfig())

	if want := []string{"CRITICAL", "ERROR"}; !reflect.DeepEqual(g.Severities(), want) {
		t.Fatalf("expected severities %v, got %v", want, g.Severities())
	}
	if want := []string{"disk full on /dev/sda1", "timeout talking to upstream"}; !reflect.DeepEqual(g.Messages("ERROR"), want) {
		t.Fatalf("expected ERROR messages %v, got %v", want, g.Messages("ERROR"))
	}
	if want := []string{"connection refused"}; !reflect.DeepEqual(g.Messages("CRITICAL"), want) {
		t.Fatalf("expected CRITICAL messages %v, got %v", want, g.Messages("CRITICAL"))
	}

	if stats.Lines != 8 {
		t.Errorf("expected 8 lines, got %d", stats.Lines)
	}
	if stats.Matched["ERROR"] != 3 || stats.Matched["CRITICAL"] != 1 {
		t.Errorf("unexpected matched counts %v", stats.Matched)
	}
	if stats.Duplicates["ERROR"] != 1 {
		t.Errorf("expected 1 ERROR duplicate, got %v", stats.Duplicates)
	}
}

func TestGroupDeduplicates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Severities = []string{"WARNING"}
	g, stats := mustGroup(t, sample, cfg)

	if want := []string{"WARNING"}; !reflect.DeepEqual(g.Severities(), want) {
		t.Fatalf("expected severities %v, got %v", want, g.Severities())
	}
	if want := []string{"timeout"}; !reflect.DeepEqual(g.Messages("WARNING"), want) {
		t.Fatalf("expected %v, got %v", want, g.Messages("WARNING"))
	}
	if stats.Duplicates["WARNING"] != 1 {
		t.Fatalf("expected 1 duplicate, got %v", stats.Duplicates)
	}
}

func TestGroupOrderIndependent(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(sample), "\n")
	reversed := make([]string, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}
	cfg := DefaultConfig()
	cfg.Severities = []string{"CRITICAL", "ERROR", "WARNING", "INFO"}

	g1, _ := mustGroup(t, sample, cfg)
	g2, _ := mustGroup(t, strings.Join(reversed, "\n"), cfg)
	if !reflect.DeepEqual(g1, g2) {
		t.Fatalf("grouping depends on line order:\n%v\n%v", g1, g2)
	}
	if want := []string{"CRITICAL", "ERROR", "INFO", "WARNING"}; !reflect.DeepEqual(g1.Severities(), want) {
		t.Fatalf("expected %v, got %v", want, g1.Severities())
	}
}

func TestGroupFilters(t *testing.T) {
	tests := []struct {
		name      string
		whitelist filter.Set
		blacklist filter.Set
		want      map[string][]string
	}{
		{
			name: "no filters",
			want: map[string][]string{
				"CRITICAL": {"connection refused"},
				"ERROR":    {"disk full on /dev/sda1", "timeout talking to upstream"},
			},
		},
		{
			name:      "blacklist",
			blacklist: filter.New("disk full"),
			want: map[string][]string{
				"CRITICAL": {"connection refused"},
				"ERROR":    {"timeout talking to upstream"},
			},
		},
		{
			name:      "whitelist",
			whitelist: filter.New("disk", "refused"),
			want: map[string][]string{
				"CRITICAL": {"connection refused"},
				"ERROR":    {"disk full on /dev/sda1"},
			},
		},
		{
			name:      "blacklist wins",
			whitelist: filter.New("disk"),
			blacklist: filter.New("sda1"),
			want:      map[string][]string{},
		},
		{
			name:      "case sensitive",
			whitelist: filter.New("DISK"),
			want:      map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Whitelist = tt.whitelist
			cfg.Blacklist = tt.blacklist
			g, _ := mustGroup(t, sample, cfg)

			got := map[string][]string{}
			for _, s := range g.Severities() {
				got[s] = g.Messages(s)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGroupFilterStats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Whitelist = filter.New("disk", "timeout")
	cfg.Blacklist = filter.New("upstream")
	_, stats := mustGroup(t, sample, cfg)
	if stats.Whitelisted != 1 {
		t.Errorf("expected 1 message dropped by whitelist, got %d", stats.Whitelisted)
	}
	if stats.Blacklisted != 1 {
		t.Errorf("expected 1 message dropped by blacklist, got %d", stats.Blacklisted)
	}
}

func TestGroupNoMatches(t *testing.T) {
	g, stats := mustGroup(t, "nothing\nto see\n", DefaultConfig())
	if len(g) != 0 || len(g.Severities()) != 0 {
		t.Fatalf("expected no messages, got %v", g)
	}
	if stats.Lines != 2 {
		t.Fatalf("expected 2 lines, got %d", stats.Lines)
	}
}

func TestGroupUnicodeBlankMessage(t *testing.T) {
	g, stats := mustGroup(t, "app.ERROR:\u00a0\napp.ERROR: \u2003\nмодуль.ERROR: disk full\n", DefaultConfig())
	if want := []string{"disk full"}; !reflect.DeepEqual(g.Messages("ERROR"), want) {
		t.Fatalf("expected %v, got %v", want, g.Messages("ERROR"))
	}
	if stats.Matched["ERROR"] != 1 {
		t.Fatalf("expected 1 matched line, got %v", stats.Matched)
	}
}

func TestGroupLongLine(t *testing.T) {
	long := strings.Repeat("y", 200000)
	cfg := DefaultConfig()
	cfg.Length = 100000
	g, _ := mustGroup(t, "app.ERROR: "+long+"\n", cfg)
	if msgs := g.Messages("ERROR"); len(msgs) != 1 || len(msgs[0]) != 100001 {
		t.Fatalf("unexpected long line result")
	}
}

func TestGroupInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Severities = nil
	if _, _, err := Group(strings.NewReader(sample), cfg); err == nil {
		t.Fatal("expected error for empty severities")
	}
}

func TestGroupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	g, _, err := GroupFile(path, DefaultConfig())
	if err != nil {
		t.Fatalf("GroupFile: %v", err)
	}
	if n := len(g.Messages("CRITICAL")) + len(g.Messages("ERROR")); n != 3 {
		t.Fatalf("expected 3 messages, got %d", n)
	}
}

func TestGroupFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")
	if _, _, err := GroupFile(path, DefaultConfig()); err == nil {
		t.Fatal("expected error for missing log file")
	} else if !strings.Contains(err.Error(), path) {
		t.Fatalf("error %q does not name %s", err, path)
	}
}
