// Copyright © 2026 The Gomon Project.

package filter

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/zosmac/gocore"
)

type (
	// Set is a set of filter substrings. The zero value is an empty set.
	Set map[string]struct{}
)

// New creates a Set from its entries, trimming each and dropping blanks.
func New(entries ...string) Set {
	s := Set{}
	for _, e := range entries {
		s.add(e)
	}
	return s
}

// Load reads a filter file into a Set. An empty path yields an empty Set.
func Load(path string) (Set, error) {
	if path == "" {
		return Set{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, gocore.Error("open filter file "+path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, gocore.Error("read "+path, err)
	}
	return s, nil
}

// Read reads filter entries from r, one per line.
func Read(r io.Reader) (Set, error) {
	s := Set{}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLine)
	sc.Split(ScanLines)
	for sc.Scan() {
		s.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s Set) add(e string) {
	if e = strings.TrimSpace(e); e != "" {
		s[e] = struct{}{}
	}
}

// Len returns the number of entries.
func (s Set) Len() int {
	return len(s)
}

// AnyIn reports whether any entry occurs in msg. Matching is case sensitive.
func (s Set) AnyIn(msg string) bool {
	for e := range s {
		if strings.Contains(msg, e) {
			return true
		}
	}
	return false
}
