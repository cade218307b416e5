// Copyright © 2026 The Gomon Project.

package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

type (
	// greedy is implemented by list flags that take the bare words following
	// their value as further values.
	greedy interface {
		flag.Value
		Greedy() bool
	}
)

// parse parses the command line, permitting flags after the log file path,
// and returns the positional arguments.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		consumed := args[:len(args)-len(rest)]
		if n := len(consumed); n > 0 && consumed[n-1] == "--" {
			positional = append(positional, rest...)
			break
		}
		if len(rest) == 0 {
			break
		}

		if v := greedyValue(fs, consumed); v != nil {
			for len(rest) > 0 && !isFlag(rest[0]) {
				if err := v.Set(rest[0]); err != nil {
					return nil, usage(fs, fmt.Errorf("invalid value %q: %v", rest[0], err))
				}
				rest = rest[1:]
			}
		} else {
			positional = append(positional, rest[0])
			rest = rest[1:]
		}
		args = rest
	}
	return positional, nil
}

// logFile returns the log file path, the only positional argument.
func logFile(fs *flag.FlagSet, positional []string) (string, error) {
	switch len(positional) {
	case 0:
		return "", usage(fs, errors.New("missing log file argument"))
	case 1:
		return positional[0], nil
	default:
		return "", usage(fs, errors.New("invalid arguments: "+strings.Join(positional[1:], " ")))
	}
}

// greedyValue returns the greedy flag whose value was the last argument consumed.
func greedyValue(fs *flag.FlagSet, consumed []string) greedy {
	n := len(consumed)
	var name string
	switch {
	case n > 0 && isFlag(consumed[n-1]) && strings.Contains(consumed[n-1], "="):
		name, _, _ = strings.Cut(strings.TrimLeft(consumed[n-1], "-"), "=")
	case n > 1 && isFlag(consumed[n-2]) && !isFlag(consumed[n-1]):
		name = strings.TrimLeft(consumed[n-2], "-")
	default:
		return nil
	}

	f := fs.Lookup(name)
	if f == nil {
		return nil
	}
	if g, ok := f.Value.(greedy); ok && g.Greedy() {
		return g
	}
	return nil
}

// isFlag reports whether an argument is a flag, as the flag package parses them.
func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// usage reports a command line error the way the flag package does.
func usage(fs *flag.FlagSet, err error) error {
	fmt.Fprintln(fs.Output(), err)
	if fs.Usage != nil {
		fs.Usage()
	} else {
		fs.PrintDefaults()
	}
	return err
}
