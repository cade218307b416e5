// Copyright © 2026 The Gomon Project.

package filter

import (
	"bytes"
)

// MaxLine bounds the length of a single line read by a scanner using ScanLines.
const MaxLine = 1 << 30

// ScanLines is a bufio.SplitFunc that splits on "\n", "\r\n" or a lone "\r",
// returning lines without their terminators.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// carriage return, possibly followed by newline
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil // need more data to resolve "\r\n"
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
