// Copyright © 2026 The Gomon Project.

package logs

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zosmac/gocore"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// log record regular expression capture group names.
	groupSeverity = "severity"
	groupMessage  = "message"

	// wordClass and spaceClass are Unicode aware character class contents
	// for word characters and white space; RE2's \b, \s and \S are ASCII only.
	wordClass  = `\p{L}\p{N}_`
	spaceClass = `\s\p{Z}\x0b\x1c-\x1f\x85`
)

type (
	// Pattern matches log records whose label ends in one of a set of severities,
	// e.g. "module.ERROR: message".
	Pattern struct {
		regex    *regexp.Regexp // nil if no severity can end a label
		upper    cases.Caser
		length   int
		severity int
		message  int
	}
)

// NewPattern builds the Pattern for severities, with messages bounded to length
// characters following their first non-blank character.
func NewPattern(severities []string, length int) (*Pattern, error) {
	if length < 0 {
		return nil, gocore.Error("pattern", errors.New("message length must not be negative"))
	}

	var tokens []string
	blank := true
	for _, s := range severities {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		blank = false
		// the label must end on a word boundary before the colon
		if r, _ := utf8.DecodeLastRuneInString(s); isWord(r) {
			tokens = append(tokens, regexp.QuoteMeta(s))
		}
	}
	if blank {
		return nil, gocore.Error("pattern", errors.New("no severities specified"))
	}

	p := &Pattern{
		upper:  cases.Upper(language.Und),
		length: length,
	}
	if len(tokens) == 0 {
		return p, nil
	}

	// A label starts on a word boundary: a word character preceded by a
	// non-word character or the start of line, or a non-word character
	// preceded by a word character. The message capture runs to the end of
	// the line; its length is bounded in Match as RE2 limits counted
	// repetition to 1000.
	regex, err := regexp.Compile(
		`(?i)(?:(?:^|[^` + wordClass + `])[` + wordClass + `]|[` + wordClass + `][^` + wordClass + spaceClass + `])` +
			`[^` + spaceClass + `]*\.(?P<` + groupSeverity + `>` + strings.Join(tokens, "|") + `):` +
			`[` + spaceClass + `]*(?P<` + groupMessage + `>[^` + spaceClass + `].*)$`,
	)
	if err != nil {
		return nil, gocore.Error("pattern", err)
	}

	p.regex = regex
	p.severity = regex.SubexpIndex(groupSeverity)
	p.message = regex.SubexpIndex(groupMessage)
	return p, nil
}

// Match reports whether line holds a log record for one of the pattern's
// severities, returning the upper case severity and the trimmed message.
func (p *Pattern) Match(line string) (severity, message string, ok bool) {
	if p.regex == nil {
		return "", "", false
	}
	match := p.regex.FindStringSubmatch(line)
	if match == nil {
		return "", "", false
	}
	return p.upper.String(match[p.severity]), strings.TrimFunc(truncate(match[p.message], p.length+1), isSpace), true
}

// truncate returns at most n leading characters of s.
func truncate(s string, n int) string {
	if len(s) <= n { // byte count bounds rune count
		return s
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// isWord reports whether r is a word character.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// isSpace reports whether r is white space, including the ASCII information
// separators that line oriented text treats as breaks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r >= 0x1c && r <= 0x1f
}
