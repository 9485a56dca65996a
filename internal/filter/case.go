package filter

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	markerCaseSensitive   = `\C`
	markerCaseInsensitive = `\c`
)

// CaseOptions holds the configured case matching preferences.
type CaseOptions struct {
	IgnoreCase bool
	SmartCase  bool
}

// CaseSensitive derives the case policy for a pattern. An explicit \C or \c
// marker wins; otherwise IgnoreCase applies, overridden by SmartCase when the
// pattern contains an upper-case letter.
func CaseSensitive(pattern string, opts CaseOptions) bool {
	body, marker := stripCaseMarkers(pattern)
	switch marker {
	case markerCaseSensitive:
		return true
	case markerCaseInsensitive:
		return false
	}

	if !opts.IgnoreCase {
		return true
	}
	return opts.SmartCase && hasUpper(body)
}

// stripCaseMarkers removes \c and \C from the pattern and returns the last
// marker seen. Other escapes are kept intact.
func stripCaseMarkers(pattern string) (string, string) {
	if !strings.Contains(pattern, `\`) {
		return pattern, ""
	}

	var b strings.Builder
	b.Grow(len(pattern))
	marker := ""
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch != '\\' || i+1 >= len(pattern) {
			b.WriteByte(ch)
			continue
		}
		next := pattern[i+1]
		if next == 'c' || next == 'C' {
			marker = pattern[i : i+2]
		} else {
			b.WriteByte(ch)
			b.WriteByte(next)
		}
		i++
	}
	return b.String(), marker
}

// hasUpper skips escaped characters so classes like \W or \S do not count.
func hasUpper(pattern string) bool {
	escaped := false
	for i := 0; i < len(pattern); {
		r, size := utf8.DecodeRuneInString(pattern[i:])
		i += size
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}
