package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned when filter text cannot be compiled.
var ErrInvalidPattern = errors.New("invalid filter pattern")

// PatternError carries the offending pattern together with the compiler error.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid filter pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// Pattern is a compiled name filter. The zero value matches everything.
type Pattern struct {
	raw           string
	caseSensitive bool
	re            *regexp.Regexp
	g             glob.Glob
}

// New creates an empty (always-matching) pattern.
func New(caseSensitive bool) Pattern {
	return Pattern{caseSensitive: caseSensitive}
}

// Raw returns the text the pattern was compiled from.
func (p *Pattern) Raw() string {
	return p.raw
}

// CaseSensitive reports the case policy the pattern was compiled with.
func (p *Pattern) CaseSensitive() bool {
	return p.caseSensitive
}

// IsEmpty reports whether the pattern accepts every name.
func (p *Pattern) IsEmpty() bool {
	return p.raw == ""
}

// Set replaces the pattern keeping the current case policy.
func (p *Pattern) Set(pattern string) error {
	return p.Change(pattern, p.caseSensitive)
}

// Change replaces the pattern and its case policy. On error the pattern is
// left as it was.
func (p *Pattern) Change(pattern string, caseSensitive bool) error {
	next, err := compile(pattern, caseSensitive)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

// Append extends the pattern so it additionally matches the literal name.
func (p *Pattern) Append(name string) error {
	return p.Set(appendLiteral(p.raw, name))
}

// Clear resets the pattern to match everything.
func (p *Pattern) Clear() {
	*p = Pattern{caseSensitive: p.caseSensitive}
}

// Matches reports whether name is accepted by the pattern.
func (p *Pattern) Matches(name string) bool {
	switch {
	case p.raw == "":
		return true
	case p.g != nil:
		if !p.caseSensitive {
			name = strings.ToLower(name)
		}
		return p.g.Match(name)
	case p.re != nil:
		return p.re.MatchString(name)
	default:
		return true
	}
}

func compile(pattern string, caseSensitive bool) (Pattern, error) {
	if pattern == "" {
		return Pattern{caseSensitive: caseSensitive}, nil
	}

	body, _ := stripCaseMarkers(pattern)

	if isGlob(body) {
		text := body
		if !caseSensitive {
			text = strings.ToLower(text)
		}
		g, err := glob.Compile(text)
		if err != nil {
			return Pattern{}, &PatternError{Pattern: pattern, Err: err}
		}
		return Pattern{raw: pattern, caseSensitive: caseSensitive, g: g}, nil
	}

	expr := body
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, &PatternError{Pattern: pattern, Err: err}
	}
	return Pattern{raw: pattern, caseSensitive: caseSensitive, re: re}, nil
}

// isGlob reports whether the text uses the brace-delimited glob syntax.
func isGlob(text string) bool {
	return len(text) >= 2 && text[0] == '{' && text[len(text)-1] == '}'
}

func appendLiteral(raw, name string) string {
	if body, marker := stripCaseMarkers(raw); isGlob(body) {
		return body[:len(body)-1] + "," + glob.QuoteMeta(name) + "}" + marker
	}
	literal := "^" + regexp.QuoteMeta(name) + "$"
	if raw == "" {
		return literal
	}
	return raw + "|" + literal
}
