package textutil

import "github.com/mattn/go-runewidth"

const ellipsis = "…"

// DisplayWidth reports the number of terminal cells text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateRight cuts text to at most width cells, marking the cut with an
// ellipsis at the end.
func TruncateRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, ellipsis)
}

// TruncateLeft keeps the end of text, which is the interesting part of a
// path, and marks the cut with a leading ellipsis.
func TruncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}

	ew := runewidth.StringWidth(ellipsis)
	if width <= ew {
		return ellipsis
	}

	runes := []rune(text)
	used := ew
	start := len(runes)
	for start > 0 {
		rw := runewidth.RuneWidth(runes[start-1])
		if used+rw > width {
			break
		}
		used += rw
		start--
	}
	return ellipsis + string(runes[start:])
}
