package render

import (
	"fmt"
	"strings"

	statepkg "github.com/kk-code-lab/rfilter/internal/state"
)

// buildFooterHelpText returns the contextual key hint string with leading/trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles context-aware help hints for the footer.
func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := contextualHelpSegments(state)
	segments = append(segments, persistentHelpSegments(state)...)

	return segments
}

func contextualHelpSegments(state *statepkg.AppState) []string {
	switch state.Mode {
	case statepkg.ModeLocalFilter:
		return []string{
			"type: narrow",
			"↵: keep",
			"Esc: restore",
		}
	case statepkg.ModeManualFilter:
		return []string{
			"type: regex",
			"!: invert",
			"↵: apply",
			"Esc: abort",
		}
	default:
		return []string{
			"↑/↓/↵/←: navigate",
			"=: local filter",
			":: name filter",
			"space: select",
			"F: filter selected",
			"I: invert",
			"R/U: remove/restore",
		}
	}
}

func persistentHelpSegments(state *statepkg.AppState) []string {
	if state == nil || state.Mode != statepkg.ModeNormal {
		return nil
	}

	dotStatus := "visible"
	if state.View != nil && state.View.HideDotFiles {
		dotStatus = "hidden"
	}

	return []string{
		fmt.Sprintf(".: dot files %s", dotStatus),
		"q: quit",
	}
}
