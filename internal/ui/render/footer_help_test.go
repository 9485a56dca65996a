package render

import (
	"slices"
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/rfilter/internal/state"
)

func TestBuildFooterHelpSegments_NormalMode(t *testing.T) {
	state := &statepkg.AppState{
		View: statepkg.NewView("/", statepkg.Options{Settings: statepkg.Settings{HideDotFiles: true}}),
	}

	got := buildFooterHelpSegments(state)
	want := []string{
		"↑/↓/↵/←: navigate",
		"=: local filter",
		":: name filter",
		"space: select",
		"F: filter selected",
		"I: invert",
		"R/U: remove/restore",
		".: dot files hidden",
		"q: quit",
	}

	if !slices.Equal(got, want) {
		t.Fatalf("normal help mismatch\nwant: %#v\n got: %#v", want, got)
	}
}

func TestBuildFooterHelpSegments_LocalFilterMode(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.ModeLocalFilter}

	got := buildFooterHelpSegments(state)
	want := []string{"type: narrow", "↵: keep", "Esc: restore"}

	if !slices.Equal(got, want) {
		t.Fatalf("local filter help mismatch\nwant: %#v\n got: %#v", want, got)
	}
}

func TestBuildFooterHelpSegments_ManualFilterMode(t *testing.T) {
	state := &statepkg.AppState{Mode: statepkg.ModeManualFilter}

	got := buildFooterHelpSegments(state)
	if !slices.Contains(got, "!: invert") {
		t.Fatalf("expected invert hint, got %#v", got)
	}
	if slices.Contains(got, "q: quit") {
		t.Fatalf("q is typed into the prompt, it must not be advertised: %#v", got)
	}
}

func TestBuildFooterHelpText_Padding(t *testing.T) {
	text := buildFooterHelpText(&statepkg.AppState{Mode: statepkg.ModeLocalFilter})
	if !strings.HasPrefix(text, " ") || !strings.HasSuffix(text, " ") {
		t.Fatalf("expected padded help text, got %q", text)
	}
	if buildFooterHelpText(nil) != "" {
		t.Fatal("nil state should produce no help")
	}
}
