package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rfilter/internal/state"
	textutil "github.com/kk-code-lab/rfilter/internal/textutil"
)

const (
	appTitle    = "rfilter"
	localPrefix = "="
	namePrefix  = ":"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state. The screen is split into the
// path header, the listing, the prompt line and the status line.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if state == nil || state.View == nil || w <= 0 || h <= 0 {
		r.screen.Show()
		return
	}

	r.drawHeader(state, w)
	r.drawFileList(state, w, h)
	r.drawPromptLine(state, w, h)
	r.drawStatusLine(state, w, h)

	r.screen.Show()
}

// drawHeader renders the top bar with title and current directory
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	endX := r.drawTextLine(0, 0, w, appTitle+" ", headerStyle)

	currentPath := state.View.CurrentPath
	if currentPath == "" {
		currentPath = "/"
	}
	currentPath = textutil.TruncateLeft(textutil.SanitizeTerminalText(currentPath), w-endX)
	endX = r.drawTextLine(endX, 0, w-endX, currentPath, headerStyle.Bold(true))

	r.fillRow(endX, w, 0, headerStyle)
}

// listBounds returns the first and one-past-last screen rows of the listing.
func listBounds(h int) (int, int) {
	top, bottom := 1, h-2
	if bottom <= top {
		bottom = top + 1
	}
	return top, bottom
}

func (r *Renderer) drawFileList(state *statepkg.AppState, w, h int) {
	v := state.View
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	listTop, listBottom := listBounds(h)
	y := listTop
	for idx := v.TopLine; idx < len(v.Entries) && y < listBottom; idx++ {
		r.drawEntry(v, idx, y, w, baseStyle)
		y++
	}

	for ; y < listBottom; y++ {
		r.fillRow(0, w, y, baseStyle)
	}
}

func (r *Renderer) drawEntry(v *statepkg.View, idx, y, w int, baseStyle tcell.Style) {
	f := v.Entries[idx]
	isCursor := idx == v.Cursor

	var rowStyle tcell.Style
	switch {
	case isCursor:
		rowStyle = tcell.StyleDefault.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)
	case f.IsSymlink:
		rowStyle = baseStyle.Foreground(r.theme.SymlinkFg)
	case f.IsDir:
		rowStyle = baseStyle.Foreground(r.theme.DirectoryFg)
	default:
		rowStyle = baseStyle.Foreground(r.theme.FileFg)
	}
	if !isCursor && !f.IsParent() && f.IsHidden() {
		rowStyle = rowStyle.Foreground(r.theme.HiddenFg)
	}

	mark := " "
	markStyle := rowStyle
	if v.IsSelected(f) {
		mark = "*"
		if !isCursor {
			markStyle = rowStyle.Foreground(r.theme.MarkFg).Bold(true)
		}
	}

	// Icon: @ for symlinks, / for directories, space for files
	icon := " "
	if f.IsSymlink {
		icon = "@"
	} else if f.IsDir {
		icon = "/"
	}

	x := r.drawTextLine(0, y, w, mark, markStyle)
	prefix := icon + " "
	x = r.drawTextLine(x, y, w-x, prefix, rowStyle)

	name := textutil.TruncateRight(textutil.SanitizeTerminalText(f.Name), w-x)
	x = r.drawTextLine(x, y, w-x, name, rowStyle)

	r.fillRow(x, w, y, rowStyle)
}

// drawPromptLine shows the active filter prompt or, in normal mode, the key
// hints.
func (r *Renderer) drawPromptLine(state *statepkg.AppState, w, h int) {
	y := h - 2
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	var prefix string
	switch state.Mode {
	case statepkg.ModeLocalFilter:
		prefix = localPrefix
	case statepkg.ModeManualFilter:
		prefix = namePrefix
	default:
		help := textutil.TruncateRight(textutil.SanitizeTerminalText(buildFooterHelpText(state)), w)
		x := r.drawTextLine(0, y, w, help, style.Dim(true))
		r.fillRow(x, w, y, style)
		return
	}

	promptStyle := style.Foreground(r.theme.PromptFg)
	cursorStyle := style.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)

	x := r.drawTextLine(0, y, w, prefix, promptStyle)
	// Keep the end of a long prompt in view, leaving room for the cursor.
	text := textutil.TruncateLeft(textutil.SanitizeTerminalText(state.Prompt), w-x-1)
	x = r.drawTextLine(x, y, w-x, text, style)
	if x < w {
		r.screen.SetContent(x, y, ' ', nil, cursorStyle)
		x++
	}
	r.fillRow(x, w, y, style)
}

// drawStatusLine renders filter state on the left and the cursor position on
// the right. An error replaces the filter summary until the next action.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	y := h - 1
	if y < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	position := formatPosition(state.View)
	left := formatFilterSummary(state.View)
	leftStyle := style
	if state.LastError != nil {
		left = " " + state.LastError.Error()
		leftStyle = style.Foreground(r.theme.ErrorFg)
	}

	leftWidth := w - textutil.DisplayWidth(position) - 1
	left = textutil.TruncateRight(textutil.SanitizeTerminalText(left), leftWidth)

	x := r.drawTextLine(0, y, w, left, leftStyle)
	posX := w - textutil.DisplayWidth(position)
	if posX < x {
		posX = x
	}
	r.fillRow(x, posX, y, style)
	x = r.drawTextLine(posX, y, w-posX, position, style)
	r.fillRow(x, w, y, style)
}

// formatFilterSummary lists the filters currently narrowing the view.
func formatFilterSummary(v *statepkg.View) string {
	var parts []string
	if v.Filtered > 0 {
		parts = append(parts, fmt.Sprintf("%d filtered", v.Filtered))
	}
	if n := v.SelectedCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", n))
	}
	if text := v.LocalFilterText(); text != "" {
		parts = append(parts, localPrefix+text)
	}
	if manual := v.Filters.Manual.Raw(); manual != "" {
		marker := ""
		if v.Filters.Invert {
			marker = "!"
		}
		parts = append(parts, namePrefix+marker+manual)
	}
	if auto := v.Filters.Auto.Raw(); auto != "" {
		parts = append(parts, "auto "+auto)
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ")
}

func formatPosition(v *statepkg.View) string {
	if len(v.Entries) == 0 {
		return "0/0 "
	}
	return fmt.Sprintf("%d/%d ", v.Cursor+1, len(v.Entries))
}
