package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HiddenFg    tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	MarkFg      tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	PromptFg    tcell.Color
	ErrorFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		CursorBg:    tcell.Color33,
		CursorFg:    tcell.ColorWhite,
		MarkFg:      tcell.Color214, // orange selection marker
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		PromptFg:    tcell.Color44,
		ErrorFg:     tcell.ColorRed,
	}
}
