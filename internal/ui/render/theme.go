package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	PromptFg    tcell.Color
	TabFg       tcell.Color
	TabActiveBg tcell.Color
	TabActiveFg tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	MatchFg     tcell.Color
	BadgeFg     tcell.Color
	MetaFg      tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	ErrorFg     tcell.Color
	FlashBg     tcell.Color
	FlashFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		PromptFg:    tcell.Color33,
		TabFg:       tcell.ColorLightSlateGray,
		TabActiveBg: tcell.Color33,
		TabActiveFg: tcell.ColorWhite,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		MatchFg:     tcell.Color214, // amber for matched runes
		BadgeFg:     tcell.Color44,
		MetaFg:      tcell.ColorLightSlateGray,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorDefault,
		ErrorFg:     tcell.ColorRed,
		FlashBg:     tcell.ColorGreen,
		FlashFg:     tcell.ColorBlack,
	}
}
