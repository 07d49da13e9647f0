package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ShellTheme defines the branded theme for the status chrome with slightly
// larger touch-friendly sizing
type ShellTheme struct{}

// NewShellTheme creates the shell theme
func NewShellTheme() fyne.Theme {
	return &ShellTheme{}
}

// Color returns theme colors
func (t *ShellTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 94, G: 114, B: 228, A: 255} // Brand indigo
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for loaded
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for offline
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for checking
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 13, G: 17, B: 23, A: 255} // Matches the page fill
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 230, G: 237, B: 243, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ShellTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ShellTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes tuned for a single full-screen status card
func (t *ShellTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Raised from default 4
	case theme.SizeNameInnerPadding:
		return 10 // Raised from default 8
	case theme.SizeNameText:
		return 15 // Raised from default 14
	case theme.SizeNameHeadingText:
		return 22 // Raised from default 18
	case theme.SizeNameSubHeadingText:
		return 17 // Raised from default 16
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
