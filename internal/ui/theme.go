package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/recipe-finder/internal/config"
)

// RecipeTheme is a warm palette that pins the light or dark variant chosen
// by the user instead of following the system
type RecipeTheme struct {
	mode    config.ThemeMode
	variant fyne.ThemeVariant
}

// NewRecipeTheme creates a new theme for the given mode
func NewRecipeTheme(mode config.ThemeMode) fyne.Theme {
	variant := theme.VariantLight
	if mode == config.ThemeDark {
		variant = theme.VariantDark
	}
	return &RecipeTheme{mode: mode, variant: variant}
}

// Mode returns the theme mode this theme renders
func (t *RecipeTheme) Mode() config.ThemeMode {
	return t.mode
}

// Color returns theme colors. The requested variant is ignored.
func (t *RecipeTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	dark := t.variant == theme.VariantDark

	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 234, G: 88, B: 12, A: 255} // Orange for primary actions
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255} // Red for failures
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameBackground:
		if dark {
			return color.RGBA{R: 24, G: 20, B: 18, A: 255} // Dark roast
		}
		return color.RGBA{R: 252, G: 249, B: 245, A: 255} // Cream
	case theme.ColorNameForeground:
		if dark {
			return color.RGBA{R: 245, G: 240, B: 235, A: 255}
		}
		return color.RGBA{R: 41, G: 33, B: 28, A: 255}
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		if dark {
			return color.RGBA{R: 38, G: 33, B: 30, A: 255} // Card surface
		}
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		if dark {
			return color.RGBA{R: 64, G: 56, B: 50, A: 255}
		}
		return color.RGBA{R: 229, G: 222, B: 214, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *RecipeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *RecipeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *RecipeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 28 // Hero heading
	case theme.SizeNameSubHeadingText:
		return 18 // Card titles and result heading
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}

// themeColor resolves a color from the running app's theme
func themeColor(name fyne.ThemeColorName) color.Color {
	app := fyne.CurrentApp()
	if app == nil {
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
	return app.Settings().Theme().Color(name, app.Settings().ThemeVariant())
}

// ThemeToggleIcon returns the icon for the theme toggle: the sun offers
// light mode while dark is active, the moon offers dark mode otherwise
func ThemeToggleIcon(mode config.ThemeMode) string {
	if mode == config.ThemeDark {
		return IconSun
	}
	return IconMoon
}
