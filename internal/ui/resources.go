package ui

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "recipe-finder.svg"
)

//go:embed recipe-finder.svg
var appIconData []byte

// LogoResource is the embedded application icon
var LogoResource = fyne.NewStaticResource(AppIcon, appIconData)
