package thumbnail

import (
	_ "embed"

	"fyne.io/fyne/v2"
)

// PlaceholderName is the resource name of the fallback image
const PlaceholderName = "placeholder.svg"

//go:embed placeholder.svg
var placeholderSVG []byte

// Placeholder is shown until a thumbnail is loaded, and when it cannot be
var Placeholder = fyne.NewStaticResource(PlaceholderName, placeholderSVG)
