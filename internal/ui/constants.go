package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconChef     = "👨‍🍳"
	IconSun      = "☀"
	IconMoon     = "☾"
	IconHeart    = "♡"
	IconCategory = "⏱"
	IconArea     = "👥"
	IconLink     = "↗"
	IconVideo    = "▶"
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window and card sizing
const (
	WindowWidth  float32 = 1024
	WindowHeight float32 = 760

	CardImageWidth   float32 = 300
	CardImageHeight  float32 = 192
	CardMinWidth     float32 = 280
	CardCornerRadius float32 = 8
	CardStrokeWidth  float32 = 1

	SearchBarWidth float32 = 440
	StatusBoxWidth float32 = 420
)

// Responsive breakpoints, in device independent pixels
const (
	BreakpointMedium float32 = 768
	BreakpointLarge  float32 = 1024

	ColumnsNarrow = 1
	ColumnsMedium = 2
	ColumnsWide   = 3
)
