package ui

// Package ui contains the Fyne-based user interface: the search window, the
// recipe cards and the settings dialog. It wires the search box to the search
// service, renders loading, error, empty and result states, and hands card
// links to the platform link opener. All UI strings are localized via
// Localization.
