package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// ThemeMode selects the light or dark palette
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyTheme             = "theme"
	KeyLanguage          = "app_language"
	KeyAPIBaseURL        = "api_base_url"
	KeyTimeoutSeconds    = "request_timeout_seconds"
	KeyThumbnailParallel = "thumbnail_parallel"
)

// Default values
const (
	DefaultTheme             = ThemeLight
	DefaultLanguage          = "system"
	DefaultAPIBaseURL        = "https://www.themealdb.com/api/json/v1/1"
	DefaultTimeoutSeconds    = 10
	DefaultThumbnailParallel = 4
)

// Bounds
const (
	MinTimeoutSeconds    = 1
	MaxTimeoutSeconds    = 60
	MinThumbnailParallel = 1
	MaxThumbnailParallel = 8
)

// Overrides are values supplied for the current run only (flags, env, config
// file). They win over stored preferences and are never persisted.
type Overrides struct {
	APIBaseURL string
	Timeout    time.Duration
	Theme      ThemeMode
}

// Settings manages application configuration
type Settings struct {
	app       fyne.App
	overrides Overrides
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// ApplyOverrides sets the run-only overrides
func (s *Settings) ApplyOverrides(o Overrides) {
	if o.Theme != "" && !IsValidTheme(o.Theme) {
		o.Theme = ""
	}
	s.overrides = o
}

// GetTheme returns the configured theme
func (s *Settings) GetTheme() ThemeMode {
	if s.overrides.Theme != "" {
		return s.overrides.Theme
	}
	return s.StoredTheme()
}

// StoredTheme returns the persisted theme, ignoring the run override
func (s *Settings) StoredTheme() ThemeMode {
	mode := ThemeMode(s.app.Preferences().String(KeyTheme))
	if !IsValidTheme(mode) {
		s.app.Preferences().SetString(KeyTheme, string(DefaultTheme))
		return DefaultTheme
	}
	return mode
}

// SetTheme stores the theme. Setting it also drops a run override so the
// user's choice is what the window shows.
func (s *Settings) SetTheme(mode ThemeMode) {
	if !IsValidTheme(mode) {
		mode = DefaultTheme
	}
	s.overrides.Theme = ""
	s.app.Preferences().SetString(KeyTheme, string(mode))
}

// ToggleTheme flips between light and dark and returns the new mode
func (s *Settings) ToggleTheme() ThemeMode {
	next := ThemeDark
	if s.GetTheme() == ThemeDark {
		next = ThemeLight
	}
	s.SetTheme(next)
	return next
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAPIBaseURL returns the search API root
func (s *Settings) GetAPIBaseURL() string {
	if s.overrides.APIBaseURL != "" {
		return s.overrides.APIBaseURL
	}
	return s.StoredAPIBaseURL()
}

// StoredAPIBaseURL returns the persisted API root, ignoring the run override
func (s *Settings) StoredAPIBaseURL() string {
	base := s.app.Preferences().String(KeyAPIBaseURL)
	if base == "" {
		return DefaultAPIBaseURL
	}
	return base
}

// SetAPIBaseURL sets the search API root. An empty value restores the
// default. The run override is dropped so the stored value takes effect.
func (s *Settings) SetAPIBaseURL(base string) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		base = DefaultAPIBaseURL
	}
	s.overrides.APIBaseURL = ""
	s.app.Preferences().SetString(KeyAPIBaseURL, base)
}

// GetRequestTimeout returns the search request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	if s.overrides.Timeout > 0 {
		return s.overrides.Timeout
	}
	return time.Duration(s.StoredTimeoutSeconds()) * time.Second
}

// StoredTimeoutSeconds returns the persisted timeout, ignoring the run override
func (s *Settings) StoredTimeoutSeconds() int {
	seconds := s.app.Preferences().Int(KeyTimeoutSeconds)
	if seconds <= 0 {
		s.app.Preferences().SetInt(KeyTimeoutSeconds, DefaultTimeoutSeconds)
		return DefaultTimeoutSeconds
	}
	return seconds
}

// SetRequestTimeoutSeconds sets the request timeout, clamped to 1..60, and
// drops the run override
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		seconds = MaxTimeoutSeconds
	}
	s.overrides.Timeout = 0
	s.app.Preferences().SetInt(KeyTimeoutSeconds, seconds)
}

// GetThumbnailParallel returns how many thumbnails load at once
func (s *Settings) GetThumbnailParallel() int {
	value := s.app.Preferences().Int(KeyThumbnailParallel)
	if value <= 0 {
		s.SetThumbnailParallel(DefaultThumbnailParallel)
		return DefaultThumbnailParallel
	}
	return value
}

// SetThumbnailParallel sets thumbnail parallelism, clamped to 1..8
func (s *Settings) SetThumbnailParallel(count int) {
	if count < MinThumbnailParallel {
		count = MinThumbnailParallel
	}
	if count > MaxThumbnailParallel {
		count = MaxThumbnailParallel
	}
	s.app.Preferences().SetInt(KeyThumbnailParallel, count)
}

// GetThemeOptions returns available themes
func (s *Settings) GetThemeOptions() []ThemeMode {
	return []ThemeMode{ThemeLight, ThemeDark}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// IsValidTheme reports whether mode is a known theme
func IsValidTheme(mode ThemeMode) bool {
	return mode == ThemeLight || mode == ThemeDark
}

// ParseTheme converts user input to a ThemeMode
func ParseTheme(value string) (ThemeMode, bool) {
	mode := ThemeMode(strings.ToLower(strings.TrimSpace(value)))
	return mode, IsValidTheme(mode)
}
