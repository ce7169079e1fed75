package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if mode := settings.GetTheme(); mode != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, mode)
	}

	settings.SetTheme(ThemeDark)
	if mode := settings.GetTheme(); mode != ThemeDark {
		t.Errorf("Expected theme %s, got %s", ThemeDark, mode)
	}

	// Unknown values fall back to the default
	settings.SetTheme("sepia")
	if mode := settings.GetTheme(); mode != DefaultTheme {
		t.Errorf("Invalid theme should default to %s, got %s", DefaultTheme, mode)
	}
}

func TestToggleTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if next := settings.ToggleTheme(); next != ThemeDark {
		t.Errorf("Expected toggle from light to give dark, got %s", next)
	}
	if next := settings.ToggleTheme(); next != ThemeLight {
		t.Errorf("Expected toggle from dark to give light, got %s", next)
	}

	// Toggle persists through a new settings manager on the same app
	settings.ToggleTheme()
	if mode := NewSettings(app).GetTheme(); mode != ThemeDark {
		t.Errorf("Expected persisted theme dark, got %s", mode)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "pt" {
		t.Errorf("Expected language 'pt', got %s", retrievedLang)
	}
}

func TestAPIBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if base := settings.GetAPIBaseURL(); base != DefaultAPIBaseURL {
		t.Errorf("Expected default API URL %s, got %s", DefaultAPIBaseURL, base)
	}

	settings.SetAPIBaseURL(" http://localhost:8080/api/ ")
	if base := settings.GetAPIBaseURL(); base != "http://localhost:8080/api" {
		t.Errorf("Expected trimmed API URL, got %s", base)
	}

	settings.SetAPIBaseURL("")
	if base := settings.GetAPIBaseURL(); base != DefaultAPIBaseURL {
		t.Errorf("Empty API URL should restore default, got %s", base)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if timeout := settings.GetRequestTimeout(); timeout != DefaultTimeoutSeconds*time.Second {
		t.Errorf("Expected default timeout %ds, got %s", DefaultTimeoutSeconds, timeout)
	}

	settings.SetRequestTimeoutSeconds(5)
	if timeout := settings.GetRequestTimeout(); timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %s", timeout)
	}

	// Test boundary values
	settings.SetRequestTimeoutSeconds(0)
	if settings.GetRequestTimeout() != time.Second {
		t.Error("Timeout should be clamped to minimum 1s")
	}

	settings.SetRequestTimeoutSeconds(600)
	if settings.GetRequestTimeout() != MaxTimeoutSeconds*time.Second {
		t.Error("Timeout should be clamped to maximum 60s")
	}
}

func TestThumbnailParallel(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if value := settings.GetThumbnailParallel(); value != DefaultThumbnailParallel {
		t.Errorf("Expected default parallel %d, got %d", DefaultThumbnailParallel, value)
	}

	settings.SetThumbnailParallel(0)
	if settings.GetThumbnailParallel() != 1 {
		t.Error("Parallel should be clamped to minimum 1")
	}

	settings.SetThumbnailParallel(20)
	if settings.GetThumbnailParallel() != MaxThumbnailParallel {
		t.Error("Parallel should be clamped to maximum 8")
	}
}

func TestOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetAPIBaseURL("http://stored.example")
	settings.SetRequestTimeoutSeconds(20)

	settings.ApplyOverrides(Overrides{
		APIBaseURL: "http://override.example",
		Timeout:    3 * time.Second,
		Theme:      ThemeDark,
	})

	if base := settings.GetAPIBaseURL(); base != "http://override.example" {
		t.Errorf("Expected override API URL, got %s", base)
	}
	if timeout := settings.GetRequestTimeout(); timeout != 3*time.Second {
		t.Errorf("Expected override timeout 3s, got %s", timeout)
	}
	if mode := settings.GetTheme(); mode != ThemeDark {
		t.Errorf("Expected override theme dark, got %s", mode)
	}

	// Overrides are not persisted
	fresh := NewSettings(app)
	if base := fresh.GetAPIBaseURL(); base != "http://stored.example" {
		t.Errorf("Override should not be persisted, got %s", base)
	}

	// An explicit theme choice replaces the override
	settings.ToggleTheme()
	if mode := settings.GetTheme(); mode != ThemeLight {
		t.Errorf("Expected toggled theme light, got %s", mode)
	}
}

func TestStoredValuesIgnoreOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)
	settings.SetAPIBaseURL("http://stored.example")
	settings.SetRequestTimeoutSeconds(20)
	settings.SetTheme(ThemeLight)

	settings.ApplyOverrides(Overrides{
		APIBaseURL: "http://override.example",
		Timeout:    500 * time.Millisecond,
		Theme:      ThemeDark,
	})

	if base := settings.StoredAPIBaseURL(); base != "http://stored.example" {
		t.Errorf("Expected stored API URL, got %s", base)
	}
	if seconds := settings.StoredTimeoutSeconds(); seconds != 20 {
		t.Errorf("Expected stored timeout 20, got %d", seconds)
	}
	if mode := settings.StoredTheme(); mode != ThemeLight {
		t.Errorf("Expected stored theme light, got %s", mode)
	}
}

func TestSettersDropOverrides(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.ApplyOverrides(Overrides{
		APIBaseURL: "http://override.example",
		Timeout:    3 * time.Second,
	})

	settings.SetAPIBaseURL("http://edited.example")
	if base := settings.GetAPIBaseURL(); base != "http://edited.example" {
		t.Errorf("Saved API URL should take effect, got %s", base)
	}

	settings.SetRequestTimeoutSeconds(30)
	if timeout := settings.GetRequestTimeout(); timeout != 30*time.Second {
		t.Errorf("Saved timeout should take effect, got %s", timeout)
	}
}

func TestOverrides_InvalidThemeIgnored(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.ApplyOverrides(Overrides{Theme: "neon"})
	if mode := settings.GetTheme(); mode != DefaultTheme {
		t.Errorf("Invalid override theme should be ignored, got %s", mode)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected ThemeMode
		ok       bool
	}{
		{"dark", ThemeDark, true},
		{" Light ", ThemeLight, true},
		{"neon", ThemeMode("neon"), false},
		{"", ThemeMode(""), false},
	}

	for _, test := range tests {
		mode, ok := ParseTheme(test.input)
		if mode != test.expected || ok != test.ok {
			t.Errorf("ParseTheme(%q) = (%s, %v), expected (%s, %v)", test.input, mode, ok, test.expected, test.ok)
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestGetThemeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetThemeOptions()
	if len(options) != 2 || options[0] != ThemeLight || options[1] != ThemeDark {
		t.Errorf("Unexpected theme options: %v", options)
	}
}
