package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/recipe-finder/internal/model"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	assert.Equal(t, "en", l.GetCurrentLanguage())
	assert.Equal(t, "Recipe Finder", l.GetText(KeyAppTitle))
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	assert.Equal(t, "ru", l.GetCurrentLanguage())
	assert.Equal(t, "Найти", l.GetText(KeySearch))

	// Unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "ru", l.GetCurrentLanguage())

	// System maps to English
	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_FallbackToKey(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "missing_key", l.GetText("missing_key"))
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for key := range l.texts["en"] {
		for lang := range l.GetAvailableLanguages() {
			_, ok := l.texts[lang][key]
			assert.True(t, ok, "language %s misses key %s", lang, key)
		}
	}
}

func TestLocalization_ResultsHeadingMatchesModel(t *testing.T) {
	l := NewLocalization()

	for _, n := range []int{0, 1, 2, 25} {
		assert.Equal(t, model.ResultsHeading(n), l.ResultsHeading(n))
	}
}

func TestLocalization_StaticErrorMatchesService(t *testing.T) {
	l := NewLocalization()
	assert.Equal(t, "Failed to fetch recipes. Please try again.", l.GetText(KeyFetchFailed))
}
