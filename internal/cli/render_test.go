package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/model"
)

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, LightPrimary, PaletteFor(config.ThemeLight).Primary)
	assert.Equal(t, DarkPrimary, PaletteFor(config.ThemeDark).Primary)
	assert.Equal(t, Destructive, PaletteFor(config.ThemeDark).Error)
}

func TestRenderState_Idle(t *testing.T) {
	r := NewRenderer(config.ThemeLight)
	assert.Empty(t, r.RenderState(model.NewSearchState(), 0))
}

func TestRenderState_Loading(t *testing.T) {
	r := NewRenderer(config.ThemeLight)
	out := r.RenderState(model.SearchState{Status: model.SearchStatusLoading, HasSearched: true}, 0)
	assert.Contains(t, out, LoadingText)
}

func TestRenderCard_WithoutLinks(t *testing.T) {
	r := NewRenderer(config.ThemeDark)
	out := r.RenderCard(model.Recipe{StrMeal: "Plain Rice", StrInstructions: "Boil."})

	assert.Contains(t, out, "Plain Rice")
	assert.Contains(t, out, "Boil....")
	assert.NotContains(t, out, ViewRecipeText)
	assert.NotContains(t, out, WatchVideoText)
}

func TestRenderCard_Bordered(t *testing.T) {
	r := NewRenderer(config.ThemeLight)
	out := r.RenderCard(model.Recipe{StrMeal: "Pancakes", StrCategory: "Dessert"})

	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Contains(t, out, "Dessert")
	assert.NotContains(t, out, " · ")
}

func TestCardMeta(t *testing.T) {
	assert.Equal(t, "Beef · British", cardMeta(model.Recipe{StrCategory: "Beef", StrArea: "British"}))
	assert.Equal(t, "British", cardMeta(model.Recipe{StrArea: "British"}))
	assert.Empty(t, cardMeta(model.Recipe{}))
}
