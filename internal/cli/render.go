package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/model"
)

// Terminal text shared with the window
const (
	LoadingText    = "Finding delicious recipes..."
	NoResultsTitle = "No recipes found"
	NoResultsHint  = `Try searching for something else like "cake", "chicken", or "burger"`
	ViewRecipeText = "View Recipe"
	WatchVideoText = "Watch Video"
	MoreResultsFmt = "... and %d more"
)

// Card layout
const (
	CardWidth   = 72
	CardPadding = 1
)

// Color palette for terminal output
var (
	// Light Mode Colors (Default)
	LightPrimary = lipgloss.Color("#ea580c") // Orange
	LightText    = lipgloss.Color("#29211c")
	LightMuted   = lipgloss.Color("#78716c")
	LightBorder  = lipgloss.Color("#e5ded6")

	// Dark Mode Colors
	DarkPrimary = lipgloss.Color("#fb923c")
	DarkText    = lipgloss.Color("#f5f0eb")
	DarkMuted   = lipgloss.Color("#a8a29e")
	DarkBorder  = lipgloss.Color("#403832")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#dc2626")
)

// Palette holds the colors of one theme mode
type Palette struct {
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Error   lipgloss.Color
}

// PaletteFor returns the palette for mode
func PaletteFor(mode config.ThemeMode) Palette {
	if mode == config.ThemeDark {
		return Palette{Primary: DarkPrimary, Text: DarkText, Muted: DarkMuted, Border: DarkBorder, Error: Destructive}
	}
	return Palette{Primary: LightPrimary, Text: LightText, Muted: LightMuted, Border: LightBorder, Error: Destructive}
}

// Renderer formats search states for the terminal
type Renderer struct {
	heading lipgloss.Style
	hint    lipgloss.Style
	card    lipgloss.Style
	title   lipgloss.Style
	meta    lipgloss.Style
	body    lipgloss.Style
	link    lipgloss.Style
	errText lipgloss.Style
}

// NewRenderer creates a renderer styled for mode
func NewRenderer(mode config.ThemeMode) *Renderer {
	p := PaletteFor(mode)
	return &Renderer{
		heading: lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		hint:    lipgloss.NewStyle().Foreground(p.Muted),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, CardPadding).
			Width(CardWidth),
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		meta:    lipgloss.NewStyle().Foreground(p.Muted),
		body:    lipgloss.NewStyle().Foreground(p.Text),
		link:    lipgloss.NewStyle().Foreground(p.Primary).Underline(true),
		errText: lipgloss.NewStyle().Bold(true).Foreground(p.Error),
	}
}

// RenderState renders the finished state. limit caps the number of cards
// printed; zero or less prints all of them.
func (r *Renderer) RenderState(state model.SearchState, limit int) string {
	switch {
	case state.IsLoading():
		return r.hint.Render(LoadingText)
	case state.HasError():
		return r.errText.Render(state.Error)
	case state.ShowEmpty():
		return lipgloss.JoinVertical(lipgloss.Left,
			r.title.Render(NoResultsTitle),
			r.hint.Render(NoResultsHint),
		)
	case !state.ShowResults():
		return ""
	}

	recipes := state.Recipes
	hidden := 0
	if limit > 0 && len(recipes) > limit {
		hidden = len(recipes) - limit
		recipes = recipes[:limit]
	}

	blocks := []string{
		r.heading.Render(model.ResultsHeading(state.Count())),
		"",
	}
	for _, recipe := range recipes {
		blocks = append(blocks, r.RenderCard(recipe))
	}
	if hidden > 0 {
		blocks = append(blocks, r.hint.Render(formatMore(hidden)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// RenderCard renders one recipe card
func (r *Renderer) RenderCard(recipe model.Recipe) string {
	lines := []string{r.title.Render(recipe.DisplayTitle())}

	if meta := cardMeta(recipe); meta != "" {
		lines = append(lines, r.meta.Render(meta))
	}
	lines = append(lines, "", r.body.Render(recipe.Snippet()))

	if link := recipe.PrimaryLink(); link != "" {
		lines = append(lines, "", ViewRecipeText+": "+r.link.Render(link))
	}
	if recipe.HasVideo() {
		lines = append(lines, WatchVideoText+": "+r.link.Render(recipe.StrYoutube))
	}

	return r.card.Render(strings.Join(lines, "\n"))
}

// cardMeta joins category and area, skipping empty parts
func cardMeta(recipe model.Recipe) string {
	parts := make([]string, 0, 2)
	if recipe.StrCategory != "" {
		parts = append(parts, recipe.StrCategory)
	}
	if recipe.StrArea != "" {
		parts = append(parts, recipe.StrArea)
	}
	return strings.Join(parts, " · ")
}

func formatMore(hidden int) string {
	return fmt.Sprintf(MoreResultsFmt, hidden)
}
