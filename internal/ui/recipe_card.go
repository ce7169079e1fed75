package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/thumbnail"
)

// RecipeCard shows one search result. Tapping anywhere on the card opens the
// recipe's primary link.
type RecipeCard struct {
	widget.BaseWidget

	recipe       model.Recipe
	localization *Localization

	// UI components
	image        *canvas.Image
	favoriteBtn  *widget.Button
	titleLabel   *widget.Label
	metaLabel    *widget.Label
	snippetLabel *widget.Label
	viewBtn      *widget.Button
	videoBtn     *widget.Button

	// Callbacks
	onOpen func(link string)
}

// NewRecipeCard creates a new card for recipe
func NewRecipeCard(recipe model.Recipe, localization *Localization, onOpen func(link string)) *RecipeCard {
	rc := &RecipeCard{
		recipe:       recipe,
		localization: localization,
		onOpen:       onOpen,
	}
	rc.ExtendBaseWidget(rc)
	rc.createUI()
	return rc
}

// Recipe returns the recipe shown by the card
func (rc *RecipeCard) Recipe() model.Recipe {
	return rc.recipe
}

// SetImage replaces the thumbnail
func (rc *RecipeCard) SetImage(res fyne.Resource) {
	if res == nil {
		res = thumbnail.Placeholder
	}
	rc.image.Resource = res
	rc.image.Refresh()
}

// Image returns the thumbnail currently displayed
func (rc *RecipeCard) Image() fyne.Resource {
	return rc.image.Resource
}

// Tapped opens the primary link of the recipe
func (rc *RecipeCard) Tapped(_ *fyne.PointEvent) {
	rc.open(rc.recipe.PrimaryLink())
}

// createUI creates the card components
func (rc *RecipeCard) createUI() {
	rc.image = canvas.NewImageFromResource(thumbnail.Placeholder)
	rc.image.FillMode = canvas.ImageFillContain
	rc.image.SetMinSize(fyne.NewSize(CardImageWidth, CardImageHeight))

	// Decorative only, favorites are not stored
	rc.favoriteBtn = widget.NewButton(IconHeart, nil)
	rc.favoriteBtn.Importance = widget.LowImportance

	rc.titleLabel = widget.NewLabel(rc.recipe.DisplayTitle())
	rc.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rc.titleLabel.Wrapping = fyne.TextWrapWord

	rc.metaLabel = widget.NewLabel(formatMeta(rc.recipe))
	rc.metaLabel.Importance = widget.LowImportance
	rc.metaLabel.Truncation = fyne.TextTruncateEllipsis

	rc.snippetLabel = widget.NewLabel(rc.recipe.Snippet())
	rc.snippetLabel.Wrapping = fyne.TextWrapWord

	rc.viewBtn = widget.NewButton(rc.localization.GetText(KeyViewRecipe)+" "+IconLink, func() {
		rc.open(rc.recipe.PrimaryLink())
	})
	rc.viewBtn.Importance = widget.HighImportance

	rc.videoBtn = widget.NewButton(IconVideo+" "+rc.localization.GetText(KeyWatchVideo), func() {
		rc.open(rc.recipe.StrYoutube)
	})
	if !rc.recipe.HasVideo() {
		rc.videoBtn.Hide()
	}
}

// open forwards link to the open callback. An empty link is forwarded too so
// the window can tell the user the recipe has none.
func (rc *RecipeCard) open(link string) {
	if rc.onOpen == nil {
		return
	}
	rc.onOpen(strings.TrimSpace(link))
}

// formatMeta joins the icon-prefixed category and area, skipping empty parts
func formatMeta(recipe model.Recipe) string {
	parts := make([]string, 0, 2)
	if recipe.StrCategory != "" {
		parts = append(parts, IconCategory+" "+recipe.StrCategory)
	}
	if recipe.StrArea != "" {
		parts = append(parts, IconArea+" "+recipe.StrArea)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// CreateRenderer creates the widget renderer
func (rc *RecipeCard) CreateRenderer() fyne.WidgetRenderer {
	r := &recipeCardRenderer{card: rc}
	r.createLayout()
	return r
}

// recipeCardRenderer renders a card on a rounded, outlined background
type recipeCardRenderer struct {
	card       *RecipeCard
	background *canvas.Rectangle
	layout     *fyne.Container
}

// Layout arranges the components
func (r *recipeCardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.layout.Move(fyne.NewPos(0, 0))
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *recipeCardRenderer) MinSize() fyne.Size {
	size := r.layout.MinSize()
	return fyne.NewSize(max(size.Width, CardMinWidth), size.Height)
}

// Refresh refreshes the renderer
func (r *recipeCardRenderer) Refresh() {
	r.background.FillColor = themeColor(theme.ColorNameInputBackground)
	r.background.StrokeColor = themeColor(theme.ColorNameSeparator)
	r.background.Refresh()
	r.layout.Refresh()
}

// Objects returns the card objects
func (r *recipeCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.layout}
}

// Destroy cleans up the renderer
func (r *recipeCardRenderer) Destroy() {}

// createLayout builds the background and the card content
func (r *recipeCardRenderer) createLayout() {
	rc := r.card

	r.background = canvas.NewRectangle(themeColor(theme.ColorNameInputBackground))
	r.background.StrokeColor = themeColor(theme.ColorNameSeparator)
	r.background.StrokeWidth = CardStrokeWidth
	r.background.CornerRadius = CardCornerRadius

	// Heart floats over the top right corner of the image
	imageArea := container.NewStack(
		rc.image,
		container.NewVBox(container.NewHBox(layout.NewSpacer(), rc.favoriteBtn)),
	)

	actions := container.NewHBox(rc.viewBtn, rc.videoBtn)

	r.layout = container.NewPadded(container.NewVBox(
		imageArea,
		rc.titleLabel,
		rc.metaLabel,
		rc.snippetLabel,
		actions,
	))
}
