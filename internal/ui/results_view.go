package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/model"
)

// ResultsView renders the status area and the card grid for a search state
type ResultsView struct {
	localization *Localization
	onOpen       func(link string)

	// Loading
	loadingBox     *fyne.Container
	loadingSpinner *widget.ProgressBarInfinite
	loadingLabel   *widget.Label

	// Error
	errorBox   *fyne.Container
	errorLabel *widget.Label

	// Empty state
	emptyBox   *fyne.Container
	emptyTitle *widget.Label
	emptyHint  *widget.Label

	// Results
	resultsBox   *fyne.Container
	headingLabel *widget.Label
	hintLabel    *widget.Label
	grid         *fyne.Container

	content *fyne.Container

	state      model.SearchState
	renderedID string
	cards      []*RecipeCard
	thumbnails map[string]fyne.Resource
}

// NewResultsView creates an empty results view
func NewResultsView(localization *Localization, onOpen func(link string)) *ResultsView {
	rv := &ResultsView{
		localization: localization,
		onOpen:       onOpen,
		state:        model.NewSearchState(),
		thumbnails:   make(map[string]fyne.Resource),
	}
	rv.createUI()
	rv.Render(rv.state)
	return rv
}

// Container returns the view's root object
func (rv *ResultsView) Container() *fyne.Container {
	return rv.content
}

// createUI creates all status boxes and the grid
func (rv *ResultsView) createUI() {
	rv.loadingSpinner = widget.NewProgressBarInfinite()
	rv.loadingLabel = widget.NewLabel("")
	rv.loadingLabel.Alignment = fyne.TextAlignCenter
	rv.loadingBox = container.NewCenter(fixedWidth(StatusBoxWidth, container.NewVBox(rv.loadingSpinner, rv.loadingLabel)))

	rv.errorLabel = widget.NewLabel("")
	rv.errorLabel.Alignment = fyne.TextAlignCenter
	rv.errorLabel.Importance = widget.DangerImportance
	rv.errorLabel.Wrapping = fyne.TextWrapWord
	rv.errorBox = container.NewCenter(statusPanel(theme.ColorNameError, rv.errorLabel))

	rv.emptyTitle = widget.NewLabel("")
	rv.emptyTitle.Alignment = fyne.TextAlignCenter
	rv.emptyTitle.TextStyle = fyne.TextStyle{Bold: true}
	rv.emptyHint = widget.NewLabel("")
	rv.emptyHint.Alignment = fyne.TextAlignCenter
	rv.emptyHint.Wrapping = fyne.TextWrapWord
	rv.emptyHint.Importance = widget.LowImportance
	rv.emptyBox = container.NewCenter(statusPanel(theme.ColorNameSeparator, container.NewVBox(rv.emptyTitle, rv.emptyHint)))

	rv.headingLabel = widget.NewLabel("")
	rv.headingLabel.Alignment = fyne.TextAlignCenter
	rv.headingLabel.TextStyle = fyne.TextStyle{Bold: true}
	rv.hintLabel = widget.NewLabel("")
	rv.hintLabel.Alignment = fyne.TextAlignCenter
	rv.hintLabel.Importance = widget.LowImportance
	rv.grid = container.New(newResponsiveGrid(fyne.CurrentDevice().IsMobile()))
	rv.resultsBox = container.NewVBox(rv.headingLabel, rv.hintLabel, rv.grid)

	rv.content = container.NewVBox(rv.loadingBox, rv.errorBox, rv.emptyBox, rv.resultsBox)
	rv.refreshTexts()
}

// Render shows the boxes that match state. Cards are rebuilt only when a new
// search finishes.
func (rv *ResultsView) Render(state model.SearchState) {
	if state.ID != rv.state.ID {
		rv.thumbnails = make(map[string]fyne.Resource)
	}
	rv.state = state

	if state.IsLoading() {
		rv.loadingBox.Show()
		rv.loadingSpinner.Start()
	} else {
		rv.loadingSpinner.Stop()
		rv.loadingBox.Hide()
	}

	if state.HasError() {
		rv.errorBox.Show()
	} else {
		rv.errorBox.Hide()
	}

	if state.ShowEmpty() {
		rv.emptyBox.Show()
	} else {
		rv.emptyBox.Hide()
	}

	if state.ShowResults() {
		if rv.renderedID != state.ID {
			rv.buildCards()
		}
		rv.headingLabel.SetText(rv.localization.ResultsHeading(state.Count()))
		rv.resultsBox.Show()
	} else {
		rv.clearCards()
		rv.resultsBox.Hide()
	}

	rv.content.Refresh()
}

// Rebuild re-renders the current state from scratch, e.g. after the language
// changed. Loaded thumbnails are kept.
func (rv *ResultsView) Rebuild() {
	rv.refreshTexts()
	rv.renderedID = ""
	rv.Render(rv.state)
}

// SearchID returns the ID of the search currently displayed
func (rv *ResultsView) SearchID() string {
	return rv.state.ID
}

// SetThumbnail shows res on every card of recipeID
func (rv *ResultsView) SetThumbnail(recipeID string, res fyne.Resource) {
	rv.thumbnails[recipeID] = res
	for _, card := range rv.cards {
		if card.Recipe().IDMeal == recipeID {
			card.SetImage(res)
		}
	}
}

// Cards returns the cards currently displayed
func (rv *ResultsView) Cards() []*RecipeCard {
	return rv.cards
}

// buildCards creates one card per recipe, in API order
func (rv *ResultsView) buildCards() {
	rv.cards = make([]*RecipeCard, 0, len(rv.state.Recipes))
	objects := make([]fyne.CanvasObject, 0, len(rv.state.Recipes))

	for _, recipe := range rv.state.Recipes {
		card := NewRecipeCard(recipe, rv.localization, rv.onOpen)
		if res, ok := rv.thumbnails[recipe.IDMeal]; ok {
			card.SetImage(res)
		}
		rv.cards = append(rv.cards, card)
		objects = append(objects, card)
	}

	rv.grid.Objects = objects
	rv.grid.Refresh()
	rv.renderedID = rv.state.ID
}

// clearCards drops all cards from the grid
func (rv *ResultsView) clearCards() {
	rv.cards = nil
	rv.grid.Objects = nil
	rv.renderedID = ""
}

// refreshTexts applies the current language to the static labels
func (rv *ResultsView) refreshTexts() {
	rv.loadingLabel.SetText(rv.localization.GetText(KeyLoading))
	rv.errorLabel.SetText(rv.localization.GetText(KeyFetchFailed))
	rv.emptyTitle.SetText(rv.localization.GetText(KeyNoResults))
	rv.emptyHint.SetText(rv.localization.GetText(KeyNoResultsHint))
	rv.hintLabel.SetText(rv.localization.GetText(KeyResultsHint))
}

// fixedWidth pins obj to at least w using a transparent rectangle underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(nil)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

// statusPanel frames content in a rounded box outlined with the border color
func statusPanel(border fyne.ThemeColorName, content fyne.CanvasObject) fyne.CanvasObject {
	frame := canvas.NewRectangle(themeColor(theme.ColorNameInputBackground))
	frame.StrokeColor = themeColor(border)
	frame.StrokeWidth = CardStrokeWidth
	frame.CornerRadius = CardCornerRadius
	frame.SetMinSize(fyne.NewSize(StatusBoxWidth, 0))
	return container.NewStack(frame, container.NewPadded(content))
}
