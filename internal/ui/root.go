package ui

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/recipe-finder/internal/config"
	"github.com/ytget/recipe-finder/internal/logging"
	"github.com/ytget/recipe-finder/internal/model"
	"github.com/ytget/recipe-finder/internal/platform"
	"github.com/ytget/recipe-finder/internal/search"
)

// Logo sizing
const (
	RootLogoSize = 32
)

// ThumbnailLoader loads card images in the background
type ThumbnailLoader interface {
	LoadAll(ctx context.Context, recipes []model.Recipe, fn func(recipeID string, res fyne.Resource)) error
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	searchSvc    search.Runner
	thumbs       ThumbnailLoader
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	// Header
	titleLabel *widget.Label
	themeBtn   *widget.Button

	// Hero and search bar
	heroTitle    *widget.Label
	heroSubtitle *widget.Label
	searchEntry  *widget.Entry
	searchBtn    *widget.Button

	results *ResultsView

	// Footer
	footerTitle   *widget.Label
	footerTagline *widget.Label

	state  model.SearchState
	opener func(link string) error

	// Called after the settings dialog stored new values
	onSettingsSaved func(*config.Settings)

	// Background thumbnail loading for the displayed search
	thumbMu     sync.Mutex
	thumbCancel context.CancelFunc
	thumbWG     sync.WaitGroup
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, searchSvc search.Runner, thumbs ThumbnailLoader, logger *zap.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		searchSvc:    searchSvc,
		thumbs:       thumbs,
		settings:     settings,
		localization: localization,
		logger:       logging.OrNop(logger),
		state:        model.NewSearchState(),
	}
	ui.opener = ui.openInBrowser

	window.SetTitle(localization.GetText(KeyAppTitle))
	app.Settings().SetTheme(NewRecipeTheme(settings.GetTheme()))

	// Set up callback for search updates
	ui.searchSvc.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	return ui
}

// SetOpener replaces the function used to open recipe links
func (ui *RootUI) SetOpener(opener func(link string) error) {
	if opener != nil {
		ui.opener = opener
	}
}

// SetOnSettingsSaved registers a hook called after settings were saved
func (ui *RootUI) SetOnSettingsSaved(fn func(*config.Settings)) {
	ui.onSettingsSaved = fn
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Header: logo, title and theme toggle
	logo := canvas.NewImageFromResource(LogoResource)
	logo.SetMinSize(fyne.NewSize(RootLogoSize, RootLogoSize))
	logo.FillMode = canvas.ImageFillContain

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.themeBtn = widget.NewButton(ThemeToggleIcon(ui.settings.GetTheme()), ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(logo, ui.titleLabel),
		container.NewHBox(settingsBtn, ui.themeBtn),
	)

	// Hero
	ui.heroTitle = widget.NewLabel(ui.heroText())
	ui.heroTitle.Alignment = fyne.TextAlignCenter
	ui.heroTitle.TextStyle = fyne.TextStyle{Bold: true}

	ui.heroSubtitle = widget.NewLabel(ui.localization.GetText(KeyHeroSubtitle))
	ui.heroSubtitle.Alignment = fyne.TextAlignCenter
	ui.heroSubtitle.Wrapping = fyne.TextWrapWord

	// Search bar, Enter submits as well
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}
	ui.searchEntry.OnChanged = func(string) {
		ui.updateSearchButton()
	}

	ui.searchBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeySearch), theme.SearchIcon(), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	searchBar := container.NewCenter(fixedWidth(SearchBarWidth,
		container.NewBorder(nil, nil, nil, ui.searchBtn, ui.searchEntry)))

	hero := container.NewVBox(ui.heroTitle, ui.heroSubtitle, searchBar)

	ui.results = NewResultsView(ui.localization, ui.openLink)

	// Footer
	ui.footerTitle = widget.NewLabel(IconChef + " " + ui.localization.GetText(KeyAppTitle))
	ui.footerTitle.Alignment = fyne.TextAlignCenter
	ui.footerTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.footerTagline = widget.NewLabel(ui.localization.GetText(KeyFooterTagline))
	ui.footerTagline.Alignment = fyne.TextAlignCenter
	ui.footerTagline.Importance = widget.LowImportance

	footer := container.NewVBox(widget.NewSeparator(), ui.footerTitle, ui.footerTagline)

	body := container.NewVScroll(container.NewPadded(container.NewVBox(
		hero,
		ui.results.Container(),
		layout.NewSpacer(),
		footer,
	)))

	content := container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil, nil, nil,
		body,
	)

	ui.window.SetContent(content)
	ui.updateSearchButton()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range sortedKeys(availableLanguages) {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	toggleItem := fyne.NewMenuItem(ui.localization.GetText(KeyToggleTheme), ui.onToggleTheme)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), toggleItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.heroTitle.SetText(ui.heroText())
	ui.heroSubtitle.SetText(ui.localization.GetText(KeyHeroSubtitle))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchPlaceholder))
	ui.footerTitle.SetText(IconChef + " " + ui.localization.GetText(KeyAppTitle))
	ui.footerTagline.SetText(ui.localization.GetText(KeyFooterTagline))
	ui.updateSearchButton()

	ui.results.Rebuild()
}

// heroText joins the hero heading and its highlighted word
func (ui *RootUI) heroText() string {
	return ui.localization.GetText(KeyHeroTitle) + " " + ui.localization.GetText(KeyHeroHighlight)
}

// onToggleTheme flips light and dark mode and stores the choice
func (ui *RootUI) onToggleTheme() {
	mode := ui.settings.ToggleTheme()
	ui.applyTheme(mode)
	ui.logger.Debug("theme changed", zap.String("theme", string(mode)))
}

// applyTheme installs the theme for mode and updates the toggle icon
func (ui *RootUI) applyTheme(mode config.ThemeMode) {
	ui.app.Settings().SetTheme(NewRecipeTheme(mode))
	ui.themeBtn.SetText(ThemeToggleIcon(mode))
}

// onSearchClick submits the entry text as a new search action
func (ui *RootUI) onSearchClick() {
	query := ui.searchEntry.Text

	_, err := ui.searchSvc.Submit(query)
	switch {
	case err == nil:
	case errors.Is(err, search.ErrEmptyQuery), errors.Is(err, search.ErrSearchInFlight):
		ui.logger.Debug("search ignored", zap.String("query", query), zap.Error(err))
	default:
		ui.logger.Warn("search rejected", zap.String("query", query), zap.Error(err))
	}
}

// onStateUpdate receives search state changes from the service goroutine
func (ui *RootUI) onStateUpdate(state model.SearchState) {
	fyne.Do(func() {
		ui.applyState(state)
	})
}

// applyState renders state. Must run on the UI goroutine.
func (ui *RootUI) applyState(state model.SearchState) {
	previous := ui.state
	ui.state = state

	if state.ID != previous.ID {
		ui.cancelThumbnails()
	}

	ui.updateSearchButton()
	ui.results.Render(state)

	if state.Status == model.SearchStatusDone && state.Count() > 0 && previous.Status != model.SearchStatusDone {
		ui.loadThumbnails(state)
	}
}

// updateSearchButton disables the button while loading or while the entry
// is blank, and shows the busy label while loading
func (ui *RootUI) updateSearchButton() {
	if ui.state.IsLoading() {
		ui.searchBtn.SetText(ui.localization.GetText(KeySearching))
		ui.searchBtn.Disable()
		return
	}

	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	if strings.TrimSpace(ui.searchEntry.Text) == "" {
		ui.searchBtn.Disable()
	} else {
		ui.searchBtn.Enable()
	}
}

// loadThumbnails fetches card images for state in the background
func (ui *RootUI) loadThumbnails(state model.SearchState) {
	if ui.thumbs == nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ui.thumbMu.Lock()
	ui.thumbCancel = cancel
	ui.thumbMu.Unlock()

	searchID := state.ID
	recipes := state.Recipes

	ui.thumbWG.Add(1)
	go func() {
		defer ui.thumbWG.Done()
		defer cancel()

		err := ui.thumbs.LoadAll(ctx, recipes, func(recipeID string, res fyne.Resource) {
			fyne.Do(func() {
				// Drop images that arrive after another search replaced the grid
				if ui.results.SearchID() == searchID {
					ui.results.SetThumbnail(recipeID, res)
				}
			})
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			ui.logger.Warn("thumbnail loading stopped", zap.String("search_id", searchID), zap.Error(err))
		}
	}()
}

// cancelThumbnails stops loading images for the previous search
func (ui *RootUI) cancelThumbnails() {
	ui.thumbMu.Lock()
	defer ui.thumbMu.Unlock()
	if ui.thumbCancel != nil {
		ui.thumbCancel()
		ui.thumbCancel = nil
	}
}

// WaitThumbnails blocks until background thumbnail loads have finished
func (ui *RootUI) WaitThumbnails() {
	ui.thumbWG.Wait()
}

// Close stops background work started by the window
func (ui *RootUI) Close() {
	ui.cancelThumbnails()
	ui.thumbWG.Wait()
}

// openLink opens link and reports failures in a popup
func (ui *RootUI) openLink(link string) {
	if strings.TrimSpace(link) == "" {
		ui.showPopup(ui.localization.GetText(KeyNoLink))
		return
	}
	if err := ui.opener(link); err != nil {
		ui.logger.Warn("failed to open link", zap.String("link", link), zap.Error(err))
		ui.showPopup(ui.localization.GetText(KeyErrorOpeningLink) + ": " + err.Error())
	}
}

// openInBrowser validates link and hands it to the platform browser
func (ui *RootUI) openInBrowser(link string) error {
	u, err := platform.ValidateLink(link)
	if err != nil {
		return err
	}
	return ui.app.OpenURL(u)
}

// showPopup displays a short message over the window
func (ui *RootUI) showPopup(message string) {
	widget.ShowPopUp(widget.NewLabel(message), ui.window.Canvas())
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsChanged)
}

// onSettingsChanged applies stored settings to the running window
func (ui *RootUI) onSettingsChanged() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.applyTheme(ui.settings.GetTheme())
	ui.refreshUITexts()
	ui.createMenu()

	if ui.onSettingsSaved != nil {
		ui.onSettingsSaved(ui.settings)
	}
}

// State returns the state currently rendered by the window
func (ui *RootUI) State() model.SearchState {
	return ui.state
}

// Results returns the results view
func (ui *RootUI) Results() *ResultsView {
	return ui.results
}

// SearchEntry returns the query entry
func (ui *RootUI) SearchEntry() *widget.Entry {
	return ui.searchEntry
}

// SearchButton returns the search button
func (ui *RootUI) SearchButton() *widget.Button {
	return ui.searchBtn
}

// ThemeButton returns the theme toggle button
func (ui *RootUI) ThemeButton() *widget.Button {
	return ui.themeBtn
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
