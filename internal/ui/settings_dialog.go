package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipe-finder/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 500
	SettingsDialogHeight = 420
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	apiURLEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	parallelEntry  *widget.Entry
	languageSelect *widget.Select
	themeSelect    *widget.Select

	// Form values as loaded, so untouched fields are not written back
	loaded settingsForm

	// Called after the settings were stored
	onSaved func()
}

// settingsForm is a snapshot of the form fields
type settingsForm struct {
	apiURL   string
	timeout  string
	parallel string
	language string
	theme    string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.apiURLEntry = widget.NewEntry()
	sd.apiURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinTimeoutSeconds) + "-" + strconv.Itoa(config.MaxTimeoutSeconds))

	sd.parallelEntry = widget.NewEntry()
	sd.parallelEntry.SetPlaceHolder(strconv.Itoa(config.MinThumbnailParallel) + "-" + strconv.Itoa(config.MaxThumbnailParallel))

	// Language codes in a stable order
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	themeOptions := []string{}
	for _, mode := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(mode))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyAPIBaseURL)+":"),
		sd.apiURLEntry,

		widget.NewLabel(t(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(t(KeyThumbnailParallel)+":"),
		sd.parallelEntry,

		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(t(KeyTheme)+":"),
		sd.themeSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads the stored settings into the UI. Run overrides
// from flags or the environment are not shown.
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.apiURLEntry.SetText(sd.settings.StoredAPIBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.StoredTimeoutSeconds()))
	sd.parallelEntry.SetText(strconv.Itoa(sd.settings.GetThumbnailParallel()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.themeSelect.SetSelected(string(sd.settings.StoredTheme()))
	sd.loaded = sd.form()
}

// form returns the current field values
func (sd *SettingsDialog) form() settingsForm {
	return settingsForm{
		apiURL:   strings.TrimSpace(sd.apiURLEntry.Text),
		timeout:  strings.TrimSpace(sd.timeoutEntry.Text),
		parallel: strings.TrimSpace(sd.parallelEntry.Text),
		language: sd.languageSelect.Selected,
		theme:    sd.themeSelect.Selected,
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// save stores the fields the user changed. Blank or malformed numbers keep
// the stored value.
func (sd *SettingsDialog) save() {
	current := sd.form()

	if current.apiURL != sd.loaded.apiURL {
		sd.settings.SetAPIBaseURL(current.apiURL)
	}

	if current.timeout != sd.loaded.timeout {
		if seconds, err := strconv.Atoi(current.timeout); err == nil {
			sd.settings.SetRequestTimeoutSeconds(seconds)
		}
	}

	if current.parallel != sd.loaded.parallel {
		if parallel, err := strconv.Atoi(current.parallel); err == nil {
			sd.settings.SetThumbnailParallel(parallel)
		}
	}

	if current.language != sd.loaded.language && current.language != "" {
		sd.settings.SetLanguage(current.language)
	}

	if current.theme != sd.loaded.theme {
		if mode, ok := config.ParseTheme(current.theme); ok {
			sd.settings.SetTheme(mode)
		}
	}

	sd.loaded = sd.form()
}

// ShowSettingsDialog creates and shows a settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}
