package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/config"
)

// SettingsDialog edits the backend connection settings. Changes apply on the
// next app start; the running client keeps its base URL.
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	environmentSelect *widget.Select
	baseURLEntry      *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	environmentOptions := []string{}
	for _, env := range sd.settings.GetEnvironmentOptions() {
		environmentOptions = append(environmentOptions, string(env))
	}
	sd.environmentSelect = widget.NewSelect(environmentOptions, nil)

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder("Leave empty to use the environment URL")

	form := container.NewVBox(
		widget.NewLabel("Backend Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Environment:"),
		sd.environmentSelect,

		widget.NewLabel("Base URL Override:"),
		sd.baseURLEntry,

		widget.NewSeparator(),
		widget.NewLabel("Changes take effect after restarting the app."),
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.environmentSelect.SetSelected(string(sd.settings.GetEnvironment()))
	sd.baseURLEntry.SetText(sd.settings.GetBaseURLOverride())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.environmentSelect.Selected != "" {
		sd.settings.SetEnvironment(config.Environment(sd.environmentSelect.Selected))
	}
	sd.settings.SetBaseURLOverride(sd.baseURLEntry.Text)

	dialog.ShowInformation("Settings", "Settings saved. Restart the app to apply.", sd.window)
}
