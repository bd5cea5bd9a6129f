package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/config"
	"github.com/freshkart/freshkart/internal/session"
)

// Tab indexes in the main view
const (
	TabHome = iota
	TabCart
	TabOrders
	TabProfile
)

// RootUI owns the window content. It watches the session controller and
// swaps between the splash, the auth flow and the main tabs; everything
// below it is a Screen.
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	settings *config.Settings
	client   *api.Client
	session  *session.Controller

	tabs    *container.AppTabs
	screens []Screen
}

// NewRootUI creates and wires the main UI.
func NewRootUI(window fyne.Window, app fyne.App, client *api.Client, controller *session.Controller) *RootUI {
	ui := &RootUI{
		window:   window,
		app:      app,
		settings: config.NewSettings(app),
		client:   client,
		session:  controller,
	}

	controller.SetChangeCallback(ui.onSessionChange)
	ui.createMenu()
	ui.render()
	return ui
}

// onSessionChange re-renders after any auth transition. fyne.Do marshals the
// update onto the UI thread; transitions can originate from a 401 on any
// background fetch.
func (ui *RootUI) onSessionChange() {
	fyne.Do(ui.render)
}

// render picks the content for the current session state.
func (ui *RootUI) render() {
	switch {
	case ui.session.IsLoading():
		ui.window.SetContent(ui.splash())
	case !ui.session.IsAuthenticated():
		ui.tabs = nil
		ui.screens = nil
		ui.window.SetContent(ui.authFlow())
	default:
		if ui.tabs == nil {
			ui.buildTabs()
		}
		ui.window.SetContent(ui.tabs)
		ui.refreshSelected()
	}
}

// splash is shown while the persisted session is being restored.
func (ui *RootUI) splash() fyne.CanvasObject {
	spinner := widget.NewProgressBarInfinite()
	label := widget.NewLabelWithStyle("FreshKart", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	return container.NewCenter(container.NewVBox(label, spinner))
}

// authFlow shows login with a switch to register and back.
func (ui *RootUI) authFlow() fyne.CanvasObject {
	content := container.NewStack()

	var login, register fyne.CanvasObject
	login = NewLoginScreen(ui.window, ui.session, func() {
		content.Objects = []fyne.CanvasObject{register}
		content.Refresh()
	}).Content()
	register = NewRegisterScreen(ui.window, ui.session, func() {
		content.Objects = []fyne.CanvasObject{login}
		content.Refresh()
	}).Content()

	content.Objects = []fyne.CanvasObject{login}
	return content
}

// buildTabs creates the four main screens. Re-selecting a tab refetches its
// data, mirroring a navigation focus regain.
func (ui *RootUI) buildTabs() {
	home := NewHomeScreen(ui.window, ui.client)
	cart := NewCartScreen(ui.window, ui.client)
	orders := NewOrdersScreen(ui.window, ui.client)
	profile := NewProfileScreen(ui.window, ui.client, ui.session)

	// Checkout is reached from the cart and returns to orders on success.
	cart.SetCheckoutHandler(func() {
		NewCheckoutScreen(ui.window, ui.client, func() {
			ui.tabs.SelectIndex(TabOrders)
		}).Show()
	})

	ui.screens = []Screen{home, cart, orders, profile}
	ui.tabs = container.NewAppTabs(
		container.NewTabItem("Home", home.Content()),
		container.NewTabItem("Cart", cart.Content()),
		container.NewTabItem("Orders", orders.Content()),
		container.NewTabItem("Profile", profile.Content()),
	)
	ui.tabs.SetTabLocation(container.TabLocationBottom)
	ui.tabs.OnSelected = func(*container.TabItem) {
		ui.refreshSelected()
	}

	log.Printf("ui: main tabs initialized")
}

// refreshSelected refetches the data behind the visible tab.
func (ui *RootUI) refreshSelected() {
	if ui.tabs == nil {
		return
	}
	index := ui.tabs.SelectedIndex()
	if index >= 0 && index < len(ui.screens) {
		ui.screens[index].Refresh()
	}
}

// createMenu creates the application menu.
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", func() {
		NewSettingsDialog(ui.settings, ui.window).Show()
	})

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)
	ui.window.SetMainMenu(mainMenu)
}
