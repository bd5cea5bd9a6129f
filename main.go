package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/config"
	"github.com/freshkart/freshkart/internal/session"
	"github.com/freshkart/freshkart/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "in.freshkart.app"
	AppName = "FreshKart"
)

func main() {
	// Log version information
	fmt.Printf("FreshKart v%s starting...\n", version)

	// A local .env can point the client at a development backend.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFreshTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	store := session.NewStore(myApp)
	client := api.NewClient(settings.APIBaseURL(), store)
	controller := session.NewController(store, client)

	// Create and setup UI, then resolve the persisted session off the UI
	// thread. The controller's change callback swaps the splash out.
	ui.NewRootUI(myWindow, myApp, client, controller)
	go controller.Restore()

	// Show and run
	myWindow.ShowAndRun()
}
