package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/model"
	"github.com/freshkart/freshkart/internal/session"
)

// LoginScreen is the sign-in form of the auth flow.
type LoginScreen struct {
	window     fyne.Window
	session    *session.Controller
	onRegister func()

	phoneEntry    *widget.Entry
	passwordEntry *widget.Entry
	loginBtn      *widget.Button
}

// NewLoginScreen creates the login screen. onRegister switches to the
// registration form.
func NewLoginScreen(window fyne.Window, controller *session.Controller, onRegister func()) *LoginScreen {
	return &LoginScreen{
		window:     window,
		session:    controller,
		onRegister: onRegister,
	}
}

// Content builds the login form.
func (s *LoginScreen) Content() fyne.CanvasObject {
	s.phoneEntry = widget.NewEntry()
	s.phoneEntry.SetPlaceHolder("Enter your phone number")

	s.passwordEntry = widget.NewPasswordEntry()
	s.passwordEntry.SetPlaceHolder("Enter your password")
	s.passwordEntry.OnSubmitted = func(string) { s.onLoginClick() }

	s.loginBtn = widget.NewButton("Login", s.onLoginClick)
	s.loginBtn.Importance = widget.HighImportance

	registerLink := widget.NewButton("New here? Create an account", s.onRegister)
	registerLink.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle("FreshKart", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	subtitle := widget.NewLabelWithStyle("Groceries in minutes", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	form := container.NewVBox(
		title,
		subtitle,
		widget.NewLabel("Phone"),
		s.phoneEntry,
		widget.NewLabel("Password"),
		s.passwordEntry,
		s.loginBtn,
		registerLink,
	)
	return container.NewCenter(container.NewGridWrap(fyne.NewSize(LoginFormWidth, LoginFormHeight), form))
}

// Refresh is a no-op; the form holds no server state.
func (s *LoginScreen) Refresh() {}

// onLoginClick validates locally, then signs in off the UI thread.
func (s *LoginScreen) onLoginClick() {
	form := model.LoginForm{
		Phone:    s.phoneEntry.Text,
		Password: s.passwordEntry.Text,
	}
	if err := form.Validate(); err != nil {
		showError(s.window, err.Error())
		return
	}

	s.loginBtn.Disable()
	go func() {
		result := s.session.Login(context.Background(), form)
		fyne.Do(func() {
			s.loginBtn.Enable()
			if !result.Success {
				showError(s.window, result.Message)
			}
		})
	}()
}
