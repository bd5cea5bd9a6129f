package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/model"
	"github.com/freshkart/freshkart/internal/session"
)

// RegisterScreen is the account creation form of the auth flow.
type RegisterScreen struct {
	window  fyne.Window
	session *session.Controller
	onLogin func()

	nameEntry     *widget.Entry
	phoneEntry    *widget.Entry
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	registerBtn   *widget.Button
}

// NewRegisterScreen creates the registration screen. onLogin switches back
// to the login form.
func NewRegisterScreen(window fyne.Window, controller *session.Controller, onLogin func()) *RegisterScreen {
	return &RegisterScreen{
		window:  window,
		session: controller,
		onLogin: onLogin,
	}
}

// Content builds the registration form.
func (s *RegisterScreen) Content() fyne.CanvasObject {
	s.nameEntry = widget.NewEntry()
	s.nameEntry.SetPlaceHolder("Enter your name")

	s.phoneEntry = widget.NewEntry()
	s.phoneEntry.SetPlaceHolder("Enter your phone number")

	s.emailEntry = widget.NewEntry()
	s.emailEntry.SetPlaceHolder("Enter your email (optional)")

	s.passwordEntry = widget.NewPasswordEntry()
	s.passwordEntry.SetPlaceHolder("Create a password")
	s.passwordEntry.OnSubmitted = func(string) { s.onRegisterClick() }

	s.registerBtn = widget.NewButton("Create Account", s.onRegisterClick)
	s.registerBtn.Importance = widget.HighImportance

	loginLink := widget.NewButton("Already have an account? Login", s.onLogin)
	loginLink.Importance = widget.LowImportance

	title := widget.NewLabelWithStyle("Create your account", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	form := container.NewVBox(
		title,
		widget.NewLabel("Name"),
		s.nameEntry,
		widget.NewLabel("Phone"),
		s.phoneEntry,
		widget.NewLabel("Email"),
		s.emailEntry,
		widget.NewLabel("Password"),
		s.passwordEntry,
		s.registerBtn,
		loginLink,
	)
	return container.NewCenter(container.NewGridWrap(fyne.NewSize(LoginFormWidth, RegisterFormHeight), form))
}

// Refresh is a no-op; the form holds no server state.
func (s *RegisterScreen) Refresh() {}

// onRegisterClick validates locally, then registers off the UI thread. A
// successful registration signs the customer in directly.
func (s *RegisterScreen) onRegisterClick() {
	form := model.RegisterForm{
		Name:     s.nameEntry.Text,
		Phone:    s.phoneEntry.Text,
		Email:    s.emailEntry.Text,
		Password: s.passwordEntry.Text,
	}
	if err := form.Validate(); err != nil {
		showError(s.window, err.Error())
		return
	}

	s.registerBtn.Disable()
	go func() {
		result := s.session.Register(context.Background(), form)
		fyne.Do(func() {
			s.registerBtn.Enable()
			if !result.Success {
				showError(s.window, result.Message)
			}
		})
	}()
}
