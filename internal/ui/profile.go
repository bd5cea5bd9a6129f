package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
	"github.com/freshkart/freshkart/internal/session"
)

// ProfileScreen shows the signed-in customer and hosts account actions:
// edit profile, change password, manage addresses and logout.
type ProfileScreen struct {
	window     fyne.Window
	client     *api.Client
	controller *session.Controller
	life       lifetime

	nameLabel  *widget.Label
	phoneLabel *widget.Label
	emailLabel *widget.Label

	contentBound fyne.CanvasObject
}

// NewProfileScreen creates the profile screen.
func NewProfileScreen(window fyne.Window, client *api.Client, controller *session.Controller) *ProfileScreen {
	return &ProfileScreen{
		window:     window,
		client:     client,
		controller: controller,
	}
}

// Content builds the profile layout.
func (s *ProfileScreen) Content() fyne.CanvasObject {
	if s.contentBound != nil {
		return s.contentBound
	}

	s.nameLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.phoneLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	s.emailLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})

	editBtn := widget.NewButton("Edit Profile", s.onEditClick)
	passwordBtn := widget.NewButton("Change Password", s.onChangePasswordClick)
	addressesBtn := widget.NewButton("My Addresses", func() {
		NewAddressesView(s.window, s.client).Show()
	})
	logoutBtn := widget.NewButton("Logout", s.onLogoutClick)
	logoutBtn.Importance = widget.DangerImportance

	s.contentBound = container.NewVBox(
		widget.NewSeparator(),
		s.nameLabel,
		s.phoneLabel,
		s.emailLabel,
		widget.NewSeparator(),
		editBtn,
		passwordBtn,
		addressesBtn,
		widget.NewSeparator(),
		logoutBtn,
	)
	return s.contentBound
}

// Refresh re-reads the cached profile. The profile lives in the session, so
// there is no fetch here; edits go through the controller which notifies the
// root UI.
func (s *ProfileScreen) Refresh() {
	user := s.controller.User()
	if user == nil {
		return
	}
	s.nameLabel.SetText(user.Name)
	s.phoneLabel.SetText(user.Phone)
	if user.Email != "" {
		s.emailLabel.SetText(user.Email)
		s.emailLabel.Show()
	} else {
		s.emailLabel.Hide()
	}
}

// onEditClick opens a small form for the editable profile fields.
func (s *ProfileScreen) onEditClick() {
	user := s.controller.User()
	if user == nil {
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(user.Name)
	emailEntry := widget.NewEntry()
	emailEntry.SetText(user.Email)
	emailEntry.SetPlaceHolder("Email (optional)")

	form := container.NewVBox(
		widget.NewLabel("Name:"),
		nameEntry,
		widget.NewLabel("Email:"),
		emailEntry,
	)

	dialog.ShowCustomConfirm("Edit Profile", "Save", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}
		patch := model.ProfilePatch{Name: nameEntry.Text, Email: emailEntry.Text}
		if len(patch.Name) < model.MinNameLength {
			showError(s.window, "Name must be at least 2 characters")
			return
		}
		ctx := s.life.next()
		go func() {
			result := s.controller.UpdateProfile(ctx, patch)
			if ctx.Err() != nil {
				return
			}
			fyne.Do(func() {
				if !result.Success {
					showError(s.window, result.Message)
					return
				}
				s.Refresh()
				showInfo(s.window, "Profile", "Profile updated successfully")
			})
		}()
	}, s.window)
}

// onChangePasswordClick asks for the current and new password, enforcing the
// same length rule as registration before the request goes out.
func (s *ProfileScreen) onChangePasswordClick() {
	currentEntry := widget.NewPasswordEntry()
	currentEntry.SetPlaceHolder("Current password")
	newEntry := widget.NewPasswordEntry()
	newEntry.SetPlaceHolder("New password")

	form := container.NewVBox(
		widget.NewLabel("Current Password:"),
		currentEntry,
		widget.NewLabel("New Password:"),
		newEntry,
	)

	dialog.ShowCustomConfirm("Change Password", "Change", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}
		if len(newEntry.Text) < model.MinPasswordLength {
			showError(s.window, "Password must be at least 6 characters")
			return
		}
		ctx := s.life.next()
		current, updated := currentEntry.Text, newEntry.Text
		go func() {
			err := s.client.Auth.ChangePassword(ctx, current, updated)
			if ctx.Err() != nil {
				return
			}
			fyne.Do(func() {
				if err != nil {
					showError(s.window, api.ErrorMessage(err, "Failed to change password"))
					return
				}
				showInfo(s.window, "Password", "Password changed successfully")
			})
		}()
	}, s.window)
}

// onLogoutClick confirms and signs out. The controller clears the session
// whatever the backend answers, and the root UI swaps to the login flow.
func (s *ProfileScreen) onLogoutClick() {
	confirmAction(s.window, "Logout", "Are you sure you want to logout?", func() {
		ctx := s.life.next()
		go func() {
			s.controller.Logout(ctx)
		}()
	})
}
