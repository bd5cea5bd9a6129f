package ui

import (
	"context"
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Screen is a tab page: it renders once and refetches whenever it regains
// focus.
type Screen interface {
	Content() fyne.CanvasObject
	Refresh()
}

// lifetime ties in-flight fetches to a screen's visible span. Every next()
// cancels whatever was still running, so a late response can never write
// into a screen the user has already left.
type lifetime struct {
	mu     sync.Mutex
	cancel context.CancelFunc
}

// next cancels the previous fetch context and starts a fresh one.
func (l *lifetime) next() context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	return ctx
}

// stop cancels any outstanding fetch.
func (l *lifetime) stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// showError surfaces a failure as a blocking alert.
func showError(window fyne.Window, message string) {
	dialog.ShowError(errors.New(message), window)
}

// showInfo surfaces a notice as a blocking alert.
func showInfo(window fyne.Window, title, message string) {
	dialog.ShowInformation(title, message, window)
}

// confirmAction asks before a destructive step and runs onConfirm only on
// explicit approval.
func confirmAction(window fyne.Window, title, message string, onConfirm func()) {
	dialog.ShowConfirm(title, message, func(confirmed bool) {
		if confirmed {
			onConfirm()
		}
	}, window)
}
