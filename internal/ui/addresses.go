package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// AddressesView manages saved delivery addresses: list, add, edit, delete
// and set-default. Uniqueness of the default flag is backend-owned, so the
// view refetches after every mutation instead of updating flags locally.
type AddressesView struct {
	window fyne.Window
	client *api.Client
	life   lifetime

	addresses []model.Address

	dialog dialog.Dialog
	body   *fyne.Container
}

// NewAddressesView creates the address book view.
func NewAddressesView(window fyne.Window, client *api.Client) *AddressesView {
	return &AddressesView{
		window: window,
		client: client,
	}
}

// Show opens the dialog and loads the address list.
func (v *AddressesView) Show() {
	v.body = container.NewVBox(widget.NewProgressBarInfinite())
	v.dialog = dialog.NewCustom("My Addresses", "Close", container.NewVScroll(v.body), v.window)
	v.dialog.Resize(fyne.NewSize(DetailDialogWidth, CheckoutDialogHeight))
	v.dialog.SetOnClosed(v.life.stop)
	v.dialog.Show()
	v.load()
}

func (v *AddressesView) load() {
	ctx := v.life.next()
	go func() {
		addresses, err := v.client.Addresses.List(ctx)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				showError(v.window, api.ErrorMessage(err, "Failed to load addresses"))
				v.addresses = nil
			} else {
				v.addresses = addresses
			}
			v.render()
		})
	}()
}

// render redraws the address list from the latest server payload.
func (v *AddressesView) render() {
	v.body.RemoveAll()

	if len(v.addresses) == 0 {
		v.body.Add(widget.NewLabelWithStyle("No saved addresses", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
	}

	for _, address := range v.addresses {
		v.body.Add(v.addressCard(address))
		v.body.Add(widget.NewSeparator())
	}

	addBtn := widget.NewButton("Add Address", func() {
		NewAddressForm(v.window, v.client, nil, v.load).Show()
	})
	addBtn.Importance = widget.HighImportance
	v.body.Add(addBtn)
	v.body.Refresh()
}

func (v *AddressesView) addressCard(address model.Address) fyne.CanvasObject {
	label := address.DisplayLabel()
	if address.IsDefault {
		label += " · Default"
	}
	title := widget.NewLabelWithStyle(label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	full := widget.NewLabel(address.FullAddress + ", " + address.City + " " + address.Pincode)
	full.Wrapping = fyne.TextWrapWord

	current := address // capture for closures
	editBtn := widget.NewButton("Edit", func() {
		NewAddressForm(v.window, v.client, &current, v.load).Show()
	})
	editBtn.Importance = widget.LowImportance

	deleteBtn := widget.NewButton("Delete", func() { v.onDeleteClick(current) })
	deleteBtn.Importance = widget.DangerImportance

	actions := container.NewHBox(editBtn, deleteBtn)
	if !address.IsDefault {
		defaultBtn := widget.NewButton("Set Default", func() { v.onSetDefaultClick(current) })
		defaultBtn.Importance = widget.LowImportance
		actions.Add(defaultBtn)
	}

	return container.NewVBox(title, full, actions)
}

func (v *AddressesView) onDeleteClick(address model.Address) {
	confirmAction(v.window, "Delete Address", "Delete "+address.DisplayLabel()+"?", func() {
		ctx := v.life.next()
		go func() {
			err := v.client.Addresses.Delete(ctx, address.ID)
			if ctx.Err() != nil {
				return
			}
			fyne.Do(func() {
				if err != nil {
					showError(v.window, api.ErrorMessage(err, "Failed to delete address"))
					return
				}
				v.load()
			})
		}()
	})
}

func (v *AddressesView) onSetDefaultClick(address model.Address) {
	ctx := v.life.next()
	go func() {
		err := v.client.Addresses.SetDefault(ctx, address.ID)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				showError(v.window, api.ErrorMessage(err, "Failed to set default address"))
				return
			}
			v.load()
		})
	}()
}
