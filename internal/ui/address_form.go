package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// AddressForm adds or edits one delivery address. All field rules are
// checked locally before any request is made; the serviceability check is
// the one thing that has to ask the backend.
type AddressForm struct {
	window  fyne.Window
	client  *api.Client
	editing *model.Address
	onSaved func()
	life    lifetime

	dialog dialog.Dialog

	typeSelect    *widget.Select
	labelEntry    *widget.Entry
	addressEntry  *widget.Entry
	landmarkEntry *widget.Entry
	pincodeEntry  *widget.Entry
	pincodeHint   *widget.Label
	cityEntry     *widget.Entry
	stateEntry    *widget.Entry
	saveBtn       *widget.Button
}

// NewAddressForm creates the form. A nil address means "add new"; otherwise
// the form edits the given address in place. onSaved runs after a
// successful save.
func NewAddressForm(window fyne.Window, client *api.Client, address *model.Address, onSaved func()) *AddressForm {
	f := &AddressForm{
		window:  window,
		client:  client,
		editing: address,
		onSaved: onSaved,
	}
	f.createUI()
	return f
}

// Show opens the form dialog.
func (f *AddressForm) Show() {
	f.dialog.Show()
}

func (f *AddressForm) createUI() {
	options := make([]string, 0, 3)
	for _, t := range model.AddressTypeOptions() {
		options = append(options, string(t))
	}
	f.typeSelect = widget.NewSelect(options, nil)
	f.typeSelect.SetSelected(string(model.AddressTypeHome))

	f.labelEntry = widget.NewEntry()
	f.labelEntry.SetPlaceHolder("e.g. Parents' place (optional)")

	f.addressEntry = widget.NewMultiLineEntry()
	f.addressEntry.SetPlaceHolder("House no, street, area")
	f.addressEntry.SetMinRowsVisible(3)

	f.landmarkEntry = widget.NewEntry()
	f.landmarkEntry.SetPlaceHolder("Nearby landmark (optional)")

	f.pincodeEntry = widget.NewEntry()
	f.pincodeEntry.SetPlaceHolder("6-digit pincode")
	f.pincodeHint = widget.NewLabel("")
	f.pincodeHint.Hide()
	checkBtn := widget.NewButton("Check", f.onCheckPincode)
	checkBtn.Importance = widget.LowImportance
	pincodeRow := container.NewBorder(nil, nil, nil, checkBtn, f.pincodeEntry)

	f.cityEntry = widget.NewEntry()
	f.cityEntry.SetPlaceHolder("City")
	f.stateEntry = widget.NewEntry()
	f.stateEntry.SetPlaceHolder("State")

	f.saveBtn = widget.NewButton("Save Address", f.onSave)
	f.saveBtn.Importance = widget.HighImportance

	title := "Add Address"
	if f.editing != nil {
		title = "Edit Address"
		f.typeSelect.SetSelected(string(f.editing.Type))
		f.labelEntry.SetText(f.editing.Label)
		f.addressEntry.SetText(f.editing.FullAddress)
		f.landmarkEntry.SetText(f.editing.Landmark)
		f.pincodeEntry.SetText(f.editing.Pincode)
		f.cityEntry.SetText(f.editing.City)
		f.stateEntry.SetText(f.editing.State)
	}

	form := container.NewVBox(
		widget.NewLabel("Type:"),
		f.typeSelect,
		widget.NewLabel("Label:"),
		f.labelEntry,
		widget.NewLabel("Full Address:"),
		f.addressEntry,
		widget.NewLabel("Landmark:"),
		f.landmarkEntry,
		widget.NewLabel("Pincode:"),
		pincodeRow,
		f.pincodeHint,
		widget.NewLabel("City:"),
		f.cityEntry,
		widget.NewLabel("State:"),
		f.stateEntry,
		widget.NewSeparator(),
		f.saveBtn,
	)

	f.dialog = dialog.NewCustom(title, "Cancel", container.NewVScroll(form), f.window)
	f.dialog.Resize(fyne.NewSize(DetailDialogWidth, CheckoutDialogHeight))
	f.dialog.SetOnClosed(f.life.stop)
}

// collect assembles an address from the form fields, keeping the id of the
// address being edited.
func (f *AddressForm) collect() model.Address {
	address := model.Address{
		Type:        model.AddressType(f.typeSelect.Selected),
		Label:       f.labelEntry.Text,
		FullAddress: f.addressEntry.Text,
		Landmark:    f.landmarkEntry.Text,
		Pincode:     f.pincodeEntry.Text,
		City:        f.cityEntry.Text,
		State:       f.stateEntry.Text,
	}
	if f.editing != nil {
		address.ID = f.editing.ID
		address.IsDefault = f.editing.IsDefault
		address.Country = f.editing.Country
	}
	return address
}

// onCheckPincode asks the backend whether the entered pincode is inside the
// delivery area. Purely advisory; saving does not require it.
func (f *AddressForm) onCheckPincode() {
	pincode := f.pincodeEntry.Text
	if !model.ValidPincode(pincode) {
		showError(f.window, "Please enter a valid 6-digit pincode")
		return
	}
	ctx := f.life.next()
	go func() {
		info, err := f.client.Addresses.Validate(ctx, pincode)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				showError(f.window, api.ErrorMessage(err, "Failed to check pincode"))
				return
			}
			if info.Serviceable {
				f.pincodeHint.SetText("Deliverable area")
				if info.City != "" {
					f.cityEntry.SetText(info.City)
				}
				if info.State != "" {
					f.stateEntry.SetText(info.State)
				}
			} else {
				f.pincodeHint.SetText("Sorry, we do not deliver to this pincode yet")
			}
			f.pincodeHint.Show()
		})
	}()
}

// onSave validates locally and persists through the matching endpoint.
func (f *AddressForm) onSave() {
	address := f.collect()
	if err := address.Validate(); err != nil {
		showError(f.window, err.Error())
		return
	}

	f.saveBtn.Disable()
	ctx := f.life.next()
	go func() {
		var err error
		if f.editing != nil {
			_, err = f.client.Addresses.Update(ctx, address)
		} else {
			_, err = f.client.Addresses.Add(ctx, address)
		}
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			f.saveBtn.Enable()
			if err != nil {
				showError(f.window, api.ErrorMessage(err, "Failed to save address"))
				return
			}
			f.dialog.Hide()
			if f.onSaved != nil {
				f.onSaved()
			}
		})
	}()
}
