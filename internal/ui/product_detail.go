package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// ProductDetail shows one catalog item with a quantity stepper. It always
// refetches the item by id instead of reusing the listing copy, so stock
// and price are current.
type ProductDetail struct {
	window fyne.Window
	client *api.Client
	itemID int
	life   lifetime

	quantity int
	qtyLabel *widget.Label
	dialog   dialog.Dialog
	body     *fyne.Container
}

// NewProductDetail creates the detail view for the given item id.
func NewProductDetail(window fyne.Window, client *api.Client, itemID int) *ProductDetail {
	return &ProductDetail{
		window:   window,
		client:   client,
		itemID:   itemID,
		quantity: 1,
	}
}

// Show opens the dialog and starts the fetch.
func (d *ProductDetail) Show() {
	d.body = container.NewVBox(widget.NewProgressBarInfinite())
	d.dialog = dialog.NewCustom("Product", "Close", container.NewVScroll(d.body), d.window)
	d.dialog.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
	d.dialog.SetOnClosed(d.life.stop)
	d.dialog.Show()

	ctx := d.life.next()
	go func() {
		item, err := d.client.Items.Get(ctx, d.itemID)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				d.body.RemoveAll()
				d.body.Add(widget.NewLabel(api.ErrorMessage(err, "Failed to load product")))
				d.body.Refresh()
				return
			}
			d.render(item)
		})
	}()
}

// render replaces the loading placeholder with the item view.
func (d *ProductDetail) render(item model.Item) {
	ctx := d.life.next()

	name := widget.NewLabelWithStyle(item.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	category := widget.NewLabel(item.Category)

	priceRow := container.NewHBox(widget.NewLabelWithStyle(formatPrice(item.DiscountedPrice()), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	if item.Discount > 0 {
		was := widget.NewLabel(fmt.Sprintf("was %s (%.0f%% off)", formatPrice(item.Price), item.Discount))
		was.TextStyle = fyne.TextStyle{Italic: true}
		priceRow.Add(was)
	}

	unit := widget.NewLabel(item.Unit)
	description := widget.NewLabel(item.Description)
	description.Wrapping = fyne.TextWrapWord

	stock := widget.NewLabel(fmt.Sprintf("%d in stock", item.Stock))
	if !item.InStock() {
		stock.SetText("Out of stock")
	}

	d.qtyLabel = widget.NewLabelWithStyle(strconv.Itoa(d.quantity), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	minus := widget.NewButton("-", func() { d.step(-1) })
	plus := widget.NewButton("+", func() { d.step(1) })
	stepper := container.NewHBox(widget.NewLabel("Quantity"), minus, d.qtyLabel, plus)

	addBtn := widget.NewButton("Add to Cart", func() { d.onAddToCart(item) })
	addBtn.Importance = widget.HighImportance
	if !item.InStock() {
		addBtn.Disable()
	}

	d.body.RemoveAll()
	d.body.Add(NewItemImage(ctx, d.client.Items, item, DetailImageSize))
	d.body.Add(name)
	d.body.Add(category)
	d.body.Add(priceRow)
	d.body.Add(unit)
	d.body.Add(stock)
	d.body.Add(widget.NewSeparator())
	d.body.Add(description)
	d.body.Add(stepper)
	d.body.Add(addBtn)
	d.body.Refresh()
}

func (d *ProductDetail) step(delta int) {
	d.quantity += delta
	if d.quantity < 1 {
		d.quantity = 1
	}
	if d.quantity > MaxCartQuantity {
		d.quantity = MaxCartQuantity
	}
	d.qtyLabel.SetText(strconv.Itoa(d.quantity))
}

// onAddToCart sends the chosen quantity and closes the dialog on success.
func (d *ProductDetail) onAddToCart(item model.Item) {
	ctx := d.life.next()
	quantity := d.quantity
	go func() {
		_, err := d.client.Cart.Add(ctx, item.ID, quantity)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				showError(d.window, api.ErrorMessage(err, "Failed to add item to cart"))
				return
			}
			d.dialog.Hide()
			showInfo(d.window, "Added", fmt.Sprintf("%d × %s added to cart", quantity, item.Name))
		})
	}()
}
