package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// OrderDetail shows one order with its lines, charges and delivery address.
// Cancellation is offered only while the backend still allows it.
type OrderDetail struct {
	window    fyne.Window
	client    *api.Client
	orderID   int
	onChanged func()
	life      lifetime

	dialog dialog.Dialog
	body   *fyne.Container
}

// NewOrderDetail creates the detail view for the given order id. onChanged
// runs after a successful cancellation so the list can refetch.
func NewOrderDetail(window fyne.Window, client *api.Client, orderID int, onChanged func()) *OrderDetail {
	return &OrderDetail{
		window:    window,
		client:    client,
		orderID:   orderID,
		onChanged: onChanged,
	}
}

// Show opens the dialog and starts the fetch.
func (d *OrderDetail) Show() {
	d.body = container.NewVBox(widget.NewProgressBarInfinite())
	d.dialog = dialog.NewCustom("Order Details", "Close", container.NewVScroll(d.body), d.window)
	d.dialog.Resize(fyne.NewSize(DetailDialogWidth, CheckoutDialogHeight))
	d.dialog.SetOnClosed(d.life.stop)
	d.dialog.Show()
	d.load()
}

func (d *OrderDetail) load() {
	ctx := d.life.next()
	go func() {
		order, err := d.client.Orders.Get(ctx, d.orderID)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				d.body.RemoveAll()
				d.body.Add(widget.NewLabel(api.ErrorMessage(err, "Failed to load order")))
				d.body.Refresh()
				return
			}
			d.render(order)
		})
	}()
}

// render replaces the loading placeholder with the order view.
func (d *OrderDetail) render(order model.Order) {
	d.body.RemoveAll()

	d.body.Add(widget.NewLabelWithStyle("Order "+orderReference(order), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	badge := canvas.NewText(order.Status.Label(), statusColor(order.Status))
	badge.TextStyle = fyne.TextStyle{Bold: true}
	d.body.Add(badge)
	d.body.Add(widget.NewLabel("Placed " + formatOrderDate(order.OrderPlacedAt)))
	if !order.EstimatedDeliveryAt.IsZero() && !order.Status.IsFinished() {
		d.body.Add(widget.NewLabel("Estimated delivery " + formatOrderDate(order.EstimatedDeliveryAt)))
	}
	d.body.Add(widget.NewSeparator())

	for _, item := range order.Items {
		line := fmt.Sprintf("%d × %s (%s)", item.Quantity, item.Name, formatPrice(item.Price))
		d.body.Add(widget.NewLabel(line))
	}
	d.body.Add(widget.NewSeparator())
	d.body.Add(widget.NewLabel("Subtotal  " + formatPrice(order.Subtotal)))
	d.body.Add(widget.NewLabel("Delivery  " + formatPrice(order.DeliveryFee)))
	d.body.Add(widget.NewLabel("Taxes  " + formatPrice(order.TaxAmount)))
	d.body.Add(widget.NewLabelWithStyle("Total  "+formatPrice(order.TotalAmount), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))

	if order.DeliveryAddress != nil {
		d.body.Add(widget.NewSeparator())
		d.body.Add(widget.NewLabelWithStyle("Deliver to", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		address := widget.NewLabel(order.DeliveryAddress.FullAddress + ", " + order.DeliveryAddress.City + " " + order.DeliveryAddress.Pincode)
		address.Wrapping = fyne.TextWrapWord
		d.body.Add(address)
	}

	if order.Payment != nil {
		d.body.Add(widget.NewLabel(fmt.Sprintf("Payment: %s (%s)", order.Payment.Method, order.Payment.Status)))
	}

	// The cancel action exists only while the order can still be cancelled.
	if order.Status.CanCancel() {
		cancelBtn := widget.NewButton("Cancel Order", func() { d.onCancelClick() })
		cancelBtn.Importance = widget.DangerImportance
		d.body.Add(widget.NewSeparator())
		d.body.Add(cancelBtn)
	}

	d.body.Refresh()
}

// onCancelClick confirms, requests cancellation and re-renders with the
// backend's updated order.
func (d *OrderDetail) onCancelClick() {
	confirmAction(d.window, "Cancel Order", "Are you sure you want to cancel this order?", func() {
		ctx := d.life.next()
		go func() {
			order, err := d.client.Orders.Cancel(ctx, d.orderID)
			if ctx.Err() != nil {
				return
			}
			fyne.Do(func() {
				if err != nil {
					showError(d.window, api.ErrorMessage(err, "Failed to cancel order"))
					return
				}
				d.render(order)
				showInfo(d.window, "Cancelled", "Order cancelled successfully")
				if d.onChanged != nil {
					d.onChanged()
				}
			})
		}()
	})
}
