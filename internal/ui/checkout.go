package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/sync/errgroup"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// PaymentMethods the checkout offers. The backend owns payment processing;
// the client only passes the chosen method along.
var PaymentMethods = []string{"cash", "card", "upi"}

// CheckoutScreen collects the delivery address and payment method, then
// places the order from the current cart.
type CheckoutScreen struct {
	window   fyne.Window
	client   *api.Client
	onPlaced func()
	life     lifetime

	summary         model.CartSummary
	addresses       []model.Address
	selectedAddress *model.Address
	paymentMethod   string

	dialog dialog.Dialog
	body   *fyne.Container
}

// NewCheckoutScreen creates the checkout view. onPlaced runs after a
// successful order.
func NewCheckoutScreen(window fyne.Window, client *api.Client, onPlaced func()) *CheckoutScreen {
	return &CheckoutScreen{
		window:        window,
		client:        client,
		onPlaced:      onPlaced,
		paymentMethod: PaymentMethods[0],
	}
}

// Show opens the dialog and loads summary and addresses in one
// all-or-nothing join; a failure closes checkout, matching the cart screen
// the customer came from.
func (s *CheckoutScreen) Show() {
	s.body = container.NewVBox(widget.NewProgressBarInfinite())
	s.dialog = dialog.NewCustom("Checkout", "Back", container.NewVScroll(s.body), s.window)
	s.dialog.Resize(fyne.NewSize(DetailDialogWidth, CheckoutDialogHeight))
	s.dialog.SetOnClosed(s.life.stop)
	s.dialog.Show()

	ctx := s.life.next()
	go func() {
		var (
			summary   model.CartSummary
			addresses []model.Address
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			summary, err = s.client.Cart.Summary(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			addresses, err = s.client.Addresses.List(gctx)
			return err
		})
		err := g.Wait()

		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				s.dialog.Hide()
				showError(s.window, api.ErrorMessage(err, "Failed to load checkout data"))
				return
			}
			s.summary = summary
			s.addresses = addresses
			// Preselect the default address when one exists.
			for i := range addresses {
				if addresses[i].IsDefault {
					s.selectedAddress = &addresses[i]
					break
				}
			}
			s.render()
		})
	}()
}

// render replaces the loading placeholder with the checkout form.
func (s *CheckoutScreen) render() {
	s.body.RemoveAll()

	if len(s.summary.Items) == 0 {
		s.body.Add(widget.NewLabelWithStyle("Your cart is empty", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}))
		s.body.Refresh()
		return
	}

	s.body.Add(widget.NewLabelWithStyle("Order Summary", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, item := range s.summary.Items {
		line := fmt.Sprintf("%d × %s (%s)", item.Quantity, item.Name, formatPrice(item.Price))
		s.body.Add(widget.NewLabel(line))
	}
	s.body.Add(widget.NewSeparator())
	s.body.Add(widget.NewLabel("Subtotal  " + formatPrice(s.summary.Subtotal)))
	s.body.Add(widget.NewLabel("Delivery  " + formatPrice(s.summary.DeliveryFee)))
	s.body.Add(widget.NewLabel("Taxes  " + formatPrice(s.summary.TaxAmount)))
	s.body.Add(widget.NewLabelWithStyle("Total  "+formatPrice(s.summary.Total), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	s.body.Add(widget.NewSeparator())

	s.body.Add(widget.NewLabelWithStyle("Delivery Address", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	if len(s.addresses) == 0 {
		s.body.Add(widget.NewLabel("No saved addresses. Add one from your profile first."))
	} else {
		options := make([]string, len(s.addresses))
		selected := ""
		for i, address := range s.addresses {
			options[i] = address.DisplayLabel() + " — " + address.FullAddress
			if s.selectedAddress != nil && address.ID == s.selectedAddress.ID {
				selected = options[i]
			}
		}
		radio := widget.NewRadioGroup(options, func(choice string) {
			for i, option := range options {
				if option == choice {
					s.selectedAddress = &s.addresses[i]
					return
				}
			}
			s.selectedAddress = nil
		})
		radio.SetSelected(selected)
		s.body.Add(radio)
	}
	s.body.Add(widget.NewSeparator())

	s.body.Add(widget.NewLabelWithStyle("Payment", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	payment := widget.NewRadioGroup(PaymentMethods, func(choice string) {
		if choice != "" {
			s.paymentMethod = choice
		}
	})
	payment.SetSelected(s.paymentMethod)
	s.body.Add(payment)

	placeBtn := widget.NewButton("Place Order", s.onPlaceOrder)
	placeBtn.Importance = widget.HighImportance
	s.body.Add(placeBtn)

	s.body.Refresh()
}

// onPlaceOrder rejects a missing address locally before any request is
// made, then places the order.
func (s *CheckoutScreen) onPlaceOrder() {
	if s.selectedAddress == nil {
		showError(s.window, "Please select a delivery address")
		return
	}

	ctx := s.life.next()
	addressID := s.selectedAddress.ID
	method := s.paymentMethod
	go func() {
		order, err := s.client.Orders.Create(ctx, addressID, method)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				showError(s.window, api.ErrorMessage(err, "Failed to place order"))
				return
			}
			s.dialog.Hide()
			showInfo(s.window, "Order Placed!", "Your order "+orderReference(order)+" has been placed successfully.")
			if s.onPlaced != nil {
				s.onPlaced()
			}
		})
	}()
}
