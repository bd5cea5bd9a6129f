package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
	"github.com/freshkart/freshkart/internal/resource"
)

// CartScreen shows the server-computed cart. Every mutation waits for the
// backend and replaces the whole cart with the response payload; nothing is
// recomputed locally.
type CartScreen struct {
	window fyne.Window
	client *api.Client
	life   lifetime

	cart    *resource.Resource[model.Cart]
	visible []model.CartItem

	list        *widget.List
	totalLabel  *widget.Label
	emptyLabel  *widget.Label
	clearBtn    *widget.Button
	checkoutBtn *widget.Button
	onCheckout  func()

	contentBound fyne.CanvasObject
}

// NewCartScreen creates the cart screen.
func NewCartScreen(window fyne.Window, client *api.Client) *CartScreen {
	return &CartScreen{
		window: window,
		client: client,
		cart:   resource.New[model.Cart](),
	}
}

// SetCheckoutHandler sets the action behind the checkout button.
func (s *CartScreen) SetCheckoutHandler(fn func()) {
	s.onCheckout = fn
}

// Content builds the cart layout.
func (s *CartScreen) Content() fyne.CanvasObject {
	if s.contentBound != nil {
		return s.contentBound
	}

	s.totalLabel = widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	s.emptyLabel = widget.NewLabelWithStyle("Your cart is empty", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	s.emptyLabel.Hide()

	s.clearBtn = widget.NewButton("Clear Cart", s.onClearClick)
	s.clearBtn.Importance = widget.DangerImportance

	s.checkoutBtn = widget.NewButton("Checkout", s.onCheckoutClick)
	s.checkoutBtn.Importance = widget.HighImportance

	s.list = widget.NewList(
		func() int { return len(s.visible) },
		func() fyne.CanvasObject { return s.createCartRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { s.updateCartRow(id, obj) },
	)

	bottom := container.NewVBox(
		s.totalLabel,
		container.NewGridWithColumns(2, s.clearBtn, s.checkoutBtn),
	)
	s.contentBound = container.NewBorder(s.emptyLabel, bottom, nil, nil, s.list)
	return s.contentBound
}

// Refresh refetches the cart. A failed load degrades silently to the empty
// cart; repeating an alert on every focus change would be noise.
func (s *CartScreen) Refresh() {
	ctx := s.life.next()
	gen := s.cart.Begin()

	go func() {
		cart, err := s.client.Cart.Get(ctx)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				log.Printf("ui: loading cart failed: %v", err)
				s.cart.Resolve(gen, model.EmptyCart())
			} else {
				s.cart.Resolve(gen, cart)
			}
			s.render()
		})
	}()
}

// mutate runs one cart call and replaces the display with its payload. A
// completion whose context was cancelled is dropped: a newer mutation or
// refetch has superseded it, so neither its error nor its payload may touch
// the screen.
func (s *CartScreen) mutate(ctx context.Context, action func() (model.Cart, error), failureMessage string) {
	go func() {
		cart, err := action()
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				showError(s.window, api.ErrorMessage(err, failureMessage))
				return
			}
			s.cart.Set(cart)
			s.render()
		})
	}()
}

func (s *CartScreen) onQuantityChange(item model.CartItem, delta int) {
	quantity := item.Quantity + delta
	if quantity < 1 {
		s.onRemoveClick(item)
		return
	}
	ctx := s.life.next()
	s.mutate(ctx, func() (model.Cart, error) {
		return s.client.Cart.UpdateItem(ctx, item.ID, quantity)
	}, "Failed to update item")
}

func (s *CartScreen) onRemoveClick(item model.CartItem) {
	confirmAction(s.window, "Remove Item",
		fmt.Sprintf("Remove %s from your cart?", item.Name), func() {
			ctx := s.life.next()
			s.mutate(ctx, func() (model.Cart, error) {
				return s.client.Cart.RemoveItem(ctx, item.ID)
			}, "Failed to remove item")
		})
}

func (s *CartScreen) onClearClick() {
	if s.cart.Value().IsEmpty() {
		return
	}
	confirmAction(s.window, "Clear Cart", "Remove all items from your cart?", func() {
		ctx := s.life.next()
		s.mutate(ctx, func() (model.Cart, error) {
			return s.client.Cart.Clear(ctx)
		}, "Failed to clear cart")
	})
}

func (s *CartScreen) onCheckoutClick() {
	if s.cart.Value().IsEmpty() {
		showInfo(s.window, "Empty Cart", "Add items to cart before checkout")
		return
	}
	if s.onCheckout != nil {
		s.onCheckout()
	}
}

// render redraws the list and totals from the current cart value.
func (s *CartScreen) render() {
	cart := s.cart.Value()
	s.visible = cart.Items
	s.list.Refresh()

	if cart.IsEmpty() {
		s.emptyLabel.Show()
		s.totalLabel.SetText("")
		s.checkoutBtn.Disable()
		s.clearBtn.Disable()
	} else {
		s.emptyLabel.Hide()
		s.totalLabel.SetText(fmt.Sprintf("%s · Total %s", formatItemCount(cart.ItemCount), formatPrice(cart.Total)))
		s.checkoutBtn.Enable()
		s.clearBtn.Enable()
	}
}

// createCartRow builds the reusable row template for cart lines.
func (s *CartScreen) createCartRow() fyne.CanvasObject {
	letter := widget.NewLabelWithStyle("?", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	name := widget.NewLabel("item name")
	name.TextStyle = fyne.TextStyle{Bold: true}
	price := widget.NewLabel("price")
	minus := widget.NewButton("-", nil)
	qty := widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	plus := widget.NewButton("+", nil)
	removeBtn := widget.NewButton("Remove", nil)
	removeBtn.Importance = widget.DangerImportance

	return container.NewBorder(nil, nil,
		letter,
		container.NewHBox(minus, qty, plus, removeBtn),
		container.NewVBox(name, price),
	)
}

// updateCartRow binds one cart line into a row template.
func (s *CartScreen) updateCartRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(s.visible) {
		return
	}
	item := s.visible[id]

	border := obj.(*fyne.Container)
	info := border.Objects[0].(*fyne.Container)
	letter := border.Objects[1].(*widget.Label)
	controls := border.Objects[2].(*fyne.Container)

	letter.SetText(imagePlaceholder(item.Name))
	info.Objects[0].(*widget.Label).SetText(item.Name)
	info.Objects[1].(*widget.Label).SetText(formatPrice(item.Price) + " · " + item.Unit)

	minus := controls.Objects[0].(*widget.Button)
	minus.OnTapped = func() { s.onQuantityChange(item, -1) }
	controls.Objects[1].(*widget.Label).SetText(fmt.Sprintf("%d", item.Quantity))
	plus := controls.Objects[2].(*widget.Button)
	plus.OnTapped = func() { s.onQuantityChange(item, +1) }
	removeBtn := controls.Objects[3].(*widget.Button)
	removeBtn.OnTapped = func() { s.onRemoveClick(item) }
}
