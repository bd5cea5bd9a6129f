package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
	"github.com/freshkart/freshkart/internal/resource"
)

// OrdersScreen lists past orders with their status and history stats.
type OrdersScreen struct {
	window fyne.Window
	client *api.Client
	life   lifetime

	orders  *resource.Resource[[]model.Order]
	stats   *model.OrderStats
	visible []model.Order

	list       *widget.List
	statsLabel *widget.Label
	emptyLabel *widget.Label

	contentBound fyne.CanvasObject
}

// NewOrdersScreen creates the order history screen.
func NewOrdersScreen(window fyne.Window, client *api.Client) *OrdersScreen {
	return &OrdersScreen{
		window: window,
		client: client,
		orders: resource.New[[]model.Order](),
	}
}

// Content builds the order list layout.
func (s *OrdersScreen) Content() fyne.CanvasObject {
	if s.contentBound != nil {
		return s.contentBound
	}

	s.statsLabel = widget.NewLabel("")
	s.statsLabel.Hide()
	s.emptyLabel = widget.NewLabelWithStyle("No orders yet", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	s.emptyLabel.Hide()

	s.list = widget.NewList(
		func() int { return len(s.visible) },
		func() fyne.CanvasObject { return s.createOrderRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { s.updateOrderRow(id, obj) },
	)

	top := container.NewVBox(s.statsLabel, s.emptyLabel)
	s.contentBound = container.NewBorder(top, nil, nil, nil, s.list)
	return s.contentBound
}

// Refresh reloads the order list and, independently, the stats. A stats
// failure only hides the stats line; the order list is the screen's core.
func (s *OrdersScreen) Refresh() {
	ctx := s.life.next()
	gen := s.orders.Begin()

	go func() {
		page, err := s.client.Orders.List(ctx, OrdersListLimit)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				s.orders.Fail(gen, err)
				showError(s.window, api.ErrorMessage(err, "Failed to load orders"))
				s.render()
				return
			}
			s.orders.Resolve(gen, page.Orders)
			s.render()
		})
	}()

	go func() {
		stats, err := s.client.Orders.Stats(ctx)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				log.Printf("ui: loading order stats failed: %v", err)
				s.stats = nil
			} else {
				s.stats = &stats
			}
			s.renderStats()
		})
	}()
}

func (s *OrdersScreen) render() {
	s.visible = s.orders.Value()
	s.list.Refresh()
	if len(s.visible) == 0 {
		s.emptyLabel.Show()
	} else {
		s.emptyLabel.Hide()
	}
}

func (s *OrdersScreen) renderStats() {
	if s.stats == nil {
		s.statsLabel.Hide()
		return
	}
	s.statsLabel.SetText(fmt.Sprintf("%d orders · %d delivered · %s spent",
		s.stats.TotalOrders, s.stats.DeliveredOrders, formatPrice(s.stats.TotalSpent)))
	s.statsLabel.Show()
}

// createOrderRow builds the reusable row template for the order list.
func (s *OrdersScreen) createOrderRow() fyne.CanvasObject {
	number := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	badge := canvas.NewText("", statusColor(model.OrderStatusPlaced))
	badge.TextStyle = fyne.TextStyle{Bold: true}
	date := widget.NewLabel("")
	count := widget.NewLabel("")
	total := widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})
	viewBtn := widget.NewButton("View", nil)
	viewBtn.Importance = widget.LowImportance

	return container.NewBorder(nil, nil, nil,
		container.NewHBox(total, viewBtn),
		container.NewVBox(container.NewHBox(number, badge), container.NewHBox(date, count)),
	)
}

// updateOrderRow binds one order into a row template.
func (s *OrdersScreen) updateOrderRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(s.visible) {
		return
	}
	order := s.visible[id]

	border := obj.(*fyne.Container)
	info := border.Objects[0].(*fyne.Container)
	actions := border.Objects[1].(*fyne.Container)

	headerRow := info.Objects[0].(*fyne.Container)
	headerRow.Objects[0].(*widget.Label).SetText("Order " + orderReference(order))
	badge := headerRow.Objects[1].(*canvas.Text)
	badge.Text = order.Status.Label()
	badge.Color = statusColor(order.Status)
	badge.Refresh()

	metaRow := info.Objects[1].(*fyne.Container)
	metaRow.Objects[0].(*widget.Label).SetText(formatOrderDate(order.OrderPlacedAt))
	metaRow.Objects[1].(*widget.Label).SetText(formatItemCount(order.ItemCount))

	actions.Objects[0].(*widget.Label).SetText(formatPrice(order.TotalAmount))
	viewBtn := actions.Objects[1].(*widget.Button)
	viewBtn.OnTapped = func() {
		NewOrderDetail(s.window, s.client, order.ID, s.Refresh).Show()
	}
}
