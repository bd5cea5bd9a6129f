package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/freshkart/freshkart/internal/model"
)

// OrdersAPI groups the order endpoints. Status transitions are entirely
// backend-driven; the only transition a client may request is cancellation.
type OrdersAPI struct {
	c *Client
}

// Create places an order from the current cart against the given delivery
// address and payment method.
func (o *OrdersAPI) Create(ctx context.Context, addressID int, paymentMethod string) (model.Order, error) {
	body := map[string]any{
		"deliveryAddressId": addressID,
		"paymentMethod":     paymentMethod,
	}
	var order model.Order
	err := o.c.post(ctx, "/orders", body, &order)
	return order, err
}

// List fetches up to limit orders, newest first.
func (o *OrdersAPI) List(ctx context.Context, limit int) (model.OrderPage, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var page model.OrderPage
	err := o.c.get(ctx, "/orders", query, &page)
	return page, err
}

// Get fetches a single order with its full item list.
func (o *OrdersAPI) Get(ctx context.Context, id int) (model.Order, error) {
	var order model.Order
	err := o.c.get(ctx, "/orders/"+strconv.Itoa(id), nil, &order)
	return order, err
}

// Cancel requests cancellation. The backend rejects it unless the order is
// still in a cancellable state.
func (o *OrdersAPI) Cancel(ctx context.Context, id int) (model.Order, error) {
	var order model.Order
	err := o.c.put(ctx, "/orders/"+strconv.Itoa(id)+"/cancel", nil, &order)
	return order, err
}

// Stats fetches the customer's order history summary.
func (o *OrdersAPI) Stats(ctx context.Context) (model.OrderStats, error) {
	var stats model.OrderStats
	err := o.c.get(ctx, "/orders/stats", nil, &stats)
	return stats, err
}
