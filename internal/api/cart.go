package api

import (
	"context"
	"strconv"

	"github.com/freshkart/freshkart/internal/model"
)

// CartAPI groups the cart endpoints. Every mutation returns the full cart as
// the backend recomputed it; callers replace their state with that value and
// never apply local deltas.
type CartAPI struct {
	c *Client
}

// Get fetches the current cart.
func (ca *CartAPI) Get(ctx context.Context) (model.Cart, error) {
	var cart model.Cart
	err := ca.c.get(ctx, "/cart", nil, &cart)
	return cart, err
}

// Add puts quantity units of the item into the cart.
func (ca *CartAPI) Add(ctx context.Context, itemID, quantity int) (model.Cart, error) {
	body := map[string]int{"itemId": itemID, "quantity": quantity}
	var cart model.Cart
	err := ca.c.post(ctx, "/cart/add", body, &cart)
	return cart, err
}

// UpdateItem sets the absolute quantity of a cart line.
func (ca *CartAPI) UpdateItem(ctx context.Context, itemID, quantity int) (model.Cart, error) {
	body := map[string]int{"quantity": quantity}
	var cart model.Cart
	err := ca.c.put(ctx, "/cart/item/"+strconv.Itoa(itemID), body, &cart)
	return cart, err
}

// RemoveItem deletes a cart line.
func (ca *CartAPI) RemoveItem(ctx context.Context, itemID int) (model.Cart, error) {
	var cart model.Cart
	err := ca.c.delete(ctx, "/cart/item/"+strconv.Itoa(itemID), &cart)
	return cart, err
}

// Clear empties the cart.
func (ca *CartAPI) Clear(ctx context.Context) (model.Cart, error) {
	var cart model.Cart
	err := ca.c.delete(ctx, "/cart", &cart)
	return cart, err
}

// Summary fetches the checkout breakdown (subtotal, fees, taxes).
func (ca *CartAPI) Summary(ctx context.Context) (model.CartSummary, error) {
	var summary model.CartSummary
	err := ca.c.get(ctx, "/cart/summary", nil, &summary)
	return summary, err
}
