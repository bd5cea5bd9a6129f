package model

// CartItem is a single line in the server-computed cart.
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	Quantity int     `json:"quantity"`
}

// Cart is the customer's cart exactly as the backend computed it. The client
// never recomputes Total or ItemCount; after every mutation it replaces the
// whole value with the server's response.
type Cart struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

// EmptyCart returns the safe fallback value shown when a cart fetch fails.
func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartSummary is the checkout-time view of the cart with the charge
// breakdown the backend will apply to the order.
type CartSummary struct {
	Items       []CartItem `json:"items"`
	Subtotal    float64    `json:"subtotal"`
	DeliveryFee float64    `json:"deliveryFee"`
	TaxAmount   float64    `json:"taxAmount"`
	Total       float64    `json:"total"`
	ItemCount   int        `json:"itemCount"`
}
