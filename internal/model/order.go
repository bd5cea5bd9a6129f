package model

import (
	"strings"
	"time"
)

// OrderStatus represents the backend-driven state of an order.
type OrderStatus string

const (
	// OrderStatusPlaced means the order was received but not yet confirmed
	OrderStatusPlaced OrderStatus = "placed"

	// OrderStatusConfirmed means the store accepted the order
	OrderStatusConfirmed OrderStatus = "confirmed"

	// OrderStatusPreparing means the order is being packed
	OrderStatusPreparing OrderStatus = "preparing"

	// OrderStatusOutForDelivery means the order left the store
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"

	// OrderStatusDelivered means the order reached the customer
	OrderStatusDelivered OrderStatus = "delivered"

	// OrderStatusCancelled means the order was cancelled
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of OrderStatus.
func (os OrderStatus) String() string {
	return string(os)
}

// CanCancel reports whether the client may request cancellation. Only
// orders that have not started preparation can be cancelled.
func (os OrderStatus) CanCancel() bool {
	return os == OrderStatusPlaced || os == OrderStatusConfirmed
}

// IsFinished reports whether the order reached a terminal state.
func (os OrderStatus) IsFinished() bool {
	return os == OrderStatusDelivered || os == OrderStatusCancelled
}

// Label returns a human readable form, e.g. "OUT FOR DELIVERY".
func (os OrderStatus) Label() string {
	return strings.ToUpper(strings.ReplaceAll(string(os), "_", " "))
}

// OrderItem is a single line of a placed order.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	Quantity int     `json:"quantity"`
}

// Payment describes how an order is paid.
type Payment struct {
	Method string `json:"method"` // cash, card, upi
	Status string `json:"status"` // pending, paid, refunded
}

// Order is a placed order exactly as the backend reports it. All amounts
// and status transitions are server-computed.
type Order struct {
	ID                  int         `json:"id"`
	OrderNumber         string      `json:"orderNumber,omitempty"`
	Status              OrderStatus `json:"status"`
	Items               []OrderItem `json:"items,omitempty"`
	Subtotal            float64     `json:"subtotal"`
	DeliveryFee         float64     `json:"deliveryFee"`
	TaxAmount           float64     `json:"taxAmount"`
	TotalAmount         float64     `json:"totalAmount"`
	ItemCount           int         `json:"itemCount"`
	DeliveryAddress     *Address    `json:"deliveryAddress,omitempty"`
	Payment             *Payment    `json:"payment,omitempty"`
	OrderPlacedAt       time.Time   `json:"orderPlacedAt"`
	EstimatedDeliveryAt time.Time   `json:"estimatedDeliveryAt,omitzero"`
}

// OrderPage is the paginated order listing.
type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
}

// OrderStats summarizes a customer's order history.
type OrderStats struct {
	TotalOrders     int     `json:"totalOrders"`
	DeliveredOrders int     `json:"deliveredOrders"`
	TotalSpent      float64 `json:"totalSpent"`
}
