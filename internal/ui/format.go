package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/freshkart/freshkart/internal/model"
)

// Catalog fetch limits
const (
	HomeItemsLimit  = 20
	OrdersListLimit = 20
)

// CurrencySymbol prefixes every displayed amount.
const CurrencySymbol = "₹"

// formatPrice renders an amount the way the store shows it: whole rupees
// without decimals, paise with two.
func formatPrice(amount float64) string {
	if amount == math.Trunc(amount) {
		return fmt.Sprintf("%s%d", CurrencySymbol, int64(amount))
	}
	return fmt.Sprintf("%s%.2f", CurrencySymbol, amount)
}

// formatOrderDate renders an order timestamp, e.g. "5 Jan 2026, 14:03".
func formatOrderDate(t time.Time) string {
	if t.IsZero() {
		return "Date not available"
	}
	return t.Local().Format("2 Jan 2006, 15:04")
}

// orderReference returns the customer-facing order reference, falling back
// to the numeric id when the backend assigned no order number.
func orderReference(order model.Order) string {
	if order.OrderNumber != "" {
		return order.OrderNumber
	}
	return fmt.Sprintf("#%d", order.ID)
}

// formatItemCount pluralizes the order line count.
func formatItemCount(count int) string {
	if count == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", count)
}

// statusColor maps an order status to its badge color.
func statusColor(status model.OrderStatus) color.Color {
	switch status {
	case model.OrderStatusPlaced:
		return color.RGBA{R: 255, G: 165, B: 0, A: 255}
	case model.OrderStatusConfirmed:
		return color.RGBA{R: 0, G: 122, B: 255, A: 255}
	case model.OrderStatusPreparing:
		return color.RGBA{R: 40, G: 167, B: 69, A: 255}
	case model.OrderStatusOutForDelivery:
		return color.RGBA{R: 23, G: 162, B: 184, A: 255}
	case model.OrderStatusDelivered:
		return color.RGBA{R: 40, G: 167, B: 69, A: 255}
	case model.OrderStatusCancelled:
		return color.RGBA{R: 220, G: 53, B: 69, A: 255}
	default:
		return color.RGBA{R: 108, G: 117, B: 125, A: 255}
	}
}

// imagePlaceholder returns the single-letter stand-in shown when an item has
// no image.
func imagePlaceholder(name string) string {
	if name == "" {
		return "?"
	}
	runes := []rune(name)
	return strings.ToUpper(string(runes[0]))
}
