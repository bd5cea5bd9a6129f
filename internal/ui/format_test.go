package ui

import (
	"testing"
	"time"

	"github.com/freshkart/freshkart/internal/model"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "₹0"},
		{45, "₹45"},
		{28.5, "₹28.50"},
		{1234.05, "₹1234.05"},
	}

	for _, test := range tests {
		result := formatPrice(test.amount)
		if result != test.expected {
			t.Errorf("formatPrice(%v) = %q, expected %q", test.amount, result, test.expected)
		}
	}
}

func TestFormatOrderDate(t *testing.T) {
	if result := formatOrderDate(time.Time{}); result != "Date not available" {
		t.Errorf("zero time should render a fallback, got %q", result)
	}

	placed := time.Date(2026, time.January, 5, 14, 3, 0, 0, time.Local)
	if result := formatOrderDate(placed); result != "5 Jan 2026, 14:03" {
		t.Errorf("formatOrderDate() = %q, expected %q", result, "5 Jan 2026, 14:03")
	}
}

func TestFormatItemCount(t *testing.T) {
	tests := []struct {
		count    int
		expected string
	}{
		{0, "0 items"},
		{1, "1 item"},
		{3, "3 items"},
	}

	for _, test := range tests {
		if result := formatItemCount(test.count); result != test.expected {
			t.Errorf("formatItemCount(%d) = %q, expected %q", test.count, result, test.expected)
		}
	}
}

func TestOrderReference(t *testing.T) {
	tests := []struct {
		order    model.Order
		expected string
	}{
		{model.Order{ID: 42, OrderNumber: "FK-2026-0042"}, "FK-2026-0042"},
		{model.Order{ID: 42}, "#42"},
	}

	for _, test := range tests {
		if result := orderReference(test.order); result != test.expected {
			t.Errorf("orderReference(%+v) = %q, expected %q", test.order, result, test.expected)
		}
	}
}

func TestStatusColorDistinguishesTerminalStates(t *testing.T) {
	if statusColor(model.OrderStatusDelivered) == statusColor(model.OrderStatusCancelled) {
		t.Error("delivered and cancelled must not share a badge color")
	}
	if statusColor(model.OrderStatusPlaced) == statusColor("unknown_status") {
		t.Error("unknown statuses should get the neutral color")
	}
}

func TestImagePlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", "?"},
		{"milk", "M"},
		{"Atta", "A"},
		{"भिंडी", "भ"},
	}

	for _, test := range tests {
		if result := imagePlaceholder(test.name); result != test.expected {
			t.Errorf("imagePlaceholder(%q) = %q, expected %q", test.name, result, test.expected)
		}
	}
}
