package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// newCartScreen builds a cart screen wired to a fake backend.
func newCartScreen(t *testing.T, handler http.HandlerFunc) *CartScreen {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	window := test.NewApp().NewWindow("cart")
	client := api.NewClient(server.URL, api.TokenFunc(func() string { return "T1" }))
	s := NewCartScreen(window, client)
	s.Content()
	return s
}

// waitFor polls until the condition holds or the test times out.
func waitFor(t *testing.T, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestCartScreenFailedLoadFallsBackToEmptyCart(t *testing.T) {
	s := newCartScreen(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"cart unavailable"}`))
	})

	s.Refresh()
	waitFor(t, func() bool { return s.emptyLabel.Visible() })

	cart := s.cart.Value()
	if !cart.IsEmpty() || cart.Total != 0 || cart.ItemCount != 0 {
		t.Errorf("failed load should display the empty cart, got %+v", cart)
	}
	if cart.Items == nil {
		t.Error("fallback cart should carry an empty slice, not nil")
	}
	if !s.checkoutBtn.Disabled() {
		t.Error("checkout must be disabled on the empty fallback cart")
	}
}

func TestCartScreenDropsCancelledMutation(t *testing.T) {
	s := newCartScreen(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"items":[],"total":0,"itemCount":0}}`))
	})

	current := model.Cart{
		Items:     []model.CartItem{{ID: 1, Name: "Milk", Price: 28.5, Quantity: 2}},
		Total:     57,
		ItemCount: 2,
	}
	s.cart.Set(current)

	// A second tap supersedes the first mutation by cancelling its context;
	// the superseded completion must leave the screen untouched.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.mutate(ctx, func() (model.Cart, error) {
		return model.Cart{}, context.Canceled
	}, "Failed to update item")

	time.Sleep(100 * time.Millisecond)

	cart := s.cart.Value()
	if len(cart.Items) != 1 || cart.Total != 57 {
		t.Errorf("cancelled mutation overwrote the cart: %+v", cart)
	}
}
