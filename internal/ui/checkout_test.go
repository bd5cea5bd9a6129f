package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/freshkart/freshkart/internal/api"
)

func TestCheckoutRejectsMissingAddressBeforeAnyRequest(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"success":true,"data":{"items":[],"subtotal":0,"total":0}}`))
	}))
	t.Cleanup(server.Close)

	window := test.NewApp().NewWindow("checkout")
	client := api.NewClient(server.URL, api.TokenFunc(func() string { return "T1" }))

	// Control call proving the counter sees traffic from this client.
	if _, err := client.Cart.Summary(context.Background()); err != nil {
		t.Fatalf("control request failed: %v", err)
	}
	if requests.Load() != 1 {
		t.Fatalf("expected 1 control request, counted %d", requests.Load())
	}

	s := NewCheckoutScreen(window, client, nil)
	if s.selectedAddress != nil {
		t.Fatal("fresh checkout should start with no selected address")
	}

	s.onPlaceOrder()
	time.Sleep(100 * time.Millisecond)

	if requests.Load() != 1 {
		t.Errorf("placing without an address must be rejected locally, backend saw %d extra request(s)", requests.Load()-1)
	}
}
