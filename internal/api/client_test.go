package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshkart/freshkart/internal/model"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, TokenFunc(func() string { return token }))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"success":true,"data":{"items":[],"total":0,"itemCount":0}}`))
	})

	if _, err := client.Cart.Get(context.Background()); err != nil {
		t.Fatalf("Cart.Get() error = %v", err)
	}
	if gotAuth != "Bearer T1" {
		t.Errorf("Authorization header = %q, expected %q", gotAuth, "Bearer T1")
	}
	if gotRequestID == "" {
		t.Error("X-Request-ID header should be set")
	}
}

func TestClient_NoTokenSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	hasAuth := false
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"success":true,"data":{"items":[],"total":0}}`))
	})

	if _, err := client.Items.List(context.Background(), 20); err != nil {
		t.Fatalf("Items.List() error = %v", err)
	}
	if hasAuth || gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestClient_UnauthorizedInvokesHandler(t *testing.T) {
	client := newTestClient(t, "expired", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"token expired"}`))
	})

	invalidated := false
	client.SetUnauthorizedHandler(func() { invalidated = true })

	_, err := client.Orders.List(context.Background(), 20)
	if err == nil {
		t.Fatal("expected error from 401 response")
	}
	if !invalidated {
		t.Error("unauthorized handler should run before the error is returned")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, expected true", err)
	}
	if ErrorMessage(err, "fallback") != "token expired" {
		t.Errorf("ErrorMessage() = %q, expected backend message", ErrorMessage(err, "fallback"))
	}
}

func TestClient_EnvelopeFailureBecomesError(t *testing.T) {
	client := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"item out of stock"}`))
	})

	_, err := client.Cart.Add(context.Background(), 7, 1)
	if err == nil {
		t.Fatal("expected error from success:false envelope")
	}
	if got := ErrorMessage(err, "fallback"); got != "item out of stock" {
		t.Errorf("ErrorMessage() = %q, expected %q", got, "item out of stock")
	}
	if IsUnauthorized(err) {
		t.Error("application failure should not look like a 401")
	}
}

func TestClient_DecodesDataPayload(t *testing.T) {
	client := newTestClient(t, "T1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/cart/item/3" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"items":[{"id":3,"name":"Milk","price":28,"unit":"500 ml","quantity":2}],"total":56,"itemCount":2}}`))
	})

	cart, err := client.Cart.UpdateItem(context.Background(), 3, 2)
	if err != nil {
		t.Fatalf("Cart.UpdateItem() error = %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Errorf("cart should hold exactly the server payload, got %+v", cart)
	}
	if cart.Total != 56 || cart.ItemCount != 2 {
		t.Errorf("cart totals should come from the server, got total=%.2f count=%d", cart.Total, cart.ItemCount)
	}
}

func TestClient_TransportErrorMessageFallback(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", TokenFunc(func() string { return "" }))

	_, err := client.Cart.Get(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if got := ErrorMessage(err, "Failed to load cart"); got != "Failed to load cart" {
		t.Errorf("ErrorMessage() = %q, expected generic fallback", got)
	}
}

func TestItemsAPI_ImageURL(t *testing.T) {
	client := NewClient("https://api.example.com/api/", TokenFunc(func() string { return "" }))

	tests := []struct {
		image    string
		expected string
	}{
		{"", ""},
		{"https://cdn.example.com/milk.jpg", "https://cdn.example.com/milk.jpg"},
		{"/items/3/image", "https://api.example.com/api/items/3/image"},
		{"items/3/image", "https://api.example.com/api/items/3/image"},
	}

	for _, test := range tests {
		result := client.Items.ImageURL(model.Item{Image: test.image})
		if result != test.expected {
			t.Errorf("ImageURL(%q) = %q, expected %q", test.image, result, test.expected)
		}
	}
}
