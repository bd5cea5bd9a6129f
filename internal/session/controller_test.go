package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// testBackend records the Authorization header of every request and serves
// canned responses per path.
type testBackend struct {
	lastAuth  string
	responses map[string]func(w http.ResponseWriter, r *http.Request)
}

func (b *testBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.lastAuth = r.Header.Get("Authorization")
	if handler, ok := b.responses[r.URL.Path]; ok {
		handler(w, r)
		return
	}
	w.Write([]byte(`{"success":true}`))
}

func newTestController(t *testing.T, backend *testBackend) (*Controller, *Store, *api.Client) {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	store := NewStore(test.NewApp())
	client := api.NewClient(server.URL, store)
	return NewController(store, client), store, client
}

func TestController_LoginPersistsSessionAndToken(t *testing.T) {
	backend := &testBackend{responses: map[string]func(http.ResponseWriter, *http.Request){
		"/auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"token":"T1","customer":{"id":1,"name":"A"}}}`))
		},
	}}
	controller, store, client := newTestController(t, backend)
	controller.Restore()

	result := controller.Login(context.Background(), model.LoginForm{Phone: "9999999999", Password: "secret1"})
	if !result.Success {
		t.Fatalf("Login() = %+v, expected success", result)
	}

	token, user := store.Get()
	if token != "T1" {
		t.Errorf("stored token = %q, expected %q", token, "T1")
	}
	if user == nil || user.ID != 1 || user.Name != "A" {
		t.Errorf("stored user = %+v, expected backend customer", user)
	}
	if !controller.IsAuthenticated() {
		t.Error("controller should be authenticated after login")
	}

	// The next outgoing request must carry exactly the backend's token.
	client.Cart.Get(context.Background())
	if backend.lastAuth != "Bearer T1" {
		t.Errorf("next request Authorization = %q, expected %q", backend.lastAuth, "Bearer T1")
	}
}

func TestController_LoginFailureSurfacesBackendMessage(t *testing.T) {
	backend := &testBackend{responses: map[string]func(http.ResponseWriter, *http.Request){
		"/auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false,"message":"invalid phone or password"}`))
		},
	}}
	controller, store, _ := newTestController(t, backend)
	controller.Restore()

	result := controller.Login(context.Background(), model.LoginForm{Phone: "9999999999", Password: "wrong12"})
	if result.Success {
		t.Fatal("Login() should fail")
	}
	if result.Message != "invalid phone or password" {
		t.Errorf("Login() message = %q, expected backend message", result.Message)
	}
	if token, _ := store.Get(); token != "" {
		t.Error("failed login must not persist a session")
	}
	if controller.IsAuthenticated() {
		t.Error("controller should stay unauthenticated after failed login")
	}
}

func TestController_LoginValidationNeverReachesNetwork(t *testing.T) {
	requests := 0
	backend := &testBackend{responses: map[string]func(http.ResponseWriter, *http.Request){
		"/auth/login": func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.Write([]byte(`{"success":true}`))
		},
	}}
	controller, _, _ := newTestController(t, backend)
	controller.Restore()

	result := controller.Login(context.Background(), model.LoginForm{Phone: "", Password: ""})
	if result.Success {
		t.Fatal("empty form should fail validation")
	}
	if requests != 0 {
		t.Errorf("validation failure issued %d requests, expected 0", requests)
	}
}

func TestController_LogoutClearsLocallyEvenOnBackendError(t *testing.T) {
	backend := &testBackend{responses: map[string]func(http.ResponseWriter, *http.Request){
		"/auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"token":"T1","customer":{"id":1,"name":"A"}}}`))
		},
		"/auth/logout": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"boom"}`))
		},
	}}
	controller, store, client := newTestController(t, backend)
	controller.Restore()
	controller.Login(context.Background(), model.LoginForm{Phone: "9999999999", Password: "secret1"})

	result := controller.Logout(context.Background())
	if !result.Success {
		t.Errorf("Logout() = %+v, local logout always succeeds", result)
	}
	if token, user := store.Get(); token != "" || user != nil {
		t.Error("store must be empty after logout")
	}
	if controller.IsAuthenticated() {
		t.Error("controller should be unauthenticated after logout")
	}

	// Subsequent requests go out unauthenticated.
	client.Items.Featured(context.Background())
	if backend.lastAuth != "" {
		t.Errorf("request after logout carried Authorization %q", backend.lastAuth)
	}
}

func TestController_UnauthorizedResponseInvalidatesSession(t *testing.T) {
	backend := &testBackend{responses: map[string]func(http.ResponseWriter, *http.Request){
		"/auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"token":"T1","customer":{"id":1,"name":"A"}}}`))
		},
		"/orders": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"token expired"}`))
		},
	}}
	controller, store, client := newTestController(t, backend)
	controller.Restore()
	controller.Login(context.Background(), model.LoginForm{Phone: "9999999999", Password: "secret1"})

	changes := 0
	controller.SetChangeCallback(func() { changes++ })

	_, err := client.Orders.List(context.Background(), 20)
	if err == nil {
		t.Fatal("expected error from 401 response")
	}
	if token, user := store.Get(); token != "" || user != nil {
		t.Error("store must be empty immediately after a 401")
	}
	if controller.IsAuthenticated() {
		t.Error("controller should flip to unauthenticated on 401")
	}
	if changes != 1 {
		t.Errorf("expected exactly one change notification, got %d", changes)
	}
}

func TestController_RestoreFromPersistedSession(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)
	store.Set("T9", model.User{ID: 4, Name: "Ravi"})

	client := api.NewClient("http://127.0.0.1:1", store)
	controller := NewController(store, client)

	if !controller.IsLoading() {
		t.Error("controller should start in the loading state")
	}

	controller.Restore()
	if controller.IsLoading() {
		t.Error("Restore() must resolve the loading state")
	}
	if !controller.IsAuthenticated() {
		t.Error("persisted session should restore to authenticated")
	}
	if user := controller.User(); user == nil || user.Name != "Ravi" {
		t.Errorf("restored user = %+v, expected Ravi", user)
	}
}

func TestController_RestoreWithoutSession(t *testing.T) {
	store := NewStore(test.NewApp())
	client := api.NewClient("http://127.0.0.1:1", store)
	controller := NewController(store, client)

	controller.Restore()
	if controller.IsLoading() || controller.IsAuthenticated() {
		t.Error("empty store should restore to unauthenticated")
	}
	if controller.User() != nil {
		t.Error("User() should be nil when unauthenticated")
	}
}

func TestController_UpdateProfileRepersistsUserOnly(t *testing.T) {
	backend := &testBackend{responses: map[string]func(http.ResponseWriter, *http.Request){
		"/auth/login": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"token":"T1","customer":{"id":1,"name":"A"}}}`))
		},
		"/auth/profile": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"id":1,"name":"A Kumar","email":"a@example.com"}}`))
		},
	}}
	controller, store, _ := newTestController(t, backend)
	controller.Restore()
	controller.Login(context.Background(), model.LoginForm{Phone: "9999999999", Password: "secret1"})

	result := controller.UpdateProfile(context.Background(), model.ProfilePatch{Name: "A Kumar", Email: "a@example.com"})
	if !result.Success {
		t.Fatalf("UpdateProfile() = %+v, expected success", result)
	}

	token, user := store.Get()
	if token != "T1" {
		t.Errorf("token must be untouched by profile updates, got %q", token)
	}
	if user == nil || user.Name != "A Kumar" || user.Email != "a@example.com" {
		t.Errorf("stored user = %+v, expected updated profile", user)
	}
	if current := controller.User(); current == nil || current.Name != "A Kumar" {
		t.Errorf("in-memory user = %+v, expected updated profile", current)
	}
}
