package session

import (
	"context"
	"log"
	"sync"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// Result is the outcome of an auth operation, shaped for direct display:
// either success, or a user-facing message explaining the failure.
type Result struct {
	Success bool
	Message string
}

// Controller drives the auth state machine: loading (initial restore) moves
// to authenticated or unauthenticated exactly once, after which transitions
// happen only through login, register, logout and 401 invalidation. There is
// no path back to loading.
type Controller struct {
	store  *Store
	client *api.Client

	mu            sync.RWMutex
	user          *model.User
	authenticated bool
	loading       bool
	onChange      func() // callback for UI updates
}

// NewController creates the controller and registers itself as the client's
// 401 handler, so any rejected request invalidates the session regardless of
// which endpoint triggered it.
func NewController(store *Store, client *api.Client) *Controller {
	c := &Controller{
		store:   store,
		client:  client,
		loading: true,
	}
	client.SetUnauthorizedHandler(c.invalidate)
	return c
}

// SetChangeCallback sets the callback invoked after every state transition.
func (c *Controller) SetChangeCallback(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Restore loads the persisted session and resolves the initial loading
// state. Called once at startup.
func (c *Controller) Restore() {
	token, user := c.store.Get()

	c.mu.Lock()
	c.loading = false
	c.authenticated = token != "" && user != nil
	c.user = user
	c.mu.Unlock()

	c.notify()
}

// IsLoading reports whether the startup restore is still pending.
func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// IsAuthenticated reports whether a customer is signed in.
func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authenticated
}

// User returns the signed-in customer, or nil.
func (c *Controller) User() *model.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// Login exchanges credentials for a session and persists it.
func (c *Controller) Login(ctx context.Context, form model.LoginForm) Result {
	if err := form.Validate(); err != nil {
		return Result{Message: err.Error()}
	}

	data, err := c.client.Auth.Login(ctx, form)
	if err != nil {
		return Result{Message: api.ErrorMessage(err, "Login failed")}
	}

	c.establish(data)
	return Result{Success: true}
}

// Register creates an account; a successful registration signs the customer
// in immediately.
func (c *Controller) Register(ctx context.Context, form model.RegisterForm) Result {
	if err := form.Validate(); err != nil {
		return Result{Message: err.Error()}
	}

	data, err := c.client.Auth.Register(ctx, form)
	if err != nil {
		return Result{Message: api.ErrorMessage(err, "Registration failed")}
	}

	c.establish(data)
	return Result{Success: true}
}

// Logout tells the backend to drop the token and clears the local session.
// The local clear is unconditional: a failed backend call still signs the
// customer out on this device.
func (c *Controller) Logout(ctx context.Context) Result {
	defer func() {
		c.store.Clear()

		c.mu.Lock()
		c.authenticated = false
		c.user = nil
		c.mu.Unlock()

		c.notify()
	}()

	if err := c.client.Auth.Logout(ctx); err != nil {
		log.Printf("session: backend logout failed: %v", err)
	}
	return Result{Success: true}
}

// UpdateProfile applies the patch and re-persists the returned profile,
// leaving the token untouched.
func (c *Controller) UpdateProfile(ctx context.Context, patch model.ProfilePatch) Result {
	user, err := c.client.Auth.UpdateProfile(ctx, patch)
	if err != nil {
		return Result{Message: api.ErrorMessage(err, "Update failed")}
	}

	if err := c.store.SetUser(user); err != nil {
		log.Printf("session: persisting updated user failed: %v", err)
	}

	c.mu.Lock()
	c.user = &user
	c.mu.Unlock()

	c.notify()
	return Result{Success: true}
}

// establish records a fresh session after login or register.
func (c *Controller) establish(data model.AuthData) {
	if err := c.store.Set(data.Token, data.Customer); err != nil {
		log.Printf("session: persisting session failed: %v", err)
	}

	c.mu.Lock()
	c.loading = false
	c.authenticated = true
	user := data.Customer
	c.user = &user
	c.mu.Unlock()

	c.notify()
}

// invalidate handles a 401 from any endpoint: the stored session is gone
// either way, so clear it and flip to unauthenticated. The failed request's
// error still propagates to its caller.
func (c *Controller) invalidate() {
	c.store.Clear()

	c.mu.Lock()
	wasAuthenticated := c.authenticated
	c.authenticated = false
	c.user = nil
	c.mu.Unlock()

	if wasAuthenticated {
		c.notify()
	}
}

func (c *Controller) notify() {
	c.mu.RLock()
	fn := c.onChange
	c.mu.RUnlock()

	if fn != nil {
		fn()
	}
}
