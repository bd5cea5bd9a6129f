package session

// Package session owns the authentication state: the persisted token and
// customer profile, and the controller that drives every auth transition
// (startup restore, login, register, logout, profile update, 401
// invalidation). It is the only writer of the store; the API client reads
// the token through the TokenSource interface.
