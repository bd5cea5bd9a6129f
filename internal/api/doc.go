package api

// Package api implements the HTTP client for the FreshKart backend. A single
// Client owns the http.Client, base URL and token access; the endpoint
// groups (Auth, Items, Cart, Orders, Addresses) are thin request shapers
// that map one call to exactly one HTTP request and decode the backend's
// {success, data, message} envelope. Failed requests are never retried.
