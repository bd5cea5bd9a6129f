package ui

// Package ui provides the storefront screens: catalog browsing, cart,
// checkout, orders, addresses, profile and the auth flow. Screens fetch
// through the API client, replace their state wholesale with server
// payloads, and marshal widget updates through fyne.Do.
