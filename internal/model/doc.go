package model

// Package model defines domain data structures used across the app: the
// customer profile, catalog items, the server-computed cart, addresses,
// orders and status enums. Every entity is owned by the backend; the client
// holds transient copies decoded from API responses and never derives
// business values (totals, order state) locally.
