package model

// User is the customer profile as returned by the backend. It is cached in
// the session store and refreshed only through explicit profile calls.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// AuthData is the payload returned by login and register: an opaque bearer
// token plus the authenticated customer.
type AuthData struct {
	Token    string `json:"token"`
	Customer User   `json:"customer"`
}

// ProfilePatch carries the fields a customer may change on their own
// profile. Zero-value fields are omitted from the request body.
type ProfilePatch struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
