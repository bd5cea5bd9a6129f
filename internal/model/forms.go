package model

import "errors"

// Minimum accepted lengths for registration fields.
const (
	MinNameLength     = 2
	MinPasswordLength = 6
)

// LoginForm carries the credentials entered on the login screen.
type LoginForm struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Validate checks that both fields are present. Validation failures are
// resolved locally and never reach the network layer.
func (f LoginForm) Validate() error {
	if f.Phone == "" || f.Password == "" {
		return errors.New("please fill in all fields")
	}
	return nil
}

// RegisterForm carries the fields entered on the registration screen.
type RegisterForm struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Validate checks the registration form invariants before submission.
func (f RegisterForm) Validate() error {
	if f.Name == "" || f.Phone == "" || f.Password == "" {
		return errors.New("please fill in all required fields")
	}
	if len(f.Name) < MinNameLength {
		return errors.New("name must be at least 2 characters")
	}
	if len(f.Password) < MinPasswordLength {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}
