package model

import (
	"errors"
	"regexp"
	"strings"
)

// AddressType categorizes a delivery address.
type AddressType string

const (
	AddressTypeHome  AddressType = "home"
	AddressTypeWork  AddressType = "work"
	AddressTypeOther AddressType = "other"
)

// String returns the string representation of AddressType.
func (at AddressType) String() string {
	return string(at)
}

// IsValid reports whether the value is one of the known address types.
func (at AddressType) IsValid() bool {
	return at == AddressTypeHome || at == AddressTypeWork || at == AddressTypeOther
}

// AddressTypeOptions returns the selectable address types in display order.
func AddressTypeOptions() []AddressType {
	return []AddressType{AddressTypeHome, AddressTypeWork, AddressTypeOther}
}

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidPincode reports whether s is exactly six ASCII digits.
func ValidPincode(s string) bool {
	return pincodePattern.MatchString(s)
}

// Address is a delivery address. Uniqueness of the default flag and all
// persistence rules are backend-owned; the client checks format only.
type Address struct {
	ID          int         `json:"id"`
	Type        AddressType `json:"type"`
	Label       string      `json:"label,omitempty"`
	FullAddress string      `json:"fullAddress"`
	Landmark    string      `json:"landmark,omitempty"`
	Pincode     string      `json:"pincode"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country,omitempty"`
	Latitude    float64     `json:"latitude,omitempty"`
	Longitude   float64     `json:"longitude,omitempty"`
	IsDefault   bool        `json:"isDefault"`
}

// Validate checks the format invariants enforced before an address is
// submitted. Everything else is validated server-side.
func (a Address) Validate() error {
	if strings.TrimSpace(a.FullAddress) == "" {
		return errors.New("please enter your full address")
	}
	if strings.TrimSpace(a.City) == "" {
		return errors.New("please enter your city")
	}
	if strings.TrimSpace(a.State) == "" {
		return errors.New("please enter your state")
	}
	if strings.TrimSpace(a.Pincode) == "" {
		return errors.New("please enter your pincode")
	}
	if !ValidPincode(a.Pincode) {
		return errors.New("please enter a valid 6-digit pincode")
	}
	if !a.Type.IsValid() {
		return errors.New("please choose an address type")
	}
	return nil
}

// DisplayLabel returns the label to show in lists, falling back to the
// address type when no custom label is set.
func (a Address) DisplayLabel() string {
	if a.Label != "" {
		return a.Label
	}
	t := string(a.Type)
	if t == "" {
		return "Address"
	}
	return strings.ToUpper(t[:1]) + t[1:]
}
