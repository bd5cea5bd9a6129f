package model

import "testing"

func TestValidPincode(t *testing.T) {
	tests := []struct {
		pincode  string
		expected bool
	}{
		{"123456", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"12a456", false},
		{"12345 ", false},
		{"", false},
		{"१२३४५६", false},
	}

	for _, test := range tests {
		result := ValidPincode(test.pincode)
		if result != test.expected {
			t.Errorf("ValidPincode(%q) = %v, expected %v", test.pincode, result, test.expected)
		}
	}
}

func TestAddress_Validate(t *testing.T) {
	valid := Address{
		Type:        AddressTypeHome,
		FullAddress: "12 MG Road",
		Pincode:     "560001",
		City:        "Bengaluru",
		State:       "Karnataka",
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("valid address should pass validation, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Address)
	}{
		{"missing full address", func(a *Address) { a.FullAddress = "  " }},
		{"missing city", func(a *Address) { a.City = "" }},
		{"missing state", func(a *Address) { a.State = "" }},
		{"missing pincode", func(a *Address) { a.Pincode = "" }},
		{"short pincode", func(a *Address) { a.Pincode = "56001" }},
		{"non-numeric pincode", func(a *Address) { a.Pincode = "56o001" }},
		{"unknown type", func(a *Address) { a.Type = "office" }},
	}

	for _, test := range tests {
		addr := valid
		test.mutate(&addr)
		if err := addr.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got nil", test.name)
		}
	}
}

func TestAddress_DisplayLabel(t *testing.T) {
	tests := []struct {
		address  Address
		expected string
	}{
		{Address{Label: "Mom's place", Type: AddressTypeOther}, "Mom's place"},
		{Address{Type: AddressTypeHome}, "Home"},
		{Address{Type: AddressTypeWork}, "Work"},
		{Address{}, "Address"},
	}

	for _, test := range tests {
		result := test.address.DisplayLabel()
		if result != test.expected {
			t.Errorf("DisplayLabel() = %q, expected %q", result, test.expected)
		}
	}
}
