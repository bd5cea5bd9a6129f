package model

import "testing"

func TestLoginForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    LoginForm
		wantErr bool
	}{
		{"complete", LoginForm{Phone: "9999999999", Password: "secret1"}, false},
		{"missing phone", LoginForm{Password: "secret1"}, true},
		{"missing password", LoginForm{Phone: "9999999999"}, true},
		{"empty", LoginForm{}, true},
	}

	for _, test := range tests {
		err := test.form.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", test.name, err, test.wantErr)
		}
	}
}

func TestRegisterForm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		form    RegisterForm
		wantErr bool
	}{
		{"complete", RegisterForm{Name: "Asha", Phone: "9999999999", Password: "abcdef"}, false},
		{"password five chars", RegisterForm{Name: "Asha", Phone: "9999999999", Password: "abcde"}, true},
		{"password six chars", RegisterForm{Name: "Asha", Phone: "9999999999", Password: "abcdef"}, false},
		{"single letter name", RegisterForm{Name: "A", Phone: "9999999999", Password: "abcdef"}, true},
		{"missing phone", RegisterForm{Name: "Asha", Password: "abcdef"}, true},
		{"missing name", RegisterForm{Phone: "9999999999", Password: "abcdef"}, true},
	}

	for _, test := range tests {
		err := test.form.Validate()
		if (err != nil) != test.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", test.name, err, test.wantErr)
		}
	}
}

func TestItem_DiscountedPrice(t *testing.T) {
	tests := []struct {
		item     Item
		expected float64
	}{
		{Item{Price: 100, Discount: 0}, 100},
		{Item{Price: 100, Discount: 25}, 75},
		{Item{Price: 80, Discount: -5}, 80},
	}

	for _, test := range tests {
		result := test.item.DiscountedPrice()
		if result != test.expected {
			t.Errorf("DiscountedPrice() with price %.2f discount %.2f = %.2f, expected %.2f",
				test.item.Price, test.item.Discount, result, test.expected)
		}
	}
}

func TestCart_IsEmpty(t *testing.T) {
	if !EmptyCart().IsEmpty() {
		t.Error("EmptyCart() should be empty")
	}

	cart := Cart{Items: []CartItem{{ID: 1, Name: "Milk", Quantity: 2}}, Total: 56, ItemCount: 2}
	if cart.IsEmpty() {
		t.Error("cart with items should not be empty")
	}
}
