package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/freshkart/freshkart/internal/model"
)

// AddressesAPI groups the delivery address endpoints.
type AddressesAPI struct {
	c *Client
}

// PincodeInfo is the serviceability answer for a pincode.
type PincodeInfo struct {
	Serviceable bool   `json:"serviceable"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

// List fetches all saved addresses.
func (ad *AddressesAPI) List(ctx context.Context) ([]model.Address, error) {
	var addresses []model.Address
	err := ad.c.get(ctx, "/addresses", nil, &addresses)
	return addresses, err
}

// Default fetches the default address.
func (ad *AddressesAPI) Default(ctx context.Context) (model.Address, error) {
	var address model.Address
	err := ad.c.get(ctx, "/addresses/default", nil, &address)
	return address, err
}

// Add saves a new address and returns it with its assigned id.
func (ad *AddressesAPI) Add(ctx context.Context, address model.Address) (model.Address, error) {
	var saved model.Address
	err := ad.c.post(ctx, "/addresses", address, &saved)
	return saved, err
}

// Update replaces an existing address.
func (ad *AddressesAPI) Update(ctx context.Context, address model.Address) (model.Address, error) {
	var saved model.Address
	err := ad.c.put(ctx, "/addresses/"+strconv.Itoa(address.ID), address, &saved)
	return saved, err
}

// Delete removes an address.
func (ad *AddressesAPI) Delete(ctx context.Context, id int) error {
	return ad.c.delete(ctx, "/addresses/"+strconv.Itoa(id), nil)
}

// SetDefault marks an address as the default one. Uniqueness of the flag is
// backend-owned.
func (ad *AddressesAPI) SetDefault(ctx context.Context, id int) error {
	return ad.c.put(ctx, "/addresses/"+strconv.Itoa(id)+"/default", nil, nil)
}

// Validate checks whether a pincode is inside the delivery area.
func (ad *AddressesAPI) Validate(ctx context.Context, pincode string) (PincodeInfo, error) {
	query := url.Values{"pincode": {pincode}}
	var info PincodeInfo
	err := ad.c.get(ctx, "/addresses/validate", query, &info)
	return info, err
}
