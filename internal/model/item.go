package model

// Item is a catalog entry. Read-only from the client's perspective.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"` // percentage, 0 when none
	Unit        string  `json:"unit"`     // e.g. "500 g", "1 dozen"
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"` // absolute URL or backend-relative path
}

// DiscountedPrice returns the effective price after the discount percentage
// is applied. Display only; the backend computes all charged amounts.
func (i Item) DiscountedPrice() float64 {
	if i.Discount <= 0 {
		return i.Price
	}
	return i.Price * (1 - i.Discount/100)
}

// InStock reports whether the item can currently be added to the cart.
func (i Item) InStock() bool {
	return i.Stock > 0
}

// Category is a catalog category with its item count.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ItemPage is the paginated item listing returned by the items endpoints.
type ItemPage struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// SearchResult is the payload of the item search endpoint.
type SearchResult struct {
	Results []Item `json:"results"`
}
