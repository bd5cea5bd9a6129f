package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/freshkart/freshkart/internal/model"
)

// ItemsAPI groups the catalog endpoints. All of them are read-only.
type ItemsAPI struct {
	c *Client
}

// List fetches up to limit catalog items.
func (i *ItemsAPI) List(ctx context.Context, limit int) (model.ItemPage, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var page model.ItemPage
	err := i.c.get(ctx, "/items", query, &page)
	return page, err
}

// Get fetches a single item by id.
func (i *ItemsAPI) Get(ctx context.Context, id int) (model.Item, error) {
	var item model.Item
	err := i.c.get(ctx, "/items/"+strconv.Itoa(id), nil, &item)
	return item, err
}

// Categories fetches the catalog categories.
func (i *ItemsAPI) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := i.c.get(ctx, "/items/categories", nil, &categories)
	return categories, err
}

// Featured fetches the items promoted on the home screen.
func (i *ItemsAPI) Featured(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := i.c.get(ctx, "/items/featured", nil, &items)
	return items, err
}

// Search runs a full-text search over the catalog.
func (i *ItemsAPI) Search(ctx context.Context, q string) (model.SearchResult, error) {
	query := url.Values{"q": {q}}
	var result model.SearchResult
	err := i.c.get(ctx, "/items/search", query, &result)
	return result, err
}

// ByCategory fetches up to limit items in the given category.
func (i *ItemsAPI) ByCategory(ctx context.Context, category string, limit int) (model.ItemPage, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var page model.ItemPage
	err := i.c.get(ctx, "/items/category/"+url.PathEscape(category), query, &page)
	return page, err
}

// Suggestions fetches items suggested for the current customer.
func (i *ItemsAPI) Suggestions(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := i.c.get(ctx, "/items/suggestions", nil, &items)
	return items, err
}

// ImageURL resolves the item's image reference to an absolute URL, or ""
// when the item has no image.
func (i *ItemsAPI) ImageURL(item model.Item) string {
	if item.Image == "" {
		return ""
	}
	if strings.HasPrefix(item.Image, "http://") || strings.HasPrefix(item.Image, "https://") {
		return item.Image
	}
	return i.c.baseURL + "/" + strings.TrimLeft(item.Image, "/")
}
