package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/sync/errgroup"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
	"github.com/freshkart/freshkart/internal/resource"
)

// AllCategoriesLabel is the chip that clears the category filter.
const AllCategoriesLabel = "All"

// HomeScreen is the catalog: search, category chips, featured items and the
// item list.
type HomeScreen struct {
	window fyne.Window
	client *api.Client
	life   lifetime

	items      *resource.Resource[[]model.Item]
	categories []model.Category
	featured   []model.Item
	visible    []model.Item

	searchEntry  *widget.Entry
	categoryBox  *fyne.Container
	featuredBox  *fyne.Container
	itemList     *widget.List
	statusLabel  *widget.Label
	loadingBar   *widget.ProgressBarInfinite
	contentBound fyne.CanvasObject
}

// NewHomeScreen creates the catalog screen.
func NewHomeScreen(window fyne.Window, client *api.Client) *HomeScreen {
	return &HomeScreen{
		window: window,
		client: client,
		items:  resource.New[[]model.Item](),
	}
}

// Content builds the catalog layout.
func (s *HomeScreen) Content() fyne.CanvasObject {
	if s.contentBound != nil {
		return s.contentBound
	}

	s.searchEntry = widget.NewEntry()
	s.searchEntry.SetPlaceHolder("Search for milk, bread, eggs...")
	s.searchEntry.OnSubmitted = s.onSearch

	s.categoryBox = container.NewHBox()
	s.featuredBox = container.NewHBox()

	s.statusLabel = widget.NewLabel("")
	s.statusLabel.Hide()
	s.loadingBar = widget.NewProgressBarInfinite()
	s.loadingBar.Hide()

	s.itemList = widget.NewList(
		func() int { return len(s.visible) },
		func() fyne.CanvasObject { return s.createItemRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { s.updateItemRow(id, obj) },
	)

	top := container.NewVBox(
		s.searchEntry,
		container.NewHScroll(s.categoryBox),
		container.NewHScroll(s.featuredBox),
		s.loadingBar,
		s.statusLabel,
	)
	s.contentBound = container.NewBorder(top, nil, nil, nil, s.itemList)
	return s.contentBound
}

// Refresh reloads items, categories and featured in one all-or-nothing join:
// a single failure aborts the whole load and surfaces one error.
func (s *HomeScreen) Refresh() {
	ctx := s.life.next()
	gen := s.items.Begin()
	s.setLoading(true)

	go func() {
		var (
			page model.ItemPage
			cats []model.Category
			feat []model.Item
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			page, err = s.client.Items.List(gctx, HomeItemsLimit)
			return err
		})
		g.Go(func() error {
			var err error
			cats, err = s.client.Items.Categories(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			feat, err = s.client.Items.Featured(gctx)
			return err
		})
		err := g.Wait()

		if ctx.Err() != nil {
			return // screen moved on, drop the result
		}
		fyne.Do(func() {
			s.setLoading(false)
			if err != nil {
				s.items.Fail(gen, err)
				s.statusLabel.SetText("Failed to load data")
				s.statusLabel.Show()
				showError(s.window, api.ErrorMessage(err, "Failed to load data"))
				return
			}
			s.items.Resolve(gen, page.Items)
			s.categories = cats
			s.featured = feat
			s.statusLabel.Hide()
			s.renderCategories()
			s.renderFeatured()
			s.renderItems()
		})
	}()
}

// onSearch replaces the item list with search results; an empty query
// restores the full catalog.
func (s *HomeScreen) onSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.Refresh()
		return
	}

	ctx := s.life.next()
	gen := s.items.Begin()
	s.setLoading(true)

	go func() {
		result, err := s.client.Items.Search(ctx, query)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			s.setLoading(false)
			if err != nil {
				s.items.Fail(gen, err)
				showError(s.window, api.ErrorMessage(err, "Search failed"))
				return
			}
			s.items.Resolve(gen, result.Results)
			s.renderItems()
		})
	}()
}

// onCategorySelect filters the list to one category; the All chip reloads
// everything.
func (s *HomeScreen) onCategorySelect(category string) {
	if category == AllCategoriesLabel {
		s.Refresh()
		return
	}

	ctx := s.life.next()
	gen := s.items.Begin()
	s.setLoading(true)

	go func() {
		page, err := s.client.Items.ByCategory(ctx, category, HomeItemsLimit)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			s.setLoading(false)
			if err != nil {
				s.items.Fail(gen, err)
				showError(s.window, api.ErrorMessage(err, "Could not load this category"))
				return
			}
			s.items.Resolve(gen, page.Items)
			s.renderItems()
		})
	}()
}

// onAddToCart adds one unit and confirms; the cart screen refetches the
// authoritative cart when it becomes visible.
func (s *HomeScreen) onAddToCart(item model.Item) {
	ctx := s.life.next()
	go func() {
		_, err := s.client.Cart.Add(ctx, item.ID, 1)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			if err != nil {
				showError(s.window, api.ErrorMessage(err, "Failed to add item to cart"))
				return
			}
			showInfo(s.window, "Added", item.Name+" added to cart")
		})
	}()
}

func (s *HomeScreen) setLoading(loading bool) {
	if loading {
		s.loadingBar.Show()
	} else {
		s.loadingBar.Hide()
	}
}

func (s *HomeScreen) renderCategories() {
	s.categoryBox.RemoveAll()

	all := widget.NewButton(AllCategoriesLabel, func() { s.onCategorySelect(AllCategoriesLabel) })
	all.Importance = widget.LowImportance
	s.categoryBox.Add(all)

	for _, category := range s.categories {
		name := category.Name // capture for closure
		chip := widget.NewButton(name, func() { s.onCategorySelect(name) })
		chip.Importance = widget.LowImportance
		s.categoryBox.Add(chip)
	}
	s.categoryBox.Refresh()
}

func (s *HomeScreen) renderFeatured() {
	s.featuredBox.RemoveAll()
	if len(s.featured) == 0 {
		s.featuredBox.Refresh()
		return
	}

	s.featuredBox.Add(widget.NewLabelWithStyle("Featured", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, item := range s.featured {
		featured := item // capture for closure
		card := widget.NewButton(featured.Name+" "+formatPrice(featured.DiscountedPrice()), func() {
			s.openDetail(featured)
		})
		s.featuredBox.Add(card)
	}
	s.featuredBox.Refresh()
}

func (s *HomeScreen) renderItems() {
	s.visible = s.items.Value()
	s.itemList.Refresh()
}

// createItemRow builds the reusable row template for the item list.
func (s *HomeScreen) createItemRow() fyne.CanvasObject {
	letter := widget.NewLabelWithStyle("?", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	name := widget.NewLabel("item name")
	name.TextStyle = fyne.TextStyle{Bold: true}
	price := widget.NewLabel("price")
	unit := widget.NewLabel("unit")
	addBtn := widget.NewButton("Add", nil)
	addBtn.Importance = widget.HighImportance
	detailBtn := widget.NewButton("View", nil)
	detailBtn.Importance = widget.LowImportance

	return container.NewBorder(nil, nil,
		letter,
		container.NewHBox(detailBtn, addBtn),
		container.NewVBox(name, container.NewHBox(price, unit)),
	)
}

// updateItemRow binds one visible item into a row template.
func (s *HomeScreen) updateItemRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(s.visible) {
		return
	}
	item := s.visible[id]

	border := obj.(*fyne.Container)
	letter := border.Objects[1].(*widget.Label)
	actions := border.Objects[2].(*fyne.Container)
	info := border.Objects[0].(*fyne.Container)

	letter.SetText(imagePlaceholder(item.Name))

	name := info.Objects[0].(*widget.Label)
	name.SetText(item.Name)
	priceRow := info.Objects[1].(*fyne.Container)
	priceRow.Objects[0].(*widget.Label).SetText(formatPrice(item.DiscountedPrice()))
	priceRow.Objects[1].(*widget.Label).SetText(item.Unit)

	detailBtn := actions.Objects[0].(*widget.Button)
	detailBtn.OnTapped = func() { s.openDetail(item) }

	addBtn := actions.Objects[1].(*widget.Button)
	if item.InStock() {
		addBtn.SetText("Add")
		addBtn.Enable()
		addBtn.OnTapped = func() { s.onAddToCart(item) }
	} else {
		addBtn.SetText("Out of stock")
		addBtn.Disable()
	}
}

// openDetail shows the product detail dialog, which refetches the item by
// id rather than trusting the listing copy.
func (s *HomeScreen) openDetail(item model.Item) {
	NewProductDetail(s.window, s.client, item.ID).Show()
}
