package ui

import (
	"context"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/freshkart/freshkart/internal/api"
	"github.com/freshkart/freshkart/internal/model"
)

// NewItemImage shows the item picture at the given size, with the first
// letter of the item name as a stand-in while the image loads or when the
// item has none. The fetch is tied to ctx so images stop loading once the
// owning screen is gone.
func NewItemImage(ctx context.Context, items *api.ItemsAPI, item model.Item, size float32) fyne.CanvasObject {
	frame := canvas.NewRectangle(color.Transparent)
	frame.SetMinSize(fyne.NewSize(size, size))

	placeholder := widget.NewLabelWithStyle(imagePlaceholder(item.Name), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	stack := container.NewStack(frame, placeholder)

	url := items.ImageURL(item)
	if url == "" {
		return stack
	}

	go func() {
		res, err := fyne.LoadResourceFromURLString(url)
		if err != nil {
			log.Printf("ui: loading image for item %d failed: %v", item.ID, err)
			return
		}
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			img := canvas.NewImageFromResource(res)
			img.FillMode = canvas.ImageFillContain
			img.SetMinSize(fyne.NewSize(size, size))
			placeholder.Hide()
			stack.Add(img)
			stack.Refresh()
		})
	}()

	return stack
}
