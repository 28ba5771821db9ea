package textures

import (
	"image"

	"github.com/poorcraft/texgen/internal/canvas"
	"github.com/poorcraft/texgen/internal/layout"
)

// Hotbar and inventory grid constants.
const (
	HotbarSlots   = 9
	hotbarSlotPx  = 20
	hotbarSpacing = 2
	hotbarStartX  = 1

	InventoryCols    = 9
	InventoryRows    = 4
	inventorySlotPx  = 18
	inventorySpacing = 2
	inventoryMargin  = 10
)

var (
	hotbarFill    = rgba(64, 64, 64, 128)
	hotbarOutline = rgb(128, 128, 128)
	slotFill      = rgb(48, 48, 48)
	slotOutline   = rgb(96, 96, 96)
	inventoryFill = rgba(32, 32, 32, 192)
)

// outlineCells strokes each half-open cell with a 1px border.
func outlineCells(c *canvas.Canvas, cells []image.Rectangle) {
	for _, cell := range cells {
		c.OutlineRect(canvas.FromRect(cell), slotOutline, 1)
	}
}

// Hotbar draws the translucent bar with nine slot outlines along its top.
func Hotbar(width, height int) (*image.NRGBA, error) {
	c, err := canvas.New(width, height, hotbarFill)
	if err != nil {
		return nil, err
	}
	// Slot boxes are inclusive, so each cell is one pixel wider than hotbarSlotPx.
	cells := layout.SlotGrid(image.Pt(hotbarStartX, 1), HotbarSlots, 1, hotbarSlotPx+1, hotbarSlotPx+hotbarSpacing)
	for _, cell := range cells {
		c.OutlineRect(canvas.FromRect(cell), hotbarOutline, 1)
	}
	return c.Image()
}

// HotbarSelection draws the 2px white frame marking the selected slot.
func HotbarSelection(size int) (*image.NRGBA, error) {
	c, err := newTransparent(size, size)
	if err != nil {
		return nil, err
	}
	c.OutlineRect(canvas.B(0, 0, size-1, size-1), white, 2)
	return c.Image()
}

// Slot draws a single opaque inventory slot with a lighter rim.
func Slot(size int) (*image.NRGBA, error) {
	c, err := canvas.New(size, size, slotFill)
	if err != nil {
		return nil, err
	}
	c.OutlineRect(canvas.B(0, 0, size-1, size-1), slotOutline, 1)
	return c.Image()
}

// InventoryOrigin is the top-left corner of the 9x4 player grid on a
// background of the given height.
func InventoryOrigin(height int) image.Point {
	pitch := inventorySlotPx + inventorySpacing
	return image.Pt(inventoryMargin, height-InventoryRows*pitch-inventoryMargin)
}

// InventorySlots returns the player grid cells (half-open) for a background
// of the given height.
func InventorySlots(height int) []image.Rectangle {
	return layout.SlotGrid(InventoryOrigin(height), InventoryCols, InventoryRows, inventorySlotPx+1, inventorySlotPx+inventorySpacing)
}

// InventoryBackground draws the inventory panel with the player grid
// anchored to its bottom edge.
func InventoryBackground(width, height int) (*image.NRGBA, error) {
	c, err := canvas.New(width, height, inventoryFill)
	if err != nil {
		return nil, err
	}
	outlineCells(c, InventorySlots(height))
	return c.Image()
}
