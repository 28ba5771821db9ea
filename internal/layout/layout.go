// Package layout holds the rectangle arithmetic shared by the textures and
// the preview sheet. All rectangles are half-open, as in package image.
package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

type Grid2x2Rects struct {
	TopLeft     image.Rectangle
	TopRight    image.Rectangle
	BottomLeft  image.Rectangle
	BottomRight image.Rectangle
}

// Grid2x2 splits rect into four equal quadrants.
func Grid2x2(rect image.Rectangle) Grid2x2Rects {
	rect = Normalize(rect)
	midX := rect.Min.X + rect.Dx()/2
	midY := rect.Min.Y + rect.Dy()/2
	return Grid2x2Rects{
		TopLeft:     image.Rect(rect.Min.X, rect.Min.Y, midX, midY),
		TopRight:    image.Rect(midX, rect.Min.Y, rect.Max.X, midY),
		BottomLeft:  image.Rect(rect.Min.X, midY, midX, rect.Max.Y),
		BottomRight: image.Rect(midX, midY, rect.Max.X, rect.Max.Y),
	}
}

// SlotGrid returns cols*rows square cells of cellPx starting at origin, laid
// out row-major with pitchPx between the origins of neighbouring cells.
// Cells are not clipped to any canvas.
func SlotGrid(origin image.Point, cols, rows, cellPx, pitchPx int) []image.Rectangle {
	if cols <= 0 || rows <= 0 || cellPx <= 0 {
		return nil
	}
	cells := make([]image.Rectangle, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			minPt := origin.Add(image.Pt(col*pitchPx, row*pitchPx))
			cells = append(cells, image.Rectangle{Min: minPt, Max: minPt.Add(image.Pt(cellPx, cellPx))})
		}
	}
	return cells
}

// Center returns a rectangle of size (widthPx,heightPx) centred in rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}
