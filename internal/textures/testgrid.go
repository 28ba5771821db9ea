package textures

import (
	"image"

	"golang.org/x/image/colornames"

	"github.com/poorcraft/texgen/internal/canvas"
	"github.com/poorcraft/texgen/internal/layout"
)

var gridInk = rgba(0, 0, 0, 128)

// TestGrid draws the UV check texture: four coloured quadrants under a
// translucent black grid with size/8 spacing.
func TestGrid(size int) (*image.NRGBA, error) {
	c, err := canvas.New(size, size, white)
	if err != nil {
		return nil, err
	}
	q := layout.Grid2x2(image.Rect(0, 0, size, size))
	c.FillRect(canvas.FromRect(q.TopLeft), named(colornames.Red))
	c.FillRect(canvas.FromRect(q.TopRight), named(colornames.Lime))
	c.FillRect(canvas.FromRect(q.BottomLeft), named(colornames.Blue))
	c.FillRect(canvas.FromRect(q.BottomRight), named(colornames.Yellow))

	spacing := size / 8
	if spacing < 1 {
		spacing = 1
	}
	for i := 0; i < size; i += spacing {
		c.Line(canvas.Pt(i, 0), canvas.Pt(i, size), gridInk, 1)
		c.Line(canvas.Pt(0, i), canvas.Pt(size, i), gridInk, 1)
	}
	return c.Image()
}
