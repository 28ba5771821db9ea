// Package canvas implements an in-memory raster with aliased drawing
// primitives. Every primitive writes pixels directly (no alpha blending) so
// the encoded bytes equal the colours that were drawn.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidGeometry is returned (wrapped) for negative sizes, inverted boxes,
// non-positive widths and degenerate polygons.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Transparent is the colour of cleared regions.
var Transparent = color.NRGBA{}

// Point is an absolute pixel coordinate.
type Point struct{ X, Y int }

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Box is an inclusive pixel box [X0,Y0]..[X1,Y1].
type Box struct{ X0, Y0, X1, Y1 int }

// B is shorthand for Box{x0, y0, x1, y1}.
func B(x0, y0, x1, y1 int) Box { return Box{X0: x0, Y0: y0, X1: x1, Y1: y1} }

// FromRect converts a half-open image.Rectangle into an inclusive Box.
func FromRect(r image.Rectangle) Box {
	return Box{X0: r.Min.X, Y0: r.Min.Y, X1: r.Max.X - 1, Y1: r.Max.Y - 1}
}

// Rect returns the half-open rectangle covering the box.
func (b Box) Rect() image.Rectangle {
	return image.Rectangle{Min: image.Pt(b.X0, b.Y0), Max: image.Pt(b.X1+1, b.Y1+1)}
}

func (b Box) validate(op string) error {
	if b.X1 < b.X0 || b.Y1 < b.Y0 {
		return fmt.Errorf("%s [%d,%d,%d,%d]: %w: x1 must be >= x0 and y1 >= y0", op, b.X0, b.Y0, b.X1, b.Y1, ErrInvalidGeometry)
	}
	return nil
}

// Canvas is a fixed-size NRGBA raster. Errors are sticky: once a primitive
// fails, later calls do nothing and Image reports the first error.
type Canvas struct {
	img *image.NRGBA
	err error
}

// New allocates a width x height canvas with every pixel set to fill.
func New(width, height int, fill color.NRGBA) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new canvas %dx%d: %w: size must be positive", width, height, ErrInvalidGeometry)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = fill.R
		img.Pix[i+1] = fill.G
		img.Pix[i+2] = fill.B
		img.Pix[i+3] = fill.A
	}
	return &Canvas{img: img}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width int, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error { return c.err }

// Image returns the backing image, or the first drawing error.
func (c *Canvas) Image() (*image.NRGBA, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.img, nil
}

func (c *Canvas) fail(err error) bool {
	if err != nil && c.err == nil {
		c.err = err
	}
	return c.err != nil
}

// set writes one pixel, clipping anything off the canvas.
func (c *Canvas) set(x, y int, col color.NRGBA) {
	if !(image.Point{X: x, Y: y}.In(c.img.Rect)) {
		return
	}
	c.img.SetNRGBA(x, y, col)
}

// FillRect fills every pixel of b.
func (c *Canvas) FillRect(b Box, col color.NRGBA) {
	if c.fail(b.validate("fill rect")) {
		return
	}
	r := b.Rect().Intersect(c.img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.img.SetNRGBA(x, y, col)
		}
	}
}

// OutlineRect draws width concentric one-pixel rings from the edge of b inwards.
func (c *Canvas) OutlineRect(b Box, col color.NRGBA, width int) {
	if c.fail(b.validate("outline rect")) {
		return
	}
	if width < 1 {
		c.fail(fmt.Errorf("outline rect width %d: %w: width must be >= 1", width, ErrInvalidGeometry))
		return
	}
	for i := 0; i < width; i++ {
		ring := Box{X0: b.X0 + i, Y0: b.Y0 + i, X1: b.X1 - i, Y1: b.Y1 - i}
		if ring.X1 < ring.X0 || ring.Y1 < ring.Y0 {
			break
		}
		for x := ring.X0; x <= ring.X1; x++ {
			c.set(x, ring.Y0, col)
			c.set(x, ring.Y1, col)
		}
		for y := ring.Y0; y <= ring.Y1; y++ {
			c.set(ring.X0, y, col)
			c.set(ring.X1, y, col)
		}
	}
}
