package textures

import (
	"fmt"
	"image"

	"github.com/poorcraft/texgen/internal/canvas"
)

var (
	heartRed     = rgb(255, 0, 0)
	heartOutline = rgb(64, 0, 0)
	hungerBrown  = rgb(139, 69, 19)
	hungerDark   = rgb(68, 34, 0)
)

var (
	heartShape = []canvas.Point{
		canvas.Pt(4, 2), canvas.Pt(2, 0), canvas.Pt(0, 2), canvas.Pt(0, 4),
		canvas.Pt(4, 8), canvas.Pt(8, 4), canvas.Pt(8, 2), canvas.Pt(6, 0),
	}
	heartLeft = []canvas.Point{
		canvas.Pt(4, 2), canvas.Pt(2, 0), canvas.Pt(0, 2), canvas.Pt(0, 4), canvas.Pt(4, 8),
	}
	heartRight = []canvas.Point{
		canvas.Pt(4, 2), canvas.Pt(6, 0), canvas.Pt(8, 2), canvas.Pt(8, 4), canvas.Pt(4, 8),
	}
)

func newTransparent(w, h int) (*canvas.Canvas, error) {
	return canvas.New(w, h, canvas.Transparent)
}

func checkState(kind string, s State) error {
	if !s.valid() {
		return fmt.Errorf("%s icon: unknown state %v", kind, s)
	}
	return nil
}

// Crosshair draws a white plus sign centred on a transparent square.
func Crosshair(size int) (*image.NRGBA, error) {
	c, err := newTransparent(size, size)
	if err != nil {
		return nil, err
	}
	const (
		thickness = 2
		length    = 6
	)
	mid := size / 2
	c.FillRect(canvas.B(mid-thickness/2, mid-length, mid+thickness/2, mid+length), white)
	c.FillRect(canvas.B(mid-length, mid-thickness/2, mid+length, mid+thickness/2), white)
	return c.Image()
}

// Heart draws the health icon. Half fills the left lobe and outlines the right.
func Heart(size int, s State) (*image.NRGBA, error) {
	if err := checkState("heart", s); err != nil {
		return nil, err
	}
	c, err := newTransparent(size, size)
	if err != nil {
		return nil, err
	}
	switch s {
	case Full:
		c.FillPolygon(heartShape, heartRed)
	case Half:
		c.FillPolygon(heartLeft, heartRed)
		c.OutlinePolygon(heartRight, heartOutline)
	case Empty:
		c.OutlinePolygon(heartShape, heartOutline)
	}
	return c.Image()
}

// Hunger draws the drumstick icon: a round head on a short bone.
func Hunger(size int, s State) (*image.NRGBA, error) {
	if err := checkState("hunger", s); err != nil {
		return nil, err
	}
	c, err := newTransparent(size, size)
	if err != nil {
		return nil, err
	}
	switch s {
	case Full:
		c.FillEllipse(canvas.B(2, 1, 6, 5), hungerBrown)
		c.FillRect(canvas.B(3, 4, 5, 7), hungerBrown)
	case Half:
		c.FillEllipse(canvas.B(2, 1, 4, 5), hungerBrown)
		c.OutlineEllipse(canvas.B(4, 1, 6, 5), hungerDark)
		c.FillRect(canvas.B(3, 4, 4, 7), hungerBrown)
		c.OutlineRect(canvas.B(4, 4, 5, 7), hungerDark, 1)
	case Empty:
		c.OutlineEllipse(canvas.B(2, 1, 6, 5), hungerDark)
		c.OutlineRect(canvas.B(3, 4, 5, 7), hungerDark, 1)
	}
	return c.Image()
}
