package textures

import (
	"image"
	"image/color"

	"github.com/poorcraft/texgen/internal/canvas"
)

// UV map of a character sheet. Boxes are inclusive; parts that fall outside
// a small sheet are clipped.
var (
	skinHead     = canvas.B(0, 0, 7, 7)
	skinBody     = canvas.B(16, 16, 23, 27)
	skinRightArm = canvas.B(40, 16, 43, 27)
	skinLeftArm  = canvas.B(32, 16, 35, 27)
	skinRightLeg = canvas.B(0, 16, 3, 27)
	skinLeftLeg  = canvas.B(4, 16, 7, 27)
)

var (
	skinTone  = rgb(240, 192, 144)
	shirtBlue = rgb(64, 64, 255)
	pantsBlue = rgb(32, 32, 160)
	robeBrown = rgb(139, 105, 20)
	noseTone  = rgb(200, 150, 100)
	browBrown = rgb(80, 40, 0)
	eyeColor  = rgb(0, 0, 0)
)

// Outfit assigns a flat colour to each group of limbs.
type Outfit struct {
	Body, Arms, Legs color.NRGBA
}

func drawLimbs(c *canvas.Canvas, o Outfit) {
	c.FillRect(skinBody, o.Body)
	c.FillRect(skinRightArm, o.Arms)
	c.FillRect(skinLeftArm, o.Arms)
	c.FillRect(skinRightLeg, o.Legs)
	c.FillRect(skinLeftLeg, o.Legs)
}

// PlayerSkin draws the default player sheet: bare arms, blue shirt and
// trousers, two eyes.
func PlayerSkin(size int) (*image.NRGBA, error) {
	c, err := newTransparent(size, size)
	if err != nil {
		return nil, err
	}
	c.FillRect(skinHead, skinTone)
	c.FillRect(canvas.B(2, 2, 3, 3), eyeColor)
	c.FillRect(canvas.B(5, 2, 6, 3), eyeColor)
	drawLimbs(c, Outfit{Body: shirtBlue, Arms: skinTone, Legs: pantsBlue})
	return c.Image()
}

// NPCSkin draws the villager sheet: a robe over every limb, a large nose and
// a unibrow.
func NPCSkin(size int) (*image.NRGBA, error) {
	c, err := newTransparent(size, size)
	if err != nil {
		return nil, err
	}
	c.FillRect(skinHead, skinTone)
	c.FillRect(canvas.B(3, 4, 4, 6), noseTone)
	c.Line(canvas.Pt(1, 2), canvas.Pt(6, 2), browBrown, 1)
	drawLimbs(c, Outfit{Body: robeBrown, Arms: robeBrown, Legs: robeBrown})
	return c.Image()
}
