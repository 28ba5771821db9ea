package textures

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/poorcraft/texgen/internal/canvas"
)

// BlockSize is the edge length of every block texture.
const BlockSize = 16

// Block is a flat-coloured block texture.
type Block struct {
	File  string
	Color color.NRGBA
}

// Blocks is the fixed block catalogue in generation order.
var Blocks = []Block{
	{"stone.png", named(colornames.Gray)},
	{"dirt.png", named(colornames.Saddlebrown)},
	{"grass_top.png", named(colornames.Forestgreen)},
	{"grass_side.png", named(colornames.Saddlebrown)},
	{"sand.png", rgb(238, 203, 173)},
	{"sandstone.png", named(colornames.Tan)},
	{"snow.png", named(colornames.Snow)},
	{"ice.png", named(colornames.Lightblue)},
	{"wood_top.png", named(colornames.Sienna)},
	{"wood_side.png", named(colornames.Saddlebrown)},
	{"leaves.png", named(colornames.Forestgreen)},
	{"water.png", named(colornames.Steelblue)},
}

// SolidBlock returns a size x size opaque texture filled with c.
func SolidBlock(size int, c color.NRGBA) (*image.NRGBA, error) {
	c.A = 0xFF
	cv, err := canvas.New(size, size, c)
	if err != nil {
		return nil, err
	}
	return cv.Image()
}
