package textures

import (
	"fmt"
	"image"

	"github.com/poorcraft/texgen/internal/canvas"
)

// CrackStages is the number of block-breaking overlay frames.
const CrackStages = 10

var crackInk = rgba(0, 0, 0, 180)

// crackSegment returns segment i of a crack overlay on a size x size tile.
// The endpoints are fixed arithmetic of i, so every stage is reproducible.
// ok is false when size is not positive.
func crackSegment(size, i int) (a, b canvas.Point, ok bool) {
	if size <= 0 {
		return a, b, false
	}
	a = canvas.Pt((i*7)%size, (i*11)%size)
	b = canvas.Pt(((i+1)*13)%size, ((i+1)*17)%size)
	return a, b, true
}

// CrackSegments is the number of segments drawn for stage.
func CrackSegments(stage int) int { return stage + 2 }

// Crack draws the overlay for breaking stage 0..9: stage+2 dark segments, the
// first ones shared with every earlier stage.
func Crack(size, stage int) (*image.NRGBA, error) {
	if stage < 0 || stage >= CrackStages {
		return nil, fmt.Errorf("crack stage %d out of range [0,%d]", stage, CrackStages-1)
	}
	c, err := newTransparent(size, size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < CrackSegments(stage); i++ {
		a, b, _ := crackSegment(size, i)
		c.Line(a, b, crackInk, 1)
	}
	return c.Image()
}
