package canvas

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// ellipseMask reports, for every pixel of b, whether its centre lies inside
// the ellipse inscribed in b. Rows are indexed from b.Y0, columns from b.X0.
func ellipseMask(b Box) [][]bool {
	w := b.X1 - b.X0 + 1
	h := b.Y1 - b.Y0 + 1
	rx := float64(w) / 2
	ry := float64(h) / 2
	mask := make([][]bool, h)
	for j := 0; j < h; j++ {
		mask[j] = make([]bool, w)
		dy := (float64(j) + 0.5 - ry) / ry
		for i := 0; i < w; i++ {
			dx := (float64(i) + 0.5 - rx) / rx
			mask[j][i] = dx*dx+dy*dy <= 1
		}
	}
	return mask
}

// FillEllipse fills the ellipse inscribed in b.
func (c *Canvas) FillEllipse(b Box, col color.NRGBA) {
	if c.fail(b.validate("fill ellipse")) {
		return
	}
	for j, row := range ellipseMask(b) {
		for i, in := range row {
			if in {
				c.set(b.X0+i, b.Y0+j, col)
			}
		}
	}
}

// OutlineEllipse draws the one-pixel boundary of the ellipse inscribed in b:
// the inside pixels with at least one 4-neighbour outside.
func (c *Canvas) OutlineEllipse(b Box, col color.NRGBA) {
	if c.fail(b.validate("outline ellipse")) {
		return
	}
	mask := ellipseMask(b)
	inside := func(i, j int) bool {
		if j < 0 || j >= len(mask) || i < 0 || i >= len(mask[j]) {
			return false
		}
		return mask[j][i]
	}
	for j, row := range mask {
		for i, in := range row {
			if !in {
				continue
			}
			if !inside(i-1, j) || !inside(i+1, j) || !inside(i, j-1) || !inside(i, j+1) {
				c.set(b.X0+i, b.Y0+j, col)
			}
		}
	}
}

func validatePolygon(op string, pts []Point) error {
	if len(pts) < 3 {
		return fmt.Errorf("%s with %d points: %w: need at least 3", op, len(pts), ErrInvalidGeometry)
	}
	return nil
}

// FillPolygon fills the closed polygon through pts, boundary included.
// Interior pixels are chosen by the even-odd rule sampled at integer rows.
func (c *Canvas) FillPolygon(pts []Point, col color.NRGBA) {
	if c.fail(validatePolygon("fill polygon", pts)) {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	var xs []float64
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			if (a.Y <= y && y < b.Y) || (b.Y <= y && y < a.Y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			from := int(math.Ceil(xs[k]))
			to := int(math.Floor(xs[k+1]))
			for x := from; x <= to; x++ {
				c.set(x, y, col)
			}
		}
	}
	c.polyline(pts, col)
}

// OutlinePolygon draws the closed edge path through pts.
func (c *Canvas) OutlinePolygon(pts []Point, col color.NRGBA) {
	if c.fail(validatePolygon("outline polygon", pts)) {
		return
	}
	c.polyline(pts, col)
}

func (c *Canvas) polyline(pts []Point, col color.NRGBA) {
	for i := range pts {
		c.bresenham(pts[i], pts[(i+1)%len(pts)], col, 1)
	}
}

// Line draws a straight segment from a to b. Widths above one stamp a
// width x width square centred on every step.
func (c *Canvas) Line(a, b Point, col color.NRGBA, width int) {
	if width < 1 {
		c.fail(fmt.Errorf("line (%d,%d)-(%d,%d) width %d: %w: width must be >= 1", a.X, a.Y, b.X, b.Y, width, ErrInvalidGeometry))
		return
	}
	if c.err != nil {
		return
	}
	c.bresenham(a, b, col, width)
}

func (c *Canvas) bresenham(a, b Point, col color.NRGBA, width int) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy
	x, y := a.X, a.Y
	for {
		c.stamp(x, y, col, width)
		if x == b.X && y == b.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func (c *Canvas) stamp(x, y int, col color.NRGBA, width int) {
	if width == 1 {
		c.set(x, y, col)
		return
	}
	off := (width - 1) / 2
	for j := 0; j < width; j++ {
		for i := 0; i < width; i++ {
			c.set(x-off+i, y-off+j, col)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
