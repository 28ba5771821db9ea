// Package preview lays generated textures out on a single contact sheet so a
// whole run can be eyeballed at once.
package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/poorcraft/texgen/internal/layout"
)

// Sheet geometry.
const (
	DefaultColumns = 6
	cellPx         = 72
	imagePx        = 64
	labelPx        = 14
	titlePx        = 28
	checkerPx      = 8
)

var (
	Background = color.NRGBA{R: 0x1E, G: 0x1E, B: 0x24, A: 0xFF}
	Foreground = color.NRGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}
	checkDark  = color.NRGBA{R: 0x50, G: 0x50, B: 0x58, A: 0xFF}
	checkLight = color.NRGBA{R: 0x70, G: 0x70, B: 0x78, A: 0xFF}
)

// Item is one labelled thumbnail.
type Item struct {
	Label string
	Image image.Image
}

// Sheet renders items into a grid of fixed cells under a title line.
type Sheet struct {
	Title   string
	Columns int

	labelFace font.Face
	titleFont *truetype.Font
}

// New prepares a sheet with the Go Regular font. Labels fall back to the
// built-in 7x13 face when the font cannot be loaded.
func New(title string) *Sheet {
	s := &Sheet{Title: title, Columns: DefaultColumns, labelFace: basicfont.Face7x13}
	if fnt, err := opentype.Parse(goregular.TTF); err == nil {
		if face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 9, DPI: 72, Hinting: font.HintingFull}); err == nil {
			s.labelFace = face
		}
	}
	if tt, err := truetype.Parse(goregular.TTF); err == nil {
		s.titleFont = tt
	}
	return s
}

// Size returns the sheet dimensions for n items.
func (s *Sheet) Size(n int) (width int, height int) {
	cols := s.columns()
	rows := (n + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}
	return cols * cellPx, titlePx + rows*(cellPx+labelPx)
}

func (s *Sheet) columns() int {
	if s.Columns <= 0 {
		return DefaultColumns
	}
	return s.Columns
}

// Render draws every item. Images larger than a cell are shrunk, smaller
// ones are enlarged by the largest whole factor that fits; both use
// nearest-neighbour sampling so texels stay sharp.
func (s *Sheet) Render(items []Item) (*image.NRGBA, error) {
	w, h := s.Size(len(items))
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(Background), image.Point{}, xdraw.Src)

	titleBand, grid := layout.SplitHorizontal(dst.Bounds(), titlePx)
	if err := s.drawTitle(dst, titleBand, fmt.Sprintf("%s (%d)", s.Title, len(items))); err != nil {
		return nil, err
	}

	cells := layout.SlotGrid(grid.Min, s.columns(), (len(items)+s.columns()-1)/s.columns(), cellPx, cellPx)
	for i, item := range items {
		if item.Image == nil {
			return nil, fmt.Errorf("preview item %d (%s): no image", i, item.Label)
		}
		// SlotGrid pitches rows by cellPx; shift each row down by its label bands.
		cell := cells[i].Add(image.Pt(0, (i/s.columns())*labelPx))
		thumbArea := layout.Center(cell, imagePx, imagePx)
		src := item.Image.Bounds()
		tw, th := fit(src.Dx(), src.Dy(), imagePx)
		target := layout.Center(thumbArea, tw, th)
		checker(dst, target)
		xdraw.NearestNeighbor.Scale(dst, target, item.Image, src, xdraw.Over, nil)

		labelBand := image.Rect(cell.Min.X, cell.Max.Y, cell.Max.X, cell.Max.Y+labelPx)
		s.drawLabel(dst, labelBand, item.Label)
	}
	return dst, nil
}

// fit scales (w, h) to fit a box of edge px, by a whole factor when growing.
func fit(w, h, px int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	if w <= px && h <= px {
		k := min(px/w, px/h)
		return w * k, h * k
	}
	if w >= h {
		return px, max(1, h*px/w)
	}
	return max(1, w*px/h), px
}

func checker(dst *image.NRGBA, r image.Rectangle) {
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := checkDark
			if ((x-r.Min.X)/checkerPx+(y-r.Min.Y)/checkerPx)%2 == 1 {
				c = checkLight
			}
			dst.SetNRGBA(x, y, c)
		}
	}
}

func (s *Sheet) drawTitle(dst *image.NRGBA, band image.Rectangle, text string) error {
	if s.titleFont == nil {
		s.drawText(dst, band, text, basicfont.Face7x13)
		return nil
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(s.titleFont)
	ctx.SetFontSize(14)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(band)
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(Foreground))
	inner := layout.Inset(band, 6)
	if _, err := ctx.DrawString(text, freetype.Pt(inner.Min.X, inner.Max.Y-2)); err != nil {
		return fmt.Errorf("draw title: %w", err)
	}
	return nil
}

func (s *Sheet) drawLabel(dst *image.NRGBA, band image.Rectangle, text string) {
	face := s.labelFace
	if face == nil {
		face = basicfont.Face7x13
	}
	s.drawText(dst, band, text, face)
}

// drawText centres text horizontally in band, shortening it to fit.
func (s *Sheet) drawText(dst *image.NRGBA, band image.Rectangle, text string, face font.Face) {
	drawer := &font.Drawer{Dst: dst, Src: image.NewUniform(Foreground), Face: face}
	limit := fixed.I(band.Dx() - 2)
	runes := []rune(text)
	for len(runes) > 1 && drawer.MeasureString(string(runes)) > limit {
		runes = runes[:len(runes)-1]
	}
	text = string(runes)
	width := drawer.MeasureString(text).Ceil()
	metrics := face.Metrics()
	baseline := band.Min.Y + (band.Dy()+metrics.Ascent.Ceil()-metrics.Descent.Ceil())/2
	drawer.Dot = fixed.P(band.Min.X+(band.Dx()-width)/2, baseline)
	drawer.DrawString(text)
}
