package preview

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, wantW, wantH int
	}{
		{9, 9, 63, 63},
		{16, 16, 64, 64},
		{256, 256, 64, 64},
		{182, 22, 64, 7},
		{22, 182, 7, 64},
		{24, 18, 48, 36},
		{0, 5, 0, 0},
	}
	for _, tt := range tests {
		if w, h := fit(tt.w, tt.h, 64); w != tt.wantW || h != tt.wantH {
			t.Errorf("fit(%d, %d) = %d, %d, want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestSize(t *testing.T) {
	s := New("textures")
	if w, h := s.Size(0); w != 6*cellPx || h != titlePx+cellPx+labelPx {
		t.Errorf("Size(0) = %dx%d", w, h)
	}
	if _, h := s.Size(13); h != titlePx+3*(cellPx+labelPx) {
		t.Errorf("Size(13) height = %d", h)
	}
}

func TestRenderPlacesThumbnails(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	s := New("textures")
	s.Columns = 2
	img, err := s.Render([]Item{
		{Label: "heart_full.png", Image: solid(9, 9, red)},
		{Label: "test.png", Image: solid(256, 256, blue)},
		{Label: "hotbar.png", Image: solid(182, 22, red)},
	})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(3); img.Bounds() != image.Rect(0, 0, w, h) {
		t.Fatalf("bounds = %v, want %dx%d", img.Bounds(), w, h)
	}
	// Cell 0 spans x 0..72 below the title; its centre must be the red thumbnail.
	if got := img.NRGBAAt(36, titlePx+36); got != red {
		t.Errorf("cell 0 centre = %v", got)
	}
	if got := img.NRGBAAt(cellPx+36, titlePx+36); got != blue {
		t.Errorf("cell 1 centre = %v", got)
	}
	// Row 1 starts one cell plus one label band lower.
	if got := img.NRGBAAt(36, titlePx+cellPx+labelPx+36); got != red {
		t.Errorf("cell 2 centre = %v", got)
	}
	if got := img.NRGBAAt(36, titlePx+cellPx+labelPx+4); got != Background {
		t.Errorf("area above the hotbar thumbnail = %v, want background", got)
	}
}

func TestRenderRejectsMissingImage(t *testing.T) {
	if _, err := New("x").Render([]Item{{Label: "nil.png"}}); err == nil {
		t.Error("expected an error for a nil image")
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	items := []Item{{Label: "a.png", Image: solid(16, 16, color.NRGBA{G: 200, A: 255})}}
	a, err := New("x").Render(items)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New("x").Render(items)
	if err != nil {
		t.Fatal(err)
	}
	if string(a.Pix) != string(b.Pix) {
		t.Error("two renders differ")
	}
}
