package layout

import (
	"image"
	"testing"
)

func TestGrid2x2CoversRect(t *testing.T) {
	g := Grid2x2(image.Rect(0, 0, 256, 256))
	want := map[string]image.Rectangle{
		"top-left":     image.Rect(0, 0, 128, 128),
		"top-right":    image.Rect(128, 0, 256, 128),
		"bottom-left":  image.Rect(0, 128, 128, 256),
		"bottom-right": image.Rect(128, 128, 256, 256),
	}
	got := map[string]image.Rectangle{
		"top-left":     g.TopLeft,
		"top-right":    g.TopRight,
		"bottom-left":  g.BottomLeft,
		"bottom-right": g.BottomRight,
	}
	for name, r := range want {
		if got[name] != r {
			t.Errorf("%s = %v, want %v", name, got[name], r)
		}
	}
}

func TestInsetAndNormalize(t *testing.T) {
	if got := Inset(image.Rect(0, 0, 10, 10), 2); got != image.Rect(2, 2, 8, 8) {
		t.Errorf("Inset = %v", got)
	}
	if got := Inset(image.Rect(0, 0, 2, 2), 3); got != image.Rect(-1, -1, 3, 3) {
		t.Errorf("over-inset = %v", got)
	}
	if got := Inset(image.Rect(1, 1, 4, 4), 0); got != image.Rect(1, 1, 4, 4) {
		t.Errorf("zero inset changed rect: %v", got)
	}
}

func TestSplitHorizontalClamps(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 10, 20), 25)
	if top != image.Rect(0, 0, 10, 20) || !bottom.Empty() {
		t.Errorf("top=%v bottom=%v", top, bottom)
	}
}

func TestSlotGrid(t *testing.T) {
	cells := SlotGrid(image.Pt(10, 76), 9, 4, 19, 20)
	if len(cells) != 36 {
		t.Fatalf("len = %d, want 36", len(cells))
	}
	if cells[0] != image.Rect(10, 76, 29, 95) {
		t.Errorf("first cell = %v", cells[0])
	}
	if last := cells[35]; last.Min != image.Pt(170, 136) {
		t.Errorf("last cell origin = %v", last.Min)
	}
	if SlotGrid(image.Point{}, 0, 4, 19, 20) != nil {
		t.Error("zero columns should yield no cells")
	}
}

func TestCenter(t *testing.T) {
	if got := Center(image.Rect(0, 0, 10, 10), 4, 2); got != image.Rect(3, 4, 7, 6) {
		t.Errorf("Center = %v", got)
	}
}
