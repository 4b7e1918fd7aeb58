package hud

import (
	"image/color"
	"testing"

	"chosenoffset.com/arena/internal/core/geom"
	"chosenoffset.com/arena/internal/render"
)

type textCall struct {
	text string
	x, y int
}

type rectCall struct {
	x, y, w, h float32
	clr        color.Color
}

type fakeRenderer struct {
	texts []textCall
	rects []rectCall
}

func (f *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {}

func (f *fakeRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {}

func (f *fakeRenderer) FillRect(_ render.Image, x, y, w, h float32, clr color.Color) {
	f.rects = append(f.rects, rectCall{x, y, w, h, clr})
}

func (f *fakeRenderer) DrawText(_ render.Image, s string, x, y int, _ color.Color) {
	f.texts = append(f.texts, textCall{s, x, y})
}

func (f *fakeRenderer) MeasureText(s string) (int, int) { return len(s) * 7, 13 }

type fakeImage struct{}

func (fakeImage) Size() (int, int) { return 640, 480 }
func (fakeImage) Fill(color.Color) {}

func TestLines(t *testing.T) {
	h := New(&fakeRenderer{})
	lines := h.Lines(Stats{
		Elapsed:   75.5,
		Player:    geom.Vec2{X: 14.14, Y: -3},
		FoodCount: 6,
		FPS:       59.6,
	})

	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d", len(lines))
	}
	if lines[0] != "Time   01:15.50" {
		t.Errorf("Expected time line 'Time   01:15.50', got '%s'", lines[0])
	}
	if lines[1] != "Player    14.1    -3.0" {
		t.Errorf("Unexpected player line '%s'", lines[1])
	}
	if lines[3] != "Food   6" {
		t.Errorf("Expected 'Food   6', got '%s'", lines[3])
	}
	if lines[4] != "FPS    60" {
		t.Errorf("Expected 'FPS    60', got '%s'", lines[4])
	}
}

func TestDrawStacksLines(t *testing.T) {
	r := &fakeRenderer{}
	h := New(r)
	h.Draw(fakeImage{}, Stats{})

	if len(r.texts) != 5 {
		t.Fatalf("Expected 5 text draws, got %d", len(r.texts))
	}
	for i := 1; i < len(r.texts); i++ {
		if r.texts[i].y != r.texts[i-1].y+17 {
			t.Errorf("Line %d: expected y %d, got %d", i, r.texts[i-1].y+17, r.texts[i].y)
		}
	}
}

func TestToggleHides(t *testing.T) {
	r := &fakeRenderer{}
	h := New(r)
	h.Toggle()
	if h.Visible() {
		t.Error("Expected HUD hidden after toggle")
	}
	h.Draw(fakeImage{}, Stats{})
	if len(r.texts) != 0 || len(r.rects) != 0 {
		t.Errorf("Expected no draws while hidden, got %d texts and %d rects", len(r.texts), len(r.rects))
	}
}

func TestDrawBacksTextWithPanel(t *testing.T) {
	r := &fakeRenderer{}
	h := New(r)
	s := Stats{FoodCount: 6}
	h.Draw(fakeImage{}, s)

	if len(r.rects) != 1 {
		t.Fatalf("Expected 1 panel, got %d", len(r.rects))
	}
	panel := r.rects[0]
	if panel.clr != h.panelColor {
		t.Errorf("Expected panel color %v, got %v", h.panelColor, panel.clr)
	}

	widest := 0
	for _, line := range h.Lines(s) {
		if w := len(line) * 7; w > widest {
			widest = w
		}
	}
	if panel.x != 4 || panel.y != 4 {
		t.Errorf("Expected panel at (4, 4), got (%v, %v)", panel.x, panel.y)
	}
	if panel.w != float32(widest+8) {
		t.Errorf("Expected panel width %d, got %v", widest+8, panel.w)
	}
	// 5 lines of 13px with 4px gaps between them, plus padding.
	if panel.h != float32(5*13+4*4+8) {
		t.Errorf("Expected panel height %d, got %v", 5*13+4*4+8, panel.h)
	}
}
