// Package hud draws the telemetry overlay: session time, positions and frame rate.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/arena/internal/core/geom"
	"chosenoffset.com/arena/internal/render"
)

// Stats is the data shown on one frame
type Stats struct {
	Elapsed   float64 // Seconds since session start
	Player    geom.Vec2
	Camera    geom.Vec2
	FoodCount int
	FPS       float64
}

// HUD manages the heads-up display
type HUD struct {
	renderer render.Renderer
	visible  bool

	// Top-left corner and line spacing in pixels
	x, y        int
	lineSpacing int
	padding     int

	textColor  color.Color
	panelColor color.Color
}

// New creates a visible HUD in the top-left corner
func New(r render.Renderer) *HUD {
	return &HUD{
		renderer:    r,
		visible:     true,
		x:           8,
		y:           8,
		lineSpacing: 4,
		padding:     4,
		textColor:   color.RGBA{255, 255, 255, 255},
		panelColor:  color.RGBA{0, 0, 0, 160},
	}
}

// Toggle shows or hides the HUD
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the HUD is drawn
func (h *HUD) Visible() bool {
	return h.visible
}

// Lines formats stats as the text rows of the HUD
func (h *HUD) Lines(s Stats) []string {
	minutes := int(s.Elapsed) / 60
	seconds := s.Elapsed - float64(minutes*60)
	return []string{
		fmt.Sprintf("Time   %02d:%05.2f", minutes, seconds),
		fmt.Sprintf("Player %7.1f %7.1f", s.Player.X, s.Player.Y),
		fmt.Sprintf("Camera %7.1f %7.1f", s.Camera.X, s.Camera.Y),
		fmt.Sprintf("Food   %d", s.FoodCount),
		fmt.Sprintf("FPS    %.0f", s.FPS),
	}
}

// Draw renders the HUD onto screen
func (h *HUD) Draw(screen render.Image, s Stats) {
	if !h.visible {
		return
	}
	lines := h.Lines(s)

	width, height := 0, 0
	heights := make([]int, len(lines))
	for i, line := range lines {
		lw, lh := h.renderer.MeasureText(line)
		if lw > width {
			width = lw
		}
		heights[i] = lh
		height += lh
	}
	if len(lines) > 1 {
		height += (len(lines) - 1) * h.lineSpacing
	}

	pad := h.padding
	h.renderer.FillRect(screen,
		float32(h.x-pad), float32(h.y-pad),
		float32(width+2*pad), float32(height+2*pad),
		h.panelColor)

	y := h.y
	for i, line := range lines {
		h.renderer.DrawText(screen, line, h.x, y, h.textColor)
		y += heights[i] + h.lineSpacing
	}
}
