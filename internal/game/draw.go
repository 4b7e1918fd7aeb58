package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/arena/internal/core/geom"
	"chosenoffset.com/arena/internal/entity"
	"chosenoffset.com/arena/internal/render"
)

var (
	backgroundColor = color.RGBA{26, 51, 77, 255}
	outlineColor    = color.RGBA{255, 255, 255, 90}
)

func (m *Manager) drawWorld(screen render.Image, snap Snapshot) {
	screen.Fill(backgroundColor)

	w, h := screen.Size()
	for _, c := range snap.Food {
		m.drawCircle(screen, c, snap.Camera, w, h)
	}
	m.drawCircle(screen, snap.Player, snap.Camera, w, h)

	// Outline the player so it stands out from food of similar color
	x, y := worldToScreen(snap.Player.Position, snap.Camera, w, h)
	m.Renderer.StrokeCircle(screen, x, y, float32(snap.Player.Radius), 2, outlineColor)
}

func (m *Manager) drawCircle(screen render.Image, c entity.Circle, camera geom.Vec2, w, h int) {
	x, y := worldToScreen(c.Position, camera, w, h)
	r := float32(c.Radius)
	if x+r < 0 || y+r < 0 || x-r > float32(w) || y-r > float32(h) {
		return
	}
	m.Renderer.FillCircle(screen, x, y, r, blendColor(c))
}

// worldToScreen maps a world position to pixels. The camera sits at the
// center of the screen and world +Y is screen up.
func worldToScreen(p, camera geom.Vec2, w, h int) (float32, float32) {
	rel := p.Sub(camera)
	return float32(float64(w)/2 + rel.X), float32(float64(h)/2 - rel.Y)
}

// blendColor mixes a circle's colors by its phase: Base at phase 0, New as
// phase approaches 1.
func blendColor(c entity.Circle) color.Color {
	t := c.Phase
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	from := colorful.Color{R: c.Base.R, G: c.Base.G, B: c.Base.B}
	to := colorful.Color{R: c.New.R, G: c.New.G, B: c.New.B}
	r, g, b := from.BlendRgb(to, t).Clamped().RGB255()
	a := c.Base.A + (c.New.A-c.Base.A)*t
	return color.NRGBA{R: r, G: g, B: b, A: entity.Color{A: a}.NRGBA().A}
}
