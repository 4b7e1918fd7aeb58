package game

import (
	"log"

	"chosenoffset.com/arena/internal/input"
	"chosenoffset.com/arena/internal/render"
	"chosenoffset.com/arena/internal/ui/hud"
)

// Manager connects a Game to the window layer: it turns polled key
// transitions into events, ticks the game and draws snapshots.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Engine       render.Engine
	HUD          *hud.HUD

	pressed  []input.Key
	released []input.Key
	events   []input.Event
}

// NewManager creates a new game manager.
func NewManager(g *Game, r render.Renderer, inputMgr render.InputManager, engine render.Engine, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Game:         g,
		Renderer:     r,
		InputMgr:     inputMgr,
		Engine:       engine,
		HUD:          hud.New(r),
	}
}

// Update collects this frame's key transitions and advances the game.
// Presses are queued before releases so a key tapped within one frame ends
// up released.
func (m *Manager) Update() error {
	m.pressed = m.InputMgr.AppendJustPressedKeys(m.pressed[:0])
	m.released = m.InputMgr.AppendJustReleasedKeys(m.released[:0])

	m.events = m.events[:0]
	for _, k := range m.pressed {
		switch k {
		case input.KeyEscape:
			log.Println("Quit requested")
			return render.ErrQuit
		case input.KeyF1:
			m.HUD.Toggle()
		default:
			m.events = append(m.events, input.Press(k))
		}
	}
	for _, k := range m.released {
		m.events = append(m.events, input.Release(k))
	}

	m.Game.Push(m.events...)
	m.Game.Tick()
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	snap := m.Game.Snapshot()
	m.drawWorld(screen, snap)

	stats := hud.Stats{
		Elapsed:   snap.Elapsed,
		Player:    snap.Player.Position,
		Camera:    snap.Camera,
		FoodCount: len(snap.Food),
	}
	if m.Engine != nil {
		stats.FPS = m.Engine.ActualFPS()
	}
	m.HUD.Draw(screen, stats)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.ScreenWidth = outsideWidth
	m.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
