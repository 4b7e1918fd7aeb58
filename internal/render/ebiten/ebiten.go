package ebiten

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/arena/internal/input"
	"chosenoffset.com/arena/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeCircle(ebitenImg, x, y, radius, strokeWidth, clr, true)
}

// FillRect draws a filled rectangle on the destination image.
func (r *EbitenRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledRect(ebitenImg, x, y, width, height, clr, true)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *EbitenRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	// text.Draw positions the baseline, not the top.
	text.Draw(ebitenImg, str, basicfont.Face7x13, x, y+basicfont.Face7x13.Ascent, clr)
}

// MeasureText measures the width and height of text in the HUD face.
func (r *EbitenRenderer) MeasureText(str string) (width, height int) {
	b := text.BoundString(basicfont.Face7x13, str)
	return b.Dx(), basicfont.Face7x13.Height
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// EbitenInputManager implements the InputManager interface using Ebiten.
type EbitenInputManager struct {
	scratch []ebiten.Key
}

// NewInputManager creates a new Ebiten-based input manager.
func NewInputManager() render.InputManager {
	return &EbitenInputManager{}
}

// AppendJustPressedKeys appends the bound keys pressed this tick.
func (m *EbitenInputManager) AppendJustPressedKeys(keys []input.Key) []input.Key {
	m.scratch = inpututil.AppendJustPressedKeys(m.scratch[:0])
	return appendKnown(keys, m.scratch)
}

// AppendJustReleasedKeys appends the bound keys released this tick.
func (m *EbitenInputManager) AppendJustReleasedKeys(keys []input.Key) []input.Key {
	m.scratch = inpututil.AppendJustReleasedKeys(m.scratch[:0])
	return appendKnown(keys, m.scratch)
}

func appendKnown(keys []input.Key, raw []ebiten.Key) []input.Key {
	for _, k := range raw {
		if key := ebitenKeyToKey(k); key != input.KeyUnknown {
			keys = append(keys, key)
		}
	}
	return keys
}

var keyTable = []struct {
	key input.Key
	eb  ebiten.Key
}{
	{input.KeyW, ebiten.KeyW},
	{input.KeyA, ebiten.KeyA},
	{input.KeyS, ebiten.KeyS},
	{input.KeyD, ebiten.KeyD},
	{input.KeyUp, ebiten.KeyArrowUp},
	{input.KeyDown, ebiten.KeyArrowDown},
	{input.KeyLeft, ebiten.KeyArrowLeft},
	{input.KeyRight, ebiten.KeyArrowRight},
	{input.KeyEscape, ebiten.KeyEscape},
	{input.KeyF1, ebiten.KeyF1},
}

// ebitenKeyToKey converts an ebiten.Key to an input.Key.
func ebitenKeyToKey(k ebiten.Key) input.Key {
	for _, e := range keyTable {
		if e.eb == k {
			return e.key
		}
	}
	return input.KeyUnknown
}

// EbitenEngine implements the Engine interface using Ebiten.
type EbitenEngine struct{}

// NewEngine creates a new Ebiten-based game engine.
func NewEngine() render.Engine {
	return &EbitenEngine{}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// ActualFPS returns ebiten's measured frame rate.
func (e *EbitenEngine) ActualFPS() float64 {
	return ebiten.ActualFPS()
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game render.Game
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&EbitenImage{img: screen})
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
