// Package game runs the arena: one player, a fixed set of food circles and
// a free camera, advanced once per frame.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"chosenoffset.com/arena/internal/clock"
	"chosenoffset.com/arena/internal/core/geom"
	"chosenoffset.com/arena/internal/entity"
	"chosenoffset.com/arena/internal/input"
	"chosenoffset.com/arena/internal/movement"
	"chosenoffset.com/arena/internal/simulation"
)

// Game holds all simulation state. It is not safe for concurrent use; the
// window layer calls Push and Tick from its update goroutine and reads state
// between ticks.
type Game struct {
	config *simulation.Config
	clock  *clock.GameClock

	player *entity.Player
	food   []entity.Food
	camera *movement.Camera

	playerKeys input.Bindings
	cameraKeys input.Bindings
	queue      input.Queue

	frame uint64
}

// New creates a game from cfg. clk and rng may be nil: the clock then reads
// the system time and food is seeded from cfg.Seed, or from the current time
// when the seed is zero.
func New(cfg *simulation.Config, clk *clock.GameClock, rng *rand.Rand) (*Game, error) {
	if cfg == nil {
		cfg = simulation.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	playerKeys, err := input.ParseBindings(cfg.PlayerKeys, input.WASD())
	if err != nil {
		return nil, fmt.Errorf("player keys: %w", err)
	}
	cameraKeys, err := input.ParseBindings(cfg.CameraKeys, input.WASD())
	if err != nil {
		return nil, fmt.Errorf("camera keys: %w", err)
	}

	if clk == nil {
		clk = clock.New(clock.System{})
	}
	clk.MaxDelta = cfg.MaxFrameDelta

	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	bounds := cfg.SpawnBounds()
	food := make([]entity.Food, cfg.FoodCount)
	for i := range food {
		food[i] = entity.NewFood(rng, bounds)
	}

	return &Game{
		config:     cfg,
		clock:      clk,
		player:     entity.NewPlayer(cfg.Spawn.PlayerRadius),
		food:       food,
		camera:     movement.NewCamera(cfg.CameraSpeed),
		playerKeys: playerKeys,
		cameraKeys: cameraKeys,
	}, nil
}

// Push queues key events for the next Tick, in arrival order.
func (g *Game) Push(events ...input.Event) {
	g.queue.Push(events...)
}

// Tick advances the game by one frame.
func (g *Game) Tick() {
	dt, _ := g.clock.Tick()
	g.step(dt)
}

// step runs one frame with a known dt: input, then movement, then animation.
func (g *Game) step(dt float64) {
	events := g.queue.Drain()
	g.playerKeys.ApplyAll(events, &g.player.State)
	g.cameraKeys.ApplyAll(events, &g.camera.Directions)

	entity.Move(g.player, g.config.PlayerSpeed, dt)
	g.camera.Update(dt)

	cycle := dt / g.config.ColorCyclePeriod
	g.player.Circle.Advance(cycle)
	for i := range g.food {
		g.food[i].Circle.Advance(cycle)
	}

	g.frame++
}

// Player returns a copy of the player's circle.
func (g *Game) Player() entity.Circle {
	return g.player.Circle
}

// PlayerDirections returns the player's held keys.
func (g *Game) PlayerDirections() movement.Directions {
	return g.player.State
}

// Food returns copies of the food circles in spawn order.
func (g *Game) Food() []entity.Circle {
	out := make([]entity.Circle, len(g.food))
	for i, f := range g.food {
		out[i] = f.Circle
	}
	return out
}

// Camera returns the camera position.
func (g *Game) Camera() geom.Vec2 {
	return g.camera.Position
}

// Elapsed returns seconds since the session started, as of the last Tick.
func (g *Game) Elapsed() float64 {
	return g.clock.Elapsed()
}

// Frame returns the number of ticks run so far.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Player:  g.Player(),
		Food:    g.Food(),
		Camera:  g.Camera(),
		Elapsed: g.Elapsed(),
		Frame:   g.frame,
	}
}
