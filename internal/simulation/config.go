// Package simulation provides configuration for the arena simulation.
// Defaults can be overridden by a JSON file and then by a .env file.
package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"chosenoffset.com/arena/internal/entity"
)

// Config holds everything fixed at session start
type Config struct {
	FoodCount        int     `json:"food_count"`         // Number of food circles spawned
	PlayerSpeed      float64 `json:"player_speed"`       // Units per second
	CameraSpeed      float64 `json:"camera_speed"`       // Units per second
	ColorCyclePeriod float64 `json:"color_cycle_period"` // Seconds per color cycle
	MaxFrameDelta    float64 `json:"max_frame_delta"`    // Cap on a single frame's dt, 0 = uncapped
	Seed             int64   `json:"seed"`               // Food RNG seed, 0 = seed from time

	Spawn SpawnConfig `json:"spawn"`

	PlayerKeys map[string]string `json:"player_keys"` // direction name -> key name
	CameraKeys map[string]string `json:"camera_keys"`

	Window WindowConfig `json:"window"`
}

// SpawnConfig defines where and how large circles are created
type SpawnConfig struct {
	Extent       float64 `json:"extent"`        // Food spawns in [-extent, extent) on both axes
	MinRadius    float64 `json:"min_radius"`    // Smallest food radius
	MaxRadius    float64 `json:"max_radius"`    // Largest food radius (exclusive)
	PlayerRadius float64 `json:"player_radius"` // Radius of the player circle
}

// WindowConfig defines the initial window
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// DefaultConfig returns the values the arena ships with
func DefaultConfig() *Config {
	b := entity.DefaultSpawnBounds()
	return &Config{
		FoodCount:        6,
		PlayerSpeed:      200,
		CameraSpeed:      200,
		ColorCyclePeriod: 1.0,
		MaxFrameDelta:    0.25,
		Spawn: SpawnConfig{
			Extent:       b.Extent,
			MinRadius:    b.MinRadius,
			MaxRadius:    b.MaxRadius,
			PlayerRadius: entity.DefaultRadius,
		},
		PlayerKeys: map[string]string{"up": "W", "right": "D", "down": "S", "left": "A"},
		CameraKeys: map[string]string{"up": "W", "right": "D", "down": "S", "left": "A"},
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "Arena",
		},
	}
}

// LoadConfig loads config from a JSON file on top of the defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	return config, nil
}

// Environment variables read by ApplyEnvFile
const (
	EnvFoodCount        = "ARENA_FOOD_COUNT"
	EnvPlayerSpeed      = "ARENA_PLAYER_SPEED"
	EnvCameraSpeed      = "ARENA_CAMERA_SPEED"
	EnvColorCyclePeriod = "ARENA_COLOR_CYCLE_PERIOD"
	EnvSeed             = "ARENA_SEED"
)

// ApplyEnvFile overrides config values from a .env file. A missing file is
// not an error.
func (c *Config) ApplyEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read env file: %w", err)
	}
	return c.ApplyEnv(vars)
}

// ApplyEnv overrides config values from a variable map
func (c *Config) ApplyEnv(vars map[string]string) error {
	if v, ok := vars[EnvFoodCount]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFoodCount, err)
		}
		c.FoodCount = n
	}
	floats := []struct {
		name string
		dst  *float64
	}{
		{EnvPlayerSpeed, &c.PlayerSpeed},
		{EnvCameraSpeed, &c.CameraSpeed},
		{EnvColorCyclePeriod, &c.ColorCyclePeriod},
	}
	for _, f := range floats {
		v, ok := vars[f.name]
		if !ok {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = x
	}
	if v, ok := vars[EnvSeed]; ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}
	return nil
}

// Validate reports the first setting that would break the simulation
func (c *Config) Validate() error {
	numbers := []struct {
		name  string
		value float64
	}{
		{"player_speed", c.PlayerSpeed},
		{"camera_speed", c.CameraSpeed},
		{"color_cycle_period", c.ColorCyclePeriod},
		{"max_frame_delta", c.MaxFrameDelta},
		{"spawn.extent", c.Spawn.Extent},
		{"spawn.min_radius", c.Spawn.MinRadius},
		{"spawn.max_radius", c.Spawn.MaxRadius},
		{"spawn.player_radius", c.Spawn.PlayerRadius},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", n.name, n.value)
		}
	}

	switch {
	case c.FoodCount < 0:
		return fmt.Errorf("food_count must not be negative, got %d", c.FoodCount)
	case c.PlayerSpeed <= 0:
		return fmt.Errorf("player_speed must be positive, got %v", c.PlayerSpeed)
	case c.CameraSpeed <= 0:
		return fmt.Errorf("camera_speed must be positive, got %v", c.CameraSpeed)
	case c.ColorCyclePeriod <= 0:
		return fmt.Errorf("color_cycle_period must be positive, got %v", c.ColorCyclePeriod)
	case c.MaxFrameDelta < 0:
		return fmt.Errorf("max_frame_delta must not be negative, got %v", c.MaxFrameDelta)
	case c.Spawn.PlayerRadius <= 0:
		return fmt.Errorf("spawn.player_radius must be positive, got %v", c.Spawn.PlayerRadius)
	case c.Spawn.MinRadius <= 0:
		return fmt.Errorf("spawn.min_radius must be positive, got %v", c.Spawn.MinRadius)
	case c.Spawn.MinRadius > c.Spawn.MaxRadius:
		return fmt.Errorf("spawn.min_radius %v exceeds spawn.max_radius %v", c.Spawn.MinRadius, c.Spawn.MaxRadius)
	case c.Spawn.Extent < 0:
		return fmt.Errorf("spawn.extent must not be negative, got %v", c.Spawn.Extent)
	}
	return nil
}

// SpawnBounds converts the spawn settings for the entity package
func (c *Config) SpawnBounds() entity.SpawnBounds {
	return entity.SpawnBounds{
		Extent:    c.Spawn.Extent,
		MinRadius: c.Spawn.MinRadius,
		MaxRadius: c.Spawn.MaxRadius,
	}
}
