package simulation

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.FoodCount != 6 {
		t.Errorf("Expected food_count 6, got %d", c.FoodCount)
	}
	if c.PlayerSpeed != 200 || c.CameraSpeed != 200 {
		t.Errorf("Expected speeds 200/200, got %v/%v", c.PlayerSpeed, c.CameraSpeed)
	}
	if c.ColorCyclePeriod != 1.0 {
		t.Errorf("Expected color_cycle_period 1.0, got %v", c.ColorCyclePeriod)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.FoodCount != 6 {
		t.Errorf("Expected defaults, got food_count %d", c.FoodCount)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.json")
	data := `{
		"food_count": 12,
		"player_speed": 150,
		"spawn": {"extent": 500, "min_radius": 5, "max_radius": 40, "player_radius": 30},
		"camera_keys": {"up": "Up", "right": "Right", "down": "Down", "left": "Left"}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.FoodCount != 12 || c.PlayerSpeed != 150 {
		t.Errorf("Expected overlay values 12/150, got %d/%v", c.FoodCount, c.PlayerSpeed)
	}
	if c.CameraSpeed != 200 {
		t.Errorf("Expected default camera_speed to survive overlay, got %v", c.CameraSpeed)
	}
	if c.Spawn.Extent != 500 || c.Spawn.PlayerRadius != 30 {
		t.Errorf("Expected spawn overlay, got %+v", c.Spawn)
	}
	if c.CameraKeys["up"] != "Up" {
		t.Errorf("Expected camera up bound to Up, got %q", c.CameraKeys["up"])
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestApplyEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "ARENA_FOOD_COUNT=3\nARENA_CAMERA_SPEED=75.5\nARENA_SEED=99\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	c := DefaultConfig()
	if err := c.ApplyEnvFile(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.FoodCount != 3 || c.CameraSpeed != 75.5 || c.Seed != 99 {
		t.Errorf("Expected 3/75.5/99, got %d/%v/%d", c.FoodCount, c.CameraSpeed, c.Seed)
	}
	if c.PlayerSpeed != 200 {
		t.Errorf("Expected player_speed untouched, got %v", c.PlayerSpeed)
	}
}

func TestApplyEnvFileMissing(t *testing.T) {
	c := DefaultConfig()
	if err := c.ApplyEnvFile(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	c := DefaultConfig()
	if err := c.ApplyEnv(map[string]string{EnvPlayerSpeed: "fast"}); err == nil {
		t.Error("Expected error for non-numeric speed")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative food", func(c *Config) { c.FoodCount = -1 }},
		{"zero player speed", func(c *Config) { c.PlayerSpeed = 0 }},
		{"zero camera speed", func(c *Config) { c.CameraSpeed = 0 }},
		{"zero period", func(c *Config) { c.ColorCyclePeriod = 0 }},
		{"negative max delta", func(c *Config) { c.MaxFrameDelta = -1 }},
		{"zero player radius", func(c *Config) { c.Spawn.PlayerRadius = 0 }},
		{"zero min radius", func(c *Config) { c.Spawn.MinRadius = 0 }},
		{"min over max", func(c *Config) { c.Spawn.MinRadius = 200 }},
		{"negative extent", func(c *Config) { c.Spawn.Extent = -5 }},
		{"infinite max radius", func(c *Config) { c.Spawn.MaxRadius = math.Inf(1) }},
		{"NaN player radius", func(c *Config) { c.Spawn.PlayerRadius = math.NaN() }},
		{"infinite max delta", func(c *Config) { c.MaxFrameDelta = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestValidateRejectsNonFiniteEnv(t *testing.T) {
	for _, name := range []string{EnvPlayerSpeed, EnvCameraSpeed, EnvColorCyclePeriod} {
		for _, value := range []string{"NaN", "Inf", "-Inf"} {
			t.Run(name+"="+value, func(t *testing.T) {
				c := DefaultConfig()
				if err := c.ApplyEnv(map[string]string{name: value}); err != nil {
					t.Fatalf("Unexpected parse error: %v", err)
				}
				if err := c.Validate(); err == nil {
					t.Errorf("Expected %s=%s to fail validation", name, value)
				}
			})
		}
	}
}
