package input

import (
	"fmt"

	"chosenoffset.com/arena/internal/movement"
)

// Bindings maps each movement direction to the key that drives it.
type Bindings map[movement.Direction]Key

// WASD returns the W/D/S/A bindings.
func WASD() Bindings {
	return Bindings{
		movement.DirUp:    KeyW,
		movement.DirRight: KeyD,
		movement.DirDown:  KeyS,
		movement.DirLeft:  KeyA,
	}
}

// Arrows returns the arrow-key bindings.
func Arrows() Bindings {
	return Bindings{
		movement.DirUp:    KeyUp,
		movement.DirRight: KeyRight,
		movement.DirDown:  KeyDown,
		movement.DirLeft:  KeyLeft,
	}
}

// PresetKey names the entry in a bindings map that selects a preset base.
const PresetKey = "preset"

// Preset returns the named binding set, "wasd" or "arrows".
func Preset(name string) (Bindings, error) {
	switch name {
	case "wasd":
		return WASD(), nil
	case "arrows":
		return Arrows(), nil
	}
	return nil, fmt.Errorf("unknown binding preset %q", name)
}

// ParseBindings builds bindings from direction names ("up", "right", "down",
// "left") to key names. A "preset" entry replaces fallback with the named
// preset. Directions missing from names keep their base binding.
func ParseBindings(names map[string]string, fallback Bindings) (Bindings, error) {
	if name, ok := names[PresetKey]; ok {
		preset, err := Preset(name)
		if err != nil {
			return nil, err
		}
		fallback = preset
	}
	b := make(Bindings, len(fallback))
	for dir, key := range fallback {
		b[dir] = key
	}
	for dirName, keyName := range names {
		if dirName == PresetKey {
			continue
		}
		dir, ok := directionByName(dirName)
		if !ok {
			return nil, fmt.Errorf("unknown direction %q", dirName)
		}
		key, err := ParseKey(keyName)
		if err != nil {
			return nil, fmt.Errorf("binding for %s: %w", dirName, err)
		}
		b[dir] = key
	}
	return b, nil
}

func directionByName(name string) (movement.Direction, bool) {
	for _, d := range movement.AllDirections {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// Apply updates state for ev. A press holds every direction bound to the key
// and a release lets go of it. It reports whether the key was bound.
func (b Bindings) Apply(ev Event, state *movement.Directions) bool {
	matched := false
	for dir, key := range b {
		if key != ev.Key {
			continue
		}
		state.Set(dir, ev.Kind == Pressed)
		matched = true
	}
	return matched
}

// ApplyAll applies events in order, so a later event for the same key wins.
func (b Bindings) ApplyAll(events []Event, state *movement.Directions) {
	for _, ev := range events {
		b.Apply(ev, state)
	}
}
