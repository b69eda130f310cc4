package config

import (
	"errors"
	"fmt"
)

// ErrDuplicateBinding is returned when one key is bound to two actions.
var ErrDuplicateBinding = errors.New("config: key bound more than once")

// ReservedKeys are handled by the platform and cannot be bound to player actions.
var ReservedKeys = []string{"q", "ctrl+c", "p", "r", "b", "esc", "ctrl+s"}

// Controls holds the two logical action sets, one per player.
// Keys use Bubble Tea key names ("space", "up", "e", ...).
type Controls struct {
	P1Flip  []string `yaml:"p1_flip"`
	P1Boost []string `yaml:"p1_boost"`
	P2Flip  []string `yaml:"p2_flip"`
	P2Boost []string `yaml:"p2_boost"`
}

// DefaultControls returns the stock bindings.
func DefaultControls() Controls {
	return Controls{
		P1Flip:  []string{"space"},
		P1Boost: []string{"e"},
		P2Flip:  []string{"up"},
		P2Boost: []string{"i"},
	}
}

// Validate rejects empty action sets and any key used twice,
// including keys reserved by the platform.
func (c Controls) Validate() error {
	seen := make(map[string]string)
	for _, k := range ReservedKeys {
		seen[k] = "platform"
	}

	bindings := []struct {
		name string
		keys []string
	}{
		{"p1_flip", c.P1Flip},
		{"p1_boost", c.P1Boost},
		{"p2_flip", c.P2Flip},
		{"p2_boost", c.P2Boost},
	}

	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("config: %s has no keys", b.name)
		}
		for _, k := range b.keys {
			if owner, ok := seen[k]; ok {
				return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateBinding, k, owner, b.name)
			}
			seen[k] = b.name
		}
	}
	return nil
}
