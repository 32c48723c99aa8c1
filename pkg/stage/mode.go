// Package stage owns the ornament collection and the global layout state.
// It is the single mutation entry point for mode changes, object creation,
// gesture toggling and resets; everything else observes.
package stage

import "fmt"

// Mode is the global layout state. Exactly one mode is active at a time.
type Mode int

const (
	// ModeTree arranges everything on a descending helix.
	ModeTree Mode = iota
	// ModeScatter throws everything into a spherical shell, free-spinning.
	ModeScatter
	// ModeFocus enlarges one photo front and center.
	ModeFocus
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeTree:
		return "tree"
	case ModeScatter:
		return "scatter"
	case ModeFocus:
		return "focus"
	default:
		return "unknown"
	}
}

// valid reports whether m is one of the three defined modes.
func (m Mode) valid() bool {
	return m == ModeTree || m == ModeScatter || m == ModeFocus
}

// ParseMode converts a mode name from the control API into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "tree":
		return ModeTree, nil
	case "scatter":
		return ModeScatter, nil
	case "focus":
		return ModeFocus, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
