// Package drawer holds the state machine behind the skills drawer: it maps a
// vertical drag to an offset, resolves the release into a snap target and
// settles the offset there with a spring.
package drawer

import "fmt"

// Offsets are in source units (logical pixels of the screen, not rows).
const (
	DefaultInitial       = 300
	DefaultCollapsed     = 300
	DefaultPartial       = 400
	DefaultExpanded      = 500
	DefaultLowThreshold  = 200
	DefaultHighThreshold = 400

	DefaultFPS       = 60
	DefaultFrequency = 10.0
	DefaultDamping   = 1.0
)

type Config struct {
	Initial   float64
	Collapsed float64
	Partial   float64
	Expanded  float64

	// Releases below LowThreshold collapse, releases at or above
	// HighThreshold expand. Anything between stays where it was dropped
	// unless CloseGap is set, in which case it settles on Partial.
	LowThreshold  float64
	HighThreshold float64
	CloseGap      bool

	FPS       int
	Frequency float64 // angular frequency of the spring, rad/s
	Damping   float64 // 1 is critically damped
}

func DefaultConfig() Config {
	return Config{
		Initial:       DefaultInitial,
		Collapsed:     DefaultCollapsed,
		Partial:       DefaultPartial,
		Expanded:      DefaultExpanded,
		LowThreshold:  DefaultLowThreshold,
		HighThreshold: DefaultHighThreshold,
		FPS:           DefaultFPS,
		Frequency:     DefaultFrequency,
		Damping:       DefaultDamping,
	}
}

// Value returns the resting offset for a snap target.
func (c Config) Value(t SnapTarget) float64 {
	switch t {
	case SnapPartial:
		return c.Partial
	case SnapExpanded:
		return c.Expanded
	default:
		return c.Collapsed
	}
}

func (c Config) withDefaults() Config {
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Frequency <= 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Damping <= 0 {
		c.Damping = DefaultDamping
	}
	return c
}

type Phase int

const (
	Idle Phase = iota
	Dragging
	Settling
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "IDLE"
	case Dragging:
		return "DRAGGING"
	case Settling:
		return "SETTLING"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type SnapTarget int

const (
	SnapCollapsed SnapTarget = iota
	SnapPartial
	SnapExpanded
)

func (t SnapTarget) String() string {
	switch t {
	case SnapCollapsed:
		return "collapsed"
	case SnapPartial:
		return "partial"
	case SnapExpanded:
		return "expanded"
	default:
		return fmt.Sprintf("SnapTarget(%d)", int(t))
	}
}
