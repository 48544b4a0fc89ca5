package drawer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Follower trails a moving value with a spring. The render layer uses it to
// smooth the drawer position so jumps in the raw offset never show up as a
// jump on screen.
type Follower struct {
	spring   harmonica.Spring
	position float64
	velocity float64
}

func NewFollower(cfg Config) *Follower {
	cfg = cfg.withDefaults()
	return &Follower{
		spring:   harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		position: cfg.Initial,
	}
}

// Step moves one frame toward target and reports whether the follower is
// still in motion. At rest it sits exactly on target.
func (f *Follower) Step(target float64) bool {
	if f.AtRest(target) {
		f.position = target
		f.velocity = 0
		return false
	}
	f.position, f.velocity = f.spring.Update(f.position, f.velocity, target)
	if math.Abs(f.position-target) < restDistance && math.Abs(f.velocity) < restSpeed {
		f.position = target
		f.velocity = 0
		return false
	}
	return true
}

func (f *Follower) AtRest(target float64) bool {
	return f.position == target && f.velocity == 0
}

func (f *Follower) Position() float64 { return f.position }
