package drawer

import (
	"math"

	"github.com/andareed/profilecard/logging"
	"github.com/charmbracelet/harmonica"
)

// A settle is finished once the spring is this close to its target and
// moving slower than restSpeed (units per second).
const (
	restDistance = 0.5
	restSpeed    = 1.0
)

type dragContext struct {
	y float64
}

// Controller owns the drawer offset. It is not safe for concurrent use; all
// calls are expected from the single UI update loop.
type Controller struct {
	cfg    Config
	spring harmonica.Spring

	offset   float64
	velocity float64
	phase    Phase
	drag     dragContext
	target   SnapTarget
	blur     int
}

func New(cfg Config) *Controller {
	cfg = cfg.withDefaults()
	return &Controller{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		offset: cfg.Initial,
		phase:  Idle,
	}
}

// GestureStart captures the live offset as the drag baseline. Starting a drag
// while settling cancels the settle without a jump.
func (c *Controller) GestureStart() {
	if c.phase == Settling {
		logging.Debugf("drawer: settle toward %s interrupted at %.1f", c.target, c.offset)
	}
	c.drag = dragContext{y: c.offset}
	c.velocity = 0
	c.phase = Dragging
}

// GestureUpdate moves the offset to baseline+translation. The result is not
// clamped and may leave the snap range while the finger is down.
func (c *Controller) GestureUpdate(translation float64) {
	if c.phase != Dragging {
		return
	}
	c.offset = c.drag.y + translation
	c.blur = BlurIntensity(c.offset)
}

// GestureEnd resolves the release. It reports the committed target, or false
// when the offset was dropped in the unresolved middle band and left as is.
func (c *Controller) GestureEnd() (SnapTarget, bool) {
	if c.phase != Dragging {
		return c.target, false
	}
	c.drag = dragContext{}

	var target SnapTarget
	switch {
	case c.offset < c.cfg.LowThreshold:
		target = SnapCollapsed
	case c.offset >= c.cfg.HighThreshold:
		target = SnapExpanded
	case c.cfg.CloseGap:
		target = SnapPartial
	default:
		logging.Debugf("drawer: released at %.1f, between thresholds; no snap", c.offset)
		c.phase = Idle
		return c.target, false
	}

	c.target = target
	c.velocity = 0
	c.phase = Settling
	logging.Debugf("drawer: released at %.1f, settling %s (%.0f)", c.offset, target, c.cfg.Value(target))
	return target, true
}

// Step advances a settle by one frame and reports whether it is still
// running. When it finishes the offset is exactly the target value.
func (c *Controller) Step() bool {
	if c.phase != Settling {
		return false
	}
	goal := c.cfg.Value(c.target)
	c.offset, c.velocity = c.spring.Update(c.offset, c.velocity, goal)
	if math.Abs(c.offset-goal) < restDistance && math.Abs(c.velocity) < restSpeed {
		c.offset = goal
		c.velocity = 0
		c.phase = Idle
		return false
	}
	return true
}

func (c *Controller) Offset() float64    { return c.offset }
func (c *Controller) Phase() Phase       { return c.phase }
func (c *Controller) Target() SnapTarget { return c.target }
func (c *Controller) Config() Config     { return c.cfg }

// Blur is the blur intensity recorded on the last drag update. Nothing draws
// it yet; it is kept for a blur-driven backdrop.
func (c *Controller) Blur() int { return c.blur }

// Opacity of the background portrait for the current offset.
func (c *Controller) Opacity() float64 { return Opacity(c.offset) }

func BlurIntensity(offset float64) int {
	return int(math.Floor(math.Max(offset, 0) / 8))
}
