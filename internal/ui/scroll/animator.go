package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.01

// Spring configures the scroll animation
type Spring struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultSpring is a quick, critically damped spring
func DefaultSpring() Spring {
	return Spring{FPS: 60, Frequency: 8.0, Damping: 1.0}
}

// Animator moves the scroll container's offset toward a target. A new
// target retargets the motion from the current position and velocity.
type Animator struct {
	spring    harmonica.Spring
	interval  time.Duration
	pos       float64
	vel       float64
	target    float64
	animating bool
}

// NewAnimator creates an animator resting at 0
func NewAnimator(s Spring) *Animator {
	if s.FPS <= 0 {
		s.FPS = DefaultSpring().FPS
	}
	return &Animator{
		spring:   harmonica.NewSpring(harmonica.FPS(s.FPS), s.Frequency, s.Damping),
		interval: time.Second / time.Duration(s.FPS),
	}
}

// Position is the offset currently shown
func (a *Animator) Position() float64 { return a.pos }

// Target is where the container comes to rest
func (a *Animator) Target() float64 { return a.target }

// Animating reports whether frames are still needed
func (a *Animator) Animating() bool { return a.animating }

// Interval is the time between two frames
func (a *Animator) Interval() time.Duration { return a.interval }

// SetTarget starts or retargets the animation. It reports false when y is
// already the target, so repeated requests never stack.
func (a *Animator) SetTarget(y float64) bool {
	if y == a.target {
		return false
	}
	a.target = y
	a.animating = a.pos != y || a.vel != 0
	return true
}

// Jump moves to y immediately and stops any animation
func (a *Animator) Jump(y float64) {
	a.pos, a.vel, a.target = y, 0, y
	a.animating = false
}

// Constrain folds both position and target into [lo, hi]
func (a *Animator) Constrain(lo, hi float64) {
	clamp := func(v float64) float64 { return math.Max(lo, math.Min(v, hi)) }
	if p := clamp(a.pos); p != a.pos {
		a.pos, a.vel = p, 0
	}
	a.target = clamp(a.target)
	a.animating = a.pos != a.target
}

// Step advances one frame and reports whether another frame is needed
func (a *Animator) Step() bool {
	if !a.animating {
		return false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon {
		a.pos, a.vel = a.target, 0
		a.animating = false
	}
	return a.animating
}
