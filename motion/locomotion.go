package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/bluebolt/common"
)

// Locomotion converts horizontal input into slope-aware velocity. Runs
// once per fixed tick, after physics, and is inert while movement is
// locked by a dash or wall jump.
type Locomotion struct {
	cfg   Config
	body  *Body
	probe *Probe
}

// NewLocomotion builds the locomotion step over the given body and probe.
func NewLocomotion(cfg Config, body *Body, probe *Probe) *Locomotion {
	return &Locomotion{cfg: cfg, body: body, probe: probe}
}

// Tick advances the locomotion step by dt with horizontal input moveX.
func (s *Locomotion) Tick(dt, moveX float64) {
	if !s.body.CanMove {
		return
	}

	if moveX != 0 {
		s.body.Forward = s.cfg.Right.Mul(common.Sign(moveX))
	}

	dir := s.moveDirection()

	// Only the vertical part of the current velocity survives the tick;
	// the horizontal part is rebuilt from input.
	_, fall := s.cfg.split(s.body.Velocity)

	speed := s.cfg.MoveSpeed
	if s.body.DashJump {
		speed = s.cfg.DashSpeed
	}
	horizontal := dir.Mul(moveX * speed)

	// Slope height change is positional, not a velocity spike: pull the
	// gravity-aligned part of the move out of the velocity and apply it
	// straight to position for this tick.
	climb := s.cfg.Gravity.Mul(horizontal.Dot(s.cfg.Gravity))
	s.body.Position = s.body.Position.Add(climb.Mul(dt))
	horizontal = horizontal.Sub(climb)

	s.body.Velocity = s.cfg.compose(horizontal, fall)
}

// moveDirection is the slope-projected movement direction: the right
// vector on flat or airborne ticks, otherwise the ground normal rotated
// a quarter turn about the plane axis and rescaled so flattened speed
// matches the unslanted case.
func (s *Locomotion) moveDirection() mgl64.Vec3 {
	dir := s.cfg.Right

	normal, grounded := s.probe.Grounded(groundMoveTolerance)
	if !grounded || s.probe.Walled(wallCheckDistance, s.body.Ducking()) {
		return dir
	}

	axis := s.cfg.Right.Cross(s.cfg.Gravity)
	dir = mgl64.QuatRotate(math.Pi/2, axis).Rotate(normal)
	if d := s.cfg.Right.Dot(dir); d != 0 {
		// A zero dot means the slope is perpendicular to the movement
		// plane; leave the direction unscaled for that tick.
		dir = dir.Mul(1 / d)
	}
	return dir
}
