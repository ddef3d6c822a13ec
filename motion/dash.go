package motion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/bluebolt/common"
)

type dashState uint8

const (
	dashEntering dashState = iota
	dashActive
	dashDecelerating
	dashDone
)

// Dash is the directional-dash state machine. It owns the movement lock
// and the gravity lock for its whole lifetime and restores both on every
// exit path. The active loop advances on fixed ticks; the deceleration
// tail advances on frames.
type Dash struct {
	cfg   Config
	body  *Body
	probe *Probe
	loco  *Locomotion

	state          dashState
	airDash        bool
	remaining      float64
	decelRemaining float64
}

// newDash enters the dash: lock movement, disable gravity, crouch the
// collider, and record whether this is an air dash.
func newDash(cfg Config, body *Body, probe *Probe, loco *Locomotion) *Dash {
	d := &Dash{
		cfg:   cfg,
		body:  body,
		probe: probe,
		loco:  loco,
		state: dashEntering,
	}
	d.body.CanMove = false
	d.body.UseGravity = false
	d.body.setCollider(ColliderDucking)
	_, onGround := d.probe.Grounded(groundMoveTolerance)
	d.airDash = !onGround
	d.remaining = dashDuration
	d.state = dashActive
	return d
}

// Done reports whether the dash has fully exited.
func (d *Dash) Done() bool { return d.state == dashDone }

// AirDash reports whether the dash started airborne.
func (d *Dash) AirDash() bool { return d.airDash }

// FixedTick advances the active dash loop by one fixed tick.
func (d *Dash) FixedTick(dt float64, in Frame) {
	if d.state != dashActive {
		return
	}

	_, onGround := d.probe.Grounded(groundMoveTolerance)
	ceiling := d.probe.Ceiling()
	walled := d.probe.Walled(wallCheckDistance, true)

	switch {
	case !d.airDash && !onGround: // ground dash that left the ground
		d.exitLoop(onGround)
		return
	case walled && !ceiling:
		d.exitLoop(onGround)
		return
	case onGround && !ceiling && !in.Dash.Down(): // button released in the open
		d.exitLoop(onGround)
		return
	}

	dir := d.loco.moveDirection()
	if d.body.Forward.Dot(dir) < 0 {
		// Slope reprojection can flip the tangent; the dash always
		// travels in the faced direction.
		dir = dir.Mul(-1)
	}
	d.body.Velocity = dir.Mul(d.cfg.DashSpeed)

	// Dash-jump cancel: straight to Done, skipping the deceleration tail.
	if in.Jump.Down() && !d.airDash && !ceiling {
		d.body.setCollider(ColliderNormal)
		d.body.CanMove = true
		d.body.UseGravity = true
		d.body.Velocity = d.cfg.Up().Mul(d.cfg.JumpForce)
		d.body.DashJump = true
		d.state = dashDone
		return
	}

	d.remaining -= dt
	if d.remaining <= dashCeilingClamp && onGround && ceiling {
		// Trapped under a low ceiling: hold the countdown at the clamp so
		// the dash cannot expire in place, and let the player steer.
		d.remaining = dashCeilingClamp
		if in.MoveX != 0 {
			d.body.Forward = d.cfg.Right.Mul(common.Sign(in.MoveX))
		}
	}
	if d.remaining <= 0 {
		d.exitLoop(onGround)
	}
}

// exitLoop leaves the active loop by break or countdown expiry.
func (d *Dash) exitLoop(onGround bool) {
	d.body.setCollider(ColliderNormal)
	if !d.airDash && onGround {
		d.state = dashDecelerating
		d.decelRemaining = dashDecelDuration
		return
	}
	d.finish()
}

// FrameTick advances the post-dash deceleration tail by one frame.
func (d *Dash) FrameTick(dt float64, in Frame) {
	if d.state != dashDecelerating {
		return
	}

	if in.Jump.Pressed() {
		// Early break: convert the tail into a jump impulse without the
		// residual-velocity zeroing below.
		plane, _ := d.cfg.split(d.body.Velocity)
		d.body.Velocity = d.cfg.compose(plane, -d.cfg.JumpForce)
		d.body.CanMove = true
		d.body.UseGravity = true
		d.state = dashDone
		return
	}

	d.body.Velocity = moveToward(d.body.Velocity, mgl64.Vec3{}, dashDecelRate*dt)
	d.decelRemaining -= dt
	if d.decelRemaining <= 0 {
		d.finish()
	}
}

// finish is the shared exit: drop residual upward velocity, then release
// the movement and gravity locks.
func (d *Dash) finish() {
	if d.body.Velocity.Dot(d.cfg.Gravity) < 0 {
		d.body.Velocity = mgl64.Vec3{}
	}
	d.body.CanMove = true
	d.body.UseGravity = true
	d.state = dashDone
}
