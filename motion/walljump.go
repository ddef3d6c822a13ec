package motion

// WallJump is the timed wall-jump lock: a fixed impulse away from the
// wall, movement locked for a short real-time window, then control is
// restored. Terminal; it always completes.
type WallJump struct {
	cfg       Config
	body      *Body
	remaining float64
}

// newWallJump enters the wall jump. dashHeld carries dash speed into the
// leap, matching a dash jump.
func newWallJump(cfg Config, body *Body, dashHeld bool) *WallJump {
	body.CanMove = false
	body.DashJump = dashHeld

	speed := cfg.MoveSpeed
	if dashHeld {
		speed = cfg.DashSpeed
	}
	body.Velocity = body.Forward.Mul(-speed).Add(cfg.Up().Mul(cfg.JumpForce))

	return &WallJump{cfg: cfg, body: body, remaining: wallJumpDuration}
}

// FrameTick counts down the lock window and reports completion. Input is
// ignored during the wait; gravity still applies through the physics step.
func (w *WallJump) FrameTick(dt float64) bool {
	w.remaining -= dt
	if w.remaining > 0 {
		return false
	}
	w.body.CanMove = true
	return true
}
