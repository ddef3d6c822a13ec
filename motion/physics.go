package motion

// Physics applies gravity, the wall-slide fall clamp, and landing impact
// resolution. Runs once per fixed tick, before locomotion.
type Physics struct {
	cfg   Config
	body  *Body
	probe *Probe
}

// NewPhysics builds the physics step over the given body and probe.
func NewPhysics(cfg Config, body *Body, probe *Probe) *Physics {
	return &Physics{cfg: cfg, body: body, probe: probe}
}

// Tick advances the physics step by dt. moveX is the current horizontal
// input, used only by the wall-slide predicate.
func (s *Physics) Tick(dt, moveX float64) {
	_, onGround := s.probe.Grounded(groundCheckDistance)

	if !onGround && s.body.UseGravity {
		g := s.cfg.GravityScale
		if s.probe.InWater() {
			g *= waterGravityFactor
		}
		s.body.Velocity = s.body.Velocity.Add(s.cfg.Gravity.Mul(g * dt))
	}

	if !onGround && s.probe.WallSliding(moveX) {
		plane, fall := s.cfg.split(s.body.Velocity)
		if fall > maxWallSlideSpeed {
			s.body.Velocity = s.cfg.compose(plane, maxWallSlideSpeed)
		}
		if s.body.CanMove {
			s.body.DashJump = false
		}
	}

	// Landing: kill any remaining fall velocity the moment the ground
	// probe flips from airborne to grounded.
	if !s.body.wasGrounded && onGround {
		plane, fall := s.cfg.split(s.body.Velocity)
		if fall > 0 {
			s.body.Velocity = plane
			s.body.DashJump = false
		}
	}

	s.body.wasGrounded = onGround
}
