package motion

// Animator is the per-frame animation extension point. The core never
// animates; hosts that want to drive sprites register one of these.
type Animator interface {
	Animate(body *Body)
}

// Controller orchestrates the whole movement stack: per-frame input
// decoding and machine tails, and per-fixed-tick physics then locomotion.
// All calls must come from a single goroutine.
type Controller struct {
	cfg   Config
	body  *Body
	world World
	probe *Probe

	physics *Physics
	loco    *Locomotion

	dash     *Dash
	wallJump *WallJump

	// Animator, when set, is invoked at the end of every frame update.
	Animator Animator
}

// NewController builds a controller over the given world. Basis vectors
// in cfg are normalized; everything else is taken as authored.
func NewController(world World, cfg Config) *Controller {
	cfg = cfg.normalized()
	body := NewBody(cfg)
	probe := NewProbe(cfg, body, world)
	return &Controller{
		cfg:     cfg,
		body:    body,
		world:   world,
		probe:   probe,
		physics: NewPhysics(cfg, body, probe),
		loco:    NewLocomotion(cfg, body, probe),
	}
}

// Body exposes the shared rigid-body state for hosts to integrate and draw.
func (c *Controller) Body() *Body { return c.body }

// Probe exposes the geometric predicates for hosts (animation, debug draw).
func (c *Controller) Probe() *Probe { return c.probe }

// Config returns the active movement configuration.
func (c *Controller) Config() Config { return c.cfg }

// Retune swaps the movement configuration in place. Safe between frames;
// an active dash or wall jump keeps the tuning it started with.
func (c *Controller) Retune(cfg Config) {
	c.cfg = cfg.normalized()
	c.probe.cfg = c.cfg
	c.physics.cfg = c.cfg
	c.loco.cfg = c.cfg
}

// Dashing reports whether a dash currently owns the body.
func (c *Controller) Dashing() bool { return c.dash != nil }

// WallJumping reports whether a wall jump currently owns the body.
func (c *Controller) WallJumping() bool { return c.wallJump != nil }

// Update runs once per frame: machine tails first, then input edges.
func (c *Controller) Update(in Frame, dt float64) {
	if c.wallJump != nil {
		if c.wallJump.FrameTick(dt) {
			c.wallJump = nil
		}
	}
	if c.dash != nil {
		c.dash.FrameTick(dt, in)
		if c.dash.Done() {
			c.dash = nil
		}
	}

	c.handleInput(in)

	if c.Animator != nil {
		c.Animator.Animate(c.body)
	}
}

// FixedUpdate runs once per fixed tick: active dash loop, physics,
// locomotion, in that order.
func (c *Controller) FixedUpdate(in Frame, dt float64) {
	if c.dash != nil {
		c.dash.FixedTick(dt, in)
		if c.dash.Done() {
			c.dash = nil
		}
	}

	c.physics.Tick(dt, in.MoveX)
	c.loco.Tick(dt, in.MoveX)
}

// handleInput decodes the frame's input edges. Triggers that would start
// a second machine while the movement lock is held are silently ignored.
func (c *Controller) handleInput(in Frame) {
	if !c.body.CanMove {
		return
	}

	if in.Jump.Pressed() {
		if _, grounded := c.probe.Grounded(groundMoveTolerance); grounded {
			if in.Dash.Down() {
				c.body.DashJump = true
			}
			plane, _ := c.cfg.split(c.body.Velocity)
			c.body.Velocity = c.cfg.compose(plane, -c.cfg.JumpForce)
		} else if c.probe.WallSliding(in.MoveX) {
			c.wallJump = newWallJump(c.cfg, c.body, in.Dash.Down())
			return
		}
	}

	if in.Jump.Released() {
		plane, fall := c.cfg.split(c.body.Velocity)
		if fall < 0 {
			// Variable jump height: cut the ascent on release.
			c.body.Velocity = c.cfg.compose(plane, fall*jumpCutFactor)
		}
	}

	if in.Dash.Pressed() && !c.probe.Walled(wallCheckDistance, c.body.Ducking()) {
		c.dash = newDash(c.cfg, c.body, c.probe, c.loco)
	}
}
