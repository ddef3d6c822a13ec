package motion

import "github.com/go-gl/mathgl/mgl64"

// Timing and probe tolerances. These are gameplay-feel constants rather
// than author tuning, so they live here instead of the tuning spec.
const (
	groundCheckDistance = 0.2 // physics-step grounded probe
	groundMoveTolerance = 0.3 // locomotion/jump/dash grounded probe
	wallCheckDistance   = 0.1

	maxWallSlideSpeed  = 4.0
	waterGravityFactor = 0.5
	jumpCutFactor      = 0.25

	wallJumpDuration = 0.15

	dashDuration      = 0.3
	dashCeilingClamp  = 0.1
	dashDecelDuration = 0.2
	dashDecelRate     = 150.0

	castRadiusFactor = 0.9
)

// Config holds the author-configured movement values. Right and Gravity are
// non-parallel unit vectors defining the 2D movement plane; Gravity points
// down. A Config is immutable once handed to a controller.
type Config struct {
	Height  float64
	Radius  float64
	Right   mgl64.Vec3
	Gravity mgl64.Vec3

	MoveSpeed    float64
	DashSpeed    float64
	JumpForce    float64
	GravityScale float64
}

// DefaultConfig returns tuning for a screen-down plane (x right, y down).
func DefaultConfig() Config {
	return Config{
		Height:       2,
		Radius:       0.5,
		Right:        mgl64.Vec3{1, 0, 0},
		Gravity:      mgl64.Vec3{0, 1, 0},
		MoveSpeed:    10,
		DashSpeed:    20,
		JumpForce:    15,
		GravityScale: 40,
	}
}

// Up is the unit direction opposing gravity.
func (c Config) Up() mgl64.Vec3 { return c.Gravity.Mul(-1) }

// normalized returns a copy with unit basis vectors.
func (c Config) normalized() Config {
	if l := c.Right.Len(); l > 0 {
		c.Right = c.Right.Mul(1 / l)
	}
	if l := c.Gravity.Len(); l > 0 {
		c.Gravity = c.Gravity.Mul(1 / l)
	}
	return c
}

// split decomposes v into its plane component and its scalar gravity
// component (positive when falling).
func (c Config) split(v mgl64.Vec3) (plane mgl64.Vec3, fall float64) {
	fall = v.Dot(c.Gravity)
	plane = v.Sub(c.Gravity.Mul(fall))
	return plane, fall
}

// compose is the inverse of split.
func (c Config) compose(plane mgl64.Vec3, fall float64) mgl64.Vec3 {
	return plane.Add(c.Gravity.Mul(fall))
}

// moveToward moves v toward target by at most maxDelta.
func moveToward(v, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	diff := target.Sub(v)
	dist := diff.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return v.Add(diff.Mul(maxDelta / dist))
}
