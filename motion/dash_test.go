package motion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dashDT = 0.05

// startGroundDash presses dash on a grounded rig and returns after entry.
func startGroundDash(t *testing.T, c *Controller, w *stubWorld) {
	t.Helper()
	w.grounded = true
	c.Update(Frame{Dash: KeyPress}, dashDT)
	require.True(t, c.Dashing(), "dash should have started")
}

func TestDashEntry(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)

	body := c.Body()
	assert.False(t, body.CanMove, "dash owns the movement lock")
	assert.False(t, body.UseGravity, "dash disables gravity")
	assert.Equal(t, ColliderDucking, body.Collider())
	assert.False(t, c.dash.AirDash())
}

func TestDashEntryBlockedByWall(t *testing.T) {
	c, w := newTestRig()
	w.grounded = true
	w.walled = true

	c.Update(Frame{Dash: KeyPress}, dashDT)

	assert.False(t, c.Dashing(), "dash press against a wall is ignored")
	assert.True(t, c.Body().CanMove)
}

func TestDashTriggerIgnoredWhileLocked(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)
	first := c.dash

	c.Update(Frame{Dash: KeyPress}, dashDT)

	assert.Same(t, first, c.dash, "second trigger must not replace the active dash")
}

func TestDashVelocity(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)

	c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)

	assert.InDelta(t, 20, c.Body().Velocity.X(), 1e-9)
	assert.InDelta(t, 0, c.Body().Velocity.Y(), 1e-9)
}

func TestDashTravelsFacedDirection(t *testing.T) {
	c, w := newTestRig()
	w.grounded = true
	c.Update(Frame{MoveX: -1}, dashDT)
	c.FixedUpdate(Frame{MoveX: -1}, dashDT) // locomotion turns the body
	require.Equal(t, mgl64.Vec3{-1, 0, 0}, c.Body().Forward)

	c.Update(Frame{Dash: KeyPress}, dashDT)
	require.True(t, c.Dashing())
	c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)

	assert.InDelta(t, -20, c.Body().Velocity.X(), 1e-9, "dash moves along facing even when the slope tangent points the other way")
}

func TestDashCountdownTicks(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)

	ticks := int(math.Ceil(dashDuration / dashDT))
	for i := 0; i < ticks-1; i++ {
		c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)
		require.Equal(t, dashActive, c.dash.state, "tick %d should still be in the active loop", i)
	}

	c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)
	require.True(t, c.Dashing())
	assert.Equal(t, dashDecelerating, c.dash.state, "countdown expiry enters the deceleration tail")
	assert.Equal(t, ColliderNormal, c.Body().Collider(), "collider restored on loop exit")
	assert.False(t, c.Body().CanMove, "lock held through the tail")
}

func TestDashBreaksWhenGroundDashLeavesGround(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)

	w.grounded = false
	c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)

	assert.False(t, c.Dashing(), "ground dash breaks on the very next tick off the ground")
	assert.True(t, c.Body().CanMove)
	assert.True(t, c.Body().UseGravity)
	assert.Equal(t, ColliderNormal, c.Body().Collider())
}

func TestDashBreaksOnWall(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)

	w.duckWalled = true // the dash probes with the crouched hitbox
	c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)

	require.True(t, c.Dashing(), "grounded wall break enters the deceleration tail")
	assert.Equal(t, dashDecelerating, c.dash.state)
}

func TestDashBreaksOnButtonRelease(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)

	c.FixedUpdate(Frame{Dash: KeyNone}, dashDT)

	require.True(t, c.Dashing())
	assert.Equal(t, dashDecelerating, c.dash.state)
}

func TestDashJumpCancel(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)

	c.FixedUpdate(Frame{Dash: KeyHold, Jump: KeyHold}, dashDT)

	body := c.Body()
	assert.False(t, c.Dashing(), "cancel skips the deceleration tail")
	assert.True(t, body.DashJump)
	assert.True(t, body.CanMove)
	assert.True(t, body.UseGravity)
	assert.Equal(t, ColliderNormal, body.Collider())
	assert.InDelta(t, -c.Config().JumpForce, body.Velocity.Y(), 1e-9, "vertical velocity is exactly jumpForce upward")
	assert.InDelta(t, 0, body.Velocity.X(), 1e-9)
}

func TestDashJumpCancelIgnoredForAirDash(t *testing.T) {
	c, w := newTestRig()
	w.grounded = false
	c.Update(Frame{Dash: KeyPress}, dashDT)
	require.True(t, c.Dashing())
	require.True(t, c.dash.AirDash())

	c.FixedUpdate(Frame{Dash: KeyHold, Jump: KeyHold}, dashDT)

	assert.True(t, c.Dashing(), "air dashes cannot jump-cancel")
	assert.False(t, c.Body().DashJump)
}

func TestDashCeilingClamp(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)
	w.ceiling = true

	// Run well past the nominal duration; the countdown clamps instead of
	// expiring while trapped under the ceiling.
	ticks := int(math.Ceil(dashDuration/dashDT)) * 3
	for i := 0; i < ticks; i++ {
		c.FixedUpdate(Frame{Dash: KeyNone, MoveX: -1}, dashDT)
	}
	require.True(t, c.Dashing())
	assert.Equal(t, dashActive, c.dash.state)
	assert.Equal(t, mgl64.Vec3{-1, 0, 0}, c.Body().Forward, "clamped dash re-applies facing from input")

	w.ceiling = false
	c.FixedUpdate(Frame{Dash: KeyNone}, dashDT)
	require.True(t, c.Dashing())
	assert.Equal(t, dashDecelerating, c.dash.state, "dash exits once the ceiling clears")
}

func TestDashDecelerationTail(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)
	for c.dash.state == dashActive {
		c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)
	}
	require.Equal(t, dashDecelerating, c.dash.state)
	require.InDelta(t, 20, c.Body().Velocity.X(), 1e-9)

	c.Update(Frame{}, 0.1)
	assert.InDelta(t, 5, c.Body().Velocity.X(), 1e-9, "150 units/s^2 over 0.1s")

	c.Update(Frame{}, 0.1)
	assert.False(t, c.Dashing(), "tail ends after 0.2s")
	assert.True(t, c.Body().CanMove)
	assert.True(t, c.Body().UseGravity)
	assert.Equal(t, mgl64.Vec3{}, c.Body().Velocity)
}

func TestDashDecelerationJumpBreak(t *testing.T) {
	c, w := newTestRig()
	startGroundDash(t, c, w)
	for c.dash.state == dashActive {
		c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)
	}
	require.Equal(t, dashDecelerating, c.dash.state)

	c.Update(Frame{Jump: KeyPress}, 0.01)

	body := c.Body()
	assert.False(t, c.Dashing())
	assert.True(t, body.CanMove)
	assert.True(t, body.UseGravity)
	assert.InDelta(t, -c.Config().JumpForce, body.Velocity.Dot(c.Config().Gravity), 1e-9, "tail break converts into a jump impulse")
}

func TestAirDashExpiry(t *testing.T) {
	c, w := newTestRig()
	w.grounded = false
	c.Update(Frame{Dash: KeyPress}, dashDT)
	require.True(t, c.Dashing())
	require.True(t, c.dash.AirDash())

	ticks := int(math.Ceil(dashDuration / dashDT))
	for i := 0; i < ticks-1; i++ {
		c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)
		require.True(t, c.Dashing(), "tick %d", i)
		assert.InDelta(t, 0, c.Body().Velocity.Y(), 1e-9, "no gravity while dashing")
	}
	c.FixedUpdate(Frame{Dash: KeyHold}, dashDT)

	assert.False(t, c.Dashing(), "air dash expires with no deceleration tail")
	assert.True(t, c.Body().CanMove)
	assert.True(t, c.Body().UseGravity)
	// The same tick's physics step resumes gravity once the dash exits.
	assert.InDelta(t, c.Config().GravityScale*dashDT, c.Body().Velocity.Y(), 1e-9)
}
