package motion

import "github.com/go-gl/mathgl/mgl64"

// ColliderMode selects which of the two body colliders is active. Exactly
// one mode is active at any time.
type ColliderMode uint8

const (
	ColliderNormal ColliderMode = iota
	ColliderDucking
)

func (m ColliderMode) String() string {
	if m == ColliderDucking {
		return "ducking"
	}
	return "normal"
}

// ColliderToggle is implemented by hosts that mirror the body's collider
// mode into their own collision shapes. Switches are atomic from the
// controller's perspective.
type ColliderToggle interface {
	SetMode(ColliderMode)
}

// Body is the shared rigid-body state every step and state machine reads
// and writes. Position integration is the host's job; the controller only
// edits Velocity, plus Position for single-tick slope height corrections.
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	// Forward is the facing direction, always +Right or -Right.
	Forward mgl64.Vec3

	// CanMove is the movement lock. False exactly while a dash or wall
	// jump owns the body.
	CanMove bool

	// UseGravity gates the hand-applied gravity in the physics step.
	UseGravity bool

	// DashJump carries dash speed through a jump until the next landing.
	DashJump bool

	wasGrounded bool
	collider    ColliderMode
	toggle      ColliderToggle
}

// NewBody returns a body at rest with the baseline flags: unlocked,
// gravity on, normal collider, facing along cfg.Right.
func NewBody(cfg Config) *Body {
	return &Body{
		Forward:    cfg.Right,
		CanMove:    true,
		UseGravity: true,
		collider:   ColliderNormal,
	}
}

// SetColliderToggle registers a host hook notified on collider switches.
func (b *Body) SetColliderToggle(t ColliderToggle) { b.toggle = t }

// Collider returns the active collider mode.
func (b *Body) Collider() ColliderMode { return b.collider }

// Ducking reports whether the crouched collider is active.
func (b *Body) Ducking() bool { return b.collider == ColliderDucking }

func (b *Body) setCollider(m ColliderMode) {
	if b.collider == m {
		return
	}
	b.collider = m
	if b.toggle != nil {
		b.toggle.SetMode(m)
	}
}
