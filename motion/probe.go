package motion

import "github.com/go-gl/mathgl/mgl64"

// Probe runs the geometric predicates every higher-level decision depends
// on. All probes are pure reads of world geometry; Grounded returns the
// hit normal directly so no stale cached normal can leak between ticks.
type Probe struct {
	cfg   Config
	body  *Body
	world World
}

// NewProbe builds a probe over the given body and world.
func NewProbe(cfg Config, body *Body, world World) *Probe {
	return &Probe{cfg: cfg, body: body, world: world}
}

// GroundHit casts a sphere down along gravity and reports the full hit.
// extra widens the reach beyond the body height.
func (p *Probe) GroundHit(extra float64) (Hit, bool) {
	return p.world.SphereCast(
		p.body.Position,
		p.cfg.Gravity,
		castRadiusFactor*p.cfg.Radius,
		p.cfg.Height+extra-p.cfg.Radius,
		LayerSolid,
	)
}

// Grounded reports ground contact and the ground normal on a hit.
func (p *Probe) Grounded(extra float64) (mgl64.Vec3, bool) {
	hit, ok := p.GroundHit(extra)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return hit.Normal, true
}

// Walled reports solid geometry within extra in front of the body. The
// crouched hitbox uses a single sphere at mid-lower body height; standing
// uses a capsule spanning the upper and lower body.
func (p *Probe) Walled(extra float64, ducking bool) bool {
	forward := p.body.Forward.Mul(extra)
	if ducking {
		center := p.body.Position.
			Add(p.cfg.Gravity.Mul(p.cfg.Height * 0.25)).
			Add(forward)
		return p.world.SphereOverlap(center, p.cfg.Radius, LayerSolid)
	}
	upper, lower := p.bodySpan()
	return p.world.CapsuleOverlap(upper.Add(forward), lower.Add(forward), p.cfg.Radius, LayerSolid)
}

// WallSliding reports whether the body is pressed against a wall with
// horizontal input applied. Derived predicate, not an independent probe.
func (p *Probe) WallSliding(moveX float64) bool {
	return moveX != 0 && p.Walled(wallCheckDistance, p.body.Ducking())
}

// Ceiling reports solid geometry near the top of the standing-height body.
// Decides whether the player may stand back up.
func (p *Probe) Ceiling() bool {
	center := p.body.Position.Sub(p.cfg.Gravity.Mul(p.cfg.Height / 2))
	return p.world.SphereOverlap(center, castRadiusFactor*p.cfg.Radius, LayerSolid)
}

// InWater reports overlap with the water layer, capsule when standing,
// sphere when ducking.
func (p *Probe) InWater() bool {
	if p.body.Ducking() {
		center := p.body.Position.Add(p.cfg.Gravity.Mul(p.cfg.Height * 0.25))
		return p.world.SphereOverlap(center, p.cfg.Radius, LayerWater)
	}
	upper, lower := p.bodySpan()
	return p.world.CapsuleOverlap(upper, lower, p.cfg.Radius, LayerWater)
}

// bodySpan returns the capsule endpoints of the standing body.
func (p *Probe) bodySpan() (upper, lower mgl64.Vec3) {
	span := p.cfg.Height/2 - p.cfg.Radius
	upper = p.body.Position.Sub(p.cfg.Gravity.Mul(span))
	lower = p.body.Position.Add(p.cfg.Gravity.Mul(span))
	return upper, lower
}
