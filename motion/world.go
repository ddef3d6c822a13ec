package motion

import "github.com/go-gl/mathgl/mgl64"

// Layer is a bitmask selecting which world geometry a query runs against.
// Terrain and liquid volumes live on separate layers and a single query
// never mixes them.
type Layer uint

const (
	LayerSolid Layer = 1 << iota
	LayerWater
)

// Hit is the result of a successful sphere cast.
type Hit struct {
	// Normal is the surface normal at the contact point.
	Normal mgl64.Vec3
	// Distance is how far the sphere center traveled before contact.
	Distance float64
}

// World is the physics-world query surface the controller probes against.
// Implementations own broad-phase collision and rigid-body integration;
// the controller only ever reads geometry through these three queries.
type World interface {
	// SphereCast sweeps a sphere from origin along dir (unit) for distance
	// and reports the first hit on the given layer.
	SphereCast(origin, dir mgl64.Vec3, radius, distance float64, layer Layer) (Hit, bool)

	// SphereOverlap reports whether a sphere at center overlaps any shape
	// on the given layer.
	SphereOverlap(center mgl64.Vec3, radius float64, layer Layer) bool

	// CapsuleOverlap reports whether a capsule spanning a to b overlaps any
	// shape on the given layer.
	CapsuleOverlap(a, b mgl64.Vec3, radius float64, layer Layer) bool
}
