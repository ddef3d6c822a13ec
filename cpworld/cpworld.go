// Package cpworld implements the motion.World query surface over a
// chipmunk (jakecoffman/cp) space. Levels are authored flat in the 2D
// movement plane; 3D probe points project into the plane and 2D hit
// normals lift back out.
package cpworld

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/bluebolt/motion"
)

const (
	categorySolid uint = 1 << iota
	categoryWater
)

// Plane is the orthonormal basis of the movement plane. Down follows the
// gravity direction, so plane Y grows downward like screen coordinates.
type Plane struct {
	Origin mgl64.Vec3
	Right  mgl64.Vec3
	Down   mgl64.Vec3
}

// ScreenPlane is the conventional x-right, y-down basis at the origin.
func ScreenPlane() Plane {
	return Plane{
		Right: mgl64.Vec3{1, 0, 0},
		Down:  mgl64.Vec3{0, 1, 0},
	}
}

func (p Plane) project(v mgl64.Vec3) cp.Vector {
	d := v.Sub(p.Origin)
	return cp.Vector{X: d.Dot(p.Right), Y: d.Dot(p.Down)}
}

func (p Plane) projectDir(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.Dot(p.Right), Y: v.Dot(p.Down)}
}

func (p Plane) lift(v cp.Vector) mgl64.Vec3 {
	return p.Right.Mul(v.X).Add(p.Down.Mul(v.Y))
}

// World is a static planar level backed by a cp.Space. Terrain and water
// live on separate shape categories so queries never mix them.
type World struct {
	space *cp.Space
	plane Plane
}

// New builds an empty world over the given plane.
func New(plane Plane) *World {
	space := cp.NewSpace()
	space.Iterations = 20
	return &World{space: space, plane: plane}
}

// Space exposes the underlying cp space for debug drawing.
func (w *World) Space() *cp.Space { return w.space }

// AddBox adds a static axis-aligned box in plane coordinates.
func (w *World) AddBox(minX, minY, maxX, maxY float64, layer motion.Layer) {
	bb := cp.BB{L: minX, B: minY, R: maxX, T: maxY}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	w.addStatic(shape, layer)
}

// AddSegment adds a static thick segment in plane coordinates. Slopes are
// authored as segments.
func (w *World) AddSegment(ax, ay, bx, by, radius float64, layer motion.Layer) {
	shape := cp.NewSegment(w.space.StaticBody, cp.Vector{X: ax, Y: ay}, cp.Vector{X: bx, Y: by}, radius)
	w.addStatic(shape, layer)
}

func (w *World) addStatic(shape *cp.Shape, layer motion.Layer) {
	shape.SetFriction(0.8)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, categories(layer), cp.ALL_CATEGORIES))
	w.space.AddShape(shape)
}

func categories(layer motion.Layer) uint {
	var c uint
	if layer&motion.LayerSolid != 0 {
		c |= categorySolid
	}
	if layer&motion.LayerWater != 0 {
		c |= categoryWater
	}
	return c
}

// queryFilter matches shapes whose category intersects the layer mask.
func queryFilter(layer motion.Layer) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, categories(layer))
}

// SphereCast implements motion.World.
func (w *World) SphereCast(origin, dir mgl64.Vec3, radius, distance float64, layer motion.Layer) (motion.Hit, bool) {
	start := w.plane.project(origin)
	d := w.plane.projectDir(dir)
	end := cp.Vector{X: start.X + d.X*distance, Y: start.Y + d.Y*distance}

	info := w.space.SegmentQueryFirst(start, end, radius, queryFilter(layer))
	if info.Shape == nil {
		return motion.Hit{}, false
	}
	return motion.Hit{
		Normal:   w.plane.lift(info.Normal),
		Distance: info.Alpha * distance,
	}, true
}

// SphereOverlap implements motion.World.
func (w *World) SphereOverlap(center mgl64.Vec3, radius float64, layer motion.Layer) bool {
	return w.pointOverlap(w.plane.project(center), radius, layer)
}

// CapsuleOverlap implements motion.World. A segment query catches shapes
// along the span; the endpoint checks catch shapes containing an endpoint,
// which segment queries can miss.
func (w *World) CapsuleOverlap(a, b mgl64.Vec3, radius float64, layer motion.Layer) bool {
	pa := w.plane.project(a)
	pb := w.plane.project(b)
	if w.pointOverlap(pa, radius, layer) || w.pointOverlap(pb, radius, layer) {
		return true
	}
	info := w.space.SegmentQueryFirst(pa, pb, radius, queryFilter(layer))
	return info.Shape != nil
}

func (w *World) pointOverlap(p cp.Vector, radius float64, layer motion.Layer) bool {
	info := w.space.PointQueryNearest(p, radius, queryFilter(layer))
	return info != nil && info.Shape != nil
}
