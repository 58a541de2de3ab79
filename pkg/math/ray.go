package math

import (
	"fmt"
	"math"
)

// Ray is a half-line starting at Origin and extending along Direction.
// Direction does not need to be normalized.
type Ray[T Float] struct {
	Origin    Vec3[T]
	Direction Vec3[T]
}

// Common instantiations.
type (
	Rayf = Ray[float32]
	Rayd = Ray[float64]
)

// NewRay creates a ray. It panics if direction is a (near) zero vector.
func NewRay[T Float](origin, direction Vec3[T]) Ray[T] {
	if direction.IsZeroVector() {
		panic(fmt.Sprintf("math: ray direction %v is a zero vector", direction))
	}
	return Ray[T]{Origin: origin, Direction: direction}
}

// PointAt returns Origin + t*Direction.
func (r Ray[T]) PointAt(t T) Vec3[T] {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectsTriangle reports whether the ray hits the triangle (v0, v1, v2).
func (r Ray[T]) IntersectsTriangle(v0, v1, v2 Vec3[T]) bool {
	_, ok := r.IntersectionWithTriangle(v0, v1, v2)
	return ok
}

// IntersectionWithTriangle returns the point where the ray hits the triangle
// (v0, v1, v2). Both faces are tested, so winding order does not matter.
//
// Möller–Trumbore, "Fast, Minimum Storage Ray/Triangle Intersection" (1997).
func (r Ray[T]) IntersectionWithTriangle(v0, v1, v2 Vec3[T]) (Vec3[T], bool) {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	p := r.Direction.Cross(edge2)

	// Checks are written in accept form so NaN input never counts as a hit.
	det := p.Dot(edge1)
	if !(math.Abs(float64(det)) >= Epsilon) {
		return Vec3[T]{}, false // parallel to the triangle plane
	}
	invDet := 1 / det

	tv := r.Origin.Sub(v0)
	u := p.Dot(tv) * invDet
	if !(u >= 0 && u <= 1) {
		return Vec3[T]{}, false
	}

	q := tv.Cross(edge1)
	v := q.Dot(r.Direction) * invDet
	if !(v >= 0 && u+v <= 1) {
		return Vec3[T]{}, false
	}

	t := q.Dot(edge2) * invDet
	if !(t >= 0) {
		return Vec3[T]{}, false // behind the origin
	}

	return r.PointAt(t), true
}

// IntersectsRay reports whether the supporting lines of r and other meet.
func (r Ray[T]) IntersectsRay(other Ray[T]) bool {
	_, ok := r.IntersectionWithRay(other)
	return ok
}

// IntersectionWithRay returns the point where r and other cross.
// Parallel rays never intersect, even when they overlap.
func (r Ray[T]) IntersectionWithRay(other Ray[T]) (Vec3[T], bool) {
	if r.IsParallelTo(other) {
		return Vec3[T]{}, false
	}

	a, b := r.closestPoints(other)
	if !a.Equal(b) {
		return Vec3[T]{}, false
	}
	return a, true
}

// ContainsPoint reports whether p lies on the ray's supporting line.
func (r Ray[T]) ContainsPoint(p Vec3[T]) bool {
	return r.Direction.IsParallelTo(p.Sub(r.Origin))
}

// DistanceToPoint returns the distance from p to the ray's supporting line.
func (r Ray[T]) DistanceToPoint(p Vec3[T]) T {
	m := r.Direction.Magnitude()
	if float64(m) <= Epsilon {
		panic(fmt.Sprintf("math: ray direction %v is a zero vector", r.Direction))
	}
	return r.Direction.Cross(p.Sub(r.Origin)).Magnitude() / m
}

// DistanceToRay returns the shortest distance between the supporting lines
// of r and other. For skew lines this is the true distance along the common
// perpendicular, not a per-axis approximation.
func (r Ray[T]) DistanceToRay(other Ray[T]) T {
	a, b := r.closestPoints(other)
	return b.Sub(a).Magnitude()
}

// AngleBetween returns the angle between the two directions in radians.
func (r Ray[T]) AngleBetween(other Ray[T]) T {
	return r.Direction.AngleBetween(other.Direction)
}

// IsParallelTo reports whether both directions are parallel.
func (r Ray[T]) IsParallelTo(other Ray[T]) bool {
	return r.Direction.IsParallelTo(other.Direction)
}

// IsOrthogonalTo reports whether both directions are orthogonal.
func (r Ray[T]) IsOrthogonalTo(other Ray[T]) bool {
	return r.Direction.IsOrthogonalTo(other.Direction)
}

// Equal reports whether r and other share the same supporting line.
func (r Ray[T]) Equal(other Ray[T]) bool {
	return r.ContainsPoint(other.Origin) && r.IsParallelTo(other)
}

// closestPoints returns the pair of points, one on each supporting line,
// at which the lines come closest. The solve runs in float64.
func (r Ray[T]) closestPoints(other Ray[T]) (Vec3[T], Vec3[T]) {
	d1 := widen(r.Direction)
	d2 := widen(other.Direction)
	w := widen(other.Origin).Sub(widen(r.Origin))
	n := d1.Cross(d2)

	var t1, t2 float64
	if !IsZero(n.X) || !IsZero(n.Y) || !IsZero(n.Z) {
		nn := n.MagnitudeSquared()
		t1 = w.Cross(d2).Dot(n) / nn
		t2 = w.Cross(d1).Dot(n) / nn
	} else {
		// Parallel: pair r's origin with its projection onto other.
		dd := d2.MagnitudeSquared()
		if dd <= Epsilon {
			panic(fmt.Sprintf("math: ray direction %v is a zero vector", other.Direction))
		}
		t2 = -w.Dot(d2) / dd
	}

	return narrow[T](widen(r.Origin).Add(d1.Scale(t1))),
		narrow[T](widen(other.Origin).Add(d2.Scale(t2)))
}

func widen[T Float](v Vec3[T]) Vec3d {
	return Vec3d{float64(v.X), float64(v.Y), float64(v.Z)}
}

func narrow[T Float](v Vec3d) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}
