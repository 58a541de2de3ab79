package math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector with components of type T.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Common instantiations.
type (
	Vec3i = Vec3[int32]
	Vec3l = Vec3[int64]
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
)

// V3 is shorthand for Vec3[T]{x, y, z}.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// Add returns v + other.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v / s. Dividing by a near-zero scalar is the caller's problem.
func (v Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Negate returns -v.
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// MagnitudeSquared returns the squared length.
func (v Vec3[T]) MagnitudeSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the length.
func (v Vec3[T]) Magnitude() T {
	return T(math.Sqrt(float64(v.MagnitudeSquared())))
}

// Normalized returns a unit vector pointing the same way as v.
// It panics if the magnitude of v does not exceed Epsilon.
func (v Vec3[T]) Normalized() Vec3[T] {
	m := v.Magnitude()
	if float64(m) <= Epsilon {
		panic(fmt.Sprintf("math: normalizing near-zero vector %v", v))
	}
	return Vec3[T]{v.X / m, v.Y / m, v.Z / m}
}

// AngleBetween returns the angle between v and other in radians.
// It panics if either vector is (near) zero.
func (v Vec3[T]) AngleBetween(other Vec3[T]) T {
	m := float64(v.Magnitude()) * float64(other.Magnitude())
	if m <= Epsilon {
		panic(fmt.Sprintf("math: angle between %v and %v is undefined", v, other))
	}
	cos := float64(v.Dot(other)) / m
	// Rounding can push |cos| slightly above 1 for parallel vectors.
	cos = math.Max(-1, math.Min(1, cos))
	return T(math.Acos(cos))
}

// ProjectOnto returns the projection of v onto other.
// It panics if other is (near) zero.
func (v Vec3[T]) ProjectOnto(other Vec3[T]) Vec3[T] {
	m := other.MagnitudeSquared()
	if float64(m) <= Epsilon {
		panic(fmt.Sprintf("math: projecting onto near-zero vector %v", other))
	}
	return other.Scale(v.Dot(other) / m)
}

// IsZeroVector reports whether the squared magnitude is below Epsilon.
func (v Vec3[T]) IsZeroVector() bool {
	return IsZero(v.MagnitudeSquared())
}

// IsFinite reports whether every component is finite.
func (v Vec3[T]) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// IsParallelTo reports whether v and other have a (near) zero cross product.
func (v Vec3[T]) IsParallelTo(other Vec3[T]) bool {
	return v.Cross(other).IsZeroVector()
}

// IsOrthogonalTo reports whether v and other have a (near) zero dot product.
func (v Vec3[T]) IsOrthogonalTo(other Vec3[T]) bool {
	return IsZero(v.Dot(other))
}

// Equal reports whether each component differs by less than Epsilon.
func (v Vec3[T]) Equal(other Vec3[T]) bool {
	return IsZero(v.X-other.X) && IsZero(v.Y-other.Y) && IsZero(v.Z-other.Z)
}

// String formats the vector as "(x, y, z)".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
