// Package math provides the vector and ray types used by the mesh engine.
package math

import "math"

// Epsilon is the tolerance used by every approximate comparison in the engine.
const Epsilon = 1e-5

// Scalar is the set of numeric component types a Vec3 can hold.
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is the set of component types supported by Ray.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of types accepted by the parity helpers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsZero reports whether |v| < Epsilon.
func IsZero[T Scalar](v T) bool {
	return math.Abs(float64(v)) < Epsilon
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite[T Scalar](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsOdd reports whether n is odd.
func IsOdd[T Integer](n T) bool {
	return n&1 == 1
}

// IsEven reports whether n is even.
func IsEven[T Integer](n T) bool {
	return !IsOdd(n)
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](rad T) T {
	return rad * T(180/math.Pi)
}

// DegToRad converts degrees to radians.
func DegToRad[T Float](deg T) T {
	return deg * T(math.Pi/180)
}
