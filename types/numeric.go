package types

import "math"

// Integer is the set of built-in integer types usable as a range value domain.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point types usable as a range value domain.
//
// The set is intentionally not approximate (no ~): the per-domain helpers in
// this package dispatch on the concrete type, and a defined type with a
// float underlying type would silently take the integer code paths.
type Float interface {
	float32 | float64
}

// Numeric is the full set of value domains a Range can be defined over.
//
// Integral and floating domains take different code paths for ceiling
// division, block alignment, and atomic advancement. Those differences are
// implemented once here and in internal/alloc rather than per strategy.
type Numeric interface {
	Integer | Float
}

// isFloat reports whether T is a floating-point domain.
func isFloat[T Numeric]() bool {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// minValue returns the lowest representable value of T.
//
// For unsigned integers this is 0, for signed integers the most negative
// value, and for floats the negative of the largest finite value.
func minValue[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		// Converted through a variable: an untyped float constant is not
		// representable in the integer members of T's type set.
		f := float32(-math.MaxFloat32)
		return T(f)
	case float64:
		f := -math.MaxFloat64
		return T(f)
	default:
		if zero-1 > zero { // subtraction wrapped, so T is unsigned
			return 0
		}
		// Signed: double -1 until multiplication wraps to zero, leaving
		// only the sign bit set.
		v := zero - 1
		for v*2 != 0 {
			v *= 2
		}

		return v
	}
}

// alignDown returns the greatest multiple of block that is <= v, rounding
// toward negative infinity.
//
// Returns ErrPageSizeUnderflow when the correction for a negative v would
// pass below T's minimum representable value. The caller validates block > 0.
func alignDown[T Numeric](v, block T) (T, error) {
	if isFloat[T]() {
		return T(math.Floor(float64(v)/float64(block)) * float64(block)), nil
	}

	// Integer division truncates toward zero, so a negative v that is not
	// already on a boundary lands one block too high.
	q := (v / block) * block
	if q > v {
		// Only a negative q can underflow the correction: a non-negative q
		// always has room for one block below it, and subtracting minValue
		// from it would itself wrap. q-block == minValue is still
		// representable, hence the strict comparison.
		if q < 0 && q-minValue[T]() < block {
			return 0, ErrPageSizeUnderflow
		}
		q -= block
	}

	return q, nil
}

// modulo returns v mod m for any numeric domain.
//
// The % operator is not defined for floats, and v-(v/m)*m collapses to zero
// under float division, so the two domains are handled separately.
func modulo[T Numeric](v, m T) T {
	switch x := any(v).(type) {
	case float32:
		return T(math.Mod(float64(x), float64(any(m).(float32))))
	case float64:
		return T(math.Mod(x, any(m).(float64)))
	default:
		return v - (v/m)*m
	}
}
