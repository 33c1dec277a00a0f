package core

import (
	"math"
	"strconv"
)

// Distance is a path length that is either finite or infinite.
//
// The zero value is Infinity, so a freshly allocated []Distance already
// encodes "nothing reached yet". Arithmetic saturates: Infinity absorbs any
// addition, and a finite sum that would exceed math.MaxInt64 is clamped to
// the largest finite value instead of wrapping.
type Distance struct {
	value  int64
	finite bool
}

// Infinity is the distance of an unreachable vertex.
var Infinity = Distance{}

// Zero is the distance of a vertex to itself.
var Zero = Finite(0)

// Finite returns the finite distance v.
func Finite(v int64) Distance {
	return Distance{value: v, finite: true}
}

// IsInf reports whether d is infinite.
func (d Distance) IsInf() bool { return !d.finite }

// Value returns the finite value of d and true, or 0 and false for Infinity.
func (d Distance) Value() (int64, bool) {
	return d.value, d.finite
}

// Plus returns d + w. Infinity stays infinite.
func (d Distance) Plus(w Weight) Distance {
	if !d.finite {
		return Infinity
	}
	if w > 0 && d.value > math.MaxInt64-w {
		return Finite(math.MaxInt64)
	}

	return Finite(d.value + w)
}

// Add returns d + o. If either operand is infinite the sum is Infinity.
func (d Distance) Add(o Distance) Distance {
	if !d.finite || !o.finite {
		return Infinity
	}

	return d.Plus(o.value)
}

// Less reports whether d is strictly shorter than o.
// Every finite distance is shorter than Infinity; Infinity is not shorter
// than anything.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.value < o.value
	}
}

// String renders d as a decimal number or "inf".
func (d Distance) String() string {
	if !d.finite {
		return "inf"
	}

	return strconv.FormatInt(d.value, 10)
}
