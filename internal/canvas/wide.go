package canvas

import (
	"math"
	"math/bits"
)

// u128 is an unsigned 128-bit integer. Squared distances between any two
// ints fit, so disk tests stay exact for every radius and centre.
type u128 struct {
	hi, lo uint64
}

func square(v uint64) u128 {
	hi, lo := bits.Mul64(v, v)
	return u128{hi, lo}
}

func (a u128) add(b u128) u128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return u128{hi, lo}
}

func (a u128) lessEq(b u128) bool {
	return a.hi < b.hi || (a.hi == b.hi && a.lo <= b.lo)
}

// absDiff returns |a-b|, which always fits in a uint64.
func absDiff(a, b int) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}
	return uint64(b) - uint64(a)
}

// satAdd returns a+b clamped to the int range.
func satAdd(a, b int) int {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt
	case b < 0 && s > a:
		return math.MinInt
	}
	return s
}

// satSub returns a-b clamped to the int range.
func satSub(a, b int) int {
	s := a - b
	switch {
	case b < 0 && s < a:
		return math.MaxInt
	case b > 0 && s > a:
		return math.MinInt
	}
	return s
}
