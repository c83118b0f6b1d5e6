package bigint

import "math/bits"

// This file holds the magnitude-only helpers; every slice here is an unsigned
// little-endian limb sequence.

// mulAddSmall returns u*m + a.
func mulAddSmall(u []uint32, m, a uint32) []uint32 {
	out := make([]uint32, len(u)+1)
	carry := uint64(a)
	for k, w := range u {
		cur := uint64(w)*uint64(m) + carry
		out[k] = uint32(cur)
		carry = cur >> limbBits
	}
	out[len(u)] = uint32(carry)
	return shrink(out, false)
}

// divSmall divides u by a single non-zero limb, scanning from the most
// significant limb down, and returns the quotient and remainder.
func divSmall(u []uint32, d uint32) (q []uint32, r uint32) {
	q = make([]uint32, len(u))
	for k := len(u) - 1; k >= 0; k-- {
		// r < d always holds here, so Div32 cannot overflow.
		q[k], r = bits.Div32(r, u[k], d)
	}
	return shrink(q, false), r
}

// mulMag is the O(n*m) schoolbook product of two magnitudes.
func mulMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a)+len(b))
	for i, x := range a {
		if x == 0 {
			continue
		}
		var carry uint64
		for j, y := range b {
			// (2^32-1)^2 + 2*(2^32-1) == 2^64-1, so this cannot overflow.
			cur := uint64(out[i+j]) + uint64(x)*uint64(y) + carry
			out[i+j] = uint32(cur)
			carry = cur >> limbBits
		}
		out[i+len(b)] = uint32(carry)
	}
	return shrink(out, false)
}

// subMag returns a - b for a >= b.
func subMag(a, b []uint32) []uint32 {
	out := make([]uint32, len(a))
	copy(out, a)
	subAt(out, b, 0)
	return shrink(out, false)
}

// div21 divides the two-limb value hi:lo by d, saturating at limbMax.
func div21(hi, lo, d uint32) uint32 {
	q := (uint64(hi)<<limbBits | uint64(lo)) / uint64(d)
	if q > limbMax {
		return limbMax
	}
	return uint32(q)
}

func bitLen(v []uint32) int {
	v = shrink(v, false)
	return (len(v)-1)*limbBits + bits.Len32(v[len(v)-1])
}
