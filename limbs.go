package bigint

// zeroWords backs the canonical view of the zero value Int{}. It is only ever
// read.
var zeroWords = []uint32{0}

// signWord returns the limb that every index above the stored limbs reads as:
// all zeros for non-negative values, all ones for negative values.
func signWord(neg bool) uint32 {
	if neg {
		return limbMax
	}
	return 0
}

// words returns the stored limbs, treating the zero value as a single 0 limb.
func (i Int) words() []uint32 {
	if len(i.limbs) == 0 {
		return zeroWords
	}
	return i.limbs
}

// digit returns limb n of the infinite sign-extended two's-complement pattern.
func (i Int) digit(n int) uint32 {
	if n < len(i.limbs) {
		return i.limbs[n]
	}
	return signWord(i.neg)
}

// invDigit returns the complement of digit(n). Adding invDigit plus a carry-in
// of 1 is the same as subtracting i.
func (i Int) invDigit(n int) uint32 {
	return ^i.digit(n)
}

// shrink drops redundant sign-extension limbs from the top of v, leaving at
// least one limb.
func shrink(v []uint32, neg bool) []uint32 {
	ext := signWord(neg)
	for len(v) > 1 && v[len(v)-1] == ext {
		v = v[:len(v)-1]
	}
	return v
}

// at reads limb n of a non-negative magnitude, with zeros above len(v).
func at(v []uint32, n int) uint32 {
	if n >= 0 && n < len(v) {
		return v[n]
	}
	return 0
}

// lessAt reports whether the magnitude a[off:] is less than b. Both are
// read with virtual zero extension, so neither length has to match. The scan
// covers max(len(a)-off, len(b)) limbs; pass a re-sliced a to bound it.
func lessAt(a, b []uint32, off int) bool {
	n := len(a) - off
	if len(b) > n {
		n = len(b)
	}
	for k := n - 1; k >= 0; k-- {
		x, y := at(a, k+off), at(b, k)
		if x != y {
			return x < y
		}
	}
	return false
}

// subAt subtracts the magnitude b from the window a[off:], in place. The
// window must not be smaller than b, and it ends at len(a): limbs beyond a's
// length are never touched.
func subAt(a, b []uint32, off int) {
	var carry uint64 = 1
	for k := off; k < len(a); k++ {
		s := uint64(a[k]) + uint64(^at(b, k-off)) + carry
		a[k] = uint32(s)
		carry = s >> limbBits
	}
}

// newInt builds a canonical Int from a scratch buffer the caller owns.
func newInt(neg bool, v []uint32) Int {
	return Int{neg: neg, limbs: shrink(v, neg)}
}
