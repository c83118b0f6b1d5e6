package bigint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random Int of at most bits bits from an
// external source. bits <= 0 yields zero.
func RandInt(source RandSource, bits int) Int {
	if bits <= 0 {
		return IntZero()
	}
	out := make([]uint32, (bits+limbBits-1)/limbBits)
	for k := 0; k < len(out); k += 2 {
		v := source.Uint64()
		out[k] = uint32(v)
		if k+1 < len(out) {
			out[k+1] = uint32(v >> limbBits)
		}
	}
	if s := bits % limbBits; s != 0 {
		out[len(out)-1] &= 1<<uint(s) - 1
	}
	return newInt(false, out)
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Int) Int {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

func Larger(a, b Int) Int {
	if a.LessThan(b) {
		return b
	}
	return a
}

func Smaller(a, b Int) Int {
	if b.LessThan(a) {
		return b
	}
	return a
}
