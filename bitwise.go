package bigint

type bitOp uint8

const (
	opAnd bitOp = iota
	opOr
	opXor
)

func (op bitOp) apply(a, b uint32) uint32 {
	switch op {
	case opAnd:
		return a & b
	case opOr:
		return a | b
	case opXor:
		return a ^ b
	default:
		panic("bigint: unknown bit op")
	}
}

// And returns i & n, treating both as infinite two's-complement bit patterns
// like big.Int.And does.
func (i Int) And(n Int) Int { return i.bitwise(n, opAnd) }

// Or returns i | n, with the same semantics as big.Int.Or.
func (i Int) Or(n Int) Int { return i.bitwise(n, opOr) }

// Xor returns i ^ n, with the same semantics as big.Int.Xor.
func (i Int) Xor(n Int) Int { return i.bitwise(n, opXor) }

func (i Int) bitwise(n Int, op bitOp) Int {
	out := make([]uint32, max(len(i.words()), len(n.words())))
	for k := range out {
		out[k] = op.apply(i.digit(k), n.digit(k))
	}
	// The sign bit extends forever, so the sign of the result is the same op
	// applied to the two sign words.
	neg := op.apply(signWord(i.neg), signWord(n.neg)) != 0
	return newInt(neg, out)
}

// Lsh returns i << n. A negative n shifts right by -n instead.
func (i Int) Lsh(n int) Int {
	if n < 0 {
		return i.rsh(negShift(n))
	}
	return i.lsh(uint(n))
}

// Rsh returns i >> n using arithmetic shift semantics: the result is rounded
// towards negative infinity, as with big.Int.Rsh. A negative n shifts left by
// -n instead.
func (i Int) Rsh(n int) Int {
	if n < 0 {
		return i.lsh(negShift(n))
	}
	return i.rsh(uint(n))
}

// negShift returns -n for a negative n without overflowing at math.MinInt.
func negShift(n int) uint {
	return uint(-(n + 1)) + 1
}

func (i Int) lsh(n uint) Int {
	src := i.words()
	zeros, s := n/limbBits, n%limbBits
	out := make([]uint32, uint(len(src))+zeros+1)
	copy(out[zeros:], src)

	top := signWord(i.neg)
	if s != 0 {
		var carry uint32
		for k := int(zeros); k < len(out)-1; k++ {
			hi := out[k] >> (limbBits - s)
			out[k] = out[k]<<s | carry
			carry = hi
		}
		// The new top limb takes the bits shifted out of the old top limb and
		// is filled above them with the sign.
		top = top<<s | carry
	}
	out[len(out)-1] = top
	return newInt(i.neg, out)
}

func (i Int) rsh(n uint) Int {
	src := i.words()
	drop, s := n/limbBits, n%limbBits
	if drop >= uint(len(src)) {
		return Int{neg: i.neg, limbs: []uint32{signWord(i.neg)}}
	}

	out := make([]uint32, uint(len(src))-drop)
	copy(out, src[drop:])
	if s != 0 {
		carry := signWord(i.neg) << (limbBits - s)
		for k := len(out) - 1; k >= 0; k-- {
			lo := out[k] << (limbBits - s)
			out[k] = out[k]>>s | carry
			carry = lo
		}
	}
	return newInt(i.neg, out)
}
