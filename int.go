package bigint

import (
	"math/big"
)

// Int is an arbitrary-precision signed integer.
//
// The limbs hold the value in two's-complement form, least significant limb
// first. Every limb above the stored ones is implicitly all zeros when neg is
// false and all ones when neg is true. Limbs are kept canonical: there is
// never a redundant sign-extension limb at the top, and there is always at
// least one limb except in the zero value, which is a valid 0.
//
// Int is a value type; all operations return new values and never write to
// the limbs of their operands.
type Int struct {
	neg   bool
	limbs []uint32
}

// IntFrom64 creates an Int from an int64.
func IntFrom64(v int64) Int {
	return newInt(v < 0, []uint32{uint32(v), uint32(v >> limbBits)})
}

// IntFromU64 creates an Int from a uint64.
func IntFromU64(v uint64) Int {
	return newInt(false, []uint32{uint32(v), uint32(v >> limbBits)})
}

// IntFrom32 creates an Int from an int32.
func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }

// IntFrom16 creates an Int from an int16.
func IntFrom16(v int16) Int { return IntFrom64(int64(v)) }

// IntFrom8 creates an Int from an int8.
func IntFrom8(v int8) Int { return IntFrom64(int64(v)) }

// IntFromInt creates an Int from an int.
func IntFromInt(v int) Int { return IntFrom64(int64(v)) }

// IntFromUint creates an Int from a uint.
func IntFromUint(v uint) Int { return IntFromU64(uint64(v)) }

// IntFromU32 creates an Int from a uint32.
func IntFromU32(v uint32) Int { return Int{limbs: []uint32{v}} }

// IntFromU16 creates an Int from a uint16.
func IntFromU16(v uint16) Int { return Int{limbs: []uint32{uint32(v)}} }

// IntFromU8 creates an Int from a uint8.
func IntFromU8(v uint8) Int { return Int{limbs: []uint32{uint32(v)}} }

// IntZero returns a new Int set to 0. The zero value of Int is also 0; this
// exists for symmetry with IntOne.
func IntZero() Int { return Int{limbs: []uint32{0}} }

// IntOne returns a new Int set to 1.
func IntOne() Int { return Int{limbs: []uint32{1}} }

// IsZero reports whether i == 0.
func (i Int) IsZero() bool {
	w := i.words()
	return !i.neg && len(w) == 1 && w[0] == 0
}

// Clone returns a deep copy of i. It is the unary plus operator.
func (i Int) Clone() Int {
	return Int{neg: i.neg, limbs: append([]uint32(nil), i.words()...)}
}

// Limbs returns a copy of the canonical two's-complement limbs of i, least
// significant first. Combined with Sign, it fully describes the value.
func (i Int) Limbs() []uint32 {
	return append([]uint32(nil), i.words()...)
}

// BitLen returns the length of the absolute value of i in bits.
func (i Int) BitLen() int { return bitLen(i.Abs().words()) }

func (i Int) Inc() Int { return i.Add(IntOne()) }
func (i Int) Dec() Int { return i.Sub(IntOne()) }

// PreInc increments z in place and returns the new value.
func (z *Int) PreInc() Int {
	*z = z.Inc()
	return *z
}

// PostInc increments z in place and returns the value it held before.
func (z *Int) PostInc() (old Int) {
	old = *z
	*z = z.Inc()
	return old
}

// PreDec decrements z in place and returns the new value.
func (z *Int) PreDec() Int {
	*z = z.Dec()
	return *z
}

// PostDec decrements z in place and returns the value it held before.
func (z *Int) PostDec() (old Int) {
	old = *z
	*z = z.Dec()
	return old
}

// IntFromBigInt creates an Int from a big.Int.
func IntFromBigInt(v *big.Int) Int {
	b := v.Bytes()
	out := make([]uint32, len(b)/4+1)
	for k := range b {
		shift := uint(k%4) * 8
		out[k/4] |= uint32(b[len(b)-1-k]) << shift
	}
	i := newInt(false, out)
	if v.Sign() < 0 {
		return i.Neg()
	}
	return i
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	m := i.Abs().words()
	b := make([]byte, len(m)*4)
	for k, w := range m {
		o := len(b) - 4*k
		b[o-1], b[o-2], b[o-3], b[o-4] = byte(w), byte(w>>8), byte(w>>16), byte(w>>24)
	}
	v := new(big.Int).SetBytes(b)
	if i.neg {
		v.Neg(v)
	}
	return v
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i Int) Sign() int {
	if i.neg {
		return -1
	} else if i.IsZero() {
		return 0
	}
	return 1
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	w := i.words()
	return len(w) < 2 || (len(w) == 2 && (w[1]&limbTop != 0) == i.neg)
}

// AsInt64 truncates the Int to its low 64 bits, as a conversion between Go
// integer types would. See IsInt64() if you want to check before you convert.
func (i Int) AsInt64() int64 {
	return int64(i.AsUint64())
}

// IsUint64 reports whether i can be represented as a uint64.
func (i Int) IsUint64() bool {
	return !i.neg && len(i.words()) <= 2
}

// AsUint64 truncates the Int to its low 64 bits. Negative values wrap, as
// they would for a Go conversion.
func (i Int) AsUint64() uint64 {
	return uint64(i.digit(1))<<limbBits | uint64(i.digit(0))
}

// Add returns i + n.
//
// The working buffer carries two guard limbs above the longer operand: the
// first absorbs the carry out of the top stored limb, the second holds the
// sign of the result.
func (i Int) Add(n Int) Int {
	out := make([]uint32, max(len(i.limbs), len(n.limbs))+2)
	var carry uint64
	for k := range out {
		s := uint64(i.digit(k)) + uint64(n.digit(k)) + carry
		out[k] = uint32(s)
		carry = s >> limbBits
	}
	return newInt(out[len(out)-1]&limbTop != 0, out)
}

// Sub returns i - n, computed as i + ^n + 1.
func (i Int) Sub(n Int) Int {
	out := make([]uint32, max(len(i.limbs), len(n.limbs))+2)
	var carry uint64 = 1
	for k := range out {
		s := uint64(i.digit(k)) + uint64(n.invDigit(k)) + carry
		out[k] = uint32(s)
		carry = s >> limbBits
	}
	return newInt(out[len(out)-1]&limbTop != 0, out)
}

// Neg returns -i. Neg of zero is zero.
func (i Int) Neg() Int {
	if i.IsZero() {
		return IntZero()
	}
	out := make([]uint32, len(i.limbs)+2)
	var carry uint64 = 1
	for k := range out {
		s := uint64(i.invDigit(k)) + carry
		out[k] = uint32(s)
		carry = s >> limbBits
	}
	return newInt(!i.neg, out)
}

// Not returns ^i, which is always -i - 1.
func (i Int) Not() Int {
	w := i.words()
	out := make([]uint32, len(w))
	for k, v := range w {
		out[k] = ^v
	}
	return Int{neg: !i.neg, limbs: out}
}

func (i Int) Abs() Int {
	if i.neg {
		return i.Neg()
	}
	return i
}

// Mul returns the product of two Ints.
func (i Int) Mul(n Int) Int {
	neg := i.neg != n.neg
	p := newInt(false, mulMag(i.Abs().words(), n.Abs().words()))
	if neg {
		return p.Neg()
	}
	return p
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
func (i Int) Cmp(n Int) int {
	if i.neg != n.neg {
		if i.neg {
			return -1
		}
		return 1
	}

	a, b := i.words(), n.words()
	if len(a) != len(b) {
		// A longer canonical pattern is further from zero: larger when
		// non-negative, smaller when negative.
		if (len(a) < len(b)) != i.neg {
			return -1
		}
		return 1
	}

	// Equal length and equal sign extension, so unsigned order of the limbs
	// is numeric order.
	for k := len(a) - 1; k >= 0; k-- {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
