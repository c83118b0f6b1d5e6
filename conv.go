package bigint

import (
	"fmt"
	"strconv"
)

// IntFromString creates an Int from a decimal string: an optional '+' or '-'
// followed by one or more ASCII digits. Nothing else is accepted; there are no
// base prefixes, underscores or surrounding spaces. Failures wrap
// ErrInvalidFormat.
func IntFromString(s string) (out Int, err error) {
	digits := s
	neg := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg, digits = true, s[1:]
		case '+':
			digits = s[1:]
		}
	}
	if len(digits) == 0 {
		return out, invalidFormat(s)
	}

	m := make([]uint32, 1, len(digits)/decChunk+2)
	for start := 0; start < len(digits); start += decChunk {
		chunk := digits[start:min(start+decChunk, len(digits))]
		// Base 10 ParseUint takes digits only: no sign, prefix or underscore.
		v, err := strconv.ParseUint(chunk, 10, 32)
		if err != nil {
			return out, invalidFormat(s)
		}
		m = mulAddSmall(m, pow10[len(chunk)], uint32(v))
	}

	out = newInt(false, m)
	if neg && !out.IsZero() {
		out = out.Neg()
	}
	return out, nil
}

// MustIntFromString is like IntFromString but panics if s is not a valid
// decimal integer. It is intended for constants and tests.
func MustIntFromString(s string) Int {
	i, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Int) String() string {
	return string(i.appendDecimal(nil))
}

// appendDecimal appends the decimal form of i to b. The magnitude is peeled
// into base 10^9 chunks, least significant first, with repeated single-limb
// division.
func (i Int) appendDecimal(b []byte) []byte {
	if i.IsZero() {
		return append(b, '0')
	}

	m := i.Abs().words()
	chunks := make([]uint32, 0, len(m)*10/9+1)
	for len(m) > 1 || m[0] != 0 {
		var r uint32
		m, r = divSmall(m, decChunkBase)
		chunks = append(chunks, r)
	}

	if i.neg {
		b = append(b, '-')
	}
	last := len(chunks) - 1
	b = strconv.AppendUint(b, uint64(chunks[last]), 10)

	var pad [decChunk]byte
	for k := last - 1; k >= 0; k-- {
		c := chunks[k]
		for p := decChunk - 1; p >= 0; p-- {
			pad[p] = byte('0' + c%10)
			c /= 10
		}
		b = append(b, pad[:]...)
	}
	return b
}

// Format implements fmt.Formatter. Only the decimal verbs 'd', 's' and 'v'
// are supported, along with the '+', ' ', '-' and '0' flags and a width.
func (i Int) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", c, i.String())
		return
	}

	digits := i.appendDecimal(nil)
	var sign []byte
	if i.neg {
		sign, digits = digits[:1], digits[1:]
	} else if s.Flag('+') {
		sign = []byte{'+'}
	} else if s.Flag(' ') {
		sign = []byte{' '}
	}

	width, _ := s.Width()
	padLen := width - len(sign) - len(digits)
	switch {
	case padLen <= 0:
		s.Write(sign)
		s.Write(digits)
	case s.Flag('-'):
		s.Write(sign)
		s.Write(digits)
		writeRepeat(s, ' ', padLen)
	case s.Flag('0'):
		s.Write(sign)
		writeRepeat(s, '0', padLen)
		s.Write(digits)
	default:
		writeRepeat(s, ' ', padLen)
		s.Write(sign)
		s.Write(digits)
	}
}

func writeRepeat(s fmt.State, c byte, n int) {
	b := make([]byte, n)
	for k := range b {
		b[k] = c
	}
	s.Write(b)
}
