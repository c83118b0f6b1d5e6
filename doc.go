/*
Package bigint provides an arbitrary-precision signed integer type, Int, with
the full set of arithmetic, bitwise, shift and comparison operations of Go's
native signed integers but without a fixed width.

Int is a value type; all operations return new values.

Simple example:

	a := MustIntFromString("123456789123456789")
	fmt.Println(a.Mul(a))
	// Output: 15241578780673678515622620750190521

Int values can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFromU64(v uint64) Int
	IntFromU32(v uint32) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int

Internally the value is a two's-complement sequence of 32-bit limbs that is
implicitly sign-extended forever, so And, Or, Xor, Not and Rsh behave exactly
like their math/big counterparts on negative numbers.

Quo, Rem and QuoRem truncate towards zero, as Go's / and % do, and return an
error wrapping ErrDivisionByZero for a zero divisor. IntFromString returns an
error wrapping ErrInvalidFormat; use errors.Cause (or errors.Is) to match them.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- bson.Getter
	- bson.Setter
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

*/
package bigint
