// Package rpn evaluates reverse-Polish expressions over bigint.Int.
//
// Operands are decimal literals. Binary operators pop the right-hand operand
// first:
//
//	+ - * / % & | ^ << >> == != < > <= >=
//
// Comparisons push 1 or 0. Unary operators are ~, neg, abs, ++ and --.
package rpn

import (
	"strings"

	"fortio.org/safecast"
	"github.com/pkg/errors"

	bigint "github.com/sw1tcherrr/big-integer"
)

var (
	ErrStackUnderflow = errors.New("rpn: stack underflow")
	ErrLeftover       = errors.New("rpn: more than one value left on the stack")
	ErrEmpty          = errors.New("rpn: empty expression")
	ErrUnknownToken   = errors.New("rpn: unknown token")
	ErrShiftRange     = errors.New("rpn: shift count out of range")
)

type binaryOp func(a, b bigint.Int) (bigint.Int, error)

type unaryOp func(a bigint.Int) bigint.Int

var binaryOps = map[string]binaryOp{
	"+":  pure(bigint.Int.Add),
	"-":  pure(bigint.Int.Sub),
	"*":  pure(bigint.Int.Mul),
	"/":  bigint.Int.Quo,
	"%":  bigint.Int.Rem,
	"&":  pure(bigint.Int.And),
	"|":  pure(bigint.Int.Or),
	"^":  pure(bigint.Int.Xor),
	"<<": shift(bigint.Int.Lsh),
	">>": shift(bigint.Int.Rsh),
	"==": compare(bigint.Int.Equal),
	"!=": compare(func(a, b bigint.Int) bool { return !a.Equal(b) }),
	"<":  compare(bigint.Int.LessThan),
	">":  compare(bigint.Int.GreaterThan),
	"<=": compare(bigint.Int.LessOrEqualTo),
	">=": compare(bigint.Int.GreaterOrEqualTo),
}

var unaryOps = map[string]unaryOp{
	"~":   bigint.Int.Not,
	"neg": bigint.Int.Neg,
	"abs": bigint.Int.Abs,
	"++":  bigint.Int.Inc,
	"--":  bigint.Int.Dec,
}

func pure(fn func(a, b bigint.Int) bigint.Int) binaryOp {
	return func(a, b bigint.Int) (bigint.Int, error) { return fn(a, b), nil }
}

func compare(fn func(a, b bigint.Int) bool) binaryOp {
	return func(a, b bigint.Int) (bigint.Int, error) {
		if fn(a, b) {
			return bigint.IntOne(), nil
		}
		return bigint.IntZero(), nil
	}
}

func shift(fn func(a bigint.Int, n int) bigint.Int) binaryOp {
	return func(a, b bigint.Int) (bigint.Int, error) {
		if !b.IsInt64() {
			return bigint.Int{}, errors.Wrapf(ErrShiftRange, "%s", b)
		}
		n, err := safecast.Conv[int](b.AsInt64())
		if err != nil {
			return bigint.Int{}, errors.Wrapf(ErrShiftRange, "%s", b)
		}
		return fn(a, n), nil
	}
}

// EvalLine splits line on whitespace and evaluates the tokens.
func EvalLine(line string) (bigint.Int, error) {
	return Eval(strings.Fields(line))
}

// Eval evaluates tokens and returns the single value left on the stack.
func Eval(tokens []string) (bigint.Int, error) {
	if len(tokens) == 0 {
		return bigint.Int{}, ErrEmpty
	}

	stack := make([]bigint.Int, 0, len(tokens))
	for pos, tok := range tokens {
		if op, ok := binaryOps[tok]; ok {
			if len(stack) < 2 {
				return bigint.Int{}, errors.Wrapf(ErrStackUnderflow, "%q at token %d", tok, pos)
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			v, err := op(a, b)
			if err != nil {
				return bigint.Int{}, errors.Wrapf(err, "%q at token %d", tok, pos)
			}
			stack = append(stack[:len(stack)-2], v)
			continue
		}

		if op, ok := unaryOps[tok]; ok {
			if len(stack) < 1 {
				return bigint.Int{}, errors.Wrapf(ErrStackUnderflow, "%q at token %d", tok, pos)
			}
			stack[len(stack)-1] = op(stack[len(stack)-1])
			continue
		}

		v, err := bigint.IntFromString(tok)
		if err != nil {
			return bigint.Int{}, errors.Wrapf(ErrUnknownToken, "%q at token %d", tok, pos)
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return bigint.Int{}, errors.Wrapf(ErrLeftover, "%d values", len(stack))
	}
	return stack[0], nil
}
