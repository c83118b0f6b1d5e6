package bigint

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidFormat is returned (wrapped) when a string is not an
	// optionally signed run of ASCII decimal digits.
	ErrInvalidFormat = errors.New("bigint: invalid format")

	// ErrDivisionByZero is returned (wrapped) by Quo, Rem and QuoRem when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("bigint: division by zero")
)

func invalidFormat(s string) error {
	return errors.Wrapf(ErrInvalidFormat, "%q", s)
}

func divisionByZero(op string) error {
	return errors.Wrap(ErrDivisionByZero, op)
}
