package bigint

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

func TestIntFromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"000", "0"},
		{"-000", "0"},
		{"+42", "42"},
		{"-42", "-42"},
		{"000123", "123"},
		{"999999999", "999999999"},
		{"1000000000", "1000000000"},
		{"4294967295", "4294967295"},
		{"4294967296", "4294967296"},
		{"-4294967296", "-4294967296"},
		{"1000000000000000001", "1000000000000000001"},
		{"-9223372036854775808", "-9223372036854775808"},
		{"18446744073709551616", "18446744073709551616"},
		{
			"-1234567890123456789012345678901234567890123456789012345678901234567890",
			"-1234567890123456789012345678901234567890123456789012345678901234567890",
		},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := IntFromString(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v.String())
			tt.MustEqual(tc.out, v.AsBigInt().String())
			tt.MustOK(checkCanonical(v))
		})
	}
}

func TestIntFromStringInvalid(t *testing.T) {
	for idx, in := range []string{
		"",
		"-",
		"+",
		"12a3",
		"--5",
		"-+5",
		"+-5",
		" 1",
		"1 ",
		"0x10",
		"1_000",
		"1e9",
		"1.0",
		"١٢٣",
		"123456789012345678901234567890x",

		// A sign or separator at the start of a later 9-digit chunk:
		"123456789+1",
		"123456789-1",
		"123456789_1",
		"123456789 1",
	} {
		t.Run(fmt.Sprintf("%d/%q", idx, in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := IntFromString(in)
			tt.MustAssert(errors.Cause(err) == ErrInvalidFormat, "found: %v", err)
			tt.MustAssert(strings.Contains(err.Error(), fmt.Sprintf("%q", in)))
		})
	}
}

func TestMustIntFromStringPanics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		err, _ := recover().(error)
		tt.MustAssert(errors.Cause(err) == ErrInvalidFormat, "found: %v", err)
	}()
	MustIntFromString("nope")
	t.Fatal("expected panic")
}

func TestIntString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("0", IntZero().String())
	tt.MustEqual("0", Int{}.String())
	tt.MustEqual("-1", i64(-1).String())
	tt.MustEqual("1000000000", i64(1000000000).String())
	tt.MustEqual("-1000000007", i64(-1000000007).String())
	tt.MustEqual("18446744073709551616", i64(1).Lsh(64).String())
	tt.MustEqual("1000000000000000000000000000", ints("1000000000000000000000000000").String())
}

func TestIntFormat(t *testing.T) {
	for idx, tc := range []struct {
		v   Int
		fmt string
		out string
	}{
		{i64(42), "%d", "42"},
		{i64(-42), "%d", "-42"},
		{i64(42), "%v", "42"},
		{i64(42), "%s", "42"},
		{i64(42), "%+d", "+42"},
		{i64(-42), "%+d", "-42"},
		{i64(42), "% d", " 42"},
		{i64(42), "%5d", "   42"},
		{i64(-42), "%5d", "  -42"},
		{i64(42), "%-5d|", "42   |"},
		{i64(-42), "%05d", "-0042"},
		{i64(42), "%+05d", "+0042"},
		{i64(123456), "%3d", "123456"},
		{i64(42), "%x", "%!x(bigint.Int=42)"},
		{ints("-18446744073709551616"), "%d", "-18446744073709551616"},
	} {
		t.Run(fmt.Sprintf("%d/%s=%s", idx, tc.fmt, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, fmt.Sprintf(tc.fmt, tc.v))
		})
	}
}
