package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"

	bigint "github.com/sw1tcherrr/big-integer"
)

func runBigcalc(stdin string, args ...string) (stdout, stderr string, err error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	if err != nil {
		printError(cmd, err)
	}
	return out.String(), errOut.String(), err
}

func TestEvalArgs(t *testing.T) {
	tt := assert.WrapTB(t)
	out, _, err := runBigcalc("", "eval", "1", "64", "<<")
	tt.MustOK(err)
	tt.MustEqual("18446744073709551616\n", out)

	out, _, err = runBigcalc("", "eval", "--", "-7", "3", "%")
	tt.MustOK(err)
	tt.MustEqual("-1\n", out)
}

func TestEvalArgsError(t *testing.T) {
	tt := assert.WrapTB(t)
	_, stderr, err := runBigcalc("", "--color=off", "eval", "5", "0", "/")
	tt.MustAssert(errors.Cause(err) == bigint.ErrDivisionByZero, "found: %v", err)
	tt.MustAssert(strings.HasPrefix(stderr, "error: "), "found: %q", stderr)
	tt.MustAssert(!strings.Contains(stderr, "\x1b["), "found: %q", stderr)
}

func TestEvalColor(t *testing.T) {
	tt := assert.WrapTB(t)
	_, stderr, err := runBigcalc("", "--color=on", "eval", "1", "+")
	tt.MustAssert(err != nil)
	tt.MustAssert(strings.Contains(stderr, "\x1b[31m"), "found: %q", stderr)
}

func TestEvalStdin(t *testing.T) {
	tt := assert.WrapTB(t)

	var in strings.Builder
	var expected strings.Builder
	for i := 0; i < 200; i++ {
		v := bigint.IntFromInt(i)
		in.WriteString(v.String() + " 1 100 << *\n")
		expected.WriteString(v.Lsh(100).String() + "\n")
		if i%50 == 0 {
			in.WriteString("\n")
		}
	}

	out, stderr, err := runBigcalc(in.String(), "eval", "-", "--jobs", "8")
	tt.MustOK(err)
	tt.MustEqual("", stderr)
	tt.MustEqual(expected.String(), out)
}

func TestEvalStdinFailures(t *testing.T) {
	tt := assert.WrapTB(t)

	out, stderr, err := runBigcalc("1 1 +\n1 0 /\nnope\n3 3 *\n", "--color=off", "eval", "-", "--jobs", "2")
	tt.MustAssert(err != nil)
	tt.MustEqual("2\n9\n", out)
	tt.MustAssert(strings.Contains(stderr, "line 2"), "found: %q", stderr)
	tt.MustAssert(strings.Contains(stderr, "line 3"), "found: %q", stderr)
	tt.MustAssert(strings.Contains(stderr, "2 of 4 expressions failed"), "found: %q", stderr)
}

func TestEvalDump(t *testing.T) {
	tt := assert.WrapTB(t)
	out, _, err := runBigcalc("", "eval", "--dump", "1", "32", "<<", "neg")
	tt.MustOK(err)
	tt.MustAssert(strings.HasPrefix(out, "-4294967296\nsign: -1 limbs: ([]uint32) (len=1) {\n"), "found: %q", out)
}
