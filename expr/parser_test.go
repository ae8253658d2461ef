// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"testing"
	"time"
)

func newTestContext() *DefaultContext {
	ctx := NewContext(time.Date(2020, 1, 2, 15, 4, 5, 0, time.UTC), 1)
	ctx.SetFirstPass(false)
	ctx.SetPC(0x1000)
	ctx.Symbols.Set("foo", Number(42))
	ctx.Symbols.Set("bar", Str(NewStringFromGo("hello")))
	return ctx
}

func checkNumber(t *testing.T, ctx Context, expr string, want float64) {
	t.Helper()
	p := NewParser(ctx, 1, expr)
	v, err := p.Evaluate(false)
	if err != nil {
		t.Errorf("%s: unexpected error: %v", expr, err)
		return
	}
	n, err := v.AsNumber(p.Pos())
	if err != nil {
		t.Errorf("%s: result is not a number", expr)
		return
	}
	if n != want {
		t.Errorf("%s: got %v, want %v", expr, n, want)
	}
}

func checkString(t *testing.T, ctx Context, expr string, want string) {
	t.Helper()
	p := NewParser(ctx, 1, expr)
	v, err := p.Evaluate(false)
	if err != nil {
		t.Errorf("%s: unexpected error: %v", expr, err)
		return
	}
	s, err := v.AsString(p.Pos())
	if err != nil {
		t.Errorf("%s: result is not a string", expr)
		return
	}
	if s.Go() != want {
		t.Errorf("%s: got %q, want %q", expr, s.Go(), want)
	}
}

func checkErrorKind(t *testing.T, ctx Context, expr string, want ErrorKind) {
	t.Helper()
	p := NewParser(ctx, 1, expr)
	_, err := p.Evaluate(false)
	if err == nil {
		t.Errorf("%s: expected error %v, got none", expr, want)
		return
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Errorf("%s: error %v is not an *Error", expr, err)
		return
	}
	if e.Kind != want {
		t.Errorf("%s: got error %v, want %v", expr, e.Kind, want)
	}
}

func TestNumericLiterals(t *testing.T) {
	ctx := newTestContext()
	cases := []struct {
		expr string
		want float64
	}{
		{"42", 42},
		{"3.14", 3.14},
		{"1.5e2", 150},
		{"&FF", 255},
		{"&ff", 255},
		{"&0F", 15},
		{"%101", 5},
		{"&FFFFFFFF", 4294967295},
	}
	for _, c := range cases {
		checkNumber(t, ctx, c.expr, c.want)
	}
}

func TestArithmeticAndPrecedence(t *testing.T) {
	ctx := newTestContext()
	cases := []struct {
		expr string
		want float64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-3-2", 5},
		{"10/2/5", 1},
		{"2^3^2", 64},
		{"7 DIV 2", 3},
		{"-7 DIV 2", -3},
		{"7 MOD 2", 1},
		{"-7 MOD 2", -1},
		{"-5", -5},
		{"+5", 5},
		{"+-5", -5},
	}
	for _, c := range cases {
		checkNumber(t, ctx, c.expr, c.want)
	}
}

func TestIntegerRangeAndShifts(t *testing.T) {
	ctx := newTestContext()
	cases := []struct {
		expr string
		want float64
	}{
		{"&FF AND &0F", 15},
		{"&FFFFFFFF AND &FFFFFFFF", -1},
		{"&F0 OR &0F", 255},
		{"&FF EOR &0F", 240},
		{"1 << 4", 16},
		{"256 >> 4", 16},
		{"1 << 32", 0},
		{"1 << -1", 0},
		{"&80000000 >> 4", -0x8000000},
		{"NOT(0)", -1},
		{"HI(&1234)", 0x12},
		{"LO(&1234)", 0x34},
		{">&1234", 0x12},
		{"<&1234", 0x34},
	}
	for _, c := range cases {
		checkNumber(t, ctx, c.expr, c.want)
	}
}

func TestComparisons(t *testing.T) {
	ctx := newTestContext()
	cases := []struct {
		expr string
		want float64
	}{
		{"1=1", -1},
		{"1=2", 0},
		{"1<>2", -1},
		{"1!=1", 0},
		{"1<2", -1},
		{"2<=2", -1},
		{"3>=4", 0},
		{`"abc"="abc"`, -1},
		{`"abc"<"abd"`, -1},
		{`"abc">"ab"`, -1},
	}
	for _, c := range cases {
		checkNumber(t, ctx, c.expr, c.want)
	}
}

func TestWordOperatorGreedyMatch(t *testing.T) {
	ctx := newTestContext()
	ctx.Symbols.Set("Y", Number(7))
	// "ANDY" lexes as "AND" followed by identifier "Y", not as a single
	// identifier, reproducing the original parser's no-word-boundary
	// operator matching.
	checkNumber(t, ctx, "&FF ANDY", 7)
}

func TestTrigAndMath(t *testing.T) {
	ctx := newTestContext()
	checkNumber(t, ctx, "SQR(16)", 4)
	checkNumber(t, ctx, "ABS(-5)", 5)
	checkNumber(t, ctx, "SGN(-5)", -1)
	checkNumber(t, ctx, "SGN(0)", 0)
	checkNumber(t, ctx, "SGN(5)", 1)
	checkNumber(t, ctx, "INT(3.7)", 3)
	checkNumber(t, ctx, "INT(-3.7)", -3)
}

func TestStringFunctions(t *testing.T) {
	ctx := newTestContext()
	checkString(t, ctx, `LEFT$("hello",3)`, "hel")
	checkString(t, ctx, `RIGHT$("hello",3)`, "llo")
	checkString(t, ctx, `MID$("hello",2,3)`, "ell")
	checkString(t, ctx, `MID$("hello",2,100)`, "ello")
	checkString(t, ctx, `STRING$(3,"ab")`, "ababab")
	checkString(t, ctx, `UPPER$("HeLLo")`, "HELLO")
	checkString(t, ctx, `LOWER$("HeLLo")`, "hello")
	checkString(t, ctx, `CHR$(65)`, "A")
	checkNumber(t, ctx, `ASC("A")`, 65)
	checkNumber(t, ctx, `LEN("hello")`, 5)
	checkString(t, ctx, `STR$(42)`, "42")
	checkString(t, ctx, `STR$~(255)`, "FF")
	checkNumber(t, ctx, `VAL("42.5abc")`, 42.5)
	checkNumber(t, ctx, `VAL("abc")`, 0)
	checkNumber(t, ctx, `EVAL("2+3")`, 5)
	checkNumber(t, ctx, `EVAL(STR$(3.25))`, 3.25)
}

func TestSymbolsAndPC(t *testing.T) {
	ctx := newTestContext()
	checkNumber(t, ctx, "foo", 42)
	checkNumber(t, ctx, "foo+1", 43)
	checkString(t, ctx, "bar", "hello")
	checkNumber(t, ctx, "*", float64(0x1000))
}

func TestRnd(t *testing.T) {
	ctx := newTestContext()
	p := NewParser(ctx, 1, "RND(1)")
	v, err := p.Evaluate(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := v.AsNumber(p.Pos())
	if n < 0 || n >= 1 {
		t.Errorf("RND(1) = %v, want in [0,1)", n)
	}

	p2 := NewParser(ctx, 1, "RND(6)")
	v2, err := p2.Evaluate(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n2, _ := v2.AsNumber(p2.Pos())
	if n2 < 0 || n2 >= 6 || n2 != float64(int(n2)) {
		t.Errorf("RND(6) = %v, want an integer in [0,6)", n2)
	}
}

func TestErrors(t *testing.T) {
	ctx := newTestContext()
	cases := []struct {
		expr string
		kind ErrorKind
	}{
		{"", EmptyExpression},
		{"1+", MissingValue},
		{"(1+2", MismatchedParentheses},
		{"1+2)", MismatchedParentheses},
		{`1+"a"`, TypeMismatch},
		{"1/0", DivisionByZero},
		{"1 DIV 0", DivisionByZero},
		{"undefinedsym", SymbolNotDefined},
		{`"unterminated`, MissingQuote},
		{"1~2", InvalidCharacter},
		{"SQR(-1)", IllegalOperation},
		{"LOG(0)", IllegalOperation},
		{"CHR$(300)", IllegalOperation},
		{"ASC(\"\")", IllegalOperation},
		{"LEFT$(1,2)", TypeMismatch},
		{"MID$(\"ab\",5,1)", IllegalOperation},
		{"2^99999", NumberTooBig},
		{"&100000000 AND 1", OutOfIntegerRange},
	}
	for _, c := range cases {
		checkErrorKind(t, ctx, c.expr, c.kind)
	}
}

func TestForwardReferenceToleratedOnFirstPass(t *testing.T) {
	ctx := newTestContext()
	ctx.SetFirstPass(true)

	p := NewParser(ctx, 1, "undefinedsym + 1 : junk")
	_, err := p.Evaluate(false)
	var e *Error
	if !errors.As(err, &e) || e.Kind != SymbolNotDefined {
		t.Fatalf("expected SymbolNotDefined, got %v", err)
	}
	if p.Remaining() != ": junk" {
		t.Errorf("expected cursor to stop before the statement separator, got %q", p.Remaining())
	}
}

func TestAllowOneTrailingClose(t *testing.T) {
	ctx := newTestContext()
	p := NewParser(ctx, 1, "&20),Y")
	v, err := p.Evaluate(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, _ := v.AsNumber(p.Pos())
	if n != 0x20 {
		t.Errorf("got %v, want 32", n)
	}
	if p.Remaining() != "),Y" {
		t.Errorf("expected cursor to stop before the trailing ')', got %q", p.Remaining())
	}
}

func TestParameterCount(t *testing.T) {
	ctx := newTestContext()
	checkErrorKind(t, ctx, `MID$("ab",1)`, ParameterCount)
	checkErrorKind(t, ctx, `SQR(1,2)`, ParameterCount)
}
