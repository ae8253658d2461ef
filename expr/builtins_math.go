// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

func evalAdd(p *Parser) error {
	a, b, err := p.stackTopTwoValues()
	if err != nil {
		return err
	}
	if a.kind == NumberKind {
		p.replaceTop2(Number(a.num + b.num))
		return nil
	}
	p.replaceTop2(Str(a.str.Concat(b.str)))
	return nil
}

func evalSubtract(p *Parser) error {
	a, b, err := p.stackTopTwoNumbers()
	if err != nil {
		return err
	}
	p.replaceTop2(Number(a - b))
	return nil
}

func evalMultiply(p *Parser) error {
	a, b, err := p.stackTopTwoNumbers()
	if err != nil {
		return err
	}
	p.replaceTop2(Number(a * b))
	return nil
}

func evalDivide(p *Parser) error {
	a, b, err := p.stackTopTwoNumbers()
	if err != nil {
		return err
	}
	if b == 0 {
		return p.err(DivisionByZero)
	}
	p.replaceTop2(Number(a / b))
	return nil
}

func evalPower(p *Parser) error {
	a, b, err := p.stackTopTwoNumbers()
	if err != nil {
		return err
	}
	res := math.Pow(a, b)
	if math.IsInf(res, 0) {
		return p.err(NumberTooBig)
	}
	if math.IsNaN(res) {
		return p.err(IllegalOperation)
	}
	p.replaceTop2(Number(res))
	return nil
}

func evalDiv(p *Parser) error {
	a, b, err := p.stackTopTwoInts()
	if err != nil {
		return err
	}
	if b == 0 {
		return p.err(DivisionByZero)
	}
	p.replaceTop2(Number(float64(a / b)))
	return nil
}

func evalMod(p *Parser) error {
	a, b, err := p.stackTopTwoInts()
	if err != nil {
		return err
	}
	if b == 0 {
		return p.err(DivisionByZero)
	}
	p.replaceTop2(Number(float64(a % b)))
	return nil
}

// shiftCompute implements both shift operators: a positive shift count
// shifts in the named direction; a negative count shifts |count| in the
// opposite direction. Counts with magnitude above 31 produce zero either
// way, matching a 32-bit shift register that has been emptied.
func shiftCompute(value, count int, left bool) int32 {
	v := int32(value)
	switch {
	case count > 31 || count < -31:
		return 0
	case count == 0:
		return v
	case count > 0:
		if left {
			return int32(uint32(v) << uint(count))
		}
		return v >> uint(count)
	default:
		if left {
			return v >> uint(-count)
		}
		return int32(uint32(v) << uint(-count))
	}
}

func evalShiftLeft(p *Parser) error {
	a, b, err := p.stackTopTwoInts()
	if err != nil {
		return err
	}
	p.replaceTop2(Number(float64(shiftCompute(a, b, true))))
	return nil
}

func evalShiftRight(p *Parser) error {
	a, b, err := p.stackTopTwoInts()
	if err != nil {
		return err
	}
	p.replaceTop2(Number(float64(shiftCompute(a, b, false))))
	return nil
}

func evalAnd(p *Parser) error {
	a, b, err := p.stackTopTwoInts()
	if err != nil {
		return err
	}
	p.replaceTop2(Number(float64(a & b)))
	return nil
}

func evalOr(p *Parser) error {
	a, b, err := p.stackTopTwoInts()
	if err != nil {
		return err
	}
	p.replaceTop2(Number(float64(a | b)))
	return nil
}

func evalEor(p *Parser) error {
	a, b, err := p.stackTopTwoInts()
	if err != nil {
		return err
	}
	p.replaceTop2(Number(float64(a ^ b)))
	return nil
}

func truthValue(b bool) Value {
	if b {
		return Number(-1)
	}
	return Number(0)
}

func evalCompare(p *Parser) (int, error) {
	a, b, err := p.stackTopTwoValues()
	if err != nil {
		return 0, err
	}
	return compareValues(a, b, p.cursor.position())
}

func evalEqual(p *Parser) error {
	cmp, err := evalCompare(p)
	if err != nil {
		return err
	}
	p.replaceTop2(truthValue(cmp == 0))
	return nil
}

func evalNotEqual(p *Parser) error {
	cmp, err := evalCompare(p)
	if err != nil {
		return err
	}
	p.replaceTop2(truthValue(cmp != 0))
	return nil
}

func evalLessOrEqual(p *Parser) error {
	cmp, err := evalCompare(p)
	if err != nil {
		return err
	}
	p.replaceTop2(truthValue(cmp <= 0))
	return nil
}

func evalMoreOrEqual(p *Parser) error {
	cmp, err := evalCompare(p)
	if err != nil {
		return err
	}
	p.replaceTop2(truthValue(cmp >= 0))
	return nil
}

func evalLess(p *Parser) error {
	cmp, err := evalCompare(p)
	if err != nil {
		return err
	}
	p.replaceTop2(truthValue(cmp < 0))
	return nil
}

func evalMore(p *Parser) error {
	cmp, err := evalCompare(p)
	if err != nil {
		return err
	}
	p.replaceTop2(truthValue(cmp > 0))
	return nil
}

func evalNegate(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(-n))
	return nil
}

// evalPosate is a true no-op: it asserts a value is present but neither
// inspects nor changes it, which is why it is the one unary operator
// that accepts a String operand without error.
func evalPosate(p *Parser) error {
	if len(p.values) < 1 {
		return p.err(MissingValue)
	}
	return nil
}

func evalHi(p *Parser) error {
	v, err := p.stackTopInt()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(float64((v & 0xFFFF) >> 8)))
	return nil
}

func evalLo(p *Parser) error {
	v, err := p.stackTopInt()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(float64(v & 0xFF)))
	return nil
}

func evalSin(p *Parser) error { return evalMathFunc(p, math.Sin) }
func evalCos(p *Parser) error { return evalMathFunc(p, math.Cos) }
func evalTan(p *Parser) error { return evalMathFunc(p, math.Tan) }

func evalMathFunc(p *Parser, f func(float64) float64) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(f(n)))
	return nil
}

func evalDomainMathFunc(p *Parser, f func(float64) float64) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	res := f(n)
	if math.IsNaN(res) {
		return p.err(IllegalOperation)
	}
	p.replaceTop1(Number(res))
	return nil
}

func evalArcSin(p *Parser) error { return evalDomainMathFunc(p, math.Asin) }
func evalArcCos(p *Parser) error { return evalDomainMathFunc(p, math.Acos) }
func evalArcTan(p *Parser) error { return evalDomainMathFunc(p, math.Atan) }

func evalLog(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	res := math.Log10(n)
	if math.IsNaN(res) || math.IsInf(res, -1) {
		return p.err(IllegalOperation)
	}
	p.replaceTop1(Number(res))
	return nil
}

func evalLn(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	res := math.Log(n)
	if math.IsNaN(res) || math.IsInf(res, -1) {
		return p.err(IllegalOperation)
	}
	p.replaceTop1(Number(res))
	return nil
}

func evalExp(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	res := math.Exp(n)
	if math.IsInf(res, 1) {
		return p.err(IllegalOperation)
	}
	p.replaceTop1(Number(res))
	return nil
}

func evalSqrt(p *Parser) error { return evalDomainMathFunc(p, math.Sqrt) }

func evalDegToRad(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(n * math.Pi / 180))
	return nil
}

func evalRadToDeg(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(n * 180 / math.Pi))
	return nil
}

func evalInt(p *Parser) error {
	i, err := p.stackTopInt()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(float64(i)))
	return nil
}

func evalAbs(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(math.Abs(n)))
	return nil
}

func evalSgn(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	switch {
	case n > 0:
		p.replaceTop1(Number(1))
	case n < 0:
		p.replaceTop1(Number(-1))
	default:
		p.replaceTop1(Number(0))
	}
	return nil
}

// evalRnd mirrors BBC BASIC's RND(n): n < 1 is an error, n == 1 returns
// a uniform double in [0, 1), and n > 1 returns an integer uniformly
// distributed in [0, n).
func evalRnd(p *Parser) error {
	n, err := p.stackTopNumber()
	if err != nil {
		return err
	}
	if n < 1 {
		return p.err(IllegalOperation)
	}
	uniform := float64(p.ctx.Rand()) / (float64(p.ctx.RandMax()) + 1)
	if n == 1 {
		p.replaceTop1(Number(uniform))
		return nil
	}
	iv, err := p.convertDoubleToInt(uniform * n)
	if err != nil {
		return err
	}
	p.replaceTop1(Number(float64(iv)))
	return nil
}

func evalNot(p *Parser) error {
	i, err := p.stackTopInt()
	if err != nil {
		return err
	}
	p.replaceTop1(Number(float64(^int32(i))))
	return nil
}
