// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// A Kind identifies which variant of Value is populated.
type Kind byte

const (
	// NumberKind values are stored as IEEE-754 doubles.
	NumberKind Kind = iota
	// StringKind values are stored as immutable byte sequences.
	StringKind
)

// A Value is the result of evaluating an expression: either a number or a
// string, never both. Values are immutable; every operation that appears
// to mutate one instead returns a new Value.
type Value struct {
	kind Kind
	num  float64
	str  String
}

// Number returns a numeric Value.
func Number(n float64) Value {
	return Value{kind: NumberKind, num: n}
}

// Str returns a string-valued Value.
func Str(s String) Value {
	return Value{kind: StringKind, str: s}
}

// StrFromBytes returns a string-valued Value built from raw bytes.
func StrFromBytes(b []byte) Value {
	return Value{kind: StringKind, str: NewString(b)}
}

// Kind reports which variant of the Value is populated.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumber reports whether v holds a Number.
func (v Value) IsNumber() bool {
	return v.kind == NumberKind
}

// IsString reports whether v holds a String.
func (v Value) IsString() bool {
	return v.kind == StringKind
}

// AsNumber returns the numeric value of v, or an ErrorKind TypeMismatch
// error if v is not a Number.
func (v Value) AsNumber(pos Position) (float64, error) {
	if v.kind != NumberKind {
		return 0, newError(TypeMismatch, pos)
	}
	return v.num, nil
}

// AsString returns the string value of v, or an ErrorKind TypeMismatch
// error if v is not a String.
func (v Value) AsString(pos Position) (String, error) {
	if v.kind != StringKind {
		return String{}, newError(TypeMismatch, pos)
	}
	return v.str, nil
}

// compareValues compares two same-kind values. a and b must share a Kind;
// callers (the comparison operators) are responsible for checking this
// via stackTopTwoValues, which already enforces it.
//
// Numbers compare using natural IEEE-754 ordering; NaN ordering is left
// to Go's < and > operators and is not a property this engine guarantees.
// Strings compare lexicographically over unsigned bytes.
func compareValues(a, b Value, pos Position) (int, error) {
	if a.kind != b.kind {
		return 0, newError(TypeMismatch, pos)
	}
	switch a.kind {
	case NumberKind:
		switch {
		case a.num < b.num:
			return -1, nil
		case a.num > b.num:
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return compareStrings(a.str, b.str), nil
	}
}
