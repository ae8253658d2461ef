// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "fmt"

// An ErrorKind identifies the category of a syntax or evaluation error
// raised while parsing or evaluating an expression.
type ErrorKind byte

const (
	InvalidCharacter ErrorKind = iota
	MissingQuote
	SymbolNotDefined
	EmptyExpression
	MismatchedParentheses
	ParameterCount
	ExpressionTooComplex
	TypeMismatch
	MissingValue
	DivisionByZero
	NumberTooBig
	IllegalOperation
	OutOfIntegerRange
	TimeResultTooBig
)

var errorKindText = [...]string{
	InvalidCharacter:      "invalid character",
	MissingQuote:          "missing closing quote",
	SymbolNotDefined:      "symbol not defined",
	EmptyExpression:       "empty expression",
	MismatchedParentheses: "mismatched parentheses",
	ParameterCount:        "wrong number of parameters",
	ExpressionTooComplex:  "expression too complex",
	TypeMismatch:          "type mismatch",
	MissingValue:          "missing value",
	DivisionByZero:        "division by zero",
	NumberTooBig:          "number too big",
	IllegalOperation:      "illegal operation",
	OutOfIntegerRange:     "out of integer range",
	TimeResultTooBig:      "time result too big",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindText) {
		return errorKindText[k]
	}
	return "unknown error"
}

// A Position identifies a location within a single line of expression text.
type Position struct {
	Line   int
	Column int
}

// An Error is raised for every positional syntax or evaluation failure
// the engine can produce. Errors are always attributable to a single
// (line, column) position within the expression text that was parsed.
type Error struct {
	Kind ErrorKind
	Pos  Position
	Name string // optional: symbol or function name, when relevant
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%d:%d: %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Name)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Kind)
}

// Is reports whether target is an *Error with the same Kind, so callers
// may write errors.Is(err, &expr.Error{Kind: expr.DivisionByZero}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind ErrorKind, pos Position) *Error {
	return &Error{Kind: kind, Pos: pos}
}

func newNamedError(kind ErrorKind, pos Position, name string) *Error {
	return &Error{Kind: kind, Pos: pos, Name: name}
}
