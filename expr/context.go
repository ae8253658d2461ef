// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math/rand"
	"time"
)

// A Context supplies every external collaborator the engine needs but
// does not own: the symbol table, the program counter, the assembler's
// pass number, the deterministic assembly clock, and the shared PRNG.
// The engine never mutates any of these; it only reads them, in program
// order, exactly as spec.md's concurrency model requires. Implementations
// are expected to be explicit values handed to NewParser rather than
// ambient globals.
type Context interface {
	// SymbolValue looks up name in the symbol table. The second return
	// value is false if the symbol is undefined.
	SymbolValue(name string) (Value, bool)
	// PC returns the assembler's current program counter.
	PC() int64
	// IsFirstPass reports whether the assembler is on its first pass,
	// during which undefined forward references are tolerated by the
	// caller (see Parser.Evaluate's SkipExpression behavior).
	IsFirstPass() bool
	// AssemblyTime returns the deterministic timestamp baked at the
	// start of assembly, used by TIME$.
	AssemblyTime() time.Time
	// Rand returns the next pseudo-random value in [0, RandMax()].
	Rand() uint32
	// RandMax returns the inclusive upper bound of values Rand can
	// produce.
	RandMax() uint32
}

// RandMax is the inclusive upper bound produced by DefaultContext.Rand,
// matching the POSIX RAND_MAX (2^31-1) that BeebAsm's reference platform
// built against.
const RandMax = 1<<31 - 1

// A SymbolTable holds the constants and labels an expression may
// reference. It is the default implementation of the lookup half of
// Context; a full assembler would instead back Context with its own
// label/constant maps (as the teacher's assembler struct does with its
// constants and labels fields).
type SymbolTable struct {
	symbols map[string]Value
}

// NewSymbolTable returns an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]Value)}
}

// Set assigns the value of a symbol, overwriting any previous value.
func (t *SymbolTable) Set(name string, v Value) {
	t.symbols[name] = v
}

// Get looks up a symbol's value.
func (t *SymbolTable) Get(name string) (Value, bool) {
	v, ok := t.symbols[name]
	return v, ok
}

// Delete removes a symbol, if present.
func (t *SymbolTable) Delete(name string) {
	delete(t.symbols, name)
}

// Names returns every defined symbol name, in no particular order.
func (t *SymbolTable) Names() []string {
	names := make([]string, 0, len(t.symbols))
	for name := range t.symbols {
		names = append(names, name)
	}
	return names
}

// A DefaultContext is a self-contained Context backed by a SymbolTable,
// an explicit program counter, an explicit pass flag, a fixed assembly
// time, and a seeded PRNG. It never reads from package-level globals or
// the unseeded global rand source, so two DefaultContexts constructed
// with the same seed and inputs evaluate identically.
type DefaultContext struct {
	Symbols   *SymbolTable
	pc        int64
	firstPass bool
	asmTime   time.Time
	rng       *rand.Rand
}

// NewContext returns a DefaultContext with an empty symbol table, PC 0,
// first-pass true, the given assembly time, and a PRNG seeded explicitly
// with seed (never the global, unseeded rand source).
func NewContext(asmTime time.Time, seed int64) *DefaultContext {
	return &DefaultContext{
		Symbols:   NewSymbolTable(),
		firstPass: true,
		asmTime:   asmTime,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SetPC sets the program counter returned by PC.
func (c *DefaultContext) SetPC(pc int64) {
	c.pc = pc
}

// SetFirstPass sets the pass flag returned by IsFirstPass.
func (c *DefaultContext) SetFirstPass(firstPass bool) {
	c.firstPass = firstPass
}

// SetAssemblyTime sets the clock value returned by AssemblyTime.
func (c *DefaultContext) SetAssemblyTime(t time.Time) {
	c.asmTime = t
}

// Reseed replaces the PRNG with a freshly seeded one, still never
// touching the global, unseeded rand source.
func (c *DefaultContext) Reseed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

func (c *DefaultContext) SymbolValue(name string) (Value, bool) {
	return c.Symbols.Get(name)
}

func (c *DefaultContext) PC() int64 {
	return c.pc
}

func (c *DefaultContext) IsFirstPass() bool {
	return c.firstPass
}

func (c *DefaultContext) AssemblyTime() time.Time {
	return c.asmTime
}

func (c *DefaultContext) Rand() uint32 {
	return uint32(c.rng.Int31())
}

func (c *DefaultContext) RandMax() uint32 {
	return RandMax
}
