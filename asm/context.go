// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// Fixed constants of the target machine (section 6 of the specification).
const (
	LoadAddress      = 100
	MemorySize       = 1024
	MaxCommandLength = 80
	MaxFieldLength   = 80
)

// An ExternRef records one operand word whose value must be resolved by
// another translation unit: the extern symbol's name and the absolute
// address of the word that references it.
type ExternRef struct {
	Name    string
	Address int
}

// CompileContext carries every piece of mutable state touched by a
// single compile. Per the design's redesign note, it replaces the
// source's process-wide globals so a pass is a pure function of (source,
// context) and passes can be re-run or parallelized across files.
type CompileContext struct {
	// Source is the macro-expanded source, one entry per line.
	Source []string

	Symbols *SymbolTable

	// Code and Data are the two 12-bit-word segments; only the low 12
	// bits of each entry are meaningful.
	Code []uint16
	Data []uint16

	// IC and DC are the live counters during whichever pass is running.
	IC, DC int
	// FinalIC and FinalDC are snapshots taken at the end of the first
	// pass, used for relocation and for the object file header.
	FinalIC, FinalDC int

	// Externs accumulates external references in pass order, for the
	// externals artifact.
	Externs []ExternRef

	// Diagnostics accumulates every diagnostic found so far, across the
	// macro expander, the first pass, the diagnostic pass, and the second
	// pass.
	Diagnostics []Diagnostic

	// Verbose and Trace gate progress tracing: when Verbose is true and
	// Trace wraps a non-nil writer, each pass writes a short progress
	// line describing what it assigned or encoded.
	Verbose bool
	Trace   traceWriter
}

// NewCompileContext builds a fresh context for a single compile over an
// already macro-expanded source.
func NewCompileContext(source []string) *CompileContext {
	return &CompileContext{
		Source:  source,
		Symbols: NewSymbolTable(),
	}
}

// ErrorFlag reports whether any diagnostic has been recorded so far.
func (c *CompileContext) ErrorFlag() bool {
	return len(c.Diagnostics) > 0
}

func (c *CompileContext) addDiag(row int, kind DiagKind, format string, args ...interface{}) {
	c.Diagnostics = append(c.Diagnostics, newDiag(row, kind, format, args...))
}

// fits reports whether the final program fits in the 1024-word memory,
// per spec invariant 3.
func (c *CompileContext) fits() bool {
	return c.FinalIC+c.FinalDC <= MemorySize
}
