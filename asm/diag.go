// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "fmt"

// DiagKind names the category of a single diagnostic. The numeric value
// carries no meaning beyond identity; callers should switch on it rather
// than format it directly.
type DiagKind int

// Diagnostic kinds, grouped the way section 7 of the design groups them:
// lexical, syntactic, semantic, resolution, and capacity failures.
const (
	DiagInvalidLabel DiagKind = iota
	DiagUnterminatedString
	DiagUnrecognizedDirective

	DiagMissingComma
	DiagIllegalComma
	DiagMultipleCommas
	DiagExtraneousText
	DiagMissingArgument
	DiagTooManyArguments

	DiagUnknownMnemonic
	DiagIllegalAddressing
	DiagUndefinedRegister
	DiagExternEntryLabel
	DiagEntryNotDefined
	DiagExternAndEntry
	DiagInvalidInteger
	DiagImmediateOutOfRange
	DiagUndefinedLabel

	DiagDuplicateLabel
	DiagExternCollision

	DiagMemoryOverflow

	DiagUnterminatedMacro
	DiagNestedMacro
	DiagMacroRedefinition
	DiagReservedMacroName
)

// ProgramWide is the row number used for diagnostics that apply to the
// whole compile rather than a single source line.
const ProgramWide = -1

// A Diagnostic is a single error found during macro expansion, the
// diagnostic pass, the first pass, or the second pass. Row is the 1-based
// source line number, or ProgramWide for whole-program failures.
type Diagnostic struct {
	Row     int
	Kind    DiagKind
	Message string
}

// String renders the diagnostic in the format specified for textual
// output: "Row: <n>\t|  Error: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("Row: %d\t|  Error: %s", d.Row, d.Message)
}

func newDiag(row int, kind DiagKind, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Row: row, Kind: kind, Message: fmt.Sprintf(format, args...)}
}
