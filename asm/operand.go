// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strconv"

// An Operand is one argument to an instruction: its addressing kind,
// its literal text and column span, and (once known) its parsed
// value (immediate, register number, or label name).
type Operand struct {
	Kind     AddrKind
	Field    Field
	Register int
	Value    int
	Label    string
}

// parseOperand classifies a single operand field by its text shape, per
// section 4.1/4.6 of the specification: '@' introduces a register,
// a (possibly signed) decimal literal is immediate, an identifier is a
// direct label, anything else is AddrUnknown.
func parseOperand(f Field) Operand {
	text := f.Text
	if len(text) > 0 && text[0] == '@' {
		// A leading '@' always signals register addressing; whether the
		// specific register name is well-formed is checked separately
		// (section 4.6 step 7), after addressing-kind legality (step 6).
		if n, ok := registerNumber(text[1:]); ok {
			return Operand{Kind: AddrRegister, Field: f, Register: n}
		}
		return Operand{Kind: AddrRegister, Field: f, Register: -1}
	}
	if v, ok := parseInteger(text); ok {
		return Operand{Kind: AddrImmediate, Field: f, Value: v}
	}
	if validLabel(text) {
		return Operand{Kind: AddrDirect, Field: f, Label: text}
	}
	return Operand{Kind: AddrUnknown, Field: f}
}

func parseInteger(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return v, true
}
