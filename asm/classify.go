// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strings"

// NumRegisters is the number of general-purpose registers.
const NumRegisters = 8

// registerNumber returns the register number named by name (without the
// leading '@'), and whether name is a well-formed register name "r0".."r7".
func registerNumber(name string) (int, bool) {
	if len(name) != 2 || name[0] != 'r' {
		return 0, false
	}
	if name[1] < '0' || name[1] > '7' {
		return 0, false
	}
	return int(name[1] - '0'), true
}

// isRegisterName reports whether text (including the leading '@') names
// a valid register, "@r0".."@r7".
func isRegisterName(text string) bool {
	if len(text) != 3 || text[0] != '@' {
		return false
	}
	_, ok := registerNumber(text[1:])
	return ok
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

// validLabel reports whether name satisfies the label character rules:
// first character alphabetic, remaining characters alphanumeric, overall
// length within MaxFieldLength.
func validLabel(name string) bool {
	if name == "" || len(name) > MaxFieldLength {
		return false
	}
	if !isAlpha(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isAlphaNum(name[i]) {
			return false
		}
	}
	return true
}

// LineKind classifies a non-empty source line.
type LineKind int

const (
	// LineEmpty marks a line with no alphabetic characters.
	LineEmpty LineKind = iota
	LineData
	LineString
	LineExtern
	LineEntry
	LineInstruction
	// LineUnknown marks a line whose leading command field is neither a
	// directive nor a known mnemonic.
	LineUnknown
)

// A Line is the result of classifying one raw source line: its fields,
// its optional label, and its kind.
type Line struct {
	Raw      string
	Fields   []Field
	Label    string // without the trailing ':'; empty if absent
	LabelOK  bool   // label characters were valid (only meaningful if Label != "")
	HasLabel bool
	Kind     LineKind
	// Command is the field naming the directive or mnemonic (after the
	// label, if any).
	Command Field
	// Operands are the fields following Command.
	Operands []Field
}

// ClassifyLine tokenizes raw and determines whether it carries a label,
// and whether it is empty, a directive, or an instruction.
func ClassifyLine(raw string) Line {
	l := Line{Raw: raw, Fields: Tokenize(raw)}

	if !hasAlpha(raw) {
		l.Kind = LineEmpty
		return l
	}

	fields := l.Fields
	if len(fields) == 0 {
		l.Kind = LineEmpty
		return l
	}

	rest := fields
	if strings.HasSuffix(fields[0].Text, ":") && len(fields[0].Text) > 1 {
		name := fields[0].Text[:len(fields[0].Text)-1]
		l.HasLabel = true
		l.Label = name
		l.LabelOK = validLabel(name)
		rest = fields[1:]
	}

	if len(rest) == 0 {
		l.Kind = LineEmpty
		return l
	}

	l.Command = rest[0]
	l.Operands = rest[1:]

	switch l.Command.Text {
	case dirData:
		l.Kind = LineData
	case dirString:
		l.Kind = LineString
	case dirExtern:
		l.Kind = LineExtern
	case dirEntry:
		l.Kind = LineEntry
	default:
		if _, ok := LookupOp(l.Command.Text); ok {
			l.Kind = LineInstruction
		} else {
			l.Kind = LineUnknown
		}
	}
	return l
}

func hasAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if isAlpha(s[i]) {
			return true
		}
	}
	return false
}
