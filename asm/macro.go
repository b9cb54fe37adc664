// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

const (
	macroStart = "mcro"
	macroEnd   = "endmcro"
)

// maxExpansionRounds bounds the fixed-point re-expansion so a genuinely
// self-referential macro set (A calls B calls A) can't hang the compile;
// it becomes a diagnostic instead.
const maxExpansionRounds = 64

// A Macro records a macro definition discovered in the source: its name
// and the first/last body-line index into the original, un-expanded
// source. The body is never copied; callers re-read it from the
// original source slice on every expansion.
type Macro struct {
	Name      string
	BodyStart int
	BodyEnd   int
}

// ExpandMacros discovers mcro/endmcro blocks in source and inlines their
// bodies at each call site, recursively, until no macro-call line
// remains. It returns the expanded line sequence and any diagnostics
// (nested definitions, unterminated definitions, redefinitions,
// reserved names, or runaway recursion).
func ExpandMacros(source []string) ([]string, []Diagnostic) {
	macros, skip, diags := scanMacroDefinitions(source)

	var body []string
	for i, line := range source {
		if !skip[i] {
			body = append(body, line)
		}
	}

	for round := 0; round < maxExpansionRounds; round++ {
		next, changed := expandOnce(body, macros, source)
		body = next
		if !changed {
			return body, diags
		}
	}
	diags = append(diags, newDiag(ProgramWide, DiagNestedMacro,
		"macro expansion did not terminate after %d rounds (self-referential macros?)", maxExpansionRounds))
	return body, diags
}

// scanMacroDefinitions walks source once, building the macro table and
// the set of line indices that belong to a definition block (and so
// must be excluded from the expanded output).
func scanMacroDefinitions(source []string) (map[string]*Macro, []bool, []Diagnostic) {
	macros := make(map[string]*Macro)
	skip := make([]bool, len(source))
	var diags []Diagnostic

	inOpen := false
	curValid := false
	curName := ""
	curBodyStart := 0

	for i, line := range source {
		row := i + 1
		fields := Tokenize(line)

		if inOpen {
			skip[i] = true
			if len(fields) == 1 && fields[0].Text == macroEnd {
				if curValid {
					macros[curName] = &Macro{Name: curName, BodyStart: curBodyStart, BodyEnd: i - 1}
				}
				inOpen = false
			} else if len(fields) >= 1 && fields[0].Text == macroStart {
				diags = append(diags, newDiag(row, DiagNestedMacro, "macro definitions may not be nested"))
			}
			continue
		}

		if len(fields) == 1 && fields[0].Text == macroEnd {
			diags = append(diags, newDiag(row, DiagUnterminatedMacro, "endmcro without a matching mcro"))
			skip[i] = true
			continue
		}

		if len(fields) >= 1 && fields[0].Text == macroStart {
			skip[i] = true
			inOpen = true
			curBodyStart = i + 1
			curValid = true
			curName = ""
			if len(fields) < 2 {
				diags = append(diags, newDiag(row, DiagUnterminatedMacro, "mcro missing a macro name"))
				curValid = false
				continue
			}
			curName = fields[1].Text
			if reservedWord(curName) {
				diags = append(diags, newDiag(row, DiagReservedMacroName, "macro name '%s' is reserved", curName))
				curValid = false
			} else if _, exists := macros[curName]; exists {
				diags = append(diags, newDiag(row, DiagMacroRedefinition, "macro '%s' is already defined", curName))
				curValid = false
			}
			continue
		}
	}

	if inOpen {
		diags = append(diags, newDiag(ProgramWide, DiagUnterminatedMacro, "macro '%s' was never closed with endmcro", curName))
	}

	return macros, skip, diags
}

// expandOnce performs a single substitution pass: any line whose single
// field names a known macro is replaced by that macro's body, read
// fresh from the original source. It reports whether any substitution
// occurred, so the caller can iterate to a fixed point.
func expandOnce(lines []string, macros map[string]*Macro, source []string) ([]string, bool) {
	var out []string
	changed := false
	for _, line := range lines {
		fields := Tokenize(line)
		if len(fields) == 1 {
			if m, ok := macros[fields[0].Text]; ok {
				changed = true
				for i := m.BodyStart; i <= m.BodyEnd; i++ {
					out = append(out, source[i])
				}
				continue
			}
		}
		out = append(out, line)
	}
	return out, changed
}
