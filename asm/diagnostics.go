// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "strings"

// DiagnosticPass checks every non-empty line of the expanded source in
// the fixed priority order of section 4.6, stopping at the first
// failure per line. After the per-line walk it runs the program-wide
// memory-footprint check.
func DiagnosticPass(ctx *CompileContext) {
	ctx.section("diagnostic pass")
	for i, raw := range ctx.Source {
		row := i + 1
		line := ClassifyLine(raw)
		if line.Kind == LineEmpty {
			continue
		}
		checkLine(ctx, line, row)
	}

	if !ctx.ErrorFlag() && !ctx.fits() {
		ctx.addDiag(ProgramWide, DiagMemoryOverflow,
			"program requires %d words, exceeding the %d-word memory", ctx.FinalIC+ctx.FinalDC, MemorySize)
	}
}

// checkLine runs the priority-ordered checks for one line, returning
// after the first failure so only one diagnostic is reported per line.
func checkLine(ctx *CompileContext, line Line, row int) {
	// 1. Label characters valid.
	if line.HasLabel && !line.LabelOK {
		ctx.addDiag(row, DiagInvalidLabel, "invalid label '%s'", line.Label)
		return
	}

	switch line.Kind {
	case LineUnknown:
		ctx.addDiag(row, DiagUnknownMnemonic, "unknown instruction or directive '%s'", line.Command.Text)
		return
	case LineData:
		checkData(ctx, line, row)
		return
	case LineString:
		checkString(ctx, line, row)
		return
	case LineExtern, LineEntry:
		checkExternEntry(ctx, line, row)
		return
	case LineInstruction:
		checkInstruction(ctx, line, row)
		return
	}
}

func checkData(ctx *CompileContext, line Line, row int) {
	if fails := checkCommaDiscipline(ctx, line, row); fails {
		return
	}
	for _, f := range line.Operands {
		if _, ok := parseInteger(f.Text); !ok {
			ctx.addDiag(row, DiagInvalidInteger, "'%s' is not a valid integer", f.Text)
			return
		}
		if v, _ := parseInteger(f.Text); v < -512 || v > 511 {
			ctx.addDiag(row, DiagImmediateOutOfRange, "value %d does not fit in a 10-bit field", v)
			return
		}
	}
	if len(line.Operands) == 0 {
		ctx.addDiag(row, DiagMissingArgument, ".data requires at least one value")
	}
}

func checkString(ctx *CompileContext, line Line, row int) {
	if _, ok := stringLiteral(line.Raw); !ok {
		ctx.addDiag(row, DiagUnterminatedString, "unterminated string literal")
	}
}

func checkExternEntry(ctx *CompileContext, line Line, row int) {
	if len(line.Operands) == 0 {
		ctx.addDiag(row, DiagExternEntryLabel, "%s requires a label argument", line.Command.Text)
		return
	}
	if len(line.Operands) > 1 {
		ctx.addDiag(row, DiagTooManyArguments, "%s takes exactly one argument", line.Command.Text)
		return
	}
	name := line.Operands[0].Text
	if !validLabel(name) {
		ctx.addDiag(row, DiagExternEntryLabel, "'%s' is not a valid label name", name)
		return
	}
	if line.Kind == LineEntry {
		_, wasExtern, found := ctx.Symbols.PromoteEntry(name)
		if wasExtern {
			ctx.addDiag(row, DiagExternAndEntry, "'%s' cannot be both extern and entry", name)
		} else if !found {
			ctx.addDiag(row, DiagEntryNotDefined, "entry '%s' is never defined", name)
		}
	}
}

// checkCommaDiscipline verifies there is no comma between a label and
// the mnemonic/directive, none between the mnemonic and the first
// operand, and exactly one comma between any two successive operands.
// It returns true if a comma diagnostic was recorded.
func checkCommaDiscipline(ctx *CompileContext, line Line, row int) bool {
	if line.HasLabel {
		gap := betweenFields(line.Raw, line.Fields[0], line.Command)
		if strings.Contains(gap, ",") {
			ctx.addDiag(row, DiagIllegalComma, "unexpected comma between label and command")
			return true
		}
	}
	if len(line.Operands) > 0 {
		gap := betweenFields(line.Raw, line.Command, line.Operands[0])
		if strings.Contains(gap, ",") {
			ctx.addDiag(row, DiagIllegalComma, "unexpected comma before the first operand")
			return true
		}
	}
	for i := 1; i < len(line.Operands); i++ {
		gap := betweenFields(line.Raw, line.Operands[i-1], line.Operands[i])
		commas := strings.Count(gap, ",")
		switch {
		case commas == 0:
			ctx.addDiag(row, DiagMissingComma, "missing comma between operands")
			return true
		case commas > 1:
			ctx.addDiag(row, DiagMultipleCommas, "too many consecutive commas between operands")
			return true
		}
	}
	return false
}

func checkInstruction(ctx *CompileContext, line Line, row int) {
	op, ok := LookupOp(line.Command.Text)
	if !ok {
		ctx.addDiag(row, DiagUnknownMnemonic, "unknown instruction '%s'", line.Command.Text)
		return
	}

	if checkCommaDiscipline(ctx, line, row) {
		return
	}

	last := line.Command
	if len(line.Operands) > 0 {
		last = line.Operands[len(line.Operands)-1]
	}
	if trailing := strings.TrimSpace(afterField(line.Raw, last)); trailing != "" {
		ctx.addDiag(row, DiagExtraneousText, "extraneous text after the last operand: '%s'", trailing)
		return
	}

	if len(line.Operands) > op.Arity {
		ctx.addDiag(row, DiagTooManyArguments, "'%s' takes %d operand(s), got %d", op.Name, op.Arity, len(line.Operands))
		return
	}
	if len(line.Operands) < op.Arity {
		ctx.addDiag(row, DiagMissingArgument, "'%s' takes %d operand(s), got %d", op.Name, op.Arity, len(line.Operands))
		return
	}

	operands := parseOperands(line.Operands)

	for i, o := range operands {
		// 6. Addressing kind must be legal for this operand position.
		allowed := op.SrcSet
		if op.Arity == 1 || i == 1 {
			allowed = op.DstSet
		}
		if !allowed.Has(o.Kind) {
			ctx.addDiag(row, DiagIllegalAddressing, "operand '%s' is not a legal addressing mode for '%s'", o.Field.Text, op.Name)
			return
		}
		// 7. A register-kind operand's specific register name must be
		// well-formed (r0-r7); this is checked only once register
		// addressing has passed step 6 for this position.
		if o.Kind == AddrRegister && o.Register < 0 {
			ctx.addDiag(row, DiagUndefinedRegister, "'%s' is not a valid register", o.Field.Text)
			return
		}
		if o.Kind == AddrImmediate && (o.Value < -512 || o.Value > 511) {
			ctx.addDiag(row, DiagImmediateOutOfRange, "value %d does not fit in a 10-bit field", o.Value)
			return
		}
	}
}
