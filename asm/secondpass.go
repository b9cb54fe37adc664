// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// SecondPass re-walks the macro-expanded source with IC reset to 0,
// emitting the 12-bit code words for every instruction. The caller must
// only invoke this after FirstPass and DiagnosticPass have both run and
// ctx.ErrorFlag() is false (an erroring compile never reaches code
// generation).
func SecondPass(ctx *CompileContext) {
	ctx.section("second pass")
	ctx.IC = 0

	for i, raw := range ctx.Source {
		row := i + 1
		line := ClassifyLine(raw)
		if line.Kind != LineInstruction {
			continue
		}

		op, ok := LookupOp(line.Command.Text)
		if !ok {
			continue // unreachable: the diagnostic pass already failed this line
		}
		ctx.encodeInstruction(row, op, parseOperands(line.Operands))
	}
}

// encodeInstruction appends the 1-3 words for one instruction to
// ctx.Code, advancing ctx.IC by the same width FirstPass already counted
// for this line.
func (c *CompileContext) encodeInstruction(row int, op *OpDescriptor, operands []Operand) {
	var srcKind, dstKind AddrKind
	switch len(operands) {
	case 1:
		dstKind = operands[0].Kind
	case 2:
		srcKind, dstKind = operands[0].Kind, operands[1].Kind
	}

	base := LoadAddress + c.IC
	c.Code = append(c.Code, word1(op.Opcode, srcKind, dstKind))
	c.IC++

	if bothRegisters(operands) {
		c.Code = append(c.Code, packedRegisterWord(operands[0].Register, operands[1].Register))
		c.IC++
		c.tracef("%04d  %-8s IC=%d packed @r%d,@r%d", row, op.Name, base, operands[0].Register, operands[1].Register)
		return
	}

	for i, o := range operands {
		isSource := len(operands) == 2 && i == 0
		word, externName := c.encodeOperandWord(row, o, isSource)
		c.Code = append(c.Code, word)
		if externName != "" {
			c.Externs = append(c.Externs, ExternRef{Name: externName, Address: LoadAddress + c.IC})
		}
		c.IC++
	}
	c.tracef("%04d  %-8s IC=%d", row, op.Name, base)
}

// encodeOperandWord resolves one non-packed operand to its extra word,
// against the symbol table relocated by FirstPass. If the operand names
// an extern symbol, externName carries its name so the caller can record
// the reference for the externals artifact.
//
// A direct-label operand whose name is not in the symbol table is a
// genuinely undefined label (an ordinary source mistake, not a compiler
// defect), and is surfaced as DiagUndefinedLabel with a zero payload and
// absolute ARE rather than aborting the compile.
func (c *CompileContext) encodeOperandWord(row int, o Operand, isSource bool) (word uint16, externName string) {
	switch o.Kind {
	case AddrImmediate:
		return immediateWord(o.Value), ""
	case AddrRegister:
		return registerWord(o.Register, isSource), ""
	case AddrDirect:
		sym, ok := c.Symbols.Lookup(o.Label)
		if !ok {
			c.addDiag(row, DiagUndefinedLabel, "undefined label '%s'", o.Label)
			return areAbsolute, ""
		}
		if sym.Kind == SymExtern {
			return labelWord(0, true), sym.Name
		}
		return labelWord(sym.Address, false), ""
	default:
		// Unreachable: the diagnostic pass rejects any other addressing
		// kind before the second pass ever runs.
		return areAbsolute, ""
	}
}
