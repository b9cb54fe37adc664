// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// FirstPass walks the macro-expanded source once, building the symbol
// table, emitting data-segment words, and advancing IC/DC. It finishes
// by snapshotting FinalIC/FinalDC and relocating every symbol per spec
// invariant 2.
func FirstPass(ctx *CompileContext) {
	ctx.section("first pass")
	ctx.IC, ctx.DC = 0, 0

	for i, raw := range ctx.Source {
		row := i + 1
		line := ClassifyLine(raw)

		switch line.Kind {
		case LineEmpty, LineUnknown:
			// LineUnknown (bad mnemonic) is reported by the diagnostic
			// pass; the first pass can't size an instruction it can't
			// recognize, so it contributes no words for this line.

		case LineExtern:
			ctx.firstPassExtern(line, row)

		case LineEntry:
			// Entries are resolved against the completed symbol table
			// in the diagnostic pass.

		case LineData:
			ctx.declareLabel(line, row, SymData)
			ctx.firstPassData(line, row)

		case LineString:
			ctx.declareLabel(line, row, SymData)
			ctx.firstPassString(line, row)

		case LineInstruction:
			ctx.declareLabel(line, row, SymCode)
			op, _ := LookupOp(line.Command.Text)
			width := instrWordWidth(op, parseOperands(line.Operands))
			ctx.tracef("%04d  %-8s IC=%d width=%d", row, line.Command.Text, ctx.IC, width)
			ctx.IC += width
		}
	}

	ctx.FinalIC, ctx.FinalDC = ctx.IC, ctx.DC
	ctx.Symbols.Relocate(LoadAddress, ctx.FinalIC)
}

// declareLabel inserts a code or data symbol for line's leading label,
// if it has one. A conflict with an existing declaration (per invariant
// 1) is reported as a diagnostic and the symbol is not inserted.
func (c *CompileContext) declareLabel(line Line, row int, kind SymbolKind) {
	if !line.HasLabel || !line.LabelOK {
		return
	}
	if existing, exists := c.Symbols.Lookup(line.Label); exists {
		if existing.Kind == SymExtern {
			c.addDiag(row, DiagExternCollision, "label '%s' collides with an extern declaration", line.Label)
		} else {
			c.addDiag(row, DiagDuplicateLabel, "label '%s' already declared at line %d", line.Label, existing.Line)
		}
		return
	}
	addr := c.IC
	if kind == SymData {
		addr = c.DC
	}
	c.Symbols.Insert(Symbol{Name: line.Label, Address: addr, Kind: kind, Line: row})
}

func (c *CompileContext) firstPassExtern(line Line, row int) {
	if len(line.Operands) == 0 {
		return // diagnostic pass reports the missing argument
	}
	name := line.Operands[0].Text
	if !validLabel(name) {
		return
	}
	if existing, exists := c.Symbols.Lookup(name); exists {
		if existing.Kind != SymExtern {
			c.addDiag(row, DiagExternCollision, "extern '%s' collides with an existing declaration", name)
		}
		return
	}
	c.Symbols.Insert(Symbol{Name: name, Address: 0, Kind: SymExtern, Line: row})
}

func (c *CompileContext) firstPassData(line Line, row int) {
	for _, f := range line.Operands {
		v, ok := parseInteger(f.Text)
		if !ok {
			continue // diagnostic pass reports the malformed literal
		}
		c.Data = append(c.Data, uint16(v)&0x0FFF)
		c.DC++
	}
}

func (c *CompileContext) firstPassString(line Line, row int) {
	s, ok := stringLiteral(line.Raw)
	if !ok {
		return // diagnostic pass reports the unterminated string
	}
	for i := 0; i < len(s); i++ {
		c.Data = append(c.Data, uint16(s[i]))
		c.DC++
	}
	c.Data = append(c.Data, 0)
	c.DC++
}

// stringLiteral extracts the text between the first and last '"' on the
// line, per section 4.1: the tokenizer treats this as a single datum,
// located independently of field boundaries.
func stringLiteral(raw string) (string, bool) {
	first := -1
	last := -1
	for i := 0; i < len(raw); i++ {
		if raw[i] == '"' {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 || last <= first {
		return "", false
	}
	return raw[first+1 : last], true
}

func parseOperands(fields []Field) []Operand {
	ops := make([]Operand, len(fields))
	for i, f := range fields {
		ops[i] = parseOperand(f)
	}
	return ops
}
