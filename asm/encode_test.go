// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

func TestEncodeGlyphsRoundTrip(t *testing.T) {
	for _, word := range []uint16{0, 1, 0x0FFF, 0x1E0, 0xA14, 0x194, 0x505} {
		glyphs := encodeGlyphs(word)
		if len(glyphs) != 2 {
			t.Fatalf("encodeGlyphs(0x%03X) = %q, want exactly 2 glyphs", word, glyphs)
		}
		decoded := decodeGlyphsForTest(t, glyphs)
		if decoded != word&0x0FFF {
			t.Errorf("round-trip of 0x%03X got 0x%03X", word, decoded)
		}
	}
}

func decodeGlyphsForTest(t *testing.T, glyphs string) uint16 {
	t.Helper()
	hi := indexInAlphabet(t, glyphs[0])
	lo := indexInAlphabet(t, glyphs[1])
	return uint16(hi)<<6 | uint16(lo)
}

func indexInAlphabet(t *testing.T, c byte) int {
	t.Helper()
	for i := 0; i < len(glyphAlphabet); i++ {
		if glyphAlphabet[i] == c {
			return i
		}
	}
	t.Fatalf("glyph %q not in alphabet", c)
	return -1
}

func TestInstrWordWidth(t *testing.T) {
	stop, _ := LookupOp("stop")
	not, _ := LookupOp("not")
	mov, _ := LookupOp("mov")

	cases := []struct {
		op       *OpDescriptor
		operands []Operand
		want     int
	}{
		{stop, nil, 1},
		{not, []Operand{{Kind: AddrRegister, Register: 2}}, 2},
		{mov, []Operand{{Kind: AddrRegister, Register: 1}, {Kind: AddrRegister, Register: 2}}, 2},
		{mov, []Operand{{Kind: AddrImmediate, Value: 5}, {Kind: AddrRegister, Register: 2}}, 3},
		{mov, []Operand{{Kind: AddrDirect, Label: "X"}, {Kind: AddrRegister, Register: 2}}, 3},
	}
	for _, c := range cases {
		if got := instrWordWidth(c.op, c.operands); got != c.want {
			t.Errorf("instrWordWidth(%s, %v) = %d, want %d", c.op.Name, c.operands, got, c.want)
		}
	}
}

func TestPackedRegisterWordBitLayout(t *testing.T) {
	w := packedRegisterWord(3, 5)
	if w != 0x194 {
		t.Fatalf("packedRegisterWord(3, 5) = 0x%03X, want 0x194", w)
	}
	dstReg := (w >> 2) & 0x1F
	srcReg := (w >> 7) & 0x1F
	if dstReg != 5 || srcReg != 3 {
		t.Errorf("dstReg=%d srcReg=%d, want 5/3", dstReg, srcReg)
	}
}

func TestImmediateWordRange(t *testing.T) {
	w := immediateWord(5)
	if w&0x3 != areAbsolute {
		t.Errorf("ARE bits = %d, want absolute", w&0x3)
	}
	if (w>>2)&0x3FF != 5 {
		t.Errorf("payload = %d, want 5", (w>>2)&0x3FF)
	}
}
