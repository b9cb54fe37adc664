// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// AddrKind is both the addressing kind of a single operand and, as an
// OR of its bits, the set of addressing kinds an operand position
// permits. AddrNone used as a kind means "no operand here"; used as a
// permitted set it means "no operand permitted here".
type AddrKind uint8

const (
	AddrNone AddrKind = 0
	// AddrUnknown marks an operand whose addressing kind could not be
	// determined (malformed text). It is never a member of a permitted
	// set, so it always fails the legality check in the diagnostic pass.
	AddrUnknown   AddrKind = 1 << 0
	AddrImmediate AddrKind = 1 << 1
	AddrDirect    AddrKind = 1 << 2
	AddrRegister  AddrKind = 1 << 3
)

// Has reports whether kind k is a member of the set s.
func (s AddrKind) Has(k AddrKind) bool { return s&k != 0 }

// Addressing codes used in the encoded instruction word (spec section 4.7).
const (
	addrCodeImmediate = 1
	addrCodeLabel     = 3
	addrCodeRegister  = 5
)

func (k AddrKind) code() uint16 {
	switch k {
	case AddrImmediate:
		return addrCodeImmediate
	case AddrDirect:
		return addrCodeLabel
	case AddrRegister:
		return addrCodeRegister
	default:
		return 0
	}
}

// An OpDescriptor describes one row of the fixed operation table: its
// opcode, mnemonic, arity, and the addressing kinds permitted in each
// operand position.
type OpDescriptor struct {
	Opcode  int
	Name    string
	Arity   int
	SrcSet  AddrKind
	DstSet  AddrKind
}

const (
	setNone     = AddrNone
	setLbl      = AddrDirect
	setLblReg   = AddrDirect | AddrRegister
	setImmLblRg = AddrImmediate | AddrDirect | AddrRegister
)

// OpTable is the fixed 16-row operation table from section 6 of the
// specification, indexed by opcode.
var OpTable = [16]OpDescriptor{
	{Opcode: 0, Name: "mov", Arity: 2, SrcSet: setImmLblRg, DstSet: setLblReg},
	{Opcode: 1, Name: "cmp", Arity: 2, SrcSet: setImmLblRg, DstSet: setImmLblRg},
	{Opcode: 2, Name: "add", Arity: 2, SrcSet: setImmLblRg, DstSet: setLblReg},
	{Opcode: 3, Name: "sub", Arity: 2, SrcSet: setImmLblRg, DstSet: setLblReg},
	{Opcode: 4, Name: "not", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 5, Name: "clr", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 6, Name: "lea", Arity: 2, SrcSet: setLbl, DstSet: setLblReg},
	{Opcode: 7, Name: "inc", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 8, Name: "dec", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 9, Name: "jmp", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 10, Name: "bne", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 11, Name: "red", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 12, Name: "prn", Arity: 1, SrcSet: setNone, DstSet: setImmLblRg},
	{Opcode: 13, Name: "jsr", Arity: 1, SrcSet: setNone, DstSet: setLblReg},
	{Opcode: 14, Name: "rts", Arity: 0, SrcSet: setNone, DstSet: setNone},
	{Opcode: 15, Name: "stop", Arity: 0, SrcSet: setNone, DstSet: setNone},
}

var opByName map[string]*OpDescriptor

func init() {
	opByName = make(map[string]*OpDescriptor, len(OpTable))
	for i := range OpTable {
		opByName[OpTable[i].Name] = &OpTable[i]
	}
}

// LookupOp returns the operation descriptor for a mnemonic, and whether
// one was found.
func LookupOp(name string) (*OpDescriptor, bool) {
	op, ok := opByName[name]
	return op, ok
}

// Directive keywords recognized by the line classifier.
const (
	dirData   = ".data"
	dirString = ".string"
	dirExtern = ".extern"
	dirEntry  = ".entry"
)

func isDirective(name string) bool {
	switch name {
	case dirData, dirString, dirExtern, dirEntry:
		return true
	default:
		return false
	}
}

// reservedWord reports whether name collides with a keyword that a
// macro definition must not reuse: mcro/endmcro, a directive, a
// mnemonic, or a register name. Labels are not checked against it.
func reservedWord(name string) bool {
	switch name {
	case macroStart, macroEnd, dirData, dirString, dirExtern, dirEntry:
		return true
	}
	if _, ok := opByName[name]; ok {
		return true
	}
	if isRegisterName(name) {
		return true
	}
	return false
}
