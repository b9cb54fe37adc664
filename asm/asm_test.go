// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"strings"
	"testing"
)

func assemble(lines ...string) *Result {
	return Assemble(lines, nil, false)
}

func checkNoErrors(t *testing.T, r *Result) {
	t.Helper()
	if r.ErrorFlag() {
		for _, d := range r.Diagnostics() {
			t.Logf("%s", d.String())
		}
		t.Fatalf("unexpected diagnostics (%d)", len(r.Diagnostics()))
	}
}

func checkCode(t *testing.T, r *Result, want ...uint16) {
	t.Helper()
	got := r.Context.Code
	if len(got) != len(want) {
		t.Fatalf("code length = %d, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = 0x%03X, want 0x%03X", i, got[i], want[i])
		}
	}
}

func TestAssembleLoneStop(t *testing.T) {
	r := assemble("STOP: stop")
	checkNoErrors(t, r)

	if r.Context.FinalIC != 1 || r.Context.FinalDC != 0 {
		t.Fatalf("final_IC/DC = %d/%d, want 1/0", r.Context.FinalIC, r.Context.FinalDC)
	}
	checkCode(t, r, 0x1E0)
	if g := encodeGlyphs(0x1E0); g != "Hg" {
		t.Errorf("glyphs = %q, want %q", g, "Hg")
	}

	sym, ok := r.Context.Symbols.Lookup("STOP")
	if !ok || sym.Address != LoadAddress {
		t.Errorf("STOP = %+v, want address %d", sym, LoadAddress)
	}
}

func TestAssembleTwoRegisterMove(t *testing.T) {
	r := assemble("mov @r3, @r5")
	checkNoErrors(t, r)
	checkCode(t, r, 0xA14, 0x194)
}

func TestAssembleDataThenLabelReference(t *testing.T) {
	r := assemble(
		"X: .data 7, -3",
		"mov X, @r1",
		"stop",
	)
	checkNoErrors(t, r)

	if r.Context.FinalDC != 2 {
		t.Fatalf("final_DC = %d, want 2", r.Context.FinalDC)
	}
	if r.Context.FinalIC != 4 {
		t.Fatalf("final_IC = %d, want 4", r.Context.FinalIC)
	}

	sym, ok := r.Context.Symbols.Lookup("X")
	if !ok || sym.Address != LoadAddress+r.Context.FinalIC {
		t.Fatalf("X.address = %+v, want %d", sym, LoadAddress+r.Context.FinalIC)
	}

	checkCode(t, r, 0x614, 0x1A2, 0x004, 0x1E0)
}

func TestAssembleExternReference(t *testing.T) {
	r := assemble(".extern K", "jmp K")
	checkNoErrors(t, r)

	if len(r.Context.Externs) != 1 {
		t.Fatalf("externs = %v, want exactly one", r.Context.Externs)
	}
	ref := r.Context.Externs[0]
	if ref.Name != "K" || ref.Address != 101 {
		t.Errorf("extern ref = %+v, want {K 101}", ref)
	}
	if r.Context.Code[1] != 0x001 {
		t.Errorf("operand word = 0x%03X, want 0x001 (payload 0, ARE external)", r.Context.Code[1])
	}
}

func TestAssembleEntryPromotion(t *testing.T) {
	r := assemble(".entry L", "L: stop")
	checkNoErrors(t, r)

	if !HasEntries(r.Context) {
		t.Fatal("expected at least one entry symbol")
	}
	sym, ok := r.Context.Symbols.Lookup("L")
	if !ok || sym.Kind != SymEntry || sym.Address != LoadAddress {
		t.Errorf("L = %+v, want entry at %d", sym, LoadAddress)
	}
}

func TestAssembleMissingComma(t *testing.T) {
	r := assemble("add @r1 @r2")
	if !r.ErrorFlag() {
		t.Fatal("expected ERROR_FLAG to be set")
	}
	diags := r.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != DiagMissingComma || diags[0].Row != 1 {
		t.Fatalf("diagnostics = %+v, want exactly one MissingComma at row 1", diags)
	}
	if len(r.Context.Code) != 0 {
		t.Error("expected no code to be emitted after a diagnostic failure")
	}
}

func TestAssembleUndefinedLabelIsDiagnosticNotAbort(t *testing.T) {
	r := assemble("mov MISSING, @r1", "stop")
	if !r.ErrorFlag() {
		t.Fatal("expected ERROR_FLAG to be set")
	}
	found := false
	for _, d := range r.Diagnostics() {
		if d.Kind == DiagUndefinedLabel {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics = %+v, want a DiagUndefinedLabel entry", r.Diagnostics())
	}
}

func TestAssembleMemoryOverflow(t *testing.T) {
	lines := make([]string, 0, 1100)
	for i := 0; i < 1100; i++ {
		lines = append(lines, "stop")
	}
	r := Assemble(lines, nil, false)
	if !r.ErrorFlag() {
		t.Fatal("expected ERROR_FLAG from memory overflow")
	}
	last := r.Diagnostics()[len(r.Diagnostics())-1]
	if last.Kind != DiagMemoryOverflow || last.Row != ProgramWide {
		t.Errorf("last diagnostic = %+v, want program-wide DiagMemoryOverflow", last)
	}
}

func TestAssembleVerboseTrace(t *testing.T) {
	var buf strings.Builder
	r := Assemble([]string{"stop"}, &buf, true)
	checkNoErrors(t, r)
	if buf.Len() == 0 {
		t.Fatal("verbose Assemble produced no trace output")
	}
	if !strings.Contains(buf.String(), "first pass") {
		t.Errorf("trace output = %q, want a \"first pass\" section header", buf.String())
	}
}
