// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import "testing"

func firstDiagKind(t *testing.T, lines ...string) DiagKind {
	t.Helper()
	r := assemble(lines...)
	diags := r.Diagnostics()
	if len(diags) == 0 {
		t.Fatalf("%v: expected at least one diagnostic, got none", lines)
	}
	return diags[0].Kind
}

func TestDiagnosticPriorityOrder(t *testing.T) {
	cases := []struct {
		name string
		line string
		want DiagKind
	}{
		{"invalid label", "1X: stop", DiagInvalidLabel},
		{"unknown mnemonic", "frobnicate @r1", DiagUnknownMnemonic},
		{"illegal comma before command", "L:, stop", DiagIllegalComma},
		{"missing comma between operands", "add @r1 @r2", DiagMissingComma},
		{"multiple commas", "add @r1,, @r2", DiagMultipleCommas},
		{"extraneous trailing text", "stop ,,", DiagExtraneousText},
		{"too many arguments", "stop @r1", DiagTooManyArguments},
		{"missing argument", "mov @r1", DiagMissingArgument},
		{"illegal addressing", "lea 5, @r1", DiagIllegalAddressing},
		{"undefined register", "inc @r9", DiagUndefinedRegister},
		{"extern missing label", ".extern", DiagExternEntryLabel},
		{"invalid integer in data", ".data abc", DiagInvalidInteger},
		{"immediate out of range", ".data 9999", DiagImmediateOutOfRange},
		{"unterminated string", `.string "abc`, DiagUnterminatedString},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := firstDiagKind(t, c.line); got != c.want {
				t.Errorf("%q: first diagnostic = %v, want %v", c.line, got, c.want)
			}
		})
	}
}

func TestDiagnosticExternAndEntryConflict(t *testing.T) {
	r := assemble(".extern K", ".entry K", "jmp K")
	found := false
	for _, d := range r.Diagnostics() {
		if d.Kind == DiagExternAndEntry {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %+v, want a DiagExternAndEntry entry", r.Diagnostics())
	}
}

func TestDiagnosticEntryNotDefined(t *testing.T) {
	r := assemble(".entry GHOST", "stop")
	found := false
	for _, d := range r.Diagnostics() {
		if d.Kind == DiagEntryNotDefined {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %+v, want a DiagEntryNotDefined entry", r.Diagnostics())
	}
}

func TestDiagnosticDuplicateLabel(t *testing.T) {
	r := assemble("L: stop", "L: stop")
	found := false
	for _, d := range r.Diagnostics() {
		if d.Kind == DiagDuplicateLabel {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %+v, want a DiagDuplicateLabel entry", r.Diagnostics())
	}
}

func TestDiagnosticExternCollision(t *testing.T) {
	r := assemble(".extern L", "L: stop")
	found := false
	for _, d := range r.Diagnostics() {
		if d.Kind == DiagExternCollision {
			found = true
		}
	}
	if !found {
		t.Fatalf("diagnostics = %+v, want a DiagExternCollision entry", r.Diagnostics())
	}
}
