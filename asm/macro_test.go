// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"reflect"
	"testing"
)

func TestExpandMacrosSimple(t *testing.T) {
	source := []string{
		"mcro M",
		"inc @r2",
		"endmcro",
		"M",
		"M",
		"stop",
	}
	got, diags := ExpandMacros(source)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []string{"inc @r2", "inc @r2", "stop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExpandMacrosIdempotentWithoutMacros(t *testing.T) {
	source := []string{"stop", "inc @r2", "X: .data 1, 2"}
	got, diags := ExpandMacros(source)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !reflect.DeepEqual(got, source) {
		t.Errorf("got %v, want identical to input %v", got, source)
	}
}

func TestExpandMacrosNested(t *testing.T) {
	source := []string{
		"mcro Inner",
		"inc @r1",
		"endmcro",
		"mcro Outer",
		"Inner",
		"dec @r1",
		"endmcro",
		"Outer",
		"stop",
	}
	got, diags := ExpandMacros(source)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []string{"inc @r1", "dec @r1", "stop"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestExpandMacrosUnterminated(t *testing.T) {
	source := []string{"mcro M", "inc @r1"}
	_, diags := ExpandMacros(source)
	if len(diags) != 1 || diags[0].Kind != DiagUnterminatedMacro {
		t.Fatalf("diags = %+v, want one DiagUnterminatedMacro", diags)
	}
}

func TestExpandMacrosNestedDefinition(t *testing.T) {
	source := []string{"mcro M", "mcro N", "endmcro", "endmcro"}
	_, diags := ExpandMacros(source)
	found := false
	for _, d := range diags {
		if d.Kind == DiagNestedMacro {
			found = true
		}
	}
	if !found {
		t.Fatalf("diags = %+v, want a DiagNestedMacro entry", diags)
	}
}

func TestExpandMacrosRedefinition(t *testing.T) {
	source := []string{
		"mcro M", "stop", "endmcro",
		"mcro M", "stop", "endmcro",
	}
	_, diags := ExpandMacros(source)
	found := false
	for _, d := range diags {
		if d.Kind == DiagMacroRedefinition {
			found = true
		}
	}
	if !found {
		t.Fatalf("diags = %+v, want a DiagMacroRedefinition entry", diags)
	}
}

func TestExpandMacrosReservedName(t *testing.T) {
	source := []string{"mcro stop", "inc @r1", "endmcro"}
	_, diags := ExpandMacros(source)
	if len(diags) != 1 || diags[0].Kind != DiagReservedMacroName {
		t.Fatalf("diags = %+v, want one DiagReservedMacroName", diags)
	}
}

func TestExpandMacrosRunaway(t *testing.T) {
	// Each macro calls the other: never reaches a fixed point.
	source := []string{
		"mcro A", "B", "endmcro",
		"mcro B", "A", "endmcro",
		"A",
	}
	_, diags := ExpandMacros(source)
	if len(diags) == 0 || diags[len(diags)-1].Kind != DiagNestedMacro {
		t.Fatalf("diags = %+v, want a terminal DiagNestedMacro from the round cap", diags)
	}
}
