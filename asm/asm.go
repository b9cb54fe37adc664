// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Result is the outcome of a single compile: the macro-expanded source
// (always produced) and the CompileContext carrying the symbol table,
// code/data segments, and every diagnostic recorded along the way.
type Result struct {
	Expanded []string
	Context  *CompileContext
}

// ErrorFlag reports whether any diagnostic was recorded during macro
// expansion, the first pass, the diagnostic pass, or the second pass.
func (r *Result) ErrorFlag() bool {
	return r.Context.ErrorFlag()
}

// Diagnostics returns every diagnostic recorded during the compile, in
// the order each pass discovered them.
func (r *Result) Diagnostics() []Diagnostic {
	return r.Context.Diagnostics
}

// Assemble runs the full pipeline over source: macro expansion, the
// first pass, and the diagnostic pass always run; the second pass runs
// only if nothing before it recorded a diagnostic, since code generation
// against an erroring compile has nothing sound to produce. trace, when
// non-nil and verbose is true, receives a short progress line from each
// pass as it runs.
func Assemble(source []string, trace io.Writer, verbose bool) *Result {
	expanded, macroDiags := ExpandMacros(source)

	ctx := NewCompileContext(expanded)
	ctx.Diagnostics = append(ctx.Diagnostics, macroDiags...)
	ctx.Verbose = verbose
	ctx.Trace = traceWriter{trace}

	steps := []func(ctx *CompileContext){
		FirstPass,
		DiagnosticPass,
	}
	for _, step := range steps {
		step(ctx)
	}

	if !ctx.ErrorFlag() {
		SecondPass(ctx)
	}

	return &Result{Expanded: expanded, Context: ctx}
}

// AssembleFile reads filename, assembles it, and writes the artifacts
// named in section 4.8: the macro-expanded source is written
// unconditionally at the ".am" extension; the object, entries, and
// externals files are written only if the compile recorded no
// diagnostics, with entries/externals further gated on having at least
// one entry symbol or extern reference. trace, when non-nil and verbose
// is true, receives a short progress line per pass.
func AssembleFile(filename string, trace io.Writer, verbose bool) (*Result, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	source, err := readLines(file)
	file.Close()
	if err != nil {
		return nil, err
	}

	result := Assemble(source, trace, verbose)

	ext := filepath.Ext(filename)
	prefix := filename[:len(filename)-len(ext)]

	if err := writeLines(prefix+".am", result.Expanded); err != nil {
		return result, err
	}

	if result.ErrorFlag() {
		return result, nil
	}

	ctx := result.Context
	if err := writeArtifact(prefix+".ob", func(w io.Writer) error { return WriteObject(ctx, w) }); err != nil {
		return result, err
	}
	if HasEntries(ctx) {
		if err := writeArtifact(prefix+".ent", func(w io.Writer) error { return WriteEntries(ctx, w) }); err != nil {
			return result, err
		}
	}
	if len(ctx.Externs) > 0 {
		if err := writeArtifact(prefix+".ext", func(w io.Writer) error { return WriteExternals(ctx, w) }); err != nil {
			return result, err
		}
	}
	return result, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func writeLines(filename string, lines []string) error {
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeArtifact(filename string, write func(io.Writer) error) error {
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()
	return write(file)
}
