// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"bufio"
	"fmt"
	"io"
)

// WriteObject writes the object artifact to w: a first line of
// "final_IC final_DC", then one glyph pair per word, code words first
// and then data words.
func WriteObject(ctx *CompileContext, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", ctx.FinalIC, ctx.FinalDC); err != nil {
		return err
	}
	for _, word := range ctx.Code {
		if _, err := fmt.Fprintln(bw, encodeGlyphs(word)); err != nil {
			return err
		}
	}
	for _, word := range ctx.Data {
		if _, err := fmt.Fprintln(bw, encodeGlyphs(word)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteEntries writes the entries artifact to w: one "name address" line
// per entry-typed symbol, in symbol-table order. The caller should only
// create the destination file when HasEntries(ctx) is true.
func WriteEntries(ctx *CompileContext, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sym := range ctx.Symbols.All() {
		if sym.Kind != SymEntry {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s %d\n", sym.Name, sym.Address); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteExternals writes the externals artifact to w: one
// "name absolute-word-address" line per extern reference, in the order
// SecondPass encountered them. The caller should only create the
// destination file when len(ctx.Externs) > 0.
func WriteExternals(ctx *CompileContext, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, ref := range ctx.Externs {
		if _, err := fmt.Fprintf(bw, "%s %d\n", ref.Name, ref.Address); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// HasEntries reports whether the compile produced at least one entry
// symbol, per section 4.8: the entries file is only created when this is
// true.
func HasEntries(ctx *CompileContext) bool {
	for _, sym := range ctx.Symbols.All() {
		if sym.Kind == SymEntry {
			return true
		}
	}
	return false
}
