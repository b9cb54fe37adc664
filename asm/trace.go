// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"fmt"
	"io"
)

// traceWriter is the destination for progress tracing: writes are
// no-ops unless a writer has been attached and Verbose is set, so a
// silent compile pays no formatting cost.
type traceWriter struct {
	w io.Writer
}

func (c *CompileContext) section(name string) {
	if !c.Verbose || c.Trace.w == nil {
		return
	}
	fmt.Fprintf(c.Trace.w, "--- %s ---\n", name)
}

func (c *CompileContext) tracef(format string, args ...interface{}) {
	if !c.Verbose || c.Trace.w == nil {
		return
	}
	fmt.Fprintf(c.Trace.w, format+"\n", args...)
}
