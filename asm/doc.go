// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asm implements a two-pass assembler for a small fixed
// instruction-set assembly language: a macro pre-processor, a symbol
// resolver, a diagnostic pass, and a code emitter that together turn a
// ".as" source file into a macro-expanded ".am" file, a base-64 object
// image, and entry/external symbol listings.
package asm
