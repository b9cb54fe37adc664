// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

// SymbolKind identifies what a Symbol refers to.
type SymbolKind int

const (
	SymCode SymbolKind = iota
	SymData
	SymExtern
	// SymEntry is a promotion of SymCode or SymData applied during the
	// diagnostic pass when the symbol is named in a .entry directive; the
	// symbol's address and original segment are unchanged.
	SymEntry
)

// A Symbol is one entry of the symbol table: a unique name, its
// resolved address, its kind, and the source line where it was first
// declared.
type Symbol struct {
	Name    string
	Address int
	Kind    SymbolKind
	Line    int

	// entryOf remembers whether an entry-promoted symbol was originally
	// code or data, since Kind is overwritten to SymEntry.
	entryOf SymbolKind
}

// SymbolTable is the ordered set of symbols discovered during the first
// pass and mutated during relocation and the second pass. Insertion
// order is preserved for artifact writers that must emit in pass order.
type SymbolTable struct {
	order []string
	byName map[string]*Symbol
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string]*Symbol)}
}

// Lookup returns the symbol named name, if one exists.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	s, ok := t.byName[name]
	return s, ok
}

// Insert adds a new symbol. It panics if name already exists; callers
// must check Lookup first, since a duplicate is a diagnostic, not an
// invariant violation.
func (t *SymbolTable) Insert(s Symbol) *Symbol {
	if _, exists := t.byName[s.Name]; exists {
		panic("asm: duplicate symbol inserted: " + s.Name)
	}
	stored := s
	t.byName[s.Name] = &stored
	t.order = append(t.order, s.Name)
	return &stored
}

// All returns every symbol in insertion order.
func (t *SymbolTable) All() []*Symbol {
	syms := make([]*Symbol, len(t.order))
	for i, name := range t.order {
		syms[i] = t.byName[name]
	}
	return syms
}

// Relocate applies spec invariant 2 to every non-extern symbol: add
// LoadAddress to every symbol, and additionally add finalIC to every
// data-label so the data segment appears to follow the code segment in
// the target address space.
func (t *SymbolTable) Relocate(loadAddress, finalIC int) {
	for _, name := range t.order {
		s := t.byName[name]
		switch s.Kind {
		case SymCode:
			s.Address += loadAddress
		case SymData:
			s.Address += loadAddress + finalIC
		case SymExtern:
			// extern addresses stay 0 until resolved externally.
		}
	}
}

// PromoteEntry marks name as an entry symbol. It returns false if no
// such symbol exists, and reports whether the symbol was extern (which
// the caller must turn into a diagnostic rather than promoting).
func (t *SymbolTable) PromoteEntry(name string) (sym *Symbol, wasExtern, found bool) {
	s, ok := t.byName[name]
	if !ok {
		return nil, false, false
	}
	if s.Kind == SymExtern {
		return s, true, true
	}
	if s.Kind != SymEntry {
		s.entryOf = s.Kind
		s.Kind = SymEntry
	}
	return s, false, true
}
