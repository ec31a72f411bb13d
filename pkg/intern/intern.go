// Package intern deduplicates repeated tag and attribute-name strings into
// small integer symbols.
//
// The differ compares interned tags by integer identity instead of string
// comparison. A Table grows for the life of a rendering session and never
// evicts; it is safe for concurrent use, though the engine normally runs a
// single logical render goroutine per tree.
package intern

import "sync"

// Symbol is a handle for an interned string. The zero Symbol is reserved
// and never returned by Intern.
type Symbol uint32

// None is the zero Symbol, meaning "not interned".
const None Symbol = 0

// Table is a grow-only string interning table.
type Table struct {
	mu      sync.RWMutex
	symbols map[string]Symbol
	strings []string
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{
		symbols: make(map[string]Symbol),
		strings: []string{""}, // index 0 reserved for None
	}
}

// Intern returns the symbol for s, allocating one on first sight.
// The same string always yields the same symbol within a table.
func (t *Table) Intern(s string) Symbol {
	t.mu.RLock()
	sym, ok := t.symbols[s]
	t.mu.RUnlock()
	if ok {
		return sym
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if sym, ok := t.symbols[s]; ok {
		return sym
	}
	sym = Symbol(len(t.strings))
	t.strings = append(t.strings, s)
	t.symbols[s] = sym
	return sym
}

// Resolve returns the string for a symbol. Resolving None or an unknown
// symbol returns "".
func (t *Table) Resolve(sym Symbol) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(sym) >= len(t.strings) {
		return ""
	}
	return t.strings[sym]
}

// Len returns the number of interned strings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strings) - 1
}
