package assembler

// OriginKey is the reserved symbol-table key holding the program's
// origin address, set during pass one before any label is resolved.
const OriginKey = "ORG"

// SymbolTable maps label text to its resolved address. It is a flat
// map with no forward-reference or relocation bookkeeping: Mano's
// two-pass assembler resolves every label in pass one, before pass
// two emits a single word, so there is nothing left to patch later.
type SymbolTable struct {
	addresses map[string]uint32
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addresses: make(map[string]uint32)}
}

// Set records label -> address, overwriting any existing entry.
func (t *SymbolTable) Set(label string, address uint32) {
	t.addresses[label] = address
}

// Get returns the address bound to label and whether it was found.
func (t *SymbolTable) Get(label string) (uint32, bool) {
	addr, ok := t.addresses[label]
	return addr, ok
}

// Has reports whether label is already bound.
func (t *SymbolTable) Has(label string) bool {
	_, ok := t.addresses[label]
	return ok
}

// Origin returns the value stored under OriginKey, or 0 if pass one
// has not run yet.
func (t *SymbolTable) Origin() uint32 {
	addr, _ := t.Get(OriginKey)
	return addr
}

// Len returns the number of bound symbols, including OriginKey.
func (t *SymbolTable) Len() int {
	return len(t.addresses)
}
