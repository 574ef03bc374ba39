package assembler

// Program is the output of a completed assembly: the source as
// supplied, the resolved symbol table, and the assembled listing
// (four-character uppercase hex for MRI/DEC/HEX, minimal hex for
// RRI/IO, empty string for an address nothing was emitted at).
type Program struct {
	Source  []string
	Symbols *SymbolTable
	Listing []string
}

// WordAt returns the assembled listing entry for address, or "" if
// the listing doesn't extend that far (equivalent to an unemitted,
// zero-valued memory cell).
func (p *Program) WordAt(address int) string {
	if address < 0 || address >= len(p.Listing) {
		return ""
	}
	return p.Listing[address]
}
