package vm

import (
	"strconv"

	"github.com/husmus00/mano-go/diag"
)

// LoadProgram writes an assembled listing (one 4-character uppercase
// hex string per address, empty strings meaning "leave zero") into
// memory starting at address 0. Entries beyond MemorySize are reported
// as diagnostics only, never written.
func LoadProgram(mem *Memory, listing []string, d *diag.Channel) {
	for addr, word := range listing {
		if word == "" {
			continue
		}
		if addr >= MemorySize {
			d.Errorf("listing entry at address %d is out of range (memory has %d words)", addr, MemorySize)
			continue
		}
		value, err := strconv.ParseUint(word, 16, 16)
		if err != nil {
			d.Errorf("invalid machine code %q at address %d: %v", word, addr, err)
			continue
		}
		mem.Write(uint16(addr), uint16(value))
		d.Debugf("loaded %s into memory[%d]", word, addr)
	}
}
