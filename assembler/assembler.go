// Package assembler translates Mano Basic Computer symbolic source
// into a machine-code listing, following the two-pass scheme: pass
// one resolves every label to an address, pass two emits code. Both
// passes share parseLine's lexing and report through a *diag.Channel
// so a caller sees every diagnostic, not just the first.
package assembler

import (
	"strconv"
	"strings"

	"github.com/husmus00/mano-go/diag"
)

// Assemble runs both passes over source and returns the resulting
// Program. Pass-one failures (a bad ORG, a duplicate or reserved
// label) are fatal and stop translation early, matching the original
// assembler's "a symbol table that can't be trusted can't drive
// emission" behavior; check d.HasErrors() before using the result.
func Assemble(source []string, d *diag.Channel) *Program {
	prog := &Program{Source: source, Symbols: NewSymbolTable()}

	if len(source) == 0 {
		d.Error("No source program loaded")
	}

	if !passOne(prog, d) {
		return prog
	}
	if d.HasErrors() {
		return prog
	}

	passTwo(prog, d)

	errs := d.ErrorCount()
	switch {
	case errs == 0:
		d.Info("Assembly completed successfully")
	case errs == 1:
		d.Info("Encountered 1 error")
	default:
		d.Infof("Encountered %d errors", errs)
	}
	return prog
}

// passOne builds the symbol table. It returns false on a fatal error
// (malformed ORG, duplicate label, reserved word as label), at which
// point prog.Symbols is not to be trusted.
func passOne(prog *Program, d *diag.Channel) bool {
	origin := uint32(0)

	if len(prog.Source) > 0 {
		parsed := parseLine(prog.Source[0])
		if parsed.instruction == "ORG" {
			if !parsed.hasOperand {
				d.Error("Missing address for ORG instruction")
				return false
			}
			v, err := strconv.ParseUint(parsed.operand, 16, 32)
			if err != nil {
				d.Error("Invalid address for ORG instruction")
				return false
			}
			origin = uint32(v)
			d.Debugf("ORG is at address %d", origin)
		} else {
			d.Debug("No ORG found on first line, setting to 0")
		}
	}
	prog.Symbols.Set(OriginKey, origin)

	for i, line := range prog.Source {
		parsed := parseLine(line)
		if parsed.isEmpty() {
			continue
		}

		if parsed.instruction == "END" {
			d.Debugf("Found END of symbolic program at program line %d", i+1)
			break
		}

		if parsed.label == "" {
			continue
		}

		label := parsed.label
		switch {
		case PseudoInstructions[label]:
			d.Errorf("Cannot use invalid label %q", label)
			return false
		case prog.Symbols.Has(label):
			d.Errorf("Label %q is already used", label)
			return false
		default:
			if i == 0 && origin == 0 {
				// origin + (line_index - 1) underflows only when both
				// are zero; a label here has no valid address.
				d.Errorf("label %q defined before ORG is established", label)
				return false
			}
			address := uint32(i) + origin - 1
			prog.Symbols.Set(label, address)
			d.Debugf("Found label %q at program line %d, address %d", label, i+1, address)
		}
	}

	return true
}

// passTwo emits the assembled listing using the symbol table pass
// one built. The emit cursor starts at origin and advances by one
// per emitted line (ORG excluded, END terminating); the listing grows
// with empty strings so indexing by cursor is always defined.
func passTwo(prog *Program, d *diag.Channel) {
	origin := prog.Symbols.Origin()
	cursor := int(origin)
	d.Debugf("Set binary start location to %d", cursor)

	for i, line := range prog.Source {
		parsed := parseLine(line)
		if parsed.isEmpty() {
			continue
		}

		mriOpcode, isMRI := mriTable[parsed.instruction]
		rriOpcode, isRRI := rriTable[parsed.instruction]
		ioOpcode, isIO := ioTable[parsed.instruction]

		switch {
		case parsed.instruction == "ORG":
			continue
		case parsed.instruction == "END":
			return
		case PseudoInstructions[parsed.instruction]:
			emitDecOrHex(prog, parsed, i, cursor, d)
		case isMRI:
			emitMRI(prog, parsed, mriOpcode, i, cursor, d)
		case isRRI:
			emitFixed(prog, parsed.instruction, rriOpcode, i, cursor, d)
		case isIO:
			emitFixed(prog, parsed.instruction, ioOpcode, i, cursor, d)
		default:
			d.Errorf("Unknown instruction %q", parsed.instruction)
		}

		cursor++
	}
}

func growListing(prog *Program, cursor int) {
	for len(prog.Listing) <= cursor {
		prog.Listing = append(prog.Listing, "")
	}
}

func emitDecOrHex(prog *Program, parsed parsedLine, line, cursor int, d *diag.Channel) {
	if !parsed.hasOperand {
		d.Error("Missing operand")
		return
	}

	var word string
	switch parsed.instruction {
	case "DEC":
		v, err := strconv.ParseInt(parsed.operand, 10, 16)
		if err != nil {
			d.Errorf("Invalid operand %q for instruction %q", parsed.operand, parsed.instruction)
			return
		}
		word = hex4(uint16(v))
	case "HEX":
		v, err := strconv.ParseUint(parsed.operand, 16, 16)
		if err != nil {
			d.Errorf("Invalid operand %q for instruction %q", parsed.operand, parsed.instruction)
			return
		}
		word = hex4(uint16(v))
	default:
		d.Errorf("Invalid pseudoinstruction %q", parsed.instruction)
		return
	}

	growListing(prog, cursor)
	prog.Listing[cursor] = word
	d.Debugf("Instruction %q at program line %d and converted to %q at binary program location %d",
		parsed.instruction, line, word, cursor)
}

func emitMRI(prog *Program, parsed parsedLine, opcode uint16, line, cursor int, d *diag.Channel) {
	if !parsed.hasOperand {
		d.Error("Missing operand for memory reference instruction")
		return
	}

	address, ok := prog.Symbols.Get(parsed.operand)
	if !ok {
		d.Errorf("Unknown label %q", parsed.operand)
	}

	word := opcode + uint16(address&0x0FFF)
	if parsed.indirect {
		word += 0x8000
	}

	encoded := hex4(word)
	growListing(prog, cursor)
	prog.Listing[cursor] = encoded
	d.Debugf("Instruction %q at program line %d and converted to %q at binary program location %d",
		parsed.instruction, line, encoded, cursor)
}

func emitFixed(prog *Program, instruction string, opcode uint16, line, cursor int, d *diag.Channel) {
	encoded := minimalHex(opcode)
	growListing(prog, cursor)
	prog.Listing[cursor] = encoded
	d.Debugf("Instruction %q at program line %d and converted to %q at binary program location %d",
		instruction, line, encoded, cursor)
}

// hex4 renders v as four-character uppercase hex, the MRI/DEC/HEX
// emission format.
func hex4(v uint16) string {
	s := strings.ToUpper(strconv.FormatUint(uint64(v), 16))
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

// minimalHex renders v as hex with no leading zeros (RRI/IO opcodes
// are re-parsed as hex downstream and zero-filled there).
func minimalHex(v uint16) string {
	return strings.ToUpper(strconv.FormatUint(uint64(v), 16))
}
