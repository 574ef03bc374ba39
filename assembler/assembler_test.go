package assembler

import (
	"strings"
	"testing"

	"github.com/husmus00/mano-go/diag"
)

// TestAssembleBasicAddition is spec.md's end-to-end scenario 1.
func TestAssembleBasicAddition(t *testing.T) {
	source := []string{
		"ORG 0",
		"LDA A",
		"ADD B",
		"STA C",
		"HLT",
		"A, DEC 83",
		"B, DEC -23",
		"C, DEC 0",
		"END",
	}
	d := diag.New()
	prog := Assemble(source, d)

	if d.HasErrors() {
		t.Fatalf("unexpected errors: %+v", d.Entries)
	}

	want := []string{"2004", "1005", "3006", "7001", "0053", "FFE9", "0000"}
	if len(prog.Listing) != len(want) {
		t.Fatalf("listing length = %d, want %d (%v)", len(prog.Listing), len(want), prog.Listing)
	}
	for addr, w := range want {
		if prog.Listing[addr] != w {
			t.Errorf("listing[%d] = %q, want %q", addr, prog.Listing[addr], w)
		}
	}
}

// TestAssembleIndirectAddressing assembles spec.md's scenario 2. PTR
// resolves to address 2 (see DESIGN.md's Open Question #5 for why the
// scenario's own prose names a different encoding that its other
// claims contradict).
func TestAssembleIndirectAddressing(t *testing.T) {
	source := []string{
		"ORG 0",
		"LDA PTR i",
		"HLT",
		"PTR, HEX 0003",
		"VAL, HEX 00AB",
		"END",
	}
	d := diag.New()
	prog := Assemble(source, d)

	if d.HasErrors() {
		t.Fatalf("unexpected errors: %+v", d.Entries)
	}

	want := []string{"A002", "7001", "0003", "00AB"}
	for addr, w := range want {
		if prog.Listing[addr] != w {
			t.Errorf("listing[%d] = %q, want %q", addr, prog.Listing[addr], w)
		}
	}

	ptrAddr, ok := prog.Symbols.Get("PTR")
	if !ok || ptrAddr != 2 {
		t.Errorf("PTR = (%d, %v), want (2, true)", ptrAddr, ok)
	}
}

// TestAssembleUnknownInstruction is spec.md's end-to-end scenario 4.
func TestAssembleUnknownInstruction(t *testing.T) {
	source := []string{
		"ORG 0",
		"LDA A",
		"BADOP B",
		"HLT",
		"A, DEC 5",
		"B, DEC 10",
		"END",
	}
	d := diag.New()
	Assemble(source, d)

	if !d.HasErrors() {
		t.Fatal("expected errors, got none")
	}
	found := false
	for _, e := range d.Entries {
		if strings.Contains(e.Text, "Unknown instruction") && strings.Contains(e.Text, "BADOP") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an \"Unknown instruction ... BADOP\" diagnostic, got %+v", d.Entries)
	}
}

// TestAssembleDuplicateLabel is spec.md's end-to-end scenario 5.
func TestAssembleDuplicateLabel(t *testing.T) {
	source := []string{
		"ORG 0",
		"A, DEC 1",
		"A, DEC 2",
		"END",
	}
	d := diag.New()
	prog := Assemble(source, d)

	if !d.HasErrors() {
		t.Fatal("expected an error for the duplicate label")
	}
	found := false
	for _, e := range d.Entries {
		if strings.Contains(e.Text, `Label "A" is already used`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a duplicate-label diagnostic, got %+v", d.Entries)
	}
	if len(prog.Listing) != 0 {
		t.Errorf("pass one should have stopped before pass two emitted anything, got %v", prog.Listing)
	}
}

func TestAssembleDecBoundaries(t *testing.T) {
	source := []string{"ORG 0", "DEC -23", "DEC 83", "HEX 7001", "END"}
	d := diag.New()
	prog := Assemble(source, d)

	if d.HasErrors() {
		t.Fatalf("unexpected errors: %+v", d.Entries)
	}
	want := []string{"FFE9", "0053", "7001"}
	for addr, w := range want {
		if prog.Listing[addr] != w {
			t.Errorf("listing[%d] = %q, want %q", addr, prog.Listing[addr], w)
		}
	}
}

func TestAssembleDecOutOfRangeIsError(t *testing.T) {
	source := []string{"ORG 0", "DEC 99999", "END"}
	d := diag.New()
	Assemble(source, d)

	if !d.HasErrors() {
		t.Fatal("DEC operand outside [-32768, 32767] should be rejected")
	}
}

func TestAssembleEmptySourceIsError(t *testing.T) {
	d := diag.New()
	Assemble(nil, d)
	if !d.HasErrors() {
		t.Fatal("empty source should be reported as an error")
	}
}

func TestAssembleReservedWordAsLabelIsError(t *testing.T) {
	source := []string{"ORG 0", "HEX, DEC 1", "END"}
	d := diag.New()
	Assemble(source, d)
	if !d.HasErrors() {
		t.Fatal("a pseudo-instruction keyword used as a label should be rejected")
	}
}

func TestAssembleDefaultsOriginToZeroWithoutORG(t *testing.T) {
	source := []string{"LDA A", "HLT", "A, DEC 5", "END"}
	d := diag.New()
	prog := Assemble(source, d)

	if d.HasErrors() {
		t.Fatalf("unexpected errors: %+v", d.Entries)
	}
	if origin := prog.Symbols.Origin(); origin != 0 {
		t.Errorf("origin = %d, want 0", origin)
	}
}
