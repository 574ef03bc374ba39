package machine

import "testing"

func TestPrimeThenRunBasicAddition(t *testing.T) {
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

	m := New()
	d := m.Prime(source)
	if d.HasErrors() {
		t.Fatalf("Prime failed: %+v", d.Entries)
	}
	if !m.IsPrimed() {
		t.Fatal("IsPrimed() = false after a clean Prime")
	}

	steps, _ := m.Run(DefaultMaxSteps)
	if steps == 0 {
		t.Fatal("Run performed zero ticks")
	}
	if !m.IsHalted() {
		t.Fatal("expected machine to be halted after HLT")
	}

	state := m.GetState()
	if state.Accumulator != 60 {
		t.Errorf("AC = %d, want 60", state.Accumulator)
	}
	if m.GetMemoryAtAddress(6) != 60 {
		t.Errorf("memory[6] = %d, want 60", m.GetMemoryAtAddress(6))
	}
	if state.ProgramCounter != 4 {
		t.Errorf("PC = %d, want 4", state.ProgramCounter)
	}
	if !state.IsHalted || state.IsRunning {
		t.Errorf("state = %+v, want halted and not running", state)
	}
}

func TestPrimeWithAssemblerErrorLeavesMachineUnprimed(t *testing.T) {
	source := []string{"ORG 0", "BADOP A", "HLT", "A, DEC 1", "END"}
	m := New()
	d := m.Prime(source)

	if !d.HasErrors() {
		t.Fatal("expected a prime failure")
	}
	if m.IsPrimed() {
		t.Fatal("IsPrimed() = true after a failed assemble")
	}
}

func TestRunStopsAtBreakpointBeforeExecutingIt(t *testing.T) {
	// ORG 0 / LDA A / STA B / HLT / A, DEC 5 / B, DEC 0 / END
	source := []string{
		"ORG 0", "LDA A", "STA B", "HLT", "A, DEC 5", "B, DEC 0", "END",
	}
	m := New()
	if d := m.Prime(source); d.HasErrors() {
		t.Fatalf("Prime failed: %+v", d.Entries)
	}

	m.AddBreakpoint(1) // STA B, the second instruction
	steps, _ := m.Run(DefaultMaxSteps)
	if steps == 0 {
		t.Fatal("Run should have performed the first instruction's ticks")
	}
	if m.IsHalted() {
		t.Fatal("Run should have stopped at the breakpoint, not halted")
	}
	if got := m.GetState().ProgramCounter; got != 1 {
		t.Errorf("PC at breakpoint = %d, want 1", got)
	}
	// AC was loaded from A (LDA already completed) but B was never
	// written, since STA never got to execute.
	if got := m.GetState().Accumulator; got != 5 {
		t.Errorf("AC = %d, want 5 (LDA completed before the breakpoint)", got)
	}
	if got := m.GetMemoryAtAddress(4); got != 0 {
		t.Errorf("memory[4] (B) = %d, want 0 (STA never executed)", got)
	}
}

func TestResetClearsPrimedState(t *testing.T) {
	m := New()
	m.Prime([]string{"ORG 0", "HLT", "END"})
	m.Run(DefaultMaxSteps)

	m.Reset()
	if m.IsPrimed() {
		t.Fatal("IsPrimed() = true after Reset")
	}
	if m.GetAssembledProgram() != nil {
		t.Fatal("GetAssembledProgram() should be nil after Reset")
	}
	state := m.GetState()
	if state.ProgramCounter != 0 || state.Accumulator != 0 {
		t.Errorf("state after Reset = %+v, want all-zero", state)
	}
}

func TestResetTwiceEquivalentToOnce(t *testing.T) {
	m := New()
	m.Prime([]string{"ORG 0", "HLT", "END"})
	m.Reset()
	first := m.GetState()
	m.Reset()
	second := m.GetState()
	if first.ProgramCounter != second.ProgramCounter ||
		first.Accumulator != second.Accumulator ||
		first.IsHalted != second.IsHalted ||
		first.IsRunning != second.IsRunning {
		t.Errorf("double reset diverged: %+v vs %+v", first, second)
	}
}
