// Package machine provides the facade that owns a CPU's memory and
// register file together with the assembler's symbol table and
// source/binary listings, coordinating the prime -> tick* lifecycle a
// front-end (CLI or TUI) drives.
package machine

import (
	"github.com/husmus00/mano-go/assembler"
	"github.com/husmus00/mano-go/diag"
	"github.com/husmus00/mano-go/vm"
)

// DefaultMaxSteps is the conventional step cap front-ends impose on
// Run; the core itself enforces none.
const DefaultMaxSteps = 10000

// Machine is the top-level facade: it owns a *vm.CPU (which in turn
// owns the register file and memory) plus the assembled program and
// symbol table produced by the last Prime, whether or not it
// succeeded. There is no
// other path to CPU state: front-ends go through Machine.
type Machine struct {
	cpu         *vm.CPU
	program     *assembler.Program
	primed      bool
	breakpoints *BreakpointSet
}

// New returns a Machine with zeroed CPU state, not primed.
func New() *Machine {
	return &Machine{
		cpu:         vm.NewCPU(),
		breakpoints: NewBreakpointSet(),
	}
}

// Prime assembles source, loads the resulting listing into memory,
// and resets the register file (PC<-0, S<-1, IR<-1, SC<-0). It is an
// atomic composition of assemble -> load -> register-reset: on
// assembler errors the machine is left halted and not primed, with
// the errors reported in the returned channel.
func (m *Machine) Prime(source []string) *diag.Channel {
	d := diag.New()

	prog := assembler.Assemble(source, d)
	m.program = prog
	if d.HasErrors() {
		m.cpu.Reg.S.Clear()
		m.primed = false
		return d
	}

	m.cpu.Reset(prog.Listing, d)
	m.primed = true
	return d
}

// Tick performs exactly one micro-step. A halted machine (S=0) rejects
// the call per vm.CPU.Tick; this includes a machine that has never been
// primed, since its registers, S among them, start at zero.
func (m *Machine) Tick() *diag.Channel {
	d := diag.New()
	m.cpu.Tick(d)
	return d
}

// Run ticks until the machine halts, PC lands on a breakpoint address
// immediately before the fetch that would execute it, or maxSteps is
// exhausted. It returns the number of ticks performed and the
// combined diagnostics from every tick.
func (m *Machine) Run(maxSteps int) (int, *diag.Channel) {
	d := diag.New()
	steps := 0
	for steps < maxSteps {
		if m.cpu.Reg.S.Get() == 0 {
			break
		}
		if m.atFetchBoundary() && m.breakpoints.Has(m.cpu.Reg.PC.Get()) {
			break
		}
		m.cpu.Tick(d)
		steps++
	}
	return steps, d
}

// atFetchBoundary reports whether the next tick will begin a fresh
// instruction fetch at PC (SC=0, not mid-interrupt), the only point a
// breakpoint on PC can meaningfully interrupt Run.
func (m *Machine) atFetchBoundary() bool {
	return m.cpu.Reg.SC.Get() == 0 && m.cpu.Reg.R.Get() == 0
}

// AddBreakpoint marks addr so Run stops before executing it.
func (m *Machine) AddBreakpoint(addr uint16) {
	m.breakpoints.Add(addr)
}

// RemoveBreakpoint clears any breakpoint at addr.
func (m *Machine) RemoveBreakpoint(addr uint16) {
	m.breakpoints.Remove(addr)
}

// GetState returns a snapshot suitable for display.
func (m *Machine) GetState() State {
	reg := m.cpu.Reg
	return State{
		ProgramCounter:      reg.PC.Get(),
		Accumulator:         reg.AC.Get(),
		InstructionRegister: reg.IR.Get(),
		AddressRegister:     reg.AR.Get(),
		DataRegister:        reg.DR.Get(),
		ExtendRegister:      reg.E.Get(),
		SequenceCounter:     reg.SC.Get(),
		IsHalted:            reg.S.Get() == 0,
		IsRunning:           m.primed && reg.S.Get() != 0,
		MemorySnapshot:      m.cpu.Memory.Snapshot(32),
	}
}

// IsHalted reports whether S=0.
func (m *Machine) IsHalted() bool {
	return m.cpu.Reg.S.Get() == 0
}

// IsPrimed reports whether Prime has successfully loaded a program.
func (m *Machine) IsPrimed() bool {
	return m.primed
}

// GetMemoryAtAddress returns memory[address], 0 if out of range.
func (m *Machine) GetMemoryAtAddress(address uint16) uint16 {
	if address >= vm.MemorySize {
		return 0
	}
	return m.cpu.Memory.Read(address)
}

// GetAssembledProgram returns the listing from the last Prime, or nil
// if the machine has never been primed.
func (m *Machine) GetAssembledProgram() []string {
	if m.program == nil {
		return nil
	}
	return m.program.Listing
}

// Symbols returns the symbol table from the last Prime, or nil.
func (m *Machine) Symbols() *assembler.SymbolTable {
	if m.program == nil {
		return nil
	}
	return m.program.Symbols
}

// Reset tears the machine down to its as-constructed state: a fresh
// CPU, no program, not primed, breakpoints untouched (a breakpoint
// set by address is a debugging-session concern that outlives any one
// program load).
func (m *Machine) Reset() *diag.Channel {
	d := diag.New()
	m.cpu = vm.NewCPU()
	m.program = nil
	m.primed = false
	d.Info("Machine reset")
	return d
}
