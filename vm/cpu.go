package vm

import (
	"github.com/husmus00/mano-go/diag"
)

// CPU is the Mano machine's control unit: a register file plus the
// 4096-word memory it operates on, advanced one micro-operation
// (RT-state) per Tick call. The dispatch below follows Figure 5-15 of
// the Mano textbook: at every tick, exactly one row fires, selected by
// (SC, R, opcode D, indirect bit I).
type CPU struct {
	Reg    *RegisterFile
	Memory *Memory
}

// NewCPU returns a CPU with a fresh register file and zeroed memory.
func NewCPU() *CPU {
	return &CPU{
		Reg:    NewRegisterFile(),
		Memory: NewMemory(),
	}
}

// Reset loads an assembled listing into memory and reinitializes the
// registers the way the control unit expects at power-on: every
// register cleared, then PC at zero, S (start/stop) set, IR set to 1
// and SC at zero. The first tick is a fetch, which overwrites IR.
func (c *CPU) Reset(listing []string, d *diag.Channel) {
	c.Memory.Reset()
	LoadProgram(c.Memory, listing, d)
	c.Reg.Reset()
	c.Reg.PC.Set(0)
	c.Reg.S.Set(1)
	c.Reg.IR.Set(1)
	c.Reg.SC.Set(0)
}

// opcode returns IR bits 12-14, the memory-reference opcode (0-6) or 7
// for the RRI/IO encoding.
func (c *CPU) opcode() uint16 {
	return (c.Reg.IR.Get() >> 12) & 0x7
}

// indirectBit returns IR bit 15.
func (c *CPU) indirectBit() uint16 {
	return (c.Reg.IR.Get() >> 15) & 0x1
}

// instructionBit returns the lowest set bit among IR bits 0-11, which
// selects the RRI or I/O operation when opcode()==7. Returns 0 (HLT's
// slot) if no such bit is set.
func (c *CPU) instructionBit() int {
	ir := c.Reg.IR.Get()
	for i := 0; i < 12; i++ {
		if ir&(1<<uint(i)) != 0 {
			return i
		}
	}
	return 0
}

func (c *CPU) readMemory() uint16 {
	return c.Memory.Read(c.Reg.AR.Get())
}

func (c *CPU) writeMemory(value uint16) {
	c.Memory.Write(c.Reg.AR.Get(), value)
}

// Tick performs exactly one micro-step, determined by the current
// (SC, R, opcode, I) tuple, and returns after an O(1) number of
// register/memory mutations. A halted machine (S=0) rejects the call.
func (c *CPU) Tick(d *diag.Channel) {
	if c.Reg.S.Get() == 0 {
		d.Error("Machine halted, please reset")
		return
	}

	sc := c.Reg.SC.Get()
	interrupt := c.Reg.R.Get()
	op := c.opcode()
	i := c.indirectBit()

	switch {
	case sc < 3 && interrupt == 1:
		c.interruptCycle(sc, d)
	case sc < 2 && interrupt == 0:
		c.fetch(sc, d)
	case sc == 2 && interrupt == 0:
		c.decode(d)
	case sc == 3 && op != 7:
		c.fetchOperand(i, d)
	case sc > 3 && op != 7:
		c.executeMRI(op, sc, d)
	case sc == 3 && op == 7:
		bit := c.instructionBit()
		if i == 1 {
			c.executeIO(bit, d)
		} else {
			c.executeRRI(bit, d)
		}
	default:
		d.Errorf("no micro-step defined for SC=%d R=%d D=%d I=%d", sc, interrupt, op, i)
	}
}

// interruptCycle implements the three RT-states of the interrupt
// service sequence.
func (c *CPU) interruptCycle(sc uint16, d *diag.Channel) {
	switch sc {
	case 0:
		d.Debug("INTERRUPT RT0 : AR <- 0, TR <- PC")
		c.Reg.AR.Clear()
		c.Reg.TR.Set(c.Reg.PC.Get())
		c.Reg.SC.Increment()
	case 1:
		d.Debug("INTERRUPT RT1 : M[AR] <- TR, PC <- 0")
		c.writeMemory(c.Reg.TR.Get())
		c.Reg.PC.Clear()
		c.Reg.SC.Increment()
	case 2:
		d.Debug("INTERRUPT RT2 : PC <- PC + 1, IEN <- 0, R <- 0, SC <- 0")
		c.Reg.PC.Increment()
		c.Reg.IEN.Clear()
		c.Reg.R.Clear()
		c.Reg.SC.Clear()
	}
}

func (c *CPU) fetch(sc uint16, d *diag.Channel) {
	switch sc {
	case 0:
		d.Debug("FETCH R'T0 : AR <- PC")
		c.Reg.AR.Set(c.Reg.PC.Get())
		c.Reg.SC.Increment()
	case 1:
		d.Debug("FETCH R'T1 : IR <- M[AR], PC <- PC + 1")
		c.Reg.IR.Set(c.readMemory())
		c.Reg.PC.Increment()
		c.Reg.SC.Increment()
	}
}

func (c *CPU) decode(d *diag.Channel) {
	d.Debug("DECODE R'T2 : AR <- IR(0-11)")
	c.Reg.AR.Set(c.Reg.IR.Get() & AddressMask)
	c.Reg.SC.Increment()
}

func (c *CPU) fetchOperand(i uint16, d *diag.Channel) {
	if i == 1 {
		d.Debug("INDIRECT D7'IT3 : AR <- M[AR]")
		c.Reg.AR.Set(c.readMemory())
	} else {
		d.Debug("D7'I'T3 : NOOP")
	}
	c.Reg.SC.Increment()
}
