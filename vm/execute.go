package vm

import "github.com/husmus00/mano-go/diag"

// Memory-reference opcodes (IR bits 12-14).
const (
	OpAND = 0
	OpADD = 1
	OpLDA = 2
	OpSTA = 3
	OpBUN = 4
	OpBSA = 5
	OpISZ = 6
)

// executeMRI dispatches a memory-reference instruction's execute
// phase by opcode. Each case implements the microcode table in
// spec.md §4.3 (Figure 5-11 of the Mano textbook).
func (c *CPU) executeMRI(op uint16, sc uint16, d *diag.Channel) {
	switch op {
	case OpAND:
		c.and(sc, d)
	case OpADD:
		c.add(sc, d)
	case OpLDA:
		c.lda(sc, d)
	case OpSTA:
		c.sta(d)
	case OpBUN:
		c.bun(d)
	case OpBSA:
		c.bsa(sc, d)
	case OpISZ:
		c.isz(sc, d)
	default:
		d.Errorf("unknown MRI opcode: %d", op)
		c.Reg.SC.Clear()
	}
}

func (c *CPU) and(sc uint16, d *diag.Channel) {
	switch sc {
	case 4:
		d.Debug("AND D0T4 : DR <- M[AR]")
		c.Reg.DR.Set(c.readMemory())
		c.Reg.SC.Increment()
	case 5:
		d.Debug("AND D0T5 : AC <- AC & DR, SC <- 0")
		c.Reg.AC.LogicAnd(c.Reg.DR.Get())
		c.Reg.SC.Clear()
	}
}

func (c *CPU) add(sc uint16, d *diag.Channel) {
	switch sc {
	case 4:
		d.Debug("ADD D1T4 : DR <- M[AR]")
		c.Reg.DR.Set(c.readMemory())
		c.Reg.SC.Increment()
	case 5:
		d.Debug("ADD D1T5 : AC <- AC + DR, E <- Cout, SC <- 0")
		carry := c.Reg.AC.Add(c.Reg.DR.Get())
		c.Reg.E.Set(carry)
		c.Reg.SC.Clear()
	}
}

func (c *CPU) lda(sc uint16, d *diag.Channel) {
	switch sc {
	case 4:
		d.Debug("LDA D2T4 : DR <- M[AR]")
		c.Reg.DR.Set(c.readMemory())
		c.Reg.SC.Increment()
	case 5:
		d.Debug("LDA D2T5 : AC <- DR, SC <- 0")
		c.Reg.AC.Set(c.Reg.DR.Get())
		c.Reg.SC.Clear()
	}
}

func (c *CPU) sta(d *diag.Channel) {
	d.Debug("STA D3T4 : M[AR] <- AC, SC <- 0")
	c.writeMemory(c.Reg.AC.Get())
	c.Reg.SC.Clear()
}

func (c *CPU) bun(d *diag.Channel) {
	d.Debug("BUN D4T4 : PC <- AR, SC <- 0")
	c.Reg.PC.Set(c.Reg.AR.Get())
	c.Reg.SC.Clear()
}

func (c *CPU) bsa(sc uint16, d *diag.Channel) {
	switch sc {
	case 4:
		d.Debug("BSA D5T4 : M[AR] <- PC, AR <- AR + 1")
		c.writeMemory(c.Reg.PC.Get())
		c.Reg.AR.Increment()
		c.Reg.SC.Increment()
	case 5:
		d.Debug("BSA D5T5 : PC <- AR, SC <- 0")
		c.Reg.PC.Set(c.Reg.AR.Get())
		c.Reg.SC.Clear()
	}
}

func (c *CPU) isz(sc uint16, d *diag.Channel) {
	switch sc {
	case 4:
		d.Debug("ISZ D6T4 : DR <- M[AR]")
		c.Reg.DR.Set(c.readMemory())
		c.Reg.SC.Increment()
	case 5:
		d.Debug("ISZ D6T5 : DR <- DR + 1")
		c.Reg.DR.Increment()
		c.Reg.SC.Increment()
	case 6:
		d.Debug("ISZ D6T6 : M[AR] <- DR, if (DR = 0) then (PC <- PC + 1), SC <- 0")
		c.writeMemory(c.Reg.DR.Get())
		if c.Reg.DR.Get() == 0 {
			c.Reg.PC.Increment()
		}
		c.Reg.SC.Clear()
	}
}

// Register-reference instruction bit positions (IR bits 0-11, lowest
// set bit selects the operation).
const (
	BitHLT = 0
	BitSZE = 1
	BitSZA = 2
	BitSNA = 3
	BitSPA = 4
	BitINC = 5
	BitCIL = 6
	BitCIR = 7
	BitCME = 8
	BitCMA = 9
	BitCLE = 10
	BitCLA = 11
)

// executeRRI dispatches a register-reference instruction (D=7, I=0) by
// its selected bit, then clears SC to end the instruction cycle.
func (c *CPU) executeRRI(bit int, d *diag.Channel) {
	switch bit {
	case BitCLA:
		d.Debug("CLA D7I'T3rB11 : AC <- 0, SC <- 0")
		c.Reg.AC.Clear()
	case BitCLE:
		d.Debug("CLE D7I'T3rB10 : E <- 0, SC <- 0")
		c.Reg.E.Clear()
	case BitCMA:
		d.Debug("CMA D7I'T3rB9 : AC <- AC', SC <- 0")
		c.Reg.AC.Complement()
	case BitCME:
		d.Debug("CME D7I'T3rB8 : E <- E', SC <- 0")
		c.Reg.E.Complement()
	case BitCIR:
		d.Debug("CIR D7I'T3rB7 : AC <- shr AC, AC(15) <- E, E <- AC(0), SC <- 0")
		newE := c.Reg.AC.ShiftRight(c.Reg.E.Get())
		c.Reg.E.Set(newE)
	case BitCIL:
		d.Debug("CIL D7I'T3rB6 : AC <- shl AC, AC(0) <- E, E <- AC(15), SC <- 0")
		newE := c.Reg.AC.ShiftLeft(c.Reg.E.Get())
		c.Reg.E.Set(newE)
	case BitINC:
		d.Debug("INC D7I'T3rB5 : AC <- AC + 1, SC <- 0")
		c.Reg.AC.Increment()
	case BitSPA:
		d.Debug("SPA D7I'T3rB4 : if (AC(15) = 0) then (PC <- PC + 1), SC <- 0")
		if c.Reg.AC.Get()&0x8000 == 0 {
			c.Reg.PC.Increment()
		}
	case BitSNA:
		d.Debug("SNA D7I'T3rB3 : if (AC(15) = 1) then (PC <- PC + 1), SC <- 0")
		if c.Reg.AC.Get()&0x8000 != 0 {
			c.Reg.PC.Increment()
		}
	case BitSZA:
		d.Debug("SZA D7I'T3rB2 : if (AC = 0) then (PC <- PC + 1), SC <- 0")
		if c.Reg.AC.Get() == 0 {
			c.Reg.PC.Increment()
		}
	case BitSZE:
		d.Debug("SZE D7I'T3rB1 : if (E = 0) then (PC <- PC + 1), SC <- 0")
		if c.Reg.E.Get() == 0 {
			c.Reg.PC.Increment()
		}
	case BitHLT:
		d.Debug("HLT D7I'T3rB0 : S <- 0, SC <- 0")
		d.Error("Halting")
		c.Reg.S.Set(0)
	default:
		d.Errorf("unknown RRI instruction bit: %d", bit)
	}

	c.Reg.SC.Clear()
}

// I/O instruction bit positions (IR bits 6-11; INP/OUT/SKI/SKO are
// recognized but, per spec.md's Non-goals, produce no external effect).
const (
	BitIOF = 6
	BitION = 7
	BitSKO = 8
	BitSKI = 9
	BitOUT = 10
	BitINP = 11
)

// executeIO dispatches an I/O instruction (D=7, I=1) by its selected
// bit, then clears SC.
func (c *CPU) executeIO(bit int, d *diag.Channel) {
	switch bit {
	case BitINP:
		d.Debug("INP : (no input device attached)")
	case BitOUT:
		d.Debug("OUT : (no output device attached)")
	case BitSKI:
		d.Debug("SKI : (no input device attached)")
	case BitSKO:
		d.Debug("SKO : (no output device attached)")
	case BitION:
		d.Debug("ION D7IT3pB7 : IEN <- 1, SC <- 0")
		c.Reg.IEN.Set(1)
	case BitIOF:
		d.Debug("IOF D7IT3pB6 : IEN <- 0, SC <- 0")
		c.Reg.IEN.Clear()
	default:
		d.Errorf("unknown I/O instruction bit: %d", bit)
	}

	c.Reg.SC.Clear()
}
