// Package vm implements the Mano Basic Computer's register file, memory,
// and micro-architected control unit (Figure 5-15).
package vm

// Register is a fixed-width scalar. Every mutation masks the stored
// value to the register's width, so value < 2^width always holds.
type Register struct {
	value uint16
	mask  uint16
	width int
}

// NewRegister creates a register of the given bit width. Widths >= 16
// are clamped to a 16-bit mask.
func NewRegister(width int) *Register {
	var mask uint16
	if width >= 16 {
		mask = 0xFFFF
	} else {
		mask = (uint16(1) << uint(width)) - 1
	}
	return &Register{mask: mask, width: width}
}

// Get returns the current value.
func (r *Register) Get() uint16 {
	return r.value
}

// Set stores v, masked to the register's width.
func (r *Register) Set(v uint16) {
	r.value = v & r.mask
}

// Clear sets the register to zero.
func (r *Register) Clear() {
	r.value = 0
}

// Increment adds one, wrapping at the register's width.
func (r *Register) Increment() {
	r.Set(r.value + 1)
}

// LogicAnd sets the register to value & v.
func (r *Register) LogicAnd(v uint16) {
	r.Set(r.value & v)
}

// Add computes value + v in a 32-bit domain, stores the low bits, and
// returns 1 if the sum exceeded the register's mask, else 0.
func (r *Register) Add(v uint16) uint16 {
	sum := uint32(r.value) + uint32(v)
	var carry uint16
	if sum > uint32(r.mask) {
		carry = 1
	}
	r.Set(uint16(sum))
	return carry
}

// Complement sets the register to the one's complement of its value.
func (r *Register) Complement() {
	r.Set(^r.value)
}

// topBitMask returns the mask for this register's most significant bit.
func (r *Register) topBitMask() uint16 {
	if r.mask == 0xFFFF {
		return 0x8000
	}
	return (r.mask + 1) >> 1
}

// ShiftRight captures the current low bit as lsbOut, shifts right by
// one, and — if msbIn is nonzero — sets the register's top bit.
func (r *Register) ShiftRight(msbIn uint16) (lsbOut uint16) {
	lsbOut = r.value & 1
	r.Set(r.value >> 1)
	if msbIn != 0 {
		r.Set(r.value | r.topBitMask())
	}
	return lsbOut
}

// ShiftLeft captures the current top bit as msbOut, shifts left by
// one, and writes the low bit from lsbIn & 1.
func (r *Register) ShiftLeft(lsbIn uint16) (msbOut uint16) {
	if r.value&r.topBitMask() != 0 {
		msbOut = 1
	}
	r.Set((r.value << 1) | (lsbIn & 1))
	return msbOut
}

// RegisterFile holds the fifteen named registers of the Mano machine.
type RegisterFile struct {
	AR   *Register // 12-bit address register
	PC   *Register // 12-bit program counter
	DR   *Register // 16-bit data register
	AC   *Register // 16-bit accumulator
	IR   *Register // 16-bit instruction register
	TR   *Register // 16-bit temporary register
	INPR *Register // 8-bit input register
	OUTR *Register // 8-bit output register
	SC   *Register // 3-bit sequence counter
	E    *Register // 1-bit carry/extend flip-flop
	S    *Register // 1-bit start/stop flip-flop
	R    *Register // 1-bit interrupt-pending flip-flop
	IEN  *Register // 1-bit interrupt-enable flip-flop
	FGI  *Register // 1-bit input-ready flag
	FGO  *Register // 1-bit output-ready flag
}

// NewRegisterFile creates a register file with every register cleared
// to zero.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{
		AR:   NewRegister(12),
		PC:   NewRegister(12),
		DR:   NewRegister(16),
		AC:   NewRegister(16),
		IR:   NewRegister(16),
		TR:   NewRegister(16),
		INPR: NewRegister(8),
		OUTR: NewRegister(8),
		SC:   NewRegister(3),
		E:    NewRegister(1),
		S:    NewRegister(1),
		R:    NewRegister(1),
		IEN:  NewRegister(1),
		FGI:  NewRegister(1),
		FGO:  NewRegister(1),
	}
}

// Reset clears every register to zero.
func (f *RegisterFile) Reset() {
	f.AR.Clear()
	f.PC.Clear()
	f.DR.Clear()
	f.AC.Clear()
	f.IR.Clear()
	f.TR.Clear()
	f.INPR.Clear()
	f.OUTR.Clear()
	f.SC.Clear()
	f.E.Clear()
	f.S.Clear()
	f.R.Clear()
	f.IEN.Clear()
	f.FGI.Clear()
	f.FGO.Clear()
}
