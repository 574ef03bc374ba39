package machine

// State is a point-in-time snapshot of the machine, suitable for
// display by a CLI or TUI front-end. Narrower registers (SC, E) still
// present as 16-bit words with zeroed high bits.
type State struct {
	ProgramCounter      uint16
	Accumulator         uint16
	InstructionRegister uint16
	AddressRegister     uint16
	DataRegister        uint16
	ExtendRegister      uint16
	SequenceCounter     uint16
	IsHalted            bool
	IsRunning           bool
	MemorySnapshot      []uint16
}
