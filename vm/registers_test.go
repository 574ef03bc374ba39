package vm

import "testing"

func TestRegisterMasking(t *testing.T) {
	r := NewRegister(3)
	r.Set(10) // 10 & 0b111 = 2
	if got := r.Get(); got != 2 {
		t.Errorf("Set(10) on 3-bit register = %d, want 2", got)
	}

	r.Set(7)
	r.Increment()
	if got := r.Get(); got != 0 {
		t.Errorf("Increment() past max on 3-bit register = %d, want 0", got)
	}
}

func TestRegisterAddCarry(t *testing.T) {
	r := NewRegister(4)
	r.Set(14)
	carry := r.Add(5) // 14+5=19, 19 & 0xF = 3, carry=1
	if got := r.Get(); got != 3 {
		t.Errorf("Add result = %d, want 3", got)
	}
	if carry != 1 {
		t.Errorf("Add carry = %d, want 1", carry)
	}

	r.Set(10)
	carry = r.Add(3) // no overflow
	if got := r.Get(); got != 13 || carry != 0 {
		t.Errorf("Add(10,3) = (%d, %d), want (13, 0)", got, carry)
	}
}

func TestRegisterComplementIsInvolution(t *testing.T) {
	for _, width := range []int{1, 3, 8, 12, 16} {
		r := NewRegister(width)
		r.Set(0xAAAA)
		original := r.Get()
		r.Complement()
		r.Complement()
		if got := r.Get(); got != original {
			t.Errorf("width %d: complement(complement(v)) = %d, want %d", width, got, original)
		}
	}
}

func TestRegisterLogicAnd(t *testing.T) {
	r := NewRegister(16)
	r.Set(0xAAAA)
	r.Complement()
	if got := r.Get(); got != 0x5555 {
		t.Fatalf("complement = %#04x, want 0x5555", got)
	}
	r.LogicAnd(0x0F0F)
	if got := r.Get(); got != 0x0505 {
		t.Errorf("logic_and = %#04x, want 0x0505", got)
	}
}

func TestCIRThenCILIsIdentityOnACAndE(t *testing.T) {
	ac := NewRegister(16)
	e := NewRegister(1)

	ac.Set(0x1234)
	e.Set(1)
	originalAC, originalE := ac.Get(), e.Get()

	newE := ac.ShiftRight(e.Get())
	e.Set(newE)

	backE := ac.ShiftLeft(e.Get())
	e.Set(backE)

	if ac.Get() != originalAC {
		t.Errorf("AC after CIR;CIL = %#04x, want %#04x", ac.Get(), originalAC)
	}
	if e.Get() != originalE {
		t.Errorf("E after CIR;CIL = %d, want %d", e.Get(), originalE)
	}
}

func TestRegisterFileResetZeroesEverything(t *testing.T) {
	f := NewRegisterFile()
	f.AC.Set(0xBEEF)
	f.PC.Set(0xFFF)
	f.S.Set(1)
	f.Reset()

	if f.AC.Get() != 0 || f.PC.Get() != 0 || f.S.Get() != 0 {
		t.Errorf("RegisterFile.Reset left nonzero state: AC=%d PC=%d S=%d", f.AC.Get(), f.PC.Get(), f.S.Get())
	}
}
