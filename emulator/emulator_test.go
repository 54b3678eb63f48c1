package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmulator_AddImmediate(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("X1", 5)

	narrative := emu.Execute("ADD", "X0, X1, #0x3")
	assert.Equal(uint64(8), emu.GetReg("X0"))
	assert.Equal("; X0 = X1 + #0x3 = 0x5 + 0x3 = 0x8", narrative)
}

func TestEmulator_AddRegister(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("X1", 5)
	emu.SetReg("X2", 6)

	narrative := emu.Execute("add", "X0, X1, X2")
	assert.Equal(uint64(11), emu.GetReg("X0"))
	assert.Contains(narrative, "X0 = X1 + X2")
}

func TestEmulator_Sub(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.Execute("MOV", "X0, #0x10")
	assert.Equal(uint64(0x10), emu.GetReg("X0"))

	emu.SetReg("X1", 4)
	narrative := emu.Execute("SUB", "X0, X0, X1")
	assert.Equal(uint64(0xC), emu.GetReg("X0"))
	assert.Contains(narrative, "X0 = X0 - X1")
}

func TestEmulator_Wraparound(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("X0", 0xFFFFFFFFFFFFFFFF)

	narrative := emu.Execute("ADD", "X0, X0, #1")
	assert.Equal(uint64(0), emu.GetReg("X0"))
	assert.Contains(narrative, "= 0x0")

	emu.SetReg("X2", 0)
	emu.SetReg("X3", 1)
	emu.Execute("SUB", "X1, X2, X3")
	assert.Equal(uint64(0xFFFFFFFFFFFFFFFF), emu.GetReg("X1"))
}

func TestEmulator_ZeroRegister(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("X1", 7)

	// A write to the zero register is discarded.
	emu.Execute("ADD", "XZR, X1, #1")
	assert.Equal(uint64(0), emu.GetReg("XZR"))
	assert.Equal(uint64(7), emu.GetReg("X1"))
	for n := range 31 {
		if n == 1 {
			continue
		}
		assert.Equal(uint64(0), emu.Reg[n])
	}

	// A read of the zero register yields zero regardless of context.
	emu.Execute("ADD", "X2, XZR, #5")
	assert.Equal(uint64(5), emu.GetReg("X2"))
}

func TestEmulator_WRegisters(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("X3", 0xFFFFFFFFFFFFFFFF)

	// A W write zero-extends into the full slot.
	emu.Execute("MOV", "W3, #0x12")
	assert.Equal(uint64(0x12), emu.Reg[3])

	// A W read sees the low half only.
	emu.SetReg("X4", 0xAAAAAAAA55555555)
	assert.Equal(uint64(0x55555555), emu.GetReg("W4"))
	assert.Equal(uint64(0xAAAAAAAA55555555), emu.GetReg("X4"))
}

func TestEmulator_StackPointer(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("SP", 0x1000)

	emu.Execute("SUB", "SP, SP, #0x40")
	assert.Equal(uint64(0xFC0), emu.Sp)

	emu.Execute("ADD", "SP, SP, #0x40")
	assert.Equal(uint64(0x1000), emu.GetReg("SP"))
}

func TestEmulator_MovRegister(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("X1", 0xCAFE)

	narrative := emu.Execute("MOV", "X0, X1")
	assert.Equal(uint64(0xCAFE), emu.GetReg("X0"))
	assert.Equal("; X0 = X1 = 0xcafe", narrative)
}

func TestEmulator_ComplexImmediate(t *testing.T) {
	assert := assert.New(t)

	emu := New()

	// Beyond a single wide move: narrated but not applied.
	narrative := emu.Execute("MOV", "X0, #0x12345")
	assert.Contains(narrative, "(complex immediate)")
	assert.Equal(uint64(0), emu.GetReg("X0"))
}

func TestEmulator_Logical(t *testing.T) {
	assert := assert.New(t)

	emu := New()
	emu.SetReg("X1", 0xF0)
	emu.SetReg("X2", 0x1F)

	emu.Execute("AND", "X0, X1, X2")
	assert.Equal(uint64(0x10), emu.GetReg("X0"))

	emu.Execute("ORR", "X0, X1, X2")
	assert.Equal(uint64(0xFF), emu.GetReg("X0"))

	narrative := emu.Execute("EOR", "X0, X1, X2")
	assert.Equal(uint64(0xEF), emu.GetReg("X0"))
	assert.Contains(narrative, "X1 ^ X2")
}

func TestEmulator_Unsupported(t *testing.T) {
	assert := assert.New(t)

	emu := New()

	// Anything outside the modeled shapes narrates as nothing.
	for _, test := range []struct{ mnemonic, operands string }{
		{"LDR", "X0, [X1]"},
		{"B", "0x1000"},
		{"ADD", "X0, X1"},
		{"ADD", "X0, X1, #zzz"},
		{"MOV", "X0, #x"},
	} {
		assert.Empty(emu.Execute(test.mnemonic, test.operands), test.mnemonic)
	}
	assert.Equal(uint64(0), emu.GetReg("X0"))
}
