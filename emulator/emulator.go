// Package emulator interprets a small set of A64 arithmetic, logical, and
// move instructions against a register file, producing a narrative string
// per executed instruction.
//
// Emulation is best-effort annotation, not the primary contract: any parse
// or evaluation failure yields an empty narrative, never an error, so that
// a bad mnemonic/operand pair cannot abort the surrounding exploration or
// conversion flow. Condition flags, traps, and memory are not modeled.
package emulator

import (
	"fmt"
	"strconv"
	"strings"
)

// Emulator holds one emulation session's register file: 31 general-purpose
// 64-bit registers X0..X30 plus the stack pointer. The zero register
// (XZR/WZR) is not a storage slot; reads yield 0 and writes are discarded.
type Emulator struct {
	Reg [31]uint64 // X0..X30.
	Sp  uint64     // SP (register index 31 as stack pointer).
}

// New creates a fresh emulation session with all registers zero.
func New() (emu *Emulator) {
	emu = &Emulator{}

	return
}

// regIndex parses Xn/Wn into a register slot index.
func regIndex(name string) (index int, ok bool) {
	index, err := strconv.Atoi(name[1:])
	ok = err == nil && index >= 0 && index <= 30
	return
}

// GetReg reads a register by name. A Wn name reads the low 32 bits of Xn.
// XZR/WZR and unknown names read as zero.
func (emu *Emulator) GetReg(name string) (value uint64) {
	name = strings.ToUpper(strings.TrimSpace(name))

	switch {
	case name == "XZR" || name == "WZR":
		value = 0
	case name == "SP":
		value = emu.Sp
	case strings.HasPrefix(name, "X"):
		index, ok := regIndex(name)
		if ok {
			value = emu.Reg[index]
		}
	case strings.HasPrefix(name, "W"):
		index, ok := regIndex(name)
		if ok {
			value = emu.Reg[index] & 0xffffffff
		}
	}

	return
}

// SetReg writes a register by name. A Wn name zero-extends into the full
// 64-bit Xn slot. Writes to XZR/WZR and unknown names are discarded.
func (emu *Emulator) SetReg(name string, value uint64) {
	name = strings.ToUpper(strings.TrimSpace(name))

	switch {
	case name == "XZR" || name == "WZR":
		// Zero register: write is a no-op.
	case name == "SP":
		emu.Sp = value
	case strings.HasPrefix(name, "X"):
		index, ok := regIndex(name)
		if ok {
			emu.Reg[index] = value
		}
	case strings.HasPrefix(name, "W"):
		index, ok := regIndex(name)
		if ok {
			emu.Reg[index] = value & 0xffffffff
		}
	}
}

// immediate parses a "#value" or bare integer operand token.
func immediate(token string) (value uint64, ok bool) {
	token = strings.TrimPrefix(strings.TrimSpace(token), "#")
	v64, err := strconv.ParseInt(token, 0, 64)
	if err != nil {
		// 64-bit unsigned immediates overflow ParseInt.
		u64, uerr := strconv.ParseUint(token, 0, 64)
		if uerr != nil {
			return
		}
		value = u64
		ok = true
		return
	}
	value = uint64(v64)
	ok = true
	return
}

// Execute interprets one instruction and returns a narrative of the result,
// or an empty string when the mnemonic/operand shape is unsupported or
// malformed. All arithmetic wraps at 64 bits.
func (emu *Emulator) Execute(mnemonic, operands string) (narrative string) {
	mnemonic = strings.ToUpper(strings.TrimSpace(mnemonic))

	parts := strings.Split(operands, ",")
	for n := range parts {
		parts[n] = strings.TrimSpace(parts[n])
	}

	hasImm := strings.Contains(operands, "#")

	switch {
	case (mnemonic == "ADD" || mnemonic == "SUB") && len(parts) == 3:
		rd, rn := parts[0], parts[1]
		rn_val := emu.GetReg(rn)

		var arg uint64
		if hasImm {
			imm, ok := immediate(parts[2])
			if !ok {
				return
			}
			arg = imm
		} else {
			arg = emu.GetReg(parts[2])
		}

		sign := "+"
		result := rn_val + arg
		if mnemonic == "SUB" {
			sign = "-"
			result = rn_val - arg
		}

		emu.SetReg(rd, result)
		narrative = fmt.Sprintf("; %v = %v %v %v = %#x %v %#x = %#x",
			rd, rn, sign, parts[2], rn_val, sign, arg, result)

	case mnemonic == "MOV" && len(parts) == 2 && hasImm:
		rd := parts[0]
		imm, ok := immediate(parts[1])
		if !ok {
			return
		}
		if imm <= 0xffff {
			emu.SetReg(rd, imm)
			narrative = fmt.Sprintf("; %v = %#x", rd, imm)
		} else {
			// Needs a MOVN/MOVK sequence, which is not simulated.
			narrative = fmt.Sprintf("; %v = %#x (complex immediate)", rd, imm)
		}

	case mnemonic == "MOV" && len(parts) == 2:
		rd, rn := parts[0], parts[1]
		rn_val := emu.GetReg(rn)
		emu.SetReg(rd, rn_val)
		narrative = fmt.Sprintf("; %v = %v = %#x", rd, rn, rn_val)

	case (mnemonic == "AND" || mnemonic == "ORR" || mnemonic == "EOR") &&
		len(parts) == 3 && !hasImm:
		rd, rn, rm := parts[0], parts[1], parts[2]
		rn_val := emu.GetReg(rn)
		rm_val := emu.GetReg(rm)

		var sign string
		var result uint64
		switch mnemonic {
		case "AND":
			sign = "&"
			result = rn_val & rm_val
		case "ORR":
			sign = "|"
			result = rn_val | rm_val
		case "EOR":
			sign = "^"
			result = rn_val ^ rm_val
		}

		emu.SetReg(rd, result)
		narrative = fmt.Sprintf("; %v = %v %v %v = %#x %v %#x = %#x",
			rd, rn, sign, rm, rn_val, sign, rm_val, result)
	}

	return
}
