// Package convert translates between textual A64 assembly and 32-bit
// encodings for a constrained set of instruction forms.
//
// Every successful encode is round-tripped through the external decoder
// before being reported: the canonical assembly string is the decoder's
// rendering, not the caller's original text. An encode the decoder cannot
// recognize is a modeling bug and is surfaced as an error, never as a
// silent success.
package convert

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/armkit/a64x/disasm"
)

// Result is a successful conversion in both directions.
type Result struct {
	Hex     uint32 // The 32-bit encoding.
	Asm     string // Canonical assembly text from the decoder.
	BytesLE string // Encoding bytes, little-endian, upper hex.
	BytesBE string // Encoding bytes, big-endian, upper hex.
}

// Converter converts assembly text to encodings and back, canonicalizing
// through a Decoder.
type Converter struct {
	Decoder disasm.Decoder
}

// New creates a Converter backed by the A64 disassembler tables.
func New() (cv *Converter) {
	cv = &Converter{
		Decoder: disasm.A64{},
	}

	return
}

// Operand patterns for the supported mnemonic forms. Matched against
// upper-cased input, so immediates accept 0X-prefixed hex or decimal, with
// or without a leading '#'.
var (
	reAddSubImm = regexp.MustCompile(`^(ADD|SUB)\s+([WX]\d+|SP)\s*,\s*([WX]\d+|SP)\s*,\s*#?\s*(0X[0-9A-F]+|\d+)$`)
	reMovImm    = regexp.MustCompile(`^MOV\s+([WX])(\d+)\s*,\s*#?\s*(0X[0-9A-F]+|\d+)$`)
	reMovReg    = regexp.MustCompile(`^MOV\s+([WX]\d+|SP)\s*,\s*([WX]\d+|XZR|WZR|SP)$`)
)

// HexToAsm decodes an 8-digit hex word into its assembly rendering.
func (cv *Converter) HexToAsm(text string) (res Result, err error) {
	clean := strings.NewReplacer(" ", "", "0x", "", "0X", "").Replace(strings.TrimSpace(text))
	if len(clean) != 8 {
		err = ErrHexFormat(text)
		return
	}

	word, perr := strconv.ParseUint(clean, 16, 32)
	if perr != nil {
		err = ErrHexFormat(text)
		return
	}

	// An unrecognized user-supplied word is a decode miss, not a
	// modeling bug.
	mnemonic, operands, err := cv.Decoder.Decode(uint32(word))
	if err != nil {
		return
	}
	res = cv.result(uint32(word), mnemonic, operands)

	return
}

// AsmToHex encodes one line of assembly text. Supported forms: NOP,
// register/SP add and subtract with an immediate, move immediate (as MOVZ),
// and move register (as ORR with the zero register).
func (cv *Converter) AsmToHex(text string) (res Result, err error) {
	upper := strings.ToUpper(strings.TrimSpace(text))

	if upper == "NOP" {
		return cv.roundTrip(0xD503201F)
	}

	if match := reAddSubImm.FindStringSubmatch(upper); match != nil {
		return cv.encodeAddSubImm(match[1], match[2], match[3], match[4])
	}

	if match := reMovImm.FindStringSubmatch(upper); match != nil {
		return cv.encodeMovImm(match[1], match[2], match[3])
	}

	if match := reMovReg.FindStringSubmatch(upper); match != nil {
		return cv.encodeMovReg(match[1], match[2])
	}

	err = ErrUnsupported(strings.TrimSpace(text))

	return
}

// parseRegister parses Xn/Wn/SP/XZR/WZR into a size bit and register
// index. SP and the zero registers encode as index 31; the zero registers
// read as zero, which the instruction semantics supply, not the encoding.
func parseRegister(token string) (sf, index uint32, err error) {
	switch {
	case token == "SP", token == "XZR", token == "WZR":
		sf = 1
		index = 31
	case token[0] == 'X' || token[0] == 'W':
		n, perr := strconv.Atoi(token[1:])
		if perr != nil || n > 30 {
			err = ErrRegister(token)
			return
		}
		if token[0] == 'X' {
			sf = 1
		}
		index = uint32(n)
	default:
		err = ErrRegister(token)
	}

	return
}

// is64 reports whether a register token names a 64-bit operand.
func is64(token string) bool {
	return token == "SP" || strings.HasPrefix(token, "X")
}

// encodeAddSubImm encodes ADD/SUB (immediate), including the SP forms.
func (cv *Converter) encodeAddSubImm(op, rd_str, rn_str, imm_str string) (res Result, err error) {
	sf_d, rd, err := parseRegister(rd_str)
	if err != nil {
		return
	}
	sf_n, rn, err := parseRegister(rn_str)
	if err != nil {
		return
	}

	// Operands must agree on width. SP is always 64-bit and forces a
	// 64-bit operation.
	if rd_str != "SP" && rn_str != "SP" && sf_d != sf_n {
		err = ErrSizeMismatch(op)
		return
	}
	if (rd_str == "SP" || rn_str == "SP") && sf_d == 0 {
		err = ErrSpSize(op)
		return
	}

	sf := uint32(0)
	if is64(rd_str) {
		sf = 1
	}

	imm, _ := strconv.ParseUint(imm_str, 0, 64)
	shift := uint64(0)
	switch {
	case imm <= 0xFFF:
		// Direct 12-bit immediate, zero shift.
	case imm%(1<<12) == 0 && imm <= 0xFFF<<12:
		// Exact multiple of 4096: encode shifted left by 12.
		imm >>= 12
		shift = 1
	default:
		err = &ErrImmRange{Op: op, Value: imm}
		return
	}

	base := uint32(0x11000000)
	if op == "SUB" {
		base = 0x51000000
	}
	if sf == 1 {
		base |= 0x80000000
	}

	encoding := base | uint32(shift)<<22 | uint32(imm)<<10 | rn<<5 | rd

	return cv.roundTrip(encoding)
}

// encodeMovImm encodes MOV (immediate) via the zero-extending wide-move
// form with a zero shift amount. Wider immediates need a MOVN/MOVK
// sequence, which is out of scope.
func (cv *Converter) encodeMovImm(size, rd_str, imm_str string) (res Result, err error) {
	rd, perr := strconv.Atoi(rd_str)
	if perr != nil || rd > 30 {
		err = ErrRegister(size + rd_str)
		return
	}

	imm, _ := strconv.ParseUint(imm_str, 0, 64)
	if imm > 0xFFFF {
		err = ErrImmMove(imm)
		return
	}

	base := uint32(0x52800000)
	if size == "X" {
		base = 0xD2800000
	}

	encoding := base | uint32(imm)<<5 | uint32(rd)

	return cv.roundTrip(encoding)
}

// encodeMovReg encodes MOV (register) as ORR Rd, ZR, Rm, the
// architecturally correct alias; there is no dedicated move opcode.
func (cv *Converter) encodeMovReg(rd_str, rm_str string) (res Result, err error) {
	sf_d, rd, err := parseRegister(rd_str)
	if err != nil {
		return
	}
	sf_m, rm, err := parseRegister(rm_str)
	if err != nil {
		return
	}

	zero_src := rm_str == "XZR" || rm_str == "WZR"
	if !zero_src && rd_str != "SP" && rm_str != "SP" && sf_d != sf_m {
		err = ErrSizeMismatch("MOV")
		return
	}

	sf := uint32(0)
	if is64(rd_str) || is64(rm_str) {
		sf = 1
	}

	base := uint32(0x2A000000)
	if sf == 1 {
		base = 0xAA000000
	}

	encoding := base | rm<<16 | 31<<5 | rd

	return cv.roundTrip(encoding)
}

// roundTrip feeds an encoding back through the decoder and reports the
// decoded text as the canonical assembly.
func (cv *Converter) roundTrip(encoding uint32) (res Result, err error) {
	mnemonic, operands, derr := cv.Decoder.Decode(encoding)
	if derr != nil {
		err = errors.Join(ErrRoundTrip(encoding), derr)
		return
	}

	res = cv.result(encoding, mnemonic, operands)

	return
}

func (cv *Converter) result(encoding uint32, mnemonic, operands string) Result {
	return Result{
		Hex:     encoding,
		Asm:     strings.TrimSpace(mnemonic + " " + operands),
		BytesLE: bytesLE(encoding),
		BytesBE: fmt.Sprintf("%08X", encoding),
	}
}

// bytesLE renders the encoding's little-endian byte order as upper hex.
func bytesLE(encoding uint32) string {
	return fmt.Sprintf("%02X%02X%02X%02X",
		encoding&0xff, (encoding>>8)&0xff, (encoding>>16)&0xff, (encoding>>24)&0xff)
}
