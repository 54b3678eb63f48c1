// Package disasm is the decoding collaborator: it maps a 32-bit
// instruction word to a mnemonic and an operand string, or reports that
// no instruction matches.
package disasm

import (
	"encoding/binary"
	"strings"

	"golang.org/x/arch/arm64/arm64asm"
)

// Decoder decodes a 32-bit instruction word (little-endian byte order on
// the wire) into a mnemonic and operand text.
type Decoder interface {
	Decode(word uint32) (mnemonic, operands string, err error)
}

// A64 is a Decoder backed by the x/arch A64 disassembler tables.
type A64 struct{}

// Decode implements Decoder. An encoding the tables do not recognize is
// reported as ErrNoMatch, never as a fault.
func (A64) Decode(word uint32) (mnemonic, operands string, err error) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], word)

	inst, derr := arm64asm.Decode(raw[:])
	if derr != nil {
		err = ErrNoMatch(word)
		return
	}

	text := arm64asm.GNUSyntax(inst)
	mnemonic, operands, _ = strings.Cut(text, " ")
	if mnemonic == "" {
		err = ErrNoMatch(word)
	}

	return
}
