package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/armkit/a64x/codec"
	"github.com/armkit/a64x/disasm"
	"github.com/armkit/a64x/isa"
)

func TestAsmToHex_AddImmediate(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	res, err := cv.AsmToHex("ADD X0, X1, #0x123")
	assert.NoError(err)
	assert.Equal(uint32(0x91048C20), res.Hex)
	assert.Equal("208C0491", res.BytesLE)
	assert.Equal("91048C20", res.BytesBE)

	// Spelling variants all land on the same encoding.
	for _, text := range []string{
		"ADD X0, X1, # 0x123",
		"ADD X0, X1, 0x123",
		"ADD X0, X1, #291",
		"add x0 , x1 , 291",
	} {
		res, err = cv.AsmToHex(text)
		assert.NoError(err, text)
		assert.Equal(uint32(0x91048C20), res.Hex, text)
	}

	res, err = cv.AsmToHex("ADD W3, W4, #7")
	assert.NoError(err)
	assert.Equal(uint32(0x11001C83), res.Hex)

	res, err = cv.AsmToHex("SUB X2, X3, #0x10")
	assert.NoError(err)
	assert.Equal(uint32(0xD1004062), res.Hex)
}

func TestAsmToHex_AddImmediate_Shifted(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	// A multiple of 4096 encodes via the shifted immediate form.
	res, err := cv.AsmToHex("ADD X0, X1, #0x3000")
	assert.NoError(err)
	assert.Equal(uint32(0x91400C20), res.Hex)

	res, err = cv.AsmToHex("ADD X0, X1, #0xFFF000")
	assert.NoError(err)
	assert.Equal(uint32(0x917FFC20), res.Hex)

	// Neither direct nor an exact multiple of 4096.
	_, err = cv.AsmToHex("ADD X0, X1, #0x12345")
	assert.ErrorIs(err, &ErrImmRange{})

	_, err = cv.AsmToHex("ADD X0, X1, #0x1000000")
	assert.ErrorIs(err, &ErrImmRange{})
}

func TestAsmToHex_StackPointer(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	res, err := cv.AsmToHex("ADD SP, SP, #0x40")
	assert.NoError(err)
	assert.Equal(uint32(0x910103FF), res.Hex)

	res, err = cv.AsmToHex("SUB SP, SP, #0x40")
	assert.NoError(err)
	assert.Equal(uint32(0xD10103FF), res.Hex)

	res, err = cv.AsmToHex("ADD X0, SP, #8")
	assert.NoError(err)
	assert.Equal(uint32(0x910023E0), res.Hex)

	// SP forces a 64-bit operation.
	_, err = cv.AsmToHex("ADD W0, SP, #8")
	assert.ErrorIs(err, ErrSpSize(""))
}

func TestAsmToHex_SizeMismatch(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	_, err := cv.AsmToHex("ADD W0, X1, #1")
	assert.ErrorIs(err, ErrSizeMismatch(""))

	_, err = cv.AsmToHex("MOV W0, X1")
	assert.ErrorIs(err, ErrSizeMismatch(""))
}

func TestAsmToHex_MovImmediate(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	res, err := cv.AsmToHex("MOV X5, #0x10")
	assert.NoError(err)
	assert.Equal(uint32(0xD2800205), res.Hex)

	res, err = cv.AsmToHex("MOV W5, #0x10")
	assert.NoError(err)
	assert.Equal(uint32(0x52800205), res.Hex)

	res, err = cv.AsmToHex("MOV X0, #0xFFFF")
	assert.NoError(err)
	assert.Equal(uint32(0xD29FFFE0), res.Hex)

	_, err = cv.AsmToHex("MOV X0, #0x12345")
	assert.ErrorIs(err, ErrImmMove(0))
}

func TestAsmToHex_MovRegister(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	res, err := cv.AsmToHex("MOV X0, X1")
	assert.NoError(err)
	assert.Equal(uint32(0xAA0103E0), res.Hex)

	res, err = cv.AsmToHex("MOV W0, W1")
	assert.NoError(err)
	assert.Equal(uint32(0x2A0103E0), res.Hex)

	res, err = cv.AsmToHex("MOV X3, XZR")
	assert.NoError(err)
	assert.Equal(uint32(0xAA1F03E3), res.Hex)

	// MOV Rd, Rm is exactly ORR Rd, ZR, Rm on the catalog's descriptor.
	cat, err := isa.NewCatalog(isa.Groups, isa.Aliases)
	assert.NoError(err)
	orr, err := cat.Lookup("ORR")
	assert.NoError(err)
	word := codec.Assemble(orr, map[string]uint32{
		"Rd": 0, "Rn": 31, "Rm": 1, "sf": 1,
	}, nil)
	assert.Equal(uint32(0xAA0103E0), word)
}

func TestAsmToHex_Nop(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	res, err := cv.AsmToHex("nop")
	assert.NoError(err)
	assert.Equal(uint32(0xD503201F), res.Hex)
	assert.Equal("nop", res.Asm)
}

func TestAsmToHex_Unsupported(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	for _, text := range []string{
		"LDR X0, [X1]",
		"ADD X0, X1, X2, LSL #2",
		"MOV X99, #1",
		"",
	} {
		_, err := cv.AsmToHex(text)
		assert.Error(err, text)
	}
}

func TestHexToAsm(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	res, err := cv.HexToAsm("0xD503201F")
	assert.NoError(err)
	assert.Equal("nop", res.Asm)
	assert.Equal(uint32(0xD503201F), res.Hex)
	assert.Equal("1F2003D5", res.BytesLE)

	// Prefix and spacing variants.
	for _, text := range []string{"D503201F", "d503201f", " D5 03 20 1F "} {
		res, err = cv.HexToAsm(text)
		assert.NoError(err, text)
		assert.Equal(uint32(0xD503201F), res.Hex, text)
	}
}

func TestHexToAsm_Errors(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	for _, text := range []string{"", "1234", "D503201F00", "xyzzyxyz"} {
		_, err := cv.HexToAsm(text)
		assert.ErrorIs(err, ErrHexFormat(""), text)
	}

	_, err := cv.HexToAsm("00000000")
	assert.ErrorIs(err, disasm.ErrNoMatch(0))
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	cv := New()

	// The decoder's rendering re-assembles to the identical word.
	for _, hex := range []string{"91048C20", "AA0103E0", "D2800205"} {
		decoded, err := cv.HexToAsm(hex)
		assert.NoError(err, hex)

		encoded, err := cv.AsmToHex(decoded.Asm)
		assert.NoError(err, decoded.Asm)
		assert.Equal(decoded.Hex, encoded.Hex, hex)
	}
}
