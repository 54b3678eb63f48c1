package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestA64_Decode(t *testing.T) {
	assert := assert.New(t)

	dec := A64{}

	mnemonic, operands, err := dec.Decode(0xD503201F)
	assert.NoError(err)
	assert.Equal("nop", mnemonic)
	assert.Empty(operands)

	mnemonic, operands, err = dec.Decode(0x91048C20)
	assert.NoError(err)
	assert.Equal("add", mnemonic)
	assert.NotEmpty(operands)
}

func TestA64_Decode_NoMatch(t *testing.T) {
	assert := assert.New(t)

	dec := A64{}

	_, _, err := dec.Decode(0x00000000)
	assert.ErrorIs(err, ErrNoMatch(0))
	assert.Contains(err.Error(), "00000000")
}
