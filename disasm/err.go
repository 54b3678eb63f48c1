package disasm

import (
	"github.com/armkit/a64x/translate"
)

var f = translate.From

// ErrNoMatch reports a 32-bit value with no recognized instruction
// encoding.
type ErrNoMatch uint32

func (err ErrNoMatch) Error() string {
	return f("undefined encoding 0x%08X", uint32(err))
}

func (err ErrNoMatch) Is(target error) (ok bool) {
	_, ok = target.(ErrNoMatch)
	return
}
