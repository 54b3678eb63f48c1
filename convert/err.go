package convert

import (
	"github.com/armkit/a64x/translate"
)

var f = translate.From

// ErrHexFormat reports input that is not an 8-digit hex instruction word.
type ErrHexFormat string

func (err ErrHexFormat) Error() string {
	return f("'%v' is not an 8-digit hex word", string(err))
}

func (err ErrHexFormat) Is(target error) (ok bool) {
	_, ok = target.(ErrHexFormat)
	return
}

// ErrRegister reports an invalid register token.
type ErrRegister string

func (err ErrRegister) Error() string {
	return f("invalid register '%v'", string(err))
}

func (err ErrRegister) Is(target error) (ok bool) {
	_, ok = target.(ErrRegister)
	return
}

// ErrSizeMismatch reports operand registers of differing widths.
type ErrSizeMismatch string

func (err ErrSizeMismatch) Error() string {
	return f("register size mismatch in %v", string(err))
}

func (err ErrSizeMismatch) Is(target error) (ok bool) {
	_, ok = target.(ErrSizeMismatch)
	return
}

// ErrSpSize reports SP used in a 32-bit operation.
type ErrSpSize string

func (err ErrSpSize) Error() string {
	return f("%v with SP requires a 64-bit destination", string(err))
}

func (err ErrSpSize) Is(target error) (ok bool) {
	_, ok = target.(ErrSpSize)
	return
}

// ErrImmRange reports an add/subtract immediate outside the legal forms.
type ErrImmRange struct {
	Op    string
	Value uint64
}

func (err *ErrImmRange) Error() string {
	return f("invalid %v immediate %#x: must be 0-4095, or a multiple of 4096 up to %#x",
		err.Op, err.Value, uint64(0xFFF<<12))
}

func (err *ErrImmRange) Is(target error) (ok bool) {
	_, ok = target.(*ErrImmRange)
	return
}

// ErrImmMove reports a move immediate that does not fit a single
// zero-extending wide move.
type ErrImmMove uint64

func (err ErrImmMove) Error() string {
	return f("cannot encode immediate %#x with a single wide move", uint64(err))
}

func (err ErrImmMove) Is(target error) (ok bool) {
	_, ok = target.(ErrImmMove)
	return
}

// ErrUnsupported reports an assembly form outside the supported grammar.
type ErrUnsupported string

func (err ErrUnsupported) Error() string {
	return f("assembly pattern not supported: '%v'", string(err))
}

func (err ErrUnsupported) Is(target error) (ok bool) {
	_, ok = target.(ErrUnsupported)
	return
}

// ErrRoundTrip reports an internally produced encoding the decoder cannot
// recognize, which indicates a modeling bug.
type ErrRoundTrip uint32

func (err ErrRoundTrip) Error() string {
	return f("encoding 0x%08X failed round-trip decode", uint32(err))
}

func (err ErrRoundTrip) Is(target error) (ok bool) {
	_, ok = target.(ErrRoundTrip)
	return
}
