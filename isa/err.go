package isa

import (
	"github.com/armkit/a64x/translate"
)

var f = translate.From

// ErrUnknownOpcode reports a mnemonic with no catalog entry.
type ErrUnknownOpcode string

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode '%v'", string(err))
}

func (err ErrUnknownOpcode) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownOpcode)
	return
}

// ErrUnknownGroup reports a group name with no catalog entry.
type ErrUnknownGroup string

func (err ErrUnknownGroup) Error() string {
	return f("unknown group '%v'", string(err))
}

func (err ErrUnknownGroup) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownGroup)
	return
}

// ErrUnknownAlias reports a mnemonic with no alias entry.
type ErrUnknownAlias string

func (err ErrUnknownAlias) Error() string {
	return f("unknown alias '%v'", string(err))
}

func (err ErrUnknownAlias) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownAlias)
	return
}

// Catalog construction errors. These are configuration errors: they are
// reported once at startup and abort it.

// ErrDuplicateMnemonic reports two descriptors or aliases sharing a
// mnemonic.
type ErrDuplicateMnemonic string

func (err ErrDuplicateMnemonic) Error() string {
	return f("duplicate mnemonic '%v'", string(err))
}

// ErrFieldWindow reports a field whose bit window falls outside the 32-bit
// word.
type ErrFieldWindow string

func (err ErrFieldWindow) Error() string {
	return f("field '%v' window out of range", string(err))
}

// ErrFieldOverlap reports a field whose bit window overlaps another field of
// the same descriptor.
type ErrFieldOverlap string

func (err ErrFieldOverlap) Error() string {
	return f("field '%v' overlaps another field", string(err))
}

// ErrAliasBase reports an alias whose base mnemonic has no descriptor.
type ErrAliasBase string

func (err ErrAliasBase) Error() string {
	return f("alias base '%v' missing", string(err))
}

// ErrDescriptor wraps a construction error with the offending descriptor or
// alias name.
type ErrDescriptor struct {
	Name string
	Err  error
}

func (err *ErrDescriptor) Error() string {
	return f("descriptor %v: %v", err.Name, err.Err)
}

func (err *ErrDescriptor) Unwrap() error {
	return err.Err
}
