package isa

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Group is an instruction class tag.
type Group int

//go:generate go tool stringer -linecomment -type=Group
const (
	GROUP_DATAPROC_REG = Group(0) // DataProcReg
	GROUP_DATAPROC_IMM = Group(1) // DataProcImm
	GROUP_LOADSTORE    = Group(2) // LoadStore
	GROUP_BRANCH       = Group(3) // Branch
	GROUP_SYSTEM       = Group(4) // System
	GROUP_PAC          = Group(5) // PAC
	GROUP_MTE          = Group(6) // MTE
)

// Field is a named, contiguous bit range within the 32-bit instruction word.
type Field struct {
	Name   string // Field name, unique within a descriptor.
	Offset uint   // Bit offset of the least significant bit.
	Width  uint   // Width in bits.
}

// Max returns the number of values the field can hold.
func (fd Field) Max() uint32 {
	return uint32(1) << fd.Width
}

// Clamp masks value into the field's range. clamped is set when
// the raw value did not fit.
func (fd Field) Clamp(value uint32) (out uint32, clamped bool) {
	out = value & (fd.Max() - 1)
	clamped = out != value
	return
}

// Window returns the field's bit positions as a 32-bit mask.
func (fd Field) Window() uint32 {
	return (fd.Max() - 1) << fd.Offset
}

// Descriptor is an immutable template for one instruction variant.
//
// Base holds the encoding with all variable fields at zero. Mask marks the
// bit positions that are architecturally fixed for the variant: any encoding
// belonging to it must agree with Base on every masked bit. Fields are kept
// in declaration order, which is also the enumeration order.
type Descriptor struct {
	Name   string  // Canonical mnemonic.
	Group  Group   // Instruction class.
	Base   uint32  // Encoding with all variable fields at zero.
	Mask   uint32  // Set bits are architecturally fixed.
	Form   string  // Encoding form tag.
	Desc   string  // Human-readable summary, display only.
	Fields []Field // Named bitfields, declaration order.
}

// Field looks up a field by (case-sensitive) name.
func (d *Descriptor) Field(name string) (fd Field, ok bool) {
	for _, fd = range d.Fields {
		if fd.Name == name {
			ok = true
			return
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in declaration order.
func (d *Descriptor) FieldNames() (names []string) {
	names = make([]string, 0, len(d.Fields))
	for _, fd := range d.Fields {
		names = append(names, fd.Name)
	}
	return
}

// validate checks the descriptor's field windows against the data-model
// invariants.
func (d *Descriptor) validate() (err error) {
	for _, fd := range d.Fields {
		if fd.Width < 1 || fd.Width > 32 || fd.Offset+fd.Width > 32 {
			err = &ErrDescriptor{Name: d.Name, Err: ErrFieldWindow(fd.Name)}
			return
		}
		for _, other := range d.Fields {
			if other.Name == fd.Name {
				continue
			}
			if (other.Window() & fd.Window()) != 0 {
				err = &ErrDescriptor{Name: d.Name, Err: ErrFieldOverlap(fd.Name)}
				return
			}
		}
	}
	return
}

// Locks maps a field name to a required value during assembly or
// enumeration.
type Locks map[string]uint32

// Clone returns a copy of the lock set. A nil receiver clones to an empty,
// writable set.
func (lk Locks) Clone() (out Locks) {
	if lk == nil {
		return Locks{}
	}
	return maps.Clone(lk)
}

// String renders the lock set as "name=value" pairs in name order.
func (lk Locks) String() string {
	names := slices.Sorted(maps.Keys(lk))
	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, fmt.Sprintf("%v=%#x", name, lk[name]))
	}
	return strings.Join(pairs, " ")
}

// Alias maps an alternate mnemonic to a base mnemonic plus implied field
// locks.
type Alias struct {
	Name   string // Alias mnemonic.
	BaseOp string // Canonical base mnemonic.
	Locks  Locks  // Field locks implied by the alias.
}
