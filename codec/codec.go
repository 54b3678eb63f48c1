package codec

import (
	"strings"

	"github.com/armkit/a64x/isa"
)

// BitClass classifies a single bit of an assembled value against its
// descriptor.
type BitClass int

//go:generate go tool stringer -linecomment -type=BitClass
const (
	BIT_MATCH           = BitClass(0) // match
	BIT_LEGAL_VARIATION = BitClass(1) // legal
	BIT_VIOLATION       = BitClass(2) // violation
)

// ExtractField reads a width-bit field at offset out of value.
func ExtractField(value uint32, offset, width uint) uint32 {
	return (value >> offset) & uint32((uint64(1)<<width)-1)
}

// WriteField clears the width-bit window at offset and inserts newValue.
// Overflow bits of newValue are dropped silently, matching the truncation
// semantics of a hardware register write.
func WriteField(value uint32, offset, width uint, newValue uint32) uint32 {
	mask := uint32((uint64(1)<<width)-1) << offset
	return (value & ^mask) | ((newValue << offset) & mask)
}

// Assemble builds a 32-bit encoding from the descriptor's base, the varied
// field values, and the lock set. Precedence is base, then varied values,
// then locks for fields not varied; fields covered by neither retain the
// base's bits.
func Assemble(desc *isa.Descriptor, values map[string]uint32, locks isa.Locks) (out uint32) {
	out = desc.Base

	for _, fd := range desc.Fields {
		value, ok := values[fd.Name]
		if ok {
			out = WriteField(out, fd.Offset, fd.Width, value)
			continue
		}
		value, ok = locks[fd.Name]
		if ok {
			out = WriteField(out, fd.Offset, fd.Width, value)
		}
	}

	return
}

// RenderPattern renders the descriptor's fixed/variable bit pattern, most
// significant bit first, nibbles separated by spaces. A masked position
// emits the base's bit; an unmasked position emits 'x'.
func RenderPattern(desc *isa.Descriptor) string {
	var sb strings.Builder
	for i := 31; i >= 0; i-- {
		if i != 31 && (i+1)%4 == 0 {
			sb.WriteByte(' ')
		}
		if (desc.Mask>>i)&1 != 0 {
			sb.WriteByte('0' + byte((desc.Base>>i)&1))
		} else {
			sb.WriteByte('x')
		}
	}
	return sb.String()
}

// ClassifyBit compares one bit of an assembled value to the descriptor's
// base. Equal bits match; a differing bit is a legal variation where the
// mask leaves the position free, and a violation where the mask fixes it.
// A violation means the value has drifted outside the variant's defined
// encoding space.
func ClassifyBit(desc *isa.Descriptor, assembled uint32, bit uint) BitClass {
	vbit := (assembled >> bit) & 1
	bbit := (desc.Base >> bit) & 1

	switch {
	case vbit == bbit:
		return BIT_MATCH
	case (desc.Mask>>bit)&1 == 0:
		return BIT_LEGAL_VARIATION
	default:
		return BIT_VIOLATION
	}
}

// DiffFields extracts the fields of an assembled value that differ from the
// base, restricted to fields whose bit window lies entirely in unmasked
// positions. A field overlapping any masked bit is not a free-varying field
// and is excluded.
func DiffFields(desc *isa.Descriptor, assembled uint32) (diff map[string]uint32) {
	diff = map[string]uint32{}
	for _, fd := range desc.Fields {
		if (fd.Window() & desc.Mask) != 0 {
			continue
		}
		value := ExtractField(assembled, fd.Offset, fd.Width)
		if value != ExtractField(desc.Base, fd.Offset, fd.Width) {
			diff[fd.Name] = value
		}
	}
	return
}
