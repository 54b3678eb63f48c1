package explore

import (
	"iter"
	"log"
	"slices"

	"github.com/armkit/a64x/codec"
	"github.com/armkit/a64x/internal"
	"github.com/armkit/a64x/isa"
)

// Enumerator walks the field space of one descriptor: the Cartesian product
// of per-field domains, in declared field order, last field fastest.
//
// A nil Vary set varies every field; an explicitly empty Vary set yields
// exactly one value, the base resolved by the locks. Vary names not present
// on the descriptor are dropped with a diagnostic; if nothing valid remains
// the enumeration yields nothing.
//
// Limit is a mandatory hard cap on yielded values: a 32-bit field alone has
// four billion points. A Limit of zero or less yields nothing.
type Enumerator struct {
	Desc  *isa.Descriptor
	Vary  []string  // Field names to vary. nil varies every field.
	Locks isa.Locks // Locked field values.
	Step  uint32    // Stride for fields wider than 2 bits.
	Limit int       // Hard cap on yielded values.
}

// domain is the value sequence for a single varied field.
type domain struct {
	field  isa.Field
	stride uint64
	size   uint64
	locked bool
	value  uint32
}

func (d *domain) at(index uint64) uint32 {
	if d.locked {
		return d.value
	}
	return uint32(index * d.stride)
}

// clampedLocks clamps every lock naming a descriptor field into the field's
// range. An oversize raw value is diagnosed, never silently truncated.
// Locks naming fields absent from the descriptor are carried unchanged.
func (e *Enumerator) clampedLocks() (locks isa.Locks) {
	locks = e.Locks.Clone()
	for name, value := range locks {
		fd, ok := e.Desc.Field(name)
		if !ok {
			continue
		}
		clamped, over := fd.Clamp(value)
		if over {
			log.Printf("%v: lock %v=%v exceeds %v-bit range, clamped to %v",
				e.Desc.Name, name, value, fd.Width, clamped)
		}
		locks[name] = clamped
	}
	return
}

// varied resolves the requested vary set against the descriptor, dropping
// unknown names with a diagnostic. dropped reports whether any requested
// name was invalid.
func (e *Enumerator) varied() (fields []isa.Field, dropped bool) {
	if e.Vary == nil {
		return e.Desc.Fields, false
	}

	for _, fd := range e.Desc.Fields {
		if slices.Contains(e.Vary, fd.Name) {
			fields = append(fields, fd)
		}
	}

	for _, name := range e.Vary {
		_, ok := e.Desc.Field(name)
		if !ok {
			log.Printf("%v: ignoring unknown vary field '%v'", e.Desc.Name, name)
			dropped = true
		}
	}

	return
}

// Values lazily yields (field-value map, assembled encoding) pairs. The
// sequence is finite and deterministic; the caller stops it early by
// breaking out of the range.
func (e *Enumerator) Values() iter.Seq2[map[string]uint32, uint32] {
	return internal.IterSeq2Limit(e.values(), e.Limit)
}

func (e *Enumerator) values() iter.Seq2[map[string]uint32, uint32] {
	return func(yield func(map[string]uint32, uint32) bool) {
		locks := e.clampedLocks()

		fields, dropped := e.varied()
		if len(fields) == 0 {
			if dropped {
				// Every requested field was invalid: yield nothing,
				// distinct from yielding the base.
				return
			}
			// Nothing to vary: the base, fully resolved by locks.
			yield(map[string]uint32{}, codec.Assemble(e.Desc, nil, locks))
			return
		}

		domains := make([]domain, 0, len(fields))
		for _, fd := range fields {
			dom := domain{field: fd}
			value, ok := locks[fd.Name]
			if ok {
				dom.locked = true
				dom.value = value
				dom.size = 1
			} else {
				// A full-width field has 2^32 points, which overflows
				// the 32-bit Max; size the domain in 64 bits.
				max := uint64(1) << fd.Width
				dom.stride = 1
				if fd.Width > 2 && e.Step > 1 {
					// Small fields are always walked exhaustively;
					// sampling a 2-bit field would skip half its space.
					dom.stride = min(uint64(e.Step), max)
				}
				dom.size = (max + dom.stride - 1) / dom.stride
			}
			domains = append(domains, dom)
		}

		index := make([]uint64, len(domains))
		for {
			combo := make(map[string]uint32, len(domains))
			for n := range domains {
				combo[domains[n].field.Name] = domains[n].at(index[n])
			}
			if !yield(combo, codec.Assemble(e.Desc, combo, locks)) {
				return
			}

			carry := len(domains) - 1
			for carry >= 0 {
				index[carry] += 1
				if index[carry] < domains[carry].size {
					break
				}
				index[carry] = 0
				carry -= 1
			}
			if carry < 0 {
				return
			}
		}
	}
}
