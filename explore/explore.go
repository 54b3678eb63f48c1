// Package explore enumerates the field space of instruction descriptors
// and joins each assembled encoding with its decoded text and a
// best-effort emulation narrative.
package explore

import (
	"iter"

	"github.com/armkit/a64x/codec"
	"github.com/armkit/a64x/disasm"
	"github.com/armkit/a64x/emulator"
	"github.com/armkit/a64x/internal"
	"github.com/armkit/a64x/isa"
)

// Row is one explored encoding.
type Row struct {
	Value      uint32            // Assembled 32-bit encoding.
	Fields     map[string]uint32 // Varied field values for this row.
	Highlights map[string]uint32 // Free fields differing from the base.
	Mnemonic   string            // Decoded mnemonic, empty on a decode miss.
	Operands   string            // Decoded operand text.
	Narrative  string            // Emulation narrative, best effort.
}

// Decoded reports whether the external decoder recognized the encoding.
func (row *Row) Decoded() bool {
	return len(row.Mnemonic) != 0
}

// Request carries the caller's exploration settings.
type Request struct {
	Vary  []string  // Field names to vary. nil varies every field.
	Locks isa.Locks // Locked field values.
	Step  uint32    // Stride for fields wider than 2 bits.
	Limit int       // Hard cap on rows per descriptor.
}

// Explorer drives enumeration over a catalog, one emulation session per
// exploration.
type Explorer struct {
	Catalog *isa.Catalog
	Decoder disasm.Decoder
}

// Opcode explores a single mnemonic. Aliases resolve to their base
// descriptor first, with caller locks winning over alias locks.
func (ex *Explorer) Opcode(mnemonic string, req Request) (desc *isa.Descriptor, rows iter.Seq[Row], err error) {
	canonical, locks := ex.Catalog.Resolve(mnemonic, req.Locks)

	desc, err = ex.Catalog.Lookup(canonical)
	if err != nil {
		return
	}

	rows = ex.rows(desc, req, locks, emulator.New())

	return
}

// Group explores every descriptor of an instruction class, in declaration
// order, sharing one emulation session across the group.
func (ex *Explorer) Group(name string, req Request) (rows iter.Seq2[*isa.Descriptor, Row], err error) {
	group, err := ex.Catalog.GroupByName(name)
	if err != nil {
		return
	}

	emu := emulator.New()

	var seqs []iter.Seq2[*isa.Descriptor, Row]
	for _, desc := range ex.Catalog.ByGroup(group) {
		seqs = append(seqs, func(yield func(*isa.Descriptor, Row) bool) {
			for row := range ex.rows(desc, req, req.Locks, emu) {
				if !yield(desc, row) {
					return
				}
			}
		})
	}

	rows = internal.IterSeq2Concat(seqs...)

	return
}

// rows yields a Row per enumerated encoding.
func (ex *Explorer) rows(desc *isa.Descriptor, req Request, locks isa.Locks, emu *emulator.Emulator) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		enum := &Enumerator{
			Desc:  desc,
			Vary:  req.Vary,
			Locks: locks,
			Step:  req.Step,
			Limit: req.Limit,
		}

		for combo, value := range enum.Values() {
			row := Row{
				Value:      value,
				Fields:     combo,
				Highlights: codec.DiffFields(desc, value),
			}
			mnemonic, operands, derr := ex.Decoder.Decode(value)
			if derr == nil {
				row.Mnemonic = mnemonic
				row.Operands = operands
				row.Narrative = emu.Execute(mnemonic, operands)
			}
			if !yield(row) {
				return
			}
		}
	}
}
