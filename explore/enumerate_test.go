package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/armkit/a64x/codec"
	"github.com/armkit/a64x/isa"
)

func testDescriptor(t *testing.T, mnemonic string) *isa.Descriptor {
	cat, err := isa.NewCatalog(isa.Groups, isa.Aliases)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	desc, err := cat.Lookup(mnemonic)
	if err != nil {
		t.Fatalf("lookup %v: %v", mnemonic, err)
	}
	return desc
}

func collect(e *Enumerator) (combos []map[string]uint32, words []uint32) {
	for combo, word := range e.Values() {
		combos = append(combos, combo)
		words = append(words, word)
	}
	return
}

func TestEnumerator_Limit(t *testing.T) {
	assert := assert.New(t)

	desc := testDescriptor(t, "ADD")

	// The full field space is astronomically larger than any limit.
	_, words := collect(&Enumerator{Desc: desc, Step: 1, Limit: 10})
	assert.Equal(10, len(words))

	_, words = collect(&Enumerator{Desc: desc, Step: 1, Limit: 0})
	assert.Empty(words)

	_, words = collect(&Enumerator{Desc: desc, Step: 1, Limit: -4})
	assert.Empty(words)
}

func TestEnumerator_Order(t *testing.T) {
	assert := assert.New(t)

	desc := testDescriptor(t, "ADD")

	// Last declared field varies fastest: sf first, then shift.
	_, words := collect(&Enumerator{Desc: desc, Step: 1, Limit: 3})
	assert.Equal([]uint32{
		desc.Base,
		desc.Base | 1<<31,
		desc.Base | 1<<22,
	}, words)
}

func TestEnumerator_SmallFieldExhaustive(t *testing.T) {
	assert := assert.New(t)

	desc := testDescriptor(t, "ADD")

	// A 1-bit field ignores the stride and walks both values.
	combos, _ := collect(&Enumerator{
		Desc: desc, Vary: []string{"sf"}, Step: 8, Limit: 100,
	})
	assert.Equal(2, len(combos))
	assert.Equal(uint32(0), combos[0]["sf"])
	assert.Equal(uint32(1), combos[1]["sf"])

	// So does a 2-bit field.
	combos, _ = collect(&Enumerator{
		Desc: desc, Vary: []string{"shift"}, Step: 8, Limit: 100,
	})
	assert.Equal(4, len(combos))
}

func TestEnumerator_Stride(t *testing.T) {
	assert := assert.New(t)

	desc := testDescriptor(t, "ADD")

	combos, _ := collect(&Enumerator{
		Desc: desc, Vary: []string{"Rd"}, Step: 4, Limit: 100,
	})
	assert.Equal(8, len(combos))
	for n, combo := range combos {
		assert.Equal(uint32(n*4), combo["Rd"])
	}

	// A stride beyond the field width clamps to one sample per field.
	combos, _ = collect(&Enumerator{
		Desc: desc, Vary: []string{"Rd"}, Step: 1000, Limit: 100,
	})
	assert.Equal(1, len(combos))
	assert.Equal(uint32(0), combos[0]["Rd"])
}

func TestEnumerator_Locks(t *testing.T) {
	assert := assert.New(t)

	desc := testDescriptor(t, "ADDI")

	// A locked varied field contributes a single domain value.
	combos, words := collect(&Enumerator{
		Desc: desc,
		Vary: []string{"Rd", "sf"},
		Locks: isa.Locks{
			"Rd": 0, "Rn": 1, "imm12": 0x123,
		},
		Step:  1,
		Limit: 100,
	})
	assert.Equal(2, len(combos))
	assert.Equal(uint32(0x11048C20), words[0])
	assert.Equal(uint32(0x91048C20), words[1])

	// An oversize lock is clamped into the field range.
	_, words = collect(&Enumerator{
		Desc:  desc,
		Vary:  []string{},
		Locks: isa.Locks{"Rd": 37},
		Limit: 100,
	})
	assert.Equal(1, len(words))
	assert.Equal(uint32(5), codec.ExtractField(words[0], 0, 5))
}

func TestEnumerator_VarySets(t *testing.T) {
	assert := assert.New(t)

	desc := testDescriptor(t, "ADDI")

	// Explicitly empty vary set: exactly one value, the locked base.
	combos, words := collect(&Enumerator{
		Desc:  desc,
		Vary:  []string{},
		Locks: isa.Locks{"Rn": 31, "sf": 1},
		Limit: 100,
	})
	assert.Equal(1, len(words))
	assert.Empty(combos[0])
	assert.Equal(uint32(0x910003E0), words[0])

	// Only invalid names: nothing at all.
	_, words = collect(&Enumerator{
		Desc:  desc,
		Vary:  []string{"bogus"},
		Limit: 100,
	})
	assert.Empty(words)

	// Invalid names mixed with valid ones are dropped.
	combos, _ = collect(&Enumerator{
		Desc:  desc,
		Vary:  []string{"bogus", "sf"},
		Limit: 100,
	})
	assert.Equal(2, len(combos))
}

func TestEnumerator_FullWidthField(t *testing.T) {
	assert := assert.New(t)

	// A single 32-bit field spans the whole word; the cap is the only
	// thing keeping the walk finite.
	desc := &isa.Descriptor{
		Name:   "WORD",
		Fields: []isa.Field{{Name: "word", Offset: 0, Width: 32}},
	}

	combos, _ := collect(&Enumerator{Desc: desc, Step: 4, Limit: 10})
	assert.Equal(10, len(combos))
	for n, combo := range combos {
		assert.Equal(uint32(n*4), combo["word"])
	}

	combos, _ = collect(&Enumerator{Desc: desc, Step: 1, Limit: 10})
	assert.Equal(10, len(combos))
	assert.Equal(uint32(9), combos[9]["word"])
}

func TestEnumerator_NoFields(t *testing.T) {
	assert := assert.New(t)

	desc := testDescriptor(t, "NOP")

	_, words := collect(&Enumerator{Desc: desc, Limit: 100})
	assert.Equal([]uint32{0xD503201F}, words)
}
