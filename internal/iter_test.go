package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(
		slices.Values([]int{1, 2}),
		slices.Values([]int{}),
		slices.Values([]int{3}),
	)
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	// An early break propagates to the source sequences.
	var got []int
	for val := range seq {
		got = append(got, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, got)
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(
		slices.All([]string{"a", "b"}),
		slices.All([]string{"c"}),
	)

	var keys []int
	var vals []string
	for key, val := range seq {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"a", "b", "c"}, vals)
}

func TestIterSeqLimit(t *testing.T) {
	assert := assert.New(t)

	src := []int{1, 2, 3, 4, 5}

	assert.Equal([]int{1, 2, 3}, slices.Collect(IterSeqLimit(slices.Values(src), 3)))
	assert.Equal(src, slices.Collect(IterSeqLimit(slices.Values(src), 10)))
	assert.Empty(slices.Collect(IterSeqLimit(slices.Values(src), 0)))
	assert.Empty(slices.Collect(IterSeqLimit(slices.Values(src), -1)))
}

func TestIterSeq2Limit(t *testing.T) {
	assert := assert.New(t)

	src := []string{"a", "b", "c"}

	count := 0
	for range IterSeq2Limit(slices.All(src), 2) {
		count++
	}
	assert.Equal(2, count)

	count = 0
	for range IterSeq2Limit(slices.All(src), 0) {
		count++
	}
	assert.Equal(0, count)
}
