package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]uint16{1, 2}), slices.Values([]uint16{}), slices.Values([]uint16{3}))
	assert.Equal([]uint16{1, 2, 3}, slices.Collect(seq))

	var first []uint16
	for val := range seq {
		first = append(first, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]uint16{1, 2}, first)

	assert.Empty(slices.Collect(IterSeqConcat[int]()))
}

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeq2Concat(
		maps.All(map[string]string{"A": "1"}),
		maps.All(map[string]string{"B": "2", "A": "3"}),
	)

	count := 0
	for range seq {
		count++
	}
	assert.Equal(3, count)

	merged := maps.Collect(IterSeq2Concat(
		maps.All(map[string]string{"A": "1"}),
		maps.All(map[string]string{"A": "3"}),
	))
	assert.Equal(map[string]string{"A": "3"}, merged)

	for range seq {
		break
	}
}
