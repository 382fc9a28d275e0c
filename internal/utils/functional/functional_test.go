package functional

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, Distinct([]int64{3, 1, 3, 2, 1}))
}

func TestDistinctEmpty(t *testing.T) {
	assert.Empty(t, Distinct([]int64{}))
}
