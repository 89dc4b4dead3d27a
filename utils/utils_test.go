package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo1(t *testing.T) {
	assert.Equal(t, 1.3, RoundTo1(4.0/3.0))
	assert.Equal(t, -0.7, RoundTo1(-2.0/3.0))
	assert.Equal(t, 2.5, RoundTo1(2.45))
	assert.Equal(t, 0.0, RoundTo1(0))
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]int{1, 2, 3, 4, 5}, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, []int{2, 4}, groups[true])
	assert.Equal(t, []int{1, 3, 5}, groups[false])
}
