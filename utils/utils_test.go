package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsInt(t *testing.T) {
	vals := []int{3, 1, 4}
	assert.True(t, ContainsInt(1, vals))
	assert.True(t, ContainsInt(4, vals))
	assert.False(t, ContainsInt(2, vals))
	assert.False(t, ContainsInt(1, nil))
}

func TestFillSliceBool(t *testing.T) {
	s := make([]bool, 3)
	FillSliceBool(s, true)
	assert.Equal(t, []bool{true, true, true}, s)
	FillSliceBool(s[:2], false)
	assert.Equal(t, []bool{false, false, true}, s)
}

func TestMake1DBool(t *testing.T) {
	assert.Equal(t, []bool{true, false, true}, Make1DBool([]int{1, 0, 1}))
	assert.Equal(t, []bool{}, Make1DBool([]int{}))
}

func TestBool2Int(t *testing.T) {
	assert.Equal(t, []int{1, 0, 1}, Bool2Int([]bool{true, false, true}))
}

func TestCountTrue(t *testing.T) {
	assert.Equal(t, 2, CountTrue([]bool{true, false, true}))
	assert.Equal(t, 0, CountTrue(nil))
}

func TestOnIndices(t *testing.T) {
	assert.Equal(t, []int{0, 2}, OnIndices([]bool{true, false, true}))
	assert.Nil(t, OnIndices([]bool{false, false}))
}

func TestRoundPrec(t *testing.T) {
	assert.Equal(t, 1.2, RoundPrec(1.2000000001, 6))
	assert.Equal(t, 0.667, RoundPrec(2.0/3.0, 3))
	assert.Equal(t, -0.667, RoundPrec(-2.0/3.0, 3))
	assert.Equal(t, 3.0, RoundPrec(2.5, 0))
}
