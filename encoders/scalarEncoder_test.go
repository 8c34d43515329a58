package encoders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScalarEncoderValidation(t *testing.T) {
	assert.Panics(t, func() { NewScalarEncoder(0, 10, 0, 1) })
	assert.Panics(t, func() { NewScalarEncoder(5, 4, 0, 1) })
	assert.Panics(t, func() { NewScalarEncoder(3, 10, 1, 1) })
	assert.NotPanics(t, func() { NewScalarEncoder(3, 10, 0, 1) })
}

func TestScalarEncoderBlockPlacement(t *testing.T) {
	se := NewScalarEncoder(3, 10, 0, 10)

	assert.Equal(t, []bool{
		true, true, true, false, false, false, false, false, false, false,
	}, se.Encode(0))

	assert.Equal(t, []bool{
		false, false, false, false, false, false, false, true, true, true,
	}, se.Encode(10))

	//nearby values share output bits
	low := se.Encode(4)
	high := se.Encode(5)
	shared := 0
	for i := range low {
		if low[i] && high[i] {
			shared++
		}
	}
	assert.True(t, shared > 0)
}

func TestScalarEncoderOutOfRange(t *testing.T) {
	se := NewScalarEncoder(2, 8, 0, 4)
	assert.Panics(t, func() { se.Encode(-1) })
	assert.Panics(t, func() { se.Encode(5) })

	se.Clip = true
	assert.Equal(t, se.Encode(0), se.Encode(-1))
	assert.Equal(t, se.Encode(4), se.Encode(5))
}

func TestScalarEncoderEncodeInto(t *testing.T) {
	se := NewScalarEncoder(2, 6, 0, 1)

	output := make([]bool, 6)
	assert.Panics(t, func() { se.EncodeInto(0, output[:5]) })

	//stale bits are cleared before encoding
	for i := range output {
		output[i] = true
	}
	se.EncodeInto(0, output)
	assert.Equal(t, []bool{true, true, false, false, false, false}, output)
}
