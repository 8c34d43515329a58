package encoders

import (
	"fmt"
)

/*
 A scalar encoder encodes a numeric (floating point) value into an array
of bits. The output is 0's except for a contiguous block of 1's. The
location of this contiguous block varies continuously with the input
value, so nearby values share bits.

The encoding is linear. If you want a nonlinear encoding, transform the
scalar (e.g. by applying a logarithm function) before encoding.
*/
type ScalarEncoder struct {
	//Number of 1 bits set for an encoded value.
	Width int
	//Total number of bits in the output.
	Size   int
	MinVal float64
	MaxVal float64
	//If true, out-of-range inputs are clipped into range instead of
	//panicking.
	Clip bool

	buckets int
}

func NewScalarEncoder(width, size int, minVal, maxVal float64) *ScalarEncoder {
	if width < 1 {
		panic("Width must be at least 1")
	}
	if size < width {
		panic("Size must be at least Width")
	}
	if maxVal <= minVal {
		panic("MaxVal must be greater than MinVal")
	}
	se := &ScalarEncoder{
		Width:  width,
		Size:   size,
		MinVal: minVal,
		MaxVal: maxVal,
	}
	se.buckets = size - width + 1
	return se
}

//Returns the index of the first on bit for the input value.
func (se *ScalarEncoder) getFirstOnBit(input float64) int {
	if input < se.MinVal {
		if !se.Clip {
			panic(fmt.Sprintf("Input %v less than range %v - %v", input, se.MinVal, se.MaxVal))
		}
		input = se.MinVal
	}
	if input > se.MaxVal {
		if !se.Clip {
			panic(fmt.Sprintf("Input %v greater than range %v - %v", input, se.MinVal, se.MaxVal))
		}
		input = se.MaxVal
	}

	bucket := int(float64(se.buckets) * (input - se.MinVal) / (se.MaxVal - se.MinVal))
	if bucket > se.buckets-1 {
		bucket = se.buckets - 1
	}
	return bucket
}

//Encode the value into a new bit slice of length Size.
func (se *ScalarEncoder) Encode(input float64) []bool {
	output := make([]bool, se.Size)
	se.EncodeInto(input, output)
	return output
}

//Encode the value into the provided bit slice, which must have length
//Size. Bits outside the encoded block are cleared.
func (se *ScalarEncoder) EncodeInto(input float64, output []bool) {
	if len(output) != se.Size {
		panic("Output length must match encoder size")
	}
	for i := range output {
		output[i] = false
	}
	first := se.getFirstOnBit(input)
	for i := first; i < first+se.Width; i++ {
		output[i] = true
	}
}
