package encoders

import (
	"fmt"
)

/*
 A category encoder encodes a value from a fixed list of categories into
an array of bits. Each category owns a disjoint block of Width bits, so
different categories never overlap in the output.
*/
type CategoryEncoder struct {
	//Number of 1 bits set for an encoded category.
	Width int
	//Total number of bits in the output.
	Size int

	indices map[string]int
}

func NewCategoryEncoder(width int, categories []string) *CategoryEncoder {
	if width < 1 {
		panic("Width must be at least 1")
	}
	if len(categories) == 0 {
		panic("Categories must not be empty")
	}
	ce := &CategoryEncoder{
		Width:   width,
		Size:    width * len(categories),
		indices: make(map[string]int, len(categories)),
	}
	for i, cat := range categories {
		if _, ok := ce.indices[cat]; ok {
			panic(fmt.Sprintf("Duplicate category %q", cat))
		}
		ce.indices[cat] = i
	}
	return ce
}

//Encode the category into a new bit slice of length Size. Panics if
//the category was not declared at construction.
func (ce *CategoryEncoder) Encode(category string) []bool {
	output := make([]bool, ce.Size)
	ce.EncodeInto(category, output)
	return output
}

//Encode the category into the provided bit slice, which must have
//length Size.
func (ce *CategoryEncoder) EncodeInto(category string, output []bool) {
	if len(output) != ce.Size {
		panic("Output length must match encoder size")
	}
	index, ok := ce.indices[category]
	if !ok {
		panic(fmt.Sprintf("Unknown category %q", category))
	}
	for i := range output {
		output[i] = false
	}
	for i := index * ce.Width; i < (index+1)*ce.Width; i++ {
		output[i] = true
	}
}
