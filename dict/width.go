package dict

import "fmt"

// Wire format constants.
const (
	LengthBits     = 24                     // bits of the original length field
	WidthBits      = 3                      // bits of the code width field
	HeaderBits     = LengthBits + WidthBits // fixed header size in bits
	LiteralBits    = 8                      // bits per table entry and per literal byte
	MinWidth       = 1                      // smallest code width
	MaxWidth       = 7                      // largest code width
	LiteralCode    = 0                      // code meaning "the byte is in the literal section"
	MaxInputLength = 1<<LengthBits - 1      // largest input the header can describe
)

// TableSize returns the number of symbol table slots for width, 2^width - 1.
func TableSize(width int) int {
	return 1<<width - 1
}

// Cost returns the encoded size in bits of an input of length bytes when covered
// of them are coded through the table at the given width.
//
//	Cost = header + table + one code per byte + 8 bits per literal
func Cost(width, length, covered int) int {
	return HeaderBits + TableSize(width)*LiteralBits + width*length + LiteralBits*(length-covered)
}

// ChooseWidth returns the width in [MinWidth, maxWidth] with the smallest Cost for
// an input of length bytes ranked by freq. Ties go to the smaller width.
//
// Panics if maxWidth is outside [MinWidth, MaxWidth].
func ChooseWidth(freq FrequencyTable, length, maxWidth int) int {
	if maxWidth < MinWidth || maxWidth > MaxWidth {
		panic(fmt.Sprintf("dict: max width %d outside [%d, %d]", maxWidth, MinWidth, MaxWidth))
	}

	bestWidth, bestCost := 0, 0
	for w := MinWidth; w <= maxWidth; w++ {
		cost := Cost(w, length, freq.Covered(TableSize(w)))
		if bestWidth == 0 || cost < bestCost {
			bestWidth, bestCost = w, cost
		}
	}

	if bestWidth == 0 {
		panic("dict: cost model found no viable width")
	}

	return bestWidth
}

// EncodedSize returns the size in bytes Encode produces for input with default options.
func EncodedSize(input []byte) int {
	freq := BuildFrequencyTable(input)
	width := ChooseWidth(freq, len(input), MaxWidth)
	bits := Cost(width, len(input), freq.Covered(TableSize(width)))

	return (bits + 7) / 8
}

func validWidth(width int) bool {
	return width >= MinWidth && width <= MaxWidth
}
