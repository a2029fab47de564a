package dict

import (
	"cmp"
	"slices"
)

// Symbol is a byte value and the number of times it occurs in the input.
type Symbol struct {
	Value byte
	Count int
}

// FrequencyTable lists the distinct byte values of an input ranked by
// descending count. Values with equal counts keep their discovery order.
type FrequencyTable []Symbol

// BuildFrequencyTable scans input once and returns its ranked frequency table.
// A value enters the table the first time it is seen.
func BuildFrequencyTable(input []byte) FrequencyTable {
	var index [256]int // position + 1 of each value in table, 0 when unseen

	table := make(FrequencyTable, 0, 32)
	for _, c := range input {
		pos := index[c]
		if pos == 0 {
			table = append(table, Symbol{Value: c})
			pos = len(table)
			index[c] = pos
		}
		table[pos-1].Count++
	}

	slices.SortStableFunc(table, func(a, b Symbol) int {
		return cmp.Compare(b.Count, a.Count)
	})

	return table
}

// Covered returns the total count of the top n symbols.
func (t FrequencyTable) Covered(n int) int {
	covered := 0
	for i := 0; i < n && i < len(t); i++ {
		covered += t[i].Count
	}

	return covered
}

// Symbols returns the symbol table for width: exactly TableSize(width) values in
// rank order, zero padded when the input has fewer distinct values.
func (t FrequencyTable) Symbols(width int) []byte {
	out := make([]byte, TableSize(width))
	for i := 0; i < len(out) && i < len(t); i++ {
		out[i] = t[i].Value
	}

	return out
}

// Codes maps every byte value to its code for width: rank + 1 when the value is
// among the top TableSize(width) symbols, the literal sentinel 0 otherwise.
func (t FrequencyTable) Codes(width int) [256]byte {
	var codes [256]byte
	for i := 0; i < TableSize(width) && i < len(t); i++ {
		codes[t[i].Value] = byte(i + 1)
	}

	return codes
}

// Rank returns the 0-based rank of value among the first limit symbols.
func (t FrequencyTable) Rank(value byte, limit int) (int, bool) {
	for i := 0; i < limit && i < len(t); i++ {
		if t[i].Value == value {
			return i, true
		}
	}

	return 0, false
}
