package pkg

import "slices"

// FrequencyTable maps every distinct symbol of a text to the number of times
// it occurs.
type FrequencyTable map[rune]uint64

// CountFrequencies counts symbol occurrences of text, one symbol per Unicode
// scalar value.
func CountFrequencies(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, r := range text {
		freqs[r]++
	}

	return freqs
}

// Symbols returns the table's symbols in ascending code point order.
func (f FrequencyTable) Symbols() []rune {
	symbols := make([]rune, 0, len(f))
	for r := range f {
		symbols = append(symbols, r)
	}
	slices.Sort(symbols)

	return symbols
}

// Total is the sum of all counts, i.e. the length of the counted text in symbols.
func (f FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range f {
		total += count
	}

	return total
}
