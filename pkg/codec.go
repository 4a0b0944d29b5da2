package pkg

import (
	"fmt"
	"maps"
	"unicode/utf8"
)

// Encode compresses text into a self-describing archive.
func Encode(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, ErrNotText
	}

	freqs := CountFrequencies(text)
	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	codes := NewPrefixTable(tree)
	bw := NewBitWriter()
	for _, symbol := range text {
		if err = bw.AddCode(codes[symbol]); err != nil {
			return nil, err
		}
	}

	if err = bw.Flush(); err != nil {
		return nil, err
	}

	return MarshalArchive(Archive{
		Bits:        bw.Bits(),
		Frequencies: freqs,
		Payload:     bw.Bytes(),
	})
}

// Decode restores the text an archive was produced from.
func Decode(data []byte) (string, error) {
	archive, err := UnmarshalArchive(data)
	if err != nil {
		return "", err
	}

	tree, err := BuildTree(archive.Frequencies)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}

	if bits := NewPrefixTable(tree).EncodedBits(archive.Frequencies); bits != archive.Bits {
		return "", fmt.Errorf(
			"%w: header declares %d bits, frequency table implies %d",
			ErrCorruptArchive, archive.Bits, bits,
		)
	}

	text, err := WalkBits(tree, archive.Payload, archive.Bits)
	if err != nil {
		return "", err
	}

	if !maps.Equal(CountFrequencies(text), archive.Frequencies) {
		return "", fmt.Errorf("%w: decoded text does not match the frequency table", ErrCorruptArchive)
	}

	return text, nil
}
