package pkg

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Archive layout:
//
//	<decimal bit count>\n
//	<frequency table as a JSON object>\n\n
//	<packed payload>
//
// JSON escapes control characters inside strings, so the table never contains
// a raw newline and the first "\n\n" after the bit count always ends the header.

var headerDelimiter = []byte("\n\n")

// keys are sorted, so equal tables always serialize to equal bytes
var jsonAPI = json.ConfigCompatibleWithStandardLibrary

type Archive struct {
	// Bits is the number of meaningful bits in Payload.
	Bits        uint64
	Frequencies FrequencyTable
	Payload     []byte
	// HeaderSize is the offset of Payload in the serialized archive.
	HeaderSize int
}

// MarshalArchive serializes a. HeaderSize is ignored.
func MarshalArchive(a Archive) ([]byte, error) {
	table := make(map[string]uint64, len(a.Frequencies))
	for symbol, count := range a.Frequencies {
		table[string(symbol)] = count
	}

	tableJSON, err := jsonAPI.Marshal(table)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 21+len(tableJSON)+len(headerDelimiter)+len(a.Payload))
	out = strconv.AppendUint(out, a.Bits, 10)
	out = append(out, '\n')
	out = append(out, tableJSON...)
	out = append(out, headerDelimiter...)
	out = append(out, a.Payload...)

	return out, nil
}

// UnmarshalArchive parses the header of data. The returned Payload shares
// memory with data.
func UnmarshalArchive(data []byte) (Archive, error) {
	newline := bytes.IndexByte(data, '\n')
	if newline == -1 {
		return Archive{}, fmt.Errorf("%w: missing bit count line", ErrCorruptArchive)
	}

	bits, err := strconv.ParseUint(uf.B2S(data[:newline]), 10, 64)
	if err != nil {
		return Archive{}, fmt.Errorf("%w: bad bit count: %v", ErrCorruptArchive, err)
	}

	rest := data[newline+1:]
	end := bytes.Index(rest, headerDelimiter)
	if end == -1 {
		return Archive{}, fmt.Errorf("%w: missing header delimiter", ErrCorruptArchive)
	}

	freqs, err := parseFrequencyTable(rest[:end])
	if err != nil {
		return Archive{}, err
	}

	headerSize := newline + 1 + end + len(headerDelimiter)

	return Archive{
		Bits:        bits,
		Frequencies: freqs,
		Payload:     data[headerSize:],
		HeaderSize:  headerSize,
	}, nil
}

func parseFrequencyTable(raw []byte) (FrequencyTable, error) {
	var table map[string]uint64
	if err := jsonAPI.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("%w: bad frequency table: %v", ErrCorruptArchive, err)
	}

	if len(table) < 2 {
		return nil, fmt.Errorf(
			"%w: frequency table has %d symbols, need at least 2",
			ErrCorruptArchive, len(table),
		)
	}

	freqs := make(FrequencyTable, len(table))
	for key, count := range table {
		symbol, size := utf8.DecodeRuneInString(key)
		if (symbol == utf8.RuneError && size <= 1) || size != len(key) {
			return nil, fmt.Errorf("%w: %q is not a single character", ErrCorruptArchive, key)
		}

		if count == 0 {
			return nil, fmt.Errorf("%w: symbol %q has zero count", ErrCorruptArchive, key)
		}

		freqs[symbol] = count
	}

	return freqs, nil
}
