package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/utils/uf"
)

// EncodeFile compresses the text file src and returns the path the archive
// was written to: <dir>/<stem><Extension> unless opts.Output is set.
func EncodeFile(src string, opts Options) (string, error) {
	raw, err := readInput(src)
	if err != nil {
		return "", err
	}

	archive, err := Encode(uf.B2S(raw))
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", src, err)
	}

	dest := opts.Output
	if dest == "" {
		dest = siblingPath(src, opts.Extension)
	}

	if err = writeAtomic(dest, archive, opts.perm()); err != nil {
		return "", err
	}

	opts.Log().Infof("encoded %s (%d bytes) into %s (%d bytes)", src, len(raw), dest, len(archive))
	return dest, nil
}

// DecodeFile restores the archive src and returns the path the text was
// written to: <dir>/<stem><DecodeSuffix> unless opts.Output is set.
func DecodeFile(src string, opts Options) (string, error) {
	raw, err := readInput(src)
	if err != nil {
		return "", err
	}

	text, err := Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", src, err)
	}

	dest := opts.Output
	if dest == "" {
		dest = siblingPath(src, opts.DecodeSuffix)
	}

	if err = writeAtomic(dest, uf.S2B(text), opts.perm()); err != nil {
		return "", err
	}

	opts.Log().Infof("decoded %s (%d bytes) into %s (%d bytes)", src, len(raw), dest, len(text))
	return dest, nil
}

type SymbolCode struct {
	Symbol rune
	Count  uint64
	Code   Code
}

// Summary describes an archive without decoding its payload.
type Summary struct {
	Bits        uint64
	HeaderSize  int
	PayloadSize int
	// Symbols is the length of the encoded text.
	Symbols uint64
	// Codes is sorted by symbol.
	Codes []SymbolCode
}

func Inspect(archivePath string) (Summary, error) {
	raw, err := readInput(archivePath)
	if err != nil {
		return Summary{}, err
	}

	archive, err := UnmarshalArchive(raw)
	if err != nil {
		return Summary{}, fmt.Errorf("inspect %s: %w", archivePath, err)
	}

	tree, err := BuildTree(archive.Frequencies)
	if err != nil {
		return Summary{}, fmt.Errorf("inspect %s: %w: %v", archivePath, ErrCorruptArchive, err)
	}

	table := NewPrefixTable(tree)
	codes := make([]SymbolCode, 0, len(table))
	for _, symbol := range archive.Frequencies.Symbols() {
		codes = append(codes, SymbolCode{
			Symbol: symbol,
			Count:  archive.Frequencies[symbol],
			Code:   table[symbol],
		})
	}

	return Summary{
		Bits:        archive.Bits,
		HeaderSize:  archive.HeaderSize,
		PayloadSize: len(archive.Payload),
		Symbols:     archive.Frequencies.Total(),
		Codes:       codes,
	}, nil
}

// SortByCodeLength orders codes from shortest to longest, keeping symbol order
// among codes of the same length.
func (s Summary) SortByCodeLength() []SymbolCode {
	codes := slices.Clone(s.Codes)
	slices.SortStableFunc(codes, func(a, b SymbolCode) int {
		return len(a.Code) - len(b.Code)
	})

	return codes
}

func readInput(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}

	return raw, nil
}

// siblingPath replaces the extension of path with suffix, keeping the directory.
func siblingPath(path, suffix string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}

	return filepath.Join(filepath.Dir(path), stem+suffix)
}

// writeAtomic writes data next to dest under a random name and renames it
// onto dest, so dest is either left untouched or fully written.
func writeAtomic(dest string, data []byte, perm os.FileMode) error {
	tmp := dest + "." + uniuri.NewLen(8) + ".tmp"

	if err := os.WriteFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrOutputWriteFailure, err)
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrOutputWriteFailure, err)
	}

	return nil
}
