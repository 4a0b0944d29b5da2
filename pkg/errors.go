package pkg

import "errors"

var (
	ErrInputUnavailable   = errors.New("input is unavailable")
	ErrNotText            = errors.New("input is not valid UTF-8 text")
	ErrAlphabetTooSmall   = errors.New("cannot build huffman tree for less than 2 unique characters")
	ErrCorruptArchive     = errors.New("archive is corrupt")
	ErrOutputWriteFailure = errors.New("cannot write output")
)
