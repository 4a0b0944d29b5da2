package pkg

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/icza/bitio"
	"github.com/indigo-web/utils/uf"
)

// BitWriter packs bits most-significant first into bytes and counts them.
// The last byte is padded with zeros on Flush; pad bits are not counted.
type BitWriter struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	bits uint64
}

func NewBitWriter() *BitWriter {
	bw := new(BitWriter)
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

func (b *BitWriter) AddBit(bit bool) error {
	if err := b.w.WriteBool(bit); err != nil {
		return err
	}

	b.bits++
	return nil
}

func (b *BitWriter) AddCode(code Code) error {
	for _, bit := range code {
		if err := b.AddBit(bit); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes out the partially filled last byte, if any. The writer must
// not be used for writing afterwards.
func (b *BitWriter) Flush() error {
	return b.w.Close()
}

// Bits returns the number of bits written so far, padding excluded.
func (b *BitWriter) Bits() uint64 {
	return b.bits
}

// Bytes returns the packed bytes. Only complete bytes are included until
// Flush is called.
func (b *BitWriter) Bytes() []byte {
	return b.buf.Bytes()
}

// WalkBits decodes exactly bits bits of payload by walking t from the root,
// emitting a symbol on every leaf. Pad bits after the last counted bit are
// never looked at.
func WalkBits(t *Tree, payload []byte, bits uint64) (string, error) {
	if want := (bits + 7) / 8; uint64(len(payload)) != want {
		return "", fmt.Errorf(
			"%w: %d bits need %d payload bytes, got %d",
			ErrCorruptArchive, bits, want, len(payload),
		)
	}

	r := bitio.NewReader(bytes.NewReader(payload))
	out := make([]byte, 0, len(payload)*2)
	node := t.Root()

	for i := uint64(0); i < bits; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("%w: bit %d: %v", ErrCorruptArchive, i, err)
		}

		current := t.Node(node)
		next := current.Left
		if bit {
			next = current.Right
		}

		if next == noChild {
			return "", fmt.Errorf("%w: bit %d leads to a missing node", ErrCorruptArchive, i)
		}

		if child := t.Node(next); child.IsLeaf() {
			out = utf8.AppendRune(out, child.Symbol)
			node = t.Root()
		} else {
			node = next
		}
	}

	if node != t.Root() {
		return "", fmt.Errorf("%w: payload ends in the middle of a code", ErrCorruptArchive)
	}

	return uf.B2S(out), nil
}
