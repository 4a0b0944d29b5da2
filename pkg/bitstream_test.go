package pkg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func bitstring(data []byte) string {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(fmt.Sprintf("%08b", b))
	}

	return sb.String()
}

func parseBits(s string) []bool {
	bits := make([]bool, 0, len(s))
	for _, c := range s {
		bits = append(bits, c == '1')
	}

	return bits
}

func TestBitWriter(t *testing.T) {
	tcs := []struct {
		bits string
		want string
	}{
		{"", ""},
		{"1", "10000000"},
		{"101", "10100000"},
		{"11110000", "11110000"},
		{"000000001", "00000000:10000000"},
		{"1010101011001100111", "10101010:11001100:11100000"},
	}

	for _, tc := range tcs {
		t.Run(tc.bits, func(t *testing.T) {
			bw := NewBitWriter()
			for _, bit := range parseBits(tc.bits) {
				require.NoError(t, bw.AddBit(bit))
			}
			require.NoError(t, bw.Flush())
			require.Equal(t, uint64(len(tc.bits)), bw.Bits())
			require.Equal(t, tc.want, bitstring(bw.Bytes()))
		})
	}

	t.Run("complete bytes before flush", func(t *testing.T) {
		bw := NewBitWriter()
		require.NoError(t, bw.AddCode(Code(parseBits("111111110"))))
		require.Equal(t, "11111111", bitstring(bw.Bytes()))
		require.Equal(t, uint64(9), bw.Bits())

		require.NoError(t, bw.Flush())
		require.Equal(t, "11111111:00000000", bitstring(bw.Bytes()))
		require.Equal(t, uint64(9), bw.Bits())
	})
}

func TestWalkBits(t *testing.T) {
	// a=1 b=0
	twoSymbols, err := BuildTree(CountFrequencies("aaab"))
	require.NoError(t, err)
	// d=00 c=01 b=10 a=11
	fourSymbols, err := BuildTree(CountFrequencies("abcd"))
	require.NoError(t, err)

	t.Run("decode", func(t *testing.T) {
		text, err := WalkBits(twoSymbols, []byte{0b11100000}, 4)
		require.NoError(t, err)
		require.Equal(t, "aaab", text)

		text, err = WalkBits(fourSymbols, []byte{0b11100100, 0b11000000}, 10)
		require.NoError(t, err)
		require.Equal(t, "abcda", text)
	})

	t.Run("pad bits are ignored", func(t *testing.T) {
		text, err := WalkBits(twoSymbols, []byte{0b11101111}, 4)
		require.NoError(t, err)
		require.Equal(t, "aaab", text)
	})

	t.Run("zero bits", func(t *testing.T) {
		text, err := WalkBits(twoSymbols, nil, 0)
		require.NoError(t, err)
		require.Empty(t, text)
	})

	t.Run("payload too short", func(t *testing.T) {
		_, err := WalkBits(twoSymbols, []byte{0xff}, 9)
		require.ErrorIs(t, err, ErrCorruptArchive)
	})

	t.Run("payload too long", func(t *testing.T) {
		_, err := WalkBits(twoSymbols, []byte{0xff, 0x00}, 4)
		require.ErrorIs(t, err, ErrCorruptArchive)
	})

	t.Run("ends inside a code", func(t *testing.T) {
		_, err := WalkBits(fourSymbols, []byte{0b11100000}, 3)
		require.ErrorIs(t, err, ErrCorruptArchive)
	})

	t.Run("missing child", func(t *testing.T) {
		broken := &Tree{
			nodes: []Node{
				{Weight: 1, Symbol: 'a', Left: noChild, Right: noChild},
				{Weight: 1, Left: 0, Right: noChild, ID: 1},
			},
			root: 1,
		}
		_, err := WalkBits(broken, []byte{0b10000000}, 1)
		require.ErrorIs(t, err, ErrCorruptArchive)
	})
}
