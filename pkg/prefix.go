package pkg

import "strings"

// Code is a root-to-leaf path: false descends left, true descends right.
type Code []bool

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, bit := range c {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// PrefixTable maps every symbol of a tree to its code.
type PrefixTable map[rune]Code

// NewPrefixTable derives the code of every leaf of t. The traversal uses an
// explicit stack, so the depth of the tree is not limited by the goroutine stack.
func NewPrefixTable(t *Tree) PrefixTable {
	type frame struct {
		node int
		path Code
	}

	table := make(PrefixTable, t.Leaves())
	stack := []frame{{node: t.Root()}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.Node(top.node)
		if n.IsLeaf() {
			table[n.Symbol] = top.path
			continue
		}

		// the right child is pushed first so the left subtree is visited first
		stack = append(stack,
			frame{node: n.Right, path: extend(top.path, true)},
			frame{node: n.Left, path: extend(top.path, false)},
		)
	}

	return table
}

func extend(path Code, bit bool) Code {
	next := make(Code, len(path)+1)
	copy(next, path)
	next[len(path)] = bit
	return next
}

// EncodedBits returns the number of bits needed to encode a text with the
// given frequencies.
func (p PrefixTable) EncodedBits(freqs FrequencyTable) uint64 {
	var bits uint64
	for symbol, count := range freqs {
		bits += count * uint64(len(p[symbol]))
	}

	return bits
}
