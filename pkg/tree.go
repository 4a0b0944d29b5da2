package pkg

import (
	"container/heap"
	"fmt"
)

// Huffman tree construction. The decoder rebuilds the tree from the
// frequency table stored in the archive, so the build must be fully
// deterministic for a given table.

const noChild = -1

// Node is a node of a Tree. Leaves carry a symbol and have no children;
// internal nodes carry the indices of both children in the tree arena.
type Node struct {
	Weight uint64
	Symbol rune
	Left   int
	Right  int
	// ID is the creation order of the node. Leaves are numbered first,
	// in ascending symbol order.
	ID int
}

func (n Node) IsLeaf() bool {
	return n.Left == noChild && n.Right == noChild
}

// Tree is an immutable Huffman tree. All nodes live in a single arena and
// refer to each other by index.
type Tree struct {
	nodes []Node
	root  int
}

func (t *Tree) Root() int { return t.root }

func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len returns the total number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Leaves returns the number of symbols the tree encodes.
func (t *Tree) Leaves() int { return (len(t.nodes) + 1) / 2 }

// nodeQueue is a min-heap of arena indices. The node extracted first is the
// one with the smallest weight; ties are broken by before.
type nodeQueue struct {
	nodes []Node
	items []int
}

func (q nodeQueue) Len() int           { return len(q.items) }
func (q nodeQueue) Less(i, j int) bool { return before(q.nodes[q.items[i]], q.nodes[q.items[j]]) }
func (q nodeQueue) Swap(i, j int)      { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *nodeQueue) Push(x interface{}) {
	q.items = append(q.items, x.(int))
}

func (q *nodeQueue) Pop() interface{} {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}

// before reports whether a must leave the queue before b.
//
// On equal weight: of two leaves, the larger code point goes first;
// a leaf goes before an internal node; of two internal nodes, the one
// created earlier goes first. Archives written by earlier versions
// depend on exactly this order.
func before(a, b Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	switch aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf(); {
	case aLeaf && bLeaf:
		return a.Symbol > b.Symbol
	case aLeaf:
		return true
	case bLeaf:
		return false
	default:
		return a.ID < b.ID
	}
}

// BuildTree builds the Huffman tree for freqs. At least two symbols are
// required, otherwise ErrAlphabetTooSmall is returned.
func BuildTree(freqs FrequencyTable) (*Tree, error) {
	if len(freqs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrAlphabetTooSmall, len(freqs))
	}

	q := &nodeQueue{
		nodes: make([]Node, 0, 2*len(freqs)-1),
		items: make([]int, 0, len(freqs)),
	}

	for _, symbol := range freqs.Symbols() {
		weight := freqs[symbol]
		if weight == 0 {
			return nil, fmt.Errorf("symbol %q has zero weight", symbol)
		}

		id := len(q.nodes)
		q.nodes = append(q.nodes, Node{
			Weight: weight,
			Symbol: symbol,
			Left:   noChild,
			Right:  noChild,
			ID:     id,
		})
		q.items = append(q.items, id)
	}

	heap.Init(q)

	for q.Len() > 1 {
		left := heap.Pop(q).(int)
		right := heap.Pop(q).(int)
		id := len(q.nodes)
		q.nodes = append(q.nodes, Node{
			Weight: q.nodes[left].Weight + q.nodes[right].Weight,
			Left:   left,
			Right:  right,
			ID:     id,
		})
		heap.Push(q, id)
	}

	return &Tree{
		nodes: q.nodes,
		root:  heap.Pop(q).(int),
	}, nil
}
