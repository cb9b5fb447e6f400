package huffman

import (
	"container/heap"
	"sort"
)

// node is one node of the Huffman tree. A leaf carries a byte value;
// an internal node carries only the combined weight of its two
// children. The tree is always full: no node has exactly one child.
type node struct {
	value       int // 0-255 for leaves, -1 for internal nodes
	weight      uint64
	order       int // tie-break rank, see buildTree
	left, right *node
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].order < h[j].order
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// buildTree runs the standard greedy Huffman construction: pop the two
// lightest nodes, merge them under a new internal node, repeat until
// one root remains. Equal weights are ordered by rank: leaves get
// their position in ascending byte order, merged nodes get increasing
// sequence numbers. The rule has no external significance, but both
// the compressor and the decompressor rebuild from the same frequency
// map, so running the same rule on both sides yields identical codes.
//
// A single-entry map yields a lone leaf as root; generating a code for
// it is the caller's special case. An empty map yields nil.
func buildTree(freqs map[byte]uint32) *node {
	if len(freqs) == 0 {
		return nil
	}
	values := make([]int, 0, len(freqs))
	for b := range freqs {
		values = append(values, int(b))
	}
	sort.Ints(values)

	h := make(nodeHeap, 0, len(values))
	for i, v := range values {
		h = append(h, &node{value: v, weight: uint64(freqs[byte(v)]), order: i})
	}
	heap.Init(&h)

	seq := len(values)
	for h.Len() > 1 {
		a := heap.Pop(&h).(*node) // left
		b := heap.Pop(&h).(*node) // right
		heap.Push(&h, &node{value: -1, weight: a.weight + b.weight, order: seq, left: a, right: b})
		seq++
	}
	return heap.Pop(&h).(*node)
}
