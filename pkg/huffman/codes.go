package huffman

// code is one Huffman code: the low length bits of bits, most
// significant bit first. Code length is bounded by the tree height,
// which the uint32 frequency width keeps well under 64.
type code struct {
	bits   uint64
	length int
}

// buildCodes walks the tree depth first, appending 0 on a left edge
// and 1 on a right edge, and records a code at every leaf. A root
// that is itself a leaf (single-symbol alphabet) gets the one-bit
// code "0": an empty code would leave the decoder nothing to consume.
func buildCodes(root *node) map[byte]code {
	codes := make(map[byte]code)
	if root == nil {
		return codes
	}
	var walk func(n *node, bits uint64, length int)
	walk = func(n *node, bits uint64, length int) {
		if n.isLeaf() {
			if length == 0 {
				codes[byte(n.value)] = code{bits: 0, length: 1}
			} else {
				codes[byte(n.value)] = code{bits: bits, length: length}
			}
			return
		}
		walk(n.left, bits<<1, length+1)
		walk(n.right, bits<<1|1, length+1)
	}
	walk(root, 0, 0)
	return codes
}
