package huffman

import "testing"

func checkFull(t *testing.T, n *node) {
	t.Helper()
	if n == nil {
		return
	}
	if (n.left == nil) != (n.right == nil) {
		t.Fatal("tree has a node with exactly one child")
	}
	if n.isLeaf() {
		if n.value < 0 || n.value > 255 {
			t.Fatalf("leaf value %d out of range", n.value)
		}
		return
	}
	if n.weight != n.left.weight+n.right.weight {
		t.Fatalf("internal weight %d != %d + %d", n.weight, n.left.weight, n.right.weight)
	}
	checkFull(t, n.left)
	checkFull(t, n.right)
}

func TestTreeIsFull(t *testing.T) {
	freqs := CountFrequencies([]byte("huffman coding is simple"))
	checkFull(t, buildTree(freqs))
}

func TestTreeSingleSymbol(t *testing.T) {
	root := buildTree(map[byte]uint32{'a': 4})
	if root == nil || !root.isLeaf() {
		t.Fatal("single-entry map should yield a lone leaf root")
	}
	if root.value != 'a' || root.weight != 4 {
		t.Fatalf("leaf = (%d, %d), want ('a', 4)", root.value, root.weight)
	}
}

func TestTreeEmpty(t *testing.T) {
	if buildTree(nil) != nil {
		t.Fatal("empty map should yield a nil root")
	}
}

// All weights equal forces the tie-break rule on every merge; the
// resulting codes must still come out identical across runs.
func TestEqualWeightsDeterministic(t *testing.T) {
	freqs := make(map[byte]uint32)
	for b := byte(0); b < 16; b++ {
		freqs[b] = 3
	}
	first := buildCodes(buildTree(freqs))
	second := buildCodes(buildTree(freqs))
	for b, c := range first {
		if second[b] != c {
			t.Fatalf("code for byte %d differs across runs: %+v vs %+v", b, c, second[b])
		}
	}
}
