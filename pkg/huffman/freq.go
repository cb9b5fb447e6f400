package huffman

// CountFrequencies scans data in one pass and returns the occurrence
// count of every byte value present. Absent bytes are not recorded.
func CountFrequencies(data []byte) map[byte]uint32 {
	var counts [256]uint32
	for _, b := range data {
		counts[b]++
	}
	freqs := make(map[byte]uint32)
	for v, c := range counts {
		if c > 0 {
			freqs[byte(v)] = c
		}
	}
	return freqs
}
