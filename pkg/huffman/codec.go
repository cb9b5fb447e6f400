// Package huffman implements a self-contained static Huffman codec
// for arbitrary byte streams. Compress writes a self-describing
// header followed by the packed payload; Decompress rebuilds the
// identical tree from the header's frequency table and inverts the
// encoding byte-for-byte.
//
// Wire format, all integers little-endian:
//
//	symbol count                     uint16
//	per symbol, ascending by value:  value (1 byte), frequency (uint32)
//	pad-bit count                    1 byte (0-7)
//	packed payload                   codes concatenated MSB-first,
//	                                 zero-padded to the byte boundary
//
// Empty input compresses to empty output with no header at all.
package huffman

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

// ErrFormat reports an encoded stream whose header or payload is
// inconsistent with the wire format. It is fatal for that decode
// call; no partial result is returned.
var ErrFormat = errors.New("huffman: invalid format")

// Compress encodes data into a header plus packed payload. It never
// fails: any byte sequence is valid input, and empty input maps to
// empty output.
func Compress(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	freqs := CountFrequencies(data)
	root := buildTree(freqs)
	codes := buildCodes(root)

	// Payload size and pad count are known before packing starts.
	var lookup [256]code
	var totalBits uint64
	for b, c := range codes {
		lookup[b] = c
		totalBits += uint64(freqs[b]) * uint64(c.length)
	}
	padding := byte((8 - totalBits%8) % 8)

	out := bytes.NewBuffer(make([]byte, 0, headerLen(len(freqs))+int((totalBits+7)/8)))
	writeHeader(out, freqs, padding)

	var acc uint64
	var nbits int
	for _, b := range data {
		c := lookup[b]
		acc = acc<<c.length | c.bits
		nbits += c.length
		for nbits >= 8 {
			nbits -= 8
			out.WriteByte(byte(acc >> nbits))
		}
		acc &= 1<<nbits - 1
	}
	if nbits > 0 {
		out.WriteByte(byte(acc << (8 - nbits)))
	}
	return out.Bytes()
}

// Decompress inverts Compress. It returns ErrFormat if the header is
// truncated or malformed, or if the payload is inconsistent with the
// header's declared frequencies and pad count.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	freqs, padding, payload, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if len(freqs) == 0 {
		if len(payload) != 0 {
			return nil, fmt.Errorf("%w: payload after empty symbol table", ErrFormat)
		}
		return nil, nil
	}

	payloadBits := len(payload)*8 - int(padding)
	if payloadBits < 0 {
		return nil, fmt.Errorf("%w: pad count exceeds payload", ErrFormat)
	}
	var expected uint64
	for _, f := range freqs {
		expected += uint64(f)
	}
	// Every emission consumes at least one bit, so a payload shorter
	// than the declared byte count can never decode fully.
	if expected > uint64(payloadBits) {
		return nil, fmt.Errorf("%w: payload shorter than header implies", ErrFormat)
	}

	root := buildTree(freqs)

	// Single-symbol alphabet: the tree is a lone leaf with no edges
	// to walk. The encoder spent one "0" bit per byte, so the bit
	// count must match the stored frequency exactly.
	if root.isLeaf() {
		if uint64(payloadBits) != expected {
			return nil, fmt.Errorf("%w: single-symbol payload has %d bits, header declares %d bytes", ErrFormat, payloadBits, expected)
		}
		return bytes.Repeat([]byte{byte(root.value)}, int(expected)), nil
	}

	out := make([]byte, 0, expected)
	br := bitReader{data: payload, bits: payloadBits}
	cur := root
	for br.pos < br.bits {
		if br.readBit() {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur.isLeaf() {
			out = append(out, byte(cur.value))
			cur = root
		}
	}
	if cur != root {
		return nil, fmt.Errorf("%w: payload ends mid-code", ErrFormat)
	}
	if uint64(len(out)) != expected {
		return nil, fmt.Errorf("%w: decoded %d bytes, header declares %d", ErrFormat, len(out), expected)
	}
	return out, nil
}

func headerLen(symbols int) int {
	return 2 + symbols*5 + 1
}

func writeHeader(buf *bytes.Buffer, freqs map[byte]uint32, padding byte) {
	values := make([]int, 0, len(freqs))
	for b := range freqs {
		values = append(values, int(b))
	}
	sort.Ints(values)

	var scratch [4]byte
	binary.LittleEndian.PutUint16(scratch[:2], uint16(len(values)))
	buf.Write(scratch[:2])
	for _, v := range values {
		buf.WriteByte(byte(v))
		binary.LittleEndian.PutUint32(scratch[:], freqs[byte(v)])
		buf.Write(scratch[:])
	}
	buf.WriteByte(padding)
}

// parseHeader returns the frequency table, the pad-bit count and the
// remaining payload bytes.
func parseHeader(data []byte) (map[byte]uint32, byte, []byte, error) {
	if len(data) < headerLen(0) {
		return nil, 0, nil, fmt.Errorf("%w: truncated header", ErrFormat)
	}
	count := int(binary.LittleEndian.Uint16(data[:2]))
	if count > 256 {
		return nil, 0, nil, fmt.Errorf("%w: symbol count %d out of range", ErrFormat, count)
	}
	if len(data) < headerLen(count) {
		return nil, 0, nil, fmt.Errorf("%w: header declares %d symbols, not enough bytes", ErrFormat, count)
	}

	freqs := make(map[byte]uint32, count)
	off := 2
	prev := -1
	for i := 0; i < count; i++ {
		v := int(data[off])
		if v <= prev {
			return nil, 0, nil, fmt.Errorf("%w: symbol table not in ascending order", ErrFormat)
		}
		f := binary.LittleEndian.Uint32(data[off+1 : off+5])
		if f == 0 {
			return nil, 0, nil, fmt.Errorf("%w: zero frequency for symbol %d", ErrFormat, v)
		}
		freqs[byte(v)] = f
		prev = v
		off += 5
	}
	padding := data[off]
	if padding > 7 {
		return nil, 0, nil, fmt.Errorf("%w: pad count %d out of range", ErrFormat, padding)
	}
	return freqs, padding, data[off+1:], nil
}

// bitReader yields the bits of a packed payload MSB-first, stopping
// before the trailing pad bits.
type bitReader struct {
	data []byte
	bits int
	pos  int
}

// readBit must not be called past bits; Decompress checks the cursor
// before every call.
func (br *bitReader) readBit() bool {
	v := br.data[br.pos/8]>>(7-uint(br.pos%8))&1 == 1
	br.pos++
	return v
}
