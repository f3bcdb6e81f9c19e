package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Encoder maps each Symbol to its Huffman code and writes coded bitstreams.
type Encoder struct {
	codes   [NumSymbols]Code
	minSize int
	maxSize int
}

// NewEncoder is a convenience function that constructs and initializes an
// Encoder.
func NewEncoder(t *Tree) *Encoder {
	e := new(Encoder)
	e.Init(t)
	return e
}

// Init initializes this Encoder with the code table of the given Tree.  Each
// leaf's code is the path from the root to that leaf: bit 0 for every step
// to a left child and bit 1 for every step to a right child.
func (e *Encoder) Init(t *Tree) {
	var codes [NumSymbols]Code
	var minSize, maxSize int
	var hasMinMax bool

	t.walk(func(id NodeID, hc Code) {
		if !t.IsLeaf(id) {
			return
		}

		symbol := t.Symbol(id)
		assert.Assertf(codes[symbol].Size == 0, "symbol %v appears twice in tree", symbol)
		assert.Assertf(hc.Size != 0, "leaf %v at root of tree", symbol)
		codes[symbol] = hc

		size := hc.Size
		if !hasMinMax {
			hasMinMax = true
			minSize = size
			maxSize = size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	})

	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode returns the code for a Symbol.  It panics if the Symbol has no
// code, since that means the code table was built for different data.
func (e *Encoder) Encode(symbol Symbol) Code {
	assert.Assertf(symbol.IsValid(), "invalid symbol %d", int(symbol))
	hc := e.codes[symbol]
	assert.Assertf(hc.Size != 0, "symbol %v has no code", symbol)
	return hc
}

// Has returns true if the Symbol has a code.
func (e *Encoder) Has(symbol Symbol) bool {
	return symbol.IsValid() && e.codes[symbol].Size != 0
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() int {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() int {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, or 0 for symbols without a code.
func (e *Encoder) SizeBySymbol() []int {
	out := make([]int, NumSymbols)
	for symbol := range e.codes {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// EncodedBits returns the exact length in bits of the bitstream for data
// with the given frequencies, including the EndOfStream code.
func (e *Encoder) EncodedBits(ft *FrequencyTable) uint64 {
	n := uint64(e.Encode(EndOfStream).Size)
	for b, freq := range ft {
		if freq != 0 {
			n += freq * uint64(e.Encode(ByteSymbol(byte(b))).Size)
		}
	}
	return n
}

// EncodedSize returns the length in bytes of the packed bitstream for data
// with the given frequencies.
func (e *Encoder) EncodedSize(ft *FrequencyTable) uint64 {
	return bytesForBits(e.EncodedBits(ft))
}

// EncodeTo writes the code for each byte of data, followed by the code for
// EndOfStream, to w.  The bits are packed most significant bit first, and
// the final byte is padded with zero bits.
func (e *Encoder) EncodeTo(w io.Writer, data []byte) error {
	bw := bitio.NewWriter(w)
	for _, b := range data {
		if err := e.Encode(ByteSymbol(b)).writeTo(bw); err != nil {
			return err
		}
	}
	if err := e.Encode(EndOfStream).writeTo(bw); err != nil {
		return err
	}
	return bw.Close()
}

// EncodeBytes returns the packed bitstream for data.
func (e *Encoder) EncodeBytes(data []byte) []byte {
	var buf bytes.Buffer
	err := e.EncodeTo(&buf, data)
	assert.Assertf(err == nil, "bytes.Buffer write failed: %v", err)
	return buf.Bytes()
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a code are omitted.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := range e.codes {
		hc := e.codes[symbol]
		if hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", Symbol(symbol), hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
