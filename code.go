package huffman

import (
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// maxBitsPerCode is the depth of the deepest possible leaf in a tree over
// NumSymbols leaves.
const maxBitsPerCode = NumSymbols - 1

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size int

	// words holds the actual values of the bits.  Bit i of the sequence is
	// stored in words[i/32], counting from the most significant end.
	words [(maxBitsPerCode + 31) / 32]uint32
}

// MakeCode is a convenience function that constructs a Code of up to 32
// bits.  The most significant of the low size bits of bits is the first bit.
func MakeCode(size int, bits uint32) Code {
	assert.Assertf(size >= 0 && size <= 32, "size %d out of range [0, 32]", size)
	var hc Code
	if size != 0 {
		hc.Size = size
		hc.words[0] = bits << (32 - size)
	}
	return hc
}

// Bit returns the i'th bit of this Code, as 0 or 1.
func (hc Code) Bit(i int) uint {
	assert.Assertf(i >= 0 && i < hc.Size, "bit index %d out of range [0, %d)", i, hc.Size)
	return uint(hc.words[i/32]>>(31-i%32)) & 1
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < maxBitsPerCode, "code longer than %d bits", maxBitsPerCode)
	if bit != 0 {
		hc.words[hc.Size/32] |= 1 << (31 - hc.Size%32)
	}
	hc.Size++
	return hc
}

// HasPrefix returns true if prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := 0; i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(hc.Size)
	for i := 0; i < hc.Size; i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

func (hc Code) writeTo(w *bitio.Writer) error {
	remaining := hc.Size
	for i := 0; remaining > 0; i++ {
		n := remaining
		if n > 32 {
			n = 32
		}
		if err := w.WriteBits(uint64(hc.words[i]>>(32-n)), uint8(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
