package huffman

import (
	"strconv"
)

// Symbol represents a symbol in the compressor's alphabet: a byte value in
// the range 0..255, or EndOfStream.  Negative symbols are not valid.
type Symbol int16

// EndOfStream is the symbol that terminates every coded bitstream.
const EndOfStream = Symbol(256)

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = EndOfStream

// NumSymbols is the size of the alphabet.
const NumSymbols = int(MaxSymbol) + 1

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// ByteSymbol returns the Symbol for a byte value.
func ByteSymbol(b byte) Symbol {
	return Symbol(b)
}

// IsValid returns true if this Symbol belongs to the alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// IsByte returns true if this Symbol stands for a byte value.
func (s Symbol) IsByte() bool {
	return s >= 0 && s < EndOfStream
}

// Byte returns the byte value of this Symbol.  It must only be called on
// symbols for which IsByte is true.
func (s Symbol) Byte() byte {
	return byte(s)
}

// String returns a printable form of this Symbol.
func (s Symbol) String() string {
	switch {
	case s == EndOfStream:
		return "EOS"
	case s.IsByte() && s < 0x80 && strconv.IsPrint(rune(s)):
		return strconv.QuoteRune(rune(s))
	case s.IsByte():
		return "0x" + strconv.FormatUint(uint64(s)|0x100, 16)[1:]
	default:
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
}
