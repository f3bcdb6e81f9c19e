package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Decoder reads coded bitstreams by walking a Tree bit by bit.
type Decoder struct {
	tree *Tree
}

// NewDecoder is a convenience function that constructs and initializes a
// Decoder.
func NewDecoder(t *Tree) *Decoder {
	d := new(Decoder)
	d.Init(t)
	return d
}

// Init initializes this Decoder.  The root of the Tree must be a branch.
func (d *Decoder) Init(t *Tree) {
	assert.Assertf(t.Root() != NoNode && !t.IsLeaf(t.Root()), "tree root must be a branch")
	*d = Decoder{tree: t}
}

// Decode attempts to decode a complete code into a Symbol.
//
// If hc ends exactly on a leaf, the leaf's Symbol is returned.  If hc ends
// on a branch, or runs past a leaf, InvalidSymbol is returned.
//
func (d *Decoder) Decode(hc Code) Symbol {
	t := d.tree
	id := t.Root()
	for i := 0; i < hc.Size; i++ {
		if t.IsLeaf(id) {
			return InvalidSymbol
		}
		left, right := t.Children(id)
		if hc.Bit(i) == 0 {
			id = left
		} else {
			id = right
		}
	}
	return t.Symbol(id)
}

// DecodeFrom reads a bitstream from r until the code for EndOfStream, and
// returns the decoded bytes.  Any bits after EndOfStream are never read.
//
// If r runs out of bits first, the bytes decoded so far are returned along
// with a *DecodeError of kind KindTruncatedBitstream.
//
func (d *Decoder) DecodeFrom(r io.Reader) ([]byte, error) {
	t := d.tree
	br := bitio.NewReader(r)

	out := make([]byte, 0, 64)
	id := t.Root()
	for {
		bit, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return out, &DecodeError{
					Kind: KindTruncatedBitstream,
					Err:  fmt.Errorf("bitstream ended after %d decoded bytes without an end-of-stream code", len(out)),
				}
			}
			return out, err
		}

		left, right := t.Children(id)
		if bit {
			id = right
		} else {
			id = left
		}

		if !t.IsLeaf(id) {
			continue
		}
		symbol := t.Symbol(id)
		if symbol == EndOfStream {
			return out, nil
		}
		out = append(out, symbol.Byte())
		id = t.Root()
	}
}

// DecodeBytes decodes a packed bitstream held in memory.
func (d *Decoder) DecodeBytes(data []byte) ([]byte, error) {
	return d.DecodeFrom(bytes.NewReader(data))
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.  Every node of the tree is listed in pre-order,
// with branches decoding to InvalidSymbol.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", d.tree.Len())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", d.tree.NumLeaves())
	d.tree.walk(func(id NodeID, hc Code) {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, int(d.tree.Symbol(id)))
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
