package huffman

import (
	"encoding"
)

// Tags of the serialized tree format, one per node in pre-order.
const (
	tagBranch      = 1
	tagByte        = 2
	tagEndOfStream = 3
)

// SerializedSize returns the length of the serialized form of this Tree.
func (t *Tree) SerializedSize() int {
	n := len(t.nodes)
	for _, node := range t.nodes {
		if node.symbol.IsByte() {
			n++
		}
	}
	return n
}

// Serialize returns the serialized form of this Tree.
func (t *Tree) Serialize() []byte {
	return t.AppendSerialized(make([]byte, 0, t.SerializedSize()))
}

// AppendSerialized appends the serialized form of this Tree to buf and
// returns the extended buffer.
func (t *Tree) AppendSerialized(buf []byte) []byte {
	t.walk(func(id NodeID, _ Code) {
		switch symbol := t.Symbol(id); {
		case symbol == InvalidSymbol:
			buf = append(buf, tagBranch)
		case symbol == EndOfStream:
			buf = append(buf, tagEndOfStream)
		default:
			buf = append(buf, tagByte, symbol.Byte())
		}
	})
	return buf
}

// DeserializeTree reconstructs a Tree from its serialized form.
//
// The input must describe exactly one complete tree whose root is a branch,
// with each symbol appearing at most once and with an EndOfStream leaf.
// Anything else yields a *DecodeError of kind KindMalformedTree.
//
func DeserializeTree(buf []byte) (*Tree, error) {
	if len(buf) == 0 {
		return nil, malformedTree("empty tree")
	}
	if buf[0] != tagBranch {
		return nil, malformedTree("root tag %d at offset 0 is not a branch", buf[0])
	}

	t := newTree()
	t.root = t.newBranch()

	// current is the branch that receives the next node.  It always has
	// fewer than two children, unless the tree is complete.
	current := t.root
	complete := false

	var seen [NumSymbols]bool
	leaf := func(symbol Symbol, offset int) (NodeID, error) {
		if seen[symbol] {
			return NoNode, malformedTree("duplicate leaf for symbol %v at offset %d", symbol, offset)
		}
		seen[symbol] = true
		return t.newLeaf(symbol), nil
	}

	for i := 1; i < len(buf); i++ {
		if complete {
			return nil, malformedTree("%d trailing bytes after complete tree at offset %d", len(buf)-i, i)
		}

		offset := i
		if t.Len() >= maxNodes {
			return nil, malformedTree("more than %d nodes at offset %d", maxNodes, offset)
		}

		var child NodeID
		var err error
		switch tag := buf[i]; tag {
		case tagBranch:
			child = t.newBranch()
		case tagByte:
			if i+1 >= len(buf) {
				return nil, malformedTree("missing byte value for leaf at offset %d", offset)
			}
			i++
			child, err = leaf(ByteSymbol(buf[i]), offset)
		case tagEndOfStream:
			child, err = leaf(EndOfStream, offset)
		default:
			return nil, malformedTree("unknown tag %d at offset %d", tag, offset)
		}
		if err != nil {
			return nil, err
		}

		t.appendChild(current, child)
		if !t.IsLeaf(child) {
			current = child
		}

		// Ascend to the nearest ancestor that still has a free slot.
		for t.isFull(current) {
			parent := t.Parent(current)
			if parent == NoNode {
				complete = true
				break
			}
			current = parent
		}
	}

	if !complete {
		return nil, malformedTree("tree is incomplete after %d bytes", len(buf))
	}
	if !seen[EndOfStream] {
		return nil, malformedTree("tree has no end-of-stream leaf")
	}
	return t, nil
}

// MarshalBinary fulfills the encoding.BinaryMarshaler interface.
func (t *Tree) MarshalBinary() ([]byte, error) {
	return t.Serialize(), nil
}

// UnmarshalBinary fulfills the encoding.BinaryUnmarshaler interface.
func (t *Tree) UnmarshalBinary(buf []byte) error {
	tree, err := DeserializeTree(buf)
	if err != nil {
		return err
	}
	*t = *tree
	return nil
}

var (
	_ encoding.BinaryMarshaler   = (*Tree)(nil)
	_ encoding.BinaryUnmarshaler = (*Tree)(nil)
)
