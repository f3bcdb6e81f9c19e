package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within the arena of a single Tree.
type NodeID int32

// NoNode is the NodeID of an absent parent or child.
const NoNode = NodeID(-1)

// maxNodes is the size of a strict binary tree with NumSymbols leaves.
const maxNodes = 2*NumSymbols - 1

// treeNode is a Branch when symbol is InvalidSymbol, and a Leaf otherwise.
type treeNode struct {
	parent NodeID
	left   NodeID
	right  NodeID
	symbol Symbol
}

// Tree is a Huffman code tree.  All nodes live in a flat arena owned by the
// Tree and refer to each other by index.  Left children carry bit 0, right
// children bit 1.
//
// A Tree is built by BuildTree or DeserializeTree and is not modified
// afterward, so it may be read from several goroutines at once.
//
type Tree struct {
	nodes []treeNode
	root  NodeID
}

func newTree() *Tree {
	return &Tree{
		nodes: make([]treeNode, 0, maxNodes),
		root:  NoNode,
	}
}

func (t *Tree) newNode(symbol Symbol) NodeID {
	assert.Assertf(len(t.nodes) < maxNodes, "tree arena overflow: %d nodes", len(t.nodes))
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{parent: NoNode, left: NoNode, right: NoNode, symbol: symbol})
	return id
}

func (t *Tree) newLeaf(symbol Symbol) NodeID {
	assert.Assertf(symbol.IsValid(), "invalid leaf symbol %d", int(symbol))
	return t.newNode(symbol)
}

func (t *Tree) newBranch() NodeID {
	return t.newNode(InvalidSymbol)
}

// appendChild attaches child to the first free slot of parent, left first.
func (t *Tree) appendChild(parent NodeID, child NodeID) {
	p := &t.nodes[parent]
	assert.Assertf(p.symbol == InvalidSymbol, "node %d is a leaf and cannot have children", parent)
	switch {
	case p.left == NoNode:
		p.left = child
	case p.right == NoNode:
		p.right = child
	default:
		assert.Assertf(false, "branch %d already has two children", parent)
	}
	t.nodes[child].parent = parent
}

func (t *Tree) isFull(id NodeID) bool {
	n := &t.nodes[id]
	return n.left != NoNode && n.right != NoNode
}

// Root returns the NodeID of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Len returns the number of nodes in the Tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf returns true if the node holds a Symbol.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].symbol != InvalidSymbol
}

// Symbol returns the Symbol held by a leaf, or InvalidSymbol for a branch.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.nodes[id].symbol
}

// Parent returns the parent of a node, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// Children returns the two children of a branch.
func (t *Tree) Children(id NodeID) (left NodeID, right NodeID) {
	n := &t.nodes[id]
	assert.Assertf(n.symbol == InvalidSymbol, "node %d is a leaf", id)
	assert.Assertf(n.left != NoNode && n.right != NoNode, "branch %d has fewer than two children", id)
	return n.left, n.right
}

// NumLeaves returns the number of leaves, i.e. the number of symbols which
// have a code.
func (t *Tree) NumLeaves() int {
	var n int
	for _, node := range t.nodes {
		if node.symbol != InvalidSymbol {
			n++
		}
	}
	return n
}

// Depth returns the length of the longest code in the Tree.
func (t *Tree) Depth() int {
	var depth int
	t.walk(func(id NodeID, hc Code) {
		if hc.Size > depth {
			depth = hc.Size
		}
	})
	return depth
}

// Equal returns true if both trees have the same shape and the same symbol
// at every leaf, regardless of how their arenas are laid out.
func (t *Tree) Equal(other *Tree) bool {
	if t.Len() != other.Len() {
		return false
	}

	type pair struct {
		a NodeID
		b NodeID
	}

	stack := []pair{{t.root, other.root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x, y := &t.nodes[top.a], &other.nodes[top.b]
		if x.symbol != y.symbol {
			return false
		}
		if x.symbol == InvalidSymbol {
			stack = append(stack, pair{x.right, y.right}, pair{x.left, y.left})
		}
	}
	return true
}

// String returns a short description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves, with code lengths up to %d bits)", t.NumLeaves(), t.Depth())
}

var _ fmt.Stringer = (*Tree)(nil)

// walk visits every node in pre-order, left before right, together with the
// path from the root to that node.
func (t *Tree) walk(fn func(id NodeID, hc Code)) {
	type stackItem struct {
		id NodeID
		hc Code
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(top.id, top.hc)

		if t.IsLeaf(top.id) {
			continue
		}
		left, right := t.Children(top.id)
		stack = append(stack,
			stackItem{id: right, hc: top.hc.Append(1)},
			stackItem{id: left, hc: top.hc.Append(0)})
	}
}
