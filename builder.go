package huffman

import (
	"container/heap"
	"math"
)

// paddingSymbol pairs with EndOfStream when the input is empty, so that the
// root of every tree is a branch.
const paddingSymbol = Symbol(0)

// BuildTree constructs the Huffman tree for the given byte frequencies.
//
// There is one leaf for each byte with a non-zero count, plus one leaf for
// EndOfStream with a count of 0.  If no byte occurs at all, a leaf for byte 0
// with a count of 0 is added as well.
//
// Ties between equally weighted subtrees are broken by age: leaves are queued
// in ascending byte order followed by EndOfStream, each merged subtree is
// queued after everything before it, and the older of two equal subtrees is
// dequeued first.  The first of each pair dequeued becomes the left child.
//
func BuildTree(ft *FrequencyTable) *Tree {
	t := newTree()
	h := weightHeap{list: make([]treeAndWeight, 0, NumSymbols+1)}

	var seq uint32
	push := func(id NodeID, weight uint64) {
		h.list = append(h.list, treeAndWeight{id: id, weight: weight, seq: seq})
		seq++
	}

	for b, freq := range ft {
		if freq != 0 {
			push(t.newLeaf(ByteSymbol(byte(b))), freq)
		}
	}
	push(t.newLeaf(EndOfStream), 0)
	if len(h.list) < 2 {
		push(t.newLeaf(paddingSymbol), 0)
	}

	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(treeAndWeight)
		b := heap.Pop(&h).(treeAndWeight)

		// Compute weightSum using saturating addition
		weightSum := a.weight + b.weight
		if weightSum < a.weight {
			weightSum = math.MaxUint64
		}

		branch := t.newBranch()
		t.appendChild(branch, a.id)
		t.appendChild(branch, b.id)
		heap.Push(&h, treeAndWeight{id: branch, weight: weightSum, seq: seq})
		seq++
	}

	t.root = heap.Pop(&h).(treeAndWeight).id
	return t
}

// type treeAndWeight + type weightHeap {{{

type treeAndWeight struct {
	id     NodeID
	weight uint64
	seq    uint32
}

type weightHeap struct {
	list []treeAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(treeAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
