package huffcode

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs an optimal Huffman tree for the given frequencies.
//
// The two lowest-frequency nodes are merged repeatedly until one node
// remains.  Ties are broken deterministically:
//
//   - a lower frequency always wins;
//   - among equal frequencies, leaves win over internal nodes;
//   - leaves are ordered by ascending Symbol;
//   - internal nodes are ordered by creation, oldest first.
//
// Of each merged pair, the node popped first becomes the left child.
//
// If ft holds exactly one symbol, the root of the returned tree is a Leaf.
// If ft is empty, BuildTree returns the empty Tree and ErrEmptyInput.
//
func BuildTree(ft FrequencyTable) (Tree, error) {
	if len(ft) == 0 {
		return Tree{}, ErrEmptyInput
	}
	if err := ft.Validate(); err != nil {
		return Tree{}, err
	}

	symbols := ft.Symbols()
	numLeaves := len(symbols)
	assert.Assertf(numLeaves <= int(MaxSymbol), "numLeaves %d > MaxSymbol %d", numLeaves, int(MaxSymbol))

	// Step 1: lay out one leaf per symbol, in ascending Symbol order.
	// Because NodeIDs double as the secondary heap key, this is what
	// makes the tie-break independent of map iteration order.

	nodes := make([]Node, 0, 2*numLeaves-1)
	for _, sym := range symbols {
		nodes = append(nodes, Node{
			Kind:   Leaf,
			Symbol: sym,
			Freq:   ft[sym],
			Left:   NoNode,
			Right:  NoNode,
		})
	}

	if numLeaves == 1 {
		return Tree{nodes: nodes, root: 0}, nil
	}

	// Step 2: build a minheap over every leaf.

	h := nodeHeap{nodes: &nodes, list: make([]NodeID, numLeaves)}
	for index := range h.list {
		h.list[index] = NodeID(index)
	}
	h.Init()

	// Step 3: pop two nodes, merge them into a new internal node, and
	// push the new node back onto the minheap.  Internal nodes are
	// appended to the arena, so their NodeIDs are always greater than
	// any leaf's and increase in creation order.

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeID)
		b := heap.Pop(&h).(NodeID)

		id := NodeID(len(nodes))
		nodes = append(nodes, Node{
			Kind:   Internal,
			Symbol: InvalidSymbol,
			Freq:   saturatingAdd(nodes[a].Freq, nodes[b].Freq),
			Left:   a,
			Right:  b,
		})
		heap.Push(&h, id)
	}

	root := heap.Pop(&h).(NodeID)
	assert.Assertf(len(nodes) == 2*numLeaves-1, "expected %d nodes, got %d", 2*numLeaves-1, len(nodes))
	assert.Assertf(int(root) == len(nodes)-1, "root %d is not the last node created", root)

	return Tree{nodes: nodes, root: root}, nil
}

// MustBuildTree is like BuildTree but panics on error.
func MustBuildTree(ft FrequencyTable) Tree {
	t, err := BuildTree(ft)
	if err != nil {
		panic(fmt.Errorf("huffcode.MustBuildTree: %w", err))
	}
	return t
}

// type nodeHeap {{{

type nodeHeap struct {
	nodes *[]Node
	list  []NodeID
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	nodes := *h.nodes
	af, bf := nodes[a].Freq, nodes[b].Freq
	if af != bf {
		return af < bf
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(NodeID))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
