package huffcode

import (
	"bytes"
	"fmt"
	"io"
)

// NodeID identifies a Node within its Tree.
type NodeID int32

// NoNode is the NodeID of a missing node.
const NoNode = NodeID(-1)

// NodeKind distinguishes leaves from internal nodes.
type NodeKind byte

const (
	// Leaf nodes hold one Symbol and its frequency.
	Leaf NodeKind = iota

	// Internal nodes hold the sum of their children's frequencies and
	// exactly two children.
	Internal
)

var nodeKindNames = [...]string{"Leaf", "Internal"}

// String returns the name of this NodeKind.
func (kind NodeKind) String() string {
	if uint(kind) < uint(len(nodeKindNames)) {
		return nodeKindNames[kind]
	}
	return fmt.Sprintf("NodeKind(%d)", byte(kind))
}

// Node is one vertex of a Tree.
type Node struct {
	Kind   NodeKind
	Symbol Symbol
	Freq   uint64
	Left   NodeID
	Right  NodeID
}

// IsLeaf returns true iff this is a Leaf node.
func (node Node) IsLeaf() bool {
	return node.Kind == Leaf
}

// Tree is a Huffman tree stored as a flat arena of Nodes.  Children are
// referenced by NodeID, and every node except the root has exactly one
// parent.
//
// Leaves occupy NodeIDs 0 through NumLeaves()-1 in ascending Symbol order;
// internal nodes follow in the order they were created.
//
// The zero value is the empty tree.
//
type Tree struct {
	nodes []Node
	root  NodeID
}

// IsEmpty returns true iff this tree has no nodes.
func (t Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Root returns the NodeID of the root, or NoNode if the tree is empty.
func (t Tree) Root() NodeID {
	if t.IsEmpty() {
		return NoNode
	}
	return t.root
}

// Lookup returns the node with the given NodeID, or false if id is NoNode
// or does not belong to this tree.
func (t Tree) Lookup(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{Symbol: InvalidSymbol, Left: NoNode, Right: NoNode}, false
	}
	return t.nodes[id], true
}

// Node is like Lookup, but ignores the bool.  For NoNode, and for any other
// id outside the tree, the result has Symbol == InvalidSymbol, Freq == 0, and
// no children.
func (t Tree) Node(id NodeID) Node {
	node, _ := t.Lookup(id)
	return node
}

// Len returns the total number of nodes.
func (t Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the alphabet size.
func (t Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Freq returns the frequency at the root, which equals the total number of
// symbols counted.
func (t Tree) Freq() uint64 {
	if t.IsEmpty() {
		return 0
	}
	return t.nodes[t.root].Freq
}

// WeightedPathLength returns the sum over all leaves of frequency times
// depth.  A lone root leaf counts as depth 1, matching the one-bit code it
// is assigned.
func (t Tree) WeightedPathLength() uint64 {
	var total uint64
	t.walk(func(id NodeID, depth int) {
		node := t.nodes[id]
		if !node.IsLeaf() {
			return
		}
		if depth == 0 {
			depth = 1
		}
		total = saturatingAdd(total, saturatingMul(node.Freq, uint64(depth)))
	})
	return total
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.Root())
	t.walk(func(id NodeID, depth int) {
		node := t.nodes[id]
		buf.WriteByte('\t')
		for i := 0; i < depth; i++ {
			buf.WriteString("  ")
		}
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "[%d] Leaf %s freq=%d\n", id, node.Symbol, node.Freq)
		} else {
			fmt.Fprintf(&buf, "[%d] Internal freq=%d left=%d right=%d\n", id, node.Freq, node.Left, node.Right)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in pre-order, left before right, using an explicit
// stack.
func (t Tree) walk(fn func(id NodeID, depth int)) {
	if t.IsEmpty() {
		return
	}

	type stackItem struct {
		id    NodeID
		depth int
	}

	stack := make([]stackItem, 0, log2uint32(uint32(len(t.nodes)))+1)
	stack = append(stack, stackItem{t.root, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(top.id, top.depth)

		node := t.nodes[top.id]
		if node.IsLeaf() {
			continue
		}
		stack = append(stack, stackItem{node.Right, top.depth + 1})
		stack = append(stack, stackItem{node.Left, top.depth + 1})
	}
}
