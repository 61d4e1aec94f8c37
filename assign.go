package huffcode

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// AssignCodes walks the tree depth-first and returns the code for each leaf:
// each step to a left child appends a 0 bit, and each step to a right child
// appends a 1 bit.
//
// The empty tree yields an empty CodeTable.  A tree whose root is a Leaf
// yields a one-bit code "0" for its only symbol, since a zero-bit code could
// not be told apart from no symbol at all.
//
// A tree deeper than MaxBitsPerCode yields ErrCodeTooLong.
//
func AssignCodes(t Tree) (CodeTable, error) {
	if t.IsEmpty() {
		return CodeTable{}, nil
	}

	codes := make(CodeTable, t.NumLeaves())

	rootNode := t.Node(t.Root())
	if rootNode.IsLeaf() {
		codes[rootNode.Symbol] = MakeCode(1, 0)
		return codes, nil
	}

	// Walk the tree with an explicit stack.  The stack depth equals the
	// number of bits in the code being built, and only internal nodes are
	// ever pushed.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id   NodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, log2uint32(uint32(t.Len()))+1)
	stack = append(stack, stackItem{id: t.Root()})

	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++

		var child NodeID
		var bit byte
		switch x {
		case 0:
			child, bit = t.Node(top.id).Left, 0
		case 1:
			child, bit = t.Node(top.id).Right, 1
		default:
			stack = stack[:len(stack)-1]
			continue
		}

		assert.Assertf(child != NoNode, "malformed tree: internal node %d is missing a child", top.id)
		if top.code.Size >= MaxBitsPerCode {
			return nil, fmt.Errorf("%w: node %d is deeper than %d bits", ErrCodeTooLong, child, MaxBitsPerCode)
		}

		code := top.code.Append(bit)
		node := t.Node(child)
		if node.IsLeaf() {
			codes[node.Symbol] = code
			continue
		}
		stack = append(stack, stackItem{id: child, code: code})
	}

	assert.Assertf(len(codes) == t.NumLeaves(), "assigned %d codes for %d leaves", len(codes), t.NumLeaves())
	return codes, nil
}
