package tree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'snapdom.tree'.
func tracer() tracing.Trace {
	return tracing.Select("snapdom.tree")
}

// ErrSkipChildren may be returned by an Action to prevent TopDown from
// descending into the children of the current node. It is not reported as
// an error to the caller.
var ErrSkipChildren = errors.New("skip children of node")

// Action is a function type to operate on tree nodes.
// parent is nil for the start node of a traversal, position is the index of
// n within its parent's children.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a tree starting at (and including) node.
// The traversal guarantees that parents are always processed before
// their children, and siblings are processed in order.
//
// If the action function returns an error for a node,
// the traversal stops and the error is returned.
// ErrSkipChildren prunes the branch below the node without stopping the
// traversal.
//
// Traversal is synchronous and runs on the caller's goroutine.
func (node *Node[T]) TopDown(action Action[T]) error {
	if node == nil || action == nil {
		return nil
	}
	return topDown(node, nil, 0, action)
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	if err := action(node, parent, position); err != nil {
		if errors.Is(err, ErrSkipChildren) {
			return nil
		}
		tracer().Debugf("top-down traversal stopped at %v: %v", node, err)
		return err
	}
	for i, ch := range node.Children() {
		if err := topDown(ch, node, i, action); err != nil {
			return err
		}
	}
	return nil
}
