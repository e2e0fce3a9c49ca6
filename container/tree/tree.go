package tree

import (
	"cmp"
	"fmt"
)

// Node of a tree
type Node[T any] struct {
	Value T

	cmp   Lesser[T]
	left  *Node[T]
	right *Node[T]
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Min() *Node[T] {
	curr := n

	for curr != nil && curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Max() *Node[T] {
	curr := n

	for curr != nil && curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Contains returns true if the subtree contains at
// least one node with value v
func (n *Node[T]) Contains(v T) bool {
	return n.Find(v) != nil
}

// Find returns the first node in the subtree, searching
// from its root, that contains a value equal to the one provided
func (n *Node[T]) Find(v T) *Node[T] {
	for curr := n; curr != nil; {
		switch c := curr.cmp.Less(v, curr.Value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Count returns the number of occurrences of v
// in the current subtree
func (n *Node[T]) Count(v T) (count int) {
	// equal values are always inserted to the right of a match,
	// so every other occurrence lives in the right subtree of
	// the previous one
	for curr := n.Find(v); curr != nil; curr = curr.right.Find(v) {
		count++
	}

	return count
}

// Size returns the number of nodes in the subtree
func (n *Node[T]) Size() int {
	if n == nil {
		return 0
	}

	return 1 + n.left.Size() + n.right.Size()
}

// Height returns the number of nodes in the longest path
// from the node to a leaf
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	return 1 + max(n.left.Height(), n.right.Height())
}

// ToList returns the values of the subtree in ascending order
func (n *Node[T]) ToList() []T {
	return n.appendInOrder(make([]T, 0))
}

func (n *Node[T]) appendInOrder(values []T) []T {
	if n == nil {
		return values
	}

	values = n.left.appendInOrder(values)
	values = append(values, n.Value)
	return n.right.appendInOrder(values)
}

// InOrderWalk implements an in order walk
// on the subtree using Morris traversal. fn must
// not modify the tree
func (n *Node[T]) InOrderWalk(fn func(T)) {
	var prev *Node[T]

	for curr := n; curr != nil; {
		if curr.left == nil {
			fn(curr.Value)
			curr = curr.right

		} else {
			prev = curr.left
			for prev.right != nil && prev.right != curr {
				prev = prev.right
			}

			if prev.right == nil {
				// update prev.right to the curr node so that after
				// visiting the left subtree there's a reference to the
				// right subtree that has been ignored
				prev.right = curr
				curr = curr.left
			} else {
				// restore the value of prev.right
				prev.right = nil
				fn(curr.Value)
				curr = curr.right
			}
		}
	}
}

// PreOrderWalk implements a pre order walk
// on the subtree using Morris traversal. fn must
// not modify the tree
func (n *Node[T]) PreOrderWalk(fn func(T)) {
	var prev *Node[T]

	for curr := n; curr != nil; {
		if curr.left == nil {
			fn(curr.Value)
			curr = curr.right

		} else {
			prev = curr.left
			for prev.right != nil && prev.right != curr {
				prev = prev.right
			}

			if prev.right == nil {
				prev.right = curr
				fn(curr.Value)
				curr = curr.left

			} else {
				prev.right = nil
				curr = curr.right
			}
		}
	}
}

// DescendingWalk walks the subtree from the highest to the
// lowest value using Morris traversal. fn must not modify
// the tree
func (n *Node[T]) DescendingWalk(fn func(T)) {
	var prev *Node[T]

	for curr := n; curr != nil; {
		if curr.right == nil {
			fn(curr.Value)
			curr = curr.left

		} else {
			prev = curr.right
			for prev.left != nil && prev.left != curr {
				prev = prev.left
			}

			if prev.left == nil {
				// update prev.left to the curr node so that after
				// visiting the right subtree there's a reference to the
				// left subtree that has been ignored
				prev.left = curr
				curr = curr.right
			} else {
				// restore the value of prev.left
				prev.left = nil
				fn(curr.Value)
				curr = curr.left
			}
		}
	}
}

// release clears the node so that it holds no references
// to values or other nodes of the tree
func (n *Node[T]) release() {
	var zero T
	n.Value = zero
	n.cmp = nil
	n.left = nil
	n.right = nil
}

// Opts are the options to configure a Tree
type Opts[T any] struct {
	// Lesser defines the order of the values in the tree
	Lesser Lesser[T]

	// Iterative selects the modifier that rewrites the links
	// of the tree in a loop instead of recursively, so that
	// degenerate trees do not grow the stack
	Iterative bool

	// FreeList, if set, is used to allocate nodes on insert and
	// to keep the nodes released on delete
	FreeList *FreeList[T]
}

// Tree represents a binary search tree that does not apply any
// balancing strategy. How balanced the branches of the tree are
// depends exclusively on the order of the insert and delete
// operations performed on it. A Tree is not safe for concurrent use
type Tree[T any] struct {
	root *Node[T]
	cmp  Lesser[T]
	mod  modifier[T]
	free *FreeList[T]
	len  int
}

// New creates an empty tree that orders its values with
// the < operator
func New[T cmp.Ordered]() *Tree[T] {
	return NewWithLesser[T](OrderedLesser[T]{})
}

// NewWithLesser creates an empty tree ordered by cmp
func NewWithLesser[T any](cmp Lesser[T]) *Tree[T] {
	return NewWithOpts(Opts[T]{Lesser: cmp})
}

// NewWithOpts creates an empty tree with the provided options
func NewWithOpts[T any](opts Opts[T]) *Tree[T] {
	if opts.Lesser == nil {
		panic("tree requires a Lesser")
	}

	var mod modifier[T] = recursive[T]{}
	if opts.Iterative {
		mod = iterative[T]{}
	}

	return &Tree[T]{cmp: opts.Lesser, mod: mod, free: opts.FreeList}
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Size counts the nodes reachable from the root of the tree
func (t *Tree[T]) Size() int {
	return t.root.Size()
}

// Height returns the number of nodes in the longest path
// from the root to a leaf
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Min returns the lowest value in the tree. The boolean
// is false if the tree is empty
func (t *Tree[T]) Min() (T, bool) {
	return valueOf(t.root.Min())
}

// Max returns the highest value in the tree. The boolean
// is false if the tree is empty
func (t *Tree[T]) Max() (T, bool) {
	return valueOf(t.root.Max())
}

func valueOf[T any](n *Node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}

	return n.Value, true
}

// Contains returns true if the tree contains at
// least one node with value v
func (t *Tree[T]) Contains(v T) bool {
	return t.root.Contains(v)
}

// Count returns the number of occurrences of v
// in the tree
func (t *Tree[T]) Count(v T) int {
	return t.root.Count(v)
}

// ToList returns all the values of the tree in ascending order
func (t *Tree[T]) ToList() []T {
	return t.root.appendInOrder(make([]T, 0, t.len))
}

// String renders the values of the tree in ascending order
func (t *Tree[T]) String() string {
	return fmt.Sprint(t.ToList())
}

// InOrderWalk implements an in order walk
// on the tree using Morris traversal.
func (t *Tree[T]) InOrderWalk(fn func(T)) {
	t.root.InOrderWalk(fn)
}

// PreOrderWalk implements a pre order walk
// on the tree using Morris traversal.
func (t *Tree[T]) PreOrderWalk(fn func(T)) {
	t.root.PreOrderWalk(fn)
}

// DescendingWalk walks the tree from the highest
// to the lowest value using Morris traversal.
func (t *Tree[T]) DescendingWalk(fn func(T)) {
	t.root.DescendingWalk(fn)
}

// Insert a value into the tree. Values equal to one already
// in the tree are kept as separate nodes
func (t *Tree[T]) Insert(v T) {
	n := t.free.newNode()
	n.Value = v
	n.cmp = t.cmp

	t.root = t.mod.Insert(t.root, n)
	t.len++
}

// Delete the first node on the tree that has value
// equal to v. It returns false if there is no such node
func (t *Tree[T]) Delete(v T) bool {
	root, removed := t.mod.Delete(t.root, v)
	t.root = root

	if removed == nil {
		return false
	}

	removed.release()
	t.free.freeNode(removed)
	t.len--
	return true
}

// Clear removes all the nodes from the tree
func (t *Tree[T]) Clear() {
	t.clear(t.root)
	t.root = nil
	t.len = 0
}

func (t *Tree[T]) clear(n *Node[T]) {
	if n == nil {
		return
	}

	t.clear(n.left)
	t.clear(n.right)
	n.release()
	t.free.freeNode(n)
}
