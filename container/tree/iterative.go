package tree

// iterative is a pair of algorithms that insert and delete
// nodes from the tree in a loop. Instead of keeping parent
// references it keeps the address of the link that points to
// the current node, so the link can be rewritten in place
type iterative[T any] struct{}

// Insert the node into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm
func (iterative[T]) Insert(root *Node[T], n *Node[T]) *Node[T] {
	link := &root

	for curr := root; curr != nil; curr = *link {
		if n.cmp.Less(n.Value, curr.Value) < 0 {
			link = &curr.left
		} else {
			link = &curr.right
		}
	}

	*link = n
	return root
}

// Delete the node from the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm
func (m iterative[T]) Delete(root *Node[T], v T) (*Node[T], *Node[T]) {
	link := m.search(&root, v)
	n := *link

	switch {
	case n == nil:
		return root, nil
	case n.left == nil:
		*link = n.right
		return root, n
	case n.right == nil:
		*link = n.left
		return root, n
	}

	// the successor is the leftmost node of the right subtree. No
	// node above it on that path can hold an equal value, so it is
	// also the first match a search within the right subtree finds
	link = &n.right
	for (*link).left != nil {
		link = &(*link).left
	}

	successor := *link
	n.Value = successor.Value
	*link = successor.right
	return root, successor
}

// search returns the link that points to the first node with
// value v, or the nil link where such a node would be
func (iterative[T]) search(link **Node[T], v T) **Node[T] {
	for curr := *link; curr != nil; curr = *link {
		switch c := curr.cmp.Less(v, curr.Value); {
		case c < 0:
			link = &curr.left
		case c > 0:
			link = &curr.right
		default:
			return link
		}
	}

	return link
}

// NewIterative creates a new instance of a tree that uses
// the iterative modifier algorithms. It behaves like a tree
// created with New, but operations on degenerate trees do not
// depend on the depth of the stack
func NewIterative[T any](cmp Lesser[T]) *Tree[T] {
	return NewWithOpts(Opts[T]{Lesser: cmp, Iterative: true})
}
