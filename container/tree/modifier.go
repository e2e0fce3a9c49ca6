package tree

// modifier is a pair of algorithms used to insert
// and remove nodes from the tree. Both operate on the
// subtree rooted at root and return the new root, which
// the caller must store in the slot that referenced root
type modifier[T any] interface {
	// Insert a leaf node into the subtree
	Insert(root *Node[T], n *Node[T]) *Node[T]

	// Delete the first node found with value v. The second
	// node returned is the node detached from the subtree,
	// or nil if no node was removed
	Delete(root *Node[T], v T) (*Node[T], *Node[T])
}

// recursive descends the tree recursively and rebinds the
// link from each visited node to its child on the way back up
type recursive[T any] struct{}

// Insert the node as a leaf by preserving the Binary Search Tree
// properties. Values equal to the one in a node go to its right
func (m recursive[T]) Insert(root *Node[T], n *Node[T]) *Node[T] {
	if root == nil {
		return n
	}

	if n.cmp.Less(n.Value, root.Value) < 0 {
		root.left = m.Insert(root.left, n)
	} else {
		root.right = m.Insert(root.right, n)
	}

	return root
}

// Delete the node from the tree by preserving the Binary Search Tree
// properties. A node with two children takes the value of its
// successor, and the successor is removed from the right subtree
func (m recursive[T]) Delete(root *Node[T], v T) (*Node[T], *Node[T]) {
	if root == nil {
		return nil, nil
	}

	var removed *Node[T]

	switch c := root.cmp.Less(v, root.Value); {
	case c < 0:
		root.left, removed = m.Delete(root.left, v)
	case c > 0:
		root.right, removed = m.Delete(root.right, v)
	case root.left == nil:
		return root.right, root
	case root.right == nil:
		return root.left, root
	default:
		root.Value = root.right.Min().Value
		root.right, removed = m.Delete(root.right, root.Value)
	}

	return root, removed
}
