package tree

import "sync"

const (
	DefaultFreeListSize = 32
)

// FreeList represents a free list of tree nodes. Nodes released
// by Delete and Clear are kept in the list, cleared of their value,
// and reused by Insert. Multiple trees can share the same FreeList;
// this does not make any of those trees safe for concurrent use.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*Node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*Node[T], 0, size)}
}

// Len returns the number of nodes available for reuse
func (f *FreeList[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

func (f *FreeList[T]) newNode() (n *Node[T]) {
	if f == nil {
		return new(Node[T])
	}

	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(Node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

func (f *FreeList[T]) freeNode(n *Node[T]) (out bool) {
	if f == nil {
		return false
	}

	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}
