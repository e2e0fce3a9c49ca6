package tree

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

const treeMaxValue = 10

type balancedTreeGenerator struct {
	level uint
	index uint

	// Highest sets the maximum value an element can have
	Highest uint
}

// Next returns the values of a complete tree with values
// in [0, Highest] level by level, so that inserting them in
// order produces a balanced tree
func (g *balancedTreeGenerator) Next() (int, bool) {
	if (math.Pow(2, float64(g.level)) + float64(g.index)) > float64(g.Highest) {
		return 0, false
	}

	levelElements := uint(math.Pow(2, float64(g.level)))
	value := (g.Highest * (2*g.index + 1)) / (2 * levelElements)

	g.index += 1
	if g.index >= levelElements {
		g.index = 0
		g.level += 1
	}

	return int(value), true
}

func levels(tree *Tree[int]) [][]*Node[int] {
	result := [][]*Node[int]{{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node[int], nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] == nil {
				result[currLevel+1][2*i] = nil
				result[currLevel+1][2*i+1] = nil
			} else {
				nodesAdded += 1
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel += 1
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree(t *testing.T, expected [][]interface{}, tree *Tree[int]) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected) && level < len(levels); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]) && col < len(levels[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col])
			} else if assert.NotNil(t, levels[level][col]) {
				assert.Equal(t, expected[level][col], levels[level][col].Value)
			}
		}
	}
}

// assertOrdered checks the order invariant on every node of the tree
// and that the cached length matches the number of nodes
func assertOrdered(t *testing.T, tree *Tree[int]) {
	var check func(n *Node[int], low, high *int)
	check = func(n *Node[int], low, high *int) {
		if n == nil {
			return
		}
		if low != nil {
			assert.GreaterOrEqual(t, n.Value, *low)
		}
		if high != nil {
			assert.Less(t, n.Value, *high)
		}
		check(n.left, low, &n.Value)
		check(n.right, &n.Value, high)
	}

	check(tree.root, nil, nil)
	assert.Equal(t, tree.Size(), tree.Len())
	assert.True(t, sort.IntsAreSorted(tree.ToList()))
}

func prePopulateTree(tree *Tree[int]) {
	if tree.Len() != 0 {
		panic("attempt to prepopulate non-emtpy tree")
	}
	it := balancedTreeGenerator{Highest: treeMaxValue}
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		tree.Insert(value)
	}
}

func insertAll(tree *Tree[int], values ...int) *Tree[int] {
	for _, v := range values {
		tree.Insert(v)
	}
	return tree
}

// modifiers returns a constructor for each of the modifier
// algorithms, so that tests can check both behave the same
func modifiers() map[string]func() *Tree[int] {
	return map[string]func() *Tree[int]{
		"recursive": func() *Tree[int] { return New[int]() },
		"iterative": func() *Tree[int] { return NewIterative[int](IntLesser{}) },
		"freelist": func() *Tree[int] {
			return NewWithOpts(Opts[int]{Lesser: IntLesser{}, FreeList: NewFreeList[int](4)})
		},
	}
}

func forEachModifier(t *testing.T, fn func(t *testing.T, newTree func() *Tree[int])) {
	for name, newTree := range modifiers() {
		newTree := newTree
		t.Run(name, func(t *testing.T) {
			fn(t, newTree)
		})
	}
}

func TestTreeNewEmpty(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := newTree()

		assert.True(t, tree.Empty())
		assert.Nil(t, tree.Root())
		assert.Equal(t, 0, tree.Size())
		assert.Equal(t, 0, tree.Len())
		assert.Equal(t, 0, tree.Height())
		assert.Equal(t, []int{}, tree.ToList())
		assert.Equal(t, "[]", tree.String())
		assert.False(t, tree.Contains(0))
	})
}

func TestTreeNewWithOptsNilLesserPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewWithOpts(Opts[int]{})
	})
}

func TestTreeInsertToList(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 3, 8, 1, 4)

		assert.Equal(t, []int{1, 3, 4, 5, 8}, tree.ToList())
		assert.Equal(t, "[1 3 4 5 8]", tree.String())
		assert.Equal(t, 5, tree.Size())
		assertEqualTree(t, [][]interface{}{
			{5},
			{3, 8},
			{1, 4, nil, nil},
		}, tree)
	})
}

func TestTreeInsertAscendingDegenerates(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 1, 2, 3, 4, 5)

		assert.Equal(t, 5, tree.Height())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.ToList())
		for n := tree.Root(); n != nil; n = n.Right() {
			assert.Nil(t, n.Left())
		}
	})
}

func TestTreeInsertDescendingDegenerates(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 4, 3, 2, 1)

		assert.Equal(t, 5, tree.Height())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.ToList())
		for n := tree.Root(); n != nil; n = n.Left() {
			assert.Nil(t, n.Right())
		}
	})
}

func TestTreeInsertDuplicatesGoRight(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 2, 2, 2)

		assert.Equal(t, 3, tree.Size())
		assert.Equal(t, 3, tree.Count(2))
		assertEqualTree(t, [][]interface{}{
			{2},
			{nil, 2},
			{nil, nil, nil, 2},
		}, tree)
	})
}

func TestTreeContainsAfterInsert(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := newTree()
		r := rand.New(rand.NewSource(42))

		for i := 0; i < 200; i++ {
			v := r.Intn(50)
			tree.Insert(v)
			assert.True(t, tree.Contains(v))
		}

		assert.False(t, tree.Contains(-1))
		assert.False(t, tree.Contains(50))
		assertOrdered(t, tree)
	})
}

func TestTreeNodeContainsSubtree(t *testing.T) {
	tree := insertAll(New[int](), 5, 3, 8, 1, 4)

	left := tree.Root().Left()
	assert.True(t, left.Contains(1))
	assert.True(t, left.Contains(4))
	assert.False(t, left.Contains(8))
	assert.False(t, left.Contains(5))
	assert.True(t, tree.Root().Right().Contains(8))
	assert.False(t, tree.Root().Right().Contains(3))
}

func TestTreeCountSeparatedDuplicates(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 7, 5, 6, 5, 9)

		assert.Equal(t, 3, tree.Count(5))
		assert.Equal(t, 1, tree.Count(6))
		assert.Equal(t, 0, tree.Count(8))
	})
}

func TestTreeToListOneChild(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		onlyLeft := insertAll(newTree(), 2, 1)
		onlyRight := insertAll(newTree(), 1, 2)
		zigzag := insertAll(newTree(), 10, 5, 7, 6, 8)

		assert.Equal(t, []int{1, 2}, onlyLeft.ToList())
		assert.Equal(t, []int{1, 2}, onlyRight.ToList())
		assert.Equal(t, []int{5, 6, 7, 8, 10}, zigzag.ToList())
	})
}

func TestTreeToListIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	values := make([]int, 500)
	for i := range values {
		values[i] = r.Intn(100)
	}

	tree := insertAll(New[int](), values...)
	expected := append([]int(nil), values...)
	sort.Ints(expected)

	assert.Equal(t, expected, tree.ToList())
}

func TestTreeMinMax(t *testing.T) {
	tree := New[int]()

	_, ok := tree.Min()
	assert.False(t, ok)
	_, ok = tree.Max()
	assert.False(t, ok)

	prePopulateTree(tree)

	min, ok := tree.Min()
	assert.True(t, ok)
	assert.Equal(t, 0, min)
	max, ok := tree.Max()
	assert.True(t, ok)
	assert.Equal(t, 8, max)
}

func TestTreeDeleteLeaf(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 3, 8, 1, 4)

		assert.True(t, tree.Delete(4))

		assert.Equal(t, []int{1, 3, 5, 8}, tree.ToList())
		assertEqualTree(t, [][]interface{}{
			{5},
			{3, 8},
			{1, nil, nil, nil},
		}, tree)
		assertOrdered(t, tree)
	})
}

func TestTreeDeleteOneChild(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 3, 8, 1, 9)

		assert.True(t, tree.Delete(8))
		assert.True(t, tree.Delete(3))

		assert.Equal(t, []int{1, 5, 9}, tree.ToList())
		assertEqualTree(t, [][]interface{}{
			{5},
			{1, 9},
		}, tree)
		assertOrdered(t, tree)
	})
}

func TestTreeDeleteTwoChildrenSuccessorLeaf(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 3, 8)

		assert.True(t, tree.Delete(5))

		assert.Equal(t, 8, tree.Root().Value)
		assert.Equal(t, []int{3, 8}, tree.ToList())
		assertEqualTree(t, [][]interface{}{
			{8},
			{3, nil},
		}, tree)
	})
}

func TestTreeDeleteTwoChildrenSuccessorWithRightChild(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 3, 10, 7, 12, 8)
		root := tree.Root()

		assert.True(t, tree.Delete(5))

		assert.Same(t, root, tree.Root())
		assert.Equal(t, 7, tree.Root().Value)
		assertEqualTree(t, [][]interface{}{
			{7},
			{3, 10},
			{nil, nil, 8, 12},
		}, tree)
		assertOrdered(t, tree)
	})
}

func TestTreeDeleteDuplicates(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 2, 2, 2)

		assert.True(t, tree.Delete(2))

		assert.Equal(t, 2, tree.Size())
		assert.Equal(t, []int{2, 2}, tree.ToList())
		assert.True(t, tree.Contains(2))
		assert.Equal(t, 2, tree.Count(2))
	})
}

func TestTreeDeleteAbsentNoop(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 5, 3, 8, 1, 4)
		before := tree.ToList()

		assert.False(t, tree.Delete(6))
		assert.False(t, tree.Delete(100))

		assert.Equal(t, before, tree.ToList())
		assert.Equal(t, 5, tree.Len())
	})
}

func TestTreeDeleteEmptyNoop(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := newTree()

		assert.False(t, tree.Delete(1))
		assert.True(t, tree.Empty())
	})
}

func TestTreeDeleteLastNode(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := insertAll(newTree(), 1)

		assert.True(t, tree.Delete(1))
		assert.True(t, tree.Empty())
		assert.Equal(t, 0, tree.Len())
	})
}

func TestTreeDeleteRandomKeepsOrder(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := newTree()
		r := rand.New(rand.NewSource(1))
		counts := make(map[int]int)

		for i := 0; i < 300; i++ {
			v := r.Intn(40)
			tree.Insert(v)
			counts[v]++
		}

		for i := 0; i < 400; i++ {
			v := r.Intn(45)
			size := tree.Size()
			ok := tree.Delete(v)

			assert.Equal(t, counts[v] > 0, ok)
			if ok {
				counts[v]--
				assert.Equal(t, size-1, tree.Size())
			} else {
				assert.Equal(t, size, tree.Size())
			}
			assert.Equal(t, counts[v], tree.Count(v))
			assert.Equal(t, counts[v] > 0, tree.Contains(v))
		}

		assertOrdered(t, tree)
	})
}

func TestTreeModifiersBuildSameShape(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	rec := New[int]()
	it := NewIterative[int](IntLesser{})

	for i := 0; i < 200; i++ {
		v := r.Intn(30)
		if r.Intn(3) == 0 {
			assert.Equal(t, rec.Delete(v), it.Delete(v))
		} else {
			rec.Insert(v)
			it.Insert(v)
		}
	}

	expected := levels(rec)
	actual := levels(it)
	if assert.Equal(t, len(expected), len(actual)) {
		for level := range expected {
			for col := range expected[level] {
				if expected[level][col] == nil {
					assert.Nil(t, actual[level][col])
				} else if assert.NotNil(t, actual[level][col]) {
					assert.Equal(t, expected[level][col].Value, actual[level][col].Value)
				}
			}
		}
	}
}

func TestTreeClear(t *testing.T) {
	forEachModifier(t, func(t *testing.T, newTree func() *Tree[int]) {
		tree := newTree()
		prePopulateTree(tree)

		tree.Clear()

		assert.True(t, tree.Empty())
		assert.Equal(t, 0, tree.Len())
		assert.Equal(t, []int{}, tree.ToList())

		tree.Insert(3)
		assert.Equal(t, []int{3}, tree.ToList())
	})
}

func TestTreeLesserFuncReverseOrder(t *testing.T) {
	tree := NewWithLesser[int](LesserFunc[int](func(a, b int) int {
		return b - a
	}))

	for _, v := range []int{5, 3, 8, 1, 4} {
		tree.Insert(v)
	}

	assert.Equal(t, []int{8, 5, 4, 3, 1}, tree.ToList())
	assert.True(t, tree.Delete(5))
	assert.Equal(t, []int{8, 4, 3, 1}, tree.ToList())
}

type person struct {
	name string
	age  int
}

func TestTreeLesserFuncStructs(t *testing.T) {
	tree := NewWithLesser[person](LesserFunc[person](func(a, b person) int {
		return a.age - b.age
	}))

	tree.Insert(person{name: "ada", age: 36})
	tree.Insert(person{name: "alan", age: 41})
	tree.Insert(person{name: "grace", age: 36})

	assert.Equal(t, []person{
		{name: "ada", age: 36},
		{name: "grace", age: 36},
		{name: "alan", age: 41},
	}, tree.ToList())
	assert.True(t, tree.Contains(person{age: 41}))
	assert.Equal(t, 2, tree.Count(person{age: 36}))
}

func TestTreeStringValues(t *testing.T) {
	tree := New[string]()

	for _, v := range []string{"pear", "apple", "fig"} {
		tree.Insert(v)
	}

	assert.Equal(t, "[apple fig pear]", tree.String())
}

func BenchmarkTreeRandomInsert(b *testing.B) {
	tree := New[int]()

	for i := 0; i < b.N; i++ {
		tree.Insert(int(rand.Int31()))
	}
}

func BenchmarkTreePreOrderSequenceInsertAndToList(b *testing.B) {
	tree := New[int]()
	gen := balancedTreeGenerator{Highest: uint(b.N << 1)}

	for i := 0; i < b.N; i++ {
		v, ok := gen.Next()
		if !ok {
			panic("generator failed to generate enough numbers")
		}
		tree.Insert(v)
	}

	assert.Equal(b, b.N, len(tree.ToList()))
}
