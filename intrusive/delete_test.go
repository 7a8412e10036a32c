package intrusive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// shape describes an explicit tree layout so that each deletion fixup
// configuration can be pinned down exactly instead of being reached
// probabilistically.
type shape struct {
	key         int
	color       color
	left, right *shape
}

func buildShape(s *shape, count *int) *Node[int] {
	if s == nil {
		return nil
	}
	*count++
	h := &intNode{key: s.key}
	h.node.Init(&h.key)
	h.node.color = s.color
	h.node.left = buildShape(s.left, count)
	if h.node.left != nil {
		h.node.left.parent = &h.node
	}
	h.node.right = buildShape(s.right, count)
	if h.node.right != nil {
		h.node.right.parent = &h.node
	}
	return &h.node
}

func makeShapedTree(t *testing.T, s *shape) Tree[int] {
	t.Helper()
	tr := Make(cmpInt)
	count := 0
	tr.root = buildShape(s, &count)
	tr.length = count
	// The layouts themselves must be valid red-black trees.
	checkInvariants(t, &tr)
	return tr
}

func TestDeleteFixupCases(t *testing.T) {
	leafB := func(k int) *shape { return &shape{key: k, color: black} }
	leafR := func(k int) *shape { return &shape{key: k, color: red} }

	tests := []struct {
		name   string
		layout *shape
		del    int
		expect []int
	}{
		{
			// A black leaf whose sibling is black with two black
			// nephews: the recolor-and-ascend path, twice over.
			name: "black sibling black nephews",
			layout: &shape{key: 4, color: black,
				left:  &shape{key: 2, color: black, left: leafB(1), right: leafB(3)},
				right: &shape{key: 6, color: black, left: leafB(5), right: leafB(7)},
			},
			del:    1,
			expect: []int{2, 3, 4, 5, 6, 7},
		},
		{
			name: "red sibling",
			layout: &shape{key: 2, color: black,
				left:  leafB(1),
				right: &shape{key: 4, color: red, left: leafB(3), right: leafB(5)},
			},
			del:    1,
			expect: []int{2, 3, 4, 5},
		},
		{
			name: "near nephew red far nephew black",
			layout: &shape{key: 2, color: black,
				left:  leafB(1),
				right: &shape{key: 4, color: black, left: leafR(3)},
			},
			del:    1,
			expect: []int{2, 3, 4},
		},
		{
			name: "far nephew red",
			layout: &shape{key: 2, color: black,
				left:  leafB(1),
				right: &shape{key: 4, color: black, right: leafR(5)},
			},
			del:    1,
			expect: []int{2, 4, 5},
		},
		{
			name: "both nephews red",
			layout: &shape{key: 2, color: black,
				left:  leafB(1),
				right: &shape{key: 4, color: black, left: leafR(3), right: leafR(5)},
			},
			del:    1,
			expect: []int{2, 3, 4, 5},
		},
		{
			// Removing a red leaf leaves every black height intact, so
			// no fixup work happens at all.
			name: "red leaf",
			layout: &shape{key: 2, color: black,
				left: leafR(1), right: leafR(3),
			},
			del:    1,
			expect: []int{2, 3},
		},
		{
			// The spliced node has one (red) child, which is pulled up
			// and blackened.
			name: "one child",
			layout: &shape{key: 4, color: black,
				left:  &shape{key: 2, color: black, left: leafR(1)},
				right: &shape{key: 6, color: black, left: leafR(5), right: leafR(7)},
			},
			del:    2,
			expect: []int{1, 4, 5, 6, 7},
		},
		{
			// Root removal: the in-order successor is the root's direct
			// right-subtree minimum and takes over the root's color.
			name: "root with two children",
			layout: &shape{key: 4, color: black,
				left:  &shape{key: 2, color: black, left: leafR(1), right: leafR(3)},
				right: &shape{key: 6, color: black, left: leafR(5), right: leafR(7)},
			},
			del:    4,
			expect: []int{1, 2, 3, 5, 6, 7},
		},
		{
			// The successor is not the deleted node's child.
			name: "distant successor",
			layout: &shape{key: 4, color: black,
				left:  &shape{key: 2, color: black, left: leafR(1), right: leafR(3)},
				right: &shape{key: 8, color: black, left: leafR(6), right: leafR(9)},
			},
			del:    4,
			expect: []int{1, 2, 3, 6, 8, 9},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := makeShapedTree(t, tc.layout)
			n := tr.Search(&tc.del)
			require.NotNil(t, n)
			tr.Delete(n)
			checkInvariants(t, &tr)
			require.Equal(t, tc.expect, collect(&tr))
			require.Equal(t, len(tc.expect), tr.Len())
			require.Nil(t, tr.Search(&tc.del))
		})
	}
}

func TestDeleteSoleNode(t *testing.T) {
	tr := Make(cmpInt)
	h := newIntNode(1)
	tr.Insert(&h.node)
	tr.Delete(&h.node)
	require.Nil(t, tr.root)
	require.Zero(t, tr.Len())
	require.Nil(t, tr.Search(&h.key))
}

func TestDeleteRootRepeatedly(t *testing.T) {
	tr := Make(cmpInt)
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		tr.Insert(&newIntNode(k).node)
	}
	for tr.Len() > 0 {
		tr.Delete(tr.root)
		checkInvariants(t, &tr)
	}
	require.Nil(t, tr.root)
}

func TestDeleteMinMaxAlternating(t *testing.T) {
	tr := Make(cmpInt)
	const n = 64
	for k := 0; k < n; k++ {
		tr.Insert(&newIntNode(k).node)
	}
	lo, hi := 0, n-1
	for tr.Len() > 0 {
		if tr.Len()%2 == 0 {
			tr.Delete(tr.Min())
			lo++
		} else {
			tr.Delete(tr.Max())
			hi--
		}
		checkInvariants(t, &tr)
		if tr.Len() > 0 {
			require.Equal(t, lo, *tr.Min().Item())
			require.Equal(t, hi, *tr.Max().Item())
		}
	}
}
