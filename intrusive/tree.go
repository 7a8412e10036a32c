package intrusive

import (
	"fmt"
	"strings"
)

// Tree is an intrusive red-black tree over records of type R. The tree
// stores links to caller-owned nodes embedded in those records; it never
// allocates node storage itself. Duplicate keys are permitted and later
// duplicates order to the right of earlier ones (multiset semantics).
//
// Write operations are not safe for concurrent use by multiple
// goroutines, nor is reading concurrent with a write. Callers embedding
// the tree in a concurrent system must synchronize externally.
type Tree[R any] struct {
	root   *Node[R]
	cmp    func(a, b *R) int
	length int
}

// Make returns an empty tree ordered by cmp. cmp must implement a total
// order over records and must answer consistently for as long as a
// record is in the tree; mutating an inserted record in a way that
// changes its relative order is a caller error and is not detected.
func Make[R any](cmp func(a, b *R) int) Tree[R] {
	return Tree[R]{cmp: cmp}
}

// Len returns the number of nodes currently in the tree.
func (t *Tree[R]) Len() int {
	return t.length
}

// Min returns the node holding the smallest record, or nil if the tree
// is empty.
func (t *Tree[R]) Min() *Node[R] {
	if t.root == nil {
		return nil
	}
	return t.root.min()
}

// Max returns the node holding the largest record, or nil.
func (t *Tree[R]) Max() *Node[R] {
	if t.root == nil {
		return nil
	}
	return t.root.max()
}

// Search returns the first node whose record compares equal to key, or
// nil if there is none. key is only read by the comparator, so a
// stack-allocated probe record carrying just the compared fields works.
func (t *Tree[R]) Search(key *R) *Node[R] {
	x := t.root
	for x != nil {
		c := t.cmp(key, x.item)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	return nil
}

// Get looks up key and returns the enclosing record of the match.
func (t *Tree[R]) Get(key *R) (*R, bool) {
	n := t.Search(key)
	if n == nil {
		return nil, false
	}
	return n.item, true
}

// Height returns the height of the tree in nodes. Balancing keeps it
// within 2*log2(n+1).
func (t *Tree[R]) Height() int {
	return height(t.root)
}

func height[R any](n *Node[R]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[R]) String() string {
	if t.length == 0 {
		return ";"
	}
	var b strings.Builder
	writeString(t.root, &b)
	return b.String()
}

func writeString[R any](n *Node[R], b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		writeString(n.left, b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v", *n.item)
	if n.right != nil {
		b.WriteString("(")
		writeString(n.right, b)
		b.WriteString(")")
	}
}
