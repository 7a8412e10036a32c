package intrusive

// Ascend calls fn for every record in ascending comparator order until
// fn returns false. fn must not mutate the tree; behavior under such
// mutation is undefined.
func (t *Tree[R]) Ascend(fn func(*R) bool) {
	ascend(t.root, fn)
}

func ascend[R any](n *Node[R], fn func(*R) bool) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, fn) {
		return false
	}
	if !fn(n.item) {
		return false
	}
	return ascend(n.right, fn)
}

// Iterator is responsible for search and traversal within a Tree. It
// walks parent links, so it needs no auxiliary stack, but it is not
// safe to continue using an Iterator after modifications are made to
// the tree. If modifications are made, create a new Iterator.
type Iterator[R any] struct {
	t *Tree[R]
	n *Node[R]
}

// MakeIter returns a new Iterator object positioned before the first
// record.
func (t *Tree[R]) MakeIter() Iterator[R] {
	return Iterator[R]{t: t}
}

// First seeks to the smallest record in the tree.
func (i *Iterator[R]) First() { i.n = i.t.Min() }

// Last seeks to the largest record in the tree.
func (i *Iterator[R]) Last() { i.n = i.t.Max() }

// Next positions the Iterator at the record immediately following its
// current position.
func (i *Iterator[R]) Next() {
	if i.n == nil {
		return
	}
	i.n = i.n.next()
}

// Prev positions the Iterator at the record immediately preceding its
// current position.
func (i *Iterator[R]) Prev() {
	if i.n == nil {
		return
	}
	i.n = i.n.prev()
}

// SeekGE seeks to the first record greater-than or equal to key.
func (i *Iterator[R]) SeekGE(key *R) {
	i.n = nil
	for x := i.t.root; x != nil; {
		if i.t.cmp(key, x.item) <= 0 {
			i.n = x
			x = x.left
		} else {
			x = x.right
		}
	}
}

// SeekLT seeks to the last record less-than key.
func (i *Iterator[R]) SeekLT(key *R) {
	i.n = nil
	for x := i.t.root; x != nil; {
		if i.t.cmp(key, x.item) <= 0 {
			x = x.left
		} else {
			i.n = x
			x = x.right
		}
	}
}

// Valid reports whether the Iterator is positioned at a record.
func (i *Iterator[R]) Valid() bool { return i.n != nil }

// Cur returns the record at the Iterator's current position.
func (i *Iterator[R]) Cur() *R { return i.n.item }

// Node returns the node at the Iterator's current position.
func (i *Iterator[R]) Node() *Node[R] { return i.n }
