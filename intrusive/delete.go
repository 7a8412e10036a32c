package intrusive

// Delete unlinks n from the tree. n must currently be a member of t;
// deleting a node that is not is a caller error with undefined results.
// The node's storage is untouched (the caller owns it) but its links
// are invalid once Delete returns.
//
// Deletion is a BST splice followed, when the physically removed node
// was black, by the double-black fixup that restores the uniform
// black-height invariant.
func (t *Tree[R]) Delete(n *Node[R]) {
	var u, uParent *Node[R]
	removed := n.color
	switch {
	case n.left == nil:
		u, uParent = n.right, n.parent
		t.transplant(n, n.right)
	case n.right == nil:
		u, uParent = n.left, n.parent
		t.transplant(n, n.left)
	default:
		// Two children: the in-order successor s (leftmost node of the
		// right subtree, so it has no left child) is spliced out of its
		// slot and physically moved into n's position, taking over n's
		// links and color. The node removed for fixup purposes is s's
		// old slot, filled by s's right child.
		s := n.right.min()
		removed = s.color
		u = s.right
		if s.parent == n {
			uParent = s
		} else {
			uParent = s.parent
			t.transplant(s, s.right)
			s.right = n.right
			s.right.parent = s
		}
		t.transplant(n, s)
		s.left = n.left
		s.left.parent = s
		s.color = n.color
	}
	t.length--
	if removed == black {
		t.deleteFixup(u, uParent)
	}
	n.left, n.right, n.parent = nil, nil, nil
}

// transplant replaces the subtree rooted at old with the one rooted at
// repl in old's parent slot. repl may be nil; old's own links are left
// alone.
func (t *Tree[R]) transplant(old, repl *Node[R]) {
	switch {
	case old.parent == nil:
		t.root = repl
	case old == old.parent.left:
		old.parent.left = repl
	default:
		old.parent.right = repl
	}
	if repl != nil {
		repl.parent = old.parent
	}
}

// deleteFixup resolves the black deficiency left by splicing out a
// black node. u is the node that filled the removed slot (nil when a
// leaf was removed) and uParent its parent; the deficiency is tracked
// by these two references rather than by a persisted double-black
// color. Every path through u is one black node short until the loop
// either reaches the root, finds a red node to blacken, or restructures
// around a red nephew.
func (t *Tree[R]) deleteFixup(u, uParent *Node[R]) {
	for u != t.root && !u.Red() {
		d := dirLeft
		if u != uParent.left {
			d = dirRight
		}
		// The deficient side is one black short, so the sibling subtree
		// has black height of at least one and the sibling exists.
		sibling := uParent.child(d.flip())

		if sibling.Red() {
			// Red sibling: rotate it above the parent. The new sibling
			// is one of its former children, which is black, reducing
			// to the cases below.
			t.rotate(d, uParent)
			uParent.color = red
			sibling.color = black
			sibling = uParent.child(d.flip())
		}

		if !sibling.child(dirLeft).Red() && !sibling.child(dirRight).Red() {
			// Both nephews black: drop the sibling's black to even the
			// sides and push the deficiency to the parent. A red parent
			// absorbs it on loop exit.
			sibling.color = red
			u, uParent = uParent, uParent.parent
			continue
		}

		if !sibling.child(d.flip()).Red() {
			// Near nephew red, far nephew black: rotate at the sibling
			// and swap its color with the near nephew's, turning the
			// shape into the far-nephew-red case.
			near := sibling.child(d)
			t.rotate(d.flip(), sibling)
			sibling.color = red
			near.color = black
			sibling = uParent.child(d.flip())
		}
		// Far nephew red: rotate at the parent toward the deficient
		// side. The sibling takes the parent's color, parent and far
		// nephew turn black, and the deficiency is resolved.
		sibling.color = uParent.color
		uParent.color = black
		sibling.child(d.flip()).color = black
		t.rotate(d, uParent)
		u = t.root
	}
	if u != nil {
		u.color = black
	}
}
