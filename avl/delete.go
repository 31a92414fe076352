// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes one instance of a value from the tree
//
// a value with a count above one only has its count decremented,
// removing a value that is not present does nothing
// returns the tree to allow chaining
func (tree *Tree[T]) Remove(value T) *Tree[T] {
	removed := false
	tree.root, removed = tree.delete(value, tree.root)
	if removed {
		tree.size -= 1
	}
	return tree
}

// internal delete routine
func (tree *Tree[T]) delete(value T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // value not in tree
		return nil, false
	}

	removed := false
	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		p.left, removed = tree.delete(value, p.left)
	case c > 0: // value > p.value
		p.right, removed = tree.delete(value, p.right)
	default: // found
		if p.count > 1 {
			p.count -= 1
			return p, true
		}
		if nil == p.left {
			return p.right, true
		}
		if nil == p.right {
			return p.left, true
		}

		// two children: pull up the in-order successor, its
		// whole count moves with it
		successor := p.right.first()
		p.value = successor.value
		p.count = successor.count
		successor.count = 1
		p.right = tree.splice(p.value, p.right)
		removed = true
	}
	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// internal: unlink the node holding value (count already 1) from the
// sub-tree p and rebalance on the way back
//
// the logical entry has already been accounted for by the caller so
// this does not report a removal
func (tree *Tree[T]) splice(value T, p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}
	switch c := tree.compare(value, p.value); {
	case c < 0:
		p.left = tree.splice(value, p.left)
	case c > 0:
		p.right = tree.splice(value, p.right)
	default:
		// the successor never has a left child
		return p.right
	}
	return rebalance(p)
}
