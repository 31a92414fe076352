// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a value to the tree, a value already present only has
// its count incremented
// returns the tree to allow chaining
func (tree *Tree[T]) Insert(value T) *Tree[T] {
	tree.root = tree.insert(value, tree.root)
	tree.size += 1
	return tree
}

// internal routine for insert
func (tree *Tree[T]) insert(value T, p *Node[T]) *Node[T] {
	if nil == p { // insert new node
		return newNode(value)
	}

	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		p.left = tree.insert(value, p.left)
	case c > 0: // value > p.value
		p.right = tree.insert(value, p.right)
	default:
		// duplicate: shape is unchanged
		p.count += 1
		return p
	}
	return rebalance(p)
}
