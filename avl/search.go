// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - find a specific value
// returns nil if the value is not in the tree
func (tree *Tree[T]) Find(value T) *Node[T] {
	return tree.search(value, tree.root)
}

func (tree *Tree[T]) search(value T, p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}

	switch c := tree.compare(value, p.value); {
	case c < 0: // value < p.value
		return tree.search(value, p.left)
	case c > 0: // value > p.value
		return tree.search(value, p.right)
	default:
		return p
	}
}

// Contains - true if the value is present at least once
func (tree *Tree[T]) Contains(value T) bool {
	return nil != tree.Find(value)
}
