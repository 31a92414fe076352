// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[T any] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	value  T        // key part for ordering
	count  int      // number of insertions of value, >= 1
	height int      // height of sub-tree rooted here, leaf = 1
}

// allocate a new leaf node
func newNode[T any](value T) *Node[T] {
	return &Node[T]{
		value:  value,
		count:  1,
		height: 1,
	}
}

// Value - read the value from a node item
func (p *Node[T]) Value() T {
	return p.value
}

// Count - number of times the value is present
func (p *Node[T]) Count() int {
	return p.count
}

// Height - height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return height(p)
}

// Balance - height of left sub-tree minus height of right sub-tree
func (p *Node[T]) Balance() int {
	return balance(p)
}

// Left - left child or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right child or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Children - the non-nil children, left first
func (p *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], 0, 2)
	if nil != p.left {
		children = append(children, p.left)
	}
	if nil != p.right {
		children = append(children, p.right)
	}
	return children
}

// internal: height where an absent node is zero
func height[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: balance factor where an absent node is zero
func balance[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// internal: recompute height from the children
func (p *Node[T]) fixHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
}
