// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a plain, unbalanced binary search tree with parent
// pointers
//
// Equal values are kept as separate nodes placed in the right
// sub-tree, unlike package avl which folds them into a count.
//
// Note: an individual tree is not thread safe.
package bst

import (
	"cmp"

	"github.com/bitmark-inc/treekit/fault"
)

// Node - a node in the tree
type Node[T cmp.Ordered] struct {
	left  *Node[T] // left sub-tree
	right *Node[T] // right sub-tree
	up    *Node[T] // points to parent node
	value T
}

// Value - read the value from a node item
func (p *Node[T]) Value() T {
	return p.value
}

// Left - left child or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right child or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Parent - return parent node of a node, nil for the root
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Tree - type to hold the root node of a tree
type Tree[T cmp.Ordered] struct {
	root  *Node[T]
	count int
}

// New - create a tree, with an optional root value
func New[T cmp.Ordered](root ...T) *Tree[T] {
	tree := &Tree[T]{}
	for _, value := range root {
		tree.Insert(value)
	}
	return tree
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.count
}

// Insert - add a new node, duplicates go to the right
// returns the new node
func (tree *Tree[T]) Insert(value T) *Node[T] {
	n := &Node[T]{value: value}
	tree.count += 1

	if nil == tree.root {
		tree.root = n
		return n
	}

	p := tree.root
	for {
		if value < p.value {
			if nil == p.left {
				p.left = n
				n.up = p
				return n
			}
			p = p.left
		} else {
			if nil == p.right {
				p.right = n
				n.up = p
				return n
			}
			p = p.right
		}
	}
}

// Find - the first node found holding value, nil if none
func (tree *Tree[T]) Find(value T) *Node[T] {
	p := tree.root
	for nil != p {
		switch {
		case value == p.value:
			return p
		case value < p.value:
			p = p.left
		default:
			p = p.right
		}
	}
	return nil
}

// FindMin - node with the lowest value in the sub-tree at from, nil
// for the whole tree
func (tree *Tree[T]) FindMin(from *Node[T]) (*Node[T], error) {
	if nil == from {
		from = tree.root
	}
	if nil == from {
		return nil, fault.ErrEmptyTree
	}
	for nil != from.left {
		from = from.left
	}
	return from, nil
}

// FindMax - node with the highest value in the sub-tree at from, nil
// for the whole tree
func (tree *Tree[T]) FindMax(from *Node[T]) (*Node[T], error) {
	if nil == from {
		from = tree.root
	}
	if nil == from {
		return nil, fault.ErrEmptyTree
	}
	for nil != from.right {
		from = from.right
	}
	return from, nil
}

// Remove - delete one node holding value
// returns false if the value is not in the tree
func (tree *Tree[T]) Remove(value T) bool {
	q := tree.Find(value)
	if nil == q {
		return false
	}
	tree.count -= 1

	if nil != q.left && nil != q.right {
		// two children: take the value of the in-order successor
		// and unlink the successor instead, it has no left child
		r, _ := tree.FindMin(q.right)
		q.value = r.value
		q = r
	}

	child := q.left
	if nil == child {
		child = q.right
	}
	tree.replace(q, child)
	return true
}

// internal: put child in the place of q under q's parent
func (tree *Tree[T]) replace(q *Node[T], child *Node[T]) {
	parent := q.up
	if nil != child {
		child.up = parent
	}
	switch {
	case nil == parent:
		tree.root = child
	case parent.left == q:
		parent.left = child
	default:
		parent.right = child
	}
	q.up = nil
	q.left = nil
	q.right = nil
}

// CheckParents - check the up pointers for consistency
func (tree *Tree[T]) CheckParents() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[T cmp.Ordered](p *Node[T], up *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}
