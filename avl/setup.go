// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Comparator - total order over the element type
// returns negative if a < b, zero if a == b and positive if a > b
type Comparator[T any] func(a T, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	size    int
	compare Comparator[T]
}

// New - create a tree ordered by compare, optionally pre-loaded with
// some values
func New[T any](compare Comparator[T], initial ...T) *Tree[T] {
	tree := &Tree[T]{
		root:    nil,
		size:    0,
		compare: compare,
	}
	for _, value := range initial {
		tree.Insert(value)
	}
	return tree
}

// NewOrdered - create a tree using the natural ordering of T
func NewOrdered[T cmp.Ordered](initial ...T) *Tree[T] {
	return New[T](cmp.Compare[T], initial...)
}

// Size - total number of values in the tree, counting duplicates
func (tree *Tree[T]) Size() int {
	return tree.size
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return 0 == tree.size
}

// Clear - drop all nodes
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.size = 0
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the root node, zero for an empty tree
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// Distinct - number of nodes, i.e. the number of different values
func (tree *Tree[T]) Distinct() int {
	n := 0
	tree.Walk(func(T, int) bool {
		n += 1
		return true
	})
	return n
}
