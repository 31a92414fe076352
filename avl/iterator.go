// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Min - return the lowest value, ok is false if the tree is empty
func (tree *Tree[T]) Min() (value T, ok bool) {
	p := tree.root.first()
	if nil == p {
		return value, false
	}
	return p.value, true
}

// Max - return the highest value, ok is false if the tree is empty
func (tree *Tree[T]) Max() (value T, ok bool) {
	p := tree.root.last()
	if nil == p {
		return value, false
	}
	return p.value, true
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Walk - visit each node in ascending order, stop early if f returns
// false
func (tree *Tree[T]) Walk(f func(value T, count int) bool) {
	walk(tree.root, f)
}

func walk[T any](p *Node[T], f func(T, int) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, f) {
		return false
	}
	if !f(p.value, p.count) {
		return false
	}
	return walk(p.right, f)
}

// ToArray - all values in ascending order, each repeated by its count
func (tree *Tree[T]) ToArray() []T {
	result := make([]T, 0, tree.size)
	tree.Walk(func(value T, count int) bool {
		for i := 0; i < count; i += 1 {
			result = append(result, value)
		}
		return true
	})
	return result
}
