// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// BFS - visit nodes level by level, left to right
func (tree *Tree[T]) BFS(f func(*Node[T])) {
	if nil == tree.root {
		return
	}
	queue := []*Node[T]{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		f(p)
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
}

// InOrder - visit left, node, right, i.e. ascending values
func (tree *Tree[T]) InOrder(f func(*Node[T])) {
	inOrder(tree.root, f)
}

// PreOrder - visit node, left, right
func (tree *Tree[T]) PreOrder(f func(*Node[T])) {
	preOrder(tree.root, f)
}

// PostOrder - visit left, right, node
func (tree *Tree[T]) PostOrder(f func(*Node[T])) {
	postOrder(tree.root, f)
}

func inOrder[T cmp.Ordered](p *Node[T], f func(*Node[T])) {
	if nil == p {
		return
	}
	inOrder(p.left, f)
	f(p)
	inOrder(p.right, f)
}

func preOrder[T cmp.Ordered](p *Node[T], f func(*Node[T])) {
	if nil == p {
		return
	}
	f(p)
	preOrder(p.left, f)
	preOrder(p.right, f)
}

func postOrder[T cmp.Ordered](p *Node[T], f func(*Node[T])) {
	if nil == p {
		return
	}
	postOrder(p.left, f)
	postOrder(p.right, f)
	f(p)
}
