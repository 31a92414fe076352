// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/treekit/fault"
)

// restore the height and balance of p after one of its sub-trees
// changed, returns the new root of the sub-tree
func rebalance[T any](p *Node[T]) *Node[T] {
	p.fixHeight()

	switch b := height(p.left) - height(p.right); {
	case b > 1: // left branch too high
		if balance(p.left) < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		// single LL rotation
		return rotateRight(p)

	case b < -1: // right branch too high
		if balance(p.right) > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		// single RR rotation
		return rotateLeft(p)
	}
	return p
}

// right rotation around y:
//
//	    y          x
//	   / \        / \
//	  x   c  →   a   y
//	 / \            / \
//	a   b          b   c
func rotateRight[T any](y *Node[T]) *Node[T] {
	x := y.left
	if nil == x {
		fault.Panicf("avl: right rotation of %v without left child", y.value)
	}
	y.left = x.right
	x.right = y

	y.fixHeight()
	x.fixHeight()
	return x
}

// left rotation around x, mirror of rotateRight
func rotateLeft[T any](x *Node[T]) *Node[T] {
	y := x.right
	if nil == y {
		fault.Panicf("avl: left rotation of %v without right child", x.value)
	}
	x.right = y.left
	y.left = x

	x.fixHeight()
	y.fixHeight()
	return y
}
