// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/treekit/fault"
)

// Check - verify ordering, balance, heights, counts and size
// returns nil if consistent, otherwise an invalid error describing the
// first fault found
func (tree *Tree[T]) Check() error {
	total, _, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if total != tree.size {
		return fault.InvalidError(fmt.Sprintf("size: %d  expected: %d", tree.size, total))
	}
	return nil
}

// internal consistency checker, low and high bound the values allowed
// in the sub-tree
// returns the sum of counts and the computed height
func (tree *Tree[T]) check(p *Node[T], low *T, high *T) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && tree.compare(p.value, *low) <= 0 {
		return 0, 0, fault.InvalidError(fmt.Sprintf("value: %v not above: %v", p.value, *low))
	}
	if nil != high && tree.compare(p.value, *high) >= 0 {
		return 0, 0, fault.InvalidError(fmt.Sprintf("value: %v not below: %v", p.value, *high))
	}
	if p.count < 1 {
		return 0, 0, fault.InvalidError(fmt.Sprintf("value: %v count: %d", p.value, p.count))
	}

	ln, lh, err := tree.check(p.left, low, &p.value)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := tree.check(p.right, &p.value, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, 0, fault.InvalidError(fmt.Sprintf("value: %v height: %d  expected: %d", p.value, p.height, h))
	}
	if b := lh - rh; b > 1 || b < -1 {
		return 0, 0, fault.InvalidError(fmt.Sprintf("value: %v unbalanced: %+d", p.value, b))
	}
	return ln + rn + p.count, h, nil
}
