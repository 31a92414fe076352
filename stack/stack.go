// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stack - an array backed LIFO stack
//
// unlike the trees, taking from an empty stack is treated as a
// logic error in the caller and is reported
package stack

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/treekit/fault"
)

// Stack - type to hold the items
type Stack[T any] struct {
	items []T
}

// New - create a stack, the last initial item is the top
func New[T any](initial ...T) *Stack[T] {
	s := &Stack[T]{
		items: make([]T, 0, len(initial)),
	}
	s.items = append(s.items, initial...)
	return s
}

// Push - add an item to the top
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop - remove and return the top item
// fails with ErrEmptyStack if there is nothing to take
func (s *Stack[T]) Pop() (T, error) {
	var item T
	n := len(s.items)
	if 0 == n {
		return item, fault.ErrEmptyStack
	}
	item = s.items[n-1]
	var zero T
	s.items[n-1] = zero // release reference
	s.items = s.items[:n-1]
	return item, nil
}

// Peek - return the top item without removing it
func (s *Stack[T]) Peek() (T, bool) {
	var item T
	n := len(s.items)
	if 0 == n {
		return item, false
	}
	return s.items[n-1], true
}

// IsEmpty - true if stack has no items
func (s *Stack[T]) IsEmpty() bool {
	return 0 == len(s.items)
}

// Size - number of items
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// String - bottom to top, e.g. "1 <- 2 <- 3"
func (s *Stack[T]) String() string {
	parts := make([]string, len(s.items))
	for i, item := range s.items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, " <- ")
}
