// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"reflect"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treekit/avl"
	"github.com/bitmark-inc/treekit/fault"
)

type scenario struct {
	title string
	run   func() (actual interface{}, expected interface{})
}

var scenarios = []scenario{
	{
		title: "insert 10 5 20 10",
		run: func() (interface{}, interface{}) {
			tree := avl.NewOrdered(10, 5, 20, 10)
			return []interface{}{tree.ToArray(), tree.Size()}, []interface{}{[]int{5, 10, 10, 20}, 4}
		},
	},
	{
		title: "insert 8 8 3 10, remove 8 twice",
		run: func() (interface{}, interface{}) {
			tree := avl.NewOrdered(8, 8, 3, 10)
			first := tree.Remove(8).ToArray()
			second := tree.Remove(8).ToArray()
			return []interface{}{first, second}, []interface{}{[]int{3, 8, 10}, []int{3, 10}}
		},
	},
	{
		title: "insert 7 3 9, min and max",
		run: func() (interface{}, interface{}) {
			tree := avl.NewOrdered(7, 3, 9)
			low, _ := tree.Min()
			high, _ := tree.Max()
			return []interface{}{low, high}, []interface{}{3, 9}
		},
	},
	{
		title: "empty tree",
		run: func() (interface{}, interface{}) {
			tree := avl.NewOrdered[int]()
			tree.Remove(42)
			return []interface{}{tree.IsEmpty(), tree.ToArray(), nil == tree.Find(42), tree.Size()},
				[]interface{}{true, []int{}, true, 0}
		},
	},
	{
		title: "insert 1..7 ascending, height",
		run: func() (interface{}, interface{}) {
			tree := avl.NewOrdered(1, 2, 3, 4, 5, 6, 7)
			return []interface{}{tree.Height(), tree.Root().Value()}, []interface{}{3, 4}
		},
	},
}

func runScenario(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return runScenarios(m.w, m.verbose)
}

// runScenarios - print each outcome, error if any does not match
func runScenarios(w io.Writer, verbose bool) error {
	failed := 0
	for i, s := range scenarios {
		actual, expected := s.run()
		status := "ok"
		if !reflect.DeepEqual(actual, expected) {
			status = "FAIL"
			failed += 1
		}
		fmt.Fprintf(w, "scenario %d: %-34s %s\n", i+1, s.title, status)
		if verbose || "ok" != status {
			fmt.Fprintf(w, "    actual:   %v\n", actual)
			fmt.Fprintf(w, "    expected: %v\n", expected)
		}
	}
	if 0 != failed {
		return fmt.Errorf("%d scenario(s) failed: %w", failed, fault.ErrOperationMismatch)
	}
	return nil
}
