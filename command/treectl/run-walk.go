// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treekit/avl"
	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/traverse"
)

type walkFunc func(start *avl.Node[int], children traverse.Children[*avl.Node[int]], visit traverse.Visit[*avl.Node[int]])

var walkOrders = map[string]walkFunc{
	"bfs":  traverse.BFS[*avl.Node[int]],
	"pre":  traverse.DFSPreOrder[*avl.Node[int]],
	"post": traverse.DFSPostOrder[*avl.Node[int]],
}

func runWalk(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	values := make([]int, 0, c.NArg())
	for _, arg := range c.Args() {
		n, err := strconv.Atoi(arg)
		if nil != err {
			return err
		}
		values = append(values, n)
	}

	order, err := walkOrder(avl.NewOrdered(values...), c.String("order"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "order: %s\n", c.String("order"))
	}
	printOrder(m.w, order)
	return nil
}

// walkOrder - node values in the requested visit order
func walkOrder(tree *avl.Tree[int], order string) ([]int, error) {
	walk, ok := walkOrders[order]
	if !ok {
		return nil, fault.ErrNotFoundTraverseOrder
	}

	visited := []int{}
	walk(tree.Root(), (*avl.Node[int]).Children, func(node *avl.Node[int]) bool {
		visited = append(visited, node.Value())
		return false
	})
	return visited, nil
}

func printOrder(w io.Writer, order []int) {
	for i, v := range order {
		if 0 != i {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, v)
	}
	fmt.Fprintln(w)
}
