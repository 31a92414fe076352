// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/treekit/avl"
	"github.com/bitmark-inc/treekit/traverse"
)

type testNode struct {
	id       string
	children []*testNode
}

func children(n *testNode) []*testNode {
	return n.children
}

// makeGraph - builds the graph:
//
//	    A
//	   /|\
//	  B C D
//	 / \   \
//	E   F   G
func makeGraph() *testNode {
	e := &testNode{id: "E"}
	f := &testNode{id: "F"}
	g := &testNode{id: "G"}
	b := &testNode{id: "B", children: []*testNode{e, f}}
	c := &testNode{id: "C"}
	d := &testNode{id: "D", children: []*testNode{g}}
	return &testNode{id: "A", children: []*testNode{b, c, d}}
}

type walkFunc func(*testNode, traverse.Children[*testNode], traverse.Visit[*testNode])

func collect(walk walkFunc, start *testNode, stopAt string) []string {
	visited := []string{}
	walk(start, children, func(n *testNode) bool {
		visited = append(visited, n.id)
		return n.id == stopAt
	})
	return visited
}

func TestOrders(t *testing.T) {
	cases := []struct {
		name     string
		walk     walkFunc
		expected []string
	}{
		{"bfs", traverse.BFS[*testNode], []string{"A", "B", "C", "D", "E", "F", "G"}},
		{"pre-order", traverse.DFSPreOrder[*testNode], []string{"A", "B", "E", "F", "C", "D", "G"}},
		{"post-order", traverse.DFSPostOrder[*testNode], []string{"E", "F", "B", "C", "G", "D", "A"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, collect(c.walk, makeGraph(), ""), "wrong order")
			assert.Equal(t, []string{}, collect(c.walk, nil, ""), "nil start visited")
			assert.Equal(t, []string{"X"}, collect(c.walk, &testNode{id: "X"}, ""), "single node")
		})
	}
}

func TestStop(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, collect(traverse.BFS[*testNode], makeGraph(), "C"), "bfs did not stop")
	assert.Equal(t, []string{"A", "B", "E"}, collect(traverse.DFSPreOrder[*testNode], makeGraph(), "E"), "pre-order did not stop")
	assert.Equal(t, []string{"E", "F", "B"}, collect(traverse.DFSPostOrder[*testNode], makeGraph(), "B"), "post-order did not stop")
}

func TestCyclesAndNilChildren(t *testing.T) {
	a := &testNode{id: "A"}
	b := &testNode{id: "B"}
	c := &testNode{id: "C"}
	a.children = []*testNode{b, nil, c}
	b.children = []*testNode{a, c}
	c.children = []*testNode{a, b}

	assert.Equal(t, []string{"A", "B", "C"}, collect(traverse.BFS[*testNode], a, ""), "bfs revisited")
	assert.Equal(t, []string{"A", "B", "C"}, collect(traverse.DFSPreOrder[*testNode], a, ""), "pre-order revisited")
	assert.Equal(t, []string{"C", "B", "A"}, collect(traverse.DFSPostOrder[*testNode], a, ""), "post-order revisited")
}

// the AVL node children can drive the walks directly
func TestWalkAVLTree(t *testing.T) {
	tree := avl.NewOrdered(1, 2, 3, 4, 5, 6, 7)

	levels := []int{}
	traverse.BFS(tree.Root(), (*avl.Node[int]).Children, func(n *avl.Node[int]) bool {
		levels = append(levels, n.Value())
		return false
	})
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, levels, "wrong level order")
}
