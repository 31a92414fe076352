// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package traverse - breadth first and depth first walks over any
// node type
//
// The graph is described by a children function.  Each node is
// visited at most once, so graphs with cycles or shared children are
// safe.  The zero value of the node type means "no node".  A visit
// function that returns true stops the walk.
package traverse

// Children - returns the children of a node, zero values are ignored
type Children[N comparable] func(node N) []N

// Visit - called once for each node, return true to stop
type Visit[N comparable] func(node N) bool

// BFS - visit nodes in breadth first order starting from start
func BFS[N comparable](start N, children Children[N], visit Visit[N]) {
	var zero N
	if zero == start {
		return
	}

	visited := map[N]struct{}{start: {}}
	queue := []N{start}

	for len(queue) > 0 {
		node := queue[0]
		queue[0] = zero
		queue = queue[1:]

		if visit(node) {
			return
		}

		for _, child := range children(node) {
			if zero == child {
				continue
			}
			if _, ok := visited[child]; ok {
				continue
			}
			visited[child] = struct{}{}
			queue = append(queue, child)
		}
	}
}

// DFSPreOrder - visit a node before its children
func DFSPreOrder[N comparable](start N, children Children[N], visit Visit[N]) {
	var zero N
	if zero == start {
		return
	}
	w := walker[N]{
		children: children,
		visit:    visit,
		visited:  make(map[N]struct{}),
	}
	w.pre(start)
}

// DFSPostOrder - visit a node after all of its children
func DFSPostOrder[N comparable](start N, children Children[N], visit Visit[N]) {
	var zero N
	if zero == start {
		return
	}
	w := walker[N]{
		children: children,
		visit:    visit,
		visited:  make(map[N]struct{}),
	}
	w.post(start)
}

// internal: state of a depth first walk
type walker[N comparable] struct {
	children Children[N]
	visit    Visit[N]
	visited  map[N]struct{}
}

// returns true if the walk was stopped
func (w *walker[N]) pre(node N) bool {
	if _, ok := w.visited[node]; ok {
		return false
	}
	w.visited[node] = struct{}{}

	if w.visit(node) {
		return true
	}
	var zero N
	for _, child := range w.children(node) {
		if zero != child && w.pre(child) {
			return true
		}
	}
	return false
}

// returns true if the walk was stopped
func (w *walker[N]) post(node N) bool {
	if _, ok := w.visited[node]; ok {
		return false
	}
	w.visited[node] = struct{}{}

	var zero N
	for _, child := range w.children(node) {
		if zero != child && w.post(child) {
			return true
		}
	}
	return w.visit(node)
}
