// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree that folds duplicate keys into a
// per-node count
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Ordering is given by a comparator supplied when the tree is
// created.  Inserting a key that is already present increments the
// count on its node, so the shape and height of the tree depend only
// on the distinct keys while Size reports the total number of
// insertions still present.
//
// Nodes have no parent pointers.  Insert and Remove recurse down the
// comparator path and each call returns the possibly rotated sub-tree
// so that the caller can re-attach it.
package avl
