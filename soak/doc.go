// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package soak - randomised insert/remove workloads against an AVL
// tree, verified after every step against a reference multiset
//
// each Worker is a background.Process and delivers one Result to
// its Reporter when it stops
package soak
