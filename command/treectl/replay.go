// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/bitmark-inc/treekit/avl"
	"github.com/bitmark-inc/treekit/configuration"
	"github.com/bitmark-inc/treekit/fault"
)

// Script - the table returned by an operation script
type Script struct {
	Values     string      `gluamapper:"values"`
	Operations []Operation `gluamapper:"operations"`
}

// Operation - one step of a script
type Operation struct {
	Op    string      `gluamapper:"op"`
	Value interface{} `gluamapper:"value"`
}

type found struct {
	Value interface{} `json:"value"`
	Count int         `json:"count"`
}

type replayResult struct {
	Values   interface{} `json:"values"`
	Size     int         `json:"size"`
	Distinct int         `json:"distinct"`
	Height   int         `json:"height"`
	Min      interface{} `json:"min,omitempty"`
	Max      interface{} `json:"max,omitempty"`
	Found    []found     `json:"found,omitempty"`

	draw func(io.Writer) int
}

func readScript(fileName string) (*Script, error) {
	script := &Script{
		Values: "int",
	}
	if err := configuration.ParseConfigurationFile(fileName, script); nil != err {
		return nil, err
	}
	return script, nil
}

// replay - apply a script to a new tree of the declared value type
func replay(script *Script) (*replayResult, error) {
	switch strings.ToLower(script.Values) {
	case "", "int", "integer":
		return replayTree(avl.NewOrdered[int](), script.Operations, toInt)
	case "string":
		return replayTree(avl.NewOrdered[string](), script.Operations, toString)
	default:
		return nil, fault.ErrInvalidValueType
	}
}

func replayTree[T cmp.Ordered](tree *avl.Tree[T], operations []Operation, convert func(interface{}) (T, error)) (*replayResult, error) {

	result := &replayResult{}

	for i, operation := range operations {
		op := strings.ToLower(operation.Op)
		if "clear" == op {
			tree.Clear()
			continue
		}

		value, err := convert(operation.Value)
		if nil != err {
			return nil, fmt.Errorf("operation[%d]: %w", i+1, err)
		}

		switch op {
		case "insert", "add":
			tree.Insert(value)
		case "remove", "delete":
			tree.Remove(value)
		case "find":
			n := 0
			if node := tree.Find(value); nil != node {
				n = node.Count()
			}
			result.Found = append(result.Found, found{Value: value, Count: n})
		default:
			return nil, fmt.Errorf("operation[%d]: %q: %w", i+1, operation.Op, fault.ErrNotFoundOperation)
		}
	}

	if err := tree.Check(); nil != err {
		return nil, err
	}

	result.Values = tree.ToArray()
	result.Size = tree.Size()
	result.Distinct = tree.Distinct()
	result.Height = tree.Height()
	if v, ok := tree.Min(); ok {
		result.Min = v
	}
	if v, ok := tree.Max(); ok {
		result.Max = v
	}
	result.draw = func(w io.Writer) int {
		return tree.Print(w, true)
	}
	return result, nil
}

// Lua numbers arrive as float64
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case float64:
		// rejects NaN, ±Inf and anything that does not fit an int
		if n != math.Trunc(n) || n < float64(math.MinInt) || n >= -float64(math.MinInt) {
			return 0, fault.ErrInvalidValueType
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fault.ErrInvalidValueType
	}
}

func toString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fault.ErrInvalidValueType
	}
	return s, nil
}
