// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/treekit/fault"
)

var (
	ErrEmptyOne    = fault.EmptyError("empty one")
	ErrEmptyTwo    = fault.EmptyError("empty two")
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that the various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		empty    bool
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrEmptyOne, true, false, false, false, false},
		{ErrEmptyTwo, true, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false},
		{ErrExistsTwo, false, true, false, false, false},
		{ErrInvalidOne, false, false, true, false, false},
		{ErrInvalidTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fault.ErrEmptyStack, true, false, false, false, false},
		{fault.ErrEmptyTree, true, false, false, false, false},
		{fault.ErrInvalidStructPointer, false, false, true, false, false},
		{fault.ErrNotFoundOperation, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrEmpty(err) != e.empty {
			t.Errorf("%d: expected 'empty' == %v for err = %v", i, e.empty, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicf(t *testing.T) {
	defer func() {
		r := recover()
		if nil == r {
			t.Fatal("Panicf did not panic")
		}
		if "bad node: 7" != r {
			t.Errorf("panic value: actual: %q  expected: %q", r, "bad node: 7")
		}
	}()
	fault.Panicf("bad node: %d", 7)
}

func TestPanicIfError(t *testing.T) {
	fault.PanicIfError("nothing", nil)

	defer func() {
		if nil == recover() {
			t.Fatal("PanicIfError did not panic")
		}
	}()
	fault.PanicIfError("check", fault.ErrEmptyTree)
}
