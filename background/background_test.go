// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/bitmark-inc/treekit/background"
)

type looper struct {
	count int64
	final int64
}

const (
	finalCount1 = 987654321
	finalCount2 = 897645312
)

func (state *looper) Run(args interface{}, shutdown <-chan struct{}) {

	t := args.(*testing.T)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&state.count, 9)
		time.Sleep(time.Millisecond)
	}

	if 0 == atomic.LoadInt64(&state.count) {
		t.Errorf("process never ran")
	}
	atomic.StoreInt64(&state.count, state.final)
}

func TestStop(t *testing.T) {

	proc1 := &looper{final: finalCount1}
	proc2 := &looper{final: finalCount2}

	p := background.Start(background.Processes{proc1, proc2}, t)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	if finalCount1 != atomic.LoadInt64(&proc1.count) {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCount1, proc1.count)
	}
	if finalCount2 != atomic.LoadInt64(&proc2.count) {
		t.Fatalf("stop failed: final value expected: %d  actual: %d", finalCount2, proc2.count)
	}

	// second stop must not block or panic
	p.Stop()
}

type oneShot struct {
	ran int32
}

func (state *oneShot) Run(args interface{}, shutdown <-chan struct{}) {
	atomic.StoreInt32(&state.ran, 1)
}

func TestCompletion(t *testing.T) {

	procs := []*oneShot{{}, {}, {}}
	p := background.Start(background.Processes{procs[0], procs[1], procs[2]}, nil)

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("processes did not complete")
	}

	for i, proc := range procs {
		if 1 != atomic.LoadInt32(&proc.ran) {
			t.Errorf("process[%d] did not run", i)
		}
	}

	// stop after completion returns immediately
	p.Stop()
}

func TestEmpty(t *testing.T) {
	p := background.Start(background.Processes{}, nil)
	p.Wait()
	p.Stop()
}
