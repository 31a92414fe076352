// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/treekit/avl"
	"github.com/bitmark-inc/treekit/counter"
	"github.com/bitmark-inc/treekit/fault"
)

const (
	// percentage of operations that are inserts
	insertPercent = 60

	// at most one progress line per interval
	progressInterval = 5 * time.Second
)

// Worker - one randomised workload
type Worker struct {
	log        *logger.L
	id         int
	operations int
	keyRange   int
	seed       int64
	reporter   Reporter

	tree     *avl.Tree[int]
	shadow   map[int]int
	tally    counter.Tally
	progress *rate.Limiter
}

// New - create a worker
//
// operations is the number of insert/remove steps, values are drawn
// from [0, keyRange)
func New(log *logger.L, id int, operations int, keyRange int, seed int64, reporter Reporter) (*Worker, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if nil == reporter {
		return nil, fault.ErrMissingReporter
	}
	if operations <= 0 {
		return nil, fault.ErrOperationCountTooSmall
	}
	if keyRange <= 0 {
		return nil, fault.ErrKeyRangeTooSmall
	}

	return &Worker{
		log:        log,
		id:         id,
		operations: operations,
		keyRange:   keyRange,
		seed:       seed,
		reporter:   reporter,
		tree:       avl.NewOrdered[int](),
		shadow:     make(map[int]int),
		progress:   rate.NewLimiter(rate.Every(progressInterval), 1),
	}, nil
}

// Run - background process
//
// runs until all operations are done, a check fails or shutdown is
// closed, then sends exactly one Result
func (w *Worker) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log
	log.Infof("worker[%d] starting  seed: %d  operations: %d  key range: %d", w.id, w.seed, w.operations, w.keyRange)

	rng := rand.New(rand.NewSource(w.seed))

	var err error
	stopped := false

loop:
	for i := 0; i < w.operations; i += 1 {
		select {
		case <-shutdown:
			stopped = true
			break loop
		default:
		}

		value := rng.Intn(w.keyRange)
		if rng.Intn(100) < insertPercent {
			w.insert(value)
		} else {
			w.remove(value)
		}

		if err = w.verify(value); nil != err {
			log.Errorf("worker[%d] step: %d  value: %d  error: %s", w.id, i, value, err)
			break loop
		}
		w.tally.Checks.Increment()

		if w.progress.Allow() {
			log.Debugf("worker[%d] step: %d  size: %d  height: %d", w.id, i, w.tree.Size(), w.tree.Height())
		}
	}

	log.Infof("worker[%d] finished  %s", w.id, &w.tally)

	w.reporter.Report(Result{
		Worker:   w.id,
		Seed:     w.seed,
		Tally:    &w.tally,
		Size:     w.tree.Size(),
		Distinct: w.tree.Distinct(),
		Height:   w.tree.Height(),
		Stopped:  stopped,
		Err:      err,
	})
}

func (w *Worker) insert(value int) {
	w.tree.Insert(value)
	w.shadow[value] += 1
	w.tally.Inserts.Increment()
}

func (w *Worker) remove(value int) {
	w.tree.Remove(value)
	if n, ok := w.shadow[value]; ok {
		if n > 1 {
			w.shadow[value] = n - 1
		} else {
			delete(w.shadow, value)
		}
		w.tally.Removes.Increment()
	} else {
		w.tally.Misses.Increment()
	}
}

// check tree structure, then compare with the reference multiset
func (w *Worker) verify(value int) error {
	if err := w.tree.Check(); nil != err {
		return err
	}

	expected := w.expected()
	if len(expected) != w.tree.Size() {
		return fmt.Errorf("%w: size: %d  expected: %d", fault.ErrOperationMismatch, w.tree.Size(), len(expected))
	}

	actual := w.tree.ToArray()
	for i, v := range expected {
		if actual[i] != v {
			return fmt.Errorf("%w: index: %d  value: %d  expected: %d", fault.ErrOperationMismatch, i, actual[i], v)
		}
	}

	n := 0
	if node := w.tree.Find(value); nil != node {
		n = node.Count()
	}
	if n != w.shadow[value] {
		return fmt.Errorf("%w: count of: %d  is: %d  expected: %d", fault.ErrOperationMismatch, value, n, w.shadow[value])
	}
	return nil
}

// sorted expansion of the reference multiset
func (w *Worker) expected() []int {
	keys := make([]int, 0, len(w.shadow))
	for k := range w.shadow {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	values := []int{}
	for _, k := range keys {
		for j := 0; j < w.shadow[k]; j += 1 {
			values = append(values, k)
		}
	}
	return values
}
