// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

//go:generate mockgen -source=result.go -destination=mocks/reporter.go -package=mocks

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treekit/counter"
)

// Result - final state of one worker
type Result struct {
	Worker   int
	Seed     int64
	Tally    *counter.Tally
	Size     int
	Distinct int
	Height   int
	Stopped  bool  // shutdown before all operations ran
	Err      error // first verification failure
}

// Reporter - receives worker results
type Reporter interface {
	Report(Result)
}

// LogReporter - reporter that writes results to a logger channel
// and accumulates totals over all workers
type LogReporter struct {
	log      *logger.L
	total    counter.Tally
	failures counter.Counter
}

// NewLogReporter - create a reporter on the "reporter" logger channel
func NewLogReporter() *LogReporter {
	return &LogReporter{
		log: logger.New("reporter"),
	}
}

// Report - log the result and add it to the totals
func (r *LogReporter) Report(result Result) {
	if nil != result.Tally {
		r.total.Merge(result.Tally)
	}

	if nil != result.Err {
		r.failures.Increment()
		r.log.Errorf("worker[%d] seed: %d  failed: %s", result.Worker, result.Seed, result.Err)
		return
	}
	r.log.Infof("worker[%d] seed: %d  size: %d  distinct: %d  height: %d  stopped: %v  %s",
		result.Worker, result.Seed, result.Size, result.Distinct, result.Height, result.Stopped, result.Tally)
}

// Total - accumulated counts of all reported workers
func (r *LogReporter) Total() *counter.Tally {
	return &r.total
}

// Failures - number of workers that reported an error
func (r *LogReporter) Failures() uint64 {
	return r.failures.Uint64()
}
