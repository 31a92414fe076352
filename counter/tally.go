// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"fmt"
)

// Tally - per operation counts for a tree workload
//
// all fields may be updated from separate goroutines
type Tally struct {
	Inserts Counter // every Insert call
	Removes Counter // Remove calls that found the value
	Misses  Counter // Remove calls for an absent value
	Checks  Counter // successful structural checks
}

// Operations - total tree operations
func (t *Tally) Operations() uint64 {
	return t.Inserts.Uint64() + t.Removes.Uint64() + t.Misses.Uint64()
}

// Merge - accumulate another tally into this one
func (t *Tally) Merge(other *Tally) {
	t.Inserts.Add(other.Inserts.Uint64())
	t.Removes.Add(other.Removes.Uint64())
	t.Misses.Add(other.Misses.Uint64())
	t.Checks.Add(other.Checks.Uint64())
}

// String - summary for logging
func (t *Tally) String() string {
	return fmt.Sprintf("inserts: %d  removes: %d  misses: %d  checks: %d",
		t.Inserts.Uint64(), t.Removes.Uint64(), t.Misses.Uint64(), t.Checks.Uint64())
}
