// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clocksequence

import (
	"sync/atomic"

	"github.com/bitmark-inc/uuidtime/counter"
	"github.com/bitmark-inc/uuidtime/random"
)

// the wire format keeps 2 status bits in the 16 bit sequence field,
// so only 14 bits are usable and the counter must wrap before the
// status bits would be disturbed
const sequenceMask = 65535 >> 2

// Zero - a counter that always returns zero
//
// for identifier formats that carry enough random bits elsewhere and
// have no use for a disambiguation counter
type Zero struct{}

// GenerateSequence - unconditionally zero, inputs are ignored
func (Zero) GenerateSequence(seconds uint64, subsecNanos uint32) uint16 {
	return 0
}

// Counter - a thread-safe wrapping counter producing 14 bit values
//
// one cell shared by all callers holding the same instance; every
// call is a single atomic increment, nothing blocks
type Counter struct {
	count counter.Counter
}

// New - a counter starting from a fixed seed
//
// the seed should normally be random so that systems minting
// identifiers with the same timestamps are unlikely to collide; a
// fixed value is for tests and externally coordinated schemes,
// otherwise use NewRandom
func New(seed uint16) *Counter {
	c := &Counter{}
	c.count.Set(uint32(seed))
	return c
}

// NewRandom - a counter starting from a random seed
func NewRandom() *Counter {
	return New(random.U16())
}

// process-wide shared counter with its one-shot seeding flag
var sharedData struct {
	initialised uint32 // atomic flag: 0 = unseeded
	context     Counter
}

// Shared - the process-wide counter instance
//
// seeding happens lazily on first use: the caller winning the
// compare-and-swap on the flag stores a random seed, losers proceed
// without re-seeding.  Several callers racing the unseeded state is
// tolerated: the seed can only shift where counting starts, it cannot
// corrupt the cell.  The instance is never reset for the life of the
// process and its state is not persisted across restarts.
func Shared() *Counter {
	if atomic.CompareAndSwapUint32(&sharedData.initialised, 0, 1) {
		sharedData.context.count.Set(uint32(random.U16()))
	}
	return &sharedData.context
}

// GenerateSequence - the next value in the sequence
//
// the seconds and subsecNanos inputs are deliberately ignored:
// disambiguation comes purely from the ever-incrementing cell, so
// identifiers stay distinct even under a frozen or coarse clock.
// Concurrent calls each observe a distinct pre-wrap value, but the
// emitted values are not ordered across callers and need not pair up
// with the order of the clock reads that accompanied them.
func (c *Counter) GenerateSequence(seconds uint64, subsecNanos uint32) uint16 {
	return uint16(c.count.Increment()) % sequenceMask
}
