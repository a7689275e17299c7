// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"time"

	"github.com/bitmark-inc/uuidtime/fault"
)

// TicksBetweenEpochs - the number of 100 nanosecond ticks between the
// RFC 4122 epoch (1582-10-15 00:00:00) and the Unix epoch
// (1970-01-01 00:00:00)
const TicksBetweenEpochs uint64 = 0x01B21DD213814000

// ticks per second and nanoseconds per tick for the RFC 4122 encoding
const (
	ticksPerSecond = 10000000
	nanosPerTick   = 100
)

// ClockSequence - a counter that supports the uniqueness of
// timestamps minted within one clock tick
//
// GenerateSequence is called once for each Timestamp constructed from
// Unix parts; the seconds and subsecNanos arguments are the instant
// being stamped, so an implementation may derive its output from them
// or ignore them entirely
type ClockSequence interface {
	GenerateSequence(seconds uint64, subsecNanos uint32) uint16
}

// Timestamp - one instant, stored as Unix (seconds, nanos) with the
// disambiguation counter used by the tick encoding
//
// a value type: two Timestamps with equal fields are interchangeable
type Timestamp struct {
	seconds uint64
	nanos   uint32 // 0 .. 999,999,999
	counter uint16
}

// for simulating a broken host clock in tests
var systemClock = time.Now

// Now - a Timestamp for the current system time
//
// reads the wall clock once and feeds the same (seconds, nanos) pair
// to the clock sequence; a clock reading before the Unix epoch means
// the host clock is broken and aborts rather than storing an
// underflowed seconds value
func Now(sequence ClockSequence) Timestamp {
	now := systemClock()
	seconds := now.Unix()
	if seconds < 0 {
		fault.Panicf("timestamp: system clock reads %v, before the unix epoch", now)
	}
	return FromUnix(sequence, uint64(seconds), uint32(now.Nanosecond()))
}

// FromUnix - a Timestamp from explicit Unix parts
//
// the supplied parts are stored verbatim and passed through to the
// clock sequence; nanos is trusted to be below one second
func FromUnix(sequence ClockSequence, seconds uint64, nanos uint32) Timestamp {
	return Timestamp{
		seconds: seconds,
		nanos:   nanos,
		counter: sequence.GenerateSequence(seconds, nanos),
	}
}

// FromRFC4122 - a Timestamp from a count of 100 ns ticks since the
// RFC 4122 epoch, plus the counter read from the same identifier
//
// the counter is stored verbatim with no range check; this is a low
// level building block trusted to be driven by assembly code that
// already masked the field
func FromRFC4122(ticks uint64, counter uint16) Timestamp {
	return Timestamp{
		seconds: (ticks - TicksBetweenEpochs) / ticksPerSecond,
		nanos:   uint32((ticks-TicksBetweenEpochs)%ticksPerSecond) * nanosPerTick,
		counter: counter,
	}
}

// RFC4122 - the tick encoding: 100 ns ticks since 1582-10-15 and the
// counter
//
// precision below 100 ns is truncated, not rounded, so a round trip
// keeps only the tick-aligned part of nanos
func (ts Timestamp) RFC4122() (ticks uint64, counter uint16) {
	return TicksBetweenEpochs + ts.seconds*ticksPerSecond + uint64(ts.nanos)/nanosPerTick,
		ts.counter
}

// Unix - the split encoding: whole and fractional seconds since the
// Unix epoch
func (ts Timestamp) Unix() (seconds uint64, nanos uint32) {
	return ts.seconds, ts.nanos
}

// UnixNanos - the fractional seconds field only
//
// Deprecated: use Unix instead.  This does not return nanoseconds
// since the Unix epoch: the return width is too small to hold that,
// so it only ever returned the fractional part.  External callers
// depend on the existing behaviour, which is therefore frozen.
func (ts Timestamp) UnixNanos() uint32 {
	return ts.nanos
}

// Time - the instant as a time.Time in UTC
//
// for logging and display; the counter is not representable and is
// dropped
func (ts Timestamp) Time() time.Time {
	return time.Unix(int64(ts.seconds), int64(ts.nanos)).UTC()
}
