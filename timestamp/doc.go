// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package timestamp - a moment in time embeddable inside a binary identifier
//
// identifier formats encode time differently: the older time-based
// formats count 100 ns ticks from the Gregorian reform date
// (1582-10-15) and carry a small disambiguation counter, while newer
// formats split whole and fractional Unix seconds.  This package
// holds one Timestamp type that converts between both encodings so
// version-specific assembly code does not re-derive the epoch
// arithmetic.
//
// consists of:
//   seconds (uint64) -> whole seconds since the Unix epoch
//   nanos (uint32)   -> fractional time [0 .. 999,999,999]
//   counter (uint16) -> disambiguation value for the tick encoding
//
// the canonical internal form is Unix (seconds, nanos); only the two
// tick conversions pay the epoch-shift cost
package timestamp
