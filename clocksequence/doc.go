// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clocksequence - disambiguation counter strategies
//
// the shipped implementations of timestamp.ClockSequence:
//
//   Zero    -> always zero, for identifier formats whose uniqueness
//              comes from random bits elsewhere
//   Counter -> a shared, thread-safe wrapping counter producing
//              14 bit values, for the older time-based formats
//
// a strategy is selected by the caller at each construction call, so
// format-specific policies stay out of the timestamp package
package clocksequence
