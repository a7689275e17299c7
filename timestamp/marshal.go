// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"encoding/hex"

	"github.com/bitmark-inc/uuidtime/fault"
)

// description of binary record
const (
	secondsStart = 0
	secondsSize  = 8
	nanosStart   = secondsStart + secondsSize
	nanosSize    = 4
	counterStart = nanosStart + nanosSize
	counterSize  = 2
	totalSize    = secondsSize + nanosSize + counterSize
	hexSize      = 2 * totalSize
)

// String - convert to string
func (ts Timestamp) String() string {
	b, err := ts.MarshalBinary()
	if nil != err {
		fault.Panic("timestamp to string failed")
	}
	return hex.EncodeToString(b)
}

// MarshalBinary - convert to binary
//
// marshal the value in big-endian order (so database indexing will be
// in ascending time order)
func (ts Timestamp) MarshalBinary() ([]byte, error) {
	b := []byte{
		byte(ts.seconds >> 56), // bytes 1-8: seconds
		byte(ts.seconds >> 48),
		byte(ts.seconds >> 40),
		byte(ts.seconds >> 32),
		byte(ts.seconds >> 24),
		byte(ts.seconds >> 16),
		byte(ts.seconds >> 8),
		byte(ts.seconds),
		byte(ts.nanos >> 24), // bytes 9-12: nanoseconds
		byte(ts.nanos >> 16),
		byte(ts.nanos >> 8),
		byte(ts.nanos),
		byte(ts.counter >> 8), // bytes 13-14: counter
		byte(ts.counter),
	}
	return b, nil
}

// UnmarshalBinary - convert from binary
func (ts *Timestamp) UnmarshalBinary(s []byte) error {
	if totalSize != len(s) {
		return fault.ErrInvalidLength
	}
	ts.seconds = uint64(s[secondsStart])<<56 |
		uint64(s[secondsStart+1])<<48 |
		uint64(s[secondsStart+2])<<40 |
		uint64(s[secondsStart+3])<<32 |
		uint64(s[secondsStart+4])<<24 |
		uint64(s[secondsStart+5])<<16 |
		uint64(s[secondsStart+6])<<8 |
		uint64(s[secondsStart+7])<<0
	ts.nanos = uint32(s[nanosStart])<<24 |
		uint32(s[nanosStart+1])<<16 |
		uint32(s[nanosStart+2])<<8 |
		uint32(s[nanosStart+3])<<0
	ts.counter = uint16(s[counterStart])<<8 |
		uint16(s[counterStart+1])<<0

	return nil
}

// MarshalText - convert to hex text
func (ts Timestamp) MarshalText() ([]byte, error) {
	b, err := ts.MarshalBinary()
	if nil != err {
		return nil, err
	}

	h := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(h, b)

	return h, nil
}

// UnmarshalText - convert from hex text
func (ts *Timestamp) UnmarshalText(s []byte) error {
	if hexSize != len(s) {
		return fault.ErrInvalidLength
	}

	b := make([]byte, totalSize)
	_, err := hex.Decode(b, s)
	if nil != err {
		return err
	}

	return ts.UnmarshalBinary(b)
}

// MarshalJSON - convert to JSON
func (ts Timestamp) MarshalJSON() ([]byte, error) {

	b, err := ts.MarshalBinary()
	if nil != err {
		return nil, err
	}

	// length = '"' + hex characters + '"'
	h := make([]byte, hex.EncodedLen(len(b))+2)
	h[0] = '"'
	hex.Encode(h[1:], b)
	h[len(h)-1] = '"'

	return h, nil
}

// UnmarshalJSON - convert from JSON
func (ts *Timestamp) UnmarshalJSON(s []byte) error {

	// special case for null -> same as all '0'
	if 4 == len(s) && "null" == string(s) {
		ts.seconds = 0
		ts.nanos = 0
		ts.counter = 0
		return nil
	}

	// length = '"' + hex characters + '"'
	if hexSize+2 != len(s) {
		return fault.ErrInvalidLength
	}
	if '"' != s[0] || '"' != s[len(s)-1] {
		return fault.ErrInvalidCharacter
	}

	return ts.UnmarshalText(s[1 : len(s)-1])
}
