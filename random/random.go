// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - a source of uniformly random small integers
//
// wraps the system entropy source; a failing entropy source is
// treated as a broken host environment, not a recoverable error
package random

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/bitmark-inc/uuidtime/fault"
)

// U16 - produce a uniformly random 16 bit value
func U16() uint16 {
	var buffer [2]byte
	_, err := io.ReadFull(rand.Reader, buffer[:])
	if nil != err {
		fault.PanicWithError("random.U16: read from system entropy source", err)
	}
	return binary.BigEndian.Uint16(buffer[:])
}
