// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - type to denote a counter cell that can be synchronously
// set and incremented
// just a 32 bit unsigned integer
type Counter uint32

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint32 {
	return atomic.AddUint32((*uint32)(ic), 1)
}

// Set - store an absolute value, overwriting the current count
func (ic *Counter) Set(value uint32) {
	atomic.StoreUint32((*uint32)(ic), value)
}

// Uint32 - returns current value
func (ic *Counter) Uint32() uint32 {
	return atomic.LoadUint32((*uint32)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return atomic.LoadUint32((*uint32)(ic)) == 0
}
