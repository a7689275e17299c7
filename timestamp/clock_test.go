// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package timestamp

import (
	"testing"
	"time"
)

type zeroSequence struct{}

func (zeroSequence) GenerateSequence(seconds uint64, subsecNanos uint32) uint16 {
	return 0
}

// a host clock before the unix epoch must abort, never produce an
// underflowed seconds value
func TestNowBeforeEpoch(t *testing.T) {

	saved := systemClock
	defer func() {
		systemClock = saved
	}()

	systemClock = func() time.Time {
		return time.Date(1969, time.December, 31, 23, 59, 59, 0, time.UTC)
	}

	defer func() {
		if nil == recover() {
			t.Fatal("pre-epoch clock did not panic")
		}
	}()

	Now(zeroSequence{})
}
