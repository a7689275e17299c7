// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package random_test

import (
	"testing"

	"github.com/bitmark-inc/uuidtime/random"
)

// not a statistical test, just a guard against a stuck source
func TestU16(t *testing.T) {

	first := random.U16()
	for i := 0; i < 64; i += 1 {
		if random.U16() != first {
			return
		}
	}
	t.Errorf("64 draws all returned: %d", first)
}
