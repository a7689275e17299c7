// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clocksequence_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/uuidtime/clocksequence"
)

// the zero strategy ignores its inputs
func TestZero(t *testing.T) {

	z := clocksequence.Zero{}

	items := []struct {
		seconds uint64
		nanos   uint32
	}{
		{0, 0},
		{1, 999999999},
		{1571744765, 123456789},
		{^uint64(0), 0},
	}

	for i, item := range items {
		if 0 != z.GenerateSequence(item.seconds, item.nanos) {
			t.Errorf("%d: zero strategy returned non-zero for: (%d, %d)",
				i, item.seconds, item.nanos)
		}
	}
}

// sequential calls from a known seed count up modulo 16383
func TestCounterSequence(t *testing.T) {

	seed := uint16(100)
	c := clocksequence.New(seed)

	for i := 1; i <= 50; i += 1 {
		expected := (uint16(i) + seed) % 16383
		actual := c.GenerateSequence(1571744765, 0)
		if expected != actual {
			t.Fatalf("%d: actual: %d  expected: %d", i, actual, expected)
		}
	}
}

// the counter must wrap at 14 bits, before the 2 reserved status bits
// of the wire field would be disturbed
func TestCounterWrap(t *testing.T) {

	c := clocksequence.New(16380)

	expected := []uint16{16381, 16382, 0, 1, 2}
	for i, e := range expected {
		actual := c.GenerateSequence(0, 0)
		if e != actual {
			t.Fatalf("%d: actual: %d  expected: %d", i, actual, e)
		}
	}
}

// every emitted value fits 14 bits, across more than a full period
// and across the 16 bit cell boundary
func TestCounterRange(t *testing.T) {

	c := clocksequence.New(65000)

	for i := 0; i < 40000; i += 1 {
		actual := c.GenerateSequence(0, 0)
		if actual >= 16384 {
			t.Fatalf("%d: value out of range: %d", i, actual)
		}
	}
}

// the time arguments are deliberately ignored: a frozen clock still
// advances the sequence
func TestCounterFrozenClock(t *testing.T) {

	c := clocksequence.New(0)

	first := c.GenerateSequence(1571744765, 500)
	second := c.GenerateSequence(1571744765, 500)
	if first == second {
		t.Errorf("frozen clock produced duplicate sequence: %d", first)
	}
}

// the shared instance is process-wide and seeded exactly once
func TestShared(t *testing.T) {

	c1 := clocksequence.Shared()
	c2 := clocksequence.Shared()
	if c1 != c2 {
		t.Error("shared returned different instances")
	}

	v1 := c1.GenerateSequence(0, 0)
	v2 := c2.GenerateSequence(0, 0)
	if v1 >= 16384 || v2 >= 16384 {
		t.Errorf("shared values out of range: %d, %d", v1, v2)
	}
	if v1 == v2 {
		t.Errorf("shared did not advance: %d -> %d", v1, v2)
	}
}

// concurrent callers each observe a distinct value until the period
// is exhausted; run with -race to check for torn accesses
func TestCounterConcurrent(t *testing.T) {

	const callers = 16
	const perCaller = 1000 // callers * perCaller < 16383

	c := clocksequence.New(0)

	results := make(chan uint16, callers*perCaller)

	var wg sync.WaitGroup
	for i := 0; i < callers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perCaller; j += 1 {
				results <- c.GenerateSequence(uint64(j), 0)
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[uint16]int)
	for value := range results {
		if value >= 16384 {
			t.Fatalf("value out of range: %d", value)
		}
		seen[value] += 1
	}

	for value, n := range seen {
		if n > 1 {
			t.Errorf("value %d emitted %d times within one period", value, n)
		}
	}
	if callers*perCaller != len(seen) {
		t.Errorf("unique values: actual: %d  expected: %d", len(seen), callers*perCaller)
	}
}
