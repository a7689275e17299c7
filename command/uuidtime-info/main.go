// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uuidtime/clocksequence"
	"github.com/bitmark-inc/uuidtime/fault"
	"github.com/bitmark-inc/uuidtime/timestamp"
)

// one sampled timestamp shown in every encoding
type sample struct {
	Timestamp timestamp.Timestamp `json:"timestamp"`
	Seconds   uint64              `json:"seconds"`
	Nanos     uint32              `json:"nanos"`
	Ticks     uint64              `json:"ticks"`
	Counter   uint16              `json:"counter"`
	Time      string              `json:"time"`
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "sequence", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("option parse error: %s", err)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--count=N] [--sequence=(zero|shared|random|SEED)]", program)
	}

	var log *logger.L
	if len(options["verbose"]) > 0 {
		logging := logger.Configuration{
			Directory: ".",
			File:      "uuidtime-info.log",
			Size:      1048576,
			Count:     10,
			Console:   true,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		}
		if err := logger.Initialise(logging); nil != err {
			exitwithstatus.Message("logger initialise error: %s", err)
		}
		defer logger.Finalise()

		if err := fault.Initialise(); nil != err {
			exitwithstatus.Message("fault initialise error: %s", err)
		}
		defer fault.Finalise()

		log = logger.New("info")
	}

	count := 1
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err || count < 1 {
			exitwithstatus.Message("incorrect count provided: %s", options["count"][0])
		}
	}

	// default is the process-wide counter, like a v1/v6 assembler
	sequenceName := "shared"
	if len(options["sequence"]) > 0 {
		sequenceName = options["sequence"][0]
	}

	var sequence timestamp.ClockSequence
	switch sequenceName {
	case "zero":
		sequence = clocksequence.Zero{}
	case "shared":
		sequence = clocksequence.Shared()
	case "random":
		sequence = clocksequence.NewRandom()
	default:
		seed, err := strconv.ParseUint(sequenceName, 10, 16)
		if nil != err {
			exitwithstatus.Message("incorrect sequence type provided: %s", sequenceName)
		}
		sequence = clocksequence.New(uint16(seed))
	}

	samples := make([]sample, count)
	for i := 0; i < count; i += 1 {
		ts := timestamp.Now(sequence)
		seconds, nanos := ts.Unix()
		ticks, counter := ts.RFC4122()
		samples[i] = sample{
			Timestamp: ts,
			Seconds:   seconds,
			Nanos:     nanos,
			Ticks:     ticks,
			Counter:   counter,
			Time:      ts.Time().Format(time.RFC3339Nano),
		}
		if nil != log {
			log.Infof("sample: %d  ticks: %d  counter: %d", i, ticks, counter)
		}
	}

	b, err := json.Marshal(samples)
	if nil != err {
		exitwithstatus.Message("incorrect json marshal: %s", err)
	}

	fmt.Printf("%s\n", b)
}
