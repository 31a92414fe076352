// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treekit/background"
	"github.com/bitmark-inc/treekit/fault"
	"github.com/bitmark-inc/treekit/soak"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: %s, %d were detected", program, fault.ErrRequiredConfigFile, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// these commands require the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	seed := theConfiguration.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	log.Infof("seed: %d", seed)

	reporter := soak.NewLogReporter()

	processes := make(background.Processes, 0, theConfiguration.Workers)
	for i := 0; i < theConfiguration.Workers; i += 1 {
		w, err := soak.New(logger.New("soak"), i, theConfiguration.Operations, theConfiguration.KeyRange, seed+int64(i), reporter)
		if nil != err {
			log.Criticalf("worker[%d] create error: %s", i, err)
			exitwithstatus.Message("worker[%d] create error: %s", i, err)
		}
		processes = append(processes, w)
	}

	quiet := len(options["quiet"]) > 0
	if !quiet {
		fmt.Printf("running %d workers of %d operations…\n", theConfiguration.Workers, theConfiguration.Operations)
	}

	start := time.Now()
	p := background.Start(processes, nil)

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-p.Done():
		log.Info("all workers finished")
	case sig := <-ch:
		log.Infof("received signal: %v", sig)
		if !quiet {
			fmt.Printf("\nreceived signal: %v\n", sig)
			fmt.Printf("\nshutting down…\n")
		}
	}

	log.Info("shutting down…")
	p.Stop()
	elapsed := time.Since(start)

	total := reporter.Total()
	failures := reporter.Failures()
	log.Infof("elapsed: %s  failures: %d  %s", elapsed, failures, total)

	if !quiet {
		fmt.Printf("elapsed:  %s\n", elapsed)
		fmt.Printf("seed:     %d\n", seed)
		fmt.Printf("totals:   %s\n", total)
		fmt.Printf("failures: %d\n", failures)
	}

	if 0 != failures {
		log.Criticalf("%d worker(s) failed, seed: %d", failures, seed)
		exitwithstatus.Message("%s: %d worker(s) failed, seed: %d", program, failures, seed)
	}
}
