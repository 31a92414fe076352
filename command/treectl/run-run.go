// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treekit/fault"
)

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("script")
	if "" == fileName {
		return fault.ErrRequiredConfigFile
	}
	jsonOutput := c.Bool("json")

	if m.verbose {
		fmt.Fprintf(m.e, "script: %q\n", fileName)
	}

	results := newReplayCache()
	result, key, _, err := results.load(fileName)
	if nil != err {
		return err
	}
	if err := printResult(m.w, result, jsonOutput, m.verbose); nil != err {
		return err
	}

	if !c.Bool("watch") {
		return nil
	}

	watcher, err := newFileWatcher(fileName)
	if nil != err {
		return err
	}
	defer watcher.Close()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	fmt.Fprintf(m.e, "watching: %q  (CTRL-C to stop)\n", fileName)

	return watchScript(m, fileName, key, results, watcher, jsonOutput, ch)
}

// watchScript - replay and print each time the script content changes
// until a signal arrives
//
// last is the digest of the content already printed, only an event
// that leaves the digest the same is skipped
func watchScript(m *metadata, fileName string, last string, results *replayCache, watcher *fileWatcher, jsonOutput bool, stop <-chan os.Signal) error {
	for {
		select {
		case sig := <-stop:
			if m.verbose {
				fmt.Fprintf(m.e, "received signal: %v\n", sig)
			}
			return nil

		case <-watcher.remove:
			fmt.Fprintf(m.e, "script removed: %q  waiting for it to reappear\n", fileName)

		case err := <-watcher.errors:
			return err

		case <-watcher.change:
			result, key, _, err := results.load(fileName)
			if nil != err {
				// keep watching, the next save may fix it
				fmt.Fprintf(m.e, "replay error: %s\n", err)
				continue
			}
			if key == last {
				if m.verbose {
					fmt.Fprintf(m.e, "unchanged: %q\n", fileName)
				}
				continue
			}
			last = key

			fmt.Fprintf(m.w, "--\n")
			if err := printResult(m.w, result, jsonOutput, m.verbose); nil != err {
				return err
			}
		}
	}
}

func printResult(w io.Writer, result *replayResult, jsonOutput bool, verbose bool) error {

	if jsonOutput {
		return printJson(w, result)
	}

	fmt.Fprintf(w, "values:   %v\n", result.Values)
	fmt.Fprintf(w, "size:     %d\n", result.Size)
	fmt.Fprintf(w, "distinct: %d\n", result.Distinct)
	fmt.Fprintf(w, "height:   %d\n", result.Height)
	if nil != result.Min {
		fmt.Fprintf(w, "min:      %v\n", result.Min)
		fmt.Fprintf(w, "max:      %v\n", result.Max)
	}
	for _, f := range result.Found {
		fmt.Fprintf(w, "find %v:  %d\n", f.Value, f.Count)
	}

	if verbose {
		result.draw(w)
	}
	return nil
}
