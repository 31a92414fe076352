// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	treekit "github.com/bitmark-inc/treekit/version"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "treectl"
	app.Usage = "exercise counted AVL trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "replay a Lua operation script on a tree",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "script, s",
					Value: "",
					Usage: "*operation script `FILE`",
				},
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " output result as JSON",
				},
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: " replay again whenever the script changes",
				},
			},
			Action: runRun,
		},
		{
			Name:      "scenario",
			Usage:     "run the built-in behaviour scenarios",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runScenario,
		},
		{
			Name:      "walk",
			Usage:     "build a tree from values and print the visit order",
			ArgsUsage: "VALUES…\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "bfs",
					Usage: " visit `ORDER` [bfs|pre|post]",
				},
			},
			Action: runWalk,
		},
		{
			Name:      "version",
			Usage:     "display treectl version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s  treekit: %s\n", version, treekit.Version)
	return nil
}
