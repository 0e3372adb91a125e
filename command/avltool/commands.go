// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

// setup command handler
// commands that need no configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "run", "start":
		return false // defer processing until configuration is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--print] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  run                        (start)  - run the workload script, same as no arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(program string, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	case "run", "start":
		return false

	default:
		return processSetupCommand(program, arguments)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// display the outcome of a workload
func printReport(report *workload.Report, verbose bool) {
	if verbose {
		printJSON(report)
	} else {
		fmt.Printf("inserted:            %d\n", report.Inserted)
		fmt.Printf("duplicates:          %d\n", report.Duplicates)
		fmt.Printf("removed:             %d\n", report.Removed)
		fmt.Printf("not found:           %d\n", report.NotFound)
		fmt.Printf("allocation failures: %d\n", report.AllocationFailures)
		fmt.Printf("count:               %d\n", report.Count)
		fmt.Printf("height:              %d\n", report.Height)
		fmt.Printf("nodes in use:        %d\n", report.NodesInUse)
		for _, step := range report.Steps {
			fmt.Printf("  %-8s %-20s %s\n", step.Op, step.Key, step.Result)
		}
		fmt.Printf("keys: %s\n", strings.Join(report.Keys, " "))
	}

	if "" != report.Picture {
		os.Stdout.WriteString(report.Picture)
	}
}

func printJSON(data interface{}) {
	b, err := json.Marshal(data)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	fault.PanicIfError("printJSON indent", json.Indent(&out, b, "", "  "))
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}
