// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/talmor/hasm/asm"
	"github.com/talmor/hasm/internal/driver"
)

var assembleFile string

func init() {
	flag.StringVar(&assembleFile, "a", "", "assemble file")
	flag.CommandLine.Usage = func() {
		fmt.Println("Usage: hasm [script] ..\nOptions:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	// Batch assembly requested directly from the command line.
	if assembleFile != "" {
		result, err := asm.AssembleFile(assembleFile, nil, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to assemble (%v).\n", err)
			os.Exit(1)
		}
		for _, diag := range result.Diagnostics() {
			fmt.Println(diag.String())
		}
		if result.ErrorFlag() {
			os.Exit(1)
		}
		os.Exit(0)
	}

	d := driver.New()

	// Run commands contained in command-line files.
	args := flag.Args()
	for _, filename := range args {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		d.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Raw mode lets the shell read a line at a time without the
	// terminal line-discipline getting in the way; x/term-derived
	// packages are unreliable in this mode on Windows.
	if runtime.GOOS != "windows" {
		d.EnableRawMode()
		defer d.RestoreMode()
	}

	d.RunCommands(os.Stdin, os.Stdout, true)
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
