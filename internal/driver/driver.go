// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver implements an interactive shell around the assembler
// pipeline: a command tree resolves typed lines to handlers that invoke
// package asm and report diagnostics or success back to the user.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/beevik/cmd"
	"github.com/beevik/term"

	"github.com/talmor/hasm/asm"
)

var errQuit = errors.New("exiting program")

// A Driver runs the interactive command loop: it reads lines from input,
// resolves them against the command tree, and writes results to output.
type Driver struct {
	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection
	settings    *Settings
	rawState    *term.State
}

// New creates a shell with default settings.
func New() *Driver {
	return &Driver{settings: newSettings()}
}

// RunCommands reads commands from r and writes results to w until r is
// exhausted or a command (quit, or an unrecoverable handler error) ends
// the loop. A blank line repeats the last command.
func (d *Driver) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	d.input = bufio.NewScanner(r)
	d.output = bufio.NewWriter(w)
	d.interactive = interactive

	for {
		d.prompt()

		line, err := d.getLine()
		if err != nil {
			break
		}
		if d.settings.Echo && interactive {
			d.printf("> %s\n", line)
		}
		if err := d.processCommand(line); err != nil {
			break
		}
	}
}

func (d *Driver) processCommand(line string) error {
	var c cmd.Selection
	if line != "" {
		var err error
		c, err = cmds.Lookup(line)
		switch {
		case err == cmd.ErrNotFound:
			d.println("Command not found.")
			return nil
		case err == cmd.ErrAmbiguous:
			d.println("Command is ambiguous.")
			return nil
		case err != nil:
			d.printf("ERROR: %v.\n", err)
			return nil
		}
	} else if d.lastCmd != nil {
		c = *d.lastCmd
	}

	if c.Command == nil {
		return nil
	}
	if c.Command.Data == nil && c.Command.Subtree != nil {
		d.displayCommands(c.Command.Subtree)
		return nil
	}

	d.lastCmd = &c

	handler := c.Command.Data.(func(*Driver, cmd.Selection) error)
	return handler(d, c)
}

// EnableRawMode switches stdin into raw mode so the shell can read
// input a keystroke at a time without line buffering. It is a no-op if
// stdin is not a terminal.
func (d *Driver) EnableRawMode() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	state, err := term.MakeRawInput(fd)
	if err == nil {
		d.rawState = state
	}
}

// RestoreMode restores whatever terminal mode EnableRawMode last
// replaced. It is a no-op if raw mode was never enabled.
func (d *Driver) RestoreMode() {
	if d.rawState == nil {
		return
	}
	term.Restore(int(os.Stdin.Fd()), d.rawState)
	d.rawState = nil
}

func (d *Driver) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		d.displayCommands(cmds)
		return nil
	}
	s, err := cmds.Lookup(c.Args[0])
	if err != nil {
		d.printf("%v\n", err)
		return nil
	}
	if s.Command.Usage != "" {
		d.printf("Usage: %s\n", s.Command.Usage)
	}
	if s.Command.Description != "" {
		d.printf("%s\n", s.Command.Description)
	}
	return nil
}

func (d *Driver) cmdAssemble(c cmd.Selection) error {
	if len(c.Args) < 1 {
		d.displayUsage(c.Command)
		return nil
	}

	var trace io.Writer
	if d.settings.Verbose {
		trace = d.output
	}
	result, err := asm.AssembleFile(c.Args[0], trace, d.settings.Verbose)
	if err != nil {
		d.printf("Failed to assemble '%s': %v\n", c.Args[0], err)
		return nil
	}
	if result.ErrorFlag() {
		for _, diag := range result.Diagnostics() {
			d.println(diag.String())
		}
		d.printf("Assembly of '%s' failed with %d error(s).\n", c.Args[0], len(result.Diagnostics()))
		return nil
	}
	d.printf("Assembled '%s': %d code word(s), %d data word(s).\n",
		c.Args[0], result.Context.FinalIC, result.Context.FinalDC)
	return nil
}

func (d *Driver) cmdMacros(c cmd.Selection) error {
	if len(c.Args) < 1 {
		d.displayUsage(c.Command)
		return nil
	}

	file, err := os.Open(c.Args[0])
	if err != nil {
		d.printf("%v\n", err)
		return nil
	}
	defer file.Close()

	var source []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		source = append(source, scanner.Text())
	}

	expanded, diags := asm.ExpandMacros(source)
	for _, diag := range diags {
		d.println(diag.String())
	}
	for _, line := range expanded {
		d.println(line)
	}
	return nil
}

func (d *Driver) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		d.println("Variables:")
		d.settings.Display(d.output)
		d.flush()

	case 1:
		d.displayUsage(c.Command)

	default:
		key, value := c.Args[0], c.Args[1]
		var err error
		switch d.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting '%s' not found", key)
		case reflect.Bool:
			var v bool
			v, err = stringToBool(value)
			if err == nil {
				err = d.settings.Set(key, v)
			}
		default:
			err = d.settings.Set(key, value)
		}

		if err == nil {
			d.println("Setting updated.")
		} else {
			d.printf("%v\n", err)
		}
	}
	return nil
}

func (d *Driver) cmdQuit(c cmd.Selection) error {
	return errQuit
}

func (d *Driver) printf(format string, args ...any) {
	fmt.Fprintf(d.output, format, args...)
	d.flush()
}

func (d *Driver) println(args ...any) {
	fmt.Fprintln(d.output, args...)
	d.flush()
}

func (d *Driver) flush() {
	d.output.Flush()
}

func (d *Driver) getLine() (string, error) {
	if d.input.Scan() {
		return d.input.Text(), nil
	}
	if d.input.Err() != nil {
		return "", d.input.Err()
	}
	return "", io.EOF
}

func (d *Driver) prompt() {
	if !d.interactive {
		return
	}
	d.printf("hasm> ")
}

func (d *Driver) displayUsage(c *cmd.Command) {
	if c.Usage != "" {
		d.printf("Usage: %s\n", c.Usage)
	}
}

func (d *Driver) displayCommands(commands *cmd.Tree) {
	d.printf("%s commands:\n", commands.Title)
	for _, c := range commands.Commands {
		if c.Brief != "" {
			d.printf("    %-12s  %s\n", c.Name, c.Brief)
		}
	}
}
