// Copyright 2026 The Hasm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree("hasm")
	root.AddCommand(cmd.Command{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Driver).cmdHelp,
	})
	root.AddCommand(cmd.Command{
		Name:  "assemble",
		Brief: "Assemble a source file",
		Description: "Run the two-pass assembler on the named file," +
			" writing the macro-expanded source and, if the compile has" +
			" no diagnostics, the object, entries, and externals files.",
		Usage: "assemble <file>",
		Data:  (*Driver).cmdAssemble,
	})
	root.AddCommand(cmd.Command{
		Name:  "macros",
		Brief: "Expand macros in a source file",
		Description: "Run only the macro pre-processor on the named" +
			" file and print the expanded source, without running the" +
			" rest of the pipeline.",
		Usage: "macros <file>",
		Data:  (*Driver).cmdMacros,
	})
	root.AddCommand(cmd.Command{
		Name:  "set",
		Brief: "Set a configuration variable",
		Description: "Set the value of a configuration variable. To see" +
			" the current values of all configuration variables, type" +
			" set without any arguments.",
		Usage: "set [<var> <value>]",
		Data:  (*Driver).cmdSet,
	})
	root.AddCommand(cmd.Command{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Driver).cmdQuit,
	})

	root.AddShortcut("a", "assemble")
	root.AddShortcut("m", "macros")
	root.AddShortcut("?", "help")

	cmds = root
}
