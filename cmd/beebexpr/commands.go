// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/beevik/cmd"

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "beebexpr"})

	root.AddCommand(cmd.CommandDescriptor{
		Name:        "eval",
		Brief:       "Evaluate an expression",
		Description: "Evaluate an expression and display its result.",
		Usage:       "eval <expression>",
		Data:        (*Host).cmdEval,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "set",
		Brief:       "View or change a setting",
		Description: "Set the value of a display or evaluation setting. With no arguments, display every setting's current value.",
		Usage:       "set [<setting> <value>]",
		Data:        (*Host).cmdSet,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "pc",
		Brief:       "View or change the program counter",
		Description: "Set the value returned by the '*' operator. With no argument, display the current value.",
		Usage:       "pc [<address>]",
		Data:        (*Host).cmdPC,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "seed",
		Brief:       "Reseed the random number generator",
		Description: "Reseed the generator backing RND so subsequent RND results are reproducible from a known starting point.",
		Usage:       "seed <n>",
		Data:        (*Host).cmdSeed,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "time",
		Brief:       "View or change the assembly clock",
		Description: "Set the timestamp TIME$ formats, as a Unix time in seconds. With no argument, display the current value.",
		Usage:       "time [<unix-seconds>]",
		Data:        (*Host).cmdTime,
	})

	sym := root.AddSubtree(cmd.TreeDescriptor{Name: "symbol", Brief: "Symbol table commands"})
	sym.AddCommand(cmd.CommandDescriptor{
		Name:        "set",
		Brief:       "Define or redefine a symbol",
		Description: "Evaluate an expression and bind its result to a symbol name.",
		Usage:       "symbol set <name> <expression>",
		Data:        (*Host).cmdSymbolSet,
	})
	sym.AddCommand(cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Undefine a symbol",
		Description: "Remove a symbol from the symbol table.",
		Usage:       "symbol remove <name>",
		Data:        (*Host).cmdSymbolRemove,
	})
	sym.AddCommand(cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List every defined symbol",
		Description: "List every symbol currently defined in the symbol table.",
		Usage:       "symbol list",
		Data:        (*Host).cmdSymbolList,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Brief:       "Display help",
		Description: "Display help for a command, or a list of all commands.",
		Usage:       "help [<command>]",
		Data:        (*Host).cmdHelp,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the program",
		Description: "Quit the program.",
		Usage:       "quit",
		Data:        (*Host).cmdQuit,
	})

	root.AddShortcut("e", "eval")
	root.AddShortcut("s", "set")
	root.AddShortcut("sym", "symbol")
	root.AddShortcut("sl", "symbol list")
	root.AddShortcut("ss", "symbol set")
	root.AddShortcut("sr", "symbol remove")
	root.AddShortcut("q", "quit")
	root.AddShortcut("?", "help")

	cmds = root
}
