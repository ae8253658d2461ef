// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command beebexpr is an interactive shell for the expression engine:
// it evaluates one expression per line, lets the symbol table, program
// counter, assembly clock and pass flag be inspected and changed, and
// can also run a script of such commands from a file.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/beebasm-go/expr/expr"
	"github.com/beevik/cmd"
)

// A Host runs the interactive command loop around an expr.DefaultContext.
type Host struct {
	input    *bufio.Scanner
	output   *bufio.Writer
	lastCmd  *cmd.Selection
	settings *settings
	ctx      *expr.DefaultContext
}

// New creates a Host with an empty symbol table, PC 0, an assembly
// clock pinned to the current time, and a PRNG seeded from that same
// time (so two runs started a second apart produce different RND
// sequences, while a run reseeded explicitly via "seed" is
// reproducible).
func New() *Host {
	now := time.Now()
	return &Host{
		settings: newSettings(),
		ctx:      expr.NewContext(now, now.UnixNano()),
	}
}

// RunCommands reads commands from r, one per line, writing results to
// w. In interactive mode a prompt is displayed and an empty line
// repeats the previous command.
func (h *Host) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	h.input = bufio.NewScanner(r)
	h.output = bufio.NewWriter(w)

	for {
		if interactive {
			h.printf("> ")
			h.flush()
		}

		line, err := h.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		switch {
		case line != "":
			c, err = cmds.Lookup(line)
			switch {
			case errors.Is(err, cmd.ErrNotFound):
				h.println("Command not found.")
				continue
			case errors.Is(err, cmd.ErrAmbiguous):
				h.println("Command is ambiguous.")
				continue
			case err != nil:
				h.printf("ERROR: %v\n", err)
				continue
			}
		case h.lastCmd != nil:
			c = *h.lastCmd
		default:
			continue
		}

		if c.Command == nil {
			continue
		}
		h.lastCmd = &c

		handler := c.Command.Data.(func(*Host, cmd.Selection) error)
		if err := handler(h, c); err != nil {
			break
		}
	}
}

// Break resets the pending-repeat state, used from a Ctrl-C handler so
// an interrupted line doesn't repeat on the next empty Enter.
func (h *Host) Break() {
	h.lastCmd = nil
	h.println()
}

func (h *Host) print(args ...interface{}) {
	fmt.Fprint(h.output, args...)
	h.flush()
}

func (h *Host) printf(format string, args ...interface{}) {
	fmt.Fprintf(h.output, format, args...)
}

func (h *Host) println(args ...interface{}) {
	fmt.Fprintln(h.output, args...)
	h.flush()
}

func (h *Host) flush() {
	h.output.Flush()
}

func (h *Host) getLine() (string, error) {
	if h.input.Scan() {
		return strings.TrimSpace(h.input.Text()), nil
	}
	if h.input.Err() != nil {
		return "", h.input.Err()
	}
	return "", io.EOF
}

func (h *Host) displayHelpText(c *cmd.CommandDescriptor) {
	if c.Usage != "" {
		h.printf("Syntax: %s\n", c.Usage)
	} else {
		h.println("<no help text>")
	}
}

func (h *Host) cmdEval(c cmd.Selection) error {
	if len(c.Args) < 1 {
		h.displayHelpText(c.Command)
		return nil
	}

	text := strings.Join(c.Args, " ")
	p := expr.NewParser(h.ctx, 1, text)
	v, err := p.Evaluate(false)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}

	switch v.Kind() {
	case expr.StringKind:
		s, _ := v.AsString(p.Pos())
		h.printf("%q\n", s.Go())
	default:
		n, _ := v.AsNumber(p.Pos())
		if h.settings.HexMode {
			i, err := expr.NewParser(h.ctx, 1, text).EvaluateAsUnsignedInt(false)
			if err == nil {
				h.printf("&%X\n", i)
				return nil
			}
		}
		h.printf("%v\n", n)
	}
	return nil
}

func (h *Host) cmdSet(c cmd.Selection) error {
	switch len(c.Args) {
	case 0:
		h.println("Settings:")
		h.settings.Display(h.output)
		h.flush()

	case 1:
		h.displayHelpText(c.Command)

	default:
		key, value := strings.ToLower(c.Args[0]), strings.Join(c.Args[1:], " ")

		var err error
		switch h.settings.Kind(key) {
		case reflect.Invalid:
			err = fmt.Errorf("setting %q not found", key)
		case reflect.Bool:
			var b bool
			b, err = strconv.ParseBool(value)
			if err == nil {
				err = h.settings.Set(key, b)
			}
		default:
			err = h.settings.Set(key, value)
		}

		if err != nil {
			h.printf("%v\n", err)
			return nil
		}
		h.ctx.SetFirstPass(h.settings.FirstPass)
		h.println("Setting updated.")
	}
	return nil
}

func (h *Host) cmdPC(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.printf("&%X\n", h.ctx.PC())
		return nil
	}
	p := expr.NewParser(h.ctx, 1, c.Args[0])
	v, err := p.EvaluateAsInt(false)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.ctx.SetPC(int64(v))
	h.println("PC updated.")
	return nil
}

func (h *Host) cmdSeed(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.displayHelpText(c.Command)
		return nil
	}
	n, err := strconv.ParseInt(c.Args[0], 10, 64)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.ctx.Reseed(n)
	h.println("Seed updated.")
	return nil
}

func (h *Host) cmdTime(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.printf("%d\n", h.ctx.AssemblyTime().Unix())
		return nil
	}
	n, err := strconv.ParseInt(c.Args[0], 10, 64)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.ctx.SetAssemblyTime(time.Unix(n, 0).UTC())
	h.println("Assembly time updated.")
	return nil
}

func (h *Host) cmdSymbolSet(c cmd.Selection) error {
	if len(c.Args) < 2 {
		h.displayHelpText(c.Command)
		return nil
	}
	name := c.Args[0]
	p := expr.NewParser(h.ctx, 1, strings.Join(c.Args[1:], " "))
	v, err := p.Evaluate(false)
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	h.ctx.Symbols.Set(name, v)
	h.printf("%s defined.\n", name)
	return nil
}

func (h *Host) cmdSymbolRemove(c cmd.Selection) error {
	if len(c.Args) != 1 {
		h.displayHelpText(c.Command)
		return nil
	}
	h.ctx.Symbols.Delete(c.Args[0])
	h.printf("%s undefined.\n", c.Args[0])
	return nil
}

func (h *Host) cmdSymbolList(c cmd.Selection) error {
	names := h.ctx.Symbols.Names()
	if len(names) == 0 {
		h.println("No symbols defined.")
		return nil
	}
	for _, name := range names {
		v, _ := h.ctx.Symbols.Get(name)
		switch v.Kind() {
		case expr.StringKind:
			s, _ := v.AsString(expr.Position{})
			h.printf("    %-16s %q\n", name, s.Go())
		default:
			n, _ := v.AsNumber(expr.Position{})
			h.printf("    %-16s %v\n", name, n)
		}
	}
	return nil
}

func (h *Host) cmdHelp(c cmd.Selection) error {
	if len(c.Args) == 0 {
		h.println("Commands:")
		for _, b := range commandBriefs {
			h.printf("    %-16s %s\n", b.name, b.brief)
		}
		return nil
	}

	s, err := cmds.Lookup(strings.Join(c.Args, " "))
	if err != nil {
		h.printf("%v\n", err)
		return nil
	}
	if s.Command.Usage != "" {
		h.printf("Syntax: %s\n\n", s.Command.Usage)
	}
	switch {
	case s.Command.Description != "":
		h.println(s.Command.Description)
	case s.Command.Brief != "":
		h.println(s.Command.Brief)
	}
	return nil
}

func (h *Host) cmdQuit(c cmd.Selection) error {
	return errors.New("exiting")
}

type commandBrief struct {
	name  string
	brief string
}

var commandBriefs = []commandBrief{
	{"eval", "Evaluate an expression"},
	{"set", "View or change a setting"},
	{"pc", "View or change the program counter"},
	{"seed", "Reseed the random number generator"},
	{"time", "View or change the assembly clock"},
	{"symbol set", "Define or redefine a symbol"},
	{"symbol remove", "Undefine a symbol"},
	{"symbol list", "List every defined symbol"},
	{"help", "Display help"},
	{"quit", "Quit the program"},
}

func handleInterrupt(h *Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}
