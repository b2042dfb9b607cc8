// Package repl implements the line-oriented shell used to drive a Sheet
// interactively: a bufio.Scanner read loop, a leading-colon command prefix,
// and one Fprintf-based response per line. It carries no raw-TTY,
// websocket, or task-signal machinery — a spreadsheet engine has no
// background tasks to interrupt a prompt with.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lhalvorsen/gridsheet"
)

const prompt = "gridsheet> "

// Start runs the read-eval-print loop until in is exhausted or :quit is
// entered, writing every prompt, result, and error to out.
func Start(in io.Reader, out io.Writer) {
	sheet := gridsheet.NewSheet()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "gridsheet REPL. Commands: :set, :get, :clear, :print, :text, :help, :quit")

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if handle(sheet, line, out) {
			return
		}
	}
}

// handle dispatches one command line, returning true iff the REPL should
// stop reading further input.
func handle(sheet *gridsheet.Sheet, line string, out io.Writer) bool {
	fields := strings.SplitN(line, " ", 3)
	switch fields[0] {
	case ":quit", ":q":
		return true

	case ":help", ":h":
		printHelp(out)

	case ":set":
		if len(fields) < 3 {
			fmt.Fprintln(out, "usage: :set <ref> <content>")
			return false
		}
		if err := sheet.SetCellRef(fields[1], fields[2]); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}

	case ":get":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: :get <ref>")
			return false
		}
		cell, err := sheet.GetCellRef(fields[1])
		if err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
			return false
		}
		if cell == nil {
			fmt.Fprintln(out, "")
			return false
		}
		fmt.Fprintln(out, cell.Value().String())

	case ":clear":
		if len(fields) < 2 {
			fmt.Fprintln(out, "usage: :clear <ref>")
			return false
		}
		if err := sheet.ClearCellRef(fields[1]); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}

	case ":print":
		if err := sheet.PrintValues(out); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}

	case ":text":
		if err := sheet.PrintTexts(out); err != nil {
			fmt.Fprintf(out, "error: %s\n", err)
		}

	default:
		fmt.Fprintf(out, "unknown command: %s (try :help)\n", fields[0])
	}
	return false
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "  :set <ref> <content>   set a cell's content, e.g. :set A1 =B1+1")
	fmt.Fprintln(out, "  :get <ref>             print a cell's evaluated value")
	fmt.Fprintln(out, "  :clear <ref>           reset a cell to empty")
	fmt.Fprintln(out, "  :print                 print the evaluated sheet as a tab-separated grid")
	fmt.Fprintln(out, "  :text                  print the sheet's raw cell contents")
	fmt.Fprintln(out, "  :quit, :q              exit")
}
