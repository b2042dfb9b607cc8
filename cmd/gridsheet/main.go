// Command gridsheet runs an interactive shell over a single in-memory
// sheet.
package main

import (
	"os"

	"github.com/lhalvorsen/gridsheet/repl"
)

func main() {
	repl.Start(os.Stdin, os.Stdout)
}
