// Command bc drives the lexer from the terminal: its lex subcommand
// tokenizes a file or an inline expression.
package main

import (
	"os"

	"github.com/parkertenbroeck/bc/cmd/bc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
