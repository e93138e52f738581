// Command wamc is a diagnostic toolkit over the Warren Abstract
// Machine compilation core: it tokenizes Prolog source, resolves
// clause types, and pretty-prints hand-assembled instruction
// sequences. It runs no Prolog program; there is no REPL or
// evaluator here, only inspection of the tokenizer and compiler
// pieces this core is responsible for.
package main

import (
	"fmt"
	"os"

	"github.com/brightly-salty/scryer-prolog/cmd/wamc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
