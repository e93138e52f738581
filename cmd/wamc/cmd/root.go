package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wamc",
	Short: "WAM compilation-core inspection toolkit",
	Long: `wamc is a diagnostic toolkit over a Warren Abstract Machine
compilation core for ISO-flavored Prolog.

It tokenizes source text, resolves a call site's clause type, and
pretty-prints the instruction sequence a clause compiles to. There is
no reader above the token layer and no executing machine here: this
tool inspects the lexer, the clause-type registry, and the instruction
model in isolation, not a running Prolog system.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
