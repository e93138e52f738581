package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify name/arity",
	Short: "Resolve a call site's clause type",
	Long: `Resolve a "name/arity" call site through the clause-type registry
and print which family the compiler would emit code for: an inlined
comparison or type test, a built-in, a "$"-prefixed system predicate,
call/N, or an ordinary named predicate. No operator spec is passed to
the registry, so the operator family is never reported here.

Example:
  wamc classify append/3
  wamc classify is/2`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	name, arity, err := parseNameArity(args[0])
	if err != nil {
		return err
	}

	registry := clausetype.NewRegistry()
	ct, ok := registry.Lookup(name, arity, nil)
	if !ok {
		return fmt.Errorf("%s/%d: %q is dollar-prefixed but matches no system predicate", args[0], arity, name)
	}

	fmt.Printf("%s/%d classifies as %s\n", name, arity, ct.Kind)
	fmt.Printf("  %s\n", ct)
	return nil
}

func parseNameArity(spec string) (string, int, error) {
	idx := strings.LastIndex(spec, "/")
	if idx < 0 {
		return "", 0, fmt.Errorf("expected name/arity, got %q", spec)
	}
	name, arityStr := spec[:idx], spec[idx+1:]
	if name == "" {
		return "", 0, fmt.Errorf("expected name/arity, got %q", spec)
	}
	arity, err := strconv.Atoi(arityStr)
	if err != nil || arity < 0 {
		return "", 0, fmt.Errorf("invalid arity in %q", spec)
	}
	return name, arity, nil
}
