package cmd

import (
	"fmt"
	"os"
	"strings"

	cerrors "github.com/brightly-salty/scryer-prolog/internal/errors"
	"github.com/brightly-salty/scryer-prolog/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexEvalExpr    string
	lexShowPos     bool
	lexShowType    bool
	lexOnlyErrors  bool
	lexDoubleQuote string
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Prolog file or expression and report lexical errors",
	Long: `Tokenize (lex) a Prolog source text and print the resulting tokens.

Every lexical problem in the input is reported in one pass rather than
stopping at the first one, so a single run surfaces every malformed
token in a source file.

Examples:
  # Tokenize a source file
  wamc lex clauses.pl

  # Tokenize an inline expression
  wamc lex -e "foo(X, bar) :- baz(X)."

  # Show token types and positions
  wamc lex --show-type --show-pos clauses.pl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline text instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only lexical errors")
	lexCmd.Flags().StringVar(&lexDoubleQuote, "double-quotes", "codes", `double_quotes mode: "codes", "chars", or "atom"`)
}

func doubleQuotesOption(mode string) (lexer.Option, error) {
	switch mode {
	case "codes":
		return lexer.WithDoubleQuotes(lexer.DoubleQuotesCodes), nil
	case "chars":
		return lexer.WithDoubleQuotes(lexer.DoubleQuotesChars), nil
	case "atom":
		return lexer.WithDoubleQuotes(lexer.DoubleQuotesAtom), nil
	default:
		return nil, fmt.Errorf("unknown double_quotes mode %q (want codes, chars, or atom)", mode)
	}
}

func runLex(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case lexEvalExpr != "":
		input = lexEvalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline text")
	}

	dqOpt, err := doubleQuotesOption(lexDoubleQuote)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	l := lexer.NewLexer(strings.NewReader(input), dqOpt)
	toks, lexErrs := l.AllTokens()

	if !lexOnlyErrors {
		for _, tok := range toks {
			printLexToken(tok)
		}
	}

	if len(lexErrs) > 0 {
		compilerErrs := cerrors.FromLexErrors(lexErrs, input, filename)
		fmt.Fprintln(os.Stderr, cerrors.FormatErrors(compilerErrs, false))
		return fmt.Errorf("found %d lexical error(s)", len(lexErrs))
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(toks))
	}

	return nil
}

func printLexToken(tok lexer.Token) {
	var output string

	if lexShowType {
		output = fmt.Sprintf("[%-18s]", tok.Type)
	}

	switch tok.Type {
	case lexer.TokEOF:
		output += " EOF"
	case lexer.TokVar:
		output += fmt.Sprintf(" %s", tok.VarName)
	case lexer.TokConstant:
		output += fmt.Sprintf(" %s", tok.Constant.String())
	default:
		output += fmt.Sprintf(" %s", tok.Type)
	}

	if lexShowPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
