package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/brightly-salty/scryer-prolog/internal/atom"
	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/compiler"
	"github.com/brightly-salty/scryer-prolog/internal/instr"
	"github.com/brightly-salty/scryer-prolog/internal/number"
	"github.com/brightly-salty/scryer-prolog/internal/term"
	"github.com/spf13/cobra"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions [file]",
	Short: "Compile a tiny clause fixture and print its instruction sequence",
	Long: `Read a hand-assembled clause fixture (or stdin, with no file
argument) and print the instruction sequence internal/compiler's
Walker produces for it: the same instruction listing a running Prolog
system would expose as $wam_instructions, made reachable from a
terminal instead, since no running Prolog system exists in this core.

There is no term reader above the token layer, so the fixture format
is a small line-oriented notation rather than Prolog source text:

  clause name/arity
  head ARGSPEC...
  body goalname ARGSPEC...
  body goalname ARGSPEC...

ARGSPEC is one of:
  var:Name     a variable occurrence
  atom:name    an atom constant
  int:N        a fixnum constant
  nil          the empty list

"clause" names the predicate being compiled (for display only) and
fixes its arity; "head" supplies exactly that many argument specs,
compiled against the fact (Get*/Unify*) instruction family. Each "body"
line compiles one goal against the query (Put*/Set*) family followed
by a call_clause instruction resolved through the same clause-type
registry the compiler consults for an ordinary call. Nested compounds
and lists are not expressible in this fixture format; only the flat
argument shapes above are.

Example fixture (append/3's base case):
  clause append/3
  head nil var:L var:L`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInstructions,
}

func init() {
	rootCmd.AddCommand(instructionsCmd)
}

type clauseFixture struct {
	name  string
	arity int
	head  []term.Term
	body  []bodyGoal
}

type bodyGoal struct {
	name string
	args []term.Term
}

func runInstructions(cmd *cobra.Command, args []string) error {
	var r *os.File
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open fixture %s: %w", args[0], err)
		}
		defer f.Close()
		r = f
	} else {
		r = os.Stdin
	}

	atoms := atom.NewTable()
	fixture, err := parseClauseFixture(r, atoms)
	if err != nil {
		return err
	}

	registry := clausetype.NewRegistry()
	perm := compiler.NewPermVars()

	headWalker := compiler.NewWalker(compiler.FactTarget{}, perm, registry)
	headInstrs := headWalker.WalkFact(fixture.head)

	var bodyInstrs []instr.Instruction
	if len(fixture.body) > 0 {
		bodyInstrs = append(bodyInstrs, instr.Allocate{N: 0})
	}
	queryWalker := compiler.NewWalker(compiler.QueryTarget{}, perm, registry)
	for i, goal := range fixture.body {
		bodyInstrs = append(bodyInstrs, queryWalker.WalkQuery(goal.args)...)
		ct, ok := registry.Lookup(goal.name, len(goal.args), nil)
		if !ok {
			return fmt.Errorf("body goal %q is dollar-prefixed but matches no system predicate", goal.name)
		}
		lastCall := i == len(fixture.body)-1
		bodyInstrs = append(bodyInstrs, instr.CallClause{
			ClauseType: ct,
			Arity:      len(goal.args),
			LastCall:   lastCall,
		})
	}
	if len(fixture.body) > 0 {
		bodyInstrs = append(bodyInstrs, instr.Deallocate{})
	} else {
		bodyInstrs = append(bodyInstrs, instr.Proceed{})
	}

	clause := instr.CompiledClause{
		ClauseType: fixture.name,
		Arity:      fixture.arity,
		Head:       headInstrs,
		Body:       bodyInstrs,
	}
	fmt.Print(clause.String())
	return nil
}

func parseClauseFixture(r *os.File, atoms *atom.Table) (*clauseFixture, error) {
	var fixture clauseFixture
	haveClause := false
	haveHead := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "clause":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: expected \"clause name/arity\"", lineNo)
			}
			name, arity, err := parseNameArity(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			fixture.name, fixture.arity = name, arity
			haveClause = true

		case "head":
			if haveHead {
				return nil, fmt.Errorf("line %d: duplicate head line", lineNo)
			}
			argTerms, err := parseArgSpecs(fields[1:], atoms)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(argTerms) != fixture.arity {
				return nil, fmt.Errorf("line %d: head has %d argument(s), clause declares arity %d", lineNo, len(argTerms), fixture.arity)
			}
			fixture.head = argTerms
			haveHead = true

		case "body":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: expected \"body goalname ARGSPEC...\"", lineNo)
			}
			argTerms, err := parseArgSpecs(fields[2:], atoms)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			fixture.body = append(fixture.body, bodyGoal{name: fields[1], args: argTerms})

		default:
			return nil, fmt.Errorf("line %d: unknown fixture directive %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveClause {
		return nil, fmt.Errorf("fixture is missing a \"clause name/arity\" line")
	}
	if !haveHead && fixture.arity > 0 {
		return nil, fmt.Errorf("fixture is missing a \"head\" line")
	}
	return &fixture, nil
}

func parseArgSpecs(fields []string, atoms *atom.Table) ([]term.Term, error) {
	out := make([]term.Term, 0, len(fields))
	for _, f := range fields {
		t, err := parseArgSpec(f, atoms)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func parseArgSpec(spec string, atoms *atom.Table) (term.Term, error) {
	if spec == "nil" {
		return term.Const{IsNil: true}, nil
	}
	idx := strings.Index(spec, ":")
	if idx < 0 {
		return nil, fmt.Errorf("invalid argspec %q", spec)
	}
	kind, data := spec[:idx], spec[idx+1:]
	switch kind {
	case "var":
		if data == "" {
			return nil, fmt.Errorf("invalid argspec %q: empty variable name", spec)
		}
		return term.Var{Name: data}, nil
	case "atom":
		return term.AtomConst(atoms.Intern(data)), nil
	case "int":
		n, err := strconv.ParseInt(data, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid argspec %q: %w", spec, err)
		}
		return term.NumberConst(number.Fixnum(n)), nil
	default:
		return nil, fmt.Errorf("invalid argspec %q: unknown kind %q", spec, kind)
	}
}
