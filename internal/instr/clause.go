package instr

import (
	"strconv"
	"strings"
)

// CompiledClause is one clause's compiled instruction sequence, as
// produced by internal/compiler's Walker for the fact (head) and
// query (body) targets.
type CompiledClause struct {
	ClauseType string
	Arity      int
	Head       []Instruction
	Body       []Instruction
}

// String renders the clause as a readable instruction listing, one
// instruction per line, used by the CLI's "instructions" subcommand
// and by this package's golden tests.
func (c CompiledClause) String() string {
	var sb strings.Builder
	sb.WriteString(c.ClauseType)
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(c.Arity))
	sb.WriteString(":\n")
	for _, ins := range c.Head {
		sb.WriteString("  ")
		sb.WriteString(ins.String())
		sb.WriteString("\n")
	}
	if len(c.Body) > 0 && len(c.Head) > 0 {
		sb.WriteString("  --\n")
	}
	for _, ins := range c.Body {
		sb.WriteString("  ")
		sb.WriteString(ins.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
