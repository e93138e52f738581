// Package clausetype implements the clause-type registry: given a
// call site's (name, arity, optional operator spec), decide what
// shape of code the compiler should emit for it. Resolution runs
// through a layered chain of keyword tables rather than one flat map,
// since inlined comparisons, built-ins, system predicates, operators,
// and plain calls all take priority over each other in a fixed order.
package clausetype

import (
	"fmt"
	"strings"
	"sync"

	"github.com/brightly-salty/scryer-prolog/internal/lexer"
)

// Kind discriminates the ClauseType sum.
type Kind int

const (
	Inlined Kind = iota
	BuiltIn
	System
	Op
	CallN
	Named
)

var kindNames = [...]string{
	Inlined: "Inlined",
	BuiltIn: "BuiltIn",
	System:  "System",
	Op:      "Op",
	CallN:   "CallN",
	Named:   "Named",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// InlinedOp enumerates the numeric-comparison and type-test predicates
// the compiler inlines directly into instructions rather than emitting
// a call.
type InlinedOp int

const (
	CompareGreaterThan InlinedOp = iota
	CompareLessThan
	CompareGreaterEqual
	CompareLessEqual
	CompareArithEqual
	CompareArithNotEqual
	TypeTestAtom
	TypeTestAtomic
	TypeTestCompound
	TypeTestInteger
	TypeTestNumber
	TypeTestRational
	TypeTestFloat
	TypeTestNonvar
	TypeTestVar
)

var inlinedOpNames = [...]string{
	CompareGreaterThan:   ">",
	CompareLessThan:      "<",
	CompareGreaterEqual:  ">=",
	CompareLessEqual:     "=<",
	CompareArithEqual:    "=:=",
	CompareArithNotEqual: "=\\=",
	TypeTestAtom:         "atom",
	TypeTestAtomic:       "atomic",
	TypeTestCompound:     "compound",
	TypeTestInteger:      "integer",
	TypeTestNumber:       "number",
	TypeTestRational:     "rational",
	TypeTestFloat:        "float",
	TypeTestNonvar:       "nonvar",
	TypeTestVar:          "var",
}

func (o InlinedOp) String() string { return inlinedOpNames[o] }

// BuiltinOp enumerates the built-in predicates that compile to a
// dedicated call instruction rather than an inlined comparison or an
// ordinary user predicate call.
type BuiltinOp int

const (
	BuiltinAcyclicTerm BuiltinOp = iota
	BuiltinArg
	BuiltinCompare
	BuiltinTermGreaterThan
	BuiltinTermLessThan
	BuiltinTermGreaterEqual
	BuiltinTermLessEqual
	BuiltinCopyTerm
	BuiltinTermEqual
	BuiltinTermNotEqual
	BuiltinFunctor
	BuiltinGround
	BuiltinIs
	BuiltinKeysort
	BuiltinNl
	BuiltinRead
	BuiltinSort
)

var builtinOpNames = [...]string{
	BuiltinAcyclicTerm:      "acyclic_term",
	BuiltinArg:              "arg",
	BuiltinCompare:          "compare",
	BuiltinTermGreaterThan:  "@>",
	BuiltinTermLessThan:     "@<",
	BuiltinTermGreaterEqual: "@>=",
	BuiltinTermLessEqual:    "@=<",
	BuiltinCopyTerm:         "copy_term",
	BuiltinTermEqual:        "==",
	BuiltinTermNotEqual:     "\\==",
	BuiltinFunctor:          "functor",
	BuiltinGround:           "ground",
	BuiltinIs:               "is",
	BuiltinKeysort:          "keysort",
	BuiltinNl:               "nl",
	BuiltinRead:             "read",
	BuiltinSort:             "sort",
}

func (o BuiltinOp) String() string { return builtinOpNames[o] }

// SystemOp enumerates a representative subset of the "$"-prefixed
// system-predicate table: a few entries per category (atom/char/code
// conversion, stream operations, REPL hooks, environment access, plus
// the variadic $module_call) rather than the full closed set a
// production system would carry;
// DESIGN.md records that scoping decision.
type SystemOp int

const (
	SystemAtomCodes SystemOp = iota
	SystemAtomChars
	SystemCharCode
	SystemNumberCodes
	SystemStreamOpen
	SystemStreamClose
	SystemReplHistory
	SystemGetEnv
	SystemDynamicModuleResolution // "$module_call", variadic; Index holds n-2
)

var systemOpNames = [...]string{
	SystemAtomCodes:               "$atom_codes",
	SystemAtomChars:               "$atom_chars",
	SystemCharCode:                "$char_code",
	SystemNumberCodes:             "$number_codes",
	SystemStreamOpen:              "$stream_open",
	SystemStreamClose:             "$stream_close",
	SystemReplHistory:             "$repl_history",
	SystemGetEnv:                  "$getenv",
	SystemDynamicModuleResolution: "$module_call",
}

func (o SystemOp) String() string { return systemOpNames[o] }

// ClauseType is the discriminant+payload sum describing how a call
// site should compile: only the field group matching Kind is
// meaningful.
type ClauseType struct {
	Kind Kind

	Inlined InlinedOp
	Builtin BuiltinOp
	System  SystemOp

	Name  string
	Arity int
	Index int // fresh, unique per Named/Op entry; n-2 for $module_call/n

	Op *lexer.OpSpec // advertised operator spec, set for some BuiltIn entries and always for Op
}

func (ct ClauseType) String() string {
	switch ct.Kind {
	case Inlined:
		return fmt.Sprintf("Inlined(%s/%d)", ct.Inlined, ct.Arity)
	case BuiltIn:
		return fmt.Sprintf("BuiltIn(%s/%d)", ct.Builtin, ct.Arity)
	case System:
		return fmt.Sprintf("System(%s/%d)", ct.System, ct.Arity)
	case Op:
		return fmt.Sprintf("Op(%s/%d, (%d,%s), #%d)", ct.Name, ct.Arity, ct.Op.Priority, ct.Op.Assoc, ct.Index)
	case CallN:
		return fmt.Sprintf("CallN(%d)", ct.Arity)
	case Named:
		return fmt.Sprintf("Named(%s/%d, #%d)", ct.Name, ct.Arity, ct.Index)
	default:
		return "?"
	}
}

type key struct {
	name  string
	arity int
}

var inlinedTable = map[key]InlinedOp{
	{">", 2}:   CompareGreaterThan,
	{"<", 2}:   CompareLessThan,
	{">=", 2}:  CompareGreaterEqual,
	{"=<", 2}:  CompareLessEqual,
	{"=:=", 2}: CompareArithEqual,
	{`=\=`, 2}: CompareArithNotEqual,
	{"atom", 1}:     TypeTestAtom,
	{"atomic", 1}:   TypeTestAtomic,
	{"compound", 1}: TypeTestCompound,
	{"integer", 1}:  TypeTestInteger,
	{"number", 1}:   TypeTestNumber,
	{"rational", 1}: TypeTestRational,
	{"float", 1}:    TypeTestFloat,
	{"nonvar", 1}:   TypeTestNonvar,
	{"var", 1}:      TypeTestVar,
}

// comparisonOpSpec is the default (700, xfx) operator spec advertised
// for every comparison-style built-in.
var comparisonOpSpec = &lexer.OpSpec{Priority: 700, Assoc: "xfx"}

var builtinTable = map[key]BuiltinOp{
	{"acyclic_term", 1}: BuiltinAcyclicTerm,
	{"arg", 3}:          BuiltinArg,
	{"compare", 3}:      BuiltinCompare,
	{"@>", 2}:           BuiltinTermGreaterThan,
	{"@<", 2}:           BuiltinTermLessThan,
	{"@>=", 2}:          BuiltinTermGreaterEqual,
	{"@=<", 2}:          BuiltinTermLessEqual,
	{"copy_term", 2}:    BuiltinCopyTerm,
	{"==", 2}:           BuiltinTermEqual,
	{`\==`, 2}:          BuiltinTermNotEqual,
	{"functor", 3}:      BuiltinFunctor,
	{"ground", 1}:       BuiltinGround,
	{"is", 2}:           BuiltinIs,
	{"keysort", 2}:      BuiltinKeysort,
	{"nl", 0}:           BuiltinNl,
	{"read", 1}:         BuiltinRead,
	{"sort", 2}:         BuiltinSort,
}

// builtinOpSpecs gives the default (700, xfx) operator spec advertised
// for the comparison-style built-ins among builtinTable's entries.
var builtinOpSpecs = map[key]*lexer.OpSpec{
	{"@>", 2}:        comparisonOpSpec,
	{"@<", 2}:        comparisonOpSpec,
	{"@>=", 2}:       comparisonOpSpec,
	{"@=<", 2}:       comparisonOpSpec,
	{"==", 2}:        comparisonOpSpec,
	{`\==`, 2}:       comparisonOpSpec,
	{"is", 2}:        comparisonOpSpec,
}

var systemTable = map[key]SystemOp{
	{"$atom_codes", 2}:   SystemAtomCodes,
	{"$atom_chars", 2}:   SystemAtomChars,
	{"$char_code", 2}:    SystemCharCode,
	{"$number_codes", 2}: SystemNumberCodes,
	{"$stream_open", 3}:  SystemStreamOpen,
	{"$stream_close", 1}: SystemStreamClose,
	{"$repl_history", 0}: SystemReplHistory,
	{"$getenv", 2}:       SystemGetEnv,
}

// Registry resolves (name, arity, op) lookups and allocates fresh,
// unique indices for Named/Op entries. It is guarded
// by a mutex at no cost to a single-threaded caller, mirroring the
// same decision made for internal/atom's Table, so a concurrent
// compiler can share one registry without changing this package.
type Registry struct {
	mu        sync.Mutex
	nextIndex int
}

// NewRegistry creates a Registry with its fresh-index counter at 1.
func NewRegistry() *Registry {
	return &Registry{nextIndex: 1}
}

func (r *Registry) allocIndex() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.nextIndex
	r.nextIndex++
	return idx
}

// Lookup resolves a call-site (name, arity, op) into its ClauseType,
// in a fixed priority order: inlined, built-in, system
// ("$"-prefixed), operator fallback, "call", then Named. ok is false
// only when name is "$"-prefixed but matches no system-predicate
// entry.
func (r *Registry) Lookup(name string, arity int, op *lexer.OpSpec) (ClauseType, bool) {
	k := key{name, arity}

	if iop, ok := inlinedTable[k]; ok {
		return ClauseType{Kind: Inlined, Inlined: iop, Name: name, Arity: arity}, true
	}

	if bop, ok := builtinTable[k]; ok {
		ct := ClauseType{Kind: BuiltIn, Builtin: bop, Name: name, Arity: arity}
		if spec, ok2 := builtinOpSpecs[k]; ok2 {
			ct.Op = spec
		}
		return ct, true
	}

	if strings.HasPrefix(name, "$") {
		if name == "$module_call" && arity >= 2 {
			return ClauseType{
				Kind: System, System: SystemDynamicModuleResolution,
				Name: name, Arity: arity, Index: arity - 2,
			}, true
		}
		if sop, ok := systemTable[k]; ok {
			return ClauseType{Kind: System, System: sop, Name: name, Arity: arity}, true
		}
		return ClauseType{}, false
	}

	if op != nil {
		return ClauseType{Kind: Op, Name: name, Arity: arity, Op: op, Index: r.allocIndex()}, true
	}

	if name == "call" {
		return ClauseType{Kind: CallN, Name: name, Arity: arity}, true
	}

	return ClauseType{Kind: Named, Name: name, Arity: arity, Index: r.allocIndex()}, true
}
