package clausetype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brightly-salty/scryer-prolog/internal/clausetype"
	"github.com/brightly-salty/scryer-prolog/internal/lexer"
)

func TestLookupInlinedComparison(t *testing.T) {
	r := clausetype.NewRegistry()
	ct, ok := r.Lookup(">", 2, nil)
	require.True(t, ok)
	require.Equal(t, clausetype.Inlined, ct.Kind)
	require.Equal(t, clausetype.CompareGreaterThan, ct.Inlined)
}

func TestLookupIsAdvertisesDefaultOperator(t *testing.T) {
	r := clausetype.NewRegistry()
	ct, ok := r.Lookup("is", 2, nil)
	require.True(t, ok)
	require.Equal(t, clausetype.BuiltIn, ct.Kind)
	require.Equal(t, clausetype.BuiltinIs, ct.Builtin)
	require.NotNil(t, ct.Op)
	require.Equal(t, 700, ct.Op.Priority)
	require.Equal(t, "xfx", ct.Op.Assoc)
}

func TestLookupNamedGetsFreshIndex(t *testing.T) {
	r := clausetype.NewRegistry()
	a, ok := r.Lookup("foo", 2, nil)
	require.True(t, ok)
	require.Equal(t, clausetype.Named, a.Kind)

	b, ok := r.Lookup("bar", 1, nil)
	require.True(t, ok)
	require.Equal(t, clausetype.Named, b.Kind)

	require.NotEqual(t, a.Index, b.Index)
}

func TestLookupSameNameReusesNoIndexCaching(t *testing.T) {
	// Each lookup call allocates a fresh index; the registry does not
	// cache Named resolutions across calls. Caching repeated lookups of
	// the same name, if wanted, belongs to the compiler's symbol table.
	r := clausetype.NewRegistry()
	a, _ := r.Lookup("foo", 2, nil)
	b, _ := r.Lookup("foo", 2, nil)
	require.NotEqual(t, a.Index, b.Index)
}

func TestLookupCallIsVariadicCallN(t *testing.T) {
	r := clausetype.NewRegistry()
	ct, ok := r.Lookup("call", 3, nil)
	require.True(t, ok)
	require.Equal(t, clausetype.CallN, ct.Kind)
}

func TestLookupWithOperatorSpecProducesOp(t *testing.T) {
	r := clausetype.NewRegistry()
	spec := &lexer.OpSpec{Priority: 500, Assoc: "yfx"}
	ct, ok := r.Lookup("++", 2, spec)
	require.True(t, ok)
	require.Equal(t, clausetype.Op, ct.Kind)
	require.Same(t, spec, ct.Op)
}

func TestLookupUnmatchedSystemPrefixReturnsNotOk(t *testing.T) {
	r := clausetype.NewRegistry()
	_, ok := r.Lookup("$nonexistent", 4, nil)
	require.False(t, ok)
}

func TestLookupModuleCallIsVariadicDynamicResolution(t *testing.T) {
	r := clausetype.NewRegistry()
	ct, ok := r.Lookup("$module_call", 5, nil)
	require.True(t, ok)
	require.Equal(t, clausetype.System, ct.Kind)
	require.Equal(t, clausetype.SystemDynamicModuleResolution, ct.System)
	require.Equal(t, 3, ct.Index)
}
