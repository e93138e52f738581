package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNameArity(t *testing.T) {
	name, arity, err := parseNameArity("append/3")
	require.NoError(t, err)
	require.Equal(t, "append", name)
	require.Equal(t, 3, arity)
}

func TestParseNameArityRejectsMissingSlash(t *testing.T) {
	_, _, err := parseNameArity("append")
	require.Error(t, err)
}

func TestParseNameArityRejectsNonNumericArity(t *testing.T) {
	_, _, err := parseNameArity("append/three")
	require.Error(t, err)
}

func TestParseNameArityAllowsSlashInsideOperatorNames(t *testing.T) {
	// "/" itself as a predicate name: "//2" should resolve against the
	// LAST slash, giving name "/" and arity 2.
	name, arity, err := parseNameArity("//2")
	require.NoError(t, err)
	require.Equal(t, "/", name)
	require.Equal(t, 2, arity)
}
