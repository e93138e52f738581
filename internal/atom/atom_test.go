package atom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternSharesHandle(t *testing.T) {
	table := NewTable()

	a := table.Intern("foo")
	b := table.Intern("foo")

	require.Same(t, a, b, "interning the same name twice must share one handle")
	require.Equal(t, "foo", a.Name())
	require.Equal(t, 2, table.RefCount("foo"))
}

func TestInternDistinctNames(t *testing.T) {
	table := NewTable()

	a := table.Intern("foo")
	b := table.Intern("bar")

	require.NotSame(t, a, b)
	require.Equal(t, 2, table.Len())
}

func TestReleaseReclaimsSlot(t *testing.T) {
	table := NewTable()

	a := table.Intern("foo")
	table.Release(a)

	require.Equal(t, 0, table.RefCount("foo"))
	require.Equal(t, 0, table.Len())

	b := table.Intern("foo")
	require.NotSame(t, a, b, "a fresh Atom is allocated once the last reference is released")
}

func TestReleaseDecrementsWithoutReclaiming(t *testing.T) {
	table := NewTable()

	a1 := table.Intern("foo")
	_ = table.Intern("foo")

	table.Release(a1)
	require.Equal(t, 1, table.RefCount("foo"))
	require.Equal(t, 1, table.Len())
}

func TestReleaseNilIsNoop(t *testing.T) {
	table := NewTable()
	table.Release(nil)
	require.Equal(t, 0, table.Len())
}

func TestDefaultTableIsShared(t *testing.T) {
	require.Same(t, Default(), Default())
}
