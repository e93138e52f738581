package number

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntegerWidening(t *testing.T) {
	small := NewInteger(big.NewInt(42))
	fx, ok := small.(Fixnum)
	require.True(t, ok, "value fitting int64 must widen to Fixnum")
	assert.Equal(t, Fixnum(42), fx)

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	big1 := NewInteger(huge)
	bi, ok := big1.(Integer)
	require.True(t, ok, "value overflowing int64 must stay an Integer")
	assert.Equal(t, "123456789012345678901234567890", bi.String())
}

func TestFixnumIntegerPartition(t *testing.T) {
	// No value is simultaneously representable as both: a boundary
	// value at MaxInt64 widens to Fixnum, one past it does not.
	maxFixnum := NewInteger(big.NewInt(9223372036854775807))
	_, isFixnum := maxFixnum.(Fixnum)
	assert.True(t, isFixnum)

	overflow := new(big.Int).Add(big.NewInt(9223372036854775807), big.NewInt(1))
	widened := NewInteger(overflow)
	_, isInteger := widened.(Integer)
	assert.True(t, isInteger)
}

func TestParseIntBases(t *testing.T) {
	cases := []struct {
		digits string
		base   int
		want   Number
	}{
		{"65", 10, Fixnum(65)},
		{"FF", 16, Fixnum(255)},
		{"17", 8, Fixnum(15)},
		{"1010", 2, Fixnum(10)},
	}
	for _, tt := range cases {
		got, ok := ParseInt(tt.digits, tt.base)
		require.True(t, ok)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseIntOverflowFallsBackToBigInt(t *testing.T) {
	got, ok := ParseInt("FFFFFFFFFFFFFFFFFF", 16)
	require.True(t, ok)
	_, isInteger := got.(Integer)
	assert.True(t, isInteger)
}

func TestParseFloat(t *testing.T) {
	f, ok := ParseFloat("3.14e1")
	require.True(t, ok)
	assert.InDelta(t, 31.4, float64(f), 1e-9)

	_, ok = ParseFloat("not-a-number")
	assert.False(t, ok)
}

func TestFloatCompareTotalOrder(t *testing.T) {
	nan := Float(func() float64 { var z float64; return z / z }())
	assert.Equal(t, 0, nan.Compare(nan))
	assert.Equal(t, -1, nan.Compare(Float(0)))
	assert.Equal(t, 1, Float(0).Compare(nan))
	assert.Equal(t, -1, Float(1).Compare(Float(2)))
	assert.Equal(t, 1, Float(2).Compare(Float(1)))
	assert.Equal(t, 0, Float(2).Compare(Float(2)))
}

func TestRationalString(t *testing.T) {
	r := NewRational(big.NewInt(6), big.NewInt(4))
	assert.Equal(t, "3/2", r.String())
}
