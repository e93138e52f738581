package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLayout(t *testing.T) {
	for _, c := range []rune{' ', '\t', '\n', '\v', '\f'} {
		assert.Truef(t, IsLayout(c), "expected %q to be layout", c)
	}
	for _, c := range []rune{'a', '0', '_', '.'} {
		assert.Falsef(t, IsLayout(c), "expected %q to not be layout", c)
	}
}

func TestIsGraphicAndGraphicToken(t *testing.T) {
	for _, c := range []rune("#$&*+-./:<=>?@^~") {
		assert.True(t, IsGraphic(c))
		assert.True(t, IsGraphicToken(c))
	}
	assert.False(t, IsGraphic('\\'))
	assert.True(t, IsGraphicToken('\\'))
}

func TestIsSolo(t *testing.T) {
	for _, c := range []rune("!(),;[]{}|%") {
		assert.Truef(t, IsSolo(c), "expected %q to be solo", c)
	}
	assert.False(t, IsSolo('a'))
}

func TestIsMeta(t *testing.T) {
	for _, c := range []rune{'\\', '\'', '"', '`'} {
		assert.True(t, IsMeta(c))
	}
	assert.False(t, IsMeta('a'))
}

func TestDigitClasses(t *testing.T) {
	assert.True(t, IsDecimal('5'))
	assert.False(t, IsDecimal('a'))

	assert.True(t, IsOctal('7'))
	assert.False(t, IsOctal('8'))

	assert.True(t, IsBinary('1'))
	assert.False(t, IsBinary('2'))

	for _, c := range []rune("0123456789abcdefABCDEF") {
		assert.Truef(t, IsHexDigit(c), "expected %q to be hex", c)
	}
	assert.False(t, IsHexDigit('g'))
}

func TestCaseClasses(t *testing.T) {
	assert.True(t, IsCapital('Z'))
	assert.False(t, IsCapital('z'))
	assert.True(t, IsSmall('z'))
	assert.False(t, IsSmall('Z'))
	assert.True(t, IsVariableIndicator('_'))
	assert.False(t, IsVariableIndicator('x'))
}

func TestIsAlphaUnicodeBlocks(t *testing.T) {
	cases := []struct {
		name string
		c    rune
		want bool
	}{
		{"ascii lower", 'x', true},
		{"ascii upper", 'X', true},
		{"underscore", '_', true},
		{"cyrillic", 'Д', true},
		{"greek", 'Δ', true},
		{"arabic", 'ش', true},
		{"digit", '5', false},
		{"graphic", '+', false},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAlpha(tt.c))
		})
	}
}

func TestIsAlphaNumeric(t *testing.T) {
	assert.True(t, IsAlphaNumeric('a'))
	assert.True(t, IsAlphaNumeric('9'))
	assert.False(t, IsAlphaNumeric('+'))
}

func TestSignAndExponent(t *testing.T) {
	assert.True(t, IsSign('+'))
	assert.True(t, IsSign('-'))
	assert.False(t, IsSign('*'))

	assert.True(t, IsExponentIndicator('e'))
	assert.True(t, IsExponentIndicator('E'))
	assert.False(t, IsExponentIndicator('x'))
}

func TestIsSymbolicControl(t *testing.T) {
	for _, c := range []rune("abfnrtv0") {
		assert.Truef(t, IsSymbolicControl(c), "expected %q", c)
	}
	assert.False(t, IsSymbolicControl('c'))
}

func TestIsPrologChar(t *testing.T) {
	for _, c := range []rune("abc123!()+\\ \n'\"`") {
		assert.Truef(t, IsPrologChar(c), "expected %q to be a prolog char", c)
	}
}
