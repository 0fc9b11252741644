package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStringInteger(t *testing.T) {
	r, err := NewFromString("42")
	require.NoError(t, err)
	assert.True(t, r.IsIntegerMode())
	assert.Equal(t, "42", r.ToInteger())
}

func TestSetStringFraction(t *testing.T) {
	r, err := NewFromString("3/4")
	require.NoError(t, err)
	assert.False(t, r.IsIntegerMode())
	assert.Equal(t, "0 3/4", r.ToFraction())
}

func TestSetStringZeroDenominatorIsError(t *testing.T) {
	_, err := NewFromString("3/0")
	assert.Error(t, err)
}

func TestSetStringMixedFractionNegation(t *testing.T) {
	r, err := NewFromString("-4 538/1284")
	require.NoError(t, err)
	assert.Equal(t, "-4", r.ToInteger())
	out, err := r.ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, "-4.4[19003115264797507788161993769470404984423676012461059]", out)
}

func TestSetStringRecurringDecimal(t *testing.T) {
	r, err := NewFromString("0.[3]")
	require.NoError(t, err)
	assert.Equal(t, "0", r.ToInteger())
	assert.Equal(t, "3", r.Num.String())
	assert.Equal(t, "9", r.Den.String())
}

func TestSetStringMalformed(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "1//2"} {
		_, err := NewFromString(in)
		assert.Error(t, err, in)
	}
}

func TestSetStringMixedFractionIntegerModeMergesQuotient(t *testing.T) {
	r, err := NewFromString("2 5/3", true)
	require.NoError(t, err)
	assert.True(t, r.IsIntegerMode())
	assert.Equal(t, "3", r.ToInteger())
	assert.Nil(t, r.Num)
	assert.Nil(t, r.Den)
}

func TestSetStringMixedFractionIntegerModeMergesQuotientNegative(t *testing.T) {
	r, err := NewFromString("-2 5/3", true)
	require.NoError(t, err)
	assert.Equal(t, "-4", r.ToInteger())
}

func TestSetStringRecurringDecimalIntegerModeMergesQuotient(t *testing.T) {
	r, err := NewFromString("0.9[9]", true)
	require.NoError(t, err)
	assert.True(t, r.IsIntegerMode())
	assert.Equal(t, "1", r.ToInteger())
	assert.Nil(t, r.Num)
	assert.Nil(t, r.Den)
}

func TestSetStringFractionIntegerModeMergesQuotient(t *testing.T) {
	r, err := NewFromString("5/3", true)
	require.NoError(t, err)
	assert.Equal(t, "1", r.ToInteger())

	r, err = NewFromString("-5/3", true)
	require.NoError(t, err)
	assert.Equal(t, "-2", r.ToInteger())
}

func TestNewFromFloat64(t *testing.T) {
	r := NewFromFloat64(123.5)
	assert.Equal(t, "123 5/10", r.ToFraction())
}

func TestNewFromFloat64WholeInfersIntegerMode(t *testing.T) {
	r := NewFromFloat64(5.0)
	assert.True(t, r.IsIntegerMode())
}

func TestNewFromFloat64ExplicitFractionalMode(t *testing.T) {
	r := NewFromFloat64(12.5, false)
	assert.False(t, r.IsIntegerMode())
	assert.Equal(t, "12 5/10", r.ToFraction())
}

func TestNewFromR(t *testing.T) {
	src, err := NewFromString("7/2")
	require.NoError(t, err)
	clone := NewFromR(src)
	clone.Whole.Add(clone.Whole)
	assert.NotEqual(t, src.Whole.String(), clone.Whole.String())
}
