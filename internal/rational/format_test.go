package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFractionIntegerOnly(t *testing.T) {
	r := NewFromInt64(-7)
	assert.Equal(t, "-7", r.ToFraction())
}

func TestToFractionWithRemainder(t *testing.T) {
	r, err := NewFromString("123.5")
	require.NoError(t, err)
	assert.Equal(t, "123 5/10", r.ToFraction())
}

func TestToDecimalMixedNegative(t *testing.T) {
	r, err := NewFromString("-4 538/1284")
	require.NoError(t, err)
	out, err := r.ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, "-4.4[19003115264797507788161993769470404984423676012461059]", out)
}

func TestToDecimalTruncatesAtMaxDP(t *testing.T) {
	r, err := NewFromString("1/7")
	require.NoError(t, err)
	out, err := r.ToDecimal(3)
	require.NoError(t, err)
	assert.Equal(t, "0.142...", out)
}

func TestValueIntegerOnlySubtraction(t *testing.T) {
	a := NewFromInt64(5)
	b := NewFromFloat64(12.5, false)
	require.NoError(t, a.Subtract(b))
	assert.Equal(t, float64(-7), a.Value())
}

func TestCompareOrdersBySignThenMagnitude(t *testing.T) {
	a, _ := NewFromString("-3/2")
	b, _ := NewFromString("1/2")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a.Clone()))
	assert.True(t, a.Lt(b))
	assert.True(t, b.Gt(a))
}

func TestMakeIntegerAndFractional(t *testing.T) {
	r, err := NewFromString("7/2")
	require.NoError(t, err)
	r.MakeInteger()
	assert.True(t, r.IsIntegerMode())
	assert.Equal(t, "3", r.ToInteger())

	r.MakeFractional()
	assert.False(t, r.IsIntegerMode())
	assert.False(t, r.HasFraction())
}

func TestMarshalUnmarshalBinaryRoundTrip(t *testing.T) {
	r, err := NewFromString("-4 538/1284")
	require.NoError(t, err)
	data, err := r.MarshalBinary()
	require.NoError(t, err)

	var out R
	require.NoError(t, out.UnmarshalBinary(data))
	rDecimal, err := r.ToDecimal()
	require.NoError(t, err)
	outDecimal, err := out.ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, rDecimal, outDecimal)
	assert.Equal(t, r.ToFraction(), out.ToFraction())
}
