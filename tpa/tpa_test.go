package tpa

import (
	"testing"

	"github.com/LeJamon/tpa/internal/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenarios below exercise known worked examples through the public
// facade rather than internal/rational directly.

func TestSimplifyThenToFraction(t *testing.T) {
	v, err := NewFromString("0.[3]")
	require.NoError(t, err)
	_, err = v.Simplify(0, rational.NewManualClock())
	require.NoError(t, err)
	assert.Equal(t, "0 1/3", v.ToFraction())
}

func TestToDecimalMixedNegative(t *testing.T) {
	v, err := NewFromString("-4 538/1284")
	require.NoError(t, err)
	out, err := v.ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, "-4.4[19003115264797507788161993769470404984423676012461059]", out)
}

func TestSimplifyPreservesFractionScenario(t *testing.T) {
	v, err := NewFromString("-4 538/1284")
	require.NoError(t, err)
	_, err = v.Simplify(0, rational.NewManualClock())
	require.NoError(t, err)
	assert.Equal(t, "-4 269/642", v.ToFraction())
}

func TestToFractionFromPlatformFloat(t *testing.T) {
	v := NewFromFloat64(123.5)
	assert.Equal(t, "123 5/10", v.ToFraction())
}

func TestChainedMultiplyDivideSimplify(t *testing.T) {
	acc, err := NewFromString("1/3")
	require.NoError(t, err)
	for _, f := range []string{"3/5", "9/7", "23/45", "12 45/87"} {
		next, err := NewFromString(f)
		require.NoError(t, err)
		require.NoError(t, acc.Multiply(next))
	}
	divisor, err := NewFromString("99.75")
	require.NoError(t, err)
	require.NoError(t, acc.Divide(divisor))
	_, err = acc.Simplify(0, rational.NewManualClock())
	require.NoError(t, err)
	assert.Equal(t, "0 11132/674975", acc.ToFraction())
}

func TestSubtractFirstOperandModeWins(t *testing.T) {
	a := NewFromInt64(5)
	b := NewFromFloat64(12.5, false)
	require.NoError(t, a.Subtract(b))
	assert.Equal(t, float64(-7), a.Value())
}

func TestModulusToString(t *testing.T) {
	a := NewFromInt64(22)
	b := NewFromInt64(3)
	require.NoError(t, a.Modulus(b))
	out, err := a.ToString()
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

func TestStaticAddInheritsFirstArgumentMode(t *testing.T) {
	a := NewFromInt64(5)
	b := NewFromFloat64(2.5, false)
	sum, err := Add(a, b)
	require.NoError(t, err)
	assert.True(t, sum.IsInteger())
	assert.Equal(t, "5", a.ToInteger(), "static Add must not mutate its arguments")
}

func TestStaticConstructorsAlwaysClone(t *testing.T) {
	a, err := NewFromString("1/2")
	require.NoError(t, err)
	dup := NewFromTpa(a)
	require.NoError(t, dup.Add(NewFromInt64(1, false)))
	assert.Equal(t, "0 1/2", a.ToFraction(), "NewFromTpa must not alias its source")
}

func TestCompareAndOrdering(t *testing.T) {
	a, err := NewFromString("-3/2")
	require.NoError(t, err)
	b, err := NewFromString("1/2")
	require.NoError(t, err)
	assert.True(t, a.Lt(b))
	assert.True(t, b.Gt(a))
	assert.True(t, a.Eq(a.Clone()))
}

func TestBinaryRoundTrip(t *testing.T) {
	a, err := NewFromString("-4 538/1284")
	require.NoError(t, err)
	data, err := a.MarshalBinary()
	require.NoError(t, err)

	out := New()
	require.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, a.ToFraction(), out.ToFraction())
}
