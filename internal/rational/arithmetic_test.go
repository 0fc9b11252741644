package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFractional(t *testing.T) {
	a, err := NewFromString("1/2")
	require.NoError(t, err)
	b, err := NewFromString("1/3")
	require.NoError(t, err)
	require.NoError(t, a.Add(b))
	assert.Equal(t, "0 5/6", a.ToFraction())
}

func TestSubtractIntegerOnlyDiscardsOperandFraction(t *testing.T) {
	a := NewFromInt64(5)
	b := NewFromFloat64(12.5, false)
	require.NoError(t, a.Subtract(b))
	assert.Equal(t, float64(-7), a.Value())
}

func TestMultiplyChainAndSimplify(t *testing.T) {
	factors := []string{"1/3", "3/5", "9/7", "23/45", "12 45/87"}
	acc, err := NewFromString(factors[0])
	require.NoError(t, err)
	for _, f := range factors[1:] {
		next, err := NewFromString(f)
		require.NoError(t, err)
		require.NoError(t, acc.Multiply(next))
	}
	divisor, err := NewFromString("99.75")
	require.NoError(t, err)
	require.NoError(t, acc.Divide(divisor))

	clock := NewManualClock()
	_, err = acc.Simplify(0, clock)
	require.NoError(t, err)
	assert.Equal(t, "0 11132/674975", acc.ToFraction())
}

func TestDivideFractional(t *testing.T) {
	a, err := NewFromString("1/2")
	require.NoError(t, err)
	b, err := NewFromString("1/4")
	require.NoError(t, err)
	require.NoError(t, a.Divide(b))
	assert.Equal(t, "2", a.ToFraction())
}

func TestDivideByZeroFraction(t *testing.T) {
	a, err := NewFromString("1/2")
	require.NoError(t, err)
	b := NewZero(false)
	assert.Error(t, a.Divide(b))
}

func TestModulus(t *testing.T) {
	a := NewFromInt64(22)
	b := NewFromInt64(3)
	require.NoError(t, a.Modulus(b))
	out, err := a.ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

// 0.[3] is exactly 1/3; 1/3 * 123.5 = 247/6 = 41.1666...
func TestMultiplyRecurringByPlatformFloat(t *testing.T) {
	a, err := NewFromString("0.[3]")
	require.NoError(t, err)
	b := NewFromFloat64(123.5)
	require.NoError(t, a.Multiply(b))
	out, err := a.ToDecimal()
	require.NoError(t, err)
	assert.Equal(t, "41.1[6]", out)
}
