package bigint

import (
	"testing"

	"github.com/LeJamon/tpa/internal/tpaerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"zero", "0"},
		{"small positive", "42"},
		{"small negative", "-42"},
		{"explicit plus", "+7"},
		{"large", "123456789012345678901234567890"},
		{"large negative", "-123456789012345678901234567890"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := NewFromString(tc.in)
			require.NoError(t, err)
			want := tc.in
			if want[0] == '+' {
				want = want[1:]
			}
			assert.Equal(t, want, n.String())
		})
	}
}

func TestSetStringRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "+", "-", "12a", "1.5", "1/2"} {
		_, err := NewFromString(in)
		assert.Error(t, err, in)
	}
}

func TestAddSubtract(t *testing.T) {
	a, err := NewFromString("999999999999999999")
	require.NoError(t, err)
	b, err := NewFromString("1")
	require.NoError(t, err)
	a.Add(b)
	assert.Equal(t, "1000000000000000000", a.String())

	a.Subtract(b)
	assert.Equal(t, "999999999999999999", a.String())

	neg, err := NewFromString("-5")
	require.NoError(t, err)
	five, err := NewFromString("5")
	require.NoError(t, err)
	neg.Add(five)
	assert.Equal(t, "0", neg.String())
}

func TestMultiplyScalar(t *testing.T) {
	a, err := NewFromString("123456789")
	require.NoError(t, err)
	b, err := NewFromString("9")
	require.NoError(t, err)
	a.Multiply(b)
	assert.Equal(t, "1111111101", a.String())
}

func TestMultiplyLarge(t *testing.T) {
	a, err := NewFromString("99999999999999999999")
	require.NoError(t, err)
	b, err := NewFromString("99999999999999999999")
	require.NoError(t, err)
	a.Multiply(b)
	assert.Equal(t, "9999999999999999999800000000000000000001", a.String())
}

func TestMultiplyNegative(t *testing.T) {
	a, err := NewFromString("-12")
	require.NoError(t, err)
	b, err := NewFromString("11")
	require.NoError(t, err)
	a.Multiply(b)
	assert.Equal(t, "-132", a.String())
}

func TestDivModScalar(t *testing.T) {
	a, err := NewFromString("100")
	require.NoError(t, err)
	b, err := NewFromString("7")
	require.NoError(t, err)
	rem, err := a.DivMod(b)
	require.NoError(t, err)
	assert.Equal(t, "14", a.String())
	assert.Equal(t, "2", rem.String())
}

func TestDivModLarge(t *testing.T) {
	a, err := NewFromString("123456789123456789")
	require.NoError(t, err)
	b, err := NewFromString("987654321")
	require.NoError(t, err)
	rem, err := a.DivMod(b)
	require.NoError(t, err)
	// 123456789123456789 = 987654321 * 124999998 + 973765431
	assert.Equal(t, "124999998", a.String())
	assert.Equal(t, "973765431", rem.String())
}

func TestDivModByZero(t *testing.T) {
	a, err := NewFromString("10")
	require.NoError(t, err)
	zero := New()
	_, err = a.DivMod(zero)
	assert.ErrorIs(t, err, tpaerr.ErrDivideByZero)
}

func TestCompare(t *testing.T) {
	a, _ := NewFromString("100")
	b, _ := NewFromString("99")
	a.Positivise()
	b.Positivise()
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a.Clone()))
}

func TestSieveProducesPrimesInOrder(t *testing.T) {
	s := NewSieve()
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	for _, w := range want {
		assert.Equal(t, w, s.Next())
	}
}

type fixedSource struct{ vals []float64 }

func (f *fixedSource) Float64() float64 {
	v := f.vals[0]
	f.vals = f.vals[1:]
	return v
}

func TestRandomApproximateLength(t *testing.T) {
	src := &fixedSource{vals: []float64{0.5, 0.5, 0.5}}
	n := New()
	err := n.Random(3, src)
	require.NoError(t, err)
	assert.True(t, len(n.String()) <= 4)
}

func TestRandomRejectsNonPositive(t *testing.T) {
	n := New()
	err := n.Random(0, &fixedSource{vals: []float64{0}})
	assert.Error(t, err)
}
