package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConversionRate(t *testing.T) {
	rate, err := NewConversionRate(big.NewInt(3), big.NewInt(4))
	require.NoError(t, err)
	assert.Equal(t, "3/4", rate.String())
	assert.True(t, rate.Valid())

	_, err = NewConversionRate(big.NewInt(3), big.NewInt(0))
	assert.Equal(t, ErrInvalidRate, err)
	_, err = NewConversionRate(big.NewInt(3), big.NewInt(-1))
	assert.Equal(t, ErrInvalidRate, err)
	_, err = NewConversionRate(nil, big.NewInt(1))
	assert.Equal(t, ErrInvalidRate, err)
}

func TestConversionRateAmount(t *testing.T) {
	rate, err := NewConversionRate(big.NewInt(3), big.NewInt(4))
	require.NoError(t, err)

	// 100 * 3/4 = 75
	assert.Equal(t, big.NewInt(75), rate.Amount(big.NewInt(100)))
	// floor(10 * 3/4) = 7
	assert.Equal(t, big.NewInt(7), rate.Amount(big.NewInt(10)))
	// floor(1 * 3/4) = 0
	assert.Equal(t, big.NewInt(0), rate.Amount(big.NewInt(1)))
}

func TestConversionRateAmountNoOverflow(t *testing.T) {
	// Multiplication happens before division, so intermediate values may
	// exceed 256 bits without losing precision.
	num, ok := new(big.Int).SetString("3000000000", 10) // 3 * 1e9
	require.True(t, ok)
	denom, ok := new(big.Int).SetString("4000000000000000000", 10) // 4 * 1e18
	require.True(t, ok)
	rate, err := NewConversionRate(num, denom)
	require.NoError(t, err)

	amountA, ok := new(big.Int).SetString("1000000000000000000000", 10) // 1000 * 1e18
	require.True(t, ok)
	expected, ok := new(big.Int).SetString("750000000000", 10) // 750 * 1e9
	require.True(t, ok)
	assert.Equal(t, expected, rate.Amount(amountA))
}

func TestConversionRateReduce(t *testing.T) {
	rate, err := NewConversionRate(big.NewInt(7500), big.NewInt(10000))
	require.NoError(t, err)
	reduced := rate.Reduce()
	assert.Equal(t, "3/4", reduced.String())
	// original untouched
	assert.Equal(t, "7500/10000", rate.String())

	zero, err := NewConversionRate(big.NewInt(0), big.NewInt(5))
	require.NoError(t, err)
	assert.Equal(t, "0/5", zero.Reduce().String())
}

func TestRateFromDecimals(t *testing.T) {
	// 0.75 as 3/4, token A has 18 decimals, token B has 9
	rate, err := NewConversionRate(big.NewInt(3), big.NewInt(4))
	require.NoError(t, err)
	scaled := RateFromDecimals(rate, 18, 9)

	expectedNum, ok := new(big.Int).SetString("3000000000", 10)
	require.True(t, ok)
	expectedDenom, ok := new(big.Int).SetString("4000000000000000000", 10)
	require.True(t, ok)
	assert.Equal(t, expectedNum, scaled.Num)
	assert.Equal(t, expectedDenom, scaled.Denom)
}

func TestConversionRateCopy(t *testing.T) {
	rate, err := NewConversionRate(big.NewInt(3), big.NewInt(4))
	require.NoError(t, err)
	cpy := rate.Copy()
	cpy.Num.SetInt64(99)
	assert.Equal(t, "3/4", rate.String())
	assert.True(t, rate.Eq(rate.Copy()))
	assert.False(t, rate.Eq(cpy))
}
