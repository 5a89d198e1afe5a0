package common

import (
	"fmt"
	"math/big"
)

// ConversionRate is the exchange rate between token A and token B expressed
// as an exact integer fraction Num/Denom.  Denom must never be zero.
type ConversionRate struct {
	Num   *big.Int `json:"numerator" meddler:"rate_num,bigint"`
	Denom *big.Int `json:"denominator" meddler:"rate_denom,bigint"`
}

// NewConversionRate returns a ConversionRate with its own copies of num and
// denom, or ErrInvalidRate if denom is nil, zero or negative.
func NewConversionRate(num, denom *big.Int) (ConversionRate, error) {
	if num == nil || denom == nil || denom.Sign() <= 0 || num.Sign() < 0 {
		return ConversionRate{}, ErrInvalidRate
	}
	return ConversionRate{
		Num:   new(big.Int).Set(num),
		Denom: new(big.Int).Set(denom),
	}, nil
}

// Valid reports whether the rate has a usable denominator.
func (r ConversionRate) Valid() bool {
	return r.Num != nil && r.Denom != nil && r.Denom.Sign() > 0 && r.Num.Sign() >= 0
}

// Amount returns floor(amountA * Num / Denom).  The multiplication happens
// before the division so no precision is lost, and the quotient truncates
// toward zero.
func (r ConversionRate) Amount(amountA *big.Int) *big.Int {
	amountB := new(big.Int).Mul(amountA, r.Num)
	return amountB.Quo(amountB, r.Denom)
}

// Reduce returns the rate divided by gcd(Num, Denom).  A rate with a zero
// numerator is returned unchanged.
func (r ConversionRate) Reduce() ConversionRate {
	if r.Num.Sign() == 0 {
		return ConversionRate{Num: new(big.Int), Denom: new(big.Int).Set(r.Denom)}
	}
	gcd := new(big.Int).GCD(nil, nil, r.Num, r.Denom)
	return ConversionRate{
		Num:   new(big.Int).Quo(r.Num, gcd),
		Denom: new(big.Int).Quo(r.Denom, gcd),
	}
}

// Eq reports whether both fractions are identical (not just equivalent).
func (r ConversionRate) Eq(o ConversionRate) bool {
	return r.Num.Cmp(o.Num) == 0 && r.Denom.Cmp(o.Denom) == 0
}

// Copy returns a deep copy of the rate.
func (r ConversionRate) Copy() ConversionRate {
	return ConversionRate{
		Num:   new(big.Int).Set(r.Num),
		Denom: new(big.Int).Set(r.Denom),
	}
}

func (r ConversionRate) String() string {
	return fmt.Sprintf("%v/%v", r.Num, r.Denom)
}

// RateFromDecimals scales a reduced fraction quoted between whole tokens into
// the on-chain fraction between base units, given the decimals of each token:
// num' = num * 10^decimalsB, denom' = denom * 10^decimalsA.
func RateFromDecimals(rate ConversionRate, decimalsA, decimalsB uint64) ConversionRate {
	scaleA := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimalsA)), nil)
	scaleB := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimalsB)), nil)
	return ConversionRate{
		Num:   new(big.Int).Mul(rate.Num, scaleB),
		Denom: new(big.Int).Mul(rate.Denom, scaleA),
	}
}
