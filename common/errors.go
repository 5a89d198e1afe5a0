package common

import "errors"

// ErrInvalidRate is used when a conversion rate with a zero denominator is
// set on construction or update
var ErrInvalidRate = errors.New("Invalid conversion rate: denominator is zero")

// ErrInvalidAmount is used when a zero amount is passed to deposit, withdraw
// or convert
var ErrInvalidAmount = errors.New("Invalid amount: zero")

// ErrUnauthorized is used when the caller of an owner-restricted operation is
// not the owner
var ErrUnauthorized = errors.New("Unauthorized: caller is not the owner")

// ErrPaused is used when convertTokens is invoked while the converter is
// paused
var ErrPaused = errors.New("Converter is paused")

// ErrInsufficientBalance is used when the converter token B balance can not
// honor a withdrawal or a conversion payout
var ErrInsufficientBalance = errors.New("Insufficient Token B in contract")

// ErrInsufficientFunds is used when the caller token A balance is below the
// requested conversion amount.  Surfaced from the token ledger.
var ErrInsufficientFunds = errors.New("Insufficient funds")

// ErrInsufficientAllowance is used when the converter allowance granted by
// the caller on token A is below the requested conversion amount.  Surfaced
// from the token ledger.
var ErrInsufficientAllowance = errors.New("Insufficient allowance")

// ErrInvalidAddress is used when the zero address is passed where a real
// address is required
var ErrInvalidAddress = errors.New("Invalid address: zero address")
