// Package converter implements the TokenConverter state machine: two token
// balances, an exact-fraction conversion rate, an owner and a paused flag.
// The Ethereum execution environment processes contract calls one at a time;
// outside that environment the same atomicity is reproduced here by guarding
// every operation with a single mutex.
package converter

import (
	"math/big"
	"sync"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/hermeznetwork/tracerr"

	"github.com/converternetwork/converter-node/common"
)

// TokenLedger is the external accounts-and-allowances store of a token.  The
// converter pulls funds in with TransferFrom (subject to a prior allowance
// granted by owner to spender) and pays funds out with Transfer.  Both must
// fail atomically, signalling insufficient balance and insufficient allowance
// distinctly.
type TokenLedger interface {
	TransferFrom(owner, spender ethCommon.Address, amount *big.Int) error
	Transfer(from, to ethCommon.Address, amount *big.Int) error
	BalanceOf(holder ethCommon.Address) *big.Int
}

// Event is a notification emitted by the converter.  Emission is best-effort
// observability, not correctness-critical.
type Event interface{}

// EventRateUpdated notifies a conversion rate replacement
type EventRateUpdated struct {
	Rate common.ConversionRate
}

// EventDeposit notifies a token B deposit into the converter
type EventDeposit struct {
	From   ethCommon.Address
	Amount *big.Int
}

// EventWithdraw notifies a token B withdrawal by the owner
type EventWithdraw struct {
	To     ethCommon.Address
	Amount *big.Int
}

// EventConvert notifies a completed conversion
type EventConvert struct {
	From    ethCommon.Address
	AmountA *big.Int
	AmountB *big.Int
}

// EventPaused notifies that the acting identity paused the converter
type EventPaused struct {
	By ethCommon.Address
}

// EventUnpaused notifies that the acting identity unpaused the converter
type EventUnpaused struct {
	By ethCommon.Address
}

// EventOwnershipTransferred notifies an ownership transfer
type EventOwnershipTransferred struct {
	PreviousOwner ethCommon.Address
	NewOwner      ethCommon.Address
}

// Converter holds the TokenConverter state.  All mutations go through the
// exported operations; every precondition is evaluated before any mutation,
// so a failed call never commits a partial state change.
type Converter struct {
	mu sync.Mutex

	addr     ethCommon.Address
	consts   common.ConverterConstants
	rate     common.ConversionRate
	owner    ethCommon.Address
	paused   bool
	balanceA *big.Int
	balanceB *big.Int

	ledgerA TokenLedger
	ledgerB TokenLedger
	emit    func(Event)
}

// New creates a Converter with the given token identities, initial rate and
// owner (the deployer).  Returns ErrInvalidRate if denom is zero.  emit may
// be nil, in which case events are discarded.
func New(addr ethCommon.Address, consts common.ConverterConstants,
	owner ethCommon.Address, num, denom *big.Int,
	ledgerA, ledgerB TokenLedger, emit func(Event)) (*Converter, error) {
	rate, err := common.NewConversionRate(num, denom)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	if emit == nil {
		emit = func(Event) {}
	}
	return &Converter{
		addr:     addr,
		consts:   consts,
		rate:     rate,
		owner:    owner,
		paused:   false,
		balanceA: big.NewInt(0),
		balanceB: big.NewInt(0),
		ledgerA:  ledgerA,
		ledgerB:  ledgerB,
		emit:     emit,
	}, nil
}

// Address returns the converter identity in the token ledgers.
func (c *Converter) Address() ethCommon.Address {
	return c.addr
}

// Constants returns the converter constants.
func (c *Converter) Constants() common.ConverterConstants {
	return c.consts
}

// ConversionRate returns the current rate as an exact fraction.
func (c *Converter) ConversionRate() common.ConversionRate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate.Copy()
}

// Owner returns the current owner identity.
func (c *Converter) Owner() ethCommon.Address {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.owner
}

// IsPaused returns the paused flag.
func (c *Converter) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// BalanceTokenA returns the token A balance held by the converter.
func (c *Converter) BalanceTokenA() *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return new(big.Int).Set(c.balanceA)
}

// BalanceTokenB returns the token B balance held by the converter.
func (c *Converter) BalanceTokenB() *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return new(big.Int).Set(c.balanceB)
}

// Variables returns a snapshot of the replayable contract variables.
func (c *Converter) Variables() *common.ConverterVariables {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &common.ConverterVariables{
		Rate:   c.rate.Copy(),
		Owner:  c.owner,
		Paused: c.paused,
	}
}

// Snapshot returns a deep copy of the converter state bound to the given
// ledgers and emit callback.  The copy shares no mutable state with the
// original, so callers can restore a previous state after a failed call.
func (c *Converter) Snapshot(ledgerA, ledgerB TokenLedger, emit func(Event)) *Converter {
	c.mu.Lock()
	defer c.mu.Unlock()
	if emit == nil {
		emit = func(Event) {}
	}
	return &Converter{
		addr:     c.addr,
		consts:   c.consts,
		rate:     c.rate.Copy(),
		owner:    c.owner,
		paused:   c.paused,
		balanceA: new(big.Int).Set(c.balanceA),
		balanceB: new(big.Int).Set(c.balanceB),
		ledgerA:  ledgerA,
		ledgerB:  ledgerB,
		emit:     emit,
	}
}

// UpdateConversionRate replaces both fields of the rate atomically.  Owner
// only.  Takes effect for all subsequent conversions.
func (c *Converter) UpdateConversionRate(caller ethCommon.Address, num, denom *big.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if caller != c.owner {
		return tracerr.Wrap(ErrCaller(common.ErrUnauthorized, caller))
	}
	rate, err := common.NewConversionRate(num, denom)
	if err != nil {
		return tracerr.Wrap(err)
	}
	c.rate = rate
	c.emit(EventRateUpdated{Rate: rate.Copy()})
	return nil
}

// DepositTokenB pulls amount of token B from the caller into the converter.
// Callable by anyone, and not gated by the pause flag.
func (c *Converter) DepositTokenB(caller ethCommon.Address, amount *big.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if amount == nil || amount.Sign() <= 0 {
		return tracerr.Wrap(common.ErrInvalidAmount)
	}
	if err := c.ledgerB.TransferFrom(caller, c.addr, amount); err != nil {
		return tracerr.Wrap(err)
	}
	c.balanceB.Add(c.balanceB, amount)
	c.emit(EventDeposit{From: caller, Amount: new(big.Int).Set(amount)})
	return nil
}

// WithdrawTokenB transfers amount of token B from the converter to the
// owner.  Owner only, exempt from the pause gate like DepositTokenB.
func (c *Converter) WithdrawTokenB(caller ethCommon.Address, amount *big.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if caller != c.owner {
		return tracerr.Wrap(ErrCaller(common.ErrUnauthorized, caller))
	}
	if amount == nil || amount.Sign() <= 0 {
		return tracerr.Wrap(common.ErrInvalidAmount)
	}
	if amount.Cmp(c.balanceB) > 0 {
		return tracerr.Wrap(common.ErrInsufficientBalance)
	}
	if err := c.ledgerB.Transfer(c.addr, c.owner, amount); err != nil {
		return tracerr.Wrap(err)
	}
	c.balanceB.Sub(c.balanceB, amount)
	c.emit(EventWithdraw{To: c.owner, Amount: new(big.Int).Set(amount)})
	return nil
}

// ConvertTokens converts amountA of token A into token B at the current
// rate.  amountB = floor(amountA * num / denom).  Pulls amountA from the
// caller and pays amountB out to the caller; both happen or neither.
// Blocked while paused.
func (c *Converter) ConvertTokens(caller ethCommon.Address, amountA *big.Int) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A zero amount is rejected with InvalidAmount regardless of the
	// pause state.
	if amountA == nil || amountA.Sign() <= 0 {
		return nil, tracerr.Wrap(common.ErrInvalidAmount)
	}
	if c.paused {
		return nil, tracerr.Wrap(common.ErrPaused)
	}
	amountB := c.rate.Amount(amountA)
	if amountB.Cmp(c.balanceB) > 0 {
		return nil, tracerr.Wrap(common.ErrInsufficientBalance)
	}
	// The ledger checks the caller funds and allowance; its errors are
	// propagated unchanged.
	if err := c.ledgerA.TransferFrom(caller, c.addr, amountA); err != nil {
		return nil, tracerr.Wrap(err)
	}
	// balanceB >= amountB was checked above and the converter ledger
	// balance is never below balanceB, so the payout can not fail.
	if err := c.ledgerB.Transfer(c.addr, caller, amountB); err != nil {
		return nil, tracerr.Wrap(err)
	}
	c.balanceA.Add(c.balanceA, amountA)
	c.balanceB.Sub(c.balanceB, amountB)
	c.emit(EventConvert{
		From:    caller,
		AmountA: new(big.Int).Set(amountA),
		AmountB: new(big.Int).Set(amountB),
	})
	return amountB, nil
}

// Pause sets the paused flag.  Owner only.  Pausing an already paused
// converter is a no-op that still emits the event.
func (c *Converter) Pause(caller ethCommon.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if caller != c.owner {
		return tracerr.Wrap(ErrCaller(common.ErrUnauthorized, caller))
	}
	c.paused = true
	c.emit(EventPaused{By: caller})
	return nil
}

// Unpause clears the paused flag.  Owner only.
func (c *Converter) Unpause(caller ethCommon.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if caller != c.owner {
		return tracerr.Wrap(ErrCaller(common.ErrUnauthorized, caller))
	}
	c.paused = false
	c.emit(EventUnpaused{By: caller})
	return nil
}

// TransferOwnership hands the owner role to newOwner.  Owner only; the zero
// address is rejected.
func (c *Converter) TransferOwnership(caller, newOwner ethCommon.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if caller != c.owner {
		return tracerr.Wrap(ErrCaller(common.ErrUnauthorized, caller))
	}
	if newOwner == (ethCommon.Address{}) {
		return tracerr.Wrap(common.ErrInvalidAddress)
	}
	prev := c.owner
	c.owner = newOwner
	c.emit(EventOwnershipTransferred{PreviousOwner: prev, NewOwner: newOwner})
	return nil
}
