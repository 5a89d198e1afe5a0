package converter_test

import (
	"errors"
	"math/big"
	"testing"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/hermeznetwork/tracerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/converter"
	"github.com/converternetwork/converter-node/test"
)

var (
	converterAddr = ethCommon.HexToAddress("0x51D243D62852Bba334DD5cc33f242BAc8c698074")
	ownerAddr     = ethCommon.HexToAddress("0x688EfD95BA4391f93717CF02A9aED9DBD2855cDd")
	userAddr      = ethCommon.HexToAddress("0x84d8B79E84fe87B14ad61A554e740f6736bF4c20")
	otherAddr     = ethCommon.HexToAddress("0x8E442975805fb1908f43050c9C1A522cB0e28D7b")
	tokenAAddr    = ethCommon.HexToAddress("0x5CB7979cBdbf65719BEE92e4D15b7b7Ed3D79114")
	tokenBAddr    = ethCommon.HexToAddress("0x474B6e29852257491cf283EfB1A9C61eBFe48369")
)

// maxApproval mirrors the unlimited approvals used against the real
// contracts.
var maxApproval = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

type fixture struct {
	conv    *converter.Converter
	ledgerA *test.TokenLedger
	ledgerB *test.TokenLedger
	events  []converter.Event
}

func newFixture(t *testing.T, num, denom int64) *fixture {
	f := &fixture{
		ledgerA: test.NewTokenLedger(common.ERC20Consts{Name: "Token A", Symbol: "TKA", Decimals: 18}),
		ledgerB: test.NewTokenLedger(common.ERC20Consts{Name: "Token B", Symbol: "TKB", Decimals: 18}),
	}
	consts := common.ConverterConstants{
		TokenA: tokenAAddr, TokenB: tokenBAddr,
		TokenADecimals: 18, TokenBDecimals: 18,
	}
	conv, err := converter.New(converterAddr, consts, ownerAddr,
		big.NewInt(num), big.NewInt(denom), f.ledgerA, f.ledgerB,
		func(e converter.Event) { f.events = append(f.events, e) })
	require.NoError(t, err)
	f.conv = conv
	return f
}

// fund mints token B to the owner and deposits it into the converter, and
// mints token A to the user with an unlimited approval.
func (f *fixture) fund(t *testing.T, deposit, userFunds *big.Int) {
	f.ledgerB.Mint(ownerAddr, deposit)
	f.ledgerB.Approve(ownerAddr, converterAddr, deposit)
	require.NoError(t, f.conv.DepositTokenB(ownerAddr, deposit))
	f.ledgerA.Mint(userAddr, userFunds)
	f.ledgerA.Approve(userAddr, converterAddr, maxApproval)
}

func TestNewInvalidRate(t *testing.T) {
	_, err := converter.New(converterAddr, common.ConverterConstants{}, ownerAddr,
		big.NewInt(1), big.NewInt(0), nil, nil, nil)
	assert.Equal(t, common.ErrInvalidRate, tracerr.Unwrap(err))
}

func TestInitialState(t *testing.T) {
	f := newFixture(t, 3, 4)
	assert.False(t, f.conv.IsPaused())
	assert.Equal(t, ownerAddr, f.conv.Owner())
	assert.Equal(t, "3/4", f.conv.ConversionRate().String())
	assert.Equal(t, big.NewInt(0), f.conv.BalanceTokenA())
	assert.Equal(t, big.NewInt(0), f.conv.BalanceTokenB())
}

func TestUpdateConversionRate(t *testing.T) {
	f := newFixture(t, 3, 4)

	// round-trip: values read back exactly as set
	require.NoError(t, f.conv.UpdateConversionRate(ownerAddr, big.NewInt(7500), big.NewInt(10000)))
	assert.Equal(t, "7500/10000", f.conv.ConversionRate().String())

	err := f.conv.UpdateConversionRate(ownerAddr, big.NewInt(1), big.NewInt(0))
	assert.Equal(t, common.ErrInvalidRate, tracerr.Unwrap(err))
	// rejected before any state change
	assert.Equal(t, "7500/10000", f.conv.ConversionRate().String())

	err = f.conv.UpdateConversionRate(userAddr, big.NewInt(1), big.NewInt(2))
	assert.True(t, errors.Is(tracerr.Unwrap(err), common.ErrUnauthorized))
	assert.Equal(t, "7500/10000", f.conv.ConversionRate().String())
}

func TestDepositTokenB(t *testing.T) {
	f := newFixture(t, 3, 4)
	f.ledgerB.Mint(userAddr, big.NewInt(500))
	f.ledgerB.Approve(userAddr, converterAddr, big.NewInt(300))

	err := f.conv.DepositTokenB(userAddr, big.NewInt(0))
	assert.Equal(t, common.ErrInvalidAmount, tracerr.Unwrap(err))

	err = f.conv.DepositTokenB(userAddr, big.NewInt(400))
	assert.Equal(t, common.ErrInsufficientAllowance, tracerr.Unwrap(err))
	assert.Equal(t, big.NewInt(0), f.conv.BalanceTokenB())

	require.NoError(t, f.conv.DepositTokenB(userAddr, big.NewInt(300)))
	assert.Equal(t, big.NewInt(300), f.conv.BalanceTokenB())
	assert.Equal(t, big.NewInt(200), f.ledgerB.BalanceOf(userAddr))
	assert.Equal(t, big.NewInt(300), f.ledgerB.BalanceOf(converterAddr))
}

func TestWithdrawTokenB(t *testing.T) {
	f := newFixture(t, 3, 4)
	f.fund(t, big.NewInt(1000), big.NewInt(0))

	err := f.conv.WithdrawTokenB(userAddr, big.NewInt(10))
	assert.True(t, errors.Is(tracerr.Unwrap(err), common.ErrUnauthorized))

	err = f.conv.WithdrawTokenB(ownerAddr, big.NewInt(0))
	assert.Equal(t, common.ErrInvalidAmount, tracerr.Unwrap(err))

	err = f.conv.WithdrawTokenB(ownerAddr, big.NewInt(1001))
	assert.Equal(t, common.ErrInsufficientBalance, tracerr.Unwrap(err))
	assert.Equal(t, big.NewInt(1000), f.conv.BalanceTokenB())

	require.NoError(t, f.conv.WithdrawTokenB(ownerAddr, big.NewInt(400)))
	assert.Equal(t, big.NewInt(600), f.conv.BalanceTokenB())
	assert.Equal(t, big.NewInt(400), f.ledgerB.BalanceOf(ownerAddr))
}

func TestConvertTokensConservation(t *testing.T) {
	f := newFixture(t, 3, 4)
	f.fund(t, big.NewInt(1000), big.NewInt(100))

	amountB, err := f.conv.ConvertTokens(userAddr, big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(75), amountB)

	// conservation law on both ledgers and both internal balances
	assert.Equal(t, big.NewInt(0), f.ledgerA.BalanceOf(userAddr))
	assert.Equal(t, big.NewInt(100), f.ledgerA.BalanceOf(converterAddr))
	assert.Equal(t, big.NewInt(75), f.ledgerB.BalanceOf(userAddr))
	assert.Equal(t, big.NewInt(925), f.ledgerB.BalanceOf(converterAddr))
	assert.Equal(t, big.NewInt(100), f.conv.BalanceTokenA())
	assert.Equal(t, big.NewInt(925), f.conv.BalanceTokenB())
}

func TestConvertTokensZeroAmount(t *testing.T) {
	f := newFixture(t, 3, 4)
	f.fund(t, big.NewInt(1000), big.NewInt(100))

	_, err := f.conv.ConvertTokens(userAddr, big.NewInt(0))
	assert.Equal(t, common.ErrInvalidAmount, tracerr.Unwrap(err))

	// InvalidAmount regardless of pause state
	require.NoError(t, f.conv.Pause(ownerAddr))
	_, err = f.conv.ConvertTokens(userAddr, big.NewInt(0))
	assert.Equal(t, common.ErrInvalidAmount, tracerr.Unwrap(err))
}

func TestConvertTokensInsufficientBalance(t *testing.T) {
	f := newFixture(t, 2, 1)
	f.fund(t, big.NewInt(100), big.NewInt(100))

	// 60 * 2 = 120 > 100 deposited
	_, err := f.conv.ConvertTokens(userAddr, big.NewInt(60))
	assert.Equal(t, common.ErrInsufficientBalance, tracerr.Unwrap(err))
	assert.EqualError(t, tracerr.Unwrap(err), "Insufficient Token B in contract")

	// state unchanged afterward
	assert.Equal(t, big.NewInt(100), f.ledgerA.BalanceOf(userAddr))
	assert.Equal(t, big.NewInt(100), f.conv.BalanceTokenB())
	assert.Equal(t, big.NewInt(0), f.conv.BalanceTokenA())
}

func TestConvertTokensLedgerFailures(t *testing.T) {
	f := newFixture(t, 1, 2)
	f.ledgerB.Mint(ownerAddr, big.NewInt(1000))
	f.ledgerB.Approve(ownerAddr, converterAddr, big.NewInt(1000))
	require.NoError(t, f.conv.DepositTokenB(ownerAddr, big.NewInt(1000)))

	// no allowance at all
	f.ledgerA.Mint(userAddr, big.NewInt(100))
	_, err := f.conv.ConvertTokens(userAddr, big.NewInt(100))
	assert.Equal(t, common.ErrInsufficientAllowance, tracerr.Unwrap(err))

	// allowance fine, funds short
	f.ledgerA.Approve(userAddr, converterAddr, big.NewInt(1000))
	_, err = f.conv.ConvertTokens(userAddr, big.NewInt(500))
	assert.Equal(t, common.ErrInsufficientFunds, tracerr.Unwrap(err))

	// no partial state committed
	assert.Equal(t, big.NewInt(100), f.ledgerA.BalanceOf(userAddr))
	assert.Equal(t, big.NewInt(1000), f.conv.BalanceTokenB())
}

func TestPauseGatesConvertOnly(t *testing.T) {
	f := newFixture(t, 3, 4)
	f.fund(t, big.NewInt(1000), big.NewInt(200))

	err := f.conv.Pause(userAddr)
	assert.True(t, errors.Is(tracerr.Unwrap(err), common.ErrUnauthorized))

	require.NoError(t, f.conv.Pause(ownerAddr))
	assert.True(t, f.conv.IsPaused())

	_, err = f.conv.ConvertTokens(userAddr, big.NewInt(100))
	assert.Equal(t, common.ErrPaused, tracerr.Unwrap(err))
	assert.Equal(t, big.NewInt(200), f.ledgerA.BalanceOf(userAddr))

	// deposit and withdraw succeed identically while paused
	f.ledgerB.Mint(userAddr, big.NewInt(50))
	f.ledgerB.Approve(userAddr, converterAddr, big.NewInt(50))
	require.NoError(t, f.conv.DepositTokenB(userAddr, big.NewInt(50)))
	require.NoError(t, f.conv.WithdrawTokenB(ownerAddr, big.NewInt(50)))

	err = f.conv.Unpause(userAddr)
	assert.True(t, errors.Is(tracerr.Unwrap(err), common.ErrUnauthorized))

	// unpause restores normal operation
	require.NoError(t, f.conv.Unpause(ownerAddr))
	_, err = f.conv.ConvertTokens(userAddr, big.NewInt(100))
	require.NoError(t, err)
}

func TestPauseIdempotent(t *testing.T) {
	f := newFixture(t, 3, 4)
	require.NoError(t, f.conv.Pause(ownerAddr))
	require.NoError(t, f.conv.Pause(ownerAddr))
	assert.True(t, f.conv.IsPaused())
	require.NoError(t, f.conv.Unpause(ownerAddr))
	require.NoError(t, f.conv.Unpause(ownerAddr))
	assert.False(t, f.conv.IsPaused())
}

func TestPauseEventsCarryIdentity(t *testing.T) {
	f := newFixture(t, 3, 4)
	require.NoError(t, f.conv.Pause(ownerAddr))
	require.NoError(t, f.conv.Unpause(ownerAddr))
	require.Len(t, f.events, 2)
	assert.Equal(t, converter.EventPaused{By: ownerAddr}, f.events[0])
	assert.Equal(t, converter.EventUnpaused{By: ownerAddr}, f.events[1])
}

func TestTransferOwnership(t *testing.T) {
	f := newFixture(t, 3, 4)

	err := f.conv.TransferOwnership(userAddr, otherAddr)
	assert.True(t, errors.Is(tracerr.Unwrap(err), common.ErrUnauthorized))

	err = f.conv.TransferOwnership(ownerAddr, ethCommon.Address{})
	assert.Equal(t, common.ErrInvalidAddress, tracerr.Unwrap(err))

	require.NoError(t, f.conv.TransferOwnership(ownerAddr, otherAddr))
	assert.Equal(t, otherAddr, f.conv.Owner())

	// previous owner lost the role
	err = f.conv.Pause(ownerAddr)
	assert.True(t, errors.Is(tracerr.Unwrap(err), common.ErrUnauthorized))
	require.NoError(t, f.conv.Pause(otherAddr))
}

// TestScenarioDecimalRate exercises the 0.75 rate between a token with 18
// decimals and a token with 9: 7500/10000 reduces to 3/4, scaled to
// 3e9/4e18, and 1000 token A converts to exactly 750 token B.
func TestScenarioDecimalRate(t *testing.T) {
	base := func(n int64, decimals uint64) *big.Int {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
		return new(big.Int).Mul(big.NewInt(n), scale)
	}

	quoted, err := common.NewConversionRate(big.NewInt(7500), big.NewInt(10000))
	require.NoError(t, err)
	rate := common.RateFromDecimals(quoted.Reduce(), 18, 9)

	ledgerA := test.NewTokenLedger(common.ERC20Consts{Name: "Token A", Symbol: "TKA", Decimals: 18})
	ledgerB := test.NewTokenLedger(common.ERC20Consts{Name: "Token B", Symbol: "TKB", Decimals: 9})
	consts := common.ConverterConstants{
		TokenA: tokenAAddr, TokenB: tokenBAddr,
		TokenADecimals: 18, TokenBDecimals: 9,
	}
	conv, err := converter.New(converterAddr, consts, ownerAddr,
		rate.Num, rate.Denom, ledgerA, ledgerB, nil)
	require.NoError(t, err)

	ledgerB.Mint(ownerAddr, base(10000, 9))
	ledgerB.Approve(ownerAddr, converterAddr, base(10000, 9))
	require.NoError(t, conv.DepositTokenB(ownerAddr, base(10000, 9)))
	ledgerA.Mint(userAddr, base(2000, 18))
	ledgerA.Approve(userAddr, converterAddr, maxApproval)

	amountB, err := conv.ConvertTokens(userAddr, base(1000, 18))
	require.NoError(t, err)
	assert.Equal(t, base(750, 9), amountB)

	// update rate to 2 and convert the same amount again; cumulative
	// token B received is 1000*(0.75+2) = 2750
	rate2 := common.RateFromDecimals(common.ConversionRate{Num: big.NewInt(2), Denom: big.NewInt(1)}, 18, 9)
	require.NoError(t, conv.UpdateConversionRate(ownerAddr, rate2.Num, rate2.Denom))
	amountB2, err := conv.ConvertTokens(userAddr, base(1000, 18))
	require.NoError(t, err)
	assert.Equal(t, base(2000, 9), amountB2)
	assert.Equal(t, base(2750, 9), ledgerB.BalanceOf(userAddr))
}

// TestScenarioDrainThenConvert withdraws the whole token B balance and then
// attempts a conversion with plenty of token A available.
func TestScenarioDrainThenConvert(t *testing.T) {
	f := newFixture(t, 3, 4)
	f.fund(t, big.NewInt(1000), big.NewInt(1000))

	require.NoError(t, f.conv.WithdrawTokenB(ownerAddr, f.conv.BalanceTokenB()))
	assert.Equal(t, big.NewInt(0), f.conv.BalanceTokenB())

	_, err := f.conv.ConvertTokens(userAddr, big.NewInt(4))
	assert.Equal(t, common.ErrInsufficientBalance, tracerr.Unwrap(err))
	assert.EqualError(t, tracerr.Unwrap(err), "Insufficient Token B in contract")
}
