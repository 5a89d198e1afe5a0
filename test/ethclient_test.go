package test

import (
	"context"
	"math/big"
	"testing"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/eth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timer struct {
	time int64
}

func (t *timer) Time() int64 {
	currentTime := t.time
	t.time++
	return currentTime
}

var (
	userAddr  = ethCommon.HexToAddress("0x84d8B79E84fe87B14ad61A554e740f6736bF4c20")
	otherAddr = ethCommon.HexToAddress("0x5CB7979cBdbf65719BEE92e4D15b7b7Ed3D79114")
)

func TestClientInterface(t *testing.T) {
	var c eth.ClientInterface
	var timer timer
	clientSetup := NewClientSetupExample()
	client := NewClient(true, &timer, &userAddr, clientSetup)
	c = client
	require.NotNil(t, c)
}

func TestClientEth(t *testing.T) {
	var timer timer
	clientSetup := NewClientSetupExample()
	c := NewClient(true, &timer, &userAddr, clientSetup)
	blockNum, err := c.EthCurrentBlock()
	require.Nil(t, err)
	assert.Equal(t, int64(1), blockNum)

	block, err := c.EthBlockByNumber(context.TODO(), 0)
	require.Nil(t, err)
	assert.Equal(t, int64(0), block.EthBlockNum)
	assert.Equal(t, time.Unix(0, 0), block.Timestamp)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000000",
		block.Hash.Hex())

	// Mine some empty blocks
	assert.Equal(t, int64(1), c.blockNum)
	c.CtlMineBlock()
	assert.Equal(t, int64(2), c.blockNum)
	c.CtlMineBlock()
	assert.Equal(t, int64(3), c.blockNum)

	block, err = c.EthBlockByNumber(context.TODO(), 2)
	require.Nil(t, err)
	assert.Equal(t, int64(2), block.EthBlockNum)
	assert.Equal(t, time.Unix(2, 0), block.Timestamp)

	// Add a token
	tokenAddr := ethCommon.HexToAddress("0x44021007485550008e0f9f1f7b506c7d970ad8ce")
	constants := common.ERC20Consts{
		Name:     "FooBar",
		Symbol:   "FOO",
		Decimals: 4,
	}
	c.CtlAddERC20(tokenAddr, constants)
	c.CtlMineBlock()
	tokenConstants, err := c.EthERC20Consts(tokenAddr)
	require.Nil(t, err)
	assert.Equal(t, constants, *tokenConstants)
}

func TestClientConverterConstants(t *testing.T) {
	var timer timer
	clientSetup := NewClientSetupExample()
	c := NewClient(true, &timer, &userAddr, clientSetup)

	constants, err := c.ConverterConstants()
	require.Nil(t, err)
	assert.Equal(t, clientSetup.ConverterConstants, constants)

	vars, err := c.ConverterVariables()
	require.Nil(t, err)
	assert.Equal(t, clientSetup.ConverterVariables.Owner, vars.Owner)
	assert.Equal(t, false, vars.Paused)
	assert.Equal(t, "3/4", vars.Rate.String())
}

func TestClientConverterFlow(t *testing.T) {
	var timer timer
	clientSetup := NewClientSetupExample()
	ownerAddr := clientSetup.ConverterVariables.Owner
	tokenA := clientSetup.ConverterConstants.TokenA
	tokenB := clientSetup.ConverterConstants.TokenB
	converterAddr := clientSetup.ConverterAddr
	c := NewClient(true, &timer, &ownerAddr, clientSetup)

	// Fund the owner with token B liquidity and deposit it
	c.CtlMintToken(tokenB, ownerAddr, big.NewInt(1000))
	_, err := c.TokenApprove(tokenB, converterAddr, big.NewInt(1000))
	require.Nil(t, err)
	_, err = c.ConverterDepositTokenB(big.NewInt(1000))
	require.Nil(t, err)
	c.CtlMineBlock()

	blockNum, err := c.EthCurrentBlock()
	require.Nil(t, err)
	events, blockHash, err := c.ConverterEventsByBlock(blockNum)
	require.Nil(t, err)
	assert.NotNil(t, blockHash)
	require.Equal(t, 1, len(events.DepositTokenB))
	assert.Equal(t, ownerAddr, events.DepositTokenB[0].From)
	assert.Equal(t, big.NewInt(1000), events.DepositTokenB[0].Amount)

	// A user converts 100 A at rate 3/4 and receives 75 B
	c.CtlSetAddr(userAddr)
	c.CtlMintToken(tokenA, userAddr, big.NewInt(100))
	_, err = c.TokenApprove(tokenA, converterAddr, big.NewInt(100))
	require.Nil(t, err)
	tx, err := c.ConverterConvertTokens(big.NewInt(100))
	require.Nil(t, err)
	c.CtlMineBlock()

	blockNum, err = c.EthCurrentBlock()
	require.Nil(t, err)
	events, _, err = c.ConverterEventsByBlock(blockNum)
	require.Nil(t, err)
	require.Equal(t, 1, len(events.TokensConverted))
	assert.Equal(t, userAddr, events.TokensConverted[0].From)
	assert.Equal(t, big.NewInt(100), events.TokensConverted[0].AmountA)
	assert.Equal(t, big.NewInt(75), events.TokensConverted[0].AmountB)
	assert.Equal(t, tx.Hash(), events.TokensConverted[0].TxHash)

	assert.Equal(t, big.NewInt(0), c.CtlTokenBalance(tokenA, userAddr))
	assert.Equal(t, big.NewInt(75), c.CtlTokenBalance(tokenB, userAddr))
	assert.Equal(t, big.NewInt(100), c.CtlTokenBalance(tokenA, converterAddr))
	assert.Equal(t, big.NewInt(925), c.CtlTokenBalance(tokenB, converterAddr))

	receipt, err := c.EthTransactionReceipt(context.TODO(), tx.Hash())
	require.Nil(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, tx.Hash(), receipt.TxHash)

	// The owner pauses the converter and conversions stop
	c.CtlSetAddr(ownerAddr)
	_, err = c.ConverterPause()
	require.Nil(t, err)
	c.CtlMineBlock()

	blockNum, err = c.EthCurrentBlock()
	require.Nil(t, err)
	events, _, err = c.ConverterEventsByBlock(blockNum)
	require.Nil(t, err)
	require.Equal(t, 1, len(events.Paused))
	assert.Equal(t, ownerAddr, events.Paused[0].Account)

	c.CtlSetAddr(userAddr)
	c.CtlMintToken(tokenA, userAddr, big.NewInt(100))
	_, err = c.TokenApprove(tokenA, converterAddr, big.NewInt(100))
	require.Nil(t, err)
	_, err = c.ConverterConvertTokens(big.NewInt(100))
	assert.Error(t, err)
	c.CtlMineBlock()

	// Deposits still work while paused
	c.CtlSetAddr(ownerAddr)
	c.CtlMintToken(tokenB, ownerAddr, big.NewInt(10))
	_, err = c.TokenApprove(tokenB, converterAddr, big.NewInt(10))
	require.Nil(t, err)
	_, err = c.ConverterDepositTokenB(big.NewInt(10))
	require.Nil(t, err)
	c.CtlMineBlock()

	// Unpause and the user can convert again
	_, err = c.ConverterUnpause()
	require.Nil(t, err)
	c.CtlMineBlock()

	c.CtlSetAddr(userAddr)
	_, err = c.ConverterConvertTokens(big.NewInt(100))
	require.Nil(t, err)
	c.CtlMineBlock()
	assert.Equal(t, big.NewInt(150), c.CtlTokenBalance(tokenB, userAddr))
}

func TestClientConverterUpdateRate(t *testing.T) {
	var timer timer
	clientSetup := NewClientSetupExample()
	ownerAddr := clientSetup.ConverterVariables.Owner
	c := NewClient(true, &timer, &ownerAddr, clientSetup)

	_, err := c.ConverterUpdateConversionRate(big.NewInt(1), big.NewInt(2))
	require.Nil(t, err)
	c.CtlMineBlock()

	rate, err := c.ConverterConversionRate()
	require.Nil(t, err)
	assert.Equal(t, "1/2", rate.String())

	blockNum, err := c.EthCurrentBlock()
	require.Nil(t, err)
	events, _, err := c.ConverterEventsByBlock(blockNum)
	require.Nil(t, err)
	require.Equal(t, 1, len(events.RateUpdated))
	assert.Equal(t, big.NewInt(1), events.RateUpdated[0].Numerator)
	assert.Equal(t, big.NewInt(2), events.RateUpdated[0].Denominator)

	// A zero denominator reverts and leaves the rate untouched
	_, err = c.ConverterUpdateConversionRate(big.NewInt(1), big.NewInt(0))
	assert.Error(t, err)
	c.CtlMineBlock()
	rate, err = c.ConverterConversionRate()
	require.Nil(t, err)
	assert.Equal(t, "1/2", rate.String())

	// Non-owner calls revert
	c.CtlSetAddr(userAddr)
	_, err = c.ConverterUpdateConversionRate(big.NewInt(2), big.NewInt(1))
	assert.Error(t, err)
	c.CtlMineBlock()
	rate, err = c.ConverterConversionRate()
	require.Nil(t, err)
	assert.Equal(t, "1/2", rate.String())
}

func TestClientConverterTransferOwnership(t *testing.T) {
	var timer timer
	clientSetup := NewClientSetupExample()
	ownerAddr := clientSetup.ConverterVariables.Owner
	c := NewClient(true, &timer, &ownerAddr, clientSetup)

	_, err := c.ConverterTransferOwnership(otherAddr)
	require.Nil(t, err)
	c.CtlMineBlock()

	owner, err := c.ConverterOwner()
	require.Nil(t, err)
	assert.Equal(t, otherAddr, *owner)

	blockNum, err := c.EthCurrentBlock()
	require.Nil(t, err)
	events, _, err := c.ConverterEventsByBlock(blockNum)
	require.Nil(t, err)
	require.Equal(t, 1, len(events.OwnershipTransferred))
	assert.Equal(t, ownerAddr, events.OwnershipTransferred[0].PreviousOwner)
	assert.Equal(t, otherAddr, events.OwnershipTransferred[0].NewOwner)

	// The previous owner has lost control
	_, err = c.ConverterPause()
	assert.Error(t, err)
}

func TestClientRollback(t *testing.T) {
	var timer timer
	clientSetup := NewClientSetupExample()
	ownerAddr := clientSetup.ConverterVariables.Owner
	c := NewClient(true, &timer, &ownerAddr, clientSetup)

	_, err := c.ConverterUpdateConversionRate(big.NewInt(9), big.NewInt(10))
	require.Nil(t, err)
	c.CtlMineBlock()
	blockNum, err := c.EthCurrentBlock()
	require.Nil(t, err)

	rate, err := c.ConverterConversionRate()
	require.Nil(t, err)
	assert.Equal(t, "9/10", rate.String())

	// Simulate a reorg that drops the rate update
	c.CtlRollback()
	c.CtlMineBlock()
	newBlockNum, err := c.EthCurrentBlock()
	require.Nil(t, err)
	assert.Equal(t, blockNum, newBlockNum)

	rate, err = c.ConverterConversionRate()
	require.Nil(t, err)
	assert.Equal(t, "3/4", rate.String())

	events, _, err := c.ConverterEventsByBlock(newBlockNum)
	require.Nil(t, err)
	assert.Equal(t, 0, len(events.RateUpdated))
}
