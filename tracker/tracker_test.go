package tracker

import (
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/converternetwork/converter-node/common"
	dbUtils "github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/test"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyDB *historydb.HistoryDB

var (
	userAddr  = ethCommon.HexToAddress("0x84d8B79E84fe87B14ad61A554e740f6736bF4c20")
	otherAddr = ethCommon.HexToAddress("0x5CB7979cBdbf65719BEE92e4D15b7b7Ed3D79114")
)

type timer struct {
	time int64
}

func (t *timer) Time() int64 {
	currentTime := t.time
	t.time++
	return currentTime
}

// In order to run the test you need to run a Posgres DB with
// a database named "converter" that is accessible by
// user: "converter"
// pass: set it using the env var POSTGRES_PASS
// This can be achieved by running: POSTGRES_PASS=your_strong_pass && sudo docker run --rm --name converter-db-test -p 5432:5432 -e POSTGRES_DB=converter -e POSTGRES_USER=converter -e POSTGRES_PASSWORD=$POSTGRES_PASS -d postgres
// After running the test you can stop the container by running: sudo docker kill converter-db-test

func TestMain(m *testing.M) {
	pass := os.Getenv("POSTGRES_PASS")
	db, err := dbUtils.InitSQLDB(5432, "localhost", "converter", pass, "converter")
	if err != nil {
		panic(err)
	}
	apiConnCon := dbUtils.NewAPIConnectionController(1, time.Second)
	historyDB = historydb.NewHistoryDB(db, apiConnCon)
	result := m.Run()
	if err := db.Close(); err != nil {
		log.Error("Error closing the history DB:", err)
	}
	os.Exit(result)
}

func newTestTracker(t *testing.T) (*Tracker, *test.Client, *test.ClientSetup) {
	test.WipeDB(historyDB.DB())
	var timer timer
	clientSetup := test.NewClientSetupExample()
	client := test.NewClient(true, &timer, &clientSetup.ConverterVariables.Owner,
		clientSetup)
	tracker, err := NewTracker(client, historyDB, Config{StartBlockNum: 1})
	require.NoError(t, err)
	return tracker, client, clientSetup
}

// syncBlock advances the tracker one block, requiring that a block was
// synchronized without reorg
func syncBlock(t *testing.T, tracker *Tracker) *common.BlockData {
	blockData, discarded, err := tracker.Sync(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, discarded)
	require.NotNil(t, blockData)
	return blockData
}

func TestTrackerInit(t *testing.T) {
	tracker, _, clientSetup := newTestTracker(t)

	assert.Equal(t, clientSetup.ConverterConstants, tracker.ConverterConstants())

	// The contract variables are bootstrapped into the database
	vars, err := historyDB.GetConverterVars()
	require.NoError(t, err)
	assert.Equal(t, int64(0), vars.EthBlockNum)
	assert.Equal(t, "3/4", vars.Rate.String())
	assert.Equal(t, clientSetup.ConverterVariables.Owner, vars.Owner)
	assert.Equal(t, false, vars.Paused)
	assert.Equal(t, "3/4", tracker.ConverterVariables().Rate.String())

	// Both tokens are registered
	tokens, err := historyDB.GetTokens()
	require.NoError(t, err)
	require.Equal(t, 2, len(tokens))
	assert.Equal(t, clientSetup.ConverterConstants.TokenA, tokens[0].EthAddr)
	assert.Equal(t, clientSetup.ConverterConstants.TokenB, tokens[1].EthAddr)

	// Creating a second tracker against the same DB must not duplicate
	// the bootstrap
	_, err = NewTracker(tracker.ethClient, historyDB, Config{StartBlockNum: 1})
	require.NoError(t, err)
	tokens, err = historyDB.GetTokens()
	require.NoError(t, err)
	assert.Equal(t, 2, len(tokens))
}

func TestTrackerSync(t *testing.T) {
	tracker, client, clientSetup := newTestTracker(t)
	ownerAddr := clientSetup.ConverterVariables.Owner
	tokenA := clientSetup.ConverterConstants.TokenA
	tokenB := clientSetup.ConverterConstants.TokenB
	converterAddr := clientSetup.ConverterAddr
	ctx := context.Background()

	// Block 1 is premined and holds no contract events
	blockData := syncBlock(t, tracker)
	assert.Equal(t, int64(1), blockData.Block.EthBlockNum)
	assert.Equal(t, 0, len(blockData.Converter.Deposits))
	assert.Nil(t, blockData.Converter.Vars)

	// Fully synced
	blockData, discarded, err := tracker.Sync(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, blockData)
	assert.Nil(t, discarded)
	stats := tracker.Stats()
	assert.True(t, stats.Synced())
	assert.Equal(t, int64(1), stats.Sync.LastBlock.EthBlockNum)

	// Block 2: the owner deposits liquidity and halves the rate
	client.CtlMintToken(tokenB, ownerAddr, big.NewInt(1000))
	_, err = client.TokenApprove(tokenB, converterAddr, big.NewInt(1000))
	require.NoError(t, err)
	_, err = client.ConverterDepositTokenB(big.NewInt(1000))
	require.NoError(t, err)
	_, err = client.ConverterUpdateConversionRate(big.NewInt(1), big.NewInt(2))
	require.NoError(t, err)
	client.CtlMineBlock()

	blockData = syncBlock(t, tracker)
	assert.Equal(t, int64(2), blockData.Block.EthBlockNum)
	require.Equal(t, 1, len(blockData.Converter.Deposits))
	assert.Equal(t, ownerAddr, blockData.Converter.Deposits[0].FromAddr)
	assert.Equal(t, big.NewInt(1000), blockData.Converter.Deposits[0].Amount)
	require.Equal(t, 1, len(blockData.Converter.RateUpdates))
	require.NotNil(t, blockData.Converter.Vars)
	assert.Equal(t, "1/2", blockData.Converter.Vars.Rate.String())
	assert.Equal(t, "1/2", tracker.ConverterVariables().Rate.String())

	vars, err := historyDB.GetConverterVars()
	require.NoError(t, err)
	assert.Equal(t, int64(2), vars.EthBlockNum)
	assert.Equal(t, "1/2", vars.Rate.String())

	// Block 3: a user converts and then the owner pauses
	client.CtlSetAddr(userAddr)
	client.CtlMintToken(tokenA, userAddr, big.NewInt(100))
	_, err = client.TokenApprove(tokenA, converterAddr, big.NewInt(100))
	require.NoError(t, err)
	_, err = client.ConverterConvertTokens(big.NewInt(100))
	require.NoError(t, err)
	client.CtlSetAddr(ownerAddr)
	_, err = client.ConverterPause()
	require.NoError(t, err)
	client.CtlMineBlock()

	blockData = syncBlock(t, tracker)
	require.Equal(t, 1, len(blockData.Converter.Conversions))
	assert.Equal(t, userAddr, blockData.Converter.Conversions[0].FromAddr)
	assert.Equal(t, big.NewInt(100), blockData.Converter.Conversions[0].AmountA)
	assert.Equal(t, big.NewInt(50), blockData.Converter.Conversions[0].AmountB)
	require.Equal(t, 1, len(blockData.Converter.PauseEvents))
	assert.True(t, blockData.Converter.PauseEvents[0].Paused)
	assert.True(t, tracker.ConverterVariables().Paused)

	// Block 4: unpause and withdraw part of the liquidity
	_, err = client.ConverterUnpause()
	require.NoError(t, err)
	_, err = client.ConverterWithdrawTokenB(big.NewInt(100))
	require.NoError(t, err)
	client.CtlMineBlock()

	blockData = syncBlock(t, tracker)
	require.Equal(t, 1, len(blockData.Converter.Withdrawals))
	assert.Equal(t, ownerAddr, blockData.Converter.Withdrawals[0].ToAddr)
	assert.Equal(t, big.NewInt(100), blockData.Converter.Withdrawals[0].Amount)
	assert.False(t, tracker.ConverterVariables().Paused)

	// Block 5: ownership is transferred
	_, err = client.ConverterTransferOwnership(otherAddr)
	require.NoError(t, err)
	client.CtlMineBlock()

	blockData = syncBlock(t, tracker)
	require.Equal(t, 1, len(blockData.Converter.OwnerUpdates))
	assert.Equal(t, ownerAddr, blockData.Converter.OwnerUpdates[0].PreviousOwner)
	assert.Equal(t, otherAddr, blockData.Converter.OwnerUpdates[0].NewOwner)
	assert.Equal(t, otherAddr, tracker.ConverterVariables().Owner)

	vars, err = historyDB.GetConverterVars()
	require.NoError(t, err)
	assert.Equal(t, int64(5), vars.EthBlockNum)
	assert.Equal(t, otherAddr, vars.Owner)

	// Everything ended up in the DB
	deposits, err := historyDB.GetAllDeposits()
	require.NoError(t, err)
	assert.Equal(t, 1, len(deposits))
	conversions, err := historyDB.GetAllConversions()
	require.NoError(t, err)
	assert.Equal(t, 1, len(conversions))
	withdrawals, err := historyDB.GetAllWithdrawals()
	require.NoError(t, err)
	assert.Equal(t, 1, len(withdrawals))
	pauseEvents, err := historyDB.GetAllPauseEvents()
	require.NoError(t, err)
	assert.Equal(t, 2, len(pauseEvents))
}

func TestTrackerReorg(t *testing.T) {
	tracker, client, _ := newTestTracker(t)
	ctx := context.Background()

	// Sync the premined block and a rate update on block 2
	syncBlock(t, tracker)
	_, err := client.ConverterUpdateConversionRate(big.NewInt(9), big.NewInt(10))
	require.NoError(t, err)
	client.CtlMineBlock()
	syncBlock(t, tracker)
	assert.Equal(t, "9/10", tracker.ConverterVariables().Rate.String())

	// Discard block 2 and mine an alternative chain that is one block
	// longer and doesn't contain the rate update
	client.CtlRollback()
	client.CtlMineBlock()
	client.CtlMineBlock()

	blockData, discarded, err := tracker.Sync(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, blockData)
	require.NotNil(t, discarded)
	assert.Equal(t, int64(1), *discarded)

	// The in-memory variables went back to the bootstrapped state
	assert.Equal(t, "3/4", tracker.ConverterVariables().Rate.String())

	// Resync the new chain
	blockData = syncBlock(t, tracker)
	assert.Equal(t, int64(2), blockData.Block.EthBlockNum)
	blockData = syncBlock(t, tracker)
	assert.Equal(t, int64(3), blockData.Block.EthBlockNum)

	lastBlock, err := historyDB.GetLastBlock()
	require.NoError(t, err)
	assert.Equal(t, int64(3), lastBlock.EthBlockNum)

	rateUpdates, err := historyDB.GetAllRateUpdates()
	require.NoError(t, err)
	assert.Equal(t, 0, len(rateUpdates))

	vars, err := historyDB.GetConverterVars()
	require.NoError(t, err)
	assert.Equal(t, "3/4", vars.Rate.String())
}
