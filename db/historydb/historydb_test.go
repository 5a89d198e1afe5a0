package historydb

import (
	"database/sql"
	"math/big"
	"os"
	"testing"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/common"
	dbUtils "github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/test"
	"github.com/hermeznetwork/tracerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyDB *HistoryDB

var (
	ownerAddr = ethCommon.HexToAddress("0x688EfD95BA4391f93717CF02A9aED9DBD2855cDd")
	userAddr  = ethCommon.HexToAddress("0x84d8B79E84fe87B14ad61A554e740f6736bF4c20")
)

// In order to run the test you need to run a Posgres DB with
// a database named "converter" that is accessible by
// user: "converter"
// pass: set it using the env var POSTGRES_PASS
// This can be achieved by running: POSTGRES_PASS=your_strong_pass && sudo docker run --rm --name converter-db-test -p 5432:5432 -e POSTGRES_DB=converter -e POSTGRES_USER=converter -e POSTGRES_PASSWORD=$POSTGRES_PASS -d postgres
// After running the test you can stop the container by running: sudo docker kill converter-db-test

func TestMain(m *testing.M) {
	// init DB
	pass := os.Getenv("POSTGRES_PASS")
	db, err := dbUtils.InitSQLDB(5432, "localhost", "converter", pass, "converter")
	if err != nil {
		panic(err)
	}
	apiConnCon := dbUtils.NewAPIConnectionController(1, time.Second)
	historyDB = NewHistoryDB(db, apiConnCon)
	// Run tests
	result := m.Run()
	// Close DB
	if err := db.Close(); err != nil {
		log.Error("Error closing the history DB:", err)
	}
	os.Exit(result)
}

func assertEqualBlock(t *testing.T, expected *common.Block, actual *common.Block) {
	assert.Equal(t, expected.EthBlockNum, actual.EthBlockNum)
	assert.Equal(t, expected.Hash, actual.Hash)
	assert.Equal(t, expected.Timestamp.Unix(), actual.Timestamp.Unix())
}

func TestBlocks(t *testing.T) {
	var fromBlock, toBlock int64
	fromBlock = 0
	toBlock = 7
	// Reset DB
	test.WipeDB(historyDB.DB())
	// Generate blocks
	blocks := test.GenBlocks(1, toBlock)
	// Save timestamp of a block with UTC and change it without UTC
	timestamp := time.Now().Add(time.Second * 13)
	blocks[0].Timestamp = timestamp
	// Insert blocks into DB
	for i := 0; i < len(blocks); i++ {
		err := historyDB.AddBlock(&blocks[i])
		assert.NoError(t, err)
	}
	// Add block 0 to the generated blocks
	blocks = append([]common.Block{test.Block0}, blocks...)
	// Get all blocks from DB
	fetchedBlocks, err := historyDB.GetBlocks(fromBlock, toBlock)
	assert.NoError(t, err)
	assert.Equal(t, len(blocks), len(fetchedBlocks))
	// Compare generated vs getted blocks
	for i := range fetchedBlocks {
		assertEqualBlock(t, &blocks[i], &fetchedBlocks[i])
	}
	// Compare saved timestamp vs getted
	nameZoneUTC, offsetUTC := timestamp.UTC().Zone()
	zoneFetchedBlock, offsetFetchedBlock := fetchedBlocks[1].Timestamp.Zone()
	assert.Equal(t, nameZoneUTC, zoneFetchedBlock)
	assert.Equal(t, offsetUTC, offsetFetchedBlock)
	// Get blocks from the DB one by one
	for i := int64(1); i < toBlock; i++ {
		fetchedBlock, err := historyDB.GetBlock(i)
		assert.NoError(t, err)
		assertEqualBlock(t, &blocks[i], fetchedBlock)
	}
	// Get last block
	lastBlock, err := historyDB.GetLastBlock()
	assert.NoError(t, err)
	assert.Equal(t, toBlock-1, lastBlock.EthBlockNum)
}

func TestConverterEvents(t *testing.T) {
	test.WipeDB(historyDB.DB())
	blocks := test.GenBlocks(1, 6)
	require.NoError(t, historyDB.AddBlocks(blocks))

	rateUpdates := test.GenRateUpdates(5, blocks)
	require.NoError(t, historyDB.AddRateUpdates(rateUpdates))
	fetchedRateUpdates, err := historyDB.GetAllRateUpdates()
	require.NoError(t, err)
	assert.Equal(t, rateUpdates, fetchedRateUpdates)

	deposits := test.GenDeposits(6, 2, userAddr, blocks)
	require.NoError(t, historyDB.AddDeposits(deposits))
	fetchedDeposits, err := historyDB.GetAllDeposits()
	require.NoError(t, err)
	assert.Equal(t, deposits, fetchedDeposits)

	withdrawals := test.GenWithdrawals(3, ownerAddr, blocks)
	require.NoError(t, historyDB.AddWithdrawals(withdrawals))
	fetchedWithdrawals, err := historyDB.GetAllWithdrawals()
	require.NoError(t, err)
	assert.Equal(t, withdrawals, fetchedWithdrawals)

	conversions := test.GenConversions(8, 3, userAddr, blocks)
	require.NoError(t, historyDB.AddConversions(conversions))
	fetchedConversions, err := historyDB.GetAllConversions()
	require.NoError(t, err)
	assert.Equal(t, conversions, fetchedConversions)

	pauseEvents := test.GenPauseEvents(4, ownerAddr, blocks)
	require.NoError(t, historyDB.AddPauseEvents(pauseEvents))
	fetchedPauseEvents, err := historyDB.GetAllPauseEvents()
	require.NoError(t, err)
	assert.Equal(t, pauseEvents, fetchedPauseEvents)

	ownerUpdates := test.GenOwnerUpdates(2, ownerAddr, blocks)
	require.NoError(t, historyDB.AddOwnerUpdates(ownerUpdates))
	fetchedOwnerUpdates, err := historyDB.GetAllOwnerUpdates()
	require.NoError(t, err)
	assert.Equal(t, ownerUpdates, fetchedOwnerUpdates)
}

func TestTokens(t *testing.T) {
	test.WipeDB(historyDB.DB())
	tokens := test.GenTokens()
	for i := range tokens {
		require.NoError(t, historyDB.AddToken(&tokens[i]))
	}
	fetchedTokens, err := historyDB.GetTokens()
	require.NoError(t, err)
	require.Equal(t, len(tokens), len(fetchedTokens))
	for i := range fetchedTokens {
		assert.Equal(t, tokens[i].EthAddr, fetchedTokens[i].EthAddr)
		assert.Equal(t, tokens[i].Name, fetchedTokens[i].Name)
		assert.Equal(t, tokens[i].Symbol, fetchedTokens[i].Symbol)
		assert.Equal(t, tokens[i].Decimals, fetchedTokens[i].Decimals)
		assert.Nil(t, fetchedTokens[i].USD)
	}
	// Update token value
	value := 1.45
	require.NoError(t, historyDB.UpdateTokenValue(tokens[0].EthAddr, value))
	fetchedToken, err := historyDB.GetToken(tokens[0].EthAddr)
	require.NoError(t, err)
	require.NotNil(t, fetchedToken.USD)
	test.AssertUSD(t, &value, fetchedToken.USD)
	assert.NotNil(t, fetchedToken.USDUpdate)
}

func TestConverterVars(t *testing.T) {
	test.WipeDB(historyDB.DB())
	// Initial vars are linked to block 0
	vars := &common.ConverterVariables{
		Rate:   common.ConversionRate{Num: big.NewInt(3), Denom: big.NewInt(4)},
		Owner:  ownerAddr,
		Paused: false,
	}
	require.NoError(t, historyDB.SetInitialConverterVars(vars))
	fetchedVars, err := historyDB.GetConverterVars()
	require.NoError(t, err)
	assert.Equal(t, int64(0), fetchedVars.EthBlockNum)
	assert.Equal(t, vars.Rate, fetchedVars.Rate)
	assert.Equal(t, vars.Owner, fetchedVars.Owner)
	assert.Equal(t, vars.Paused, fetchedVars.Paused)

	// A vars update on a later block replaces the old one
	blocks := test.GenBlocks(1, 3)
	require.NoError(t, historyDB.AddBlocks(blocks))
	newVars := &common.ConverterVariables{
		EthBlockNum: 2,
		Rate:        common.ConversionRate{Num: big.NewInt(1), Denom: big.NewInt(2)},
		Owner:       ownerAddr,
		Paused:      true,
	}
	require.NoError(t, historyDB.AddBlockSCData(&common.BlockData{
		Block: common.Block{
			EthBlockNum: 3,
			Timestamp:   time.Now().UTC(),
			Hash:        ethCommon.BigToHash(big.NewInt(3)),
		},
		Converter: common.ConverterData{Vars: newVars},
	}))
	fetchedVars, err = historyDB.GetConverterVars()
	require.NoError(t, err)
	assert.Equal(t, newVars.Rate, fetchedVars.Rate)
	assert.Equal(t, true, fetchedVars.Paused)
}

func TestAddBlockSCData(t *testing.T) {
	test.WipeDB(historyDB.DB())
	blocks := test.GenBlocks(1, 2)
	blockData := common.BlockData{
		Block:     blocks[0],
		Converter: common.NewConverterData(),
	}
	blockData.Converter.Deposits = test.GenDeposits(2, 1, userAddr, blocks)
	blockData.Converter.Conversions = test.GenConversions(2, 1, userAddr, blocks)
	require.NoError(t, historyDB.AddBlockSCData(&blockData))

	fetchedDeposits, err := historyDB.GetAllDeposits()
	require.NoError(t, err)
	assert.Equal(t, blockData.Converter.Deposits, fetchedDeposits)
	fetchedConversions, err := historyDB.GetAllConversions()
	require.NoError(t, err)
	assert.Equal(t, blockData.Converter.Conversions, fetchedConversions)
}

func TestReorg(t *testing.T) {
	test.WipeDB(historyDB.DB())
	blocks := test.GenBlocks(1, 6)
	require.NoError(t, historyDB.AddBlocks(blocks))
	deposits := test.GenDeposits(5, 0, userAddr, blocks)
	require.NoError(t, historyDB.AddDeposits(deposits))

	// Reorg deletes blocks and their events past the last valid block
	require.NoError(t, historyDB.Reorg(3))
	lastBlock, err := historyDB.GetLastBlock()
	require.NoError(t, err)
	assert.Equal(t, int64(3), lastBlock.EthBlockNum)
	fetchedDeposits, err := historyDB.GetAllDeposits()
	require.NoError(t, err)
	for _, deposit := range fetchedDeposits {
		assert.LessOrEqual(t, deposit.EthBlockNum, int64(3))
	}

	// A negative lastValidBlock deletes everything but the genesis block,
	// which is restored by the migrations only
	require.NoError(t, historyDB.Reorg(-1))
	_, err = historyDB.GetLastBlock()
	assert.Equal(t, sql.ErrNoRows, tracerr.Unwrap(err))
}

func TestGetStatusAPI(t *testing.T) {
	test.WipeDB(historyDB.DB())
	blocks := test.GenBlocks(1, 4)
	require.NoError(t, historyDB.AddBlocks(blocks))
	tokens := test.GenTokens()
	for i := range tokens {
		require.NoError(t, historyDB.AddToken(&tokens[i]))
	}
	vars := &common.ConverterVariables{
		Rate:   common.ConversionRate{Num: big.NewInt(3), Denom: big.NewInt(4)},
		Owner:  ownerAddr,
		Paused: false,
	}
	require.NoError(t, historyDB.SetInitialConverterVars(vars))

	deposits := []common.Deposit{{
		EthBlockNum: 1,
		FromAddr:    ownerAddr,
		Amount:      big.NewInt(1000),
		TxHash:      ethCommon.BigToHash(big.NewInt(1)),
	}}
	require.NoError(t, historyDB.AddDeposits(deposits))
	conversions := []common.Conversion{{
		EthBlockNum: 2,
		FromAddr:    userAddr,
		AmountA:     big.NewInt(100),
		AmountB:     big.NewInt(75),
		TxHash:      ethCommon.BigToHash(big.NewInt(2)),
	}}
	require.NoError(t, historyDB.AddConversions(conversions))
	withdrawals := []common.Withdrawal{{
		EthBlockNum: 3,
		ToAddr:      ownerAddr,
		Amount:      big.NewInt(25),
	}}
	require.NoError(t, historyDB.AddWithdrawals(withdrawals))

	status, err := historyDB.GetStatusAPI()
	require.NoError(t, err)
	require.NotNil(t, status.LastBlock)
	assert.Equal(t, int64(3), status.LastBlock.EthBlockNum)
	require.NotNil(t, status.Vars)
	assert.Equal(t, "3/4", status.Vars.Rate.String())
	assert.Equal(t, 2, len(status.Tokens))
	require.NotNil(t, status.BalanceA)
	assert.Equal(t, "100", string(*status.BalanceA))
	require.NotNil(t, status.BalanceB)
	assert.Equal(t, "900", string(*status.BalanceB))
}

func TestGetConversionsAPI(t *testing.T) {
	test.WipeDB(historyDB.DB())
	blocks := test.GenBlocks(1, 6)
	require.NoError(t, historyDB.AddBlocks(blocks))
	conversions := test.GenConversions(10, 4, userAddr, blocks)
	require.NoError(t, historyDB.AddConversions(conversions))

	limit := uint(5)
	fetched, pagination, err := historyDB.GetConversionsAPI(nil, nil, &limit, dbUtils.OrderAsc)
	require.NoError(t, err)
	assert.Equal(t, 5, len(fetched))
	assert.Equal(t, uint64(10), pagination.TotalItems)
	assert.Equal(t, uint64(1), pagination.FirstItem)
	assert.Equal(t, uint64(10), pagination.LastItem)
	for i := range fetched {
		assert.Equal(t, conversions[i].AmountA.String(), string(fetched[i].AmountA))
		assert.Equal(t, conversions[i].AmountB.String(), string(fetched[i].AmountB))
	}

	// Filter by fromAddr
	fetched, pagination, err = historyDB.GetConversionsAPI(&userAddr, nil, &limit, dbUtils.OrderAsc)
	require.NoError(t, err)
	assert.Equal(t, 4, len(fetched))
	assert.Equal(t, uint64(4), pagination.TotalItems)
	for i := range fetched {
		assert.Equal(t, userAddr, fetched[i].FromAddr)
	}

	// Pagination with fromItem in descending order
	fromItem := uint(8)
	fetched, _, err = historyDB.GetConversionsAPI(nil, &fromItem, &limit, dbUtils.OrderDesc)
	require.NoError(t, err)
	require.Equal(t, 5, len(fetched))
	assert.Equal(t, uint64(8), fetched[0].ItemID)
	assert.Equal(t, uint64(4), fetched[4].ItemID)
}
