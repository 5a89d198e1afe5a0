package historydb

import (
	"math/big"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/db"
	"github.com/hermeznetwork/tracerr"
	"github.com/jmoiron/sqlx"

	//nolint:errcheck // driver for postgres DB
	_ "github.com/lib/pq"
	"github.com/russross/meddler"
)

// HistoryDB persist the historic of the TokenConverter Smart Contract as seen
// by the tracker: blocks, contract events and contract variables.  It is the
// only source of data of the API.
type HistoryDB struct {
	db         *sqlx.DB
	apiConnCon *db.APIConnectionController
}

// NewHistoryDB initialize the DB
func NewHistoryDB(database *sqlx.DB, apiConnCon *db.APIConnectionController) *HistoryDB {
	return &HistoryDB{db: database, apiConnCon: apiConnCon}
}

// DB returns a pointer to the HistoryDB.db. This method should be used only for
// internal testing purposes.
func (hdb *HistoryDB) DB() *sqlx.DB {
	return hdb.db
}

// AddBlock insert a block into the DB
func (hdb *HistoryDB) AddBlock(block *common.Block) error { return hdb.addBlock(hdb.db, block) }
func (hdb *HistoryDB) addBlock(d meddler.DB, block *common.Block) error {
	return tracerr.Wrap(meddler.Insert(d, "block", block))
}

// AddBlocks inserts blocks into the DB
func (hdb *HistoryDB) AddBlocks(blocks []common.Block) error {
	return hdb.addBlocks(hdb.db, blocks)
}

func (hdb *HistoryDB) addBlocks(d meddler.DB, blocks []common.Block) error {
	return tracerr.Wrap(db.BulkInsert(
		d,
		`INSERT INTO block (
			eth_block_num,
			timestamp,
			hash
		) VALUES %s;`,
		blocks[:],
	))
}

// GetBlock retrieve a block from the DB, given a block number
func (hdb *HistoryDB) GetBlock(blockNum int64) (*common.Block, error) {
	block := &common.Block{}
	err := meddler.QueryRow(
		hdb.db, block,
		"SELECT * FROM block WHERE eth_block_num = $1;", blockNum,
	)
	return block, tracerr.Wrap(err)
}

// GetAllBlocks retrieve all blocks from the DB
func (hdb *HistoryDB) GetAllBlocks() ([]common.Block, error) {
	var blocks []*common.Block
	err := meddler.QueryAll(
		hdb.db, &blocks,
		"SELECT * FROM block ORDER BY eth_block_num;",
	)
	return db.SlicePtrsToSlice(blocks).([]common.Block), tracerr.Wrap(err)
}

// GetBlocks retrieve blocks from the DB, given a range of block numbers defined by from and to
func (hdb *HistoryDB) GetBlocks(from, to int64) ([]common.Block, error) {
	var blocks []*common.Block
	err := meddler.QueryAll(
		hdb.db, &blocks,
		"SELECT * FROM block WHERE $1 <= eth_block_num AND eth_block_num < $2 ORDER BY eth_block_num;",
		from, to,
	)
	return db.SlicePtrsToSlice(blocks).([]common.Block), tracerr.Wrap(err)
}

// GetLastBlock retrieve the block with the highest block number from the DB
func (hdb *HistoryDB) GetLastBlock() (*common.Block, error) {
	block := &common.Block{}
	err := meddler.QueryRow(
		hdb.db, block, "SELECT * FROM block ORDER BY eth_block_num DESC LIMIT 1;",
	)
	return block, tracerr.Wrap(err)
}

// AddRateUpdates inserts rate updates into the DB
func (hdb *HistoryDB) AddRateUpdates(rateUpdates []common.RateUpdate) error {
	return hdb.addRateUpdates(hdb.db, rateUpdates)
}

func (hdb *HistoryDB) addRateUpdates(d meddler.DB, rateUpdates []common.RateUpdate) error {
	if len(rateUpdates) == 0 {
		return nil
	}
	return tracerr.Wrap(db.BulkInsert(
		d,
		"INSERT INTO rate_update (eth_block_num, numerator, denominator) VALUES %s;",
		rateUpdates[:],
	))
}

// GetAllRateUpdates retrieve all rate updates from the DB
func (hdb *HistoryDB) GetAllRateUpdates() ([]common.RateUpdate, error) {
	var rateUpdates []*common.RateUpdate
	err := meddler.QueryAll(
		hdb.db, &rateUpdates,
		"SELECT eth_block_num, numerator, denominator FROM rate_update ORDER BY item_id;",
	)
	return db.SlicePtrsToSlice(rateUpdates).([]common.RateUpdate), tracerr.Wrap(err)
}

// AddDeposits inserts deposits into the DB
func (hdb *HistoryDB) AddDeposits(deposits []common.Deposit) error {
	return hdb.addDeposits(hdb.db, deposits)
}

func (hdb *HistoryDB) addDeposits(d meddler.DB, deposits []common.Deposit) error {
	if len(deposits) == 0 {
		return nil
	}
	return tracerr.Wrap(db.BulkInsert(
		d,
		"INSERT INTO deposit (eth_block_num, from_addr, amount, tx_hash) VALUES %s;",
		deposits[:],
	))
}

// GetAllDeposits retrieve all deposits from the DB
func (hdb *HistoryDB) GetAllDeposits() ([]common.Deposit, error) {
	var deposits []*common.Deposit
	err := meddler.QueryAll(
		hdb.db, &deposits,
		"SELECT eth_block_num, from_addr, amount, tx_hash FROM deposit ORDER BY item_id;",
	)
	return db.SlicePtrsToSlice(deposits).([]common.Deposit), tracerr.Wrap(err)
}

// AddWithdrawals inserts withdrawals into the DB
func (hdb *HistoryDB) AddWithdrawals(withdrawals []common.Withdrawal) error {
	return hdb.addWithdrawals(hdb.db, withdrawals)
}

func (hdb *HistoryDB) addWithdrawals(d meddler.DB, withdrawals []common.Withdrawal) error {
	if len(withdrawals) == 0 {
		return nil
	}
	return tracerr.Wrap(db.BulkInsert(
		d,
		"INSERT INTO withdrawal (eth_block_num, to_addr, amount) VALUES %s;",
		withdrawals[:],
	))
}

// GetAllWithdrawals retrieve all withdrawals from the DB
func (hdb *HistoryDB) GetAllWithdrawals() ([]common.Withdrawal, error) {
	var withdrawals []*common.Withdrawal
	err := meddler.QueryAll(
		hdb.db, &withdrawals,
		"SELECT eth_block_num, to_addr, amount FROM withdrawal ORDER BY item_id;",
	)
	return db.SlicePtrsToSlice(withdrawals).([]common.Withdrawal), tracerr.Wrap(err)
}

// AddConversions inserts conversions into the DB
func (hdb *HistoryDB) AddConversions(conversions []common.Conversion) error {
	return hdb.addConversions(hdb.db, conversions)
}

func (hdb *HistoryDB) addConversions(d meddler.DB, conversions []common.Conversion) error {
	if len(conversions) == 0 {
		return nil
	}
	return tracerr.Wrap(db.BulkInsert(
		d,
		"INSERT INTO conversion (eth_block_num, from_addr, amount_a, amount_b, tx_hash) VALUES %s;",
		conversions[:],
	))
}

// GetAllConversions retrieve all conversions from the DB
func (hdb *HistoryDB) GetAllConversions() ([]common.Conversion, error) {
	var conversions []*common.Conversion
	err := meddler.QueryAll(
		hdb.db, &conversions,
		"SELECT eth_block_num, from_addr, amount_a, amount_b, tx_hash FROM conversion ORDER BY item_id;",
	)
	return db.SlicePtrsToSlice(conversions).([]common.Conversion), tracerr.Wrap(err)
}

// AddPauseEvents inserts pause events into the DB
func (hdb *HistoryDB) AddPauseEvents(pauseEvents []common.PauseEvent) error {
	return hdb.addPauseEvents(hdb.db, pauseEvents)
}

func (hdb *HistoryDB) addPauseEvents(d meddler.DB, pauseEvents []common.PauseEvent) error {
	if len(pauseEvents) == 0 {
		return nil
	}
	return tracerr.Wrap(db.BulkInsert(
		d,
		"INSERT INTO pause_event (eth_block_num, account, paused) VALUES %s;",
		pauseEvents[:],
	))
}

// GetAllPauseEvents retrieve all pause events from the DB
func (hdb *HistoryDB) GetAllPauseEvents() ([]common.PauseEvent, error) {
	var pauseEvents []*common.PauseEvent
	err := meddler.QueryAll(
		hdb.db, &pauseEvents,
		"SELECT eth_block_num, account, paused FROM pause_event ORDER BY item_id;",
	)
	return db.SlicePtrsToSlice(pauseEvents).([]common.PauseEvent), tracerr.Wrap(err)
}

// AddOwnerUpdates inserts ownership transfers into the DB
func (hdb *HistoryDB) AddOwnerUpdates(ownerUpdates []common.OwnerUpdate) error {
	return hdb.addOwnerUpdates(hdb.db, ownerUpdates)
}

func (hdb *HistoryDB) addOwnerUpdates(d meddler.DB, ownerUpdates []common.OwnerUpdate) error {
	if len(ownerUpdates) == 0 {
		return nil
	}
	return tracerr.Wrap(db.BulkInsert(
		d,
		"INSERT INTO owner_update (eth_block_num, previous_owner, new_owner) VALUES %s;",
		ownerUpdates[:],
	))
}

// GetAllOwnerUpdates retrieve all ownership transfers from the DB
func (hdb *HistoryDB) GetAllOwnerUpdates() ([]common.OwnerUpdate, error) {
	var ownerUpdates []*common.OwnerUpdate
	err := meddler.QueryAll(
		hdb.db, &ownerUpdates,
		"SELECT eth_block_num, previous_owner, new_owner FROM owner_update ORDER BY item_id;",
	)
	return db.SlicePtrsToSlice(ownerUpdates).([]common.OwnerUpdate), tracerr.Wrap(err)
}

// AddToken insert a token into the DB
func (hdb *HistoryDB) AddToken(token *common.Token) error {
	return tracerr.Wrap(meddler.Insert(hdb.db, "token", token))
}

// GetToken returns a token from the DB given its address
func (hdb *HistoryDB) GetToken(tokenAddr ethCommon.Address) (*common.Token, error) {
	token := &common.Token{}
	err := meddler.QueryRow(
		hdb.db, token, "SELECT * FROM token WHERE eth_addr = $1;", tokenAddr,
	)
	return token, tracerr.Wrap(err)
}

// GetTokens returns the two tokens handled by the converter
func (hdb *HistoryDB) GetTokens() ([]common.Token, error) {
	var tokens []*common.Token
	err := meddler.QueryAll(
		hdb.db, &tokens,
		"SELECT * FROM token ORDER BY symbol;",
	)
	return db.SlicePtrsToSlice(tokens).([]common.Token), tracerr.Wrap(err)
}

// UpdateTokenValue updates the USD value of a token
func (hdb *HistoryDB) UpdateTokenValue(tokenAddr ethCommon.Address, value float64) error {
	_, err := hdb.db.Exec(
		"UPDATE token SET usd = $1, usd_update = timezone('utc', now()) WHERE eth_addr = $2;",
		value, tokenAddr,
	)
	return tracerr.Wrap(err)
}

// converterVars is the DB representation of common.ConverterVariables, with
// the conversion rate flattened into two columns
type converterVars struct {
	EthBlockNum int64             `meddler:"eth_block_num"`
	RateNum     *big.Int          `meddler:"rate_num,bigint"`
	RateDenom   *big.Int          `meddler:"rate_denom,bigint"`
	Owner       ethCommon.Address `meddler:"owner_addr"`
	Paused      bool              `meddler:"paused"`
}

func newConverterVars(vars *common.ConverterVariables) *converterVars {
	return &converterVars{
		EthBlockNum: vars.EthBlockNum,
		RateNum:     vars.Rate.Num,
		RateDenom:   vars.Rate.Denom,
		Owner:       vars.Owner,
		Paused:      vars.Paused,
	}
}

func (v *converterVars) converterVariables() *common.ConverterVariables {
	return &common.ConverterVariables{
		EthBlockNum: v.EthBlockNum,
		Rate:        common.ConversionRate{Num: v.RateNum, Denom: v.RateDenom},
		Owner:       v.Owner,
		Paused:      v.Paused,
	}
}

func (hdb *HistoryDB) setConverterVars(d meddler.DB, vars *common.ConverterVariables) error {
	return tracerr.Wrap(meddler.Insert(d, "converter_vars", newConverterVars(vars)))
}

// SetInitialConverterVars sets the initial state of the TokenConverter Smart
// Contract variables.  This initial state is stored linked to block 0, which
// always exist in the DB and is used to store initialization data that always
// exist in the smart contract.
func (hdb *HistoryDB) SetInitialConverterVars(vars *common.ConverterVariables) error {
	txn, err := hdb.db.Beginx()
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer func() {
		if err != nil {
			db.Rollback(txn)
		}
	}()
	// Force EthBlockNum to be 0 because it's the block used to link data
	// that belongs to the creation of the smart contract
	vars.EthBlockNum = 0
	if err = hdb.setConverterVars(txn, vars); err != nil {
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(txn.Commit())
}

// GetConverterVars returns the state of the TokenConverter Smart Contract
// variables at the last block in which they changed
func (hdb *HistoryDB) GetConverterVars() (*common.ConverterVariables, error) {
	var vars converterVars
	if err := meddler.QueryRow(hdb.db, &vars,
		"SELECT * FROM converter_vars ORDER BY eth_block_num DESC LIMIT 1;"); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return vars.converterVariables(), nil
}

// Reorg deletes all the information that was added into the DB after the
// lastValidBlock.  If lastValidBlock is negative, all the information is deleted.
func (hdb *HistoryDB) Reorg(lastValidBlock int64) error {
	var err error
	if lastValidBlock < 0 {
		_, err = hdb.db.Exec("DELETE FROM block;")
	} else {
		_, err = hdb.db.Exec("DELETE FROM block WHERE eth_block_num > $1;", lastValidBlock)
	}
	return tracerr.Wrap(err)
}

// AddBlockSCData stores all the information of a block retrieved by the
// tracker.  Blocks should be inserted in order, leaving no gaps because the
// pagination system of the API/DB depends on this.  Within blocks, all items
// should also be in the correct order.
func (hdb *HistoryDB) AddBlockSCData(blockData *common.BlockData) (err error) {
	txn, err := hdb.db.Beginx()
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer func() {
		if err != nil {
			db.Rollback(txn)
		}
	}()

	if err = hdb.addBlock(txn, &blockData.Block); err != nil {
		return tracerr.Wrap(err)
	}
	if err = hdb.addRateUpdates(txn, blockData.Converter.RateUpdates); err != nil {
		return tracerr.Wrap(err)
	}
	if err = hdb.addDeposits(txn, blockData.Converter.Deposits); err != nil {
		return tracerr.Wrap(err)
	}
	if err = hdb.addWithdrawals(txn, blockData.Converter.Withdrawals); err != nil {
		return tracerr.Wrap(err)
	}
	if err = hdb.addConversions(txn, blockData.Converter.Conversions); err != nil {
		return tracerr.Wrap(err)
	}
	if err = hdb.addPauseEvents(txn, blockData.Converter.PauseEvents); err != nil {
		return tracerr.Wrap(err)
	}
	if err = hdb.addOwnerUpdates(txn, blockData.Converter.OwnerUpdates); err != nil {
		return tracerr.Wrap(err)
	}
	if blockData.Converter.Vars != nil {
		if err = hdb.setConverterVars(txn, blockData.Converter.Vars); err != nil {
			return tracerr.Wrap(err)
		}
	}

	return tracerr.Wrap(txn.Commit())
}
