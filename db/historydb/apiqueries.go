package historydb

import (
	"database/sql"
	"fmt"
	"math/big"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/apitypes"
	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/db"
	"github.com/hermeznetwork/tracerr"
	"github.com/russross/meddler"
)

// GetLastBlockAPI retrieve the block with the highest block number from the DB
func (hdb *HistoryDB) GetLastBlockAPI() (*common.Block, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	return hdb.GetLastBlock()
}

// GetConverterVarsAPI returns the state of the TokenConverter Smart Contract
// variables at the last block in which they changed
func (hdb *HistoryDB) GetConverterVarsAPI() (*common.ConverterVariables, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	return hdb.GetConverterVars()
}

// GetTokensAPI returns the two tokens handled by the converter
func (hdb *HistoryDB) GetTokensAPI() ([]common.Token, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	return hdb.GetTokens()
}

// GetRateUpdatesAPI returns the rate updates applying the given filters
func (hdb *HistoryDB) GetRateUpdatesAPI(
	fromItem, limit *uint, order string,
) ([]RateUpdateAPI, *db.Pagination, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	var args []interface{}
	queryStr := `SELECT rate_update.*, block.timestamp,
	count(*) OVER() AS total_items, MIN(rate_update.item_id) OVER() AS first_item,
	MAX(rate_update.item_id) OVER() AS last_item
	FROM rate_update INNER JOIN block ON rate_update.eth_block_num = block.eth_block_num `
	if fromItem != nil {
		queryStr += "WHERE "
		if order == db.OrderAsc {
			queryStr += "rate_update.item_id >= ? "
		} else {
			queryStr += "rate_update.item_id <= ? "
		}
		args = append(args, fromItem)
	}
	queryStr += "ORDER BY rate_update.item_id "
	if order == db.OrderAsc {
		queryStr += "ASC "
	} else {
		queryStr += "DESC "
	}
	queryStr += fmt.Sprintf("LIMIT %d;", *limit)
	query := hdb.db.Rebind(queryStr)
	rateUpdates := []*RateUpdateAPI{}
	if err := meddler.QueryAll(hdb.db, &rateUpdates, query, args...); err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	if len(rateUpdates) == 0 {
		return []RateUpdateAPI{}, &db.Pagination{}, nil
	}
	return db.SlicePtrsToSlice(rateUpdates).([]RateUpdateAPI), NewPagination(
		rateUpdates[0].TotalItems, rateUpdates[0].FirstItem, rateUpdates[0].LastItem), nil
}

// GetDepositsAPI returns the deposits applying the given filters
func (hdb *HistoryDB) GetDepositsAPI(
	fromAddr *ethCommon.Address,
	fromItem, limit *uint, order string,
) ([]DepositAPI, *db.Pagination, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	var args []interface{}
	queryStr := `SELECT deposit.*, block.timestamp,
	count(*) OVER() AS total_items, MIN(deposit.item_id) OVER() AS first_item,
	MAX(deposit.item_id) OVER() AS last_item
	FROM deposit INNER JOIN block ON deposit.eth_block_num = block.eth_block_num `
	nextIsAnd := false
	if fromAddr != nil {
		queryStr += "WHERE deposit.from_addr = ? "
		args = append(args, fromAddr)
		nextIsAnd = true
	}
	if fromItem != nil {
		if nextIsAnd {
			queryStr += "AND "
		} else {
			queryStr += "WHERE "
		}
		if order == db.OrderAsc {
			queryStr += "deposit.item_id >= ? "
		} else {
			queryStr += "deposit.item_id <= ? "
		}
		args = append(args, fromItem)
	}
	queryStr += "ORDER BY deposit.item_id "
	if order == db.OrderAsc {
		queryStr += "ASC "
	} else {
		queryStr += "DESC "
	}
	queryStr += fmt.Sprintf("LIMIT %d;", *limit)
	query := hdb.db.Rebind(queryStr)
	deposits := []*DepositAPI{}
	if err := meddler.QueryAll(hdb.db, &deposits, query, args...); err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	if len(deposits) == 0 {
		return []DepositAPI{}, &db.Pagination{}, nil
	}
	return db.SlicePtrsToSlice(deposits).([]DepositAPI), NewPagination(
		deposits[0].TotalItems, deposits[0].FirstItem, deposits[0].LastItem), nil
}

// GetWithdrawalsAPI returns the withdrawals applying the given filters
func (hdb *HistoryDB) GetWithdrawalsAPI(
	fromItem, limit *uint, order string,
) ([]WithdrawalAPI, *db.Pagination, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	var args []interface{}
	queryStr := `SELECT withdrawal.*, block.timestamp,
	count(*) OVER() AS total_items, MIN(withdrawal.item_id) OVER() AS first_item,
	MAX(withdrawal.item_id) OVER() AS last_item
	FROM withdrawal INNER JOIN block ON withdrawal.eth_block_num = block.eth_block_num `
	if fromItem != nil {
		queryStr += "WHERE "
		if order == db.OrderAsc {
			queryStr += "withdrawal.item_id >= ? "
		} else {
			queryStr += "withdrawal.item_id <= ? "
		}
		args = append(args, fromItem)
	}
	queryStr += "ORDER BY withdrawal.item_id "
	if order == db.OrderAsc {
		queryStr += "ASC "
	} else {
		queryStr += "DESC "
	}
	queryStr += fmt.Sprintf("LIMIT %d;", *limit)
	query := hdb.db.Rebind(queryStr)
	withdrawals := []*WithdrawalAPI{}
	if err := meddler.QueryAll(hdb.db, &withdrawals, query, args...); err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	if len(withdrawals) == 0 {
		return []WithdrawalAPI{}, &db.Pagination{}, nil
	}
	return db.SlicePtrsToSlice(withdrawals).([]WithdrawalAPI), NewPagination(
		withdrawals[0].TotalItems, withdrawals[0].FirstItem, withdrawals[0].LastItem), nil
}

// GetConversionsAPI returns the conversions applying the given filters
func (hdb *HistoryDB) GetConversionsAPI(
	fromAddr *ethCommon.Address,
	fromItem, limit *uint, order string,
) ([]ConversionAPI, *db.Pagination, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	var args []interface{}
	queryStr := `SELECT conversion.*, block.timestamp,
	count(*) OVER() AS total_items, MIN(conversion.item_id) OVER() AS first_item,
	MAX(conversion.item_id) OVER() AS last_item
	FROM conversion INNER JOIN block ON conversion.eth_block_num = block.eth_block_num `
	nextIsAnd := false
	if fromAddr != nil {
		queryStr += "WHERE conversion.from_addr = ? "
		args = append(args, fromAddr)
		nextIsAnd = true
	}
	if fromItem != nil {
		if nextIsAnd {
			queryStr += "AND "
		} else {
			queryStr += "WHERE "
		}
		if order == db.OrderAsc {
			queryStr += "conversion.item_id >= ? "
		} else {
			queryStr += "conversion.item_id <= ? "
		}
		args = append(args, fromItem)
	}
	queryStr += "ORDER BY conversion.item_id "
	if order == db.OrderAsc {
		queryStr += "ASC "
	} else {
		queryStr += "DESC "
	}
	queryStr += fmt.Sprintf("LIMIT %d;", *limit)
	query := hdb.db.Rebind(queryStr)
	conversions := []*ConversionAPI{}
	if err := meddler.QueryAll(hdb.db, &conversions, query, args...); err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	if len(conversions) == 0 {
		return []ConversionAPI{}, &db.Pagination{}, nil
	}
	return db.SlicePtrsToSlice(conversions).([]ConversionAPI), NewPagination(
		conversions[0].TotalItems, conversions[0].FirstItem, conversions[0].LastItem), nil
}

// getBalances derives the contract token holdings from the stored events.
// Token A only flows in through conversions, Token B flows in through
// deposits and out through withdrawals and conversions.
func (hdb *HistoryDB) getBalances() (*big.Int, *big.Int, error) {
	var balanceA, balanceB string
	row := hdb.db.QueryRow(
		`SELECT COALESCE(SUM(amount_a::NUMERIC), 0)::TEXT FROM conversion;`)
	if err := row.Scan(&balanceA); err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	row = hdb.db.QueryRow(
		`SELECT (
			(SELECT COALESCE(SUM(amount::NUMERIC), 0) FROM deposit) -
			(SELECT COALESCE(SUM(amount::NUMERIC), 0) FROM withdrawal) -
			(SELECT COALESCE(SUM(amount_b::NUMERIC), 0) FROM conversion)
		)::TEXT;`)
	if err := row.Scan(&balanceB); err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	a, ok := new(big.Int).SetString(balanceA, 10)
	if !ok {
		return nil, nil, tracerr.Wrap(fmt.Errorf("invalid balance %q", balanceA))
	}
	b, ok := new(big.Int).SetString(balanceB, 10)
	if !ok {
		return nil, nil, tracerr.Wrap(fmt.Errorf("invalid balance %q", balanceB))
	}
	return a, b, nil
}

// GetStatusAPI assembles the status of the converter from the DB: last
// synchronized block, contract variables, tokens and derived balances
func (hdb *HistoryDB) GetStatusAPI() (*StatusAPI, error) {
	cancel, err := hdb.apiConnCon.Acquire()
	defer cancel()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	defer hdb.apiConnCon.Release()
	lastBlock, err := hdb.GetLastBlock()
	if tracerr.Unwrap(err) == sql.ErrNoRows {
		lastBlock = nil
	} else if err != nil {
		return nil, tracerr.Wrap(err)
	}
	vars, err := hdb.GetConverterVars()
	if tracerr.Unwrap(err) == sql.ErrNoRows {
		vars = nil
	} else if err != nil {
		return nil, tracerr.Wrap(err)
	}
	tokens, err := hdb.GetTokens()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	balanceA, balanceB, err := hdb.getBalances()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &StatusAPI{
		LastBlock: lastBlock,
		Vars:      vars,
		Tokens:    tokens,
		BalanceA:  apitypes.NewBigIntStr(balanceA),
		BalanceB:  apitypes.NewBigIntStr(balanceB),
	}, nil
}
