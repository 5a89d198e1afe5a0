package historydb

import (
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/apitypes"
	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/db"
)

// RateUpdateAPI is a representation of a rate update with additional
// information required by the API, extracted by joining the block table
type RateUpdateAPI struct {
	ItemID      uint64             `meddler:"item_id" json:"itemId"`
	EthBlockNum int64              `meddler:"eth_block_num" json:"ethereumBlockNum"`
	Numerator   apitypes.BigIntStr `meddler:"numerator" json:"numerator"`
	Denominator apitypes.BigIntStr `meddler:"denominator" json:"denominator"`
	Timestamp   time.Time          `meddler:"timestamp,utctime" json:"timestamp"`
	TotalItems  uint64             `meddler:"total_items" json:"-"`
	FirstItem   uint64             `meddler:"first_item" json:"-"`
	LastItem    uint64             `meddler:"last_item" json:"-"`
}

// DepositAPI is a representation of a deposit with additional information
// required by the API, extracted by joining the block table
type DepositAPI struct {
	ItemID      uint64             `meddler:"item_id" json:"itemId"`
	EthBlockNum int64              `meddler:"eth_block_num" json:"ethereumBlockNum"`
	FromAddr    ethCommon.Address  `meddler:"from_addr" json:"fromAddress"`
	Amount      apitypes.BigIntStr `meddler:"amount" json:"amount"`
	TxHash      ethCommon.Hash     `meddler:"tx_hash" json:"transactionHash"`
	Timestamp   time.Time          `meddler:"timestamp,utctime" json:"timestamp"`
	TotalItems  uint64             `meddler:"total_items" json:"-"`
	FirstItem   uint64             `meddler:"first_item" json:"-"`
	LastItem    uint64             `meddler:"last_item" json:"-"`
}

// WithdrawalAPI is a representation of a withdrawal with additional
// information required by the API, extracted by joining the block table
type WithdrawalAPI struct {
	ItemID      uint64             `meddler:"item_id" json:"itemId"`
	EthBlockNum int64              `meddler:"eth_block_num" json:"ethereumBlockNum"`
	ToAddr      ethCommon.Address  `meddler:"to_addr" json:"toAddress"`
	Amount      apitypes.BigIntStr `meddler:"amount" json:"amount"`
	Timestamp   time.Time          `meddler:"timestamp,utctime" json:"timestamp"`
	TotalItems  uint64             `meddler:"total_items" json:"-"`
	FirstItem   uint64             `meddler:"first_item" json:"-"`
	LastItem    uint64             `meddler:"last_item" json:"-"`
}

// ConversionAPI is a representation of a conversion with additional
// information required by the API, extracted by joining the block table
type ConversionAPI struct {
	ItemID      uint64             `meddler:"item_id" json:"itemId"`
	EthBlockNum int64              `meddler:"eth_block_num" json:"ethereumBlockNum"`
	FromAddr    ethCommon.Address  `meddler:"from_addr" json:"fromAddress"`
	AmountA     apitypes.BigIntStr `meddler:"amount_a" json:"amountA"`
	AmountB     apitypes.BigIntStr `meddler:"amount_b" json:"amountB"`
	TxHash      ethCommon.Hash     `meddler:"tx_hash" json:"transactionHash"`
	Timestamp   time.Time          `meddler:"timestamp,utctime" json:"timestamp"`
	TotalItems  uint64             `meddler:"total_items" json:"-"`
	FirstItem   uint64             `meddler:"first_item" json:"-"`
	LastItem    uint64             `meddler:"last_item" json:"-"`
}

// NewPagination returns the pagination information of a paginated query from
// the window columns of its first returned row
func NewPagination(totalItems, firstItem, lastItem uint64) *db.Pagination {
	return &db.Pagination{
		TotalItems: totalItems,
		FirstItem:  firstItem,
		LastItem:   lastItem,
	}
}

// StatusAPI is the response of the converter status endpoint.  Balances are
// derived from the stored events: they track the contract holdings up to the
// last synchronized block.
type StatusAPI struct {
	LastBlock *common.Block              `json:"lastBlock"`
	Vars      *common.ConverterVariables `json:"converter"`
	Tokens    []common.Token             `json:"tokens"`
	BalanceA  *apitypes.BigIntStr        `json:"balanceTokenA"`
	BalanceB  *apitypes.BigIntStr        `json:"balanceTokenB"`
}
