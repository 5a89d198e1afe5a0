package common

import (
	"math/big"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
)

// Token represents one of the two ERC20 tokens handled by the TokenConverter
type Token struct {
	EthAddr   ethCommon.Address `meddler:"eth_addr" json:"ethereumAddress"`
	Name      string            `meddler:"name" json:"name"`
	Symbol    string            `meddler:"symbol" json:"symbol"`
	Decimals  uint64            `meddler:"decimals" json:"decimals"`
	USD       *float64          `meddler:"usd" json:"USD"`
	USDUpdate *time.Time        `meddler:"usd_update,utctime" json:"fiatUpdate"`
}

// RateUpdate is a change of the conversion rate made by the owner
type RateUpdate struct {
	EthBlockNum int64    `meddler:"eth_block_num" json:"ethereumBlockNum"`
	Numerator   *big.Int `meddler:"numerator,bigint" json:"numerator"`
	Denominator *big.Int `meddler:"denominator,bigint" json:"denominator"`
}

// Deposit is a Token B deposit into the converter
type Deposit struct {
	EthBlockNum int64             `meddler:"eth_block_num" json:"ethereumBlockNum"`
	FromAddr    ethCommon.Address `meddler:"from_addr" json:"fromAddress"`
	Amount      *big.Int          `meddler:"amount,bigint" json:"amount"`
	TxHash      ethCommon.Hash    `meddler:"tx_hash" json:"transactionHash"`
}

// Withdrawal is a Token B withdrawal made by the owner
type Withdrawal struct {
	EthBlockNum int64             `meddler:"eth_block_num" json:"ethereumBlockNum"`
	ToAddr      ethCommon.Address `meddler:"to_addr" json:"toAddress"`
	Amount      *big.Int          `meddler:"amount,bigint" json:"amount"`
}

// Conversion is a Token A to Token B conversion made by a user
type Conversion struct {
	EthBlockNum int64             `meddler:"eth_block_num" json:"ethereumBlockNum"`
	FromAddr    ethCommon.Address `meddler:"from_addr" json:"fromAddress"`
	AmountA     *big.Int          `meddler:"amount_a,bigint" json:"amountA"`
	AmountB     *big.Int          `meddler:"amount_b,bigint" json:"amountB"`
	TxHash      ethCommon.Hash    `meddler:"tx_hash" json:"transactionHash"`
}

// PauseEvent is a pause or unpause of the converter made by the owner
type PauseEvent struct {
	EthBlockNum int64             `meddler:"eth_block_num" json:"ethereumBlockNum"`
	Account     ethCommon.Address `meddler:"account" json:"account"`
	Paused      bool              `meddler:"paused" json:"paused"`
}

// OwnerUpdate is a transfer of the converter ownership
type OwnerUpdate struct {
	EthBlockNum   int64             `meddler:"eth_block_num" json:"ethereumBlockNum"`
	PreviousOwner ethCommon.Address `meddler:"previous_owner" json:"previousOwner"`
	NewOwner      ethCommon.Address `meddler:"new_owner" json:"newOwner"`
}

// ConverterData contains the TokenConverter Smart Contract data of an
// ethereum block
type ConverterData struct {
	RateUpdates  []RateUpdate
	Deposits     []Deposit
	Withdrawals  []Withdrawal
	Conversions  []Conversion
	PauseEvents  []PauseEvent
	OwnerUpdates []OwnerUpdate
	Vars         *ConverterVariables
}

// NewConverterData creates an empty ConverterData with the slices initialized
func NewConverterData() ConverterData {
	return ConverterData{
		RateUpdates:  make([]RateUpdate, 0),
		Deposits:     make([]Deposit, 0),
		Withdrawals:  make([]Withdrawal, 0),
		Conversions:  make([]Conversion, 0),
		PauseEvents:  make([]PauseEvent, 0),
		OwnerUpdates: make([]OwnerUpdate, 0),
		Vars:         nil,
	}
}

// BlockData contains the information of a block as seen by the tracker
type BlockData struct {
	Block     Block
	Converter ConverterData
}
