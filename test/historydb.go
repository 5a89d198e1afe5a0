package test

import (
	"math/big"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/common"
)

// Block0 represents Ethereum's genesis block,
// which is stored by default at HistoryDB
var Block0 common.Block = common.Block{
	EthBlockNum: 0,
	Hash: ethCommon.Hash([32]byte{
		212, 229, 103, 64, 248, 118, 174, 248,
		192, 16, 184, 106, 64, 213, 245, 103,
		69, 161, 24, 208, 144, 106, 52, 230,
		154, 236, 140, 13, 177, 203, 143, 163,
	}), // 0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3
	Timestamp: time.Date(2015, time.July, 30, 3, 26, 13, 0, time.UTC), // 2015-07-30 03:26:13
}

// WARNING: the generators in this file doesn't necessary follow the protocol
// they are intended to check that the parsers between struct <==> DB are correct

// GenBlocks generates block from, to block numbers. WARNING: This is meant for DB/API testing, and
// may not be fully consistent with the protocol.
func GenBlocks(from, to int64) []common.Block {
	var blocks []common.Block
	for i := from; i < to; i++ {
		blocks = append(blocks, common.Block{
			EthBlockNum: i,
			//nolint:gomnd
			Timestamp: time.Now().Add(time.Second * 13).UTC(),
			Hash:      ethCommon.BigToHash(big.NewInt(int64(i))),
		})
	}
	return blocks
}

// GenTokens generates the two tokens handled by the converter. WARNING: This
// is meant for DB/API testing, and may not be fully consistent with the
// protocol.
func GenTokens() []common.Token {
	return []common.Token{
		{
			EthAddr:  ethCommon.BigToAddress(big.NewInt(1)),
			Name:     "Token A",
			Symbol:   "TKA",
			Decimals: 18, //nolint:gomnd
		},
		{
			EthAddr:  ethCommon.BigToAddress(big.NewInt(2)), //nolint:gomnd
			Name:     "Token B",
			Symbol:   "TKB",
			Decimals: 18, //nolint:gomnd
		},
	}
}

// GenRateUpdates generates rate updates. WARNING: This is meant for DB/API
// testing, and may not be fully consistent with the protocol.
func GenRateUpdates(n int, blocks []common.Block) []common.RateUpdate {
	rateUpdates := []common.RateUpdate{}
	for i := 0; i < n; i++ {
		rateUpdates = append(rateUpdates, common.RateUpdate{
			EthBlockNum: blocks[i%len(blocks)].EthBlockNum,
			Numerator:   big.NewInt(int64(i + 1)),
			Denominator: big.NewInt(int64(i + 2)), //nolint:gomnd
		})
	}
	return rateUpdates
}

// GenDeposits generates deposits, nUser of them made from userAddr. WARNING:
// This is meant for DB/API testing, and may not be fully consistent with the
// protocol.
func GenDeposits(n, nUser int, userAddr ethCommon.Address,
	blocks []common.Block) []common.Deposit {
	deposits := []common.Deposit{}
	for i := 0; i < n; i++ {
		fromAddr := ethCommon.BigToAddress(big.NewInt(int64(i + 1000))) //nolint:gomnd
		if i < nUser {
			fromAddr = userAddr
		}
		deposits = append(deposits, common.Deposit{
			EthBlockNum: blocks[i%len(blocks)].EthBlockNum,
			FromAddr:    fromAddr,
			Amount:      big.NewInt(int64((i + 1) * 10000)), //nolint:gomnd
			TxHash:      ethCommon.BigToHash(big.NewInt(int64(i + 1))),
		})
	}
	return deposits
}

// GenWithdrawals generates withdrawals towards the owner address. WARNING:
// This is meant for DB/API testing, and may not be fully consistent with the
// protocol.
func GenWithdrawals(n int, owner ethCommon.Address, blocks []common.Block) []common.Withdrawal {
	withdrawals := []common.Withdrawal{}
	for i := 0; i < n; i++ {
		withdrawals = append(withdrawals, common.Withdrawal{
			EthBlockNum: blocks[i%len(blocks)].EthBlockNum,
			ToAddr:      owner,
			Amount:      big.NewInt(int64(i + 1)),
		})
	}
	return withdrawals
}

// GenConversions generates conversions at a fixed 3/4 rate, nUser of them
// made from userAddr. WARNING: This is meant for DB/API testing, and may not
// be fully consistent with the protocol.
func GenConversions(n, nUser int, userAddr ethCommon.Address,
	blocks []common.Block) []common.Conversion {
	conversions := []common.Conversion{}
	for i := 0; i < n; i++ {
		fromAddr := ethCommon.BigToAddress(big.NewInt(int64(i + 2000))) //nolint:gomnd
		if i < nUser {
			fromAddr = userAddr
		}
		amountA := big.NewInt(int64((i + 1) * 100)) //nolint:gomnd
		amountB := new(big.Int).Div(
			new(big.Int).Mul(amountA, big.NewInt(3)), big.NewInt(4)) //nolint:gomnd
		conversions = append(conversions, common.Conversion{
			EthBlockNum: blocks[i%len(blocks)].EthBlockNum,
			FromAddr:    fromAddr,
			AmountA:     amountA,
			AmountB:     amountB,
			TxHash:      ethCommon.BigToHash(big.NewInt(int64(i + 100))), //nolint:gomnd
		})
	}
	return conversions
}

// GenPauseEvents generates alternating pause/unpause events made by the
// owner. WARNING: This is meant for DB/API testing, and may not be fully
// consistent with the protocol.
func GenPauseEvents(n int, owner ethCommon.Address, blocks []common.Block) []common.PauseEvent {
	pauseEvents := []common.PauseEvent{}
	for i := 0; i < n; i++ {
		pauseEvents = append(pauseEvents, common.PauseEvent{
			EthBlockNum: blocks[i%len(blocks)].EthBlockNum,
			Account:     owner,
			Paused:      i%2 == 0, //nolint:gomnd
		})
	}
	return pauseEvents
}

// GenOwnerUpdates generates ownership transfers. WARNING: This is meant for
// DB/API testing, and may not be fully consistent with the protocol.
func GenOwnerUpdates(n int, owner ethCommon.Address, blocks []common.Block) []common.OwnerUpdate {
	ownerUpdates := []common.OwnerUpdate{}
	prev := owner
	for i := 0; i < n; i++ {
		next := ethCommon.BigToAddress(big.NewInt(int64(i + 3000))) //nolint:gomnd
		ownerUpdates = append(ownerUpdates, common.OwnerUpdate{
			EthBlockNum:   blocks[i%len(blocks)].EthBlockNum,
			PreviousOwner: prev,
			NewOwner:      next,
		})
		prev = next
	}
	return ownerUpdates
}
