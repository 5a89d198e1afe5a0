/*
Package tracker synchronizes the state of the TokenConverter Smart Contract
into the HistoryDB.  It advances block by block, storing for each block the
contract events and the new state of the contract variables, and detects
blockchain reorgs by comparing the parent hash of each new block against the
last synchronized one.
*/
package tracker

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/converternetwork/converter-node/eth"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/metric"
	"github.com/ethereum/go-ethereum"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/hermeznetwork/tracerr"
)

// Stats of the tracker
type Stats struct {
	Eth struct {
		Updated   time.Time
		LastBlock common.Block
	}
	Sync struct {
		Updated   time.Time
		LastBlock common.Block
	}
}

// Synced returns true if the Sync Stats match the Eth Stats
func (s *Stats) Synced() bool {
	return s.Eth.LastBlock.EthBlockNum == s.Sync.LastBlock.EthBlockNum
}

// StatsHolder stores stats and allows reading and writing them
// concurrently
type StatsHolder struct {
	Stats
	rw sync.RWMutex
}

// NewStatsHolder creates a new StatsHolder
func NewStatsHolder(firstBlockNum int64) *StatsHolder {
	stats := Stats{}
	stats.Sync.LastBlock.EthBlockNum = firstBlockNum - 1
	return &StatsHolder{Stats: stats}
}

// UpdateEth updates the ethereum stats
func (s *StatsHolder) UpdateEth(lastBlock *common.Block) {
	s.rw.Lock()
	s.Eth.Updated = time.Now()
	s.Eth.LastBlock = *lastBlock
	s.rw.Unlock()
}

// UpdateSync updates the tracker stats
func (s *StatsHolder) UpdateSync(lastBlock *common.Block) {
	s.rw.Lock()
	s.Sync.Updated = time.Now()
	s.Sync.LastBlock = *lastBlock
	s.rw.Unlock()
}

// CopyStats returns a copy of the inner Stats
func (s *StatsHolder) CopyStats() *Stats {
	s.rw.RLock()
	sCopy := s.Stats
	s.rw.RUnlock()
	return &sCopy
}

// Config is the tracker configuration
type Config struct {
	// StartBlockNum is the block in which the TokenConverter Smart
	// Contract was deployed.  Blocks before it are never synchronized.
	StartBlockNum int64
}

// Tracker implements the converter tracker
type Tracker struct {
	ethClient eth.ClientInterface
	historyDB *historydb.HistoryDB
	consts    *common.ConverterConstants
	vars      *common.ConverterVariables
	cfg       Config
	stats     *StatsHolder
	mux       sync.Mutex
}

// NewTracker creates a new Tracker, loading the contract constants from the
// blockchain and initializing the HistoryDB with the contract variables and
// tokens when they are not yet stored.
func NewTracker(ethClient eth.ClientInterface, historyDB *historydb.HistoryDB,
	cfg Config) (*Tracker, error) {
	consts, err := ethClient.ConverterConstants()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	s := &Tracker{
		ethClient: ethClient,
		historyDB: historyDB,
		consts:    consts,
		cfg:       cfg,
		stats:     NewStatsHolder(cfg.StartBlockNum),
	}
	if err := s.initVars(); err != nil {
		return nil, tracerr.Wrap(err)
	}
	if err := s.initTokens(); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return s, nil
}

// initVars loads the contract variables from the HistoryDB, getting them from
// the blockchain the first time the node runs
func (s *Tracker) initVars() error {
	vars, err := s.historyDB.GetConverterVars()
	if tracerr.Unwrap(err) == sql.ErrNoRows {
		vars, err = s.ethClient.ConverterVariables()
		if err != nil {
			return tracerr.Wrap(err)
		}
		if err := s.historyDB.SetInitialConverterVars(vars); err != nil {
			return tracerr.Wrap(err)
		}
	} else if err != nil {
		return tracerr.Wrap(err)
	}
	s.vars = vars
	return nil
}

// initTokens stores the constants of the two handled tokens in the HistoryDB
// the first time the node runs
func (s *Tracker) initTokens() error {
	for _, tokenAddr := range []ethCommon.Address{s.consts.TokenA, s.consts.TokenB} {
		_, err := s.historyDB.GetToken(tokenAddr)
		if tracerr.Unwrap(err) == sql.ErrNoRows {
			consts, err := s.ethClient.EthERC20Consts(tokenAddr)
			if err != nil {
				return tracerr.Wrap(err)
			}
			if err := s.historyDB.AddToken(&common.Token{
				EthAddr:  tokenAddr,
				Name:     consts.Name,
				Symbol:   consts.Symbol,
				Decimals: consts.Decimals,
			}); err != nil {
				return tracerr.Wrap(err)
			}
		} else if err != nil {
			return tracerr.Wrap(err)
		}
	}
	return nil
}

// Stats returns a copy of the tracker Stats
func (s *Tracker) Stats() *Stats {
	return s.stats.CopyStats()
}

// ConverterConstants returns the contract constants
func (s *Tracker) ConverterConstants() *common.ConverterConstants {
	return s.consts
}

// ConverterVariables returns a copy of the tracked contract variables
func (s *Tracker) ConverterVariables() *common.ConverterVariables {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.vars.Copy()
}

// Sync attempts to synchronize an ethereum block starting from lastSavedBlock.
// If lastSavedBlock is nil it gets it from the HistoryDB.  If a block is
// synchronized it returns its BlockData; if a reorg is detected it returns
// the number of discarded blocks instead.  Both results are nil when the
// tracker is fully synced.
func (s *Tracker) Sync(ctx context.Context,
	lastSavedBlock *common.Block) (blockData *common.BlockData, discarded *int64, err error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	var nextBlockNum int64
	if lastSavedBlock == nil {
		if lastSavedBlock, err = s.historyDB.GetLastBlock(); err != nil {
			return nil, nil, tracerr.Wrap(err)
		}
		// The genesis block is stored by default in the HistoryDB
		// and is previous to the contract deployment
		if lastSavedBlock.EthBlockNum < s.cfg.StartBlockNum {
			lastSavedBlock = nil
		}
	}
	if lastSavedBlock != nil {
		nextBlockNum = lastSavedBlock.EthBlockNum + 1
		if lastSavedBlock.EthBlockNum < s.cfg.StartBlockNum {
			return nil, nil, tracerr.Wrap(fmt.Errorf(
				"lastSavedBlock (%v) < startBlockNum (%v)",
				lastSavedBlock.EthBlockNum, s.cfg.StartBlockNum))
		}
	} else {
		nextBlockNum = s.cfg.StartBlockNum
	}

	ethBlock, err := s.ethClient.EthBlockByNumber(ctx, nextBlockNum)
	if tracerr.Unwrap(err) == ethereum.NotFound {
		return nil, nil, nil
	} else if err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	log.Debugw("Syncing...",
		"block", nextBlockNum,
		"ethLastBlock", s.stats.Eth.LastBlock.EthBlockNum,
	)

	// Check that the obtained ethBlock.ParentHash == prevEthBlock.Hash; if not, reorg!
	if lastSavedBlock != nil {
		if lastSavedBlock.Hash != ethBlock.ParentHash {
			// Reorg detected
			log.Debugw("Reorg Detected",
				"blockNum", ethBlock.EthBlockNum,
				"block.parent(got)", ethBlock.ParentHash,
				"parent.hash(exp)", lastSavedBlock.Hash)
			lastDBBlockNum, err := s.reorg(lastSavedBlock)
			if err != nil {
				return nil, nil, tracerr.Wrap(err)
			}
			total := lastSavedBlock.EthBlockNum - lastDBBlockNum
			metric.Reorgs.Inc()
			return nil, &total, nil
		}
	}

	converterData, err := s.converterSync(ethBlock)
	if err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	blockData = &common.BlockData{
		Block:     *ethBlock,
		Converter: *converterData,
	}
	if err := s.historyDB.AddBlockSCData(blockData); err != nil {
		return nil, nil, tracerr.Wrap(err)
	}

	if lastBlockNum, err := s.ethClient.EthCurrentBlock(); err == nil {
		s.stats.UpdateEth(&common.Block{EthBlockNum: lastBlockNum})
		metric.EthLastBlockNum.Set(float64(lastBlockNum))
	}
	s.stats.UpdateSync(ethBlock)
	metric.LastBlockNum.Set(float64(ethBlock.EthBlockNum))
	metric.SyncedDeposits.Add(float64(len(blockData.Converter.Deposits)))
	metric.SyncedWithdrawals.Add(float64(len(blockData.Converter.Withdrawals)))
	metric.SyncedConversions.Add(float64(len(blockData.Converter.Conversions)))

	return blockData, nil, nil
}

// converterSync gets the contract events of the given block and applies them
// to the tracked contract variables
func (s *Tracker) converterSync(ethBlock *common.Block) (*common.ConverterData, error) {
	blockNum := ethBlock.EthBlockNum
	converterData := common.NewConverterData()

	events, blockHash, err := s.ethClient.ConverterEventsByBlock(blockNum)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	// No events in this block
	if blockHash == nil {
		return &converterData, nil
	}
	if *blockHash != ethBlock.Hash {
		log.Errorw("Block hash mismatch in converter events", "expected", ethBlock.Hash.String(),
			"got", blockHash.String())
		return nil, tracerr.Wrap(eth.ErrBlockHashMismatchEvent)
	}

	varsUpdate := false
	for _, evt := range events.RateUpdated {
		converterData.RateUpdates = append(converterData.RateUpdates, common.RateUpdate{
			EthBlockNum: blockNum,
			Numerator:   evt.Numerator,
			Denominator: evt.Denominator,
		})
		s.vars.Rate = common.ConversionRate{Num: evt.Numerator, Denom: evt.Denominator}
		varsUpdate = true
	}
	for _, evt := range events.DepositTokenB {
		converterData.Deposits = append(converterData.Deposits, common.Deposit{
			EthBlockNum: blockNum,
			FromAddr:    evt.From,
			Amount:      evt.Amount,
			TxHash:      evt.TxHash,
		})
	}
	for _, evt := range events.WithdrawTokenB {
		converterData.Withdrawals = append(converterData.Withdrawals, common.Withdrawal{
			EthBlockNum: blockNum,
			ToAddr:      evt.To,
			Amount:      evt.Amount,
		})
	}
	for _, evt := range events.TokensConverted {
		converterData.Conversions = append(converterData.Conversions, common.Conversion{
			EthBlockNum: blockNum,
			FromAddr:    evt.From,
			AmountA:     evt.AmountA,
			AmountB:     evt.AmountB,
			TxHash:      evt.TxHash,
		})
	}
	for _, evt := range events.Paused {
		converterData.PauseEvents = append(converterData.PauseEvents, common.PauseEvent{
			EthBlockNum: blockNum,
			Account:     evt.Account,
			Paused:      true,
		})
		s.vars.Paused = true
		varsUpdate = true
	}
	for _, evt := range events.Unpaused {
		converterData.PauseEvents = append(converterData.PauseEvents, common.PauseEvent{
			EthBlockNum: blockNum,
			Account:     evt.Account,
			Paused:      false,
		})
		s.vars.Paused = false
		varsUpdate = true
	}
	for _, evt := range events.OwnershipTransferred {
		converterData.OwnerUpdates = append(converterData.OwnerUpdates, common.OwnerUpdate{
			EthBlockNum:   blockNum,
			PreviousOwner: evt.PreviousOwner,
			NewOwner:      evt.NewOwner,
		})
		s.vars.Owner = evt.NewOwner
		varsUpdate = true
	}

	if varsUpdate {
		s.vars.EthBlockNum = blockNum
		converterData.Vars = s.vars.Copy()
	}
	return &converterData, nil
}

// reorg searches the latest block stored in the HistoryDB that matches the
// blockchain, discards everything stored after it, and reloads the contract
// variables from the resulting state
func (s *Tracker) reorg(uncleBlock *common.Block) (int64, error) {
	blockNum := uncleBlock.EthBlockNum
	for blockNum >= s.cfg.StartBlockNum {
		ethBlock, err := s.ethClient.EthBlockByNumber(context.Background(), blockNum)
		if err != nil {
			return 0, tracerr.Wrap(err)
		}
		block, err := s.historyDB.GetBlock(blockNum)
		if err != nil {
			return 0, tracerr.Wrap(err)
		}
		if block.Hash == ethBlock.Hash {
			log.Debugf("Found valid block: %v", blockNum)
			break
		}
		blockNum--
	}
	total := uncleBlock.EthBlockNum - blockNum
	log.Debugw("Discarding blocks", "total", total, "from", uncleBlock.EthBlockNum, "to", blockNum+1)
	if err := s.historyDB.Reorg(blockNum); err != nil {
		return 0, tracerr.Wrap(err)
	}
	if err := s.initVars(); err != nil {
		return 0, tracerr.Wrap(err)
	}
	return blockNum, nil
}
