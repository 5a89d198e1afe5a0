package test

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/converter"
	"github.com/converternetwork/converter-node/eth"
	"github.com/converternetwork/converter-node/log"
	"github.com/mitchellh/copystructure"
)

func init() {
	copystructure.Copiers[reflect.TypeOf(big.Int{})] =
		func(raw interface{}) (interface{}, error) {
			in := raw.(big.Int)
			out := new(big.Int).Set(&in)
			return *out, nil
		}
}

// ConverterBlock stores all the data related to the TokenConverter SC from an ethereum block
type ConverterBlock struct {
	State     *converter.Converter
	TokenA    *TokenLedger
	TokenB    *TokenLedger
	Events    eth.ConverterEvents
	Txs       map[ethCommon.Hash]*types.Transaction
	Constants *common.ConverterConstants
	Eth       *EthereumBlock
}

func (v *ConverterBlock) addTransaction(tx *types.Transaction) *types.Transaction {
	txHash := tx.Hash()
	v.Txs[txHash] = tx
	return tx
}

// EthereumBlock stores all the generic data related to the an ethereum block
type EthereumBlock struct {
	BlockNum   int64
	Time       int64
	Hash       ethCommon.Hash
	ParentHash ethCommon.Hash
	Tokens     map[ethCommon.Address]common.ERC20Consts
}

// Block represents a ethereum block
type Block struct {
	Converter *ConverterBlock
	Eth       *EthereumBlock
}

func (b *Block) copy() *Block {
	ethCopyRaw, err := copystructure.Copy(b.Eth)
	if err != nil {
		panic(err)
	}
	ethCopy := ethCopyRaw.(*EthereumBlock)
	eventsCopyRaw, err := copystructure.Copy(b.Converter.Events)
	if err != nil {
		panic(err)
	}
	txs := make(map[ethCommon.Hash]*types.Transaction)
	for txHash, tx := range b.Converter.Txs {
		txs[txHash] = tx
	}
	// The converter state holds unexported fields, so it snapshots itself
	// along with the ledgers it is bound to.
	tokenA := b.Converter.TokenA.Copy()
	tokenB := b.Converter.TokenB.Copy()
	return &Block{
		Converter: &ConverterBlock{
			State:     b.Converter.State.Snapshot(tokenA, tokenB, nil),
			TokenA:    tokenA,
			TokenB:    tokenB,
			Events:    eventsCopyRaw.(eth.ConverterEvents),
			Txs:       txs,
			Constants: b.Converter.Constants,
			Eth:       ethCopy,
		},
		Eth: ethCopy,
	}
}

// Next prepares the successive block.
func (b *Block) Next() *Block {
	blockNext := b.copy()
	blockNext.Converter.Events = eth.NewConverterEvents()

	blockNext.Eth.BlockNum = b.Eth.BlockNum + 1
	blockNext.Eth.ParentHash = b.Eth.Hash

	blockNext.Converter.Constants = b.Converter.Constants
	blockNext.Converter.Eth = blockNext.Eth

	return blockNext
}

// ClientSetup is used to initialize the constants of the Smart Contract and
// other details of the test Client
type ClientSetup struct {
	ConverterAddr      ethCommon.Address
	ConverterConstants *common.ConverterConstants
	ConverterVariables *common.ConverterVariables
	TokenAConsts       common.ERC20Consts
	TokenBConsts       common.ERC20Consts
}

// NewClientSetupExample returns a ClientSetup example with hardcoded realistic
// values.  With this setup, block 0 and 1 will be premined.
//nolint:gomnd
func NewClientSetupExample() *ClientSetup {
	tokenA := ethCommon.HexToAddress("0x51D243D62852Bba334DD5cc33f242BAc8c698074")
	tokenB := ethCommon.HexToAddress("0x474B6e29852257491cf283EfB1A9C61eBFe48369")
	ownerAddress := ethCommon.HexToAddress("0x688EfD95BA4391f93717CF02A9aED9DBD2855cDd")
	converterConstants := &common.ConverterConstants{
		TokenA:         tokenA,
		TokenB:         tokenB,
		TokenADecimals: 18,
		TokenBDecimals: 18,
	}
	converterVariables := &common.ConverterVariables{
		Rate:   common.ConversionRate{Num: big.NewInt(3), Denom: big.NewInt(4)},
		Owner:  ownerAddress,
		Paused: false,
	}
	return &ClientSetup{
		ConverterAddr:      ethCommon.HexToAddress("0x8E442975805fb1908f43050c9C1A522cB0e28D7b"),
		ConverterConstants: converterConstants,
		ConverterVariables: converterVariables,
		TokenAConsts:       common.ERC20Consts{Name: "Token A", Symbol: "TKA", Decimals: 18},
		TokenBConsts:       common.ERC20Consts{Name: "Token B", Symbol: "TKB", Decimals: 18},
	}
}

// Timer is an interface to simulate a source of time, useful to advance time
// virtually.
type Timer interface {
	Time() int64
}

// Client implements the eth.ClientInterface interface, allowing to manipulate the
// values for testing, working with deterministic results.
type Client struct {
	rw                 *sync.RWMutex
	log                bool
	addr               *ethCommon.Address
	converterAddr      ethCommon.Address
	converterConstants *common.ConverterConstants
	blocks             map[int64]*Block
	blockNum           int64 // last mined block num
	maxBlockNum        int64 // highest block num calculated
	timer              Timer
	hasher             hasher
}

// NewClient returns a new test Client that implements the eth.ClientInterface
// interface, at the given initialBlockNumber.
func NewClient(l bool, timer Timer, addr *ethCommon.Address, setup *ClientSetup) *Client {
	blocks := make(map[int64]*Block)
	blockNum := int64(0)

	hasher := hasher{}
	tokenA := NewTokenLedger(setup.TokenAConsts)
	tokenB := NewTokenLedger(setup.TokenBConsts)
	state, err := converter.New(setup.ConverterAddr, *setup.ConverterConstants,
		setup.ConverterVariables.Owner, setup.ConverterVariables.Rate.Num,
		setup.ConverterVariables.Rate.Denom, tokenA, tokenB, nil)
	if err != nil {
		panic(err)
	}
	tokens := make(map[ethCommon.Address]common.ERC20Consts)
	tokens[setup.ConverterConstants.TokenA] = setup.TokenAConsts
	tokens[setup.ConverterConstants.TokenB] = setup.TokenBConsts
	// Add ethereum genesis block
	blockCurrent := &Block{
		Converter: &ConverterBlock{
			State:     state,
			TokenA:    tokenA,
			TokenB:    tokenB,
			Txs:       make(map[ethCommon.Hash]*types.Transaction),
			Events:    eth.NewConverterEvents(),
			Constants: setup.ConverterConstants,
		},
		Eth: &EthereumBlock{
			BlockNum:   blockNum,
			Time:       timer.Time(),
			Hash:       hasher.Next(),
			ParentHash: ethCommon.Hash{},
			Tokens:     tokens,
		},
	}
	blockCurrent.Converter.Eth = blockCurrent.Eth
	blocks[blockNum] = blockCurrent
	blockNext := blockCurrent.Next()
	blocks[blockNum+1] = blockNext

	c := Client{
		rw:                 &sync.RWMutex{},
		log:                l,
		addr:               addr,
		converterAddr:      setup.ConverterAddr,
		converterConstants: setup.ConverterConstants,
		blocks:             blocks,
		timer:              timer,
		hasher:             hasher,
		blockNum:           blockNum,
		maxBlockNum:        blockNum,
	}
	c.CtlMineBlock()

	return &c
}

//
// Mock Control
//

func (c *Client) setNextBlock(block *Block) {
	c.blocks[c.blockNum+1] = block
}

func (c *Client) revertIfErr(err error, block *Block) {
	if err != nil {
		log.Infow("TestClient revert", "block", block.Eth.BlockNum, "err", err)
		c.setNextBlock(block)
	}
}

// Debugf calls log.Debugf if c.log is true
func (c *Client) Debugf(template string, args ...interface{}) {
	if c.log {
		log.Debugf(template, args...)
	}
}

// Debugw calls log.Debugw if c.log is true
func (c *Client) Debugw(template string, kv ...interface{}) {
	if c.log {
		log.Debugw(template, kv...)
	}
}

type hasher struct {
	counter uint64
}

// Next returns the next hash
func (h *hasher) Next() ethCommon.Hash {
	var hash ethCommon.Hash
	binary.LittleEndian.PutUint64(hash[:], h.counter)
	h.counter++
	return hash
}

func (c *Client) nextBlock() *Block {
	return c.blocks[c.blockNum+1]
}

func (c *Client) currentBlock() *Block {
	return c.blocks[c.blockNum]
}

// CtlSetAddr sets the address of the client
func (c *Client) CtlSetAddr(addr ethCommon.Address) {
	c.addr = &addr
}

// CtlMineBlock moves one block forward
func (c *Client) CtlMineBlock() {
	c.rw.Lock()
	defer c.rw.Unlock()

	blockCurrent := c.nextBlock()
	c.blockNum++
	c.maxBlockNum = c.blockNum
	blockCurrent.Eth.Time = c.timer.Time()
	blockCurrent.Eth.Hash = c.hasher.Next()

	blockNext := blockCurrent.Next()
	c.blocks[c.blockNum+1] = blockNext
	c.Debugw("TestClient mined block", "blockNum", c.blockNum)
}

// CtlRollback discards the last mined block.  Use this to replace a mined
// block to simulate reorgs.
func (c *Client) CtlRollback() {
	c.rw.Lock()
	defer c.rw.Unlock()

	if c.blockNum == 0 {
		panic("Can't rollback at blockNum = 0")
	}
	delete(c.blocks, c.blockNum+1) // delete next block
	delete(c.blocks, c.blockNum)   // delete current block
	c.blockNum--
	blockCurrent := c.blocks[c.blockNum]
	blockNext := blockCurrent.Next()
	c.blocks[c.blockNum+1] = blockNext
}

// CtlMintToken credits amount of the given token to holder on the next block.
func (c *Client) CtlMintToken(token, holder ethCommon.Address, amount *big.Int) {
	c.rw.Lock()
	defer c.rw.Unlock()

	v := c.nextBlock().Converter
	switch token {
	case c.converterConstants.TokenA:
		v.TokenA.Mint(holder, amount)
	case c.converterConstants.TokenB:
		v.TokenB.Mint(holder, amount)
	default:
		panic(fmt.Sprintf("unknown token %v", token))
	}
}

// CtlTokenBalance returns the balance of holder for the given token on the
// last mined block.
func (c *Client) CtlTokenBalance(token, holder ethCommon.Address) *big.Int {
	c.rw.RLock()
	defer c.rw.RUnlock()

	v := c.currentBlock().Converter
	switch token {
	case c.converterConstants.TokenA:
		return v.TokenA.BalanceOf(holder)
	case c.converterConstants.TokenB:
		return v.TokenB.BalanceOf(holder)
	default:
		panic(fmt.Sprintf("unknown token %v", token))
	}
}

//
// Ethereum
//

// EthCurrentBlock returns the current blockNum
func (c *Client) EthCurrentBlock() (int64, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	if c.blockNum < c.maxBlockNum {
		panic("blockNum has decreased.  " +
			"After a rollback you must mine to reach the same or higher blockNum")
	}
	return c.blockNum, nil
}

// EthTransactionReceipt returns the transaction receipt of the given txHash
func (c *Client) EthTransactionReceipt(ctx context.Context, txHash ethCommon.Hash) (*types.Receipt, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	for i := int64(0); i <= c.blockNum; i++ {
		b := c.blocks[i]
		if _, ok := b.Converter.Txs[txHash]; ok {
			return &types.Receipt{
				TxHash:      txHash,
				Status:      types.ReceiptStatusSuccessful,
				BlockHash:   b.Eth.Hash,
				BlockNumber: big.NewInt(b.Eth.BlockNum),
			}, nil
		}
	}

	return nil, nil
}

// CtlAddERC20 adds an ERC20 token to the blockchain.
func (c *Client) CtlAddERC20(tokenAddr ethCommon.Address, constants common.ERC20Consts) {
	nextBlock := c.nextBlock()
	e := nextBlock.Eth
	e.Tokens[tokenAddr] = constants
}

// EthERC20Consts returns the constants defined for a particular ERC20 Token instance.
func (c *Client) EthERC20Consts(tokenAddr ethCommon.Address) (*common.ERC20Consts, error) {
	currentBlock := c.currentBlock()
	e := currentBlock.Eth
	if constants, ok := e.Tokens[tokenAddr]; ok {
		return &constants, nil
	}
	return nil, fmt.Errorf("tokenAddr not found")
}

// EthBlockByNumber returns the *common.Block for the given block number in a
// deterministic way.
func (c *Client) EthBlockByNumber(ctx context.Context, blockNum int64) (*common.Block, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	if blockNum > c.blockNum {
		return nil, ethereum.NotFound
	}
	block := c.blocks[blockNum]
	return &common.Block{
		EthBlockNum: blockNum,
		Timestamp:   time.Unix(block.Eth.Time, 0),
		Hash:        block.Eth.Hash,
		ParentHash:  block.Eth.ParentHash,
	}, nil
}

// EthAddress returns the ethereum address of the account loaded into the Client
func (c *Client) EthAddress() (*ethCommon.Address, error) {
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}
	return c.addr, nil
}

type transactionData struct {
	Name  string
	Value interface{}
}

func newTransaction(name string, value interface{}) *types.Transaction {
	data, err := json.Marshal(transactionData{name, value})
	if err != nil {
		panic(err)
	}
	return types.NewTransaction(0, ethCommon.Address{}, nil, 0, nil,
		data)
}

//
// Converter
//

// TokenApprove grants the spender an allowance of amount over the client
// account's funds of the given token.
func (c *Client) TokenApprove(token, spender ethCommon.Address, amount *big.Int) (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	switch token {
	case c.converterConstants.TokenA:
		v.TokenA.Approve(*c.addr, spender, amount)
	case c.converterConstants.TokenB:
		v.TokenB.Approve(*c.addr, spender, amount)
	default:
		return nil, fmt.Errorf("unknown token %v", token)
	}
	return v.addTransaction(newTransaction("approve", amount)), nil
}

// ConverterConversionRate is the interface to call the smart contract function
func (c *Client) ConverterConversionRate() (*common.ConversionRate, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	rate := c.currentBlock().Converter.State.ConversionRate()
	return &rate, nil
}

// ConverterOwner is the interface to call the smart contract function
func (c *Client) ConverterOwner() (*ethCommon.Address, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	owner := c.currentBlock().Converter.State.Owner()
	return &owner, nil
}

// ConverterPaused is the interface to call the smart contract function
func (c *Client) ConverterPaused() (bool, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	return c.currentBlock().Converter.State.IsPaused(), nil
}

// ConverterUpdateConversionRate is the interface to call the smart contract function
func (c *Client) ConverterUpdateConversionRate(numerator, denominator *big.Int) (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	if err = v.State.UpdateConversionRate(*c.addr, numerator, denominator); err != nil {
		return nil, err
	}
	v.Events.RateUpdated = append(v.Events.RateUpdated, eth.ConverterEventRateUpdated{
		Numerator:   new(big.Int).Set(numerator),
		Denominator: new(big.Int).Set(denominator),
	})
	return v.addTransaction(newTransaction("updateConversionRate", []*big.Int{numerator, denominator})), nil
}

// ConverterDepositTokenB is the interface to call the smart contract function
func (c *Client) ConverterDepositTokenB(amount *big.Int) (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	if err = v.State.DepositTokenB(*c.addr, amount); err != nil {
		return nil, err
	}
	tx = v.addTransaction(newTransaction("depositTokenB", amount))
	v.Events.DepositTokenB = append(v.Events.DepositTokenB, eth.ConverterEventDepositTokenB{
		From:   *c.addr,
		Amount: new(big.Int).Set(amount),
		TxHash: tx.Hash(),
	})
	return tx, nil
}

// ConverterWithdrawTokenB is the interface to call the smart contract function
func (c *Client) ConverterWithdrawTokenB(amount *big.Int) (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	owner := v.State.Owner()
	if err = v.State.WithdrawTokenB(*c.addr, amount); err != nil {
		return nil, err
	}
	v.Events.WithdrawTokenB = append(v.Events.WithdrawTokenB, eth.ConverterEventWithdrawTokenB{
		To:     owner,
		Amount: new(big.Int).Set(amount),
	})
	return v.addTransaction(newTransaction("withdrawTokenB", amount)), nil
}

// ConverterConvertTokens is the interface to call the smart contract function
func (c *Client) ConverterConvertTokens(amountA *big.Int) (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	amountB, err := v.State.ConvertTokens(*c.addr, amountA)
	if err != nil {
		return nil, err
	}
	tx = v.addTransaction(newTransaction("convertTokens", amountA))
	v.Events.TokensConverted = append(v.Events.TokensConverted, eth.ConverterEventTokensConverted{
		From:    *c.addr,
		AmountA: new(big.Int).Set(amountA),
		AmountB: amountB,
		TxHash:  tx.Hash(),
	})
	return tx, nil
}

// ConverterPause is the interface to call the smart contract function
func (c *Client) ConverterPause() (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	if err = v.State.Pause(*c.addr); err != nil {
		return nil, err
	}
	v.Events.Paused = append(v.Events.Paused, eth.ConverterEventPaused{
		Account: *c.addr,
	})
	return v.addTransaction(newTransaction("pause", nil)), nil
}

// ConverterUnpause is the interface to call the smart contract function
func (c *Client) ConverterUnpause() (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	if err = v.State.Unpause(*c.addr); err != nil {
		return nil, err
	}
	v.Events.Unpaused = append(v.Events.Unpaused, eth.ConverterEventUnpaused{
		Account: *c.addr,
	})
	return v.addTransaction(newTransaction("unpause", nil)), nil
}

// ConverterTransferOwnership is the interface to call the smart contract function
func (c *Client) ConverterTransferOwnership(newOwner ethCommon.Address) (tx *types.Transaction, err error) {
	c.rw.Lock()
	defer c.rw.Unlock()
	cpy := c.nextBlock().copy()
	defer func() { c.revertIfErr(err, cpy) }()
	if c.addr == nil {
		return nil, eth.ErrAccountNil
	}

	nextBlock := c.nextBlock()
	v := nextBlock.Converter
	previousOwner := v.State.Owner()
	if err = v.State.TransferOwnership(*c.addr, newOwner); err != nil {
		return nil, err
	}
	v.Events.OwnershipTransferred = append(v.Events.OwnershipTransferred, eth.ConverterEventOwnershipTransferred{
		PreviousOwner: previousOwner,
		NewOwner:      newOwner,
	})
	return v.addTransaction(newTransaction("transferOwnership", newOwner)), nil
}

// ConverterConstants returns the Constants of the TokenConverter Smart Contract
func (c *Client) ConverterConstants() (*common.ConverterConstants, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	return c.converterConstants, nil
}

// ConverterVariables returns the Variables of the TokenConverter Smart Contract
func (c *Client) ConverterVariables() (*common.ConverterVariables, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	vars := c.currentBlock().Converter.State.Variables()
	vars.EthBlockNum = c.blockNum
	return vars, nil
}

// ConverterEventsByBlock returns the events in a block that happened in the
// TokenConverter Smart Contract
func (c *Client) ConverterEventsByBlock(blockNum int64) (*eth.ConverterEvents, *ethCommon.Hash, error) {
	c.rw.RLock()
	defer c.rw.RUnlock()

	block, ok := c.blocks[blockNum]
	if !ok {
		return nil, nil, fmt.Errorf("Block %v doesn't exist", blockNum)
	}
	return &block.Converter.Events, &block.Eth.Hash, nil
}
