package eth

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/converternetwork/converter-node/common"
	TokenConverter "github.com/converternetwork/converter-node/eth/contracts/tokenconverter"
	"github.com/converternetwork/converter-node/log"
	"github.com/hermeznetwork/tracerr"
)

// ConverterEventRateUpdated is an event of the TokenConverter Smart Contract
type ConverterEventRateUpdated struct {
	Numerator   *big.Int
	Denominator *big.Int
}

// ConverterEventDepositTokenB is an event of the TokenConverter Smart Contract
type ConverterEventDepositTokenB struct {
	From   ethCommon.Address
	Amount *big.Int
	TxHash ethCommon.Hash // Hash of the transaction that generated this event
}

// ConverterEventWithdrawTokenB is an event of the TokenConverter Smart Contract
type ConverterEventWithdrawTokenB struct {
	To     ethCommon.Address
	Amount *big.Int
}

// ConverterEventTokensConverted is an event of the TokenConverter Smart Contract
type ConverterEventTokensConverted struct {
	From    ethCommon.Address
	AmountA *big.Int
	AmountB *big.Int
	TxHash  ethCommon.Hash // Hash of the transaction that generated this event
}

// ConverterEventPaused is an event of the TokenConverter Smart Contract
type ConverterEventPaused struct {
	Account ethCommon.Address
}

// ConverterEventUnpaused is an event of the TokenConverter Smart Contract
type ConverterEventUnpaused struct {
	Account ethCommon.Address
}

// ConverterEventOwnershipTransferred is an event of the TokenConverter Smart Contract
type ConverterEventOwnershipTransferred struct {
	PreviousOwner ethCommon.Address
	NewOwner      ethCommon.Address
}

// ConverterEvents is the list of events in a block of the TokenConverter Smart Contract
type ConverterEvents struct {
	RateUpdated          []ConverterEventRateUpdated
	DepositTokenB        []ConverterEventDepositTokenB
	WithdrawTokenB       []ConverterEventWithdrawTokenB
	TokensConverted      []ConverterEventTokensConverted
	Paused               []ConverterEventPaused
	Unpaused             []ConverterEventUnpaused
	OwnershipTransferred []ConverterEventOwnershipTransferred
}

// NewConverterEvents creates an empty ConverterEvents with the slices initialized.
func NewConverterEvents() ConverterEvents {
	return ConverterEvents{
		RateUpdated:          make([]ConverterEventRateUpdated, 0),
		DepositTokenB:        make([]ConverterEventDepositTokenB, 0),
		WithdrawTokenB:       make([]ConverterEventWithdrawTokenB, 0),
		TokensConverted:      make([]ConverterEventTokensConverted, 0),
		Paused:               make([]ConverterEventPaused, 0),
		Unpaused:             make([]ConverterEventUnpaused, 0),
		OwnershipTransferred: make([]ConverterEventOwnershipTransferred, 0),
	}
}

// ConverterInterface is the interface to the TokenConverter Smart Contract
type ConverterInterface interface {
	//
	// Smart Contract Methods
	//

	ConverterConversionRate() (*common.ConversionRate, error)
	ConverterOwner() (*ethCommon.Address, error)
	ConverterPaused() (bool, error)
	ConverterUpdateConversionRate(numerator, denominator *big.Int) (*types.Transaction, error)
	ConverterDepositTokenB(amount *big.Int) (*types.Transaction, error)
	ConverterWithdrawTokenB(amount *big.Int) (*types.Transaction, error)
	ConverterConvertTokens(amountA *big.Int) (*types.Transaction, error)
	ConverterPause() (*types.Transaction, error)
	ConverterUnpause() (*types.Transaction, error)
	ConverterTransferOwnership(newOwner ethCommon.Address) (*types.Transaction, error)

	ConverterEventsByBlock(blockNum int64) (*ConverterEvents, *ethCommon.Hash, error)
	ConverterConstants() (*common.ConverterConstants, error)
	ConverterVariables() (*common.ConverterVariables, error)
}

//
// Implementation
//

// ConverterClient is the implementation of the interface to the TokenConverter Smart Contract in ethereum.
type ConverterClient struct {
	client      *EthereumClient
	address     ethCommon.Address
	converter   *TokenConverter.Tokenconverter
	contractAbi abi.ABI
}

// NewConverterClient creates a new ConverterClient
func NewConverterClient(client *EthereumClient, address ethCommon.Address) (*ConverterClient, error) {
	contractAbi, err := abi.JSON(strings.NewReader(string(TokenConverter.TokenconverterABI)))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	converter, err := TokenConverter.NewTokenconverter(address, client.Client())
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &ConverterClient{
		client:      client,
		address:     address,
		converter:   converter,
		contractAbi: contractAbi,
	}, nil
}

// ConverterConversionRate is the interface to call the smart contract function
func (c *ConverterClient) ConverterConversionRate() (rate *common.ConversionRate, err error) {
	if err := c.client.Call(func(ec *ethclient.Client) error {
		result, err := c.converter.ConversionRate(nil)
		if err != nil {
			return tracerr.Wrap(err)
		}
		rate = &common.ConversionRate{
			Num:   result.Numerator,
			Denom: result.Denominator,
		}
		return nil
	}); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return rate, nil
}

// ConverterOwner is the interface to call the smart contract function
func (c *ConverterClient) ConverterOwner() (owner *ethCommon.Address, err error) {
	var _owner ethCommon.Address
	if err := c.client.Call(func(ec *ethclient.Client) error {
		_owner, err = c.converter.Owner(nil)
		return tracerr.Wrap(err)
	}); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &_owner, nil
}

// ConverterPaused is the interface to call the smart contract function
func (c *ConverterClient) ConverterPaused() (paused bool, err error) {
	if err := c.client.Call(func(ec *ethclient.Client) error {
		paused, err = c.converter.Paused(nil)
		return tracerr.Wrap(err)
	}); err != nil {
		return false, tracerr.Wrap(err)
	}
	return paused, nil
}

// ConverterUpdateConversionRate is the interface to call the smart contract function
func (c *ConverterClient) ConverterUpdateConversionRate(numerator, denominator *big.Int) (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.converter.UpdateConversionRate(auth, numerator, denominator)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed updating conversion rate: %w", err))
	}
	return tx, nil
}

// ConverterDepositTokenB is the interface to call the smart contract function
func (c *ConverterClient) ConverterDepositTokenB(amount *big.Int) (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.converter.DepositTokenB(auth, amount)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed deposit of token B: %w", err))
	}
	return tx, nil
}

// ConverterWithdrawTokenB is the interface to call the smart contract function
func (c *ConverterClient) ConverterWithdrawTokenB(amount *big.Int) (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.converter.WithdrawTokenB(auth, amount)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed withdrawal of token B: %w", err))
	}
	return tx, nil
}

// ConverterConvertTokens is the interface to call the smart contract function
func (c *ConverterClient) ConverterConvertTokens(amountA *big.Int) (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.converter.ConvertTokens(auth, amountA)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed converting tokens: %w", err))
	}
	return tx, nil
}

// ConverterPause is the interface to call the smart contract function
func (c *ConverterClient) ConverterPause() (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.converter.Pause(auth)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed pausing converter: %w", err))
	}
	return tx, nil
}

// ConverterUnpause is the interface to call the smart contract function
func (c *ConverterClient) ConverterUnpause() (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.converter.Unpause(auth)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed unpausing converter: %w", err))
	}
	return tx, nil
}

// ConverterTransferOwnership is the interface to call the smart contract function
func (c *ConverterClient) ConverterTransferOwnership(newOwner ethCommon.Address) (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.converter.TransferOwnership(auth, newOwner)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed transferring ownership: %w", err))
	}
	return tx, nil
}

// ConverterConstants returns the Constants of the TokenConverter Smart Contract
func (c *ConverterClient) ConverterConstants() (constants *common.ConverterConstants, err error) {
	constants = new(common.ConverterConstants)
	if err := c.client.Call(func(ec *ethclient.Client) error {
		constants.TokenA, err = c.converter.TokenA(nil)
		if err != nil {
			return tracerr.Wrap(err)
		}
		constants.TokenB, err = c.converter.TokenB(nil)
		if err != nil {
			return tracerr.Wrap(err)
		}
		tokenAConsts, err := c.client.EthERC20Consts(constants.TokenA)
		if err != nil {
			return tracerr.Wrap(err)
		}
		constants.TokenADecimals = tokenAConsts.Decimals
		tokenBConsts, err := c.client.EthERC20Consts(constants.TokenB)
		if err != nil {
			return tracerr.Wrap(err)
		}
		constants.TokenBDecimals = tokenBConsts.Decimals
		return nil
	}); err != nil {
		return constants, tracerr.Wrap(err)
	}
	return constants, nil
}

// ConverterVariables returns the Variables of the TokenConverter Smart Contract
func (c *ConverterClient) ConverterVariables() (vars *common.ConverterVariables, err error) {
	vars = new(common.ConverterVariables)
	if err := c.client.Call(func(ec *ethclient.Client) error {
		blockNum, err := c.client.EthCurrentBlock()
		if err != nil {
			return tracerr.Wrap(err)
		}
		vars.EthBlockNum = blockNum
		result, err := c.converter.ConversionRate(nil)
		if err != nil {
			return tracerr.Wrap(err)
		}
		vars.Rate = common.ConversionRate{
			Num:   result.Numerator,
			Denom: result.Denominator,
		}
		vars.Owner, err = c.converter.Owner(nil)
		if err != nil {
			return tracerr.Wrap(err)
		}
		vars.Paused, err = c.converter.Paused(nil)
		return tracerr.Wrap(err)
	}); err != nil {
		return vars, tracerr.Wrap(err)
	}
	return vars, nil
}

var (
	logConverterRateUpdated          = crypto.Keccak256Hash([]byte("RateUpdated(uint256,uint256)"))
	logConverterDepositTokenB        = crypto.Keccak256Hash([]byte("DepositTokenB(address,uint256)"))
	logConverterWithdrawTokenB       = crypto.Keccak256Hash([]byte("WithdrawTokenB(address,uint256)"))
	logConverterTokensConverted      = crypto.Keccak256Hash([]byte("TokensConverted(address,uint256,uint256)"))
	logConverterPaused               = crypto.Keccak256Hash([]byte("Paused(address)"))
	logConverterUnpaused             = crypto.Keccak256Hash([]byte("Unpaused(address)"))
	logConverterOwnershipTransferred = crypto.Keccak256Hash([]byte("OwnershipTransferred(address,address)"))
)

// ConverterEventsByBlock returns the events in a block that happened in the
// TokenConverter Smart Contract and the blockHash where the events happened.
// If there are no events in that block, blockHash is nil.
func (c *ConverterClient) ConverterEventsByBlock(blockNum int64) (*ConverterEvents, *ethCommon.Hash, error) {
	var converterEvents ConverterEvents
	var blockHash *ethCommon.Hash

	query := ethereum.FilterQuery{
		FromBlock: big.NewInt(blockNum),
		ToBlock:   big.NewInt(blockNum),
		Addresses: []ethCommon.Address{
			c.address,
		},
		BlockHash: nil,
		Topics:    [][]ethCommon.Hash{},
	}

	logs, err := c.client.client.FilterLogs(context.Background(), query)
	if err != nil {
		return nil, nil, tracerr.Wrap(err)
	}
	if len(logs) > 0 {
		blockHash = &logs[0].BlockHash
	}
	for _, vLog := range logs {
		if vLog.BlockHash != *blockHash {
			log.Errorw("Block hash mismatch", "expected", blockHash.String(), "got", vLog.BlockHash.String())
			return nil, nil, tracerr.Wrap(ErrBlockHashMismatchEvent)
		}
		switch vLog.Topics[0] {
		case logConverterRateUpdated:
			var rateUpdated ConverterEventRateUpdated
			err := c.contractAbi.UnpackIntoInterface(&rateUpdated, "RateUpdated", vLog.Data)
			if err != nil {
				return nil, nil, tracerr.Wrap(err)
			}
			converterEvents.RateUpdated = append(converterEvents.RateUpdated, rateUpdated)

		case logConverterDepositTokenB:
			var deposit ConverterEventDepositTokenB
			err := c.contractAbi.UnpackIntoInterface(&deposit, "DepositTokenB", vLog.Data)
			if err != nil {
				return nil, nil, tracerr.Wrap(err)
			}
			deposit.From = ethCommon.BytesToAddress(vLog.Topics[1].Bytes())
			deposit.TxHash = vLog.TxHash
			converterEvents.DepositTokenB = append(converterEvents.DepositTokenB, deposit)

		case logConverterWithdrawTokenB:
			var withdraw ConverterEventWithdrawTokenB
			err := c.contractAbi.UnpackIntoInterface(&withdraw, "WithdrawTokenB", vLog.Data)
			if err != nil {
				return nil, nil, tracerr.Wrap(err)
			}
			withdraw.To = ethCommon.BytesToAddress(vLog.Topics[1].Bytes())
			converterEvents.WithdrawTokenB = append(converterEvents.WithdrawTokenB, withdraw)

		case logConverterTokensConverted:
			var converted ConverterEventTokensConverted
			err := c.contractAbi.UnpackIntoInterface(&converted, "TokensConverted", vLog.Data)
			if err != nil {
				return nil, nil, tracerr.Wrap(err)
			}
			converted.From = ethCommon.BytesToAddress(vLog.Topics[1].Bytes())
			converted.TxHash = vLog.TxHash
			converterEvents.TokensConverted = append(converterEvents.TokensConverted, converted)

		case logConverterPaused:
			var paused ConverterEventPaused
			err := c.contractAbi.UnpackIntoInterface(&paused, "Paused", vLog.Data)
			if err != nil {
				return nil, nil, tracerr.Wrap(err)
			}
			converterEvents.Paused = append(converterEvents.Paused, paused)

		case logConverterUnpaused:
			var unpaused ConverterEventUnpaused
			err := c.contractAbi.UnpackIntoInterface(&unpaused, "Unpaused", vLog.Data)
			if err != nil {
				return nil, nil, tracerr.Wrap(err)
			}
			converterEvents.Unpaused = append(converterEvents.Unpaused, unpaused)

		case logConverterOwnershipTransferred:
			var ownershipTransferred ConverterEventOwnershipTransferred
			ownershipTransferred.PreviousOwner = ethCommon.BytesToAddress(vLog.Topics[1].Bytes())
			ownershipTransferred.NewOwner = ethCommon.BytesToAddress(vLog.Topics[2].Bytes())
			converterEvents.OwnershipTransferred = append(converterEvents.OwnershipTransferred, ownershipTransferred)
		}
	}
	return &converterEvents, blockHash, nil
}
