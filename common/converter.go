package common

import (
	"math/big"

	ethCommon "github.com/ethereum/go-ethereum/common"
)

// ConverterConstants are the constants of the TokenConverter Smart Contract
type ConverterConstants struct {
	// TokenA is the address of the token accepted by the converter
	TokenA ethCommon.Address `json:"tokenA"`
	// TokenB is the address of the token paid out by the converter
	TokenB ethCommon.Address `json:"tokenB"`
	// TokenADecimals is the number of decimals of token A
	TokenADecimals uint64 `json:"tokenADecimals"`
	// TokenBDecimals is the number of decimals of token B
	TokenBDecimals uint64 `json:"tokenBDecimals"`
}

// ConverterVariables are the variables of the TokenConverter Smart Contract
type ConverterVariables struct {
	EthBlockNum int64             `json:"ethereumBlockNum"`
	Rate        ConversionRate    `json:"rate"`
	Owner       ethCommon.Address `json:"owner"`
	Paused      bool              `json:"paused"`
}

// Copy returns a deep copy of the Variables
func (v *ConverterVariables) Copy() *ConverterVariables {
	vCpy := *v
	vCpy.Rate = v.Rate.Copy()
	return &vCpy
}

// ERC20Consts are the constants defined in a particular ERC20 Token instance
type ERC20Consts struct {
	Name     string
	Symbol   string
	Decimals uint64
}

// TokenAmount is a token amount at a given block, used by the status API
type TokenAmount struct {
	Token  ethCommon.Address `json:"token"`
	Amount *big.Int          `json:"amount"`
}
