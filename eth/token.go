package eth

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/converternetwork/converter-node/eth/contracts/erc20"
	"github.com/hermeznetwork/tracerr"
)

func newCallOpts() *bind.CallOpts {
	return &bind.CallOpts{
		Pending: false,
	}
}

// TokenClient is the implementation of the interface to an ERC20 Token Smart Contract in ethereum.
type TokenClient struct {
	client  *EthereumClient
	erc20   *erc20.ERC20
	address ethCommon.Address
	name    string
	opts    *bind.CallOpts
}

// NewTokenClient creates a new TokenClient
func NewTokenClient(client *EthereumClient, address ethCommon.Address) (*TokenClient, error) {
	_erc20, err := erc20.NewERC20(address, client.Client())
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	opts := newCallOpts()
	name, err := _erc20.Name(opts)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &TokenClient{
		client:  client,
		erc20:   _erc20,
		address: address,
		name:    name,
		opts:    opts,
	}, nil
}

// Address returns the address of the token contract
func (c *TokenClient) Address() ethCommon.Address {
	return c.address
}

// Name returns the name of the token
func (c *TokenClient) Name() string {
	return c.name
}

// BalanceOf returns the token balance of an account
func (c *TokenClient) BalanceOf(account ethCommon.Address) (balance *big.Int, err error) {
	if err := c.client.Call(func(ec *ethclient.Client) error {
		balance, err = c.erc20.BalanceOf(c.opts, account)
		return tracerr.Wrap(err)
	}); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return balance, nil
}

// Allowance returns the remaining amount of tokens that spender is allowed to
// spend on behalf of owner
func (c *TokenClient) Allowance(owner, spender ethCommon.Address) (allowance *big.Int, err error) {
	if err := c.client.Call(func(ec *ethclient.Client) error {
		allowance, err = c.erc20.Allowance(c.opts, owner, spender)
		return tracerr.Wrap(err)
	}); err != nil {
		return nil, tracerr.Wrap(err)
	}
	return allowance, nil
}

// Approve sets the allowance of spender over the caller's tokens
func (c *TokenClient) Approve(spender ethCommon.Address, amount *big.Int) (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.erc20.Approve(auth, spender, amount)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed approve of token %v: %w", c.name, err))
	}
	return tx, nil
}

// Transfer moves tokens from the caller's account to recipient
func (c *TokenClient) Transfer(recipient ethCommon.Address, amount *big.Int) (tx *types.Transaction, err error) {
	if tx, err = c.client.CallAuth(
		0,
		func(ec *ethclient.Client, auth *bind.TransactOpts) (*types.Transaction, error) {
			return c.erc20.Transfer(auth, recipient, amount)
		},
	); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("Failed transfer of token %v: %w", c.name, err))
	}
	return tx, nil
}
