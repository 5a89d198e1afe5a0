package test

import (
	"math/big"
	"sync"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/hermeznetwork/tracerr"

	"github.com/converternetwork/converter-node/common"
)

// TokenLedger is an in-memory ERC20-style accounts-and-allowances store that
// implements converter.TokenLedger.  Used by the test Client to give the
// converter core real insufficient-funds and insufficient-allowance
// failure modes.
type TokenLedger struct {
	mu         sync.Mutex
	consts     common.ERC20Consts
	balances   map[ethCommon.Address]*big.Int
	allowances map[ethCommon.Address]map[ethCommon.Address]*big.Int
}

// NewTokenLedger creates an empty ledger for a token with the given
// constants.
func NewTokenLedger(consts common.ERC20Consts) *TokenLedger {
	return &TokenLedger{
		consts:     consts,
		balances:   make(map[ethCommon.Address]*big.Int),
		allowances: make(map[ethCommon.Address]map[ethCommon.Address]*big.Int),
	}
}

// Consts returns the token constants
func (l *TokenLedger) Consts() common.ERC20Consts {
	return l.consts
}

// Mint credits amount to holder out of thin air.  Test control method.
func (l *TokenLedger) Mint(holder ethCommon.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[holder] = new(big.Int).Add(l.balance(holder), amount)
}

// Approve grants spender an allowance of amount over owner's funds,
// replacing any previous allowance.
func (l *TokenLedger) Approve(owner, spender ethCommon.Address, amount *big.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.allowances[owner]; !ok {
		l.allowances[owner] = make(map[ethCommon.Address]*big.Int)
	}
	l.allowances[owner][spender] = new(big.Int).Set(amount)
}

// Allowance returns the allowance granted by owner to spender.
func (l *TokenLedger) Allowance(owner, spender ethCommon.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.allowance(owner, spender))
}

// BalanceOf returns the balance of holder.
func (l *TokenLedger) BalanceOf(holder ethCommon.Address) *big.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return new(big.Int).Set(l.balance(holder))
}

// TransferFrom moves amount from owner to spender, consuming the allowance
// owner granted to spender.  Fails atomically, signalling insufficient
// balance and insufficient allowance distinctly.
func (l *TokenLedger) TransferFrom(owner, spender ethCommon.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	allowance := l.allowance(owner, spender)
	if allowance.Cmp(amount) < 0 {
		return tracerr.Wrap(common.ErrInsufficientAllowance)
	}
	balance := l.balance(owner)
	if balance.Cmp(amount) < 0 {
		return tracerr.Wrap(common.ErrInsufficientFunds)
	}
	allowance.Sub(allowance, amount)
	balance.Sub(balance, amount)
	l.balances[spender] = new(big.Int).Add(l.balance(spender), amount)
	return nil
}

// Transfer moves amount from from to to.
func (l *TokenLedger) Transfer(from, to ethCommon.Address, amount *big.Int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	balance := l.balance(from)
	if balance.Cmp(amount) < 0 {
		return tracerr.Wrap(common.ErrInsufficientFunds)
	}
	balance.Sub(balance, amount)
	l.balances[to] = new(big.Int).Add(l.balance(to), amount)
	return nil
}

// Copy returns a deep copy of the ledger.
func (l *TokenLedger) Copy() *TokenLedger {
	l.mu.Lock()
	defer l.mu.Unlock()
	cpy := NewTokenLedger(l.consts)
	for holder, balance := range l.balances {
		cpy.balances[holder] = new(big.Int).Set(balance)
	}
	for owner, spenders := range l.allowances {
		cpy.allowances[owner] = make(map[ethCommon.Address]*big.Int)
		for spender, allowance := range spenders {
			cpy.allowances[owner][spender] = new(big.Int).Set(allowance)
		}
	}
	return cpy
}

func (l *TokenLedger) balance(holder ethCommon.Address) *big.Int {
	if b, ok := l.balances[holder]; ok {
		return b
	}
	b := big.NewInt(0)
	l.balances[holder] = b
	return b
}

func (l *TokenLedger) allowance(owner, spender ethCommon.Address) *big.Int {
	if m, ok := l.allowances[owner]; ok {
		if a, ok := m[spender]; ok {
			return a
		}
	}
	if _, ok := l.allowances[owner]; !ok {
		l.allowances[owner] = make(map[ethCommon.Address]*big.Int)
	}
	a := big.NewInt(0)
	l.allowances[owner][spender] = a
	return a
}
