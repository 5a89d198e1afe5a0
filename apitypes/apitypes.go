// Package apitypes contains the types used by the API to serialize values
// coming from the SQL DB and from HTTP query parameters.
package apitypes

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math/big"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/hermeznetwork/tracerr"
)

// BigIntStr is used to scan/value *big.Int directly into strings from/to sql DBs.
// It assumes that *big.Int are inserted/fetched to/from the DB using the BigIntMeddler meddler
// defined at github.com/converternetwork/converter-node/db
type BigIntStr string

// NewBigIntStr creates a *BigIntStr from a *big.Int.
// If the provided bigInt is nil the returned *BigIntStr will also be nil
func NewBigIntStr(bigInt *big.Int) *BigIntStr {
	if bigInt == nil {
		return nil
	}
	bigIntStr := BigIntStr(bigInt.String())
	return &bigIntStr
}

// Scan implements Scanner for database/sql
func (b *BigIntStr) Scan(src interface{}) error {
	var decStr string
	switch srcTyped := src.(type) {
	case string:
		decStr = srcTyped
	case []byte:
		decStr = string(srcTyped)
	default:
		return tracerr.Wrap(fmt.Errorf("can't scan %T into apitypes.BigIntStr", src))
	}
	bigInt, ok := new(big.Int).SetString(decStr, 10)
	if !ok {
		return tracerr.Wrap(fmt.Errorf("invalid representation of a *big.Int: %q", decStr))
	}
	*b = BigIntStr(bigInt.String())
	return nil
}

// Value implements valuer for database/sql
func (b BigIntStr) Value() (driver.Value, error) {
	bigInt, ok := new(big.Int).SetString(string(b), 10)
	if !ok || bigInt == nil {
		return nil, tracerr.Wrap(errors.New("invalid representation of a *big.Int"))
	}
	return bigInt.String(), nil
}

// StrBigInt is used to unmarshal BigIntStr directly into an alias of big.Int
type StrBigInt big.Int

// UnmarshalText unmarshals a StrBigInt
func (s *StrBigInt) UnmarshalText(text []byte) error {
	bi, ok := (*big.Int)(s).SetString(string(text), 10)
	if !ok {
		return tracerr.Wrap(fmt.Errorf("could not unmarshal %s into a StrBigInt", text))
	}
	*s = StrBigInt(*bi)
	return nil
}

// StrEthAddr parses an ethereum address given as an HTTP query parameter
func StrEthAddr(addrStr, name string) (*ethCommon.Address, error) {
	if addrStr == "" {
		return nil, nil
	}
	if !ethCommon.IsHexAddress(addrStr) {
		return nil, tracerr.Wrap(fmt.Errorf(
			"invalid %s, must be an hex string starting with 0x", name))
	}
	addr := ethCommon.HexToAddress(addrStr)
	return &addr, nil
}
