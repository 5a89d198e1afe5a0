// Package parsers handles the validation of the query and uri params of the
// API requests, converting them to the types the HistoryDB queries expect.
package parsers

import (
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/apitypes"
	"github.com/gin-gonic/gin"
	"github.com/hermeznetwork/tracerr"
)

// Pagination type for holding pagination params
type Pagination struct {
	FromItem *uint   `form:"fromItem"`
	Order    *string `form:"order,default=ASC" binding:"omitempty,oneof=ASC DESC"`
	Limit    *uint   `form:"limit,default=20" binding:"omitempty,min=1,max=2049"`
}

// HistoryFilters struct to get the query params of endpoints that only
// support pagination
type HistoryFilters struct {
	Pagination
}

// ParseHistoryFilters parsing query params to the pagination of a history query
func ParseHistoryFilters(c *gin.Context) (fromItem, limit *uint, order string, err error) {
	var filters HistoryFilters
	if err := c.BindQuery(&filters); err != nil {
		return nil, nil, "", tracerr.Wrap(err)
	}
	return filters.FromItem, filters.Limit, *filters.Order, nil
}

// AccountFilters struct to get the query params of endpoints that can be
// filtered by the account that sent the transactions
type AccountFilters struct {
	FromEthAddr string `form:"fromEthereumAddress"`

	Pagination
}

// ParseAccountFilters parsing query params to the filters of an account
// scoped history query
func ParseAccountFilters(c *gin.Context) (addr *ethCommon.Address,
	fromItem, limit *uint, order string, err error) {
	var filters AccountFilters
	if err := c.BindQuery(&filters); err != nil {
		return nil, nil, nil, "", tracerr.Wrap(err)
	}
	addr, err = apitypes.StrEthAddr(filters.FromEthAddr, "fromEthereumAddress")
	if err != nil {
		return nil, nil, nil, "", tracerr.Wrap(err)
	}
	return addr, filters.FromItem, filters.Limit, *filters.Order, nil
}
