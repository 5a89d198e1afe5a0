/*
Package api implements the public interface of the converter-node using a HTTP REST API.
All the endpoints read the state from the HistoryDB, which is kept in sync with the
TokenConverter Smart Contract by the tracker.  The API never signs nor sends
transactions, it only exposes what has already happened on chain.
*/
package api

import (
	"errors"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/gin-gonic/gin"
	"github.com/hermeznetwork/tracerr"
)

// Config of the API
type Config struct {
	Version          string
	ChainID          uint16
	ConverterAddress ethCommon.Address
	Constants        common.ConverterConstants
}

// API serves HTTP requests to allow external interaction with the converter node
type API struct {
	h   *historydb.HistoryDB
	cfg Config
}

// NewAPI sets the endpoints and the appropriate handlers, but doesn't start the server
func NewAPI(
	server *gin.Engine,
	hdb *historydb.HistoryDB,
	cfg Config,
) (*API, error) {
	if hdb == nil {
		return nil, tracerr.Wrap(errors.New("cannot serve the API without a HistoryDB"))
	}
	a := &API{
		h:   hdb,
		cfg: cfg,
	}

	server.NoRoute(a.noRoute)
	v1 := server.Group("/v1")

	v1.GET("/status", a.getStatus)
	v1.GET("/config", a.getConfig)
	v1.GET("/tokens", a.getTokens)
	v1.GET("/rate-updates", a.getRateUpdates)
	v1.GET("/deposits", a.getDeposits)
	v1.GET("/withdrawals", a.getWithdrawals)
	v1.GET("/conversions", a.getConversions)

	return a, nil
}
