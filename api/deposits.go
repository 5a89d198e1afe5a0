package api

import (
	"net/http"

	"github.com/converternetwork/converter-node/api/parsers"
	"github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/gin-gonic/gin"
)

type depositsResponse struct {
	Deposits   []historydb.DepositAPI `json:"deposits"`
	Pagination *db.Pagination         `json:"pagination"`
}

func (a *API) getDeposits(c *gin.Context) {
	addr, fromItem, limit, order, err := parsers.ParseAccountFilters(c)
	if err != nil {
		retBadReq(err, c)
		return
	}
	deposits, pagination, err := a.h.GetDepositsAPI(addr, fromItem, limit, order)
	if err != nil {
		retSQLErr(err, c)
		return
	}
	c.JSON(http.StatusOK, &depositsResponse{
		Deposits:   deposits,
		Pagination: pagination,
	})
}
