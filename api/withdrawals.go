package api

import (
	"net/http"

	"github.com/converternetwork/converter-node/api/parsers"
	"github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/gin-gonic/gin"
)

type withdrawalsResponse struct {
	Withdrawals []historydb.WithdrawalAPI `json:"withdrawals"`
	Pagination  *db.Pagination            `json:"pagination"`
}

func (a *API) getWithdrawals(c *gin.Context) {
	fromItem, limit, order, err := parsers.ParseHistoryFilters(c)
	if err != nil {
		retBadReq(err, c)
		return
	}
	withdrawals, pagination, err := a.h.GetWithdrawalsAPI(fromItem, limit, order)
	if err != nil {
		retSQLErr(err, c)
		return
	}
	c.JSON(http.StatusOK, &withdrawalsResponse{
		Withdrawals: withdrawals,
		Pagination:  pagination,
	})
}
