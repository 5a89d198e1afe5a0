package api

import (
	"net/http"

	"github.com/converternetwork/converter-node/api/parsers"
	"github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/gin-gonic/gin"
)

type rateUpdatesResponse struct {
	RateUpdates []historydb.RateUpdateAPI `json:"rateUpdates"`
	Pagination  *db.Pagination            `json:"pagination"`
}

func (a *API) getRateUpdates(c *gin.Context) {
	fromItem, limit, order, err := parsers.ParseHistoryFilters(c)
	if err != nil {
		retBadReq(err, c)
		return
	}
	rateUpdates, pagination, err := a.h.GetRateUpdatesAPI(fromItem, limit, order)
	if err != nil {
		retSQLErr(err, c)
		return
	}
	c.JSON(http.StatusOK, &rateUpdatesResponse{
		RateUpdates: rateUpdates,
		Pagination:  pagination,
	})
}
