package api

import (
	"net/http"

	"github.com/converternetwork/converter-node/api/parsers"
	"github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/gin-gonic/gin"
)

type conversionsResponse struct {
	Conversions []historydb.ConversionAPI `json:"conversions"`
	Pagination  *db.Pagination            `json:"pagination"`
}

func (a *API) getConversions(c *gin.Context) {
	addr, fromItem, limit, order, err := parsers.ParseAccountFilters(c)
	if err != nil {
		retBadReq(err, c)
		return
	}
	conversions, pagination, err := a.h.GetConversionsAPI(addr, fromItem, limit, order)
	if err != nil {
		retSQLErr(err, c)
		return
	}
	c.JSON(http.StatusOK, &conversionsResponse{
		Conversions: conversions,
		Pagination:  pagination,
	})
}
