package api

import (
	"database/sql"
	"net/http"

	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/metric"
	"github.com/gin-gonic/gin"
	"github.com/hermeznetwork/tracerr"
)

func retSQLErr(err error, c *gin.Context) {
	metric.CollectError(err)
	log.Warnw("HTTP API SQL request error", "err", err)
	errMsg := tracerr.Unwrap(err)
	if errMsg.Error() == errCtxTimeout {
		c.JSON(http.StatusServiceUnavailable, apiErrorResponse{
			Message: ErrSQLTimeout,
			Code:    ErrSQLTimeoutCode,
			Type:    ErrSQLTimeoutType,
		})
	} else if errMsg == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, apiErrorResponse{
			Message: errMsg.Error(),
			Code:    ErrSQLNoRowsCode,
			Type:    ErrSQLNoRowsType,
		})
	} else {
		c.JSON(http.StatusInternalServerError, apiErrorResponse{
			Message: errMsg.Error(),
			Code:    ErrInternalCode,
			Type:    ErrInternalType,
		})
	}
}

func retBadReq(err error, c *gin.Context) {
	metric.CollectError(err)
	log.Warnw("HTTP API bad request error", "err", err)
	c.JSON(http.StatusBadRequest, apiErrorResponse{
		Message: err.Error(),
		Code:    ErrParamValidationFailedCode,
		Type:    ErrParamValidationFailedType,
	})
}
