package api

import (
	"net/http"

	"github.com/converternetwork/converter-node/common"
	"github.com/gin-gonic/gin"
)

type tokensResponse struct {
	Tokens []common.Token `json:"tokens"`
}

func (a *API) getTokens(c *gin.Context) {
	tokens, err := a.h.GetTokensAPI()
	if err != nil {
		retSQLErr(err, c)
		return
	}
	c.JSON(http.StatusOK, &tokensResponse{Tokens: tokens})
}
