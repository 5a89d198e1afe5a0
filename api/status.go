package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) getStatus(c *gin.Context) {
	status, err := a.h.GetStatusAPI()
	if err != nil {
		retSQLErr(err, c)
		return
	}
	c.JSON(http.StatusOK, status)
}

type configAPI struct {
	Version          string `json:"version"`
	ChainID          uint16 `json:"chainId"`
	ConverterAddress string `json:"converterAddress"`
	TokenA           string `json:"tokenA"`
	TokenB           string `json:"tokenB"`
	TokenADecimals   uint64 `json:"tokenADecimals"`
	TokenBDecimals   uint64 `json:"tokenBDecimals"`
}

func (a *API) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, configAPI{
		Version:          a.cfg.Version,
		ChainID:          a.cfg.ChainID,
		ConverterAddress: a.cfg.ConverterAddress.Hex(),
		TokenA:           a.cfg.Constants.TokenA.Hex(),
		TokenB:           a.cfg.Constants.TokenB.Hex(),
		TokenADecimals:   a.cfg.Constants.TokenADecimals,
		TokenBDecimals:   a.cfg.Constants.TokenBDecimals,
	})
}
