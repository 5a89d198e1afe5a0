package api

import (
	"context"
	"net/http"
	"time"

	"github.com/converternetwork/converter-node/health/checkers"
	"github.com/dimiro1/health"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// HealthRoute returns the http handler of the health endpoint, reporting the
// state of the HistoryDB connection and, when available, the ether balance of
// the account the node operates with
func (a *API) HealthRoute(ethClient *ethclient.Client, account *ethCommon.Address) http.Handler {
	healthHandler := health.NewHandler()

	if a.h != nil {
		historyDBChecker := checkers.NewCheckerWithDB(a.h.DB().DB)
		healthHandler.AddChecker("historyDB", historyDBChecker)
	}
	healthHandler.AddInfo("version", a.cfg.Version)
	t := time.Now().UTC()
	healthHandler.AddInfo("timestamp", t)
	if ethClient != nil && account != nil {
		balance, err := ethClient.BalanceAt(context.TODO(), *account, nil)
		if err != nil {
			return healthHandler
		}
		healthHandler.AddInfo("accountBalance", balance.String())
	}
	return healthHandler
}
