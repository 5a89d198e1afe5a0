package node

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/converternetwork/converter-node/api"
	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/config"
	dbUtils "github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/converternetwork/converter-node/eth"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/metric"
	"github.com/converternetwork/converter-node/rateupdater"
	"github.com/converternetwork/converter-node/test/debugapi"
	"github.com/converternetwork/converter-node/tracker"
	"github.com/ethereum/go-ethereum/accounts"
	ethKeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hermeznetwork/tracerr"
	"github.com/jinzhu/copier"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/russross/meddler"
)

// Node is the converter node, wiring the synchronization of the
// TokenConverter smart contract, the HTTP API and the token price updater.
type Node struct {
	nodeAPI     *NodeAPI
	debugAPI    *debugapi.DebugAPI
	tracker     *tracker.Tracker
	rateUpdater *rateupdater.RateUpdater
	ethClient   eth.ClientInterface

	cfg     *config.Node
	sqlConn *sqlx.DB
	ctx     context.Context
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// NewNode creates a Node
func NewNode(cfg *config.Node, version string) (*Node, error) {
	meddler.Debug = cfg.Debug.MeddlerLogs
	if !cfg.Debug.GinDebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Stablish DB connection
	db, err := dbUtils.InitSQLDB(
		cfg.PostgreSQL.Port,
		cfg.PostgreSQL.Host,
		cfg.PostgreSQL.User,
		cfg.PostgreSQL.Password,
		cfg.PostgreSQL.Name,
	)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	apiConnCon := dbUtils.NewAPIConnectionController(
		cfg.API.MaxSQLConnections,
		cfg.API.SQLConnectionTimeout.Duration,
	)

	historyDB := historydb.NewHistoryDB(db, apiConnCon)

	ethClient, err := ethclient.Dial(cfg.Web3.URL)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	chainID, err := ethClient.ChainID(context.Background())
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	var account *accounts.Account
	var keyStore *ethKeystore.KeyStore
	if cfg.EthClient.Keystore.Path != "" {
		keyStore = ethKeystore.NewKeyStore(cfg.EthClient.Keystore.Path,
			ethKeystore.StandardScryptN, ethKeystore.StandardScryptP)
		if accs := keyStore.Accounts(); len(accs) > 0 {
			account = &accs[0]
			if err := keyStore.Unlock(*account,
				cfg.EthClient.Keystore.Password); err != nil {
				return nil, tracerr.Wrap(err)
			}
			log.Infow("Using ethereum account from keystore",
				"addr", account.Address.Hex())
		}
	}

	client, err := eth.NewClient(ethClient, account, keyStore, &eth.ClientConfig{
		Ethereum: eth.EthereumConfig{
			CallGasLimit:        cfg.EthClient.CallGasLimit,
			DeployGasLimit:      cfg.EthClient.DeployGasLimit,
			GasPriceDiv:         cfg.EthClient.GasPriceDiv,
			ReceiptTimeout:      cfg.EthClient.ReceiptTimeout.Duration,
			IntervalReceiptLoop: cfg.EthClient.ReceiptLoopInterval.Duration,
		},
		ConverterAddr: cfg.SmartContracts.Converter,
	})
	if err != nil {
		return nil, tracerr.Wrap(err)
	}

	trk, err := tracker.NewTracker(client, historyDB, tracker.Config{
		StartBlockNum: cfg.Tracker.StartBlockNum,
	})
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	consts := trk.ConverterConstants()

	var rateUpdater *rateupdater.RateUpdater
	if cfg.RateUpdater.Enabled {
		rateUpdater, err = rateupdater.NewRateUpdater(
			cfg.RateUpdater.URL,
			rateupdater.APIType(cfg.RateUpdater.APIType),
			historyDB,
			*consts,
		)
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
	}

	var nodeAPI *NodeAPI
	if cfg.API.Address != "" {
		apiCfg := api.Config{
			Version:          version,
			ChainID:          uint16(chainID.Uint64()),
			ConverterAddress: cfg.SmartContracts.Converter,
		}
		if err := copier.Copy(&apiCfg.Constants, consts); err != nil {
			return nil, tracerr.Wrap(err)
		}
		nodeAPI, err = NewNodeAPI(cfg.API.Address, apiCfg, historyDB,
			ethClient, account)
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
	}

	var debugAPI *debugapi.DebugAPI
	if cfg.Debug.APIAddress != "" {
		debugAPI = debugapi.NewDebugAPI(cfg.Debug.APIAddress, trk)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Node{
		nodeAPI:     nodeAPI,
		debugAPI:    debugAPI,
		tracker:     trk,
		rateUpdater: rateUpdater,
		ethClient:   client,
		cfg:         cfg,
		sqlConn:     db,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// NodeAPI holds the node http API
type NodeAPI struct { //nolint:golint
	api    *api.API
	engine *gin.Engine
	addr   string
}

// NewNodeAPI creates a new NodeAPI (which internally calls api.NewAPI)
func NewNodeAPI(
	addr string,
	cfg api.Config,
	hdb *historydb.HistoryDB,
	ethClient *ethclient.Client,
	account *accounts.Account,
) (*NodeAPI, error) {
	engine := gin.Default()
	engine.Use(cors.Default())
	promMiddleware, err := metric.PrometheusMiddleware()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	engine.Use(promMiddleware)
	_api, err := api.NewAPI(engine, hdb, cfg)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	var accountAddr *ethCommon.Address
	if account != nil {
		accountAddr = &account.Address
	}
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/health", gin.WrapH(_api.HealthRoute(ethClient, accountAddr)))
	return &NodeAPI{
		addr:   addr,
		api:    _api,
		engine: engine,
	}, nil
}

// Run starts the http server of the NodeAPI.  To stop it, pass a context
// with cancellation.
func (a *NodeAPI) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:           a.addr,
		Handler:        a.engine,
		ReadTimeout:    30 * time.Second, //nolint:gomnd
		WriteTimeout:   30 * time.Second, //nolint:gomnd
		MaxHeaderBytes: 1 << 20,          //nolint:gomnd
	}
	go func() {
		log.Infof("NodeAPI is ready at %v", a.addr)
		if err := server.ListenAndServe(); err != nil &&
			tracerr.Unwrap(err) != http.ErrServerClosed {
			log.Fatalf("Listen: %s\n", err)
		}
	}()

	<-ctx.Done()
	log.Info("Stopping NodeAPI...")
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:gomnd
	defer cancel()
	if err := server.Shutdown(ctxTimeout); err != nil {
		return tracerr.Wrap(err)
	}
	log.Info("NodeAPI done")
	return nil
}

func (n *Node) syncLoopFn(lastBlock *common.Block) (*common.Block, time.Duration) {
	blockData, discarded, err := n.tracker.Sync(n.ctx, lastBlock)
	if err != nil {
		// case: error
		log.Errorw("Tracker.Sync", "err", err)
		return nil, n.cfg.Tracker.SyncLoopInterval.Duration
	} else if discarded != nil {
		// case: reorg
		log.Infow("Tracker.Sync reorg", "discarded", *discarded)
		return nil, time.Duration(0)
	} else if blockData != nil {
		// case: new block
		return &blockData.Block, time.Duration(0)
	} else {
		// case: no block
		return lastBlock, n.cfg.Tracker.SyncLoopInterval.Duration
	}
}

// StartTracker starts the tracker loop
func (n *Node) StartTracker() {
	log.Info("Starting Tracker...")
	n.wg.Add(1)
	go func() {
		var lastBlock *common.Block
		waitDuration := time.Duration(0)
		for {
			select {
			case <-n.ctx.Done():
				log.Info("Tracker done")
				n.wg.Done()
				return
			case <-time.After(waitDuration):
				lastBlock, waitDuration = n.syncLoopFn(lastBlock)
			}
		}
	}()
}

// proposeRate updates the conversion rate of the smart contract to the
// current market rate.  It is a no-op unless the node operates with the
// owner account and the contract is not paused.
func (n *Node) proposeRate() {
	vars := n.tracker.ConverterVariables()
	addr, err := n.ethClient.EthAddress()
	if err != nil || *addr != vars.Owner || vars.Paused {
		return
	}
	marketRate, err := n.rateUpdater.MarketRate()
	if err != nil {
		log.Warnw("RateUpdater.MarketRate", "err", err)
		return
	}
	if marketRate.Eq(vars.Rate.Reduce()) {
		return
	}
	tx, err := n.ethClient.ConverterUpdateConversionRate(marketRate.Num, marketRate.Denom)
	if err != nil {
		log.Errorw("ConverterUpdateConversionRate", "err", err)
		return
	}
	log.Infow("Proposed new conversion rate", "rate", marketRate,
		"txHash", tx.Hash().Hex())
}

// StartRateUpdater starts the price updater loop
func (n *Node) StartRateUpdater() {
	log.Info("Starting RateUpdater...")
	n.wg.Add(1)
	go func() {
		for {
			select {
			case <-n.ctx.Done():
				log.Info("RateUpdater done")
				n.wg.Done()
				return
			case <-time.After(n.cfg.RateUpdater.Interval.Duration):
				if err := n.rateUpdater.UpdateTokenList(); err != nil {
					log.Errorw("RateUpdater.UpdateTokenList", "err", err)
					continue
				}
				n.rateUpdater.UpdatePrices(n.ctx)
				n.proposeRate()
			}
		}
	}()
}

// StartDebugAPI starts the DebugAPI
func (n *Node) StartDebugAPI() {
	log.Info("Starting DebugAPI...")
	n.wg.Add(1)
	go func() {
		defer func() {
			log.Info("DebugAPI routine stopped")
			n.wg.Done()
		}()
		if err := n.debugAPI.Run(n.ctx); err != nil {
			log.Fatalw("DebugAPI.Run", "err", err)
		}
	}()
}

// StartNodeAPI starts the NodeAPI
func (n *Node) StartNodeAPI() {
	log.Info("Starting NodeAPI...")
	n.wg.Add(1)
	go func() {
		defer func() {
			log.Info("NodeAPI routine stopped")
			n.wg.Done()
		}()
		if err := n.nodeAPI.Run(n.ctx); err != nil {
			log.Fatalw("NodeAPI.Run", "err", err)
		}
	}()
}

// Start the node
func (n *Node) Start() {
	log.Info("Starting node...")
	if n.debugAPI != nil {
		n.StartDebugAPI()
	}
	if n.nodeAPI != nil {
		n.StartNodeAPI()
	}
	if n.rateUpdater != nil {
		n.StartRateUpdater()
	}
	n.StartTracker()
}

// Stop the node
func (n *Node) Stop() {
	log.Infow("Stopping node...")
	n.cancel()
	n.wg.Wait()
}
