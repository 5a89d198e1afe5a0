package debugapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/tracker"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hermeznetwork/tracerr"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func handleNoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "404 page not found",
	})
}

// DebugAPI is an http API with debugging endpoints
type DebugAPI struct {
	addr    string
	tracker *tracker.Tracker
}

// NewDebugAPI creates a new DebugAPI
func NewDebugAPI(addr string, trk *tracker.Tracker) *DebugAPI {
	return &DebugAPI{
		addr:    addr,
		tracker: trk,
	}
}

func (a *DebugAPI) handleSyncStats(c *gin.Context) {
	stats := a.tracker.Stats()
	c.JSON(http.StatusOK, stats)
}

func (a *DebugAPI) handleVars(c *gin.Context) {
	vars := a.tracker.ConverterVariables()
	c.JSON(http.StatusOK, vars)
}

func (a *DebugAPI) handleConsts(c *gin.Context) {
	consts := a.tracker.ConverterConstants()
	c.JSON(http.StatusOK, consts)
}

// Run starts the http server of the DebugAPI.  To stop it, pass a context
// with cancellation (see `debugapi_test.go` for an example).
func (a *DebugAPI) Run(ctx context.Context) error {
	api := gin.Default()
	api.NoRoute(handleNoRoute)
	api.Use(cors.Default())
	debugAPI := api.Group("/debug")

	debugAPI.GET("/metrics", gin.WrapH(promhttp.Handler()))

	debugAPI.GET("sync/stats", a.handleSyncStats)
	debugAPI.GET("sync/vars", a.handleVars)
	debugAPI.GET("sync/consts", a.handleConsts)

	debugAPIServer := &http.Server{
		Handler: api,
		// Use some hardcoded numbers that are suitable for testing
		ReadTimeout:    30 * time.Second, //nolint:gomnd
		WriteTimeout:   30 * time.Second, //nolint:gomnd
		MaxHeaderBytes: 1 << 20,          //nolint:gomnd
	}
	listener, err := net.Listen("tcp", a.addr)
	if err != nil {
		return tracerr.Wrap(err)
	}
	log.Infof("DebugAPI is ready at %v", a.addr)
	go func() {
		if err := debugAPIServer.Serve(listener); err != nil &&
			tracerr.Unwrap(err) != http.ErrServerClosed {
			log.Fatalf("Listen: %s\n", err)
		}
	}()

	<-ctx.Done()
	log.Info("Stopping DebugAPI...")
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second) //nolint:gomnd
	defer cancel()
	if err := debugAPIServer.Shutdown(ctxTimeout); err != nil {
		return tracerr.Wrap(err)
	}
	log.Info("DebugAPI done")
	return nil
}
