package debugapi

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/converternetwork/converter-node/common"
	dbUtils "github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/test"
	"github.com/converternetwork/converter-node/tracker"
	"github.com/dghubble/sling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyDB *historydb.HistoryDB

type timer struct {
	time int64
}

func (t *timer) Time() int64 {
	currentTime := t.time
	t.time++
	return currentTime
}

// In order to run the test you need to run a Posgres DB with
// a database named "converter" that is accessible by
// user: "converter"
// pass: set it using the env var POSTGRES_PASS
// This can be achieved by running: POSTGRES_PASS=your_strong_pass && sudo docker run --rm --name converter-db-test -p 5432:5432 -e POSTGRES_DB=converter -e POSTGRES_USER=converter -e POSTGRES_PASSWORD=$POSTGRES_PASS -d postgres
// After running the test you can stop the container by running: sudo docker kill converter-db-test

func TestMain(m *testing.M) {
	pass := os.Getenv("POSTGRES_PASS")
	db, err := dbUtils.InitSQLDB(5432, "localhost", "converter", pass, "converter")
	if err != nil {
		panic(err)
	}
	apiConnCon := dbUtils.NewAPIConnectionController(1, time.Second)
	historyDB = historydb.NewHistoryDB(db, apiConnCon)
	result := m.Run()
	if err := db.Close(); err != nil {
		log.Error("Error closing the history DB:", err)
	}
	os.Exit(result)
}

func TestDebugAPI(t *testing.T) {
	test.WipeDB(historyDB.DB())
	var timer timer
	clientSetup := test.NewClientSetupExample()
	client := test.NewClient(true, &timer, &clientSetup.ConverterVariables.Owner,
		clientSetup)
	trk, err := tracker.NewTracker(client, historyDB, tracker.Config{StartBlockNum: 1})
	require.NoError(t, err)

	addr := "localhost:4011"
	debugAPI := NewDebugAPI(addr, trk)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		err := debugAPI.Run(ctx)
		require.Nil(t, err)
	}()

	// sync the premined block so that the stats are set
	blockData, discarded, err := trk.Sync(context.Background(), nil)
	require.NoError(t, err)
	require.Nil(t, discarded)
	require.NotNil(t, blockData)

	url := "http://" + addr + "/debug/"

	var stats tracker.Stats
	req, err := sling.New().Get(url).Path("sync/stats").ReceiveSuccess(&stats)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, req.StatusCode)
	assert.Equal(t, int64(1), stats.Sync.LastBlock.EthBlockNum)
	assert.True(t, stats.Synced())

	var vars common.ConverterVariables
	req, err = sling.New().Get(url).Path("sync/vars").ReceiveSuccess(&vars)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, req.StatusCode)
	assert.Equal(t, "3/4", vars.Rate.String())
	assert.Equal(t, clientSetup.ConverterVariables.Owner, vars.Owner)

	var consts common.ConverterConstants
	req, err = sling.New().Get(url).Path("sync/consts").ReceiveSuccess(&consts)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, req.StatusCode)
	assert.Equal(t, clientSetup.ConverterConstants.TokenA, consts.TokenA)
	assert.Equal(t, clientSetup.ConverterConstants.TokenB, consts.TokenB)

	cancel()
}
