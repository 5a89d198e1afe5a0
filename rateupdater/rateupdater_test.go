package rateupdater

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/converternetwork/converter-node/common"
	dbUtils "github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var historyDB *historydb.HistoryDB

var testConsts = common.ConverterConstants{
	TokenA:         ethCommon.BigToAddress(big.NewInt(1)),
	TokenB:         ethCommon.BigToAddress(big.NewInt(2)),
	TokenADecimals: 18,
	TokenBDecimals: 18,
}

func TestMain(m *testing.M) {
	pass := os.Getenv("POSTGRES_PASS")
	db, err := dbUtils.InitSQLDB(5432, "localhost", "converter", pass, "converter")
	if err != nil {
		panic(err)
	}
	historyDB = historydb.NewHistoryDB(db, nil)
	result := m.Run()
	if err := db.Close(); err != nil {
		log.Error("Error closing the history DB:", err)
	}
	os.Exit(result)
}

func addTokens(t *testing.T, tokens []common.Token) {
	test.WipeDB(historyDB.DB())
	for i := range tokens {
		require.NoError(t, historyDB.AddToken(&tokens[i]))
	}
}

// newBitfinexServer serves bitfinex V2 style ticker arrays with a fixed price
// per symbol
func newBitfinexServer(prices map[string]float64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			for symbol, price := range prices {
				if r.URL.Path == "/ticker/t"+symbol+"USD" {
					fmt.Fprintf(w, `[0,0,0,0,0,0,%v,0,0,0]`, price)
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
		}))
}

// newCoingeckoServer serves CoinGecko V3 style simple token prices with a
// fixed price per contract address
func newCoingeckoServer(prices map[string]float64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			addr := r.URL.Query().Get("contract_addresses")
			price, ok := prices[addr]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			fmt.Fprintf(w, `{"%v": {"usd": %v}}`, addr, price)
		}))
}

func TestUpdatePricesBitfinex(t *testing.T) {
	addTokens(t, test.GenTokens())
	server := newBitfinexServer(map[string]float64{"TKA": 3.0, "TKB": 4.0})
	defer server.Close()

	updater, err := NewRateUpdater(server.URL+"/", APITypeBitFinexV2,
		historyDB, testConsts)
	require.NoError(t, err)
	require.NoError(t, updater.UpdateTokenList())
	updater.UpdatePrices(context.Background())

	tokens, err := historyDB.GetTokens()
	require.NoError(t, err)
	require.Equal(t, 2, len(tokens))
	for _, token := range tokens {
		require.NotNil(t, token.USD)
		require.NotNil(t, token.USDUpdate)
		assert.Less(t, time.Now().UTC().Unix()-3, token.USDUpdate.Unix())
	}

	rate, err := updater.MarketRate()
	require.NoError(t, err)
	assert.Equal(t, "3/4", rate.String())
}

func TestUpdatePricesCoingecko(t *testing.T) {
	tokens := test.GenTokens()
	addTokens(t, tokens)
	server := newCoingeckoServer(map[string]float64{
		"0x0000000000000000000000000000000000000001": 1.5,
		"0x0000000000000000000000000000000000000002": 0.5,
	})
	defer server.Close()

	updater, err := NewRateUpdater(server.URL+"/", APITypeCoingeckoV3,
		historyDB, testConsts)
	require.NoError(t, err)
	require.NoError(t, updater.UpdateTokenList())
	updater.UpdatePrices(context.Background())

	rate, err := updater.MarketRate()
	require.NoError(t, err)
	assert.Equal(t, "3/1", rate.String())
}

func TestMarketRateDecimals(t *testing.T) {
	// Token B uses 9 decimals, so the base unit fraction carries the scale
	tokens := test.GenTokens()
	tokens[1].Decimals = 9
	addTokens(t, tokens)
	server := newBitfinexServer(map[string]float64{"TKA": 3.0, "TKB": 4.0})
	defer server.Close()

	updater, err := NewRateUpdater(server.URL+"/", APITypeBitFinexV2,
		historyDB, testConsts)
	require.NoError(t, err)
	require.NoError(t, updater.UpdateTokenList())
	updater.UpdatePrices(context.Background())

	rate, err := updater.MarketRate()
	require.NoError(t, err)
	assert.Equal(t, "3/4000000000", rate.String())
}

func TestMarketRateMissingPrices(t *testing.T) {
	addTokens(t, test.GenTokens())
	updater, err := NewRateUpdater("http://localhost/", APITypeBitFinexV2,
		historyDB, testConsts)
	require.NoError(t, err)
	_, err = updater.MarketRate()
	assert.Error(t, err)
}

func TestNewRateUpdaterInvalidAPIType(t *testing.T) {
	_, err := NewRateUpdater("http://localhost/", "unknown", historyDB, testConsts)
	assert.Error(t, err)
}
