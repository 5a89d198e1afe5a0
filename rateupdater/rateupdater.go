/*
Package rateupdater periodically fetches the USD price of the two tokens
handled by the TokenConverter Smart Contract from an external exchange API and
stores it in the HistoryDB.  From the stored prices it can derive the exact
integer fraction that expresses the market rate between base units of both
tokens, so the contract owner can keep the on-chain conversion rate close to
the market.
*/
package rateupdater

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/converternetwork/converter-node/common"
	"github.com/converternetwork/converter-node/db/historydb"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/metric"
	"github.com/dghubble/sling"
	"github.com/hermeznetwork/tracerr"
	"github.com/mitchellh/mapstructure"
)

// APIType defines the external API used to get the token prices
type APIType string

const (
	// APITypeBitFinexV2 is the http API used by bitfinex V2
	APITypeBitFinexV2 APIType = "bitfinexV2"
	// APITypeCoingeckoV3 is the http API used by CoinGecko V3
	APITypeCoingeckoV3 APIType = "coingeckoV3"

	// usdScale is the number of decimals used when turning a quoted USD
	// price into an integer
	usdScale = 1e6
)

// IsValid returns true if the api type is supported
func (t APIType) IsValid() bool {
	return t == APITypeBitFinexV2 || t == APITypeCoingeckoV3
}

// RateUpdater definition
type RateUpdater struct {
	db         *historydb.HistoryDB
	apiURL     string
	apiType    APIType
	consts     common.ConverterConstants
	tokens     []common.Token
	httpClient *http.Client
	mu         sync.RWMutex
}

// NewRateUpdater is the constructor for the rate updater
func NewRateUpdater(apiURL string, apiType APIType, db *historydb.HistoryDB,
	consts common.ConverterConstants) (*RateUpdater, error) {
	if !apiType.IsValid() {
		return nil, tracerr.Wrap(fmt.Errorf("unsupported apiType: %v", apiType))
	}
	tr := &http.Transport{
		MaxIdleConns:       10,
		IdleConnTimeout:    10 * time.Second,
		DisableCompression: true,
	}
	return &RateUpdater{
		db:         db,
		apiURL:     apiURL,
		apiType:    apiType,
		consts:     consts,
		httpClient: &http.Client{Transport: tr},
	}, nil
}

// UpdateTokenList loads the tokens registered in the HistoryDB.  It must be
// called at least once before UpdatePrices, once the tracker has bootstrapped
// the tokens.
func (p *RateUpdater) UpdateTokenList() error {
	tokens, err := p.db.GetTokens()
	if err != nil {
		return tracerr.Wrap(err)
	}
	p.mu.Lock()
	p.tokens = tokens
	p.mu.Unlock()
	return nil
}

// coingeckoPrice is the value of the CoinGecko simple price response entries
type coingeckoPrice struct {
	USD float64 `mapstructure:"usd"`
}

func (p *RateUpdater) getTokenPriceBitfinex(ctx context.Context,
	tokenSymbol string) (float64, error) {
	state := [10]float64{}
	url := "ticker/t" + tokenSymbol + "USD"
	req, err := sling.New().Base(p.apiURL).Get(url).Request()
	if err != nil {
		return 0, tracerr.Wrap(err)
	}
	res, err := p.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return 0, tracerr.Wrap(err)
	}
	//nolint
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return 0, tracerr.Wrap(fmt.Errorf(
			"unexpected response status code: %v", res.StatusCode))
	}
	if err := json.NewDecoder(res.Body).Decode(&state); err != nil {
		return 0, tracerr.Wrap(err)
	}
	return state[6], nil
}

func (p *RateUpdater) getTokenPriceCoingecko(ctx context.Context,
	tokenAddr string) (float64, error) {
	url := "simple/token_price/ethereum?contract_addresses=" +
		tokenAddr + "&vs_currencies=usd"
	req, err := sling.New().Base(p.apiURL).Get(url).Request()
	if err != nil {
		return 0, tracerr.Wrap(err)
	}
	res, err := p.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return 0, tracerr.Wrap(err)
	}
	//nolint
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return 0, tracerr.Wrap(fmt.Errorf(
			"unexpected response status code: %v", res.StatusCode))
	}
	var raw map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return 0, tracerr.Wrap(err)
	}
	prices := make(map[string]coingeckoPrice)
	if err := mapstructure.Decode(raw, &prices); err != nil {
		return 0, tracerr.Wrap(err)
	}
	price, ok := prices[strings.ToLower(tokenAddr)]
	if !ok {
		return 0, tracerr.Wrap(fmt.Errorf("price not found for %v", tokenAddr))
	}
	return price.USD, nil
}

func (p *RateUpdater) getTokenPrice(ctx context.Context,
	token common.Token) (float64, error) {
	switch p.apiType {
	case APITypeBitFinexV2:
		return p.getTokenPriceBitfinex(ctx, token.Symbol)
	case APITypeCoingeckoV3:
		return p.getTokenPriceCoingecko(ctx, strings.ToLower(token.EthAddr.Hex()))
	}
	return 0, tracerr.Wrap(fmt.Errorf("unsupported apiType: %v", p.apiType))
}

// UpdatePrices fetches the price of every loaded token and stores it in the
// HistoryDB.  A failure on one token doesn't stop the updates of the rest.
func (p *RateUpdater) UpdatePrices(ctx context.Context) {
	p.mu.RLock()
	tokens := p.tokens
	p.mu.RUnlock()
	for _, token := range tokens {
		price, err := p.getTokenPrice(ctx, token)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			metric.CollectError(err)
			log.Warnw("rateupdater: getTokenPrice",
				"err", err, "token", token.Symbol)
			continue
		}
		if err := p.db.UpdateTokenValue(token.EthAddr, price); err != nil {
			metric.CollectError(err)
			log.Errorw("rateupdater: UpdateTokenValue",
				"err", err, "token", token.Symbol)
			continue
		}
		metric.TokenPriceUpdates.Inc()
	}
}

// priceToFraction turns a quoted USD price into an exact integer fraction
func priceToFraction(price float64) (*big.Int, error) {
	scaled := math.Round(price * usdScale)
	if scaled <= 0 || math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return nil, tracerr.Wrap(fmt.Errorf("invalid price: %v", price))
	}
	return big.NewInt(int64(scaled)), nil
}

// MarketRate derives the conversion rate between base units of token A and
// token B that matches the USD prices stored in the HistoryDB: an exact
// fraction scaled by the token decimals and reduced by GCD.
func (p *RateUpdater) MarketRate() (*common.ConversionRate, error) {
	tokens, err := p.db.GetTokens()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	var tokenA, tokenB *common.Token
	for i := range tokens {
		switch tokens[i].EthAddr {
		case p.consts.TokenA:
			tokenA = &tokens[i]
		case p.consts.TokenB:
			tokenB = &tokens[i]
		}
	}
	if tokenA == nil || tokenB == nil {
		return nil, tracerr.Wrap(fmt.Errorf("handled tokens not found in the DB"))
	}
	if tokenA.USD == nil || tokenB.USD == nil {
		return nil, tracerr.Wrap(fmt.Errorf("missing token USD prices"))
	}
	priceA, err := priceToFraction(*tokenA.USD)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	priceB, err := priceToFraction(*tokenB.USD)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	// 1 whole A is worth priceA/priceB whole B
	wholeRate, err := common.NewConversionRate(priceA, priceB)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	rate := common.RateFromDecimals(wholeRate.Reduce(),
		tokenA.Decimals, tokenB.Decimals).Reduce()
	return &rate, nil
}
