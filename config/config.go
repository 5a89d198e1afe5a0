package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/BurntSushi/toml"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/hermeznetwork/tracerr"
	"gopkg.in/go-playground/validator.v9"
)

// Duration is a wrapper type that parses time duration from text.
type Duration struct {
	time.Duration `validate:"required"`
}

// UnmarshalText unmarshalls time duration from text.
func (d *Duration) UnmarshalText(data []byte) error {
	duration, err := time.ParseDuration(string(data))
	if err != nil {
		return tracerr.Wrap(err)
	}
	d.Duration = duration
	return nil
}

// Node is the configuration of the converter node.
type Node struct {
	API struct {
		// Address where the API will listen if set
		Address string
		// MaxSQLConnections is the maximum amount of API connections
		// that can use the SQL database simultaneously
		MaxSQLConnections int `validate:"required"`
		// SQLConnectionTimeout is the maximum amount of time that an
		// API request can wait to establish an SQL connection
		SQLConnectionTimeout Duration
	} `validate:"required"`
	Tracker struct {
		// SyncLoopInterval is the interval between attempts to
		// synchronize a new block from an ethereum node once the
		// tracker is fully synced
		SyncLoopInterval Duration `validate:"required"`
		// StartBlockNum is the block number in which the converter
		// smart contract was deployed.  Blocks below it are never
		// queried nor stored.
		StartBlockNum int64 `validate:"required"`
	} `validate:"required"`
	RateUpdater struct {
		// Enabled activates the periodic update of token prices
		Enabled bool
		// Interval between price updates
		Interval Duration
		// URL of the token price provider
		URL string
		// APIType of the token price provider. Valid values:
		// "bitfinexV2", "coingeckoV3"
		APIType string
	}
	SmartContracts struct {
		// Converter is the address of the TokenConverter smart
		// contract
		Converter ethCommon.Address `validate:"required"`
	} `validate:"required"`
	Web3 struct {
		// URL is the URL of the web3 ethereum-node RPC server.  Only
		// geth is officially supported.
		URL string `validate:"required"`
	} `validate:"required"`
	PostgreSQL struct {
		// Port of the PostgreSQL server
		Port int `validate:"required"`
		// Host of the PostgreSQL server
		Host string `validate:"required"`
		// User of the PostgreSQL server
		User string `validate:"required"`
		// Password of the PostgreSQL server
		Password string `validate:"required"`
		// Name of the PostgreSQL database
		Name string `validate:"required"`
	} `validate:"required"`
	EthClient struct {
		// CallGasLimit is the default gas limit set for ethereum
		// calls against the converter smart contract
		CallGasLimit uint64 `validate:"required"`
		// DeployGasLimit is the gas limit set for deploying smart
		// contracts
		DeployGasLimit uint64 `validate:"required"`
		// GasPriceDiv is the gas price division
		GasPriceDiv uint64 `validate:"required"`
		// ReceiptTimeout is the timeout to wait for an ethereum
		// transaction receipt before giving up
		ReceiptTimeout Duration `validate:"required"`
		// ReceiptLoopInterval is the waiting interval between receipt
		// checks of ethereum transactions
		ReceiptLoopInterval Duration `validate:"required"`
		Keystore            struct {
			// Path to the keystore
			Path string
			// Password used to decrypt the keys in the keystore
			Password string
		}
	} `validate:"required"`
	Debug struct {
		// APIAddress is the address where the debugAPI will listen if
		// set
		APIAddress string
		// MeddlerLogs enables meddler debug mode, where unused
		// columns and struct fields will be logged
		MeddlerLogs bool
		// GinDebugMode sets Gin-Gonic (the web framework) to run in
		// debug mode
		GinDebugMode bool
	}
}

// Load loads a generic config.
func Load(path string, cfg interface{}) error {
	bs, err := ioutil.ReadFile(path) //nolint:gosec
	if err != nil {
		return tracerr.Wrap(err)
	}
	cfgToml := string(bs)
	if _, err := toml.Decode(cfgToml, cfg); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}

// LoadNode loads the Node configuration from path.  Defaults from
// DefaultValues are applied first, then overridden by the file contents.
func LoadNode(path string) (*Node, error) {
	var cfg Node
	if _, err := toml.Decode(DefaultValues, &cfg); err != nil {
		return nil, tracerr.Wrap(err)
	}
	if err := Load(path, &cfg); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("error loading node configuration file: %w", err))
	}
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("error validating configuration file: %w", err))
	}
	return &cfg, nil
}
