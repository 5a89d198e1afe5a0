package eth

import (
	"github.com/ethereum/go-ethereum/accounts"
	ethKeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/hermeznetwork/tracerr"
)

// ClientInterface is the eth Client interface used by converter-node modules
// to interact with Ethereum Blockchain and smart contracts.
type ClientInterface interface {
	EthereumInterface
	ConverterInterface
}

//
// Implementation
//

// Client is used to interact with Ethereum and the TokenConverter smart contract.
type Client struct {
	EthereumClient
	ConverterClient
}

// ClientConfig is the configuration of the Client
type ClientConfig struct {
	Ethereum      EthereumConfig
	ConverterAddr ethCommon.Address
}

// NewClient creates a new Client to interact with Ethereum and the TokenConverter smart contract.
func NewClient(client *ethclient.Client, account *accounts.Account, ks *ethKeystore.KeyStore, cfg *ClientConfig) (*Client, error) {
	ethereumClient := NewEthereumClient(client, account, ks, &cfg.Ethereum)
	converterClient, err := NewConverterClient(ethereumClient, cfg.ConverterAddr)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return &Client{
		EthereumClient:  *ethereumClient,
		ConverterClient: *converterClient,
	}, nil
}
