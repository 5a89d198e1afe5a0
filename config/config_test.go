package config

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTmpConfig(t *testing.T, content string) string {
	tmpFile, err := ioutil.TempFile("", "converternode-cfg")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Remove(tmpFile.Name()))
	})
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestLoadNode(t *testing.T) {
	path := writeTmpConfig(t, `
[SmartContracts]
Converter = "0x8E442975805fb1908f43050c9C1A522cB0e28D7b"

[PostgreSQL]
Password = "converter"

[Tracker]
SyncLoopInterval = "2s"
StartBlockNum = 1000

[RateUpdater]
Enabled = true
`)
	cfg, err := LoadNode(path)
	require.NoError(t, err)

	// values from the file
	assert.Equal(t, ethCommon.HexToAddress("0x8E442975805fb1908f43050c9C1A522cB0e28D7b"),
		cfg.SmartContracts.Converter)
	assert.Equal(t, "converter", cfg.PostgreSQL.Password)
	assert.Equal(t, 2*time.Second, cfg.Tracker.SyncLoopInterval.Duration)
	assert.Equal(t, int64(1000), cfg.Tracker.StartBlockNum)
	assert.True(t, cfg.RateUpdater.Enabled)

	// values from DefaultValues
	assert.Equal(t, "0.0.0.0:8086", cfg.API.Address)
	assert.Equal(t, 100, cfg.API.MaxSQLConnections)
	assert.Equal(t, 2*time.Second, cfg.API.SQLConnectionTimeout.Duration)
	assert.Equal(t, "http://localhost:8545", cfg.Web3.URL)
	assert.Equal(t, 5432, cfg.PostgreSQL.Port)
	assert.Equal(t, "converter", cfg.PostgreSQL.User)
	assert.Equal(t, uint64(300000), cfg.EthClient.CallGasLimit)
	assert.Equal(t, 500*time.Millisecond, cfg.EthClient.ReceiptLoopInterval.Duration)
	assert.Equal(t, "bitfinexV2", cfg.RateUpdater.APIType)
}

func TestLoadNodeMissingRequired(t *testing.T) {
	// no PostgreSQL.Password, no SmartContracts.Converter
	path := writeTmpConfig(t, "")
	_, err := LoadNode(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error validating configuration file")
}

func TestLoadNodeBadDuration(t *testing.T) {
	path := writeTmpConfig(t, `
[SmartContracts]
Converter = "0x8E442975805fb1908f43050c9C1A522cB0e28D7b"

[PostgreSQL]
Password = "converter"

[Tracker]
SyncLoopInterval = "notaduration"
`)
	_, err := LoadNode(path)
	require.Error(t, err)
}

func TestLoadNodeMissingFile(t *testing.T) {
	_, err := LoadNode("/tmp/this-file-does-not-exist.toml")
	require.Error(t, err)
}
