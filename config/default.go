package config

// DefaultValues is the default configuration for the converter node
const DefaultValues = `
[API]
Address = "0.0.0.0:8086"
MaxSQLConnections = 100
SQLConnectionTimeout = "2s"

[Tracker]
SyncLoopInterval = "1s"
StartBlockNum = 1

[RateUpdater]
Enabled = false
Interval = "60s"
URL = "https://api-pub.bitfinex.com/v2/"
APIType = "bitfinexV2"

[Web3]
URL = "http://localhost:8545"

[PostgreSQL]
Port = 5432
Host = "localhost"
User = "converter"
Name = "converter"

[EthClient]
CallGasLimit = 300000
DeployGasLimit = 1000000
GasPriceDiv = 100
ReceiptTimeout = "60s"
ReceiptLoopInterval = "500ms"

[EthClient.Keystore]
Path = ""
Password = ""

[Debug]
MeddlerLogs = false
GinDebugMode = false
`
