package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/converternetwork/converter-node/config"
	dbUtils "github.com/converternetwork/converter-node/db"
	"github.com/converternetwork/converter-node/log"
	"github.com/converternetwork/converter-node/node"
	ethKeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hermeznetwork/tracerr"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	"github.com/urfave/cli/v2"
)

const (
	flagCfg      = "cfg"
	flagSK       = "privatekey"
	flagMnemonic = "mnemonic"
	flagIndex    = "index"
	flagYes      = "yes"
)

// version is set with the -ldflags "-X main.version=..." build flag
var version = "0.1.0"

func cmdImportKey(c *cli.Context) error {
	cfg, err := parseCli(c)
	if err != nil {
		return tracerr.Wrap(fmt.Errorf("error parsing flags and config: %w", err))
	}
	if cfg.EthClient.Keystore.Path == "" {
		return tracerr.Wrap(fmt.Errorf("importkey requires EthClient.Keystore.Path to be set"))
	}

	keyStore := ethKeystore.NewKeyStore(cfg.EthClient.Keystore.Path,
		ethKeystore.StandardScryptN, ethKeystore.StandardScryptP)
	hexKey := c.String(flagSK)
	hexKey = strings.TrimPrefix(hexKey, "0x")
	sk, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return tracerr.Wrap(err)
	}
	acc, err := keyStore.ImportECDSA(sk, cfg.EthClient.Keystore.Password)
	if err != nil {
		return tracerr.Wrap(err)
	}
	log.Infow("Imported private key", "addr", acc.Address.Hex())
	return nil
}

func cmdImportMnemonic(c *cli.Context) error {
	cfg, err := parseCli(c)
	if err != nil {
		return tracerr.Wrap(fmt.Errorf("error parsing flags and config: %w", err))
	}
	if cfg.EthClient.Keystore.Path == "" {
		return tracerr.Wrap(fmt.Errorf("importmnemonic requires EthClient.Keystore.Path to be set"))
	}

	wallet, err := hdwallet.NewFromMnemonic(c.String(flagMnemonic))
	if err != nil {
		return tracerr.Wrap(err)
	}
	path := hdwallet.MustParseDerivationPath(
		fmt.Sprintf("m/44'/60'/0'/0/%d", c.Int(flagIndex)))
	derivedAcc, err := wallet.Derive(path, false)
	if err != nil {
		return tracerr.Wrap(err)
	}
	sk, err := wallet.PrivateKey(derivedAcc)
	if err != nil {
		return tracerr.Wrap(err)
	}

	keyStore := ethKeystore.NewKeyStore(cfg.EthClient.Keystore.Path,
		ethKeystore.StandardScryptN, ethKeystore.StandardScryptP)
	acc, err := keyStore.ImportECDSA(sk, cfg.EthClient.Keystore.Password)
	if err != nil {
		return tracerr.Wrap(err)
	}
	log.Infow("Imported mnemonic-derived key", "path", path.String(),
		"addr", acc.Address.Hex())
	return nil
}

func cmdWipeSQL(c *cli.Context) error {
	cfg, err := parseCli(c)
	if err != nil {
		return tracerr.Wrap(fmt.Errorf("error parsing flags and config: %w", err))
	}
	yes := c.Bool(flagYes)
	if !yes {
		fmt.Print("*WARNING* Are you sure you want to delete the SQL DB? [y/N]: ")
		var input string
		if _, err := fmt.Scanln(&input); err != nil {
			return tracerr.Wrap(err)
		}
		input = strings.ToLower(input)
		if !(input == "y" || input == "yes") {
			return nil
		}
	}
	db, err := dbUtils.ConnectSQLDB(
		cfg.PostgreSQL.Port,
		cfg.PostgreSQL.Host,
		cfg.PostgreSQL.User,
		cfg.PostgreSQL.Password,
		cfg.PostgreSQL.Name,
	)
	if err != nil {
		return tracerr.Wrap(err)
	}
	log.Info("Wiping SQL DB...")
	if err := dbUtils.MigrationsDown(db.DB, 0); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}

func cmdRun(c *cli.Context) error {
	cfg, err := parseCli(c)
	if err != nil {
		return tracerr.Wrap(fmt.Errorf("error parsing flags and config: %w", err))
	}
	converterNode, err := node.NewNode(cfg, c.App.Version)
	if err != nil {
		return tracerr.Wrap(fmt.Errorf("error starting node: %w", err))
	}
	converterNode.Start()

	stopCh := make(chan interface{})

	// catch ^C to send the stop signal
	ossig := make(chan os.Signal, 1)
	signal.Notify(ossig, os.Interrupt)
	go func() {
		for sig := range ossig {
			if sig == os.Interrupt {
				stopCh <- nil
			}
		}
	}()
	<-stopCh
	converterNode.Stop()

	return nil
}

func parseCli(c *cli.Context) (*config.Node, error) {
	cfg, err := getConfig(c)
	if err != nil {
		if err := cli.ShowAppHelp(c); err != nil {
			panic(err)
		}
		return nil, tracerr.Wrap(err)
	}
	return cfg, nil
}

func getConfig(c *cli.Context) (*config.Node, error) {
	nodeCfgPath := c.String(flagCfg)
	if nodeCfgPath == "" {
		return nil, tracerr.Wrap(fmt.Errorf("required flag \"%v\" not set", flagCfg))
	}
	cfg, err := config.LoadNode(nodeCfgPath)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return cfg, nil
}

func main() {
	app := cli.NewApp()
	app.Name = "converter-node"
	app.Version = version
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     flagCfg,
			Usage:    "Node configuration `FILE`",
			Required: true,
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:    "importkey",
			Aliases: []string{},
			Usage:   "Import ethereum private key",
			Action:  cmdImportKey,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagSK,
					Usage:    "ethereum `PRIVATE_KEY` in hex",
					Required: true,
				}},
		},
		{
			Name:    "importmnemonic",
			Aliases: []string{},
			Usage:   "Import an ethereum private key derived from a BIP39 mnemonic",
			Action:  cmdImportMnemonic,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     flagMnemonic,
					Usage:    "BIP39 `MNEMONIC` phrase",
					Required: true,
				},
				&cli.IntFlag{
					Name:     flagIndex,
					Usage:    "derivation `INDEX` of the account",
					Required: false,
				}},
		},
		{
			Name:    "wipesql",
			Aliases: []string{},
			Usage: "Wipe the SQL DB (HistoryDB), " +
				"leaving the DB in a clean state",
			Action: cmdWipeSQL,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:     flagYes,
					Usage:    "automatic yes to the prompt",
					Required: false,
				}},
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the converter-node",
			Action:  cmdRun,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Printf("\nError: %v\n", tracerr.Sprint(err))
		os.Exit(1)
	}
}
