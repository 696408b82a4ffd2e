package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poise/poisepms/internal/app"
	"github.com/poise/poisepms/internal/data"
	"github.com/powerman/must"
	"github.com/powerman/structlog"
)

const connectionHelp = `Invalid credentials.

Please ensure that your %[1]s database server is running
and that it has a database called '%[2]s'.

The connection settings are read from %[3]s:
    user:     %[4]s
    host:     %[5]s:%[6]d

The application will now close...
`

func main() {
	log := structlog.New()

	configFile := flag.String("config", app.DefaultConfigFileName(), "path to the yaml or toml config file")
	logLevel := flag.String("log.level", "", "overrides log_level of the config file: dbg | inf | wrn | err")
	flag.Parse()

	cfg, err := app.LoadConfig(*configFile)
	must.AbortIf(err)
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	structlog.DefaultLogger.SetLogLevel(structlog.ParseLevel(cfg.LogLevel))
	log.Debug("config loaded", "file", *configFile, "driver", cfg.Database.Driver)

	db, err := data.Open(cfg.Database)
	if err != nil {
		log.PrintErr(err)
		c := cfg.Database
		fmt.Printf("\u001B[31m"+connectionHelp+"\u001B[0m", c.Driver, c.Name, *configFile, c.User, c.Host, c.Port)
		os.Exit(0)
	}
	defer log.ErrIfFail(db.Close)

	if err := app.Run(db, cfg, os.Stdin, os.Stdout); err != nil {
		log.PrintErr(err)
	}
}

func init() {
	structlog.DefaultLogger.
		SetPrefixKeys(
			structlog.KeyApp, structlog.KeyPID, structlog.KeyLevel, structlog.KeyUnit, structlog.KeyTime,
		).
		SetDefaultKeyvals(
			structlog.KeyApp, filepath.Base(os.Args[0]),
			structlog.KeySource, structlog.Auto,
		).
		SetSuffixKeys(structlog.KeySource).
		SetKeysFormat(map[string]string{
			structlog.KeyTime:   " %[2]s",
			structlog.KeySource: " %6[2]s",
			structlog.KeyUnit:   " %6[2]s",
		}).SetTimeFormat("15:04:05")
}
