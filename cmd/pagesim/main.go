package main

import (
	"fmt"
	"io"
	"os"

	"page-replacement-simulator/internal/config"
	"page-replacement-simulator/internal/core/ports"
	"page-replacement-simulator/internal/core/service"
	"page-replacement-simulator/internal/observability"

	"github.com/urfave/cli/v2"
)

// Run using
//  go run ./cmd/pagesim <command> <flags>

var (
	configFlag = cli.StringFlag{
		Name:    "config",
		Usage:   "YAML configuration file, defaults are used if empty",
		EnvVars: []string{"PAGESIM_CONFIG"},
	}
	logLevelFlag = cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error), overrides the config file",
		EnvVars: []string{"PAGESIM_LOG_LEVEL"},
	}
	logFormatFlag = cli.StringFlag{
		Name:    "log-format",
		Usage:   "log format (text or json), overrides the config file",
		EnvVars: []string{"PAGESIM_LOG_FORMAT"},
	}
)

// env is shared by all commands of one invocation.
type env struct {
	cfg *config.Config
	svc ports.SimulationService
	in  io.Reader
	out io.Writer
}

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(in io.Reader, out io.Writer) *cli.App {
	e := &env{in: in, out: out}
	return &cli.App{
		Name:   "pagesim",
		Usage:  "page replacement simulator (FIFO, LRU, OPTIMAL)",
		Reader: in,
		Writer: out,
		Flags: []cli.Flag{
			&configFlag,
			&logLevelFlag,
			&logFormatFlag,
		},
		Before: e.setup,
		Commands: []*cli.Command{
			e.runCommand(),
			e.compareCommand(),
			e.explainCommand(),
			e.interactiveCommand(),
			e.serveCommand(),
		},
	}
}

// setup loads the configuration, applies the global flags and configures
// logging.
func (e *env) setup(ctx *cli.Context) error {
	cfg := config.DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		loaded, err := config.LoadConfigFromFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if ctx.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = ctx.String(logLevelFlag.Name)
	}
	if ctx.IsSet(logFormatFlag.Name) {
		cfg.Log.Format = ctx.String(logFormatFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := observability.InitLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}

	e.cfg = cfg
	e.svc = service.New(nil)
	return nil
}
