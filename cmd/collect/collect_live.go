package collect

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/policyrates/cmd/env"
	"github.com/sig-0/policyrates/ingest"
	"github.com/sig-0/policyrates/keys"
	"github.com/sig-0/policyrates/storage/file"
)

type collectLiveCfg struct {
	rootCfg *collectCfg
}

// newCollectLiveCmd creates the live collection command
func newCollectLiveCmd(rootCfg *collectCfg) *ffcli.Command {
	cfg := &collectLiveCfg{
		rootCfg: rootCfg,
	}

	fs := flag.NewFlagSet("live", flag.ExitOnError)
	cfg.rootCfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "live",
		ShortUsage: "collect live [flags]",
		LongHelp:   "Collects the dataset from live central bank sources, degrading to fallback data",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

// exec executes the live collection command
func (c *collectLiveCfg) exec(ctx context.Context, _ []string) error {
	// Create a new logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Resolve the API credentials
	credentials, err := keys.Load(c.rootCfg.envFile)
	if err != nil {
		logger.Warn(
			"unable to fully load credentials",
			"err", err,
		)
	}

	if credentials[keys.FREDAPIKey] == "" {
		logger.Warn("FRED API key not set, US data degrades to fallback")
	}

	if credentials[keys.ECOSAPIKey] == "" {
		logger.Warn("ECOS API key not set, Korean data degrades to fallback")
	}

	// Create the artifact store
	store, err := file.NewStorage(c.rootCfg.outputDir)
	if err != nil {
		return fmt.Errorf("unable to create artifact store: %w", err)
	}

	// Create the collector with the live strategy set
	collector, err := ingest.New(
		store,
		ingest.WithLogger(logger),
		ingest.WithStrategies(defaultStrategies(credentials, c.rootCfg.timeout)),
		ingest.WithDelay(c.rootCfg.delay),
	)
	if err != nil {
		return fmt.Errorf("unable to create collector: %w", err)
	}

	runCtx, cancelFn := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelFn()

	records, err := collector.Run(runCtx)
	if err != nil {
		return fmt.Errorf("unable to collect dataset: %w", err)
	}

	logger.Info(
		"artifacts written",
		"dataset", store.DatasetPath(),
		"script", store.ScriptPath(),
		"countries", len(records),
	)

	return nil
}
