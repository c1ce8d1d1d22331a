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
	"github.com/sig-0/policyrates/storage/file"
)

type collectManualCfg struct {
	rootCfg *collectCfg
}

// newCollectManualCmd creates the manual collection command
func newCollectManualCmd(rootCfg *collectCfg) *ffcli.Command {
	cfg := &collectManualCfg{
		rootCfg: rootCfg,
	}

	fs := flag.NewFlagSet("manual", flag.ExitOnError)
	cfg.rootCfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "manual",
		ShortUsage: "collect manual [flags]",
		LongHelp:   "Collects the dataset from the curated fallback table, no live fetching",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

// exec executes the manual collection command
func (c *collectManualCfg) exec(ctx context.Context, _ []string) error {
	// Create a new logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Create the artifact store
	store, err := file.NewStorage(c.rootCfg.outputDir)
	if err != nil {
		return fmt.Errorf("unable to create artifact store: %w", err)
	}

	// Manual collection runs without live strategies, and without the
	// courtesy delay they require
	collector, err := ingest.New(
		store,
		ingest.WithLogger(logger),
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
