package serve

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
	"golang.org/x/sync/errgroup"

	"github.com/sig-0/policyrates/cmd/env"
	"github.com/sig-0/policyrates/ingest"
	"github.com/sig-0/policyrates/server"
	"github.com/sig-0/policyrates/server/config"
	"github.com/sig-0/policyrates/storage/memory"
)

type serveMemoryCfg struct {
	rootCfg *serveCfg
}

// newServeMemoryCmd creates the serve memory command
func newServeMemoryCmd(rootCfg *serveCfg) *ffcli.Command {
	cfg := &serveMemoryCfg{
		rootCfg: rootCfg,
	}

	fs := flag.NewFlagSet("memory", flag.ExitOnError)
	cfg.rootCfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "memory",
		ShortUsage: "serve memory [flags]",
		LongHelp:   "Serves the policyrates backend from an in-memory fallback dataset",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

// exec executes the serve memory command
func (c *serveMemoryCfg) exec(ctx context.Context, _ []string) error {
	// Read the server configuration, if any
	if c.rootCfg.configPath != "" {
		serverCfg, err := config.Read(c.rootCfg.configPath)
		if err != nil {
			return fmt.Errorf("unable to read server config, %w", err)
		}

		c.rootCfg.config = serverCfg
	}

	// Create a new logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Create an in-memory store
	store := memory.NewStorage()

	// Populate the store with the curated fallback dataset, so the
	// server has data without a prior collection run
	collector, err := ingest.New(
		store,
		ingest.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("unable to create collector: %w", err)
	}

	if _, err := collector.Run(ctx); err != nil {
		return fmt.Errorf("unable to prepare dataset: %w", err)
	}

	// Create the server instance
	s, err := server.New(
		store,
		server.WithLogger(logger),
		server.WithConfig(c.rootCfg.config),
	)
	if err != nil {
		return fmt.Errorf("unable to create server, %w", err)
	}

	runCtx, cancelFn := signal.NotifyContext(
		ctx,
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancelFn()

	group, gCtx := errgroup.WithContext(runCtx)

	group.Go(func() error {
		return s.Serve(gCtx)
	})

	return group.Wait()
}
