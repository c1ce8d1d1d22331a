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
	"github.com/sig-0/policyrates/server"
	"github.com/sig-0/policyrates/server/config"
	"github.com/sig-0/policyrates/storage/file"
)

type serveFileCfg struct {
	rootCfg *serveCfg
}

// newServeFileCmd creates the serve file command
func newServeFileCmd(rootCfg *serveCfg) *ffcli.Command {
	cfg := &serveFileCfg{
		rootCfg: rootCfg,
	}

	fs := flag.NewFlagSet("file", flag.ExitOnError)
	cfg.rootCfg.registerFlags(fs)

	return &ffcli.Command{
		Name:       "file",
		ShortUsage: "serve file [flags]",
		LongHelp:   "Serves the policyrates backend from the collected artifact directory",
		FlagSet:    fs,
		Exec:       cfg.exec,
		Options: []ff.Option{
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}
}

// exec executes the serve file command
func (c *serveFileCfg) exec(ctx context.Context, _ []string) error {
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

	// Create the artifact-backed store
	store, err := file.NewStorage(c.rootCfg.config.OutputDir)
	if err != nil {
		return fmt.Errorf("unable to create artifact store: %w", err)
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
