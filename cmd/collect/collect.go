package collect

import (
	"context"
	"flag"
	"time"

	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/sig-0/policyrates/cmd/env"
)

const (
	defaultOutputDir = "."
	defaultEnvFile   = ".env"

	defaultTimeout = time.Second * 10
	defaultDelay   = time.Millisecond * 500
)

// collectCfg wraps the shared collection configuration
type collectCfg struct {
	outputDir string
	envFile   string

	timeout time.Duration
	delay   time.Duration
}

// NewCollectCmd creates the collect subcommand
func NewCollectCmd() *ffcli.Command {
	cfg := &collectCfg{}

	fs := flag.NewFlagSet("collect", flag.ExitOnError)
	cfg.registerFlags(fs)

	cmd := &ffcli.Command{
		Name:       "collect",
		ShortUsage: "collect <subcommand> [flags]",
		LongHelp:   "Collects the latest policy rate dataset",
		FlagSet:    fs,
		Exec: func(_ context.Context, _ []string) error {
			return flag.ErrHelp
		},
		Options: []ff.Option{
			// Allow using ENV variables
			ff.WithEnvVars(),
			ff.WithEnvVarPrefix(env.Prefix),
		},
	}

	cmd.Subcommands = []*ffcli.Command{
		newCollectLiveCmd(cfg),
		newCollectManualCmd(cfg),
	}

	return cmd
}

func (c *collectCfg) registerFlags(fs *flag.FlagSet) {
	fs.StringVar(
		&c.outputDir,
		"output-dir",
		defaultOutputDir,
		"the directory for the generated artifacts",
	)

	fs.StringVar(
		&c.envFile,
		"env-file",
		defaultEnvFile,
		"the path to the credential file, if any",
	)

	fs.DurationVar(
		&c.timeout,
		"timeout",
		defaultTimeout,
		"the per-request timeout for upstream sources",
	)

	fs.DurationVar(
		&c.delay,
		"delay",
		defaultDelay,
		"the courtesy delay between countries",
	)
}
