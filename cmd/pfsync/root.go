package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fr0stylo/pfsync/internal/app/bootstrap"
	"github.com/fr0stylo/pfsync/internal/config"
	"github.com/fr0stylo/pfsync/internal/observability"
)

type cli struct {
	out      io.Writer
	debug    bool
	json     bool
	cfg      config.Config
	log      *slog.Logger
	shutdown observability.ShutdownFunc
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}
	root := &cobra.Command{
		Use:               "pfsync",
		Short:             "Synchronize listings and agents from the property API",
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if c.shutdown == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return c.shutdown(ctx)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&c.json, "json", false, "print JSON output")

	root.AddCommand(
		c.syncCmd(),
		c.statusCmd(),
		c.unlockCmd(),
		c.tokenCmd(),
		c.webhookCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}
	cfg, err := config.LoadForTool()
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	c.log = observability.NewLogger(os.Stderr, level)
	slog.SetDefault(c.log)

	c.shutdown, err = observability.SetupOpenTelemetry(cmd.Context(), c.log, observability.OpenTelemetryConfig(cfg.Observability))
	return err
}

func (c *cli) engine(ctx context.Context, opts bootstrap.Options) (*bootstrap.Engine, error) {
	return bootstrap.New(ctx, c.cfg, c.log, opts)
}
