package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iho/hotsearch/internal/adapter/console"
	"github.com/iho/hotsearch/internal/infrastructure/config"
	"github.com/iho/hotsearch/internal/infrastructure/idgen"
	"github.com/iho/hotsearch/internal/infrastructure/logger"
	"github.com/iho/hotsearch/internal/infrastructure/metrics"
	"github.com/iho/hotsearch/internal/ranking"
	"github.com/iho/hotsearch/internal/usecase"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hotsearch",
		Short:         "Hot search leaderboard",
		Long:          `A console for a hot search leaderboard where entries climb by votes or by buying a rank.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (json, console), overrides LOG_FORMAT")

	consoleCmd := &cobra.Command{
		Use:   "console",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "type help for a list of commands")
			return a.session(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Prompt, false)
		},
	}

	var printMetrics, echo bool
	runCmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run the commands in a script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()

			if err := a.session(cmd.Context(), f, cmd.OutOrStdout(), "", echo); err != nil {
				return err
			}

			if printMetrics {
				return writeMetrics(cmd.OutOrStdout(), a.registry)
			}
			return nil
		},
	}
	runCmd.Flags().BoolVar(&printMetrics, "metrics", false, "Print metrics in Prometheus text format when the script ends")
	runCmd.Flags().BoolVar(&echo, "echo", false, "Print each command before its reply")

	rootCmd.AddCommand(consoleCmd, runCmd)
	return rootCmd
}

// app wires one in-memory hot search list to its request layer.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	registry *prometheus.Registry
	uc       *usecase.HotSearchUseCase
}

func newApp(logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Out: logOut})

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	board := ranking.New(idgen.NewULIDGenerator(time.Now), time.Now)
	uc := usecase.NewHotSearchUseCase(board, m, log, cfg.MaxNameLength)

	log.Debug().Int("max_name_length", cfg.MaxNameLength).Msg("hot search list ready")

	return &app{
		cfg:      cfg,
		log:      log,
		registry: registry,
		uc:       uc,
	}, nil
}

func (a *app) session(ctx context.Context, in io.Reader, out io.Writer, prompt string, echo bool) error {
	c := console.New(console.Config{
		Service: a.uc,
		In:      in,
		Out:     out,
		Prompt:  prompt,
		Echo:    echo,
		Logger:  a.log,
	})
	return c.Run(ctx)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
