package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kapu/paderewski-ai-go/internal/app"
	"github.com/kapu/paderewski-ai-go/internal/config"
	"github.com/kapu/paderewski-ai-go/internal/constants"
	"github.com/kapu/paderewski-ai-go/internal/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paderewski",
	Short: "Paderewski Piano Competition assistant",
	Long:  "Scrapes participant and jury lists from the competition sites, predicts the winner with an LLM and answers questions over HTTP.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		// Only serve writes logs to stdout; other commands print results there.
		l, err := util.NewLogger(util.LoggerOptions{
			Level:  cfg.Logging.Level,
			File:   cfg.Logging.File,
			Format: cfg.Logging.Format,
			Stderr: cmd.Name() != "serve",
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

// buildContainer assembles services with a bounded setup deadline.
func buildContainer(ctx context.Context) (*app.Container, error) {
	buildCtx, cancel := context.WithTimeout(ctx, constants.ServerConfig.BuildTimeout)
	defer cancel()
	return app.Build(buildCtx, cfg, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
