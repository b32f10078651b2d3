// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cslb/ldtoolbox-mcp/internal/config"
	"github.com/cslb/ldtoolbox-mcp/internal/server"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "ldtoolbox-mcp",
	Short: "MCP server that resolves PLSS legal descriptions to lookup codes",
	Long: `ldtoolbox-mcp serves the legal description tools over stdio:

  parse_legal_description   description -> second-division lookups
  first_division_id         meridian/township/range/section -> FRSTDIVID
  audit_legal_descriptions  lease records -> lookups, filters and audit CSV`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err := server.NewLogger(cfg.Log.Level, verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		srv, err := server.New(cfg, logger)
		if err != nil {
			logger.Error("failed to build server", zap.Error(err))
			return err
		}

		logger.Info("serving over stdio",
			zap.String("name", cfg.Server.Name),
			zap.String("version", cfg.Server.Version))
		return server.Run(cmd.Context(), srv)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config YAML (default $CONFIG_PATH or ./config.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
