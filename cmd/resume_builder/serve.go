package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mug212/ats-score-resume-builder/internal/config"
	"github.com/Mug212/ats-score-resume-builder/internal/logger"
	"github.com/Mug212/ats-score-resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that holds editing sessions in memory and exposes REST endpoints for editing and scoring documents.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to YAML config file (optional)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = servePort
	}

	log := logger.Init(cfg.Logger)
	logger.Component("serve").Info().
		Int("port", cfg.Server.Port).
		Bool("rate_limit", cfg.RateLimit.Enabled).
		Int("max_sessions", cfg.Server.MaxSessions).
		Msg("starting resume builder")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, log).Run(ctx)
}
