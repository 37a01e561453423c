package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lateral-intake/internal/config"
	"lateral-intake/internal/logging"
	"lateral-intake/internal/web"
)

// ServeCommand creates the serve command, which runs the intake HTTP server.
func ServeCommand() *cobra.Command {
	var (
		addr      string
		dbConnStr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the lateral intake web server",
		Long: `Run the lateral intake web server.

Serves the applicant wizard API and the admin review API. Storage is
selected through INTAKE_STORE_TYPE (postgres by default, memory for
local development).

Examples:
  # Serve with environment configuration
  ./lateral-intake serve

  # Serve on a different port against a specific database
  ./lateral-intake serve --addr=:9090 --db="postgres://localhost/intake?sslmode=disable"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, dbConnStr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides LISTEN_ADDR)")
	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runServe(addr, dbConnStr string) error {
	cfg := config.Load()
	if addr != "" {
		cfg.ListenAddr = addr
	}
	if cfg.SessionSigningKey == "" {
		return fmt.Errorf("SESSION_SIGNING_KEY must be set")
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	st, err := openStore(cfg, dbConnStr)
	if err != nil {
		return err
	}
	defer st.Close()

	if !cfg.LogDev {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := web.NewServer(cfg, st, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv.StartSessionJanitor(ctx, 10*time.Minute, time.Hour)

	log.Info("starting intake server",
		zap.String("addr", cfg.ListenAddr),
		zap.String("store", string(cfg.Store)))
	return srv.Router().Run(cfg.ListenAddr)
}
