package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lateral-intake/internal/config"
	"lateral-intake/internal/store"
)

// InitDBCommand creates the init-db command.
func InitDBCommand() *cobra.Command {
	var dbConnStr string

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the applications schema",
		Long: `Create the applications table and indexes if they do not exist.

Safe to run repeatedly; existing data is never touched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitDB(dbConnStr)
		},
	}

	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runInitDB(dbConnStr string) error {
	cfg := config.Load()
	connStr := cfg.ConnectionString
	if dbConnStr != "" {
		connStr = dbConnStr
	}

	st, err := store.NewPostgresStore(connStr)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.InitSchema(context.Background()); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	fmt.Printf("Schema ready on %s\n", maskConnectionString(connStr))
	return nil
}
