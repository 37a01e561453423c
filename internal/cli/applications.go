package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lateral-intake/internal/application"
	"lateral-intake/internal/config"
	"lateral-intake/internal/wizard"
)

// CreateCommand creates the create command, which starts a new application
// for a user. Intended for operational use and local testing.
func CreateCommand() *cobra.Command {
	var (
		userID    string
		appType   string
		dbConnStr string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new application for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(userID, appType, dbConnStr)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Owning user id (required)")
	cmd.Flags().StringVar(&appType, "type", "", "Application type: individual or group")
	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")
	cmd.MarkFlagRequired("user")

	return cmd
}

func runCreate(userID, appType, dbConnStr string) error {
	t := application.Type(appType)
	if t != "" && t != application.TypeIndividual && t != application.TypeGroup {
		return fmt.Errorf("unknown application type %q", appType)
	}

	cfg := config.Load()
	st, err := openStore(cfg, dbConnStr)
	if err != nil {
		return err
	}
	defer st.Close()

	ct := wizard.NewContainer(st, zap.NewNop())
	id, err := ct.InitializeApplication(context.Background(), userID, t)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}
	fmt.Printf("Created application %s for user %s\n", id, userID)
	return nil
}

// ListCommand creates the list command.
func ListCommand() *cobra.Command {
	var (
		userID    string
		dbConnStr string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications, optionally filtered by user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(userID, dbConnStr)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Only list applications owned by this user")
	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runList(userID, dbConnStr string) error {
	cfg := config.Load()
	st, err := openStore(cfg, dbConnStr)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	var apps []*application.Application
	if userID != "" {
		apps, err = st.ListByUser(ctx, userID)
	} else {
		apps, err = st.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("listing applications: %w", err)
	}

	if len(apps) == 0 {
		fmt.Println("No applications found")
		return nil
	}
	fmt.Printf("%-38s %-14s %-12s %-24s %s\n", "ID", "USER", "TYPE", "STATUS", "UPDATED")
	for _, a := range apps {
		typ := string(a.Type)
		if typ == "" {
			typ = "-"
		}
		fmt.Printf("%-38s %-14s %-12s %-24s %s\n",
			a.ID, a.UserID, typ, a.Status, a.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// ShowCommand creates the show command, which prints one record as JSON.
func ShowCommand() *cobra.Command {
	var dbConnStr string

	cmd := &cobra.Command{
		Use:   "show <application-id>",
		Short: "Print one application record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0], dbConnStr)
		},
	}

	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runShow(id, dbConnStr string) error {
	cfg := config.Load()
	st, err := openStore(cfg, dbConnStr)
	if err != nil {
		return err
	}
	defer st.Close()

	app, err := st.Get(context.Background(), id)
	if err != nil {
		return fmt.Errorf("loading application %s: %w", id, err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(app)
}

// SubmitCommand creates the submit command.
func SubmitCommand() *cobra.Command {
	var dbConnStr string

	cmd := &cobra.Command{
		Use:   "submit <application-id>",
		Short: "Submit a draft application for review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(args[0], dbConnStr)
		},
	}

	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runSubmit(id, dbConnStr string) error {
	cfg := config.Load()
	st, err := openStore(cfg, dbConnStr)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	ct := wizard.NewContainer(st, zap.NewNop())
	if outcome, err := ct.LoadApplication(ctx, id); err != nil {
		return fmt.Errorf("loading application %s: %w", id, err)
	} else if outcome != wizard.OutcomeOK {
		return fmt.Errorf("application %s not found", id)
	}

	outcome, err := ct.SubmitApplication(ctx)
	if err != nil {
		return fmt.Errorf("submitting application %s: %w", id, err)
	}
	if outcome != wizard.OutcomeOK {
		return fmt.Errorf("application %s cannot be submitted from status %s",
			id, ct.Snapshot().Status)
	}
	fmt.Printf("Application %s submitted\n", id)
	return nil
}

// DeleteCommand creates the delete command. Drafts only.
func DeleteCommand() *cobra.Command {
	var dbConnStr string

	cmd := &cobra.Command{
		Use:   "delete <application-id>",
		Short: "Delete a draft application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args[0], dbConnStr)
		},
	}

	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runDelete(id, dbConnStr string) error {
	cfg := config.Load()
	st, err := openStore(cfg, dbConnStr)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	app, err := st.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading application %s: %w", id, err)
	}
	if app.Status != application.StatusDraft {
		return fmt.Errorf("application %s has status %s; only drafts can be deleted", id, app.Status)
	}
	if err := st.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting application %s: %w", id, err)
	}
	fmt.Printf("Application %s deleted\n", id)
	return nil
}

// TransitionCommand creates the transition command, the operational
// equivalent of the admin review endpoint.
func TransitionCommand() *cobra.Command {
	var (
		actorID   string
		dbConnStr string
	)

	cmd := &cobra.Command{
		Use:   "transition <application-id> <status>",
		Short: "Move an application to a new status",
		Long: `Move an application to a new status.

Only the legal lifecycle edges are allowed; an illegal move is rejected
and the currently legal targets are printed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(args[0], application.Status(args[1]), actorID, dbConnStr)
		},
	}

	cmd.Flags().StringVar(&actorID, "actor", "cli", "Actor id recorded in the status history")
	cmd.Flags().StringVar(&dbConnStr, "db", "", "Database connection string (overrides env var)")

	return cmd
}

func runTransition(id string, to application.Status, actorID, dbConnStr string) error {
	cfg := config.Load()
	st, err := openStore(cfg, dbConnStr)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	app, err := st.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading application %s: %w", id, err)
	}
	if !app.Transition(to, actorID) {
		return fmt.Errorf("illegal transition %s -> %s (legal targets: %v)",
			app.Status, to, app.Status.LegalTargets())
	}
	app.Touch()
	if err := st.Put(ctx, app); err != nil {
		return fmt.Errorf("persisting application %s: %w", id, err)
	}
	fmt.Printf("Application %s is now %s\n", id, app.Status)
	return nil
}
