// lateral-intake manages lateral-hire applications for a law firm: the
// applicant-facing wizard API, the admin review API, and operational
// commands over the application store.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"lateral-intake/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:           "lateral-intake",
		Short:         "Lateral-hire application intake service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		cli.ServeCommand(),
		cli.InitDBCommand(),
		cli.CreateCommand(),
		cli.ListCommand(),
		cli.ShowCommand(),
		cli.SubmitCommand(),
		cli.DeleteCommand(),
		cli.TransitionCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
