package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/app"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "careerfit",
		Short: "Compliance automation career self-assessment",
		Long: "CareerFit is a terminal self-assessment that scores how well the " +
			"Compliance Automation Specialist role fits you, with a WISCAR profile, " +
			"career matches and a learning path.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := app.StartWelcome
			if skip, _ := cmd.Flags().GetBool("skip-intro"); skip {
				start = app.StartHome
			}
			return runApp(cmd, start)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default: config.yaml in the user config dir or working dir)")
	pf.String("db", "", "Path to the SQLite database file (overrides CAREERFIT_STORE_PATH)")
	pf.String("store", "", "Answer store backend: sqlite, redis or memory")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-file", "", "Log file path, or \"stderr\"")
	cmd.Flags().Bool("skip-intro", false, "Skip the intro animation")

	cmd.AddCommand(
		newTakeCmd(),
		newResultsCmd(),
		newResetCmd(),
		newQuestionsCmd(),
		newVersionCmd(),
	)
	return cmd
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// runApp opens the runtime and launches the TUI.
func runApp(cmd *cobra.Command, start app.Start) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := app.Run(cmd.Context(), app.Options{Env: rt.env(), Start: start}); err != nil {
		return fmt.Errorf("careerfit: %w", err)
	}
	return nil
}
