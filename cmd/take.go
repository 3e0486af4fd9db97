package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/app"
)

func newTakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take",
		Short: "Start the assessment right away",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, app.StartAssessment)
		},
	}
}
