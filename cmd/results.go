package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/scoring"
)

// reportWidth is the render width for the plain-terminal report.
const reportWidth = 80

const noResultsHint = "No completed assessment found. Run `careerfit take` to start one."

func newResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results",
		Short: "Score the stored answers and print the report",
		Args:  cobra.NoArgs,
		RunE:  runResults,
	}
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().StringP("output", "o", "", "Also write the report as Markdown to this file")
	return cmd
}

func runResults(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	rec, err := rt.store.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load answers: %w", err)
	}
	out := cmd.OutOrStdout()
	if rec == nil {
		fmt.Fprintln(out, noResultsHint)
		return nil
	}

	env := rt.env()
	r := scoring.Calculate(rec.Answers, env.Catalog)
	rt.log.Info("scored assessment",
		zap.String("attempt_id", rec.AttemptID),
		zap.Int("overall", r.OverallScore))

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		meta := report.Meta{AttemptID: rec.AttemptID, CompletedAt: rec.CompletedAt}
		if err := report.WriteMarkdown(path, r, meta); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Report written to", path)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	}

	fmt.Fprintln(out, report.Render(r, reportWidth))
	return nil
}
