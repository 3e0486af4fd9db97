package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerfit/internal/catalog"
)

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the assessment questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			showScores, _ := cmd.Flags().GetBool("scores")
			printCatalog(cmd.OutOrStdout(), catalog.Default(), showScores)
			return nil
		},
	}
	cmd.Flags().Bool("scores", false, "Show the score behind each option")
	return cmd
}

func printCatalog(w io.Writer, cat *catalog.Catalog, showScores bool) {
	for _, sec := range catalog.AllSections() {
		qs := cat.Questions(sec)
		fmt.Fprintf(w, "%s (%d questions)\n\n", sec.DisplayName(), len(qs))
		for i, q := range qs {
			fmt.Fprintf(w, "%d. [%s] %s\n", i+1, q.Category, q.Prompt)
			for j, o := range q.Options {
				score := ""
				if showScores {
					if s, ok := o.Scored(); ok {
						score = fmt.Sprintf(" (%d)", s)
					} else {
						score = " (unscored)"
					}
				}
				fmt.Fprintf(w, "   %c) %s%s\n", 'a'+rune(j), o.Text, score)
			}
			fmt.Fprintln(w)
		}
	}
}
