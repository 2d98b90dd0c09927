package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gcbaptista/campus-buzz/internal/ranking"
)

// analysisOutput is what the analyze command prints.
type analysisOutput struct {
	ranking.ScoreResult
	SuggestedCategory ranking.CategorySuggestion `json:"suggested_category"`
}

func newAnalyzeCommand() *cobra.Command {
	var in ranking.ScoringInput

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score an article's text and suggest a category without a server",
		Example: `  campus-buzz analyze --title "URGENT: Fee deadline" --description "Pay Rs. 5000 by 15/03/2024"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in.Title+in.Description+in.Body) == "" {
				return errors.New("at least one of --title, --description or --content is required")
			}

			out := analysisOutput{
				ScoreResult:       ranking.Score(in),
				SuggestedCategory: ranking.SuggestCategoryDetailed(in.Title + " " + in.Description + " " + in.Body),
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&in.Title, "title", "", "article title")
	cmd.Flags().StringVar(&in.Description, "description", "", "article description")
	cmd.Flags().StringVar(&in.Body, "content", "", "article body")
	return cmd
}
