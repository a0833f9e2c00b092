package main

import (
	"fmt"

	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/Mug212/ats-score-resume-builder/internal/observability"
	"github.com/Mug212/ats-score-resume-builder/internal/scoring"
	"github.com/Mug212/ats-score-resume-builder/internal/sections"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume document",
	Long:  "Validates a resume document JSON file and prints its ATS score, rubric breakdown and section completion.",
	RunE:  runScore,
}

var (
	scoreInput   string
	scoreOutput  string
	scoreVerbose bool
)

// ScoreReport is the JSON written by score --out
type ScoreReport struct {
	Score      int                      `json:"score"`
	Status     scoring.Status           `json:"status"`
	Earned     map[scoring.Category]int `json:"earned"`
	Breakdown  []scoring.Award          `json:"breakdown"`
	Completion []sections.Progress      `json:"completion"`
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreInput, "in", "i", "", "Path to resume document JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to write the score report JSON (optional)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the document summary and full score card")

	if err := scoreCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	doc, err := loadDocument(scoreInput)
	if err != nil {
		return err
	}

	store := document.NewStore(document.WithDocument(doc))
	result := store.Evaluate()
	progress := sections.Report(store.Document())

	out := cmd.OutOrStdout()
	if scoreVerbose {
		printer := observability.NewPrinter(out)
		printer.PrintDocumentSummary(store.Document())
		printer.PrintScoreCard(result)
		printer.PrintCompletion(progress)
	} else {
		_, _ = fmt.Fprintf(out, "ATS Score: %d/%d (%s)\n", result.Score, scoring.MaxScore, result.Status)
		_, _ = fmt.Fprintf(out, "Sections complete: %d of %d\n", sections.CompletedCount(store.Document()), len(progress))
	}

	if scoreOutput == "" {
		return nil
	}
	report := ScoreReport{
		Score:      result.Score,
		Status:     result.Status,
		Earned:     result.Earned(),
		Breakdown:  result.Awards,
		Completion: progress,
	}
	if err := writeJSON(scoreOutput, report); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Wrote score report to %s\n", scoreOutput)
	return nil
}
