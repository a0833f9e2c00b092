package main

import (
	"fmt"

	"github.com/Mug212/ats-score-resume-builder/internal/editlog"
	"github.com/Mug212/ats-score-resume-builder/internal/observability"
	"github.com/Mug212/ats-score-resume-builder/internal/scoring"
	"github.com/Mug212/ats-score-resume-builder/internal/sections"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay an edit log from the empty document",
	Long:  "Applies every edit of a YAML or JSON edit log in order, starting from the empty document, and prints the resulting score. Stops at the first rejected edit.",
	RunE:  runReplay,
}

var (
	replayInput   string
	replayOutput  string
	replayVerbose bool
)

func init() {
	replayCmd.Flags().StringVarP(&replayInput, "in", "i", "", "Path to edit log YAML or JSON file (required)")
	replayCmd.Flags().StringVarP(&replayOutput, "out", "o", "", "Path to write the resulting document JSON (optional)")
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "Print the resulting document and full score card")

	if err := replayCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	log, err := editlog.LoadEditLog(replayInput)
	if err != nil {
		return err
	}

	snap, err := log.Replay()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if replayVerbose {
		printer := observability.NewPrinter(out)
		printer.PrintDocumentSummary(snap.Document)
		printer.PrintScoreCard(scoring.DefaultRubric().Evaluate(snap.Document))
		printer.PrintCompletion(sections.Report(snap.Document))
	}
	_, _ = fmt.Fprintf(out, "Replayed %d edits (revision %d)\n", len(log.Edits), snap.Revision)
	_, _ = fmt.Fprintf(out, "ATS Score: %d/%d (%s)\n", snap.Score, scoring.MaxScore, snap.Status)

	if replayOutput == "" {
		return nil
	}
	if err := writeJSON(replayOutput, snap.Document); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Wrote document to %s\n", replayOutput)
	return nil
}
