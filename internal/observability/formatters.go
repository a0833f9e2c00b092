// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Mug212/ats-score-resume-builder/internal/schemas"
	"github.com/Mug212/ats-score-resume-builder/internal/scoring"
	"github.com/Mug212/ats-score-resume-builder/internal/sections"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// PrintScoreCard outputs the score, its label and points earned per category.
func (p *Printer) PrintScoreCard(result scoring.Result) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("ATS Score: %d/%d  (%s)\n", result.Score, scoring.MaxScore, result.Status))
	sb.WriteString(fmt.Sprintf("%s\n\n", scoreBar(result.Score)))

	possible := make(map[scoring.Category]int)
	var order []scoring.Category
	for _, a := range result.Awards {
		if _, seen := possible[a.Category]; !seen {
			order = append(order, a.Category)
		}
		possible[a.Category] += a.Points
	}

	earned := result.Earned()
	for _, category := range order {
		sb.WriteString(fmt.Sprintf("%-12s %3d / %-3d\n", category, earned[category], possible[category]))
	}

	var missed []string
	for _, a := range result.Awards {
		if !a.Earned {
			missed = append(missed, fmt.Sprintf("+%d  %s", a.Points, a.Rule))
		}
	}
	if len(missed) > 0 {
		sb.WriteString("\nNext steps:\n")
		count := min(len(missed), maxItemsToShow)
		for _, m := range missed[:count] {
			sb.WriteString(fmt.Sprintf("• %s\n", m))
		}
		if len(missed) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(missed)-maxItemsToShow))
		}
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

func scoreBar(score int) string {
	const width = 40
	filled := scoring.Clamp(score) * width / scoring.MaxScore
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// PrintCompletion outputs one line per section with its completion mark.
func (p *Printer) PrintCompletion(progress []sections.Progress) {
	if len(progress) == 0 {
		return
	}

	var sb strings.Builder
	done := 0
	for _, s := range progress {
		mark := "○"
		if s.Completed {
			mark = "✓"
			done++
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", mark, s.Name))
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d sections complete", done, len(progress)))

	p.printBox("SECTIONS", sb.String())
}

// PrintDocumentSummary outputs the headline content of each section.
func (p *Printer) PrintDocumentSummary(doc types.Document) {
	var sb strings.Builder

	name := doc.PersonalInfo.FullName
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if doc.PersonalInfo.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.PersonalInfo.Email))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Experience (%d, %d achievements):\n",
		len(doc.WorkExperience), scoring.FilledAchievementCount(&doc)))
	count := min(len(doc.WorkExperience), maxItemsToShow)
	for _, exp := range doc.WorkExperience[:count] {
		end := exp.EffectiveEndDate()
		if exp.Current {
			end = "present"
		}
		sb.WriteString(fmt.Sprintf("• %s @ %s (%s - %s)\n", exp.JobTitle, exp.Company, exp.StartDate, end))
	}

	sb.WriteString(fmt.Sprintf("\nEducation: %d  Projects: %d  Certifications: %d\n",
		len(doc.Education), len(doc.Projects), len(doc.Certifications)))

	if len(doc.Skills.Technical) > 0 {
		sb.WriteString(fmt.Sprintf("Technical: %s\n", strings.Join(doc.Skills.Technical, ", ")))
	}
	if len(doc.Skills.Soft) > 0 {
		sb.WriteString(fmt.Sprintf("Soft:      %s\n", strings.Join(doc.Skills.Soft, ", ")))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintValidationErrors outputs schema validation failures.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidationErrors(verr *schemas.ValidationError) {
	if verr == nil || len(verr.Errors) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(verr.Errors)))

	for i, fe := range verr.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", fe.Message))
		if i < len(verr.Errors)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SCHEMA VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}
