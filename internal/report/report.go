// Package report renders batch results to the output file and the terminal.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/knowledge-engine/plagcheck/internal/batch"
)

// FormatScore renders a score with exactly two decimals
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// Format returns one "name:score" line per result, newline-joined
func Format(results []batch.Result) string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.Name + ":" + FormatScore(r.Score)
	}
	return strings.Join(lines, "\n")
}

// Write formats results into the file at path, creating its directory
func Write(path string, results []batch.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Format(results)), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Summary renders results as a table for the terminal
func Summary(results []batch.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Candidate", "Score", "Note"})

	for _, r := range results {
		note := ""
		if r.Err != nil {
			note = r.Err.Error()
		}
		tw.AppendRow(table.Row{r.Name, FormatScore(r.Score), note})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
