package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"

	"github.com/keilerkonzept/worldcup-dashboard/internal/worldcup"
)

// buildReport writes the leaderboard and the list of finals as markdown.
func buildReport(ds *worldcup.Dataset, wins *worldcup.WinTable) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", dashboardTitle)
	fmt.Fprintf(&sb, "%d finals, %d different winners.\n\n", ds.Len(), wins.Len())

	sb.WriteString("## Titles by country\n\n")
	sb.WriteString("| Rank | Country | Titles |\n|---:|---|---:|\n")
	rank := 0
	prev := -1
	for i, wc := range wins.Rows() {
		if wc.Wins != prev {
			rank = i + 1
			prev = wc.Wins
		}
		fmt.Fprintf(&sb, "| %d | %s | %d |\n", rank, wc.Country, wc.Wins)
	}

	sb.WriteString("\n## Finals\n\n")
	sb.WriteString("| Year | Winner | Runner-up | Title |\n|---:|---|---|---|\n")
	titles := map[string]int{}
	for _, r := range ds.Records() {
		titles[r.Winner]++
		fmt.Fprintf(&sb, "| %d | %s | %s | %s |\n", r.Year, r.Winner, r.RunnerUp, humanize.Ordinal(titles[r.Winner]))
	}
	return sb.String()
}

func renderReport(markdown, style string, wrap int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	if style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out, nil
}
