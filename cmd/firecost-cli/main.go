package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"firecost/internal/agent"
	"firecost/internal/cli"
	"firecost/internal/dataset"
	"firecost/internal/insights"
	applog "firecost/internal/log"
	"firecost/internal/session"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	costStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func main() {
	year := flag.Int("year", dataset.DefaultYear, "dataset year to analyze")
	topN := flag.Int("top", insights.DefaultTopN, "number of buckets to keep when compacting")
	compact := flag.Bool("compact", false, "keep only the highest-cost buckets")
	flag.Parse()

	cli.LoadEnvFile()

	// Keep stdout clean for the report; pipeline logs go to stderr.
	applog.SetDefault(applog.New(applog.Config{
		Component: applog.ComponentApp,
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		}),
	}))

	sessions := session.NewManager(1, time.Hour)
	analyst := agent.NewAnalyst(dataset.NewFixture(), agent.NewSummarizer())

	analysis, err := analyst.Analyze(context.Background(), sessions.Create(), agent.AnalyzeRequest{
		Year:    *year,
		TopN:    *topN,
		Compact: *compact,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "firecost:", err)
		os.Exit(1)
	}

	render(analysis)
}

func render(analysis agent.Analysis) {
	title := fmt.Sprintf("Wildfire Cost Insights (%d)", analysis.Year)
	if analysis.Compacted {
		title += fmt.Sprintf(" / top %d buckets", len(analysis.Buckets))
	}
	fmt.Println(titleStyle.Render(title))
	fmt.Println()

	fmt.Println(labelStyle.Render(fmt.Sprintf("%-12s %-12s %14s %8s", "Region", "Category", "Total Cost ($)", "Hours")))
	for _, b := range analysis.Buckets {
		cost := costStyle.Render(fmt.Sprintf("%14s", insights.FormatAmount(b.TotalCost)))
		fmt.Printf("%-12s %-12s %s %8.1f\n", b.Region, b.Category, cost, b.TotalHours)
	}
	fmt.Println()

	fmt.Println(sectionStyle.Render("Key Insights"))
	fmt.Printf("  Largest bucket:  %s %s ($%s)\n",
		analysis.Report.Max.Region, analysis.Report.Max.Category, insights.FormatAmount(analysis.Report.Max.TotalCost))
	fmt.Printf("  Smallest bucket: %s %s ($%s)\n",
		analysis.Report.Min.Region, analysis.Report.Min.Category, insights.FormatAmount(analysis.Report.Min.TotalCost))
	for _, ct := range analysis.Report.CategoryTotals {
		fmt.Printf("  %-16s $%s\n", ct.Category+":", insights.FormatAmount(ct.TotalCost))
	}
	fmt.Println()

	fmt.Println(sectionStyle.Render("Summary"))
	fmt.Println("  " + analysis.Narrative)
	fmt.Println()
	fmt.Println(labelStyle.Render("session " + analysis.SessionID))
}
