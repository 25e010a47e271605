package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sadopc/tomatotask/internal/store"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	quietDayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Productivity summaries",
	}
	cmd.AddCommand(newSummaryDayCmd())
	cmd.AddCommand(newSummaryWeekCmd())
	return cmd
}

func renderSummaries(rows []store.DailySummary) string {
	var b strings.Builder
	b.WriteString(summaryHeaderStyle.Render(
		fmt.Sprintf("%-12s %6s %6s %7s", "Date", "Tasks", "Pomos", "Focus")))
	b.WriteByte('\n')
	for _, r := range rows {
		line := fmt.Sprintf("%-12s %6d %6d %6dm",
			r.Date, r.CompletedTasksCount, r.CompletedPomodorosCount, r.TotalFocusMinutes)
		if r.CompletedTasksCount == 0 && r.CompletedPomodorosCount == 0 {
			line = quietDayStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func newSummaryDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [DATE]",
		Short: "Daily summary (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format("2006-01-02")
			if len(args) == 1 {
				date = args[0]
			}

			ds, err := st.GetDailySummary(date)
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(ds)
			}
			fmt.Print(renderSummaries([]store.DailySummary{*ds}))
			return nil
		},
	}
}

func newSummaryWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week START END",
		Short: "One summary per day from START through END inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := st.GetWeeklySummary(args[0], args[1])
			if err != nil {
				return err
			}
			if jsonOut {
				return emitJSON(week)
			}
			fmt.Print(renderSummaries(week))
			return nil
		},
	}
}
