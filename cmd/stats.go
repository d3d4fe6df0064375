package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jdhalbert/tomodoro/internal/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's interval stats and recent history",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	theme := appConfig.Theme

	stats, err := intervalService.GetDailyStats(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to load daily stats: %w", err)
	}
	recent, err := intervalService.GetRecent(ctx, 10)
	if err != nil {
		return fmt.Errorf("failed to load recent intervals: %w", err)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTitle))
	workStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorWork))
	breakStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorBreak))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorPrompt))

	fmt.Println(titleStyle.Render("Today"))
	fmt.Printf("  %s  %d completed (%s focused)\n",
		workStyle.Render("work"), stats.WorkIntervals, formatDuration(stats.TotalWorkTime))
	fmt.Printf("  %s %d completed\n", breakStyle.Render("break"), stats.BreakIntervals)

	if len(recent) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println(titleStyle.Render("Recent"))
	for _, interval := range recent {
		style := workStyle
		if interval.Mode == domain.ModeBreak {
			style = breakStyle
		}
		fmt.Printf("  %s %s %s %s\n",
			dimStyle.Render(interval.StartedAt.Format("Mon 15:04")),
			style.Render(fmt.Sprintf("%-5s", interval.Mode)),
			fmt.Sprintf("%2dm", interval.Minutes),
			dimStyle.Render(string(interval.Status)),
		)
	}
	return nil
}

// formatDuration renders a duration as "2h05m" or "45m".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return strings.TrimSpace(fmt.Sprintf("%dh%02dm", hours, minutes))
}
