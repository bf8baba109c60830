package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexrivera/archfolio/internal/analytics"
)

var (
	statsJSON bool
	statsTop  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show visitor analytics",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		exitOnError(err)

		top := cfg.Analytics.TopProjects
		if cmd.Flags().Changed("top") {
			top = statsTop
		}
		exitOnError(runStats(cmd.Context(), os.Stdout, cfg.Analytics.DBPath, top, statsJSON))
	},
}

func runStats(ctx context.Context, w io.Writer, dbPath string, top int, asJSON bool) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no analytics database at %s", dbPath)
	}
	tr, err := analytics.Open(dbPath)
	if err != nil {
		return err
	}
	defer tr.Close()

	stats, err := tr.Stats(ctx, top)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	_, err = fmt.Fprintln(w, statsTable(stats))
	return err
}

func statsTable(s *analytics.Stats) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Metric", "Value").
		Row("Total views", strconv.FormatInt(s.TotalViews, 10)).
		Row("Unique visitors", strconv.FormatInt(s.UniqueVisitors, 10)).
		Row("Views today", strconv.FormatInt(s.ViewsToday, 10)).
		Row("Views this week", strconv.FormatInt(s.ViewsThisWeek, 10))
	for _, tc := range s.TabSelections {
		t.Row("Tab: "+tc.Subject, strconv.FormatInt(tc.Count, 10))
	}
	for _, pc := range s.TopProjects {
		t.Row("Project: "+pc.Subject, strconv.FormatInt(pc.Count, 10))
	}
	return t.String()
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print JSON")
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "number of top projects to list")
	rootCmd.AddCommand(statsCmd)
}
