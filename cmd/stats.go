package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/circuitstrategies/circuitbot/internal/db"
	"github.com/circuitstrategies/circuitbot/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show which topics visitors ask about",
	Long:  `Summarizes recorded resolutions from the stats database. Requires stats_enabled on the server.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().Duration("since", 0, "only count resolutions newer than this (e.g. 24h)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	window, _ := cmd.Flags().GetDuration("since")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.StatsPath()
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no stats database at %s: enable stats_enabled and run `circuitbot server`", path)
	}

	database, err := db.Open(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var since time.Time
	if window > 0 {
		since = time.Now().Add(-window)
	}

	store := stats.NewStore(database)
	counts, err := store.Summary(cmd.Context(), since)
	if err != nil {
		return err
	}
	total, err := store.Total(cmd.Context())
	if err != nil {
		return err
	}

	table := newTable("Kind", "Topic", "Count")
	for _, c := range counts {
		topic := c.CategoryID
		if topic == "" {
			topic = "-"
		}
		table.Append([]string{string(c.Kind), topic, strconv.Itoa(c.Count)})
	}
	table.SetFooter([]string{"", "Total", strconv.Itoa(total)})
	table.Render()
	return nil
}
