package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ebochsler/personal-site/internal/anim"
	"github.com/ebochsler/personal-site/internal/store"
	"github.com/spf13/cobra"
)

var statsOffline bool

// statsCmd replays the headline numbers in the terminal with the same
// eased count-up the site uses.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Animate the headline stats in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		data := loadDatasets(ctx, s, statsOffline)

		type stat struct {
			label  string
			target float64
			style  anim.Style
		}
		var stats []stat
		if r := data.Running; r != nil {
			stats = append(stats,
				stat{"Miles run", r.Summary.TotalDistanceMi, anim.Style{Format: anim.FormatPlain, Decimals: 1}},
				stat{"Runs", float64(r.Summary.TotalRuns), anim.Style{Format: anim.FormatZeroDecimal}},
				stat{"Avg pace", r.Summary.AvgPaceMin, anim.Style{Format: anim.FormatPace}},
			)
		}
		if v := data.Venues; v != nil {
			stats = append(stats,
				stat{"Venues", float64(v.Summary.TotalVenues), anim.Style{Format: anim.FormatZeroDecimal}},
				stat{"Visits", float64(v.Summary.TotalVisits), anim.Style{Format: anim.FormatGrouped}},
			)
		}
		if len(stats) == 0 {
			return fmt.Errorf("no datasets available (try fetch, or drop --offline)")
		}

		for _, st := range stats {
			c := anim.NewCounter(st.target, st.style, 0)
			c.Start(time.Now())
			err := c.Play(ctx, 33*time.Millisecond, func(frame string) {
				fmt.Printf("\r%-12s %12s", st.label, frame)
			})
			fmt.Println()
			if err != nil {
				return nil
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsOffline, "offline", false, "Use the dataset cache without fetching")
	rootCmd.AddCommand(statsCmd)
}
