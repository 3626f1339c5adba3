package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ebochsler/personal-site/internal/store"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch all datasets into the local cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		data := loadDatasets(ctx, s, false)

		report := []struct {
			name string
			ok   bool
		}{
			{"running", data.Running != nil},
			{"venues", data.Venues != nil},
			{"featured", data.Featured != nil},
			{"topology", data.Topology != nil},
		}
		failed := 0
		for _, r := range report {
			status := "ok"
			if !r.ok {
				status = "FAILED"
				failed++
			}
			fmt.Printf("  %-10s %s\n", r.name, status)
		}
		if failed == len(report) {
			return fmt.Errorf("all dataset fetches failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
