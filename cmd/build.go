package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ebochsler/personal-site/internal/site"
	"github.com/ebochsler/personal-site/internal/store"
	"github.com/spf13/cobra"
)

var (
	buildOutDir  string
	buildOffline bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Fetch datasets and render the static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("out") {
			buildOutDir = cfg.Site.OutDir
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		data := loadDatasets(ctx, s, buildOffline)

		if data.Running == nil {
			fmt.Fprintf(os.Stderr, "WARNING: no running data (%v); page will show a fallback message\n", data.RunningErr)
		}
		if data.Venues == nil {
			fmt.Fprintf(os.Stderr, "WARNING: no venue data (%v); page will show a fallback message\n", data.VenuesErr)
		}

		b := &site.Builder{
			OutDir:  buildOutDir,
			BaseURL: cfg.Site.BaseURL,
			Title:   cfg.Site.Title,
		}
		if err := b.Build(data); err != nil {
			return fmt.Errorf("building site: %w", err)
		}

		fmt.Printf("Site written to %s\n", buildOutDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildOutDir, "out", "public", "Output directory for the generated site")
	buildCmd.Flags().BoolVar(&buildOffline, "offline", false, "Build from the dataset cache without fetching")
	rootCmd.AddCommand(buildCmd)
}
