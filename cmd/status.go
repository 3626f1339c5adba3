package cmd

import (
	"fmt"

	"github.com/ebochsler/personal-site/internal/store"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the dataset cache holds",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		infos, err := s.Summary()
		if err != nil {
			return fmt.Errorf("reading cache summary: %w", err)
		}

		fmt.Printf("Dataset Cache\n")
		fmt.Printf("=============\n")
		if len(infos) == 0 {
			fmt.Println("empty (run fetch or build first)")
			return nil
		}
		for _, info := range infos {
			fmt.Printf("  %-10s %8d bytes  fetched %s\n",
				info.Kind, info.Bytes, info.FetchedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
