package cmd

import (
	"fmt"

	"github.com/ebochsler/personal-site/internal/store"
	"github.com/ebochsler/personal-site/internal/web"
	"github.com/spf13/cobra"
)

var (
	previewHost string
	previewPort int
	previewDir  string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the generated site locally",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			previewHost = cfg.Preview.Host
		}
		if !cmd.Flags().Changed("port") {
			previewPort = cfg.Preview.Port
		}
		if !cmd.Flags().Changed("dir") {
			previewDir = cfg.Site.OutDir
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		srv := &web.Server{
			Store: s,
			Dir:   previewDir,
			Addr:  fmt.Sprintf("%s:%d", previewHost, previewPort),
		}
		return srv.ListenAndServe()
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewHost, "host", "localhost", "Host to listen on")
	previewCmd.Flags().IntVar(&previewPort, "port", 8080, "Port to listen on")
	previewCmd.Flags().StringVar(&previewDir, "dir", "public", "Site directory to serve")
	rootCmd.AddCommand(previewCmd)
}
