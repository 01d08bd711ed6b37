package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"courtsearch/browser"
	"courtsearch/searcher"
)

var surfConfig *string

func init() {
	surfConfig = surfCmd.Flags().String("config", "config.json5", "Path to the search configuration file.")
	rootCmd.AddCommand(surfCmd)
}

var surfCmd = &cobra.Command{
	Use:   "surf [--config <path/to/config.json5>]",
	Short: "Prompts for a date range, fills the search form, then leaves the browser to you.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := searcher.LoadConfig(*surfConfig)
		if err != nil {
			fatal("failed to read config", err)
		}

		dates, err := searcher.PromptDateRange(os.Stdin, os.Stdout)
		if err != nil {
			fatal("failed to collect date range", err)
		}

		launcher := browser.Playwright{
			Timeout: time.Duration(cfg.TimeoutSec * float64(time.Second)),
		}
		s := searcher.New(cfg, launcher, os.Stdout)

		if _, err := s.Run(dates); err != nil {
			fatal("search setup failed", err)
		}

		s.RenderPlan(dates)
		fmt.Println("Please prove that you're not a robot, then run the search by hand.")
		fmt.Println("The browser stays open; press Ctrl+C here when you are done.")

		// Deliberately no polling and no completion check past this point.
		// The session belongs to the operator until they end the process.
		<-cmd.Context().Done()
	},
}
