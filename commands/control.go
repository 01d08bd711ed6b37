package commands

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"courtsearch/browser"
	"courtsearch/console"
	"courtsearch/searcher"
)

var controlConfig *string

func init() {
	controlConfig = controlCmd.Flags().String("config", "config.json5", "Path to the search configuration file.")
	rootCmd.AddCommand(controlCmd)
}

var controlCmd = &cobra.Command{
	Use:   "control",
	Short: "Opens a browser session and drives it interactively, one command at a time.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := searcher.LoadConfig(*controlConfig)
		if err != nil {
			fatal("failed to read config", err)
		}

		launcher := browser.Playwright{
			Timeout: time.Duration(cfg.TimeoutSec * float64(time.Second)),
		}
		sess, err := launcher.Launch(browser.LaunchOptions{Headless: false})
		if err != nil {
			fatal("failed to launch browser session", err)
		}

		if err := console.Loop(sess, os.Stdin, os.Stdout); err != nil {
			fatal("console session failed", err)
		}
	},
}
