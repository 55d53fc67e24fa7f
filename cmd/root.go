package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "subcollect",
	Short: "Dual-language caption collection for YouTube channels",
	Long: `subcollect retrieves video metadata and Korean/English caption tracks
through yt-dlp, classifies caption quality into priority tiers, and stores
normalized caption segments in PostgreSQL for full-text search.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
