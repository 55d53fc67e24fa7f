package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kosearch/subcollect/internal/config"
	"github.com/kosearch/subcollect/internal/repository/channel"
)

var channelListCategory string

// channelCmd represents the channel command
var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Channel whitelist operations",
	Long:  `Operations for inspecting the collection channel whitelist.`,
}

// channelListCmd lists active channels from the database
var channelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active channels",
	Long:  `Display the active channels eligible for collection, optionally filtered by category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Load configuration
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// Create database connection
		dbPool, err := config.NewDatabasePool(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer dbPool.Close()

		repo := channel.NewRepository(dbPool)
		channels, err := repo.ListActive(ctx, channelListCategory)
		if err != nil {
			return fmt.Errorf("failed to list channels: %w", err)
		}

		// Display result as JSON
		result, err := json.MarshalIndent(channels, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Println(string(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(channelCmd)
	channelCmd.AddCommand(channelListCmd)

	channelListCmd.Flags().StringVar(&channelListCategory, "category", "", "filter channels by category")
}
