package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kosearch/subcollect/internal/caption"
	"github.com/kosearch/subcollect/internal/config"
	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/repository/channel"
	"github.com/kosearch/subcollect/internal/repository/store"
	"github.com/kosearch/subcollect/internal/repository/video"
	"github.com/kosearch/subcollect/internal/service/collector"
	"github.com/kosearch/subcollect/internal/service/common"
	"github.com/kosearch/subcollect/internal/service/extractor"
)

var (
	collectVideoID     string
	collectChannelID   string
	collectAllChannels bool
	collectCategory    string
	collectLimit       int
	collectAll         bool
	collectDelay       float64
	collectDryRun      bool
	collectNoSkip      bool
)

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect captions for videos or channels",
	Long: `Collect Korean and English captions through yt-dlp, classify their
quality tier, and store normalized segments in the database.

Examples:
  subcollect collect --video dQw4w9WgXcQ
  subcollect collect --channel UCxxxxxxxxxxxxxxxxxxxxxx --limit 20
  subcollect collect --all-channels --category entertainment --delay 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if collectVideoID == "" && collectChannelID == "" && !collectAllChannels {
			return cmd.Help()
		}

		ctx := context.Background()

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

		// Wire up repositories and services
		videoRepo := video.NewRepository(dbPool)
		channelRepo := channel.NewRepository(dbPool)
		st := store.New(dbPool)
		ex := extractor.NewYtdlpExtractor(common.NewCmdRunner(), cfg.TempDir)
		svc := collector.NewService(ex, videoRepo, channelRepo, st)

		opts := collector.Options{
			DryRun:       collectDryRun,
			SkipExisting: !collectNoSkip,
			Limit:        collectLimit,
			Delay:        resolveDelay(cmd, cfg),
			OnResult:     printItemResult,
			OnChannel: func(index, total int, ch *model.Channel) {
				fmt.Printf("\n[%d/%d] Channel: %s (%s)\n", index+1, total, ch.Name, ch.ID)
			},
			OnChannelError: func(ch *model.Channel, err error) {
				fmt.Printf("  listing failed for %s: %v\n", ch.Name, err)
			},
		}
		if collectAll {
			opts.Limit = 0
		}
		if collectDryRun {
			fmt.Println("Dry run: nothing will be written to the database")
		}

		switch {
		case collectVideoID != "":
			result := svc.CollectVideo(ctx, collectVideoID, opts)
			printItemResult(0, 1, result)
			if result.Status == model.StatusFail {
				return fmt.Errorf("collection failed for video %s", collectVideoID)
			}
			return nil

		case collectChannelID != "":
			summary, err := svc.CollectChannel(ctx, collectChannelID, opts)
			printSummary(summary)
			if err != nil {
				return fmt.Errorf("channel collection aborted: %w", err)
			}
			return nil

		default:
			summary, err := svc.CollectAllChannels(ctx, collectCategory, opts)
			printSummary(summary)
			if err != nil {
				return fmt.Errorf("collection aborted: %w", err)
			}
			return nil
		}
	},
}

// resolveDelay prefers the command-line flag over the configured default
func resolveDelay(cmd *cobra.Command, cfg *config.Config) time.Duration {
	seconds := cfg.DelaySeconds
	if cmd.Flags().Changed("delay") {
		seconds = collectDelay
	}
	return time.Duration(seconds * float64(time.Second))
}

// printItemResult reports one processed video on a single line
func printItemResult(index, total int, r *model.CollectionResult) {
	prefix := fmt.Sprintf("  [%d/%d] %s", index+1, total, r.VideoID)
	switch r.Status {
	case model.StatusOK:
		fmt.Printf("%s OK T%d KR:%d EN:%d %s\n", prefix, r.Tier, r.KoreanCount, r.EnglishCount, r.Title)
	case model.StatusSkip:
		fmt.Printf("%s skipped (already collected)\n", prefix)
	case model.StatusNoSubs:
		fmt.Printf("%s no usable captions\n", prefix)
	default:
		fmt.Printf("%s FAILED\n", prefix)
	}
}

// printSummary reports the final tally of a batch run
func printSummary(s *model.BatchSummary) {
	fmt.Println("\n==================================================")
	fmt.Println("Collection finished")
	fmt.Printf("  ok: %d  skipped: %d  no_subs: %d  failed: %d\n", s.OK, s.Skipped, s.NoSubs, s.Failed)
	fmt.Printf("  segments stored: KR %d / EN %d\n", s.KoreanSegments, s.EnglishSegments)
	fmt.Printf("  elapsed: %s\n", s.Elapsed.Round(time.Second))

	tiers := map[int]int{}
	for _, r := range s.Results {
		if r.Status == model.StatusOK {
			tiers[r.Tier]++
		}
	}
	for tier := 1; tier <= 4; tier++ {
		if tiers[tier] > 0 {
			fmt.Printf("  tier %d (%s): %d\n", tier, caption.TierDescription(tier), tiers[tier])
		}
	}
}

func init() {
	rootCmd.AddCommand(collectCmd)

	collectCmd.Flags().StringVar(&collectVideoID, "video", "", "collect a single video by id")
	collectCmd.Flags().StringVar(&collectChannelID, "channel", "", "collect recent videos of one channel")
	collectCmd.Flags().BoolVar(&collectAllChannels, "all-channels", false, "collect every active channel")
	collectCmd.Flags().StringVar(&collectCategory, "category", "", "restrict --all-channels to one category")
	collectCmd.Flags().IntVar(&collectLimit, "limit", 10, "videos per channel")
	collectCmd.Flags().BoolVar(&collectAll, "all", false, "collect the full upload history (overrides --limit)")
	collectCmd.Flags().Float64Var(&collectDelay, "delay", 2.0, "seconds to wait between videos")
	collectCmd.Flags().BoolVar(&collectDryRun, "dry-run", false, "fetch and classify without writing to the database")
	collectCmd.Flags().BoolVar(&collectNoSkip, "no-skip", false, "recollect videos that are already stored")
}
