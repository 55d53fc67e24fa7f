package collector

import (
	"context"
	"time"

	"github.com/kosearch/subcollect/internal/caption"
	apperrors "github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/repository/channel"
	"github.com/kosearch/subcollect/internal/repository/store"
	"github.com/kosearch/subcollect/internal/repository/video"
	"github.com/kosearch/subcollect/internal/service/extractor"
)

// Options controls one collection run
type Options struct {
	// DryRun skips persistence entirely
	DryRun bool

	// SkipExisting terminates already-collected videos in status skip
	SkipExisting bool

	// Limit caps videos per channel; 0 collects the full upload history
	Limit int

	// Delay is the pause between consecutive videos of the same channel
	Delay time.Duration

	// OnResult, if set, is called once per processed video
	OnResult func(index, total int, result *model.CollectionResult)

	// OnChannel, if set, is called once per channel before its videos
	OnChannel func(index, total int, ch *model.Channel)

	// OnChannelError, if set, is called when a channel's video listing fails;
	// the run continues with the next channel
	OnChannelError func(ch *model.Channel, err error)
}

// Service drives caption collection for videos and channels
type Service interface {
	// CollectVideo runs the collection state machine for a single video.
	// Every attempt yields exactly one result; failures never escape.
	CollectVideo(ctx context.Context, videoID string, opts Options) *model.CollectionResult

	// CollectChannel collects up to opts.Limit recent videos of one channel
	CollectChannel(ctx context.Context, channelID string, opts Options) (*model.BatchSummary, error)

	// CollectAllChannels collects every active channel, optionally filtered
	// by category
	CollectAllChannels(ctx context.Context, category string, opts Options) (*model.BatchSummary, error)
}

// service implements Service
type service struct {
	extractor   extractor.Extractor
	videoRepo   video.Repository
	channelRepo channel.Repository
	store       store.Store
	sleep       func(time.Duration)
}

// NewService creates a new collection Service
func NewService(ex extractor.Extractor, videoRepo video.Repository, channelRepo channel.Repository, st store.Store) Service {
	return NewServiceWithSleep(ex, videoRepo, channelRepo, st, time.Sleep)
}

// NewServiceWithSleep creates a new Service with a custom sleep function (for testing)
func NewServiceWithSleep(ex extractor.Extractor, videoRepo video.Repository, channelRepo channel.Repository, st store.Store, sleep func(time.Duration)) Service {
	return &service{
		extractor:   ex,
		videoRepo:   videoRepo,
		channelRepo: channelRepo,
		store:       st,
		sleep:       sleep,
	}
}

// CollectVideo runs the collection state machine for a single video
func (s *service) CollectVideo(ctx context.Context, videoID string, opts Options) *model.CollectionResult {
	result, _ := s.collectOne(ctx, videoID, opts)
	return result
}

// CollectChannel collects recent videos of one channel sequentially
func (s *service) CollectChannel(ctx context.Context, channelID string, opts Options) (*model.BatchSummary, error) {
	summary := &model.BatchSummary{}
	start := time.Now()
	defer func() { summary.Elapsed = time.Since(start) }()

	ids, err := s.extractor.FetchVideoIDs(ctx, channelID, opts.Limit)
	if err != nil {
		return summary, err
	}

	return summary, s.processVideos(ctx, ids, opts, summary)
}

// CollectAllChannels collects every active channel in name order.
// A channel whose listing fails is reported and skipped; a lost store
// connection stops the whole run with the progress made so far.
func (s *service) CollectAllChannels(ctx context.Context, category string, opts Options) (*model.BatchSummary, error) {
	summary := &model.BatchSummary{}
	start := time.Now()
	defer func() { summary.Elapsed = time.Since(start) }()

	channels, err := s.channelRepo.ListActive(ctx, category)
	if err != nil {
		return summary, err
	}

	for i, ch := range channels {
		if opts.OnChannel != nil {
			opts.OnChannel(i, len(channels), ch)
		}

		ids, err := s.extractor.FetchVideoIDs(ctx, ch.ID, opts.Limit)
		if err != nil {
			if opts.OnChannelError != nil {
				opts.OnChannelError(ch, err)
			}
			continue
		}

		if err := s.processVideos(ctx, ids, opts, summary); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// processVideos runs the state machine over a list of video ids, pausing
// between consecutive videos but not after the last one
func (s *service) processVideos(ctx context.Context, ids []string, opts Options, summary *model.BatchSummary) error {
	for i, id := range ids {
		result, err := s.collectOne(ctx, id, opts)
		summary.Add(result)
		if opts.OnResult != nil {
			opts.OnResult(i, len(ids), result)
		}
		if err != nil {
			return err
		}

		if i < len(ids)-1 && opts.Delay > 0 {
			s.sleep(opts.Delay)
		}
	}
	return nil
}

// collectOne processes a single video to a terminal status. The returned
// error is non-nil only when the store connection is lost, which must stop
// the surrounding batch; every other failure stays local to the item.
func (s *service) collectOne(ctx context.Context, videoID string, opts Options) (*model.CollectionResult, error) {
	result := &model.CollectionResult{VideoID: videoID, Status: model.StatusFail}

	if opts.SkipExisting {
		exists, err := s.videoRepo.Exists(ctx, videoID)
		if err != nil {
			if apperrors.Code(err) == apperrors.CodeUnavailable {
				return result, err
			}
			return result, nil
		}
		if exists {
			result.Status = model.StatusSkip
			return result, nil
		}
	}

	meta, err := s.extractor.FetchMetadata(ctx, videoID)
	if err != nil {
		return result, nil
	}

	result.Tier = caption.ClassifyTier(meta.KoType, meta.EnType)
	result.Title = meta.Title

	// Fetch both languages independently; the auto track is requested only
	// when no manual track exists for that language.
	koSegments := s.fetchCaptions(ctx, videoID, "ko", meta.KoType == model.CaptionAuto)
	enSegments := s.fetchCaptions(ctx, videoID, "en", meta.EnType == model.CaptionAuto)
	result.KoreanCount = len(koSegments)
	result.EnglishCount = len(enSegments)

	if len(koSegments) == 0 && len(enSegments) == 0 {
		result.Status = model.StatusNoSubs
		return result, nil
	}

	if !opts.DryRun {
		v := buildVideo(videoID, meta, result.Tier)
		if err := s.store.SaveCollected(ctx, v, koSegments, enSegments); err != nil {
			if apperrors.Code(err) == apperrors.CodeUnavailable {
				return result, err
			}
			return result, nil
		}
	}

	result.Status = model.StatusOK
	return result, nil
}

// fetchCaptions treats every acquisition failure, including an undecodable
// payload, as empty for that language
func (s *service) fetchCaptions(ctx context.Context, videoID, lang string, preferAuto bool) []*model.CaptionSegment {
	segments, err := s.extractor.FetchCaptions(ctx, videoID, lang, preferAuto)
	if err != nil {
		return nil
	}
	return segments
}

// buildVideo assembles the persisted record from interpreted metadata.
// The extractor-reported channel id is used as-is even when it is not in
// the channel whitelist.
func buildVideo(videoID string, meta *model.VideoMetadata, tier int) *model.Video {
	source := string(meta.KoType) + "_korean"
	if meta.HasEnglish {
		source += "+" + string(meta.EnType) + "_english"
	}

	return &model.Video{
		ID:              videoID,
		ChannelID:       meta.ChannelID,
		Title:           meta.Title,
		Description:     meta.Description,
		ThumbnailURL:    meta.ThumbnailURL,
		DurationSeconds: meta.DurationSeconds,
		PublishedAt:     meta.PublishedAt,
		HasKorean:       meta.HasKorean,
		HasEnglish:      meta.HasEnglish,
		SubtitleType:    meta.KoType,
		Tier:            tier,
		Source:          source,
	}
}
