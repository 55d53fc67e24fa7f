package extractor

import (
	"context"

	"github.com/kosearch/subcollect/internal/model"
)

// Extractor is the boundary to the external video-metadata/caption tool.
// The production implementation shells out to yt-dlp; tests provide an
// in-memory fake.
type Extractor interface {
	// FetchVideoIDs lists video ids for a channel, newest first.
	// limit 0 fetches the full upload history.
	FetchVideoIDs(ctx context.Context, channelID string, limit int) ([]string, error)

	// FetchMetadata retrieves and interprets the metadata payload for one video
	FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error)

	// FetchCaptions downloads and parses the caption track for one language.
	// preferAuto requests only the automatic track; otherwise the manual track
	// is preferred with automatic as fallback. A missing track yields
	// (nil, nil); an undecodable payload yields a PARSE_ERROR.
	FetchCaptions(ctx context.Context, videoID, lang string, preferAuto bool) ([]*model.CaptionSegment, error)
}
