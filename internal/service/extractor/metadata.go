package extractor

import (
	"encoding/json"
	"time"

	"github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
)

// ytdlpVideoJSON represents the yt-dlp --dump-json output fields we consume.
// The subtitle maps are keyed by language code; only key presence matters.
type ytdlpVideoJSON struct {
	Title             string                     `json:"title"`
	Description       string                     `json:"description"`
	Duration          float64                    `json:"duration"`
	Thumbnail         string                     `json:"thumbnail"`
	ChannelID         string                     `json:"channel_id"`
	UploadDate        string                     `json:"upload_date"`
	Subtitles         map[string]json.RawMessage `json:"subtitles"`
	AutomaticCaptions map[string]json.RawMessage `json:"automatic_captions"`
}

// interpretMetadata derives the caption-availability facts and descriptive
// fields from a raw metadata payload
func interpretMetadata(payload []byte, videoID string, now time.Time) (*model.VideoMetadata, error) {
	var data ytdlpVideoJSON
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, errors.Wrap(err, errors.CodeExternal, "malformed metadata payload")
	}

	_, hasManualKo := data.Subtitles["ko"]
	_, hasAutoKo := data.AutomaticCaptions["ko"]
	_, hasManualEn := data.Subtitles["en"]
	_, hasAutoEn := data.AutomaticCaptions["en"]

	thumbnail := data.Thumbnail
	if thumbnail == "" {
		thumbnail = "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"
	}

	return &model.VideoMetadata{
		Title:           data.Title,
		Description:     data.Description,
		DurationSeconds: int(data.Duration),
		ThumbnailURL:    thumbnail,
		ChannelID:       data.ChannelID,
		PublishedAt:     publishedDate(data.UploadDate, now),
		HasKorean:       hasManualKo || hasAutoKo,
		HasEnglish:      hasManualEn || hasAutoEn,
		KoType:          captionType(hasManualKo, hasAutoKo),
		EnType:          captionType(hasManualEn, hasAutoEn),
	}, nil
}

// captionType ranks manual above auto when both tracks exist
func captionType(manual, auto bool) model.CaptionType {
	switch {
	case manual:
		return model.CaptionManual
	case auto:
		return model.CaptionAuto
	default:
		return model.CaptionNone
	}
}

// publishedDate formats an 8-digit upload date as YYYY-MM-DD. Anything else
// falls back to the current date, a known data-quality gap kept from the
// upstream source.
func publishedDate(uploadDate string, now time.Time) string {
	if len(uploadDate) == 8 && isDigits(uploadDate) {
		return uploadDate[:4] + "-" + uploadDate[4:6] + "-" + uploadDate[6:8]
	}
	return now.Format("2006-01-02")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
