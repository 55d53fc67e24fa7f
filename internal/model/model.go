package model

import "time"

// CaptionType describes how a caption track was produced for a language.
type CaptionType string

const (
	CaptionManual CaptionType = "manual"
	CaptionAuto   CaptionType = "auto"
	CaptionNone   CaptionType = "none"
)

// Channel represents a whitelisted YouTube channel from the reference table
type Channel struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Category string `json:"category" db:"category"`
	IsActive bool   `json:"is_active" db:"is_active"`
}

// VideoMetadata holds the interpreted extractor payload for one video.
// Derived once per video and never mutated afterwards.
type VideoMetadata struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	DurationSeconds int         `json:"duration_seconds"`
	ThumbnailURL    string      `json:"thumbnail_url"`
	ChannelID       string      `json:"channel_id"`
	PublishedAt     string      `json:"published_at"` // YYYY-MM-DD
	HasKorean       bool        `json:"has_korean"`
	HasEnglish      bool        `json:"has_english"`
	KoType          CaptionType `json:"ko_type"`
	EnType          CaptionType `json:"en_type"`
}

// Video is the persisted video record: metadata plus the computed
// caption tier and source descriptor.
type Video struct {
	ID              string      `json:"id" db:"id"`
	ChannelID       string      `json:"channel_id" db:"channel_id"`
	Title           string      `json:"title" db:"title"`
	Description     string      `json:"description" db:"description"`
	ThumbnailURL    string      `json:"thumbnail_url" db:"thumbnail_url"`
	DurationSeconds int         `json:"duration_seconds" db:"duration_seconds"`
	PublishedAt     string      `json:"published_at" db:"published_at"`
	HasKorean       bool        `json:"has_korean_subtitle" db:"has_korean_subtitle"`
	HasEnglish      bool        `json:"has_english_subtitle" db:"has_english_subtitle"`
	SubtitleType    CaptionType `json:"subtitle_type" db:"subtitle_type"`
	Tier            int         `json:"subtitle_tier" db:"subtitle_tier"`
	Source          string      `json:"subtitle_source" db:"subtitle_source"`
}

// CaptionSegment is one timed caption cue. Segments are immutable after
// creation and keep their original payload order.
type CaptionSegment struct {
	StartMS        int64  `json:"start_ms" db:"start_time_ms"`
	EndMS          int64  `json:"end_ms" db:"end_time_ms"`
	Text           string `json:"text" db:"text"`
	TextNormalized string `json:"text_normalized" db:"text_normalized"`
}

// Status is the terminal state of one collection attempt
type Status string

const (
	StatusOK     Status = "ok"
	StatusSkip   Status = "skip"
	StatusFail   Status = "fail"
	StatusNoSubs Status = "no_subs"
)

// CollectionResult is the write-once summary of one collection attempt.
// It is reported to the caller and never persisted.
type CollectionResult struct {
	VideoID      string `json:"video_id"`
	Status       Status `json:"status"`
	KoreanCount  int    `json:"korean_count"`
	EnglishCount int    `json:"english_count"`
	Tier         int    `json:"tier"`
	Title        string `json:"title,omitempty"`
}

// BatchSummary aggregates results across one collection run
type BatchSummary struct {
	OK              int                 `json:"ok"`
	Skipped         int                 `json:"skipped"`
	Failed          int                 `json:"failed"`
	NoSubs          int                 `json:"no_subs"`
	KoreanSegments  int                 `json:"korean_segments"`
	EnglishSegments int                 `json:"english_segments"`
	Elapsed         time.Duration       `json:"elapsed"`
	Results         []*CollectionResult `json:"results,omitempty"`
}

// Add merges one item result into the running tally
func (s *BatchSummary) Add(r *CollectionResult) {
	s.Results = append(s.Results, r)
	switch r.Status {
	case StatusOK:
		s.OK++
		s.KoreanSegments += r.KoreanCount
		s.EnglishSegments += r.EnglishCount
	case StatusSkip:
		s.Skipped++
	case StatusNoSubs:
		s.NoSubs++
	default:
		s.Failed++
	}
}
