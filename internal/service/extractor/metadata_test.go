package extractor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
)

var fixedClock = func() time.Time {
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}

func TestFetchMetadata(t *testing.T) {
	tests := []struct {
		name    string
		videoID string
		output  string
		want    *model.VideoMetadata
	}{
		{
			name:    "manual korean with auto english",
			videoID: "zTnAvaoHR4I",
			output: `{
				"title": "Test Video",
				"description": "desc",
				"duration": 212.4,
				"thumbnail": "https://i.ytimg.com/vi/zTnAvaoHR4I/maxresdefault.jpg",
				"channel_id": "UCqwUnggBBct-AY2lAdI88jQ",
				"upload_date": "20260115",
				"subtitles": {"ko": []},
				"automatic_captions": {"ko": [], "en": []}
			}`,
			want: &model.VideoMetadata{
				Title:           "Test Video",
				Description:     "desc",
				DurationSeconds: 212,
				ThumbnailURL:    "https://i.ytimg.com/vi/zTnAvaoHR4I/maxresdefault.jpg",
				ChannelID:       "UCqwUnggBBct-AY2lAdI88jQ",
				PublishedAt:     "2026-01-15",
				HasKorean:       true,
				HasEnglish:      true,
				KoType:          model.CaptionManual,
				EnType:          model.CaptionAuto,
			},
		},
		{
			name:    "no caption tracks at all",
			videoID: "abc123def45",
			output:  `{"title": "Silent", "channel_id": "UCx", "upload_date": "20250301"}`,
			want: &model.VideoMetadata{
				Title:        "Silent",
				ThumbnailURL: "https://i.ytimg.com/vi/abc123def45/hqdefault.jpg",
				ChannelID:    "UCx",
				PublishedAt:  "2025-03-01",
				KoType:       model.CaptionNone,
				EnType:       model.CaptionNone,
			},
		},
		{
			name:    "unparseable upload date falls back to current date",
			videoID: "abc123def45",
			output:  `{"title": "t", "upload_date": "yesterday", "subtitles": {"en": []}}`,
			want: &model.VideoMetadata{
				Title:        "t",
				ThumbnailURL: "https://i.ytimg.com/vi/abc123def45/hqdefault.jpg",
				PublishedAt:  "2026-08-28",
				HasEnglish:   true,
				KoType:       model.CaptionNone,
				EnType:       model.CaptionManual,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := new(mockCmdRunner)
			runner.On("Run", mock.Anything, "yt-dlp",
				[]string{"--dump-json", "https://www.youtube.com/watch?v=" + tt.videoID}).
				Return([]byte(tt.output), nil)

			ex := NewYtdlpExtractorWithClock(runner, t.TempDir(), fixedClock)

			got, err := ex.FetchMetadata(context.Background(), tt.videoID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			runner.AssertExpectations(t)
		})
	}
}

func TestFetchMetadata_ExtractorFailure(t *testing.T) {
	runner := new(mockCmdRunner)
	runner.On("Run", mock.Anything, "yt-dlp", mock.Anything).
		Return(nil, assert.AnError)

	ex := NewYtdlpExtractorWithClock(runner, t.TempDir(), fixedClock)

	_, err := ex.FetchMetadata(context.Background(), "zTnAvaoHR4I")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeExternal, apperrors.Code(err))
}

func TestFetchMetadata_MalformedPayload(t *testing.T) {
	runner := new(mockCmdRunner)
	runner.On("Run", mock.Anything, "yt-dlp", mock.Anything).
		Return([]byte("WARNING: not json"), nil)

	ex := NewYtdlpExtractorWithClock(runner, t.TempDir(), fixedClock)

	_, err := ex.FetchMetadata(context.Background(), "zTnAvaoHR4I")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeExternal, apperrors.Code(err))
}
