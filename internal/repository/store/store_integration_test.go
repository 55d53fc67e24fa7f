//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/repository/common"
	"github.com/kosearch/subcollect/internal/repository/video"
)

// TestStore_Integration tests the collection store with real PostgreSQL
func TestStore_Integration(t *testing.T) {
	pool := common.SetupTestDB(t)
	st := New(pool)
	videoRepo := video.NewRepository(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	v := &model.Video{
		ID:              "vid00000001",
		ChannelID:       "UCintegration0000000000ab",
		Title:           "첫 번째 영상",
		Description:     "desc",
		ThumbnailURL:    "https://i.ytimg.com/vi/vid00000001/hqdefault.jpg",
		DurationSeconds: 120,
		PublishedAt:     "2025-11-02",
		HasKorean:       true,
		HasEnglish:      false,
		SubtitleType:    model.CaptionManual,
		Tier:            3,
		Source:          "manual_korean",
	}
	koSegments := []*model.CaptionSegment{
		{StartMS: 0, EndMS: 1500, Text: "안녕하세요", TextNormalized: "안녕하세요"},
		{StartMS: 1500, EndMS: 3000, Text: "반갑습니다", TextNormalized: "반갑습니다"},
	}

	t.Run("SaveCollected persists video and segments", func(t *testing.T) {
		err := st.SaveCollected(ctx, v, koSegments, nil)
		require.NoError(t, err)

		stored, err := videoRepo.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, v.Title, stored.Title)
		assert.Equal(t, 3, stored.Tier)
		assert.Equal(t, "manual_korean", stored.Source)

		assert.Equal(t, 2, countSegments(t, ctx, pool, "subtitles", v.ID))
		assert.Equal(t, 0, countSegments(t, ctx, pool, "subtitles_en", v.ID))
	})

	t.Run("recollection upserts in place", func(t *testing.T) {
		recollected := *v
		recollected.HasEnglish = true
		recollected.Tier = 2
		recollected.Source = "manual_korean+auto_english"
		enSegments := []*model.CaptionSegment{
			{StartMS: 0, EndMS: 1500, Text: "Hello", TextNormalized: "hello"},
		}

		err := st.SaveCollected(ctx, &recollected, koSegments, enSegments)
		require.NoError(t, err)

		stored, err := videoRepo.GetByID(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Tier)
		assert.Equal(t, "manual_korean+auto_english", stored.Source)
		assert.True(t, stored.HasEnglish)

		// Row counts stay stable across reruns
		assert.Equal(t, 2, countSegments(t, ctx, pool, "subtitles", v.ID))
		assert.Equal(t, 1, countSegments(t, ctx, pool, "subtitles_en", v.ID))
	})

	t.Run("failed transaction leaves nothing behind", func(t *testing.T) {
		bad := *v
		bad.ID = "vid00000002"

		canceled, cancelNow := context.WithCancel(ctx)
		cancelNow()

		err := st.SaveCollected(canceled, &bad, koSegments, nil)
		require.Error(t, err)

		exists, err := videoRepo.Exists(ctx, bad.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func countSegments(t *testing.T, ctx context.Context, pool *pgxpool.Pool, table, videoID string) int {
	t.Helper()
	var n int
	err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table+" WHERE video_id = $1", videoID).Scan(&n)
	require.NoError(t, err)
	return n
}
