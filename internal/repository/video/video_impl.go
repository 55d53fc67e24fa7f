package video

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/repository/common"
)

// videoRepository implements Repository using PostgreSQL
type videoRepository struct {
	pool Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool Pool) Repository {
	return &videoRepository{
		pool: pool,
	}
}

// Exists reports whether a video has already been collected
func (r *videoRepository) Exists(ctx context.Context, id string) (bool, error) {
	sql := "SELECT EXISTS(SELECT 1 FROM videos WHERE id = $1)"
	row := r.pool.QueryRow(ctx, sql, id)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, common.HandlePostgreSQLError(err, "failed to check video existence")
	}

	return exists, nil
}

// GetByID retrieves a video by its ID
func (r *videoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	sql := `SELECT id, channel_id, title, description, thumbnail_url,
		duration_seconds, published_at,
		has_korean_subtitle, has_english_subtitle,
		subtitle_type, subtitle_tier, subtitle_source
		FROM videos WHERE id = $1`
	row := r.pool.QueryRow(ctx, sql, id)

	var video model.Video
	err := row.Scan(
		&video.ID,
		&video.ChannelID,
		&video.Title,
		&video.Description,
		&video.ThumbnailURL,
		&video.DurationSeconds,
		&video.PublishedAt,
		&video.HasKorean,
		&video.HasEnglish,
		&video.SubtitleType,
		&video.Tier,
		&video.Source,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "video not found")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get video")
	}

	return &video, nil
}

// Upsert inserts or refreshes the video record.
// The conflict clause only refreshes the fields a re-collection may change:
// English availability, tier and source descriptor.
func (r *videoRepository) Upsert(ctx context.Context, video *model.Video) error {
	sql := `INSERT INTO videos (
			id, channel_id, title, description, thumbnail_url,
			duration_seconds, published_at,
			has_korean_subtitle, has_english_subtitle,
			subtitle_type, subtitle_tier, subtitle_source, is_available
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,true)
		ON CONFLICT (id) DO UPDATE SET
			has_english_subtitle = EXCLUDED.has_english_subtitle,
			subtitle_tier = EXCLUDED.subtitle_tier,
			subtitle_source = EXCLUDED.subtitle_source`

	_, err := r.pool.Exec(ctx, sql,
		video.ID,
		video.ChannelID,
		video.Title,
		video.Description,
		video.ThumbnailURL,
		video.DurationSeconds,
		video.PublishedAt,
		video.HasKorean,
		video.HasEnglish,
		video.SubtitleType,
		video.Tier,
		video.Source,
	)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to upsert video")
	}

	return nil
}
