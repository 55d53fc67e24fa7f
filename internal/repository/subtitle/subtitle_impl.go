package subtitle

import (
	"context"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/repository/common"
)

// segmentTables maps a language code to its segment table.
// Korean and English live in separate tables with identical shapes.
var segmentTables = map[string]string{
	"ko": "subtitles",
	"en": "subtitles_en",
}

// subtitleRepository implements Repository using PostgreSQL
type subtitleRepository struct {
	pool Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool Pool) Repository {
	return &subtitleRepository{
		pool: pool,
	}
}

// UpsertBatch writes the segments of one language for one video as a single
// pipelined batch of per-row upserts
func (r *subtitleRepository) UpsertBatch(ctx context.Context, videoID, language string, segments []*model.CaptionSegment) error {
	table, ok := segmentTables[language]
	if !ok {
		return apperrors.New(apperrors.CodeInvalidArg, "unsupported caption language: "+language)
	}
	if len(segments) == 0 {
		return nil
	}

	sql := `INSERT INTO ` + table + ` (video_id, sequence_num, start_time_ms, end_time_ms, text, text_normalized)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (video_id, sequence_num) DO UPDATE SET
			text = EXCLUDED.text, text_normalized = EXCLUDED.text_normalized`

	batch := &pgx.Batch{}
	for i, segment := range segments {
		batch.Queue(sql,
			videoID,
			i+1,
			segment.StartMS,
			segment.EndMS,
			segment.Text,
			segment.TextNormalized,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range segments {
		if _, err := results.Exec(); err != nil {
			return common.HandlePostgreSQLError(err, "failed to upsert caption segments")
		}
	}

	return nil
}
