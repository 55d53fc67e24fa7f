package subtitle

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kosearch/subcollect/internal/model"
)

// Pool interface for abstracting pgx connection pool.
// pgx.Tx satisfies it too, so the repository works inside a transaction.
type Pool interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Repository defines operations for caption segment persistence
type Repository interface {
	// UpsertBatch writes the segments of one language for one video.
	// Rows are keyed (video_id, sequence_num) with 1-based sequence numbers
	// assigned by slice order; re-collection updates text in place.
	UpsertBatch(ctx context.Context, videoID, language string, segments []*model.CaptionSegment) error
}
