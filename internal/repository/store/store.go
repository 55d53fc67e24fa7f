package store

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/repository/common"
	"github.com/kosearch/subcollect/internal/repository/subtitle"
	"github.com/kosearch/subcollect/internal/repository/video"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store persists one collected video atomically: the video upsert and the
// caption batches for both languages share a single transaction.
type Store interface {
	SaveCollected(ctx context.Context, v *model.Video, koSegments, enSegments []*model.CaptionSegment) error
}

// collectionStore implements Store using PostgreSQL
type collectionStore struct {
	pool Pool
}

// New creates a new instance of Store
func New(pool Pool) Store {
	return &collectionStore{
		pool: pool,
	}
}

// SaveCollected upserts the video record and the caption segments of every
// language that yielded at least one segment
func (s *collectionStore) SaveCollected(ctx context.Context, v *model.Video, koSegments, enSegments []*model.CaptionSegment) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return common.HandlePostgreSQLError(err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	if err := video.NewRepository(tx).Upsert(ctx, v); err != nil {
		return err
	}

	subtitles := subtitle.NewRepository(tx)
	if err := subtitles.UpsertBatch(ctx, v.ID, "ko", koSegments); err != nil {
		return err
	}
	if err := subtitles.UpsertBatch(ctx, v.ID, "en", enSegments); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return common.HandlePostgreSQLError(err, "failed to commit collection")
	}

	return nil
}
