package video

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kosearch/subcollect/internal/model"
)

// Pool interface for abstracting pgx connection pool.
// pgx.Tx satisfies it too, so the repository works inside a transaction.
type Pool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository defines operations for video persistence
type Repository interface {
	// Exists reports whether a video has already been collected.
	// An existing row is the sole dedup criterion.
	Exists(ctx context.Context, id string) (bool, error)

	// GetByID retrieves a video by its ID
	GetByID(ctx context.Context, id string) (*model.Video, error)

	// Upsert inserts the video record or, on conflict by id, refreshes
	// the English availability, tier and source descriptor
	Upsert(ctx context.Context, video *model.Video) error
}
