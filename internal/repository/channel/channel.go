package channel

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/kosearch/subcollect/internal/model"
)

// Pool interface for abstracting pgx connection pool
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository defines read operations over the channel reference table.
// Channels are reference data: the collector never creates or mutates them.
type Repository interface {
	// GetByID retrieves a channel by its ID
	GetByID(ctx context.Context, id string) (*model.Channel, error)

	// Exists reports whether a channel is registered
	Exists(ctx context.Context, id string) (bool, error)

	// ListActive retrieves active channels ordered by name,
	// optionally filtered by category (empty string means all)
	ListActive(ctx context.Context, category string) ([]*model.Channel, error)
}
