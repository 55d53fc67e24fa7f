package channel

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/kosearch/subcollect/internal/errors"
	"github.com/kosearch/subcollect/internal/model"
	"github.com/kosearch/subcollect/internal/repository/common"
)

// channelRepository implements Repository using PostgreSQL
type channelRepository struct {
	pool Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool Pool) Repository {
	return &channelRepository{
		pool: pool,
	}
}

// GetByID retrieves a channel by its ID
func (r *channelRepository) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	sql := "SELECT id, name, category, is_active FROM channels WHERE id = $1"
	row := r.pool.QueryRow(ctx, sql, id)

	var channel model.Channel
	err := row.Scan(&channel.ID, &channel.Name, &channel.Category, &channel.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "channel not found")
		}
		return nil, common.HandlePostgreSQLError(err, "failed to get channel")
	}

	return &channel, nil
}

// Exists reports whether a channel is registered
func (r *channelRepository) Exists(ctx context.Context, id string) (bool, error) {
	sql := "SELECT EXISTS(SELECT 1 FROM channels WHERE id = $1)"
	row := r.pool.QueryRow(ctx, sql, id)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, common.HandlePostgreSQLError(err, "failed to check channel existence")
	}

	return exists, nil
}

// ListActive retrieves active channels ordered by name
func (r *channelRepository) ListActive(ctx context.Context, category string) ([]*model.Channel, error) {
	sql := "SELECT id, name, category, is_active FROM channels WHERE is_active = true ORDER BY name"
	args := []any{}
	if category != "" {
		sql = "SELECT id, name, category, is_active FROM channels WHERE is_active = true AND category = $1 ORDER BY name"
		args = append(args, category)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to list active channels")
	}
	defer rows.Close()

	channels := []*model.Channel{}
	for rows.Next() {
		var channel model.Channel
		err := rows.Scan(&channel.ID, &channel.Name, &channel.Category, &channel.IsActive)
		if err != nil {
			return nil, common.HandlePostgreSQLError(err, "failed to scan channel row")
		}
		channels = append(channels, &channel)
	}

	if err := rows.Err(); err != nil {
		return nil, common.HandlePostgreSQLError(err, "failed to iterate channel rows")
	}

	return channels, nil
}
