//go:build integration

package channel

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kosearch/subcollect/internal/repository/common"
)

// TestChannelRepository_Integration tests the channel repository with real PostgreSQL
func TestChannelRepository_Integration(t *testing.T) {
	pool := common.SetupTestDB(t)
	repo := NewRepository(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seed := []struct {
		id, name, category string
		active             bool
	}{
		{"UCdrama000000000000000aa", "드라마 채널", "drama", true},
		{"UCnews0000000000000000bb", "뉴스 채널", "news", true},
		{"UCdead0000000000000000cc", "중단된 채널", "drama", false},
	}
	for _, s := range seed {
		_, err := pool.Exec(ctx,
			"INSERT INTO channels (id, name, category, is_active) VALUES ($1, $2, $3, $4)",
			s.id, s.name, s.category, s.active)
		require.NoError(t, err)
	}

	t.Run("ListActive returns active channels in name order", func(t *testing.T) {
		channels, err := repo.ListActive(ctx, "")
		require.NoError(t, err)
		require.Len(t, channels, 2)
		assert.Equal(t, "뉴스 채널", channels[0].Name)
		assert.Equal(t, "드라마 채널", channels[1].Name)
	})

	t.Run("ListActive filters by category", func(t *testing.T) {
		channels, err := repo.ListActive(ctx, "drama")
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, "UCdrama000000000000000aa", channels[0].ID)
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "UCnews0000000000000000bb")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.Exists(ctx, "UCmissing0000000000000zz")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("GetByID", func(t *testing.T) {
		ch, err := repo.GetByID(ctx, "UCdrama000000000000000aa")
		require.NoError(t, err)
		assert.Equal(t, "드라마 채널", ch.Name)
		assert.Equal(t, "drama", ch.Category)
		assert.True(t, ch.IsActive)
	})
}
