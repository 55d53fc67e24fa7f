package collector

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kosearch/subcollect/internal/model"
)

// mockExtractor is a mock implementation of extractor.Extractor for testing
type mockExtractor struct {
	mock.Mock
}

func (m *mockExtractor) FetchVideoIDs(ctx context.Context, channelID string, limit int) ([]string, error) {
	args := m.Called(ctx, channelID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockExtractor) FetchMetadata(ctx context.Context, videoID string) (*model.VideoMetadata, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoMetadata), args.Error(1)
}

func (m *mockExtractor) FetchCaptions(ctx context.Context, videoID, lang string, preferAuto bool) ([]*model.CaptionSegment, error) {
	args := m.Called(ctx, videoID, lang, preferAuto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CaptionSegment), args.Error(1)
}

// mockVideoRepository is a mock implementation of video.Repository for testing
type mockVideoRepository struct {
	mock.Mock
}

func (m *mockVideoRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockVideoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *mockVideoRepository) Upsert(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

// mockChannelRepository is a mock implementation of channel.Repository for testing
type mockChannelRepository struct {
	mock.Mock
}

func (m *mockChannelRepository) GetByID(ctx context.Context, id string) (*model.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Channel), args.Error(1)
}

func (m *mockChannelRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockChannelRepository) ListActive(ctx context.Context, category string) ([]*model.Channel, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Channel), args.Error(1)
}

// mockStore is a mock implementation of store.Store for testing
type mockStore struct {
	mock.Mock
}

func (m *mockStore) SaveCollected(ctx context.Context, v *model.Video, koSegments, enSegments []*model.CaptionSegment) error {
	args := m.Called(ctx, v, koSegments, enSegments)
	return args.Error(0)
}
