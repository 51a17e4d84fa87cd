package usecase_test

import (
	"context"

	"yt-companion/domain/model"

	"github.com/stretchr/testify/mock"
)

// Mock implementations

type MockYouTube struct {
	mock.Mock
}

func (m *MockYouTube) ListMyUploads(ctx context.Context, maxResults int64) ([]model.YouTubeVideo, error) {
	args := m.Called(ctx, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.YouTubeVideo), args.Error(1)
}

func (m *MockYouTube) GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.YouTubeVideo), args.Error(1)
}

func (m *MockYouTube) UpdateVideoMetadata(ctx context.Context, videoID, title, description string) (*model.YouTubeVideo, error) {
	args := m.Called(ctx, videoID, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.YouTubeVideo), args.Error(1)
}

func (m *MockYouTube) GetVideoComments(ctx context.Context, videoID string, maxResults int64) ([]model.YouTubeComment, error) {
	args := m.Called(ctx, videoID, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.YouTubeComment), args.Error(1)
}

func (m *MockYouTube) InsertComment(ctx context.Context, videoID, text string) (string, error) {
	args := m.Called(ctx, videoID, text)
	return args.String(0), args.Error(1)
}

func (m *MockYouTube) InsertReply(ctx context.Context, parentID, text string) (string, error) {
	args := m.Called(ctx, parentID, text)
	return args.String(0), args.Error(1)
}

func (m *MockYouTube) DeleteComment(ctx context.Context, remoteID string) error {
	args := m.Called(ctx, remoteID)
	return args.Error(0)
}

type MockMirroredComment struct {
	mock.Mock
}

func (m *MockMirroredComment) Insert(ctx context.Context, comment *model.MirroredComment) (*model.MirroredComment, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MirroredComment), args.Error(1)
}

func (m *MockMirroredComment) GetByID(ctx context.Context, id int64) (*model.MirroredComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MirroredComment), args.Error(1)
}

func (m *MockMirroredComment) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMirroredComment) ListByVideo(ctx context.Context, videoID string) ([]model.MirroredComment, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MirroredComment), args.Error(1)
}

type MockNote struct {
	mock.Mock
}

func (m *MockNote) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNote) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNote) Update(ctx context.Context, note *model.Note) (*model.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Note), args.Error(1)
}

func (m *MockNote) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNote) ListByVideo(ctx context.Context, videoID, search string) ([]model.Note, error) {
	args := m.Called(ctx, videoID, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Note), args.Error(1)
}

func (m *MockNote) UpsertMetadataMirror(ctx context.Context, videoID, title string) error {
	args := m.Called(ctx, videoID, title)
	return args.Error(0)
}

type MockAuditLog struct {
	mock.Mock
}

func (m *MockAuditLog) Append(ctx context.Context, action, details string) error {
	args := m.Called(ctx, action, details)
	return args.Error(0)
}

func (m *MockAuditLog) Recent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEvent), args.Error(1)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Save(ctx context.Context, s *model.Session) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSession) FindByAccessToken(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSession) DeleteByAccessToken(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

type MockSuggestion struct {
	mock.Mock
}

func (m *MockSuggestion) Suggest(ctx context.Context, currentTitle string) []string {
	args := m.Called(ctx, currentTitle)
	return args.Get(0).([]string)
}
