package repository

import (
	"context"

	"yt-companion/domain/model"
)

// IYouTube exposes exactly the remote operations this service uses.
// One concrete adapter exists per provider; tests substitute a mock.
type IYouTube interface {
	// ListMyUploads resolves the authenticated user's uploads playlist,
	// pages through its item ids (capped at maxResults) and batch-fetches
	// full detail objects for those ids in one call. The generic search
	// endpoint is deliberately avoided: it costs far more quota and omits
	// statistics.
	ListMyUploads(ctx context.Context, maxResults int64) ([]model.YouTubeVideo, error)
	GetVideoDetails(ctx context.Context, videoID string) (*model.YouTubeVideo, error)
	// UpdateVideoMetadata fetches the current full snippet, merges in
	// only title and description, and sends the whole snippet back.
	// A partial update would implicitly clear every unspecified field.
	UpdateVideoMetadata(ctx context.Context, videoID, title, description string) (*model.YouTubeVideo, error)
	GetVideoComments(ctx context.Context, videoID string, maxResults int64) ([]model.YouTubeComment, error)
	// InsertComment posts a top-level comment and returns its remote id.
	InsertComment(ctx context.Context, videoID, text string) (string, error)
	// InsertReply replies to an existing comment and returns the reply's
	// remote id.
	InsertReply(ctx context.Context, parentID, text string) (string, error)
	DeleteComment(ctx context.Context, remoteID string) error
}

// IYouTubeFactory materializes a client bound to one stored credential
// set. Construction never performs a network call; bad credentials
// surface at the first remote operation.
type IYouTubeFactory interface {
	ClientFor(ctx context.Context, session *model.Session) (IYouTube, error)
}

// ISuggestion generates alternative titles. Implementations never fail:
// every failure mode degrades to a substitute three-item result.
type ISuggestion interface {
	Suggest(ctx context.Context, currentTitle string) []string
}
