package usecase

import (
	"context"
	"fmt"

	"yt-companion/domain/model"
	"yt-companion/domain/repository"
)

const defaultListCap = 20

// IVideoUsecase orchestrates remote video operations. The materialized
// per-session client is passed in by the caller; this layer owns the
// remote-first sequencing and the audit trail.
type IVideoUsecase interface {
	ListVideos(ctx context.Context, yt repository.IYouTube) ([]model.YouTubeVideo, error)
	GetVideo(ctx context.Context, yt repository.IYouTube, videoID string) (*model.YouTubeVideo, error)
	UpdateMetadata(ctx context.Context, yt repository.IYouTube, videoID, title, description string) (*model.YouTubeVideo, error)
	SuggestTitles(ctx context.Context, videoID, currentTitle string) []string
}

type VideoUsecase struct {
	notes      repository.INote
	audit      repository.IAuditLog
	suggester  repository.ISuggestion
	maxResults int64
}

func NewVideoUsecase(notes repository.INote, audit repository.IAuditLog, suggester repository.ISuggestion) IVideoUsecase {
	return &VideoUsecase{
		notes:      notes,
		audit:      audit,
		suggester:  suggester,
		maxResults: defaultListCap,
	}
}

func (u *VideoUsecase) ListVideos(ctx context.Context, yt repository.IYouTube) ([]model.YouTubeVideo, error) {
	videos, err := yt.ListMyUploads(ctx, u.maxResults)
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, u.audit, model.ActionVideosListed, fmt.Sprintf("Fetched %d videos from channel.", len(videos)))
	return videos, nil
}

func (u *VideoUsecase) GetVideo(ctx context.Context, yt repository.IYouTube, videoID string) (*model.YouTubeVideo, error) {
	video, err := yt.GetVideoDetails(ctx, videoID)
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, u.audit, model.ActionVideoFetched, fmt.Sprintf("Fetched details for video_id=%s", videoID))
	return video, nil
}

// UpdateMetadata pushes the change to the remote platform first; only a
// remote success is mirrored locally, so the mirror is never ahead of
// the platform.
func (u *VideoUsecase) UpdateMetadata(ctx context.Context, yt repository.IYouTube, videoID, title, description string) (*model.YouTubeVideo, error) {
	video, err := yt.UpdateVideoMetadata(ctx, videoID, title, description)
	if err != nil {
		return nil, err
	}

	if err := u.notes.UpsertMetadataMirror(ctx, videoID, title); err != nil {
		appendAudit(ctx, u.audit, model.ActionNeedsReconciliation,
			fmt.Sprintf("video_id=%s metadata updated remotely but local mirror write failed: %v", videoID, err))
		return nil, fmt.Errorf("mirroring metadata for video %s: %w: %w", videoID, model.ErrMirrorWrite, err)
	}

	appendAudit(ctx, u.audit, model.ActionVideoMetadataUpdated, fmt.Sprintf("video_id=%s title='%s'", videoID, title))
	return video, nil
}

func (u *VideoUsecase) SuggestTitles(ctx context.Context, videoID, currentTitle string) []string {
	if currentTitle == "" {
		currentTitle = "YouTube Video"
	}
	titles := u.suggester.Suggest(ctx, currentTitle)
	appendAudit(ctx, u.audit, model.ActionAISuggestions, fmt.Sprintf("video_id=%s base_title='%s'", videoID, currentTitle))
	return titles
}
