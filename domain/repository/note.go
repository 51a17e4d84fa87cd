package repository

import (
	"context"

	"yt-companion/domain/model"
)

// INote is the store for user-authored video annotations.
type INote interface {
	Create(ctx context.Context, note *model.Note) (*model.Note, error)
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	Update(ctx context.Context, note *model.Note) (*model.Note, error)
	Delete(ctx context.Context, id int64) error
	// ListByVideo returns notes ordered by creation time, most recent
	// first. search, when non-empty, is matched case-insensitively
	// against title OR content at the storage layer. Tag filtering is
	// NOT done here; the tags column is a JSON document the storage
	// layer cannot structurally query, so callers filter after
	// retrieval.
	ListByVideo(ctx context.Context, videoID, search string) ([]model.Note, error)
	// UpsertMetadataMirror finds the first note for videoID (creating
	// one when absent) and sets its title. Used only by the video
	// metadata update operation.
	UpsertMetadataMirror(ctx context.Context, videoID, title string) error
}
