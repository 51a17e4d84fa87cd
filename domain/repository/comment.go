package repository

import (
	"context"

	"yt-companion/domain/model"
)

// IMirroredComment tracks comments this service itself posted to the
// remote platform. remote_comment_id is unique, so the same remote
// comment can never be mirrored twice.
type IMirroredComment interface {
	Insert(ctx context.Context, comment *model.MirroredComment) (*model.MirroredComment, error)
	GetByID(ctx context.Context, id int64) (*model.MirroredComment, error)
	DeleteByID(ctx context.Context, id int64) error
	ListByVideo(ctx context.Context, videoID string) ([]model.MirroredComment, error)
}
