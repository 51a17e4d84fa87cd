package usecase

import (
	"context"
	"fmt"

	"yt-companion/domain/model"
	"yt-companion/domain/repository"
)

// ICommentUsecase orders every comment write remote-first: a remote
// failure leaves zero mirror rows, a remote success leaves exactly one.
type ICommentUsecase interface {
	ListRemote(ctx context.Context, yt repository.IYouTube, videoID string) ([]model.YouTubeComment, error)
	Post(ctx context.Context, yt repository.IYouTube, videoID, text string, parentID *string) (*model.MirroredComment, error)
	// Delete is keyed by the LOCAL integer id. A missing mirror row
	// fails with ErrNotFound before any remote call.
	Delete(ctx context.Context, yt repository.IYouTube, localID int64) error
	ListLocal(ctx context.Context, videoID string) ([]model.MirroredComment, error)
}

type CommentUsecase struct {
	comments repository.IMirroredComment
	audit    repository.IAuditLog
}

func NewCommentUsecase(comments repository.IMirroredComment, audit repository.IAuditLog) ICommentUsecase {
	return &CommentUsecase{comments: comments, audit: audit}
}

func (u *CommentUsecase) ListRemote(ctx context.Context, yt repository.IYouTube, videoID string) ([]model.YouTubeComment, error) {
	comments, err := yt.GetVideoComments(ctx, videoID, 0)
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, u.audit, model.ActionCommentsFetched, fmt.Sprintf("video_id=%s", videoID))
	return comments, nil
}

func (u *CommentUsecase) Post(ctx context.Context, yt repository.IYouTube, videoID, text string, parentID *string) (*model.MirroredComment, error) {
	var remoteID string
	var err error
	if parentID != nil && *parentID != "" {
		remoteID, err = yt.InsertReply(ctx, *parentID, text)
	} else {
		parentID = nil
		remoteID, err = yt.InsertComment(ctx, videoID, text)
	}
	if err != nil {
		return nil, err
	}

	mirrored, err := u.comments.Insert(ctx, &model.MirroredComment{
		VideoID:         videoID,
		RemoteCommentID: remoteID,
		ParentRemoteID:  parentID,
		Text:            text,
	})
	if err != nil {
		appendAudit(ctx, u.audit, model.ActionNeedsReconciliation,
			fmt.Sprintf("comment %s posted remotely on video_id=%s but mirror insert failed: %v", remoteID, videoID, err))
		return nil, fmt.Errorf("mirroring comment %s: %w: %w", remoteID, model.ErrMirrorWrite, err)
	}

	action := model.ActionCommentPosted
	if mirrored.ParentRemoteID != nil {
		action = model.ActionCommentReplied
	}
	appendAudit(ctx, u.audit, action, fmt.Sprintf("video_id=%s yt_comment_id=%s", videoID, remoteID))
	return mirrored, nil
}

func (u *CommentUsecase) Delete(ctx context.Context, yt repository.IYouTube, localID int64) error {
	comment, err := u.comments.GetByID(ctx, localID)
	if err != nil {
		return err
	}

	if err := yt.DeleteComment(ctx, comment.RemoteCommentID); err != nil {
		return err
	}

	if err := u.comments.DeleteByID(ctx, localID); err != nil {
		appendAudit(ctx, u.audit, model.ActionNeedsReconciliation,
			fmt.Sprintf("comment %s deleted remotely but mirror row %d removal failed: %v", comment.RemoteCommentID, localID, err))
		return fmt.Errorf("removing mirror row %d: %w: %w", localID, model.ErrMirrorWrite, err)
	}

	appendAudit(ctx, u.audit, model.ActionCommentDeleted, fmt.Sprintf("yt_comment_id=%s", comment.RemoteCommentID))
	return nil
}

func (u *CommentUsecase) ListLocal(ctx context.Context, videoID string) ([]model.MirroredComment, error) {
	comments, err := u.comments.ListByVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.MirroredComment{}
	}
	return comments, nil
}
