package usecase

import (
	"context"
	"fmt"
	"strings"

	"yt-companion/domain/dto"
	"yt-companion/domain/model"
	"yt-companion/domain/repository"
)

// INoteUsecase manages local-only video annotations.
type INoteUsecase interface {
	Create(ctx context.Context, videoID string, req *dto.NoteCreateRequest) (*model.Note, error)
	Update(ctx context.Context, id int64, req *dto.NoteUpdateRequest) (*model.Note, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, videoID, search, tag string) ([]model.Note, error)
}

type NoteUsecase struct {
	notes repository.INote
	audit repository.IAuditLog
}

func NewNoteUsecase(notes repository.INote, audit repository.IAuditLog) INoteUsecase {
	return &NoteUsecase{notes: notes, audit: audit}
}

func (u *NoteUsecase) Create(ctx context.Context, videoID string, req *dto.NoteCreateRequest) (*model.Note, error) {
	note, err := u.notes.Create(ctx, &model.Note{
		VideoID: videoID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, u.audit, model.ActionNoteCreated, fmt.Sprintf("video_id=%s note_id=%d", videoID, note.ID))
	return note, nil
}

func (u *NoteUsecase) Update(ctx context.Context, id int64, req *dto.NoteUpdateRequest) (*model.Note, error) {
	note, err := u.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		note.Title = req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Tags != nil {
		note.Tags = *req.Tags
	}

	updated, err := u.notes.Update(ctx, note)
	if err != nil {
		return nil, err
	}
	appendAudit(ctx, u.audit, model.ActionNoteUpdated, fmt.Sprintf("note_id=%d", id))
	return updated, nil
}

func (u *NoteUsecase) Delete(ctx context.Context, id int64) error {
	if err := u.notes.Delete(ctx, id); err != nil {
		return err
	}
	appendAudit(ctx, u.audit, model.ActionNoteDeleted, fmt.Sprintf("note_id=%d", id))
	return nil
}

// List filters in two phases: search runs in SQL, tag matching runs here
// because the tags column is a JSON document the storage layer cannot
// structurally query. Acceptable while tag sets and per-video note
// counts stay small.
func (u *NoteUsecase) List(ctx context.Context, videoID, search, tag string) ([]model.Note, error) {
	notes, err := u.notes.ListByVideo(ctx, videoID, search)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		notes = filterByTag(notes, tag)
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

func filterByTag(notes []model.Note, tag string) []model.Note {
	want := strings.ToLower(strings.TrimSpace(tag))
	out := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		for _, t := range n.Tags {
			if strings.ToLower(strings.TrimSpace(t)) == want {
				out = append(out, n)
				break
			}
		}
	}
	return out
}
