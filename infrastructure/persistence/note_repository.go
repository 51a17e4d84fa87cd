package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"yt-companion/domain/model"
)

// NoteRepository persists video annotations. Tags live in a JSON column;
// structural tag queries are not possible against that representation,
// so ListByVideo only handles the text search and callers filter tags
// after retrieval.
type NoteRepository struct{ db *sql.DB }

func NewNoteRepository(db *sql.DB) *NoteRepository { return &NoteRepository{db: db} }

const noteColumns = `id, video_id, title, content, tags, created_at, updated_at`

func (r *NoteRepository) Create(ctx context.Context, n *model.Note) (*model.Note, error) {
	tags, err := marshalTags(n.Tags)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	q := `INSERT INTO notes (video_id, title, content, tags, created_at)
		  VALUES ($1,$2,$3,$4,$5)
		  RETURNING ` + noteColumns
	row := r.db.QueryRowContext(ctx, q, n.VideoID, n.Title, n.Content, tags, now)
	return scanNote(row)
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*model.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id=$1`, id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return n, err
}

func (r *NoteRepository) Update(ctx context.Context, n *model.Note) (*model.Note, error) {
	tags, err := marshalTags(n.Tags)
	if err != nil {
		return nil, err
	}
	q := `UPDATE notes SET title=$1, content=$2, tags=$3, updated_at=$4 WHERE id=$5
		  RETURNING ` + noteColumns
	row := r.db.QueryRowContext(ctx, q, n.Title, n.Content, tags, time.Now().UTC(), n.ID)
	updated, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return updated, err
}

func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) ListByVideo(ctx context.Context, videoID, search string) ([]model.Note, error) {
	q := `SELECT ` + noteColumns + ` FROM notes WHERE video_id=$1`
	args := []interface{}{videoID}
	if search != "" {
		q += ` AND (content ILIKE $2 OR title ILIKE $2)`
		args = append(args, "%"+search+"%")
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// UpsertMetadataMirror keeps the first note for a video in step with the
// title pushed to the remote platform.
func (r *NoteRepository) UpsertMetadataMirror(ctx context.Context, videoID, title string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title=$1, updated_at=$2
		 WHERE id = (SELECT id FROM notes WHERE video_id=$3 ORDER BY id ASC LIMIT 1)`,
		title, time.Now().UTC(), videoID)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO notes (video_id, title, content, tags, created_at) VALUES ($1,$2,'','[]',$3)`,
		videoID, title, time.Now().UTC())
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row rowScanner) (*model.Note, error) {
	n := &model.Note{}
	var title sql.NullString
	var tags []byte
	var updated sql.NullTime
	if err := row.Scan(&n.ID, &n.VideoID, &title, &n.Content, &tags, &n.CreatedAt, &updated); err != nil {
		return nil, err
	}
	if title.Valid {
		n.Title = &title.String
	}
	if updated.Valid {
		n.UpdatedAt = &updated.Time
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &n.Tags); err != nil {
			return nil, fmt.Errorf("decoding tags: %w", err)
		}
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n, nil
}

func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}
	return b, nil
}
