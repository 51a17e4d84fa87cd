package persistence

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"yt-companion/domain/model"
)

// CommentRepository stores the local mirror of comments this service
// posted to the remote platform.
type CommentRepository struct{ db *sql.DB }

func NewCommentRepository(db *sql.DB) *CommentRepository { return &CommentRepository{db: db} }

const commentColumns = `id, video_id, youtube_comment_id, parent_youtube_id, text, created_at`

func (r *CommentRepository) Insert(ctx context.Context, c *model.MirroredComment) (*model.MirroredComment, error) {
	q := `INSERT INTO comments (video_id, youtube_comment_id, parent_youtube_id, text, created_at)
		  VALUES ($1,$2,$3,$4,$5)
		  RETURNING ` + commentColumns
	row := r.db.QueryRowContext(ctx, q, c.VideoID, c.RemoteCommentID, c.ParentRemoteID, c.Text, time.Now().UTC())
	return scanComment(row)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*model.MirroredComment, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id=$1`, id)
	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return c, err
}

func (r *CommentRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id=$1`, id)
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

func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string) ([]model.MirroredComment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE video_id=$1 ORDER BY created_at DESC`, videoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.MirroredComment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	return comments, rows.Err()
}

func scanComment(row rowScanner) (*model.MirroredComment, error) {
	c := &model.MirroredComment{}
	var parent sql.NullString
	if err := row.Scan(&c.ID, &c.VideoID, &c.RemoteCommentID, &parent, &c.Text, &c.CreatedAt); err != nil {
		return nil, err
	}
	if parent.Valid {
		c.ParentRemoteID = &parent.String
	}
	return c, nil
}
