package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"yt-companion/domain/model"
)

func TestAuditRepository_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewAuditRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO logs (action, details, timestamp) VALUES ($1,$2,$3)`)).
		WithArgs(model.ActionCommentPosted, "video_id=vid-1 yt_comment_id=yt-9", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repository.Append(context.Background(), model.ActionCommentPosted, "video_id=vid-1 yt_comment_id=yt-9")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Recent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewAuditRepository(db)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, action, details, timestamp FROM logs ORDER BY timestamp DESC LIMIT $1`)).
		WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action", "details", "timestamp"}).
			AddRow(int64(2), model.ActionVideosListed, "Fetched 5 videos from channel.", now).
			AddRow(int64(1), model.ActionSessionCreated, "User authenticated via Google OAuth.", now.Add(-time.Minute)))

	events, err := repository.Recent(context.Background(), 50)

	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, model.ActionVideosListed, events[0].Action)
	require.NoError(t, mock.ExpectationsWereMet())
}
