package repository

import (
	"context"

	"yt-companion/domain/model"
)

// ISession persists OAuth credential sets keyed by access token.
type ISession interface {
	// Save is a find-or-create on access_token: re-running the OAuth
	// callback with a still-valid token must not fork credential state.
	// Returns the id of the surviving row.
	Save(ctx context.Context, session *model.Session) (int64, error)
	FindByAccessToken(ctx context.Context, token string) (*model.Session, error)
	// DeleteByAccessToken returns the number of rows removed.
	DeleteByAccessToken(ctx context.Context, token string) (int64, error)
}
