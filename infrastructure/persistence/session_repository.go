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

// SessionRepository persists OAuth credential sets in PostgreSQL.
type SessionRepository struct{ db *sql.DB }

func NewSessionRepository(db *sql.DB) *SessionRepository { return &SessionRepository{db: db} }

// Save is a find-or-create on access_token. ON CONFLICT DO NOTHING keeps
// a browser-retried OAuth callback from forking credential state; when
// the insert is skipped the existing row's id is returned instead.
func (r *SessionRepository) Save(ctx context.Context, s *model.Session) (int64, error) {
	scopes, err := json.Marshal(s.Scopes)
	if err != nil {
		return 0, fmt.Errorf("encoding scopes: %w", err)
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	var refresh sql.NullString
	if s.RefreshToken != "" {
		refresh = sql.NullString{String: s.RefreshToken, Valid: true}
	}

	q := `INSERT INTO sessions (access_token, refresh_token, token_endpoint, client_id, client_secret, scopes, created_at)
		  VALUES ($1,$2,$3,$4,$5,$6,$7)
		  ON CONFLICT (access_token) DO NOTHING
		  RETURNING id`
	var id int64
	err = r.db.QueryRowContext(ctx, q, s.AccessToken, refresh, s.TokenEndpoint, s.ClientID, s.ClientSecret, scopes, s.CreatedAt).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		row := r.db.QueryRowContext(ctx, `SELECT id FROM sessions WHERE access_token=$1`, s.AccessToken)
		if err := row.Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SessionRepository) FindByAccessToken(ctx context.Context, token string) (*model.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, access_token, refresh_token, token_endpoint, client_id, client_secret, scopes, created_at FROM sessions WHERE access_token=$1`, token)
	s := &model.Session{}
	var refresh sql.NullString
	var scopes []byte
	if err := row.Scan(&s.ID, &s.AccessToken, &refresh, &s.TokenEndpoint, &s.ClientID, &s.ClientSecret, &scopes, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	if refresh.Valid {
		s.RefreshToken = refresh.String
	}
	if len(scopes) > 0 {
		if err := json.Unmarshal(scopes, &s.Scopes); err != nil {
			return nil, fmt.Errorf("decoding scopes: %w", err)
		}
	}
	return s, nil
}

func (r *SessionRepository) DeleteByAccessToken(ctx context.Context, token string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE access_token=$1`, token)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
