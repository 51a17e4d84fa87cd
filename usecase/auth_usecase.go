package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"yt-companion/domain/model"
	"yt-companion/domain/repository"
	"yt-companion/infrastructure/configuration"
	"yt-companion/infrastructure/logger"

	"github.com/google/go-querystring/query"
	"golang.org/x/oauth2"
)

const googleAuthURL = "https://accounts.google.com/o/oauth2/auth"

// IAuthUsecase covers the OAuth session lifecycle: consent redirect,
// code exchange with find-or-create persistence, and revocation.
type IAuthUsecase interface {
	AuthURL() string
	// HandleCallback exchanges the authorization code, stores the full
	// credential set keyed by access token, and returns that token for
	// the frontend redirect.
	HandleCallback(ctx context.Context, code string) (string, error)
	Logout(ctx context.Context, token string) error
}

type AuthUsecase struct {
	oauthConfig *oauth2.Config
	sessions    repository.ISession
	audit       repository.IAuditLog
	revokeURL   string
	httpClient  *http.Client
}

func NewAuthUsecase(cfg *configuration.Config, sessions repository.ISession, audit repository.IAuditLog) IAuthUsecase {
	return &AuthUsecase{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       cfg.Google.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  googleAuthURL,
				TokenURL: cfg.Google.TokenURL,
			},
		},
		sessions:   sessions,
		audit:      audit,
		revokeURL:  cfg.Google.RevokeURL,
		httpClient: &http.Client{},
	}
}

func (u *AuthUsecase) AuthURL() string {
	return u.oauthConfig.AuthCodeURL(
		randomState(),
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (u *AuthUsecase) HandleCallback(ctx context.Context, code string) (string, error) {
	token, err := u.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchanging authorization code: %w", err)
	}

	session := &model.Session{
		AccessToken:   token.AccessToken,
		RefreshToken:  token.RefreshToken,
		TokenEndpoint: u.oauthConfig.Endpoint.TokenURL,
		ClientID:      u.oauthConfig.ClientID,
		ClientSecret:  u.oauthConfig.ClientSecret,
		Scopes:        u.oauthConfig.Scopes,
	}
	if _, err := u.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("storing session: %w", err)
	}

	appendAudit(ctx, u.audit, model.ActionSessionCreated, "User authenticated via Google OAuth.")
	return token.AccessToken, nil
}

type revokeParams struct {
	Token string `url:"token"`
}

func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	values, err := query.Values(revokeParams{Token: token})
	if err != nil {
		return fmt.Errorf("encoding revoke request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.revokeURL+"?"+values.Encode(), strings.NewReader(""))
	if err != nil {
		return fmt.Errorf("creating revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoking token with provider: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		// An already-expired token revokes with a 400; the row is still
		// removed so the token cannot address the session again.
		logger.GetLogger().WithField("status", resp.StatusCode).Warn("Provider revocation returned non-OK status")
	}

	if _, err := u.sessions.DeleteByAccessToken(ctx, token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	appendAudit(ctx, u.audit, model.ActionSessionRevoked, "User revoked OAuth token.")
	return nil
}

func randomState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}
